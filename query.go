package dlist

import "iter"

// Calls fn for every value, head to tail.
func (l *List[T]) ForEach(fn func(value T, index int, list *List[T])) {
	index := 0
	for node := l.head; node != nil; node = node.next {
		fn(node.value, index, l)
		index++
	}
}

// Builds a new list of fn applied to every value of l, in order. l is not
// modified.
func Map[T, U any](l *List[T], fn func(value T, index int, list *List[T]) U) *List[U] {
	mapped := New[U]()
	l.ForEach(func(value T, index int, list *List[T]) {
		mapped.Append(fn(value, index, list))
	})
	return mapped
}

// The first value, from the head, for which fn returns true.
func (l *List[T]) Find(fn func(T) bool) (T, bool) {
	if node := l.FindNode(fn); node != nil {
		return node.value, true
	}
	var zero T
	return zero, false
}

func (l *List[T]) FindNode(fn func(T) bool) *Node[T] {
	for node := l.head; node != nil; node = node.next {
		if fn(node.value) {
			return node
		}
	}
	return nil
}

// The position of the first value at or after fromIndex for which fn
// returns true, or -1. A negative fromIndex is treated as 0.
func (l *List[T]) IndexFunc(fn func(T) bool, fromIndex int) int {
	index := 0
	node := l.head
	for ; node != nil && index < fromIndex; node = node.next {
		index++
	}
	for ; node != nil; node = node.next {
		if fn(node.value) {
			return index
		}
		index++
	}
	return -1
}

// The position of the first value equal (==) to value at or after
// fromIndex, or -1. Pointers compare by identity.
func IndexOf[T comparable](l *List[T], value T, fromIndex int) int {
	return l.IndexFunc(func(v T) bool { return v == value }, fromIndex)
}

func Includes[T comparable](l *List[T], value T, fromIndex int) bool {
	return IndexOf(l, value, fromIndex) != -1
}

func (l *List[T]) ToSlice() []T {
	values := make([]T, 0, l.length)
	for node := l.head; node != nil; node = node.next {
		values = append(values, node.value)
	}
	return values
}

// Iterates values from head to tail. The iterator walks the live list, it
// is not a snapshot: removing the current node while iterating is fine, any
// other change to the list leaves the remaining order unspecified.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for node := range l.Nodes() {
			if !yield(node.value) {
				return
			}
		}
	}
}

// Iterates values from tail to head. Same caveats as All.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		node := l.tail
		for node != nil {
			prev := node.prev
			if !yield(node.value) {
				return
			}
			node = prev
		}
	}
}

// Iterates nodes from head to tail. Same caveats as All.
func (l *List[T]) Nodes() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		node := l.head
		for node != nil {
			next := node.next
			if !yield(node) {
				return
			}
			node = next
		}
	}
}
