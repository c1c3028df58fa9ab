// A doubly linked list with O(1) insertion and removal given a node,
// indexed access, splicing and stack/queue helpers.
//
// A List is not safe for concurrent use. Callers sharing a list across
// goroutines must hold their own lock for the duration of each call.
package dlist

import "fmt"

type List[T any] struct {
	head   *Node[T]
	tail   *Node[T]
	length int
}

// Creates a list containing values, in order.
func New[T any](values ...T) *List[T] {
	l := &List[T]{}
	for _, value := range values {
		l.Append(value)
	}
	return l
}

func (l *List[T]) Len() int {
	return l.length
}

func (l *List[T]) IsEmpty() bool {
	return l.length == 0
}

func (l *List[T]) Head() *Node[T] {
	return l.head
}

func (l *List[T]) Tail() *Node[T] {
	return l.tail
}

// Adds value after the current tail and returns its node.
func (l *List[T]) Append(value T) *Node[T] {
	node := &Node[T]{value: value, list: l}
	tail := l.tail
	l.tail = node
	if tail == nil {
		l.head = node
	} else {
		node.prev = tail
		tail.next = node
	}
	l.length++
	return node
}

// Adds value before the current head and returns its node.
func (l *List[T]) Prepend(value T) *Node[T] {
	node := &Node[T]{value: value, list: l}
	head := l.head
	l.head = node
	if head == nil {
		l.tail = node
	} else {
		node.next = head
		head.prev = node
	}
	l.length++
	return node
}

// Removes node from the list. Returns false, without touching the list, if
// node doesn't belong to it (including a node which was already removed).
func (l *List[T]) Remove(node *Node[T]) bool {
	if !l.owns(node) {
		return false
	}
	l.unlink(node)
	node.list = nil
	l.length--
	return true
}

// Inserts value immediately after node. Returns nil if node doesn't belong
// to this list.
func (l *List[T]) InsertAfter(node *Node[T], value T) *Node[T] {
	if !l.owns(node) {
		return nil
	}
	if node == l.tail {
		return l.Append(value)
	}
	inserted := &Node[T]{value: value, list: l, prev: node, next: node.next}
	node.next.prev = inserted
	node.next = inserted
	l.length++
	return inserted
}

// Inserts value immediately before node. Returns nil if node doesn't belong
// to this list.
func (l *List[T]) InsertBefore(node *Node[T], value T) *Node[T] {
	if !l.owns(node) {
		return nil
	}
	if node == l.head {
		return l.Prepend(value)
	}
	inserted := &Node[T]{value: value, list: l, prev: node.prev, next: node}
	node.prev.next = inserted
	node.prev = inserted
	l.length++
	return inserted
}

// Moves node to the head of the list, keeping the node itself (so
// references held by callers remain valid).
func (l *List[T]) MoveToFront(node *Node[T]) bool {
	if !l.owns(node) {
		return false
	}
	if node == l.head {
		return true
	}
	l.unlink(node)
	node.next = l.head
	l.head.prev = node
	l.head = node
	return true
}

// Moves node to the tail of the list, keeping the node itself.
func (l *List[T]) MoveToBack(node *Node[T]) bool {
	if !l.owns(node) {
		return false
	}
	if node == l.tail {
		return true
	}
	l.unlink(node)
	node.prev = l.tail
	l.tail.next = node
	l.tail = node
	return true
}

// Removes every node. Each removed node is released (its List() is nil).
func (l *List[T]) Clear() {
	for l.head != nil {
		l.Remove(l.head)
	}
}

func (l *List[T]) String() string {
	return fmt.Sprint(l.ToSlice())
}

func (l *List[T]) owns(node *Node[T]) bool {
	return node != nil && node.list == l
}

// detaches node from its neighbours and fixes head/tail. The caller
// adjusts length and ownership.
func (l *List[T]) unlink(node *Node[T]) {
	next := node.next
	prev := node.prev

	if next == nil {
		l.tail = prev
	} else {
		next.prev = prev
	}

	if prev == nil {
		l.head = next
	} else {
		prev.next = next
	}
	node.next = nil
	node.prev = nil
}
