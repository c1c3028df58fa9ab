package dlist

// Push, Pop, Shift and Unshift let a List serve as a stack (Push/Pop) or
// a queue (Push/Shift).

func (l *List[T]) Push(value T) *Node[T] {
	return l.Append(value)
}

func (l *List[T]) Unshift(value T) *Node[T] {
	return l.Prepend(value)
}

// Removes and returns the tail's value. False when the list is empty.
func (l *List[T]) Pop() (T, bool) {
	return l.take(l.tail)
}

// Removes and returns the head's value. False when the list is empty.
func (l *List[T]) Shift() (T, bool) {
	return l.take(l.head)
}

func (l *List[T]) take(node *Node[T]) (T, bool) {
	if node == nil {
		var zero T
		return zero, false
	}
	l.Remove(node)
	return node.value, true
}
