package dlist

// Returns the node at index, walking from whichever end is closer. A
// negative index counts back from the tail (-1 is the tail). Returns nil
// when index is out of range.
func (l *List[T]) NodeAt(index int) *Node[T] {
	if index < 0 {
		index += l.length
	}
	if index < 0 || index >= l.length {
		return nil
	}

	fromTail := l.length - 1 - index
	if index <= fromTail {
		node := l.head
		for i := 0; i < index; i++ {
			node = node.next
		}
		return node
	}

	node := l.tail
	for i := 0; i < fromTail; i++ {
		node = node.prev
	}
	return node
}

// The value at index (see NodeAt). The bool is false when index is out of
// range.
func (l *List[T]) Get(index int) (T, bool) {
	node := l.NodeAt(index)
	if node == nil {
		var zero T
		return zero, false
	}
	return node.value, true
}
