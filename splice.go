package dlist

// Removes up to deleteCount values starting at index and inserts items in
// their place. A negative index counts back from the tail and is clamped to
// 0; an index at or past the end inserts at the tail. A negative
// deleteCount deletes nothing. Returns the removed values, in order.
func (l *List[T]) SpliceAt(index int, deleteCount int, items ...T) *List[T] {
	if index < 0 {
		index += l.length
		if index < 0 {
			index = 0
		}
	}
	var start *Node[T]
	if index < l.length {
		start = l.NodeAt(index)
	}
	return l.splice(start, deleteCount, items)
}

// Like SpliceAt, but starting at node, without an index lookup. If node
// doesn't belong to this list nothing happens and an empty list is
// returned.
func (l *List[T]) SpliceNode(node *Node[T], deleteCount int, items ...T) *List[T] {
	if !l.owns(node) {
		return New[T]()
	}
	return l.splice(node, deleteCount, items)
}

// Appends items. Always returns an empty list, as there is nothing past
// the end to delete.
func (l *List[T]) SpliceEnd(items ...T) *List[T] {
	return l.splice(nil, 0, items)
}

// start == nil means the end of the list.
func (l *List[T]) splice(start *Node[T], deleteCount int, items []T) *List[T] {
	removed := New[T]()

	node := start
	for ; deleteCount > 0 && node != nil; deleteCount-- {
		next := node.next
		removed.Append(node.value)
		l.Remove(node)
		node = next
	}

	if len(items) == 0 {
		return removed
	}

	if node == nil {
		for _, item := range items {
			l.Append(item)
		}
		return removed
	}

	inserted := l.InsertBefore(node, items[0])
	for _, item := range items[1:] {
		inserted = l.InsertAfter(inserted, item)
	}
	return removed
}
