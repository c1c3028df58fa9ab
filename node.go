package dlist

// A single value in a List. Nodes are only created by the list's insert
// operations; their links are only ever changed by the owning list.
type Node[T any] struct {
	value T
	prev  *Node[T]
	next  *Node[T]
	list  *List[T]
}

func (n *Node[T]) Value() T {
	return n.value
}

// The following node, or nil if n is the tail or has been removed.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// The preceding node, or nil if n is the head or has been removed.
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

// The list which currently contains n, nil once n has been removed.
func (n *Node[T]) List() *List[T] {
	return n.list
}
