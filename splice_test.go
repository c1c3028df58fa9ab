package dlist

import (
	"testing"

	"github.com/karlseguin/dlist/assert"
)

func Test_Splice_DeleteFromMiddle(t *testing.T) {
	l := New("a", "b", "c", "d")
	removed := l.SpliceAt(1, 2)
	assertList(t, l, "a", "d")
	assertList(t, removed, "b", "c")
}

func Test_Splice_InsertBeforeNode(t *testing.T) {
	l := New("a", "d")
	removed := l.SpliceNode(l.Tail(), 0, "b", "c")
	assertList(t, l, "a", "b", "c", "d")
	assertList(t, removed)
}

func Test_Splice_ReplaceWithFewer(t *testing.T) {
	l := New(1, 2, 3, 4, 5)
	removed := l.SpliceAt(1, 3, 10)
	assertList(t, l, 1, 10, 5)
	assertList(t, removed, 2, 3, 4)
}

func Test_Splice_ReplaceWithMore(t *testing.T) {
	l := New(1, 2, 3)
	removed := l.SpliceAt(1, 1, 20, 21, 22)
	assertList(t, l, 1, 20, 21, 22, 3)
	assertList(t, removed, 2)
}

func Test_Splice_ReplaceWithSame(t *testing.T) {
	l := New(1, 2, 3)
	removed := l.SpliceAt(0, 2, 8, 9)
	assertList(t, l, 8, 9, 3)
	assertList(t, removed, 1, 2)
}

func Test_Splice_NegativeStartBeyondLength(t *testing.T) {
	l := New("a", "b")
	removed := l.SpliceAt(-10, 1, "x")
	assertList(t, l, "x", "b")
	assertList(t, removed, "a")
}

func Test_Splice_NegativeStart(t *testing.T) {
	l := New(1, 2, 3, 4)
	removed := l.SpliceAt(-2, 1)
	assertList(t, l, 1, 2, 4)
	assertList(t, removed, 3)
}

func Test_Splice_EndOnEmptyList(t *testing.T) {
	l := New[string]()
	removed := l.SpliceEnd("a", "b")
	assertList(t, l, "a", "b")
	assertList(t, removed)
}

func Test_Splice_End(t *testing.T) {
	l := New(1)
	assertList(t, l.SpliceEnd())
	assertList(t, l, 1)
	l.SpliceEnd(2, 3)
	assertList(t, l, 1, 2, 3)
}

func Test_Splice_InsertOnEmptyList(t *testing.T) {
	l := New[int]()
	removed := l.SpliceAt(0, 3, 1, 2)
	assertList(t, l, 1, 2)
	assertList(t, removed)
}

func Test_Splice_PureInsertAtEveryPosition(t *testing.T) {
	for i := 0; i <= 3; i++ {
		l := New(0, 1, 2)
		l.SpliceAt(i, 0, 9)
		expected, _ := spliceModel([]int{0, 1, 2}, i, 0, 9)
		assertList(t, l, expected...)
		assert.Equal(t, l.NodeAt(i).Value(), 9)
	}
}

func Test_Splice_PureDeleteAtEveryPosition(t *testing.T) {
	for i := 0; i < 4; i++ {
		l := New(0, 1, 2, 3)
		removed := l.SpliceAt(i, 1)
		expected, expectedRemoved := spliceModel([]int{0, 1, 2, 3}, i, 1)
		assertList(t, l, expected...)
		assertList(t, removed, expectedRemoved...)
	}
}

func Test_Splice_IndexPastEndAppends(t *testing.T) {
	l := New(1, 2)
	removed := l.SpliceAt(10, 5, 3)
	assertList(t, l, 1, 2, 3)
	assertList(t, removed)
}

func Test_Splice_DeleteCountPastEnd(t *testing.T) {
	l := New(1, 2, 3, 4)
	removed := l.SpliceAt(2, 100, 7, 8)
	assertList(t, l, 1, 2, 7, 8)
	assertList(t, removed, 3, 4)
}

func Test_Splice_NegativeDeleteCount(t *testing.T) {
	l := New(1, 2, 3)
	removed := l.SpliceAt(1, -4, 9)
	assertList(t, l, 1, 9, 2, 3)
	assertList(t, removed)
}

func Test_Splice_DeleteEverything(t *testing.T) {
	l := New(1, 2, 3)
	nodes := []*Node[int]{l.NodeAt(0), l.NodeAt(1), l.NodeAt(2)}
	removed := l.SpliceAt(0, 3)
	assertList(t, l)
	assertList(t, removed, 1, 2, 3)
	for _, node := range nodes {
		assertReleased(t, node)
	}
}

func Test_Splice_ZeroIsANoop(t *testing.T) {
	for i := -6; i <= 6; i++ {
		l := New(1, 2, 3)
		head, tail := l.Head(), l.Tail()
		removed := l.SpliceAt(i, 0)
		assertList(t, l, 1, 2, 3)
		assertList(t, removed)
		assert.Equal(t, l.Head(), head)
		assert.Equal(t, l.Tail(), tail)
	}
}

func Test_Splice_Node(t *testing.T) {
	l := New(1, 2, 3, 4, 5)
	removed := l.SpliceNode(l.NodeAt(1), 2, 20)
	assertList(t, l, 1, 20, 4, 5)
	assertList(t, removed, 2, 3)

	removed = l.SpliceNode(l.Tail(), 10, 50, 60)
	assertList(t, l, 1, 20, 4, 50, 60)
	assertList(t, removed, 5)
}

func Test_Splice_ForeignNodeIsANoop(t *testing.T) {
	l := New(1, 2, 3)
	other := New(1, 2, 3)
	removed := l.SpliceNode(other.Head(), 2, 9)
	assertList(t, l, 1, 2, 3)
	assertList(t, other, 1, 2, 3)
	assertList(t, removed)

	stale := l.Head()
	l.Remove(stale)
	assertList(t, l.SpliceNode(stale, 1, 9))
	assertList(t, l.SpliceNode(nil, 0, 9))
	assertList(t, l, 2, 3)
}

func Test_Splice_KeepsNodeIdentityOfSurvivors(t *testing.T) {
	l := New(1, 2, 3, 4)
	first, last := l.Head(), l.Tail()
	l.SpliceAt(1, 2, 7)
	assert.Equal(t, l.Head(), first)
	assert.Equal(t, l.Tail(), last)
	assert.Equal(t, first.Next().Next(), last)
}
