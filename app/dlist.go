package main

import (
	"fmt"
	"time"

	"github.com/karlseguin/dlist"
	"github.com/karlseguin/dlist/lru"
)

func main() {
	l := dlist.New("a", "d")
	l.SpliceNode(l.Tail(), 0, "b", "c")
	fmt.Println(l)

	removed := l.SpliceAt(1, 2)
	fmt.Println(l, removed)

	history := dlist.New[string]()
	history.Push("open")
	history.Push("edit")
	undo, _ := history.Pop()
	fmt.Println("undo:", undo, "remaining:", history)

	c := lru.New(lru.Configure[string, string]().MaxItems(3).OnDelete(func(item *lru.Item[string, string]) {
		fmt.Println("evicted", item.Key())
	}))
	c.Set("a", "1", time.Minute)
	c.Set("b", "2", time.Minute)
	c.Set("c", "3", time.Minute)
	c.Get("a")
	c.Set("d", "4", time.Minute)
	fmt.Println(c.Keys(), c.Get("b") == nil)
}
