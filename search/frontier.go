package search

import "container/heap"

// frontierItem wraps a node with its insertion sequence number so that
// equal-cost entries pop in the order they were discovered, keeping the
// search deterministic (candidates are always generated foot-then-portion
// in a fixed order, so "earliest discovered" doubles as "earliest
// lexicographic foot assignment").
type frontierItem struct {
	n   *node
	seq int
}

type frontier []*frontierItem

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].n.cost != f[j].n.cost {
		return f[i].n.cost.Less(f[j].n.cost)
	}
	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) {
	*f = append(*f, x.(*frontierItem))
}

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}

var _ heap.Interface = (*frontier)(nil)
