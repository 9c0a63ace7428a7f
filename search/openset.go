package search

import "container/heap"

// openItem tags a queued node with its insertion sequence number.
// Equal-F pops come out in insertion order, which keeps repeated
// searches on identical input byte-for-byte reproducible.
type openItem[C comparable] struct {
	node *Node[C]
	seq  int
}

type openHeap[C comparable] []openItem[C]

func (h openHeap[C]) Len() int { return len(h) }

func (h openHeap[C]) Less(i, j int) bool {
	if h[i].node.F != h[j].node.F {
		return h[i].node.F < h[j].node.F
	}
	return h[i].seq < h[j].seq
}

func (h openHeap[C]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *openHeap[C]) Push(x any) { *h = append(*h, x.(openItem[C])) }

func (h *openHeap[C]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// openSet is the frontier: a duplicate-tolerant min-heap on F plus a
// best-known-G index. Improvements push fresh nodes instead of reordering
// queued ones; the stale entries left behind are discarded at pop time
// against the closed set.
type openSet[C comparable] struct {
	heap  openHeap[C]
	bestG map[C]float64
	seq   int
}

func newOpenSet[C comparable]() *openSet[C] {
	return &openSet[C]{bestG: make(map[C]float64)}
}

// offer queues n unless an entry for the same coordinate already carries
// an equal or better G.
func (o *openSet[C]) offer(n *Node[C]) bool {
	if g, known := o.bestG[n.Pos]; known && g <= n.G {
		return false
	}
	o.bestG[n.Pos] = n.G
	heap.Push(&o.heap, openItem[C]{node: n, seq: o.seq})
	o.seq++
	return true
}

func (o *openSet[C]) pop() *Node[C] {
	return heap.Pop(&o.heap).(openItem[C]).node
}

func (o *openSet[C]) empty() bool {
	return len(o.heap) == 0
}

// coords lists the queued coordinates, stale duplicates included.
func (o *openSet[C]) coords() []C {
	out := make([]C, len(o.heap))
	for i, item := range o.heap {
		out[i] = item.node.Pos
	}
	return out
}
