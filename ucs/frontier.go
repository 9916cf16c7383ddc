package ucs

import "github.com/katalvlaran/unisearch/search"

// frontier is a min-heap of nodes ordered by (Cost, TieID). The ordering key
// lives on the node; State is an opaque payload and is never compared.
type frontier[S comparable, A any] []*search.Node[S, A]

// Len returns the number of queued nodes.
func (f frontier[S, A]) Len() int { return len(f) }

// Less orders by cost, then by creation order.
func (f frontier[S, A]) Less(i, j int) bool {
	if f[i].Cost != f[j].Cost {
		return f[i].Cost < f[j].Cost
	}

	return f[i].TieID < f[j].TieID
}

// Swap swaps two elements in the heap.
func (f frontier[S, A]) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push adds x onto the heap. Called by heap.Push; x must be *search.Node[S, A].
func (f *frontier[S, A]) Push(x any) { *f = append(*f, x.(*search.Node[S, A])) }

// Pop removes the last element. Called by heap.Pop.
func (f *frontier[S, A]) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // drop the reference so finished subtrees can be collected
	*f = old[:n-1]

	return item
}
