package ucs

import (
	"container/heap"

	"github.com/katalvlaran/unisearch/search"
)

// StrategyTree names results produced by TreeSearch.
const StrategyTree = "UCTS"

// TreeSearch runs uniform-cost tree search from start. It shares GraphSearch's
// frontier ordering but keeps no best-cost map: every successor is queued and
// a state may be expanded any number of times.
//
// Returns ErrNilProblem if p is nil. Panics with search.ErrNegativeCost when
// the problem reports a negative step cost.
func TreeSearch[S comparable, A any](p search.Problem[S, A], start S, opts ...search.Option) (*search.Result[S, A], error) {
	if p == nil {
		return nil, search.ErrNilProblem
	}

	run := search.NewRun[S, A](StrategyTree, search.Apply(opts...))
	pq := make(frontier[S, A], 0, 64)
	heap.Init(&pq)
	heap.Push(&pq, run.Root(start))

	var n *search.Node[S, A]
	for pq.Len() > 0 {
		if !run.WithinLimits() {
			return run.Cutoff(), nil
		}

		n = heap.Pop(&pq).(*search.Node[S, A])
		run.Expand(n)
		if p.GoalTest(n.State) {
			return run.Solved(n), nil
		}

		for succ := range p.Successors(n.State) {
			run.Generate(succ)
			heap.Push(&pq, run.Child(n, succ))
		}
	}

	return run.Exhausted(), nil
}
