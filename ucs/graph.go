package ucs

import (
	"container/heap"

	"github.com/katalvlaran/unisearch/search"
)

// StrategyGraph names results produced by GraphSearch.
const StrategyGraph = "UCGS"

// GraphSearch runs uniform-cost graph search from start.
//
// Each pop is preceded by a budget check. A popped node whose cost exceeds the
// best known cost of its state is stale and is dropped without counting an
// expansion. Every other pop counts as an expansion, is goal-tested, and if it
// is not a goal its successors are generated; a successor is queued only when
// its path cost strictly undercuts the best known cost of its state.
//
// Returns ErrNilProblem if p is nil. Panics with search.ErrNegativeCost when
// the problem reports a negative step cost.
func GraphSearch[S comparable, A any](p search.Problem[S, A], start S, opts ...search.Option) (*search.Result[S, A], error) {
	if p == nil {
		return nil, search.ErrNilProblem
	}

	r := &graphRunner[S, A]{
		problem: p,
		run:     search.NewRun[S, A](StrategyGraph, search.Apply(opts...)),
		best:    make(map[S]float64),
	}
	r.init(start)

	return r.process(), nil
}

// graphRunner holds the mutable state for a single GraphSearch execution.
type graphRunner[S comparable, A any] struct {
	problem search.Problem[S, A]
	run     *search.Run[S, A]
	best    map[S]float64 // cheapest known path cost per state; only ever decreases
	pq      frontier[S, A]
}

// init seeds the best-cost map and the frontier with the start node.
func (r *graphRunner[S, A]) init(start S) {
	r.best[start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, r.run.Root(start))
}

// process is the main loop. It ends on a goal pop, an empty frontier or a cutoff.
func (r *graphRunner[S, A]) process() *search.Result[S, A] {
	var n *search.Node[S, A]
	for r.pq.Len() > 0 {
		// 1) Budget check strictly before the pop.
		if !r.run.WithinLimits() {
			return r.run.Cutoff()
		}

		// 2) Pop the cheapest (then oldest) node.
		n = heap.Pop(&r.pq).(*search.Node[S, A])

		// 3) Stale entry: a cheaper path to this state was queued after n.
		if n.Cost > r.best[n.State] {
			continue
		}

		// 4) Count the expansion and goal-test.
		r.run.Expand(n)
		if r.problem.GoalTest(n.State) {
			return r.run.Solved(n)
		}

		// 5) Generate successors with dominance pruning.
		r.relax(n)
	}

	return r.run.Exhausted()
}

// relax generates n's successors and queues those that improve on the best
// known cost of their state.
func (r *graphRunner[S, A]) relax(n *search.Node[S, A]) {
	var childG float64
	for succ := range r.problem.Successors(n.State) {
		r.run.Generate(succ)
		childG = n.Cost + succ.Cost

		// Not strictly better: an equal or cheaper path is already queued or expanded.
		if known, seen := r.best[succ.State]; seen && childG >= known {
			continue
		}

		r.best[succ.State] = childG
		heap.Push(&r.pq, r.run.Child(n, succ))
	}
}
