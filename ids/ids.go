package ids

import (
	"log/slog"
	"slices"

	"github.com/katalvlaran/unisearch/search"
)

// Strategy names results produced by Search.
const Strategy = "IDTS"

// frame is one stack entry: a node and its depth below the root.
type frame[S comparable, A any] struct {
	node  *search.Node[S, A]
	depth int
}

// deepener encapsulates state shared by all depth iterations.
type deepener[S comparable, A any] struct {
	problem search.Problem[S, A]
	run     *search.Run[S, A]
	start   S
	stack   []frame[S, A]
}

// Search runs iterative-deepening tree search from start, trying depth
// ceilings 0 through Options.MaxDepth.
//
// Returns ErrNilProblem if p is nil. Panics with search.ErrNegativeCost when
// the problem reports a negative step cost.
func Search[S comparable, A any](p search.Problem[S, A], start S, opts ...search.Option) (*search.Result[S, A], error) {
	if p == nil {
		return nil, search.ErrNilProblem
	}

	cfg := search.Apply(opts...)
	d := &deepener[S, A]{
		problem: p,
		run:     search.NewRun[S, A](Strategy, cfg),
		start:   start,
	}

	var goal *search.Node[S, A]
	var cutoff bool
	for limit := 0; limit <= cfg.MaxDepth; limit++ {
		goal, cutoff = d.limited(limit)
		d.run.Logger().Debug("depth iteration done",
			slog.Int("limit", limit),
			slog.Int("expanded", d.run.Expanded()),
			slog.Int("generated", d.run.Generated()),
		)

		switch {
		case cutoff:
			return d.run.Cutoff(), nil
		case goal != nil:
			return d.run.Solved(goal), nil
		}
	}

	return d.run.Exhausted(), nil
}

// limited runs one depth-limited DFS with the given ceiling. It returns the
// goal node if one was popped, or cutoff == true if the budget ran out.
func (d *deepener[S, A]) limited(limit int) (goal *search.Node[S, A], cutoff bool) {
	// 1) Seed the stack with a fresh root for this iteration.
	d.stack = append(d.stack[:0], frame[S, A]{node: d.run.Root(d.start)})

	var f frame[S, A]
	var succs []search.Successor[S, A]
	for len(d.stack) > 0 {
		// 2) Budget check strictly before the pop.
		if !d.run.WithinLimits() {
			return nil, true
		}

		// 3) Pop, count, goal-test.
		f = d.stack[len(d.stack)-1]
		d.stack[len(d.stack)-1] = frame[S, A]{}
		d.stack = d.stack[:len(d.stack)-1]

		d.run.Expand(f.node)
		if d.problem.GoalTest(f.node.State) {
			return f.node, false
		}

		// 4) Frames at the ceiling are leaves for this iteration.
		if f.depth >= limit {
			continue
		}

		// 5) Materialise the successors once, then push them in reverse so the
		//    first one produced is the next one popped.
		succs = slices.AppendSeq(succs[:0], d.problem.Successors(f.node.State))
		for _, s := range succs {
			d.run.Generate(s)
		}
		for i := len(succs) - 1; i >= 0; i-- {
			d.stack = append(d.stack, frame[S, A]{
				node:  d.run.Child(f.node, succs[i]),
				depth: f.depth + 1,
			})
		}
	}

	return nil, false
}
