package search

import (
	"fmt"
	"log/slog"
	"math"
	"time"
)

// Run carries the mutable bookkeeping of one engine invocation: the budget,
// the tie-break sequencer, expansion and generation counters, the first
// expansions and the start time. Engines create one per call and never share it.
type Run[S comparable, A any] struct {
	strategy  string
	budget    Budget
	seq       Sequencer
	clock     func() time.Time
	log       *slog.Logger
	start     time.Time
	expanded  int
	generated int
	first     []Expansion[S]
}

// NewRun starts the clock for a run of the named strategy.
func NewRun[S comparable, A any](strategy string, opts Options) *Run[S, A] {
	budget := NewBudget(opts)
	log := opts.Logger
	if log == nil {
		log = DefaultOptions().Logger
	}

	return &Run[S, A]{
		strategy: strategy,
		budget:   budget,
		clock:    budget.Clock,
		log:      log.With(slog.String("strategy", strategy)),
		start:    budget.Clock(),
		first:    make([]Expansion[S], 0, FirstExpansions),
	}
}

// Logger returns the run's logger, already tagged with the strategy name.
func (r *Run[S, A]) Logger() *slog.Logger { return r.log }

// Expanded returns the running expansion count.
func (r *Run[S, A]) Expanded() int { return r.expanded }

// Generated returns the running generation count.
func (r *Run[S, A]) Generated() int { return r.generated }

// WithinLimits asks the budget whether the next pop may proceed.
func (r *Run[S, A]) WithinLimits() bool {
	return r.budget.WithinLimits(r.start, r.expanded)
}

// Root creates a parentless node for s with cost 0.
func (r *Run[S, A]) Root(s S) *Node[S, A] {
	return &Node[S, A]{TieID: r.seq.Next(), State: s}
}

// Child creates the node reached from parent through succ.
func (r *Run[S, A]) Child(parent *Node[S, A], succ Successor[S, A]) *Node[S, A] {
	return &Node[S, A]{
		Cost:   parent.Cost + succ.Cost,
		TieID:  r.seq.Next(),
		State:  succ.State,
		Parent: parent,
		Action: succ.Action,
	}
}

// Expand counts n as expanded and records it if it is among the first expansions.
func (r *Run[S, A]) Expand(n *Node[S, A]) {
	r.expanded++
	if len(r.first) < FirstExpansions {
		r.first = append(r.first, Expansion[S]{State: n.State, Cost: n.Cost})
	}
}

// Generate counts one successor tuple. It panics with ErrNegativeCost if the
// step cost is negative or NaN.
func (r *Run[S, A]) Generate(succ Successor[S, A]) {
	if succ.Cost < 0 || math.IsNaN(succ.Cost) {
		panic(fmt.Errorf("%w: %s got cost %v for %v", ErrNegativeCost, r.strategy, succ.Cost, succ.Action))
	}
	r.generated++
}

// Solved packages a successful run ending at goal.
func (r *Run[S, A]) Solved(goal *Node[S, A]) *Result[S, A] {
	actions, states, cost := Reconstruct(goal)
	res := r.pack()
	res.Found = true
	res.Solution = actions
	res.States = states
	res.Cost = cost
	r.finish(res)

	return res
}

// Exhausted packages a run that ran out of nodes without finding a goal.
func (r *Run[S, A]) Exhausted() *Result[S, A] {
	res := r.pack()
	r.finish(res)

	return res
}

// Cutoff packages a run stopped by the budget.
func (r *Run[S, A]) Cutoff() *Result[S, A] {
	res := r.pack()
	res.Cutoff = true
	r.finish(res)

	return res
}

// pack copies the counters into a fresh Result. First5 is copied so that the
// Result never aliases the run's buffer.
func (r *Run[S, A]) pack() *Result[S, A] {
	first := make([]Expansion[S], len(r.first))
	copy(first, r.first)

	return &Result[S, A]{
		Strategy:  r.strategy,
		Expanded:  r.expanded,
		Generated: r.generated,
		Elapsed:   r.clock().Sub(r.start),
		First5:    first,
	}
}

func (r *Run[S, A]) finish(res *Result[S, A]) {
	r.log.Debug("search finished",
		slog.String("outcome", string(res.Outcome())),
		slog.Int("expanded", res.Expanded),
		slog.Int("generated", res.Generated),
		slog.Duration("elapsed", res.Elapsed),
		slog.Float64("cost", res.Cost),
	)
}
