package search

import (
	"errors"
	"iter"
	"time"
)

// Sentinel errors for search engines.
var (
	// ErrNilProblem is returned when an engine is called with a nil Problem.
	ErrNilProblem = errors.New("search: problem is nil")

	// ErrNegativeCost indicates a successor with a negative or NaN step cost.
	// Engines panic with it: optimality is void for such problems.
	ErrNegativeCost = errors.New("search: step cost must be non-negative")

	// ErrNilNode indicates path reconstruction was asked to walk a nil node.
	ErrNilNode = errors.New("search: cannot reconstruct from nil node")

	// ErrBadMaxExpansions indicates WithMaxExpansions received a negative value.
	ErrBadMaxExpansions = errors.New("search: MaxExpansions must be non-negative")

	// ErrBadTimeLimit indicates WithTimeLimit received a negative duration.
	ErrBadTimeLimit = errors.New("search: TimeLimit must be non-negative")

	// ErrBadMaxDepth indicates WithMaxDepth received a negative value.
	ErrBadMaxDepth = errors.New("search: MaxDepth must be non-negative")
)

// FirstExpansions is how many leading expansions a Result records.
const FirstExpansions = 5

// Successor is one transition produced by a Problem: taking Action from the
// current state leads to State at a step cost of Cost (Cost ≥ 0).
type Successor[S comparable, A any] struct {
	Action A
	State  S
	Cost   float64
}

// Problem is the contract every engine consumes.
//
// GoalTest must be free of side effects. Successors returns a finite sequence
// that may be produced fresh on every call; engines range over it once.
type Problem[S comparable, A any] interface {
	GoalTest(s S) bool
	Successors(s S) iter.Seq[Successor[S, A]]
}

// ProblemFunc adapts a pair of plain functions to the Problem interface.
type ProblemFunc[S comparable, A any] struct {
	Goal func(s S) bool
	Next func(s S) iter.Seq[Successor[S, A]]
}

// GoalTest calls f.Goal.
func (f ProblemFunc[S, A]) GoalTest(s S) bool { return f.Goal(s) }

// Successors calls f.Next.
func (f ProblemFunc[S, A]) Successors(s S) iter.Seq[Successor[S, A]] { return f.Next(s) }

// Node is an immutable search-tree node.
//
// The root has Parent == nil and its Action is the zero value; for every other
// node Action is the transition taken from Parent. TieID orders nodes of equal
// Cost by creation, so frontier ordering never compares states.
type Node[S comparable, A any] struct {
	Cost   float64
	TieID  uint64
	State  S
	Parent *Node[S, A]
	Action A
}

// Depth returns the number of transitions between the root and n.
func (n *Node[S, A]) Depth() int {
	d := 0
	for p := n.Parent; p != nil; p = p.Parent {
		d++
	}

	return d
}

// Expansion records a state and the path cost at which it was expanded.
type Expansion[S comparable] struct {
	State S
	Cost  float64
}

// Outcome classifies how a run terminated.
type Outcome string

const (
	OutcomeSolved    Outcome = "solved"
	OutcomeExhausted Outcome = "exhausted"
	OutcomeCutoff    Outcome = "cutoff"
)

// Result is the single record every engine returns.
type Result[S comparable, A any] struct {
	// Strategy names the engine that produced the result (e.g. "UCGS").
	Strategy string

	// Found reports whether Solution and Cost are meaningful.
	Found bool

	// Solution lists the actions from start to goal. Non-nil whenever Found,
	// empty when the start state is itself a goal.
	Solution []A

	// States lists the states from start to goal, inclusive. len(States) == len(Solution)+1 when Found.
	States []S

	// Cost is exactly the goal node's path cost.
	Cost float64

	// Expanded counts nodes popped and goal-tested. Stale graph-search pops are excluded.
	Expanded int

	// Generated counts successor tuples produced across all expansions.
	Generated int

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration

	// First5 holds up to FirstExpansions leading expansions, in order.
	First5 []Expansion[S]

	// Cutoff reports that a resource ceiling stopped the run.
	Cutoff bool
}

// Outcome classifies r.
func (r *Result[S, A]) Outcome() Outcome {
	switch {
	case r.Cutoff:
		return OutcomeCutoff
	case r.Found:
		return OutcomeSolved
	default:
		return OutcomeExhausted
	}
}
