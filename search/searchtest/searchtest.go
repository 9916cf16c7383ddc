// Package searchtest provides small problems and helpers for testing search
// engines: an explicit weighted digraph, a replay checker and a manual clock.
package searchtest

import (
	"errors"
	"fmt"
	"iter"
	"sync"
	"time"

	"github.com/katalvlaran/unisearch/search"
)

// ErrReplay is returned by Replay when an action is not applicable.
var ErrReplay = errors.New("searchtest: action not applicable")

type arc struct {
	to   string
	cost float64
}

// Graph is an explicit directed graph over string states. Actions are the
// labels "from->to". Successors are produced in insertion order.
type Graph struct {
	arcs  map[string][]arc
	goals map[string]bool
	calls map[string]int
}

var _ search.Problem[string, string] = (*Graph)(nil)

// NewGraph returns a graph whose goal states are goals.
func NewGraph(goals ...string) *Graph {
	g := &Graph{
		arcs:  make(map[string][]arc),
		goals: make(map[string]bool, len(goals)),
		calls: make(map[string]int),
	}
	for _, s := range goals {
		g.goals[s] = true
	}

	return g
}

// Arc adds a directed arc and returns g for chaining.
func (g *Graph) Arc(from, to string, cost float64) *Graph {
	g.arcs[from] = append(g.arcs[from], arc{to: to, cost: cost})
	return g
}

// GoalTest reports whether s is a goal.
func (g *Graph) GoalTest(s string) bool { return g.goals[s] }

// Successors yields the outgoing arcs of s and counts the call.
func (g *Graph) Successors(s string) iter.Seq[search.Successor[string, string]] {
	g.calls[s]++
	arcs := g.arcs[s]

	return func(yield func(search.Successor[string, string]) bool) {
		for _, a := range arcs {
			if !yield(search.Successor[string, string]{Action: s + "->" + a.to, State: a.to, Cost: a.cost}) {
				return
			}
		}
	}
}

// Calls returns how many times Successors was asked for s.
func (g *Graph) Calls(s string) int { return g.calls[s] }

// Replay re-applies actions from start through p's successor relation and
// returns the reached state and the summed step costs.
func Replay[S comparable, A comparable](p search.Problem[S, A], start S, actions []A) (S, float64, error) {
	state, total := start, 0.0
	for i, a := range actions {
		found := false
		for succ := range p.Successors(state) {
			if succ.Action == a {
				state, total, found = succ.State, total+succ.Cost, true
				break
			}
		}
		if !found {
			return state, total, fmt.Errorf("%w: step %d (%v)", ErrReplay, i, a)
		}
	}

	return state, total, nil
}

// Clock is a manual time source. Each call to Now advances it by Step.
type Clock struct {
	mu   sync.Mutex
	now  time.Time
	Step time.Duration
}

// NewClock returns a clock starting at a fixed instant.
func NewClock(step time.Duration) *Clock {
	return &Clock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Step: step}
}

// Now returns the current instant and advances the clock.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(c.Step)

	return t
}
