package vacuum_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/unisearch/ids"
	"github.com/katalvlaran/unisearch/search"
	"github.com/katalvlaran/unisearch/search/searchtest"
	"github.com/katalvlaran/unisearch/ucs"
	"github.com/katalvlaran/unisearch/vacuum"
)

type engine func(search.Problem[vacuum.State, vacuum.Action], vacuum.State, ...search.Option) (*search.Result[vacuum.State, vacuum.Action], error)

var engines = map[string]engine{
	ucs.StrategyTree:  ucs.TreeSearch[vacuum.State, vacuum.Action],
	ucs.StrategyGraph: ucs.GraphSearch[vacuum.State, vacuum.Action],
	ids.Strategy:      ids.Search[vacuum.State, vacuum.Action],
}

type expectation struct {
	moves     []vacuum.Action
	cost      float64
	expanded  int
	generated int
}

func checkRun(t *testing.T, w *vacuum.World, start vacuum.State, name string, want expectation) *search.Result[vacuum.State, vacuum.Action] {
	t.Helper()
	res, err := engines[name](w, start)
	require.NoError(t, err)
	require.True(t, res.Found, name)
	require.False(t, res.Cutoff, name)
	require.Equal(t, want.moves, res.Solution, name)
	require.InDelta(t, want.cost, res.Cost, 1e-9, name)
	require.Equal(t, want.expanded, res.Expanded, name)
	require.Equal(t, want.generated, res.Generated, name)

	end, total, err := searchtest.Replay[vacuum.State, vacuum.Action](w, start, res.Solution)
	require.NoError(t, err, name)
	require.True(t, w.GoalTest(end), name)
	require.InDelta(t, res.Cost, total, 1e-9, name)

	return res
}

func TestEngines_TinyWorld(t *testing.T) {
	w := mustWorld(t, 2, 2)
	start := mustState(t, w, 1, 1, vacuum.Cell{Row: 1, Col: 2})
	moves := []vacuum.Action{vacuum.Right, vacuum.Suck}

	checkRun(t, w, start, ucs.StrategyGraph, expectation{moves, 1.5, 4, 7})
	checkRun(t, w, start, ucs.StrategyTree, expectation{moves, 1.5, 5, 9})
	checkRun(t, w, start, ids.Strategy, expectation{moves, 1.5, 9, 7})
}

func TestEngines_DepthIsNotCost(t *testing.T) {
	w := mustWorld(t, 2, 3)
	start := mustState(t, w, 1, 1, vacuum.Cell{Row: 2, Col: 2}, vacuum.Cell{Row: 1, Col: 3})
	optimal := []vacuum.Action{vacuum.Down, vacuum.Right, vacuum.Suck, vacuum.Up, vacuum.Right, vacuum.Suck}

	graph := checkRun(t, w, start, ucs.StrategyGraph, expectation{optimal, 4.5, 18, 44})
	tree := checkRun(t, w, start, ucs.StrategyTree, expectation{optimal, 4.5, 171, 443})
	require.LessOrEqual(t, graph.Expanded, tree.Expanded)

	// Same depth, higher cost: iterative deepening is not cost-optimal.
	deep := checkRun(t, w, start, ids.Strategy, expectation{
		[]vacuum.Action{vacuum.Right, vacuum.Right, vacuum.Suck, vacuum.Left, vacuum.Down, vacuum.Suck},
		4.7, 402, 398,
	})
	require.Greater(t, deep.Cost, graph.Cost)
}

func TestGraphSearch_DefaultInstances(t *testing.T) {
	w := mustWorld(t, 4, 5)

	one := mustState(t, w, 2, 2, vacuum.Cell{Row: 1, Col: 2}, vacuum.Cell{Row: 2, Col: 4}, vacuum.Cell{Row: 3, Col: 5})
	res := checkRun(t, w, one, ucs.StrategyGraph, expectation{
		[]vacuum.Action{vacuum.Up, vacuum.Suck, vacuum.Down, vacuum.Right, vacuum.Right, vacuum.Suck, vacuum.Down, vacuum.Right, vacuum.Suck},
		6.7, 90, 289,
	})
	require.Equal(t, []search.Expansion[vacuum.State]{
		{State: one, Cost: 0},
		{State: vacuum.State{Row: 3, Col: 2, Dirt: one.Dirt}, Cost: 0.7},
		{State: vacuum.State{Row: 1, Col: 2, Dirt: one.Dirt}, Cost: 0.8},
		{State: vacuum.State{Row: 2, Col: 3, Dirt: one.Dirt}, Cost: 0.9},
		{State: vacuum.State{Row: 2, Col: 1, Dirt: one.Dirt}, Cost: 1.0},
	}, res.First5)

	two := mustState(t, w, 3, 2, vacuum.Cell{Row: 1, Col: 2}, vacuum.Cell{Row: 2, Col: 1}, vacuum.Cell{Row: 2, Col: 4}, vacuum.Cell{Row: 3, Col: 3})
	checkRun(t, w, two, ucs.StrategyGraph, expectation{
		[]vacuum.Action{vacuum.Right, vacuum.Suck, vacuum.Up, vacuum.Right, vacuum.Suck, vacuum.Up, vacuum.Left, vacuum.Left, vacuum.Suck, vacuum.Down, vacuum.Left, vacuum.Suck},
		9.5, 279, 903,
	})
}

func TestEngines_CutoffOnDefaultInstance(t *testing.T) {
	w := mustWorld(t, 4, 5)
	start := mustState(t, w, 3, 2, vacuum.Cell{Row: 1, Col: 2}, vacuum.Cell{Row: 2, Col: 1}, vacuum.Cell{Row: 2, Col: 4}, vacuum.Cell{Row: 3, Col: 3})

	for name, run := range engines {
		res, err := run(w, start, search.WithMaxExpansions(100))
		require.NoError(t, err)
		require.True(t, res.Cutoff, name)
		require.False(t, res.Found, name)
		require.Equal(t, 100, res.Expanded, name)
		require.Len(t, res.First5, search.FirstExpansions, name)
	}
}

func TestEngines_StartIsGoal(t *testing.T) {
	w := mustWorld(t, 4, 5)
	start := mustState(t, w, 4, 4)

	for name, run := range engines {
		res, err := run(w, start)
		require.NoError(t, err)
		require.True(t, res.Found, name)
		require.Empty(t, res.Solution, name)
		require.Zero(t, res.Cost, name)
		require.Equal(t, 1, res.Expanded, name)
		require.Zero(t, res.Generated, name)
	}
}
