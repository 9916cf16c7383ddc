package ucs_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/unisearch/search"
	"github.com/katalvlaran/unisearch/search/searchtest"
	"github.com/katalvlaran/unisearch/ucs"
)

// engine is the signature shared by GraphSearch and TreeSearch.
type engine func(search.Problem[string, string], string, ...search.Option) (*search.Result[string, string], error)

// UCSSuite exercises behaviour both uniform-cost engines must share.
type UCSSuite struct {
	suite.Suite
	engines map[string]engine
}

func (s *UCSSuite) SetupTest() {
	s.engines = map[string]engine{
		ucs.StrategyGraph: ucs.GraphSearch[string, string],
		ucs.StrategyTree:  ucs.TreeSearch[string, string],
	}
}

// TestStartIsGoal verifies the start node is still popped and tested.
func (s *UCSSuite) TestStartIsGoal() {
	g := searchtest.NewGraph("A").Arc("A", "B", 1)
	for name, run := range s.engines {
		res, err := run(g, "A")
		require.NoError(s.T(), err, name)
		require.True(s.T(), res.Found, name)
		require.Equal(s.T(), []string{}, res.Solution, name)
		require.Equal(s.T(), []string{"A"}, res.States, name)
		require.Zero(s.T(), res.Cost, name)
		require.Equal(s.T(), 1, res.Expanded, name)
		require.Zero(s.T(), res.Generated, name)
		require.False(s.T(), res.Cutoff, name)
		require.Equal(s.T(), name, res.Strategy)
	}
}

// TestCheapestPathWins verifies that the cheaper, longer route is preferred.
func (s *UCSSuite) TestCheapestPathWins() {
	g := searchtest.NewGraph("GOAL").
		Arc("A", "B", 2).
		Arc("A", "GOAL", 100).
		Arc("B", "GOAL", 3)
	for name, run := range s.engines {
		res, err := run(g, "A")
		require.NoError(s.T(), err)
		require.True(s.T(), res.Found, name)
		require.Equal(s.T(), []string{"A->B", "B->GOAL"}, res.Solution, name)
		require.Equal(s.T(), 5.0, res.Cost, name)
	}
}

// TestZeroExpansionCeiling verifies cutoff precedence over any expansion.
func (s *UCSSuite) TestZeroExpansionCeiling() {
	g := searchtest.NewGraph("A")
	for name, run := range s.engines {
		res, err := run(g, "A", search.WithMaxExpansions(0))
		require.NoError(s.T(), err)
		require.True(s.T(), res.Cutoff, name)
		require.False(s.T(), res.Found, name)
		require.Zero(s.T(), res.Expanded, name)
		require.Empty(s.T(), res.First5, name)
	}
}

// TestTimeCeiling verifies the wall-clock ceiling with a manual clock.
func (s *UCSSuite) TestTimeCeiling() {
	g := searchtest.NewGraph("E").Arc("A", "B", 1).Arc("B", "C", 1).Arc("C", "D", 1).Arc("D", "E", 1)
	for name, run := range s.engines {
		clock := searchtest.NewClock(time.Second)
		res, err := run(g, "A", search.WithClock(clock.Now), search.WithTimeLimit(3*time.Second))
		require.NoError(s.T(), err)
		require.True(s.T(), res.Cutoff, name)
		require.Equal(s.T(), 2, res.Expanded, name)
	}
}

// TestTieBreakByCreationOrder verifies equal-cost nodes pop first-created-first.
func (s *UCSSuite) TestTieBreakByCreationOrder() {
	for name, run := range s.engines {
		bc := searchtest.NewGraph("B", "C").Arc("A", "B", 1).Arc("A", "C", 1)
		res, err := run(bc, "A")
		require.NoError(s.T(), err)
		require.Equal(s.T(), []string{"A->B"}, res.Solution, name)

		cb := searchtest.NewGraph("B", "C").Arc("A", "C", 1).Arc("A", "B", 1)
		res, err = run(cb, "A")
		require.NoError(s.T(), err)
		require.Equal(s.T(), []string{"A->C"}, res.Solution, name)
	}
}

// TestDeterministic verifies two runs agree on everything but timing.
func (s *UCSSuite) TestDeterministic() {
	g := staleGraph()
	ignoreTime := cmpopts.IgnoreFields(search.Result[string, string]{}, "Elapsed")
	for name, run := range s.engines {
		first, err := run(g, "A")
		require.NoError(s.T(), err)
		second, err := run(g, "A")
		require.NoError(s.T(), err)
		if diff := cmp.Diff(first, second, ignoreTime); diff != "" {
			s.T().Errorf("%s: runs differ (-first +second):\n%s", name, diff)
		}
	}
}

// TestReplayMatchesCost verifies reconstruction against the successor relation.
func (s *UCSSuite) TestReplayMatchesCost() {
	g := staleGraph()
	for name, run := range s.engines {
		res, err := run(g, "A")
		require.NoError(s.T(), err)
		end, total, err := searchtest.Replay[string, string](g, "A", res.Solution)
		require.NoError(s.T(), err, name)
		require.Equal(s.T(), "G", end, name)
		require.InDelta(s.T(), res.Cost, total, 1e-9, name)
		require.Equal(s.T(), res.States[len(res.States)-1], end, name)
	}
}

// TestNegativeCostPanics verifies the non-negative cost contract is enforced.
func (s *UCSSuite) TestNegativeCostPanics() {
	g := searchtest.NewGraph("B").Arc("A", "B", -1)
	for name, run := range s.engines {
		func() {
			defer func() {
				err, ok := recover().(error)
				require.True(s.T(), ok, name)
				require.True(s.T(), errors.Is(err, search.ErrNegativeCost), name)
			}()
			_, _ = run(g, "A")
		}()
	}
}

// TestNilProblem verifies the only returned error.
func (s *UCSSuite) TestNilProblem() {
	for name, run := range s.engines {
		res, err := run(nil, "A")
		require.Nil(s.T(), res, name)
		require.True(s.T(), errors.Is(err, search.ErrNilProblem), name)
	}
}

// TestLogsOutcome verifies the terminal Debug record.
func (s *UCSSuite) TestLogsOutcome() {
	for name, run := range s.engines {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		_, err := run(staleGraph(), "A", search.WithLogger(logger))
		require.NoError(s.T(), err)
		require.Contains(s.T(), buf.String(), "search finished", name)
		require.Contains(s.T(), buf.String(), "outcome=solved", name)
		require.Contains(s.T(), buf.String(), "strategy="+name, name)
	}
}

func TestUCSSuite(t *testing.T) {
	suite.Run(t, new(UCSSuite))
}

// staleGraph queues D at cost 11 via B before the cheaper cost-3 route via C.
//
//	A ─1→ B ─10→ D ─100→ G
//	A ─2→ C ─1─↗
func staleGraph() *searchtest.Graph {
	return searchtest.NewGraph("G").
		Arc("A", "B", 1).
		Arc("A", "C", 2).
		Arc("B", "D", 10).
		Arc("C", "D", 1).
		Arc("D", "G", 100)
}

// ------------------------------------------------------------------------
// Engine-specific behaviour
// ------------------------------------------------------------------------

func TestGraphSearch_DiamondExpandsGoalOnce(t *testing.T) {
	//   A ─10→ B ─1→ D
	//   A ─1→  C ─1→ D
	g := searchtest.NewGraph("D").
		Arc("A", "B", 10).
		Arc("A", "C", 1).
		Arc("B", "D", 1).
		Arc("C", "D", 1)

	res, err := ucs.GraphSearch[string, string](g, "A")
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, 2.0, res.Cost)
	require.Equal(t, []string{"A->C", "C->D"}, res.Solution)
	require.Equal(t, 3, res.Expanded, "A, C, D")
	require.Equal(t, 3, res.Generated)
	require.Zero(t, g.Calls("B"), "B (cost 10) is never expanded")
}

func TestGraphSearch_StaleEntryNotCounted(t *testing.T) {
	g := staleGraph()
	res, err := ucs.GraphSearch[string, string](g, "A")
	require.NoError(t, err)

	require.Equal(t, 103.0, res.Cost)
	require.Equal(t, 5, res.Expanded, "A, B, C, D@3, G; D@11 is stale")
	require.Equal(t, 5, res.Generated, "2 + 1 + 1 + 1 successors")
	require.Equal(t, 1, g.Calls("D"))
	require.Equal(t, []search.Expansion[string]{
		{State: "A", Cost: 0},
		{State: "B", Cost: 1},
		{State: "C", Cost: 2},
		{State: "D", Cost: 3},
		{State: "G", Cost: 103},
	}, res.First5)
}

func TestTreeSearch_ReexpandsStates(t *testing.T) {
	g := staleGraph()
	res, err := ucs.TreeSearch[string, string](g, "A")
	require.NoError(t, err)

	require.Equal(t, 103.0, res.Cost)
	require.Equal(t, 6, res.Expanded, "D is expanded via both routes")
	require.Equal(t, 6, res.Generated)
	require.Equal(t, 2, g.Calls("D"))
}

func TestGraphSearch_ExhaustsCycle(t *testing.T) {
	g := searchtest.NewGraph("Z").Arc("A", "B", 1).Arc("B", "A", 1)

	res, err := ucs.GraphSearch[string, string](g, "A")
	require.NoError(t, err)
	require.False(t, res.Found)
	require.False(t, res.Cutoff, "no solution is distinct from cutoff")
	require.Nil(t, res.Solution)
	require.Equal(t, 2, res.Expanded)
	require.Equal(t, 2, res.Generated)
	require.Equal(t, search.OutcomeExhausted, res.Outcome())
}

func TestTreeSearch_CycleIsCutOff(t *testing.T) {
	g := searchtest.NewGraph("Z").Arc("A", "B", 1).Arc("B", "A", 1)

	res, err := ucs.TreeSearch[string, string](g, "A", search.WithMaxExpansions(50))
	require.NoError(t, err)
	require.True(t, res.Cutoff)
	require.False(t, res.Found)
	require.Equal(t, 50, res.Expanded)
	require.Equal(t, 50, res.Generated)
}

func TestTreeSearch_ExhaustsFiniteTree(t *testing.T) {
	g := searchtest.NewGraph("Z").Arc("A", "B", 1).Arc("A", "C", 1).Arc("C", "D", 1)

	res, err := ucs.TreeSearch[string, string](g, "A")
	require.NoError(t, err)
	require.Equal(t, search.OutcomeExhausted, res.Outcome())
	require.Equal(t, 4, res.Expanded)
	require.Equal(t, 3, res.Generated)
}
