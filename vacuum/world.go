package vacuum

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/unisearch/search"
)

// move is a translation applied by a movement action.
type move struct {
	action   Action
	dRow, dCol int
}

// moves lists movement actions in successor order.
var moves = [...]move{
	{Left, 0, -1},
	{Right, 0, 1},
	{Up, -1, 0},
	{Down, 1, 0},
}

// World is an immutable vacuum-world problem. It satisfies
// search.Problem[State, Action] and is safe for concurrent use.
type World struct {
	Rows, Cols int
	Costs      Costs
}

var _ search.Problem[State, Action] = (*World)(nil)

// NewWorld validates the grid size and cost table.
// Returns ErrEmptyGrid, ErrGridTooLarge or a wrapped ErrNegativeCost.
func NewWorld(rows, cols int, costs Costs) (*World, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	if rows*cols > MaxCells {
		return nil, fmt.Errorf("%w: %dx%d", ErrGridTooLarge, rows, cols)
	}
	if err := costs.validate(); err != nil {
		return nil, err
	}

	return &World{Rows: rows, Cols: cols, Costs: costs}, nil
}

// InBounds reports whether (row,col) lies within the grid.
// Complexity: O(1).
func (w *World) InBounds(row, col int) bool {
	return row >= 1 && row <= w.Rows && col >= 1 && col <= w.Cols
}

// bit returns the dirt-mask bit of an in-bounds cell.
func (w *World) bit(row, col int) uint64 {
	return 1 << uint((row-1)*w.Cols+(col-1))
}

// State builds a state with the agent at (row,col) and the given dirty cells.
// Duplicate dirt cells are merged. Returns a wrapped ErrOutOfBounds for any
// cell outside the grid.
func (w *World) State(row, col int, dirt ...Cell) (State, error) {
	if !w.InBounds(row, col) {
		return State{}, fmt.Errorf("%w: agent at %s", ErrOutOfBounds, Cell{row, col})
	}
	s := State{Row: row, Col: col}
	for _, c := range dirt {
		if !w.InBounds(c.Row, c.Col) {
			return State{}, fmt.Errorf("%w: dirt at %s", ErrOutOfBounds, c)
		}
		s.Dirt |= w.bit(c.Row, c.Col)
	}

	return s, nil
}

// DirtCells lists the dirty cells of s in row-major order.
func (w *World) DirtCells(s State) []Cell {
	cells := make([]Cell, 0, s.DirtCount())
	for r := 1; r <= w.Rows; r++ {
		for c := 1; c <= w.Cols; c++ {
			if s.Dirt&w.bit(r, c) != 0 {
				cells = append(cells, Cell{r, c})
			}
		}
	}

	return cells
}

// Describe formats s as "pos = (r,c) dirt = [(r,c) ...]".
func (w *World) Describe(s State) string {
	return fmt.Sprintf("pos = %s dirt = %s", Cell{s.Row, s.Col}, formatCells(w.DirtCells(s)))
}

// GoalTest reports whether s has no dirt left.
func (w *World) GoalTest(s State) bool { return s.Clean() }

// Successors yields Left, Right, Up, Down (when they stay on the grid) and
// then Suck (when the current cell is dirty).
func (w *World) Successors(s State) iter.Seq[search.Successor[State, Action]] {
	return func(yield func(search.Successor[State, Action]) bool) {
		var r, c int
		for _, m := range moves {
			r, c = s.Row+m.dRow, s.Col+m.dCol
			if !w.InBounds(r, c) {
				continue
			}
			next := State{Row: r, Col: c, Dirt: s.Dirt}
			if !yield(search.Successor[State, Action]{Action: m.action, State: next, Cost: w.Costs.Of(m.action)}) {
				return
			}
		}

		here := w.bit(s.Row, s.Col)
		if s.Dirt&here != 0 {
			next := State{Row: s.Row, Col: s.Col, Dirt: s.Dirt &^ here}
			yield(search.Successor[State, Action]{Action: Suck, State: next, Cost: w.Costs.Suck})
		}
	}
}
