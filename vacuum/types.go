package vacuum

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for vacuum worlds.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("vacuum: grid must have at least one row and one column")

	// ErrGridTooLarge indicates more cells than the dirt bitmask can hold.
	ErrGridTooLarge = errors.New("vacuum: grid must have at most 64 cells")

	// ErrNegativeCost indicates an action configured with a negative cost.
	ErrNegativeCost = errors.New("vacuum: action cost must be non-negative")

	// ErrOutOfBounds indicates a cell outside the grid.
	ErrOutOfBounds = errors.New("vacuum: cell out of bounds")
)

// MaxCells is the largest grid a World supports.
const MaxCells = 64

// Action is a vacuum-world transition label.
type Action int

const (
	Left Action = iota
	Right
	Up
	Down
	Suck
)

var actionNames = [...]string{"Left", "Right", "Up", "Down", "Suck"}

// String returns the action's name.
func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return fmt.Sprintf("Action(%d)", int(a))
	}

	return actionNames[a]
}

// Costs holds the step cost of every action.
type Costs struct {
	Left, Right, Up, Down, Suck float64
}

// DefaultCosts returns the classic asymmetric cost table.
func DefaultCosts() Costs {
	return Costs{Left: 1.0, Right: 0.9, Up: 0.8, Down: 0.7, Suck: 0.6}
}

// Of returns the cost of a.
func (c Costs) Of(a Action) float64 {
	switch a {
	case Left:
		return c.Left
	case Right:
		return c.Right
	case Up:
		return c.Up
	case Down:
		return c.Down
	default:
		return c.Suck
	}
}

func (c Costs) validate() error {
	for a := Left; a <= Suck; a++ {
		if c.Of(a) < 0 {
			return fmt.Errorf("%w: %s=%v", ErrNegativeCost, a, c.Of(a))
		}
	}

	return nil
}

// Cell is a 1-based grid coordinate.
type Cell struct {
	Row, Col int
}

// String formats c as "(row,col)".
func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// State is the agent position plus the dirt bitmask.
type State struct {
	Row, Col int
	Dirt     uint64
}

// Clean reports whether no dirt is left.
func (s State) Clean() bool { return s.Dirt == 0 }

// DirtCount returns the number of dirty cells.
func (s State) DirtCount() int {
	n := 0
	for d := s.Dirt; d != 0; d &= d - 1 {
		n++
	}

	return n
}

// formatCells renders cells as "[(1,2) (2,4)]".
func formatCells(cells []Cell) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = c.String()
	}

	return "[" + strings.Join(parts, " ") + "]"
}
