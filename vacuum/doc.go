// Package vacuum models the vacuum-cleaner world as a search.Problem.
//
// A World is a Rows×Cols grid with 1-based coordinates. A State records the
// agent's cell and the set of dirty cells; the goal is a state with no dirt.
//
// Actions and their default step costs:
//
//	Left  1.0   (col-1)
//	Right 0.9   (col+1)
//	Up    0.8   (row-1)
//	Down  0.7   (row+1)
//	Suck  0.6   (removes dirt from the current cell)
//
// Successors are produced in that fixed order. Moves that would leave the grid
// are not generated, and Suck is generated only on a dirty cell.
//
// Dirt is stored as a bitmask over the grid cells, which keeps State comparable
// (usable as a map key) and caps grids at 64 cells.
package vacuum
