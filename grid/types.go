// Package grid defines core types, labels, and sentinel errors
// for occupancy grids.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and access.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrInvalidLabel indicates a cell value outside {Free, Obstacle, Goal}.
	ErrInvalidLabel = errors.New("grid: cell label must be 0 (free), 1 (obstacle) or 2 (goal)")
	// ErrOutOfRange indicates a coordinate outside the grid.
	ErrOutOfRange = errors.New("grid: coordinate out of range")
)

// Cell labels accepted at input time.
const (
	// Free marks an unvisited, traversable cell.
	Free = 0
	// Obstacle marks an impassable cell.
	Obstacle = 1
	// Goal marks the single target cell.
	Goal = 2
)

// Coord addresses a cell by row and column, both zero-based.
type Coord struct {
	Row, Col int
}

// String renders the coordinate as "(row, col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Grid is an immutable rows×cols occupancy map.
// cells holds rows*cols labels in row-major order.
type Grid struct {
	rows, cols int
	cells      []int
}
