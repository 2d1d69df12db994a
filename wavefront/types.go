// Package wavefront provides tunable options and the distance field type
// for wavefront expansion.
package wavefront

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wavefront/grid"
)

// ErrOutOfRange indicates a Field accessor was given an out-of-bounds coordinate.
var ErrOutOfRange = errors.New("wavefront: coordinate out of range")

// Field labels beyond the input grid labels.
const (
	// Unreachable marks a free cell the expansion never visited.
	Unreachable = grid.Free
	// Wall marks an obstacle, copied through from the grid.
	Wall = grid.Obstacle
	// Target marks the goal cell.
	Target = grid.Goal
)

// Option configures Expand via functional arguments.
type Option func(*Options)

// Options holds callbacks to observe an expansion.
type Options struct {
	// OnLabel is called once per labelled cell, goal included, in BFS
	// visit order. It observes labels and never changes them.
	OnLabel func(c grid.Coord, label int)
}

// DefaultOptions returns Options with a no-op OnLabel hook.
func DefaultOptions() Options {
	return Options{
		OnLabel: func(grid.Coord, int) {},
	}
}

// WithOnLabel registers a callback run for every labelled cell.
func WithOnLabel(fn func(c grid.Coord, label int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLabel = fn
		}
	}
}

// Field is the distance field produced by Expand: same dimensions as the
// source grid, labels stored row-major in a flat slice.
type Field struct {
	rows, cols int
	labels     []int
}

// Rows returns the number of rows.
func (f *Field) Rows() int { return f.rows }

// Cols returns the number of columns.
func (f *Field) Cols() int { return f.cols }

// InBounds reports whether (row, col) lies within the field.
func (f *Field) InBounds(row, col int) bool {
	return row >= 0 && row < f.rows && col >= 0 && col < f.cols
}

// At returns the label at (row, col), or ErrOutOfRange.
func (f *Field) At(row, col int) (int, error) {
	if !f.InBounds(row, col) {
		return 0, fmt.Errorf("%w: (%d, %d) in %dx%d field", ErrOutOfRange, row, col, f.rows, f.cols)
	}
	return f.labels[row*f.cols+col], nil
}

// Label returns the label at c without bounds checking.
func (f *Field) Label(c grid.Coord) int {
	return f.labels[c.Row*f.cols+c.Col]
}

// Reachable reports whether c is in bounds and connected to the goal.
func (f *Field) Reachable(c grid.Coord) bool {
	return f.InBounds(c.Row, c.Col) && f.Label(c) >= Target
}

// Hops returns the 8-connected hop count from c to the goal.
// The boolean is false when c is out of bounds, an obstacle, or unreachable.
func (f *Field) Hops(c grid.Coord) (int, bool) {
	if !f.Reachable(c) {
		return 0, false
	}
	return f.Label(c) - Target, true
}

// MaxLabel returns the largest label in the field (at least Target once
// an expansion has run).
func (f *Field) MaxLabel() int {
	m := 0
	for _, v := range f.labels {
		if v > m {
			m = v
		}
	}
	return m
}

// Values returns a deep copy of the field in nested [row][col] form.
func (f *Field) Values() [][]int {
	out := make([][]int, f.rows)
	for r := range out {
		out[r] = make([]int, f.cols)
		copy(out[r], f.labels[r*f.cols:(r+1)*f.cols])
	}
	return out
}

// FieldFromValues rebuilds a Field from nested labels, e.g. a decoded
// snapshot. Returns grid.ErrEmptyGrid or grid.ErrNonRectangular on bad shape.
func FieldFromValues(values [][]int) (*Field, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, grid.ErrEmptyGrid
	}
	cols := len(values[0])
	labels := make([]int, 0, len(values)*cols)
	for _, row := range values {
		if len(row) != cols {
			return nil, grid.ErrNonRectangular
		}
		labels = append(labels, row...)
	}
	return &Field{rows: len(values), cols: cols, labels: labels}, nil
}
