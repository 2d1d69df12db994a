package grid

import "fmt"

// New constructs a Grid from a non-empty, rectangular 2D slice of labels.
// It deep-copies the input so later changes to values never leak in.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs, and ErrInvalidLabel
// (wrapped with the offending coordinate) for labels outside {0,1,2}.
// Complexity: O(R×C) time and memory.
func New(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for _, row := range values {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	cells := make([]int, 0, rows*cols)
	for r, row := range values {
		for c, v := range row {
			if v != Free && v != Obstacle && v != Goal {
				return nil, fmt.Errorf("%w: %d at %s", ErrInvalidLabel, v, Coord{r, c})
			}
		}
		cells = append(cells, row...)
	}

	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// At returns the label at (row, col), or ErrOutOfRange.
// Complexity: O(1).
func (g *Grid) At(row, col int) (int, error) {
	if !g.InBounds(row, col) {
		return 0, fmt.Errorf("%w: %s in %dx%d grid", ErrOutOfRange, Coord{row, col}, g.rows, g.cols)
	}
	return g.cells[g.Index(row, col)], nil
}

// Label returns the label at c without bounds checking.
// Callers must have checked InBounds.
func (g *Grid) Label(c Coord) int {
	return g.cells[c.Row*g.cols+c.Col]
}

// Index maps (row, col) to its row-major index: row*Cols + col.
// Complexity: O(1).
func (g *Grid) Index(row, col int) int {
	return row*g.cols + col
}

// Coordinate converts a row-major index back to a Coord.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.cols, Col: idx % g.cols}
}

// Cells returns a copy of the flat, row-major label slice.
func (g *Grid) Cells() []int {
	out := make([]int, len(g.cells))
	copy(out, g.cells)
	return out
}

// Values returns a deep copy of the grid in nested [row][col] form.
func (g *Grid) Values() [][]int {
	out := make([][]int, g.rows)
	for r := range out {
		out[r] = make([]int, g.cols)
		copy(out[r], g.cells[r*g.cols:(r+1)*g.cols])
	}
	return out
}

// FindGoal scans the grid row-major and returns the first Goal cell.
// The boolean is false when no cell carries the Goal label.
// Complexity: O(R×C) worst case.
func (g *Grid) FindGoal() (Coord, bool) {
	for i, v := range g.cells {
		if v == Goal {
			return g.Coordinate(i), true
		}
	}
	return Coord{}, false
}

// Goals returns every Goal cell in row-major order.
func (g *Grid) Goals() []Coord {
	var goals []Coord
	for i, v := range g.cells {
		if v == Goal {
			goals = append(goals, g.Coordinate(i))
		}
	}
	return goals
}
