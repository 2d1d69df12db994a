package grid_test

import (
	"errors"
	"reflect"
	"slices"
	"testing"

	"github.com/katalvlaran/wavefront/grid"
)

//----------------------------------------------------------------------------//
// New and accessor Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty, ragged, or mislabelled inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name   string
		values [][]int
		err    error
	}{
		{"EmptyRows", [][]int{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, grid.ErrEmptyGrid},
		{"NonRectangular", [][]int{{0, 2}, {1}}, grid.ErrNonRectangular},
		{"NegativeLabel", [][]int{{0, -1}, {2, 0}}, grid.ErrInvalidLabel},
		{"LargeLabel", [][]int{{0, 3}, {2, 0}}, grid.ErrInvalidLabel},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.values)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%v) error = %v; want %v", tc.values, err, tc.err)
			}
		})
	}
}

// TestNew_DeepCopy ensures mutating the input after New leaves the grid intact.
func TestNew_DeepCopy(t *testing.T) {
	values := [][]int{{0, 1}, {0, 2}}
	g, err := grid.New(values)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	values[0][0] = 1

	if v, _ := g.At(0, 0); v != grid.Free {
		t.Errorf("At(0,0) = %d after input mutation; want %d", v, grid.Free)
	}
	out := g.Values()
	out[1][1] = 0
	if v, _ := g.At(1, 1); v != grid.Goal {
		t.Errorf("At(1,1) = %d after Values mutation; want %d", v, grid.Goal)
	}
}

// TestInBoundsAndAt checks InBounds and At on a 2×3 grid.
func TestInBoundsAndAt(t *testing.T) {
	g, err := grid.New([][]int{
		{0, 1, 0},
		{1, 0, 2},
	})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if g.Rows() != 2 || g.Cols() != 3 {
		t.Fatalf("dims = %dx%d; want 2x3", g.Rows(), g.Cols())
	}

	for _, rc := range [][2]int{{0, 0}, {1, 2}, {1, 1}} {
		if !g.InBounds(rc[0], rc[1]) {
			t.Errorf("InBounds(%d,%d)=false; want true", rc[0], rc[1])
		}
	}
	for _, rc := range [][2]int{{-1, 0}, {2, 0}, {0, 3}, {1, -1}} {
		if g.InBounds(rc[0], rc[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", rc[0], rc[1])
		}
		if _, err := g.At(rc[0], rc[1]); !errors.Is(err, grid.ErrOutOfRange) {
			t.Errorf("At(%d,%d) error = %v; want ErrOutOfRange", rc[0], rc[1], err)
		}
	}
	if v, err := g.At(1, 2); err != nil || v != grid.Goal {
		t.Errorf("At(1,2) = %d, %v; want %d, nil", v, err, grid.Goal)
	}
}

// TestIndexCoordinate round-trips every cell of a 3×4 grid.
func TestIndexCoordinate(t *testing.T) {
	g, _ := grid.New([][]int{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 2},
	})
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			idx := g.Index(r, c)
			if idx != r*4+c {
				t.Errorf("Index(%d,%d) = %d; want %d", r, c, idx, r*4+c)
			}
			if got := g.Coordinate(idx); got != (grid.Coord{Row: r, Col: c}) {
				t.Errorf("Coordinate(%d) = %v; want (%d, %d)", idx, got, r, c)
			}
		}
	}
}

//----------------------------------------------------------------------------//
// Goal scan Tests
//----------------------------------------------------------------------------//

// TestFindGoal covers the missing, single, and multiple goal cases.
func TestFindGoal(t *testing.T) {
	none, _ := grid.New([][]int{{0, 1}, {0, 0}})
	if _, ok := none.FindGoal(); ok {
		t.Error("FindGoal on goal-less grid reported ok")
	}
	if goals := none.Goals(); len(goals) != 0 {
		t.Errorf("Goals = %v; want none", goals)
	}

	multi, _ := grid.New([][]int{
		{0, 0, 2},
		{2, 0, 0},
	})
	goal, ok := multi.FindGoal()
	if !ok || goal != (grid.Coord{Row: 0, Col: 2}) {
		t.Errorf("FindGoal = %v, %v; want (0, 2), true", goal, ok)
	}
	want := []grid.Coord{{Row: 0, Col: 2}, {Row: 1, Col: 0}}
	if got := multi.Goals(); !reflect.DeepEqual(got, want) {
		t.Errorf("Goals = %v; want %v", got, want)
	}
}

//----------------------------------------------------------------------------//
// Neighbors Tests
//----------------------------------------------------------------------------//

// TestNeighbors_Order verifies the fixed enumeration order for an interior cell.
func TestNeighbors_Order(t *testing.T) {
	got := slices.Collect(grid.Neighbors(1, 1, 3, 3))
	want := []grid.Coord{
		{Row: 0, Col: 1}, // up
		{Row: 1, Col: 2}, // right
		{Row: 2, Col: 1}, // down
		{Row: 1, Col: 0}, // left
		{Row: 0, Col: 2}, // up-right
		{Row: 2, Col: 2}, // down-right
		{Row: 2, Col: 0}, // down-left
		{Row: 0, Col: 0}, // up-left
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Neighbors(1,1) = %v; want %v", got, want)
	}
}

// TestNeighbors_Bounds checks corner, edge, and degenerate grids never leave bounds.
func TestNeighbors_Bounds(t *testing.T) {
	cases := []struct {
		name                 string
		row, col, rows, cols int
		want                 []grid.Coord
	}{
		{"TopLeft", 0, 0, 3, 3, []grid.Coord{{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}}},
		{"BottomRight", 2, 2, 3, 3, []grid.Coord{{Row: 1, Col: 2}, {Row: 2, Col: 1}, {Row: 1, Col: 1}}},
		{"SingleCell", 0, 0, 1, 1, nil},
		{"Row", 0, 1, 1, 3, []grid.Coord{{Row: 0, Col: 2}, {Row: 0, Col: 0}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := slices.Collect(grid.Neighbors(tc.row, tc.col, tc.rows, tc.cols))
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Neighbors = %v; want %v", got, tc.want)
			}
		})
	}
}

// TestNeighbors_EarlyStop ensures the sequence honours a false yield.
func TestNeighbors_EarlyStop(t *testing.T) {
	n := 0
	for range grid.Neighbors(1, 1, 3, 3) {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("iterations = %d; want 2", n)
	}
}

//----------------------------------------------------------------------------//
// FreeRegions Tests
//----------------------------------------------------------------------------//

// TestFreeRegions_Ring verifies a ring of obstacles isolates the centre cell.
func TestFreeRegions_Ring(t *testing.T) {
	g, _ := grid.New([][]int{
		{0, 0, 0, 0, 0},
		{0, 1, 1, 1, 0},
		{0, 1, 0, 1, 0},
		{0, 1, 1, 1, 2},
	})
	regions := g.FreeRegions()
	if len(regions) != 2 {
		t.Fatalf("regions = %d; want 2", len(regions))
	}
	if len(regions[1]) != 1 || g.Coordinate(regions[1][0]) != (grid.Coord{Row: 2, Col: 2}) {
		t.Errorf("isolated region = %v; want [(2, 2)]", regions[1])
	}
	if got := g.RegionOf(regions, grid.Coord{Row: 3, Col: 4}); got != 0 {
		t.Errorf("RegionOf(goal) = %d; want 0", got)
	}
	if got := g.RegionOf(regions, grid.Coord{Row: 1, Col: 1}); got != -1 {
		t.Errorf("RegionOf(obstacle) = %d; want -1", got)
	}
	if got := g.RegionOf(regions, grid.Coord{Row: 9, Col: 9}); got != -1 {
		t.Errorf("RegionOf(out of bounds) = %d; want -1", got)
	}
}

// TestFreeRegions_Diagonal verifies diagonal contact joins two cells.
func TestFreeRegions_Diagonal(t *testing.T) {
	g, _ := grid.New([][]int{
		{0, 1},
		{1, 2},
	})
	if regions := g.FreeRegions(); len(regions) != 1 {
		t.Errorf("regions = %v; want one 8-connected region", regions)
	}
}
