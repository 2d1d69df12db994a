package wavefront

import (
	"github.com/katalvlaran/wavefront/grid"
)

// Descend reconstructs a path from start to the goal by steepest descent
// over a completed field.
//
// Behavior:
//  1. start out of bounds, or labelled Unreachable → nil.
//  2. Append start; while the current label is not Target, pick the
//     neighbour with the strictly smallest label below the current one,
//     skipping Walls and Unreachable cells. Ties go to the first neighbour
//     in grid.Neighbors order.
//  3. No improving neighbour → return the partial path walked so far.
//
// The returned path never contains a Wall, consecutive cells are 8-adjacent,
// and labels strictly decrease along it. It ends at the goal exactly when
// the last cell's label is Target.
//
// Complexity: O(L) for a path of L cells.
func Descend(f *Field, start grid.Coord) []grid.Coord {
	if !f.InBounds(start.Row, start.Col) || f.Label(start) == Unreachable {
		return nil
	}

	cur := start
	path := []grid.Coord{cur}
	for f.Label(cur) != Target {
		best, ok := steepest(f, cur)
		if !ok {
			break
		}
		cur = best
		path = append(path, cur)
	}
	return path
}

// steepest returns the neighbour of c with the smallest label strictly below
// label(c), ignoring Walls and Unreachable cells. First in order wins ties.
func steepest(f *Field, c grid.Coord) (grid.Coord, bool) {
	var best grid.Coord
	bestLabel := f.Label(c)
	found := false
	for nb := range grid.Neighbors(c.Row, c.Col, f.rows, f.cols) {
		l := f.Label(nb)
		if l == Wall || l == Unreachable || l >= bestLabel {
			continue
		}
		best, bestLabel, found = nb, l, true
	}
	return best, found
}
