package grid

import "iter"

// offsets lists (dRow, dCol) in enumeration order:
// Up, Right, Down, Left, Up-Right, Down-Right, Down-Left, Up-Left.
// Path reconstruction breaks ties by this order, so it must stay fixed.
var offsets = [8][2]int{
	{-1, 0},
	{0, 1},
	{1, 0},
	{0, -1},
	{-1, 1},
	{1, 1},
	{1, -1},
	{-1, -1},
}

// NeighborOffsets returns a copy of the 8-connected (dRow, dCol) offsets
// in enumeration order.
func NeighborOffsets() [8][2]int {
	return offsets
}

// Neighbors yields the in-bounds 8-connected neighbours of (row, col) in a
// rows×cols grid, in the fixed order of NeighborOffsets. It is a pure
// function of its arguments and never yields an out-of-bounds coordinate.
// Complexity: O(1), at most 8 yields.
func Neighbors(row, col, rows, cols int) iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for _, d := range offsets {
			nr, nc := row+d[0], col+d[1]
			if nr < 0 || nr >= rows || nc < 0 || nc >= cols {
				continue
			}
			if !yield(Coord{Row: nr, Col: nc}) {
				return
			}
		}
	}
}

// Neighbors yields the in-bounds neighbours of c within g.
func (g *Grid) Neighbors(c Coord) iter.Seq[Coord] {
	return Neighbors(c.Row, c.Col, g.rows, g.cols)
}
