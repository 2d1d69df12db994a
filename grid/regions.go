package grid

// FreeRegions finds all 8-connected regions of non-obstacle cells
// (Free or Goal). Regions are returned in row-major order of their first
// cell; each region is a slice of row-major indices in BFS discovery order.
//
// To convert an index back to a Coord, use Coordinate(idx).
//
// Time:   O(R·C·8).
// Memory: O(R·C) for visited flags and output.
func (g *Grid) FreeRegions() [][]int {
	seen := make([]bool, len(g.cells))
	var regions [][]int

	for i0, v := range g.cells {
		if v == Obstacle || seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true

		for qi := 0; qi < len(queue); qi++ {
			u := g.Coordinate(queue[qi])
			for n := range g.Neighbors(u) {
				vi := g.Index(n.Row, n.Col)
				if seen[vi] || g.cells[vi] == Obstacle {
					continue
				}
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
		regions = append(regions, queue)
	}
	return regions
}

// RegionOf returns the index into FreeRegions() of the region holding c,
// or -1 when c is out of bounds or an obstacle.
func (g *Grid) RegionOf(regions [][]int, c Coord) int {
	if !g.InBounds(c.Row, c.Col) {
		return -1
	}
	target := g.Index(c.Row, c.Col)
	for ri, region := range regions {
		for _, idx := range region {
			if idx == target {
				return ri
			}
		}
	}
	return -1
}
