// Package wavefront computes a brushfire distance field over a grid.Grid and
// recovers shortest 8-connected paths by steepest descent over that field.
//
// What
//
//   - Expand runs breadth-first search seeded at the goal and labels every
//     reachable free cell with 2 + its hop distance to the goal.
//   - Descend walks from a start cell to ever smaller labels until it
//     reaches the goal (label 2) or runs out of improving neighbours.
//   - Field is the flat-backed distance field both operations share.
//
// Field labels
//
//	0      unreachable from the goal (never visited)
//	1      obstacle, copied through and never relabelled
//	2      the goal cell
//	n ≥ 3  shortest hop count to the goal, plus 2
//
// Determinism
//
//	Both Expand and Descend enumerate neighbours through grid.Neighbors, whose
//	order is fixed (Up, Right, Down, Left, then the diagonals). Among several
//	neighbours sharing the smallest label, Descend picks the first in that
//	order, so repeated calls yield identical paths.
//
// Partial paths
//
//	Descend never fails. A start outside the field or on an unreachable cell
//	yields an empty path; a walk that stops before the goal yields the partial
//	path walked so far. Callers check the last cell's label to tell the two
//	apart (see planner.Result.Reached).
//
// Complexity (N = rows × cols)
//
//   - Expand:  O(N) time, O(N) memory; each cell is enqueued at most once.
//   - Descend: O(L) time for a path of L cells, O(L) memory.
//
// Usage
//
//	field := wavefront.Expand(g, goal)
//	path := wavefront.Descend(field, start)
//
//	// With a hook observing every labelled cell:
//	field := wavefront.Expand(g, goal,
//	    wavefront.WithOnLabel(func(c grid.Coord, label int) { /* ... */ }),
//	)
package wavefront
