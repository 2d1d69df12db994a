// Package grid models a rectangular 2D occupancy map with a single goal
// cell, the input of every wavefront planning request.
//
// What:
//
//   - Grid wraps a rows×cols matrix of cell labels in a flat, row-major slice.
//   - Labels: Free (0), Obstacle (1), Goal (2). Anything else is rejected.
//   - Neighbors enumerates the in-bounds 8-connected neighbours of a cell in a
//     fixed order (Up, Right, Down, Left, Up-Right, Down-Right, Down-Left, Up-Left).
//   - FindGoal scans row-major and stops at the first goal cell.
//   - FreeRegions groups non-obstacle cells into 8-connected regions.
//
// Why:
//
//   - A flat backing slice makes the rectangular invariant structural and
//     avoids one allocation per row.
//   - The neighbour order is part of the contract: it decides tie-breaks in
//     path reconstruction, so it never changes.
//
// Complexity:
//
//   - New:         O(R×C) time and memory (deep copy).
//   - Neighbors:   O(1) per call, at most 8 yields.
//   - FindGoal:    O(R×C) worst case.
//   - FreeRegions: O(R×C×8) time, O(R×C) memory.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrInvalidLabel: a cell holds a value outside {0,1,2}.
//   - ErrOutOfRange: At was called with an out-of-bounds coordinate.
//
// A Grid is immutable once built and safe for concurrent readers.
package grid
