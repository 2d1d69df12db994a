// Package wavefront is the root of a wavefront (brushfire) path planner for
// 2-D occupancy grids.
//
// A grid marks every cell as free (0), obstacle (1) or goal (2). The planner
// floods the grid outward from the goal with an 8-connected breadth-first
// search, labelling each reachable cell 2 + its hop distance, then walks the
// steepest descent of that field from a start cell back to the goal.
//
// Layout:
//
//	grid/          validated Grid, Coord, fixed-order neighbours, free regions
//	wavefront/     Field, Expand (BFS labelling) and Descend (path walk)
//	planner/       Plan with start/goal validation, typed errors, Stats, Batch
//	gridio/        text/JSON/TOML grid loading, JSON and msgpack result export
//	render/        terminal rendering of grids, fields, paths and summaries
//	cmd/wavefront/ the CLI (plan, inspect, batch, version)
//
// Quick example:
//
//	S . .        S * 4
//	. # .   ->   4 # *
//	. . G        4 3 G
//
// Complexity: expansion is O(rows·cols) time and memory; descent is
// O(path length · 8).
package wavefront
