// Package planner validates a planning request, runs the wavefront
// expansion, and reconstructs the path from the start cell to the goal.
//
// What:
//
//   - Plan(g, start) checks the start, locates the goal, calls
//     wavefront.Expand and wavefront.Descend, and returns a Result holding
//     the distance field, the path, the goal, and timing Stats.
//   - Batch runs many independent Plan requests concurrently.
//
// Validation (in order, fail fast, before any expansion):
//
//  1. start within [0,rows)×[0,cols)      → OutOfBounds
//  2. grid cell at start is not an obstacle → StartOnObstacle
//  3. some cell carries the goal label      → GoalNotFound
//
// Every failure is a *PlanError carrying its Kind and the offending
// coordinates; match it with errors.Is(err, planner.ErrOutOfBounds) etc. or
// errors.As to read the fields.
//
// Multiple goals:
//
//	By default the first goal in row-major order wins and any other goal cell
//	is treated as free space. WithStrictGoal rejects such grids with
//	MultipleGoals instead.
//
// Unreachable goals:
//
//	By default a start cut off from the goal is not an error: Result.Path is
//	empty or partial and Result.Reached reports false. WithRequireReachable
//	turns this into an Unreachable error returned alongside the Result.
//
// Concurrency:
//
//	Plan never mutates its grid and allocates a fresh field and path per
//	call, so concurrent calls sharing one *grid.Grid need no locking.
//
// Complexity: O(R×C) time and memory per request.
package planner
