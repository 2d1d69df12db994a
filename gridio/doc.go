// Package gridio loads occupancy grids from files and exports planning
// results.
//
// Input formats, chosen by file extension:
//
//	.txt, .grid  one row per line. Cells are single glyphs, optionally
//	             separated by spaces or commas:
//	               0 .   free
//	               1 # X obstacle
//	               2 G   goal
//	               S     free, and marks the start cell
//	             Lines starting with ';' are comments; blank lines are skipped.
//	             A single row may be up to 16 MiB of text.
//	.json        {"map": [[0,1,...],...], "start": [row, col]} or a bare [[...]].
//	.toml        map = [[0,1,...],...] with an optional [start] table (row, col).
//
// The variable name "map" follows the MATLAB files the planner was first
// fed with.
//
// Output formats:
//
//	WriteJSON     human-readable result: goal, path, field, reached.
//	WriteMsgpack  compact versioned snapshot, read back by ReadMsgpack.
//
// Errors:
//
//   - ErrParse: malformed document; wrapped with source and line.
//   - ErrUnsupportedFormat: unknown file extension.
//   - ErrSnapshotSchema: snapshot written by an incompatible version.
//   - grid.ErrEmptyGrid, grid.ErrNonRectangular, grid.ErrInvalidLabel from
//     grid.New, wrapped with the source name.
package gridio
