package wavefront

import (
	"github.com/katalvlaran/wavefront/grid"
)

// expander encapsulates the mutable state of one expansion.
// It lives for a single Expand call and is discarded on return.
type expander struct {
	field *Field
	opts  Options
	queue []int // row-major indices, FIFO via head
	head  int
}

// Expand computes the distance field of g relative to goal.
//
// Behavior:
//  1. Copy the grid labels into a fresh field; g is never mutated. Goal
//     labels other than goal are demoted to Unreachable so the field is
//     relative to this one goal only.
//  2. Label goal with Target (2) and seed the queue with it.
//  3. Pop cells in FIFO order; every neighbour still labelled Unreachable (0)
//     gets label(current)+1 and is enqueued. Walls (1) are never enqueued.
//
// BFS visits cells shell by shell, so the first label a cell receives is its
// minimum hop count; labelled cells are never revisited.
// goal must be in bounds; the planner validates it before calling Expand.
//
// Complexity: O(R·C) time and memory.
func Expand(g *grid.Grid, goal grid.Coord, opts ...Option) *Field {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.Rows() * g.Cols()
	e := &expander{
		field: &Field{rows: g.Rows(), cols: g.Cols(), labels: g.Cells()},
		opts:  o,
		queue: make([]int, 0, n),
	}
	seed := goal.Row*g.Cols() + goal.Col
	for i, v := range e.field.labels {
		if v == Target && i != seed {
			e.field.labels[i] = Unreachable
		}
	}
	e.label(goal, Target)
	e.loop()

	return e.field
}

// label assigns l to c, reports it to OnLabel, and enqueues c.
func (e *expander) label(c grid.Coord, l int) {
	idx := c.Row*e.field.cols + c.Col
	e.field.labels[idx] = l
	e.opts.OnLabel(c, l)
	e.queue = append(e.queue, idx)
}

// loop drains the queue, labelling unvisited neighbours of each cell.
func (e *expander) loop() {
	f := e.field
	for e.head < len(e.queue) {
		idx := e.queue[e.head]
		e.head++
		cur := grid.Coord{Row: idx / f.cols, Col: idx % f.cols}
		next := f.labels[idx] + 1

		for nb := range grid.Neighbors(cur.Row, cur.Col, f.rows, f.cols) {
			if f.Label(nb) == Unreachable {
				e.label(nb, next)
			}
		}
	}
}
