package planner

import (
	"github.com/katalvlaran/wavefront/grid"
	"github.com/katalvlaran/wavefront/wavefront"
)

// Plan validates start against g, expands the distance field from the goal,
// and descends it from start.
//
// Returns a *PlanError (OutOfBounds, StartOnObstacle, GoalNotFound, and with
// WithStrictGoal also MultipleGoals) before any expansion work. With
// WithRequireReachable a path that misses the goal yields both the Result
// and an Unreachable error; otherwise the partial Result is returned alone.
func Plan(g *grid.Grid, start grid.Coord, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	goal, err := validate(g, start, o)
	if err != nil {
		return nil, err
	}

	res := &Result{Goal: goal}
	hook := func(c grid.Coord, label int) {
		res.Stats.Labelled++
		if o.OnLabel != nil {
			o.OnLabel(c, label)
		}
	}

	t0 := o.Now()
	res.Field = wavefront.Expand(g, goal, wavefront.WithOnLabel(hook))
	t1 := o.Now()
	res.Path = wavefront.Descend(res.Field, start)
	t2 := o.Now()
	res.Stats.ExpandDuration = t1.Sub(t0)
	res.Stats.DescendDuration = t2.Sub(t1)

	if o.RequireReachable && !res.Reached() {
		return res, &PlanError{Kind: Unreachable, Start: start, Rows: g.Rows(), Cols: g.Cols(), Goals: []grid.Coord{goal}}
	}
	return res, nil
}

// validate runs the request checks in order and returns the goal.
func validate(g *grid.Grid, start grid.Coord, o Options) (grid.Coord, error) {
	perr := &PlanError{Start: start, Rows: g.Rows(), Cols: g.Cols()}

	if !g.InBounds(start.Row, start.Col) {
		perr.Kind = OutOfBounds
		return grid.Coord{}, perr
	}
	if g.Label(start) == grid.Obstacle {
		perr.Kind = StartOnObstacle
		return grid.Coord{}, perr
	}
	if o.StrictGoal {
		if goals := g.Goals(); len(goals) > 1 {
			perr.Kind = MultipleGoals
			perr.Goals = goals
			return grid.Coord{}, perr
		}
	}
	goal, ok := g.FindGoal()
	if !ok {
		perr.Kind = GoalNotFound
		return grid.Coord{}, perr
	}
	return goal, nil
}
