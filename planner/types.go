// Package planner defines the request options, result, and error taxonomy
// of wavefront planning.
package planner

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/wavefront/grid"
	"github.com/katalvlaran/wavefront/wavefront"
)

// Kind classifies a planning failure.
type Kind int

const (
	// OutOfBounds: the start lies outside the grid.
	OutOfBounds Kind = iota + 1
	// StartOnObstacle: the start addresses an obstacle cell.
	StartOnObstacle
	// GoalNotFound: no cell carries the goal label.
	GoalNotFound
	// MultipleGoals: more than one goal cell (only with WithStrictGoal).
	MultipleGoals
	// Unreachable: the path stops short of the goal (only with WithRequireReachable).
	Unreachable
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case OutOfBounds:
		return "OutOfBounds"
	case StartOnObstacle:
		return "StartOnObstacle"
	case GoalNotFound:
		return "GoalNotFound"
	case MultipleGoals:
		return "MultipleGoals"
	case Unreachable:
		return "Unreachable"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Sentinel errors, one per Kind, for use with errors.Is.
var (
	ErrOutOfBounds     = errors.New("planner: start out of bounds")
	ErrStartOnObstacle = errors.New("planner: start on obstacle")
	ErrGoalNotFound    = errors.New("planner: goal not found")
	ErrMultipleGoals   = errors.New("planner: multiple goals")
	ErrUnreachable     = errors.New("planner: goal unreachable")
)

var sentinels = map[Kind]error{
	OutOfBounds:     ErrOutOfBounds,
	StartOnObstacle: ErrStartOnObstacle,
	GoalNotFound:    ErrGoalNotFound,
	MultipleGoals:   ErrMultipleGoals,
	Unreachable:     ErrUnreachable,
}

// PlanError reports an invalid planning request with enough context to
// build a user-facing message.
type PlanError struct {
	Kind Kind
	// Start is the requested start coordinate.
	Start grid.Coord
	// Rows and Cols are the grid dimensions; valid rows are [0, Rows-1].
	Rows, Cols int
	// Goals lists the goal cells involved (MultipleGoals, Unreachable).
	Goals []grid.Coord
}

// Error implements the error interface.
func (e *PlanError) Error() string {
	switch e.Kind {
	case OutOfBounds:
		return fmt.Sprintf("planner: starting position %s is outside the map boundaries: row [0-%d], col [0-%d]",
			e.Start, e.Rows-1, e.Cols-1)
	case StartOnObstacle:
		return fmt.Sprintf("planner: starting position %s is on a wall, choose a free cell (value 0)", e.Start)
	case GoalNotFound:
		return "planner: goal not found in the map"
	case MultipleGoals:
		cells := make([]string, len(e.Goals))
		for i, c := range e.Goals {
			cells[i] = c.String()
		}
		return fmt.Sprintf("planner: map has %d goal cells, want exactly one: %s", len(e.Goals), strings.Join(cells, ", "))
	case Unreachable:
		goal := "goal"
		if len(e.Goals) > 0 {
			goal = "goal " + e.Goals[0].String()
		}
		return fmt.Sprintf("planner: %s is unreachable from starting position %s", goal, e.Start)
	default:
		return fmt.Sprintf("planner: %s", e.Kind)
	}
}

// Is matches the sentinel error of e.Kind.
func (e *PlanError) Is(target error) bool {
	s, ok := sentinels[e.Kind]
	return ok && target == s
}

// Option configures Plan via functional arguments.
type Option func(*Options)

// Options holds the parameters of a planning request.
type Options struct {
	// StrictGoal rejects grids with more than one goal cell.
	StrictGoal bool
	// RequireReachable reports a path that stops short of the goal as Unreachable.
	RequireReachable bool
	// OnLabel is forwarded to wavefront.WithOnLabel.
	OnLabel func(c grid.Coord, label int)
	// Now is the clock used for Stats.
	Now func() time.Time
}

// DefaultOptions returns Options with single-goal-wins semantics, silent
// partial paths, no hook, and the wall clock.
func DefaultOptions() Options {
	return Options{
		Now: time.Now,
	}
}

// WithStrictGoal rejects grids holding more than one goal cell.
func WithStrictGoal() Option {
	return func(o *Options) { o.StrictGoal = true }
}

// WithRequireReachable returns an Unreachable error when the path does not
// end at the goal.
func WithRequireReachable() Option {
	return func(o *Options) { o.RequireReachable = true }
}

// WithOnLabel registers a callback run for every cell the expansion labels.
func WithOnLabel(fn func(c grid.Coord, label int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLabel = fn
		}
	}
}

// WithClock overrides the clock used for Stats.
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		if now != nil {
			o.Now = now
		}
	}
}

// Stats records the cost of one planning request.
type Stats struct {
	ExpandDuration  time.Duration
	DescendDuration time.Duration
	// Labelled counts the cells the expansion labelled, goal included.
	Labelled int
}

// Total returns the combined expansion and descent time.
func (s Stats) Total() time.Duration {
	return s.ExpandDuration + s.DescendDuration
}

// Result holds the outcome of a planning request. Field and Path are owned
// by the caller; nothing is shared with other requests.
type Result struct {
	Field *wavefront.Field
	Path  []grid.Coord
	Goal  grid.Coord
	Stats Stats
}

// Reached reports whether the path ends at the goal.
func (r *Result) Reached() bool {
	return len(r.Path) > 0 && r.Path[len(r.Path)-1] == r.Goal
}

// Len returns the number of moves along the path (cells minus one), or 0
// for an empty path.
func (r *Result) Len() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}
