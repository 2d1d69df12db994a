package planner

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/wavefront/grid"
)

// Request is one independent planning job.
type Request struct {
	// ID is an opaque caller label (e.g. the source file name).
	ID      string
	Grid    *grid.Grid
	Start   grid.Coord
	Options []Option
}

// Response pairs a Request with its outcome. Index is the request's
// position in the Batch input.
type Response struct {
	Index  int
	ID     string
	Result *Result
	Err    error
}

// Batch plans every request concurrently with at most jobs workers
// (jobs <= 0 means GOMAXPROCS). Responses are returned in request order.
// Validation errors stay in their Response and never stop other requests;
// once ctx is done, requests not yet started get ctx.Err().
func Batch(ctx context.Context, reqs []Request, jobs int) []Response {
	out := make([]Response, len(reqs))
	if len(reqs) == 0 {
		return out
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(reqs)))

	for i, req := range reqs {
		out[i] = Response{Index: i, ID: req.ID}
		g.Go(func() error {
			// index i is unique per goroutine, no lock needed
			if err := gctx.Err(); err != nil {
				out[i].Err = err
				return nil
			}
			if req.Grid == nil {
				out[i].Err = grid.ErrEmptyGrid
				return nil
			}
			out[i].Result, out[i].Err = Plan(req.Grid, req.Start, req.Options...)
			return nil
		})
	}
	_ = g.Wait()

	return out
}
