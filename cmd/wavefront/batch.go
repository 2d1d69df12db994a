package main

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wavefront/gridio"
	"github.com/katalvlaran/wavefront/planner"
	"github.com/katalvlaran/wavefront/render"
)

func newBatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch [flags] <directory>",
		Short: "Plan every grid file in a directory concurrently",
		Long: `Plan every .txt, .grid, .json and .toml grid directly under the directory.
Each grid uses its own start marker, falling back to plan.start from the config.`,
		Args: cobra.ExactArgs(1),
		RunE: a.runBatch,
	}
	cmd.Flags().Int("jobs", 0, "max parallel planners (0=auto, or batch.jobs from config)")
	cmd.Flags().Bool("strict-goal", false, "reject grids with more than one goal cell")
	cmd.Flags().Bool("require-reachable", false, "count grids whose start is cut off from the goal as failures")
	return cmd
}

func (a *app) runBatch(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	jobs := a.cfg.Batch.Jobs
	if flags.Changed("jobs") {
		var err error
		if jobs, err = flags.GetInt("jobs"); err != nil {
			return fmt.Errorf("failed to get jobs flag: %w", err)
		}
	}
	strict, err := flags.GetBool("strict-goal")
	if err != nil {
		return fmt.Errorf("failed to get strict-goal flag: %w", err)
	}
	reachable, err := flags.GetBool("require-reachable")
	if err != nil {
		return fmt.Errorf("failed to get require-reachable flag: %w", err)
	}
	cfgStart, err := a.cfg.start()
	if err != nil {
		return err
	}

	files, err := gridio.ListDir(args[0])
	if err != nil {
		return err
	}
	a.log.WithFields(logrus.Fields{"dir": args[0], "files": len(files), "jobs": jobs}).Debug("batch")

	// Load failures keep their slot so output stays in file order.
	loadErrs := make(map[int]error)
	var reqs []planner.Request
	var reqFile []int
	opts := a.planOptions(strict, reachable)
	for i, path := range files {
		doc, err := gridio.Load(path)
		if err != nil {
			loadErrs[i] = err
			continue
		}
		start := doc.Start
		if start == nil {
			start = cfgStart
		}
		if start == nil {
			loadErrs[i] = errNoStart
			continue
		}
		reqs = append(reqs, planner.Request{ID: path, Grid: doc.Grid, Start: *start, Options: opts})
		reqFile = append(reqFile, i)
	}

	resps := planner.Batch(cmd.Context(), reqs, jobs)
	byFile := make(map[int]planner.Response, len(resps))
	for _, r := range resps {
		byFile[reqFile[r.Index]] = r
	}

	var b strings.Builder
	failed := 0
	for i, path := range files {
		if err, ok := loadErrs[i]; ok {
			failed++
			fmt.Fprintf(&b, "%s: error: %v\n", path, err)
			continue
		}
		r := byFile[i]
		switch {
		case r.Err != nil:
			failed++
			fmt.Fprintf(&b, "%s: error: %v\n", path, r.Err)
		case r.Result.Reached():
			fmt.Fprintf(&b, "%s: reached %s in %d moves", path, r.Result.Goal, r.Result.Len())
			if a.timings {
				fmt.Fprintf(&b, " (%.4f ms)", render.Millis(r.Result.Stats.Total()))
			}
			b.WriteByte('\n')
		default:
			fmt.Fprintf(&b, "%s: partial path of %d moves, goal %s unreachable\n", path, r.Result.Len(), r.Result.Goal)
		}
	}
	if _, err := fmt.Fprint(cmd.OutOrStdout(), b.String()); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d grids failed", failed, len(files))
	}
	return nil
}
