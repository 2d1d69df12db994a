package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wavefront/grid"
	"github.com/katalvlaran/wavefront/gridio"
	"github.com/katalvlaran/wavefront/planner"
	"github.com/katalvlaran/wavefront/render"
)

func newPlanCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan [flags] <grid-file>",
		Short: "Plan a path from the start cell to the goal",
		Long: `Load a grid (.txt, .grid, .json or .toml), expand the wavefront from its goal
and print the value map, the path and its step listing.`,
		Args: cobra.ExactArgs(1),
		RunE: a.runPlan,
	}
	cmd.Flags().String("start", "", "start cell as row,col (default: the file's start, then plan.start from config)")
	cmd.Flags().String("format", "text", "output format (text|json|msgpack)")
	cmd.Flags().String("out", "", "write output to this file instead of stdout")
	cmd.Flags().Bool("strict-goal", false, "reject grids with more than one goal cell")
	cmd.Flags().Bool("require-reachable", false, "fail when the start is cut off from the goal")
	cmd.Flags().Int("steps-per-row", 0, "steps per line in the path listing (default from config, 5)")
	return cmd
}

func (a *app) runPlan(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	format, err := flags.GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "text" && format != "json" && format != "msgpack" {
		return fmt.Errorf("unknown format %q (want text|json|msgpack)", format)
	}
	outPath, err := flags.GetString("out")
	if err != nil {
		return fmt.Errorf("failed to get out flag: %w", err)
	}
	strict, err := flags.GetBool("strict-goal")
	if err != nil {
		return fmt.Errorf("failed to get strict-goal flag: %w", err)
	}
	reachable, err := flags.GetBool("require-reachable")
	if err != nil {
		return fmt.Errorf("failed to get require-reachable flag: %w", err)
	}
	opts := a.render
	if flags.Changed("steps-per-row") {
		if opts.StepsPerRow, err = flags.GetInt("steps-per-row"); err != nil {
			return fmt.Errorf("failed to get steps-per-row flag: %w", err)
		}
	}

	doc, err := gridio.Load(args[0])
	if err != nil {
		return err
	}
	start, err := a.resolveStart(cmd, doc)
	if err != nil {
		return err
	}

	log := a.log.WithFields(logrus.Fields{"file": doc.Source, "start": start.String()})
	log.WithFields(logrus.Fields{"rows": doc.Grid.Rows(), "cols": doc.Grid.Cols()}).Debug("planning")

	res, planErr := planner.Plan(doc.Grid, start, a.planOptions(strict, reachable)...)
	if res == nil {
		return planErr
	}
	log.WithFields(logrus.Fields{
		"goal":     res.Goal.String(),
		"moves":    res.Len(),
		"labelled": res.Stats.Labelled,
		"expand":   res.Stats.ExpandDuration,
		"descend":  res.Stats.DescendDuration,
	}).Debug("planned")
	if !res.Reached() && planErr == nil {
		log.Warn("start is cut off from the goal, path is partial")
	}

	if outPath == "" {
		if err := writeResult(cmd.OutOrStdout(), format, res, a.timings, opts); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
		return planErr
	}
	opts.Color = false
	if err := writeResultFile(outPath, format, res, a.timings, opts); err != nil {
		return err
	}
	log.WithField("out", outPath).Info("result written")
	return planErr
}

// writeResultFile writes the result to path and reports close errors.
func writeResultFile(path, format string, res *planner.Result, timings bool, opts render.Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := writeResult(f, format, res, timings, opts); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write result: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

// planOptions merges config defaults with the per-call flags.
func (a *app) planOptions(strict, reachable bool) []planner.Option {
	var opts []planner.Option
	if strict || a.cfg.Plan.StrictGoal {
		opts = append(opts, planner.WithStrictGoal())
	}
	if reachable || a.cfg.Plan.RequireReachable {
		opts = append(opts, planner.WithRequireReachable())
	}
	return opts
}

// resolveStart picks the --start flag, then the document's start, then the
// config default.
func (a *app) resolveStart(cmd *cobra.Command, doc *gridio.Document) (grid.Coord, error) {
	if f := cmd.Flags().Lookup("start"); f != nil && f.Changed {
		return parseCoord(f.Value.String())
	}
	if doc.Start != nil {
		return *doc.Start, nil
	}
	cfgStart, err := a.cfg.start()
	if err != nil {
		return grid.Coord{}, err
	}
	if cfgStart != nil {
		return *cfgStart, nil
	}
	return grid.Coord{}, errNoStart
}

var errNoStart = errors.New("no start cell: pass --start row,col, mark S in the grid, or set plan.start in " + configFileName)

func writeResult(w io.Writer, format string, res *planner.Result, timings bool, opts render.Options) error {
	switch format {
	case "json":
		return gridio.WriteJSON(w, res)
	case "msgpack":
		return gridio.WriteMsgpack(w, res)
	}
	if err := render.Summary(w, res, timings, opts); err != nil {
		return err
	}
	if err := render.Field(w, res.Field, res.Path, res.Goal, opts); err != nil {
		return err
	}
	return render.Steps(w, res.Path, opts)
}
