package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wavefront/grid"
	"github.com/katalvlaran/wavefront/gridio"
	"github.com/katalvlaran/wavefront/render"
)

func newInspectCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [flags] <grid-file>",
		Short: "Describe a grid: size, goals, free regions, start validity",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runInspect,
	}
	cmd.Flags().String("start", "", "check this start cell (row,col)")
	return cmd
}

func (a *app) runInspect(cmd *cobra.Command, args []string) error {
	doc, err := gridio.Load(args[0])
	if err != nil {
		return err
	}
	g := doc.Grid
	regions := g.FreeRegions()
	goals := g.Goals()

	var b strings.Builder
	fmt.Fprintf(&b, "file:    %s\n", doc.Source)
	fmt.Fprintf(&b, "size:    %d rows x %d cols (row [0-%d], col [0-%d])\n", g.Rows(), g.Cols(), g.Rows()-1, g.Cols()-1)
	switch len(goals) {
	case 0:
		b.WriteString("goal:    none\n")
	case 1:
		fmt.Fprintf(&b, "goal:    %s\n", goals[0])
	default:
		fmt.Fprintf(&b, "goal:    %s (and %d more; the first wins)\n", goals[0], len(goals)-1)
	}
	fmt.Fprintf(&b, "regions: %d\n", len(regions))
	for i, region := range regions {
		fmt.Fprintf(&b, "  region %d: %d cells from %s\n", i, len(region), g.Coordinate(region[0]))
	}

	start, ok, err := a.inspectStart(cmd, doc)
	if err != nil {
		return err
	}
	if ok {
		b.WriteString(describeStart(g, regions, goals, start))
	}
	if _, err := fmt.Fprint(cmd.OutOrStdout(), b.String()); err != nil {
		return err
	}
	return render.Grid(cmd.OutOrStdout(), g, a.render)
}

// inspectStart returns the --start flag or the document's start.
func (a *app) inspectStart(cmd *cobra.Command, doc *gridio.Document) (grid.Coord, bool, error) {
	if f := cmd.Flags().Lookup("start"); f != nil && f.Changed {
		c, err := parseCoord(f.Value.String())
		return c, err == nil, err
	}
	if doc.Start != nil {
		return *doc.Start, true, nil
	}
	return grid.Coord{}, false, nil
}

// describeStart reports whether start is usable before any planning runs.
func describeStart(g *grid.Grid, regions [][]int, goals []grid.Coord, start grid.Coord) string {
	prefix := fmt.Sprintf("start:   %s ", start)
	switch {
	case !g.InBounds(start.Row, start.Col):
		return prefix + fmt.Sprintf("is outside the map: row [0-%d], col [0-%d]\n", g.Rows()-1, g.Cols()-1)
	case g.Label(start) == grid.Obstacle:
		return prefix + "is on a wall, choose a free cell (value 0)\n"
	case len(goals) == 0:
		return prefix + "is free, but the map has no goal\n"
	}
	if g.RegionOf(regions, start) != g.RegionOf(regions, goals[0]) {
		return prefix + "is free, but cut off from the goal\n"
	}
	return prefix + "is valid (free space, connected to the goal)\n"
}
