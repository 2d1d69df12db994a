// Package render draws grids, distance fields, and paths as terminal text.
//
// Every function builds its output in memory and writes it with a single
// Write call, returning that call's error. Colour is opt-in through
// Options.Color; without it the output is plain ASCII and stable enough
// for golden tests.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"

	"github.com/katalvlaran/wavefront/grid"
	"github.com/katalvlaran/wavefront/planner"
	"github.com/katalvlaran/wavefront/wavefront"
)

// Glyphs used for special cells.
const (
	GlyphWall        = "#"
	GlyphFree        = "."
	GlyphGoal        = "G"
	GlyphStart       = "S"
	GlyphPath        = "*"
	GlyphUnreachable = "."
)

// Options controls rendering.
type Options struct {
	// Color enables ANSI colours and styled headings.
	Color bool
	// StepsPerRow is the number of steps per line in Steps; <= 0 means 5.
	StepsPerRow int
}

// DefaultOptions returns plain output with five steps per row.
func DefaultOptions() Options {
	return Options{StepsPerRow: 5}
}

// palette holds the colour functions for one render call.
type palette struct {
	wall, goal, start, path, dim *color.Color
	heading                      lipgloss.Style
	enabled                      bool
}

func newPalette(enabled bool) palette {
	p := palette{
		wall:    color.New(color.FgHiBlack),
		goal:    color.New(color.FgGreen, color.Bold),
		start:   color.New(color.FgRed, color.Bold),
		path:    color.New(color.FgYellow, color.Bold),
		dim:     color.New(color.FgBlue),
		heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		enabled: enabled,
	}
	for _, c := range []*color.Color{p.wall, p.goal, p.start, p.path, p.dim} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) title(s string) string {
	if !p.enabled {
		return s
	}
	return p.heading.Render(s)
}

// pad right-aligns s to width w.
func pad(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return strings.Repeat(" ", w-len(s)) + s
}

// Grid renders the raw occupancy map: '.' free, '#' wall, 'G' goal.
func Grid(w io.Writer, g *grid.Grid, opts Options) error {
	p := newPalette(opts.Color)
	var b strings.Builder
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			switch g.Label(grid.Coord{Row: r, Col: c}) {
			case grid.Obstacle:
				b.WriteString(p.wall.Sprint(GlyphWall))
			case grid.Goal:
				b.WriteString(p.goal.Sprint(GlyphGoal))
			default:
				b.WriteString(GlyphFree)
			}
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Field renders the distance field with the path overlaid. Labels are
// right-aligned to the widest label. Walls print '#', unreachable cells
// '.', the goal 'G', and the first path cell 'S'. Other path cells print
// their label highlighted, or '*' when colour is off.
func Field(w io.Writer, f *wavefront.Field, path []grid.Coord, goal grid.Coord, opts Options) error {
	p := newPalette(opts.Color)
	width := len(strconv.Itoa(f.MaxLabel()))
	onPath := make(map[grid.Coord]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}

	var b strings.Builder
	for r := 0; r < f.Rows(); r++ {
		for c := 0; c < f.Cols(); c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			cell := grid.Coord{Row: r, Col: c}
			label := f.Label(cell)
			switch {
			case cell == goal && label == wavefront.Target:
				b.WriteString(p.goal.Sprint(pad(GlyphGoal, width)))
			case len(path) > 0 && cell == path[0]:
				b.WriteString(p.start.Sprint(pad(GlyphStart, width)))
			case label == wavefront.Wall:
				b.WriteString(p.wall.Sprint(pad(GlyphWall, width)))
			case label == wavefront.Unreachable:
				b.WriteString(pad(GlyphUnreachable, width))
			case onPath[cell] && !p.enabled:
				b.WriteString(pad(GlyphPath, width))
			case onPath[cell]:
				b.WriteString(p.path.Sprint(pad(strconv.Itoa(label), width)))
			default:
				b.WriteString(p.dim.Sprint(pad(strconv.Itoa(label), width)))
			}
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Steps lists the path as "Step n: (r, c)" entries, opts.StepsPerRow per
// line, under a "Path Coordinates" heading.
func Steps(w io.Writer, path []grid.Coord, opts Options) error {
	p := newPalette(opts.Color)
	perRow := opts.StepsPerRow
	if perRow <= 0 {
		perRow = 5
	}

	entries := make([]string, len(path))
	width := 0
	for i, c := range path {
		entries[i] = fmt.Sprintf("Step %d: %s", i+1, c)
		width = max(width, len(entries[i]))
	}

	var b strings.Builder
	b.WriteString(p.title("Path Coordinates"))
	b.WriteByte('\n')
	if len(path) == 0 {
		b.WriteString("(no path)\n")
	}
	for i, e := range entries {
		last := i == len(entries)-1 || (i+1)%perRow == 0
		if last {
			b.WriteString(e)
			b.WriteByte('\n')
			continue
		}
		b.WriteString(e + strings.Repeat(" ", width-len(e)+2))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Summary reports the goal, path length, and whether the goal was reached.
// With timings it also reports the planner's Stats.
func Summary(w io.Writer, res *planner.Result, timings bool, opts Options) error {
	p := newPalette(opts.Color)
	var b strings.Builder
	b.WriteString(p.title("Value Map and Path"))
	b.WriteByte('\n')
	fmt.Fprintf(&b, "goal:    %s\n", res.Goal)
	if len(res.Path) > 0 {
		fmt.Fprintf(&b, "start:   %s\n", res.Path[0])
	}
	fmt.Fprintf(&b, "moves:   %d\n", res.Len())
	if res.Reached() {
		fmt.Fprintf(&b, "reached: %s\n", p.goal.Sprint("yes"))
	} else {
		fmt.Fprintf(&b, "reached: %s\n", p.start.Sprint("no (start is cut off from the goal)"))
	}
	if timings {
		s := res.Stats
		fmt.Fprintf(&b, "path found in %.4f ms (expand %.4f ms, descend %.4f ms, %d cells labelled)\n",
			Millis(s.Total()), Millis(s.ExpandDuration), Millis(s.DescendDuration), s.Labelled)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Millis converts d to fractional milliseconds for timing output.
func Millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
