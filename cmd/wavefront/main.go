package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/katalvlaran/wavefront/grid"
	"github.com/katalvlaran/wavefront/render"
)

// Version is the CLI version; override with -ldflags "-X main.Version=...".
var Version = "0.1.0-dev"

// app carries the state shared by subcommands after flag and config
// resolution.
type app struct {
	cfg        config
	configPath string
	log        *logrus.Logger
	render     render.Options
	timings    bool
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "wavefront",
		Short:         "Wavefront (brushfire) shortest-path planner for occupancy grids",
		Long:          `wavefront labels every free cell of a grid with its 8-connected distance to the goal and walks the steepest descent from a start cell.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().String("config", "", "path to "+configFileName+" (default: search upwards from the working directory)")
	root.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	root.PersistentFlags().String("log-level", "info", "log level (debug|info|warn|error)")
	root.PersistentFlags().Bool("timings", false, "show timing information")

	root.AddCommand(newPlanCmd(a))
	root.AddCommand(newInspectCmd(a))
	root.AddCommand(newBatchCmd(a))
	root.AddCommand(newVersionCmd(a))
	return root
}

// setup loads the config, lets explicitly set flags override it, and
// builds the logger and render options.
func (a *app) setup(cmd *cobra.Command) error {
	flags := cmd.Flags()
	explicit, err := flags.GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	a.cfg, a.configPath, err = loadConfig(explicit, ".")
	if err != nil {
		return err
	}

	if flags.Changed("color") {
		if a.cfg.Output.Color, err = flags.GetString("color"); err != nil {
			return fmt.Errorf("failed to get color flag: %w", err)
		}
	}
	if flags.Changed("log-level") {
		if a.cfg.Log.Level, err = flags.GetString("log-level"); err != nil {
			return fmt.Errorf("failed to get log-level flag: %w", err)
		}
	}
	a.timings = a.cfg.Output.Timings
	if flags.Changed("timings") {
		if a.timings, err = flags.GetBool("timings"); err != nil {
			return fmt.Errorf("failed to get timings flag: %w", err)
		}
	}

	if a.log, err = newLogger(a.cfg.Log.Level, cmd.ErrOrStderr()); err != nil {
		return err
	}
	colorOn, err := resolveColor(a.cfg.Output.Color, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	a.render = render.Options{Color: colorOn, StepsPerRow: a.cfg.Output.StepsPerRow}

	if a.configPath != "" {
		a.log.WithField("config", a.configPath).Debug("loaded config")
	}
	return nil
}

// newLogger builds a text logger writing to out at the named level.
func newLogger(level string, out io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(lvl)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return l, nil
}

// resolveColor maps auto|on|off to a decision; auto enables colour only
// for terminals and honours NO_COLOR.
func resolveColor(mode string, out io.Writer) (bool, error) {
	switch mode {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto", "":
		f, ok := out.(*os.File)
		return ok && os.Getenv("NO_COLOR") == "" && isTerminal(f), nil
	default:
		return false, fmt.Errorf("unknown color mode %q (want auto|on|off)", mode)
	}
}

// isTerminal reports whether f is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// parseCoord parses "row,col".
func parseCoord(s string) (grid.Coord, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return grid.Coord{}, fmt.Errorf("invalid coordinate %q: want row,col", s)
	}
	r, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return grid.Coord{}, fmt.Errorf("invalid row in %q: %w", s, err)
	}
	c, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return grid.Coord{}, fmt.Errorf("invalid col in %q: %w", s, err)
	}
	return grid.Coord{Row: r, Col: c}, nil
}

// main builds the command tree and runs it; any error exits with status 1.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logrus.StandardLogger().SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
		logrus.WithError(err).Error("wavefront failed")
		stop()
		os.Exit(1)
	}
}
