package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/wavefront/grid"
)

const configFileName = "wavefront.toml"

type config struct {
	Plan   planConfig   `toml:"plan"`
	Output outputConfig `toml:"output"`
	Batch  batchConfig  `toml:"batch"`
	Log    logConfig    `toml:"log"`
}

type planConfig struct {
	Start            []int `toml:"start"`
	StrictGoal       bool  `toml:"strict_goal"`
	RequireReachable bool  `toml:"require_reachable"`
}

type outputConfig struct {
	Color       string `toml:"color"`
	StepsPerRow int    `toml:"steps_per_row"`
	Timings     bool   `toml:"timings"`
}

type batchConfig struct {
	Jobs int `toml:"jobs"`
}

type logConfig struct {
	Level string `toml:"level"`
}

func defaultConfig() config {
	return config{
		Output: outputConfig{Color: "auto", StepsPerRow: 5},
		Log:    logConfig{Level: "info"},
	}
}

// start returns the configured default start, if any.
func (c config) start() (*grid.Coord, error) {
	switch len(c.Plan.Start) {
	case 0:
		return nil, nil
	case 2:
		return &grid.Coord{Row: c.Plan.Start[0], Col: c.Plan.Start[1]}, nil
	default:
		return nil, fmt.Errorf("%s: plan.start must be [row, col], got %v", configFileName, c.Plan.Start)
	}
}

// findConfig walks from startDir up to the filesystem root looking for
// wavefront.toml.
func findConfig(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadConfig decodes the explicit config path, or the nearest
// wavefront.toml above startDir, over the defaults. It returns the path
// it read, or "" when none was found.
func loadConfig(explicit, startDir string) (config, string, error) {
	cfg := defaultConfig()
	path := explicit
	if path == "" {
		found, ok, err := findConfig(startDir)
		if err != nil || !ok {
			return cfg, "", err
		}
		path = found
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return config{}, "", fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if _, err := cfg.start(); err != nil {
		return config{}, "", err
	}
	return cfg, path, nil
}
