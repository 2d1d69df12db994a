package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wavefront/grid"
	"github.com/katalvlaran/wavefront/gridio"
	"github.com/katalvlaran/wavefront/planner"
	"github.com/katalvlaran/wavefront/render"
)

const centralWallText = "S . .\n. # .\n. . G\n"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// run executes the CLI with an isolated config and colour off.
func run(t *testing.T, cfg string, args ...string) (string, string, error) {
	t.Helper()
	cfgPath := writeFile(t, t.TempDir(), configFileName, cfg)
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--config", cfgPath, "--color", "off"}, args...))
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestParseCoord(t *testing.T) {
	c, err := parseCoord("3,4")
	require.NoError(t, err)
	assert.Equal(t, grid.Coord{Row: 3, Col: 4}, c)

	c, err = parseCoord(" 0 , 7 ")
	require.NoError(t, err)
	assert.Equal(t, grid.Coord{Row: 0, Col: 7}, c)

	for _, bad := range []string{"", "1", "1,2,3", "a,1", "1,b"} {
		_, err := parseCoord(bad)
		assert.Error(t, err, bad)
	}
}

func TestResolveColor(t *testing.T) {
	var buf bytes.Buffer
	on, err := resolveColor("on", &buf)
	require.NoError(t, err)
	assert.True(t, on)

	on, err = resolveColor("off", &buf)
	require.NoError(t, err)
	assert.False(t, on)

	// a buffer is never a terminal
	on, err = resolveColor("auto", &buf)
	require.NoError(t, err)
	assert.False(t, on)

	_, err = resolveColor("rainbow", &buf)
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := newLogger("warn", &buf)
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, l.GetLevel())

	l.Info("hidden")
	l.WithField("k", "v").Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "k=v")
	assert.NotContains(t, buf.String(), "time=")

	_, err = newLogger("loud", &buf)
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	writeFile(t, root, configFileName, `
[plan]
start = [1, 2]
strict_goal = true

[output]
steps_per_row = 3

[batch]
jobs = 4

[log]
level = "debug"
`)

	found, ok, err := findConfig(nested)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, configFileName), found)

	cfg, path, err := loadConfig("", nested)
	require.NoError(t, err)
	assert.Equal(t, found, path)
	assert.True(t, cfg.Plan.StrictGoal)
	assert.False(t, cfg.Plan.RequireReachable)
	assert.Equal(t, 3, cfg.Output.StepsPerRow)
	assert.Equal(t, "auto", cfg.Output.Color, "unset keys keep defaults")
	assert.Equal(t, 4, cfg.Batch.Jobs)
	assert.Equal(t, "debug", cfg.Log.Level)

	start, err := cfg.start()
	require.NoError(t, err)
	require.NotNil(t, start)
	assert.Equal(t, grid.Coord{Row: 1, Col: 2}, *start)
}

func TestLoadConfig_Errors(t *testing.T) {
	dir := t.TempDir()

	bad := writeFile(t, dir, "bad.toml", "[plan\n")
	_, _, err := loadConfig(bad, dir)
	assert.Error(t, err)

	short := writeFile(t, dir, "short.toml", "[plan]\nstart = [1]\n")
	_, _, err = loadConfig(short, dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "plan.start")

	_, _, err = loadConfig(filepath.Join(dir, "missing.toml"), dir)
	assert.Error(t, err)
}

func TestPlanCmd_Text(t *testing.T) {
	file := writeFile(t, t.TempDir(), "wall.txt", centralWallText)
	out, _, err := run(t, "", "plan", file)
	require.NoError(t, err)

	want := "Value Map and Path\n" +
		"goal:    (2, 2)\n" +
		"start:   (0, 0)\n" +
		"moves:   3\n" +
		"reached: yes\n" +
		"S * 4\n" +
		"4 # *\n" +
		"4 3 G\n" +
		"Path Coordinates\n" +
		"Step 1: (0, 0)  Step 2: (0, 1)  Step 3: (1, 2)  Step 4: (2, 2)\n"
	assert.Equal(t, want, out)
}

func TestPlanCmd_StartResolution(t *testing.T) {
	dir := t.TempDir()
	noMarker := writeFile(t, dir, "plain.txt", "0 0 0\n0 1 0\n0 0 2\n")

	// config default
	out, _, err := run(t, "[plan]\nstart = [2, 0]\n", "plan", noMarker)
	require.NoError(t, err)
	assert.Contains(t, out, "start:   (2, 0)")

	// flag wins over config
	out, _, err = run(t, "[plan]\nstart = [2, 0]\n", "plan", "--start", "0,2", noMarker)
	require.NoError(t, err)
	assert.Contains(t, out, "start:   (0, 2)")

	// nothing at all
	_, _, err = run(t, "", "plan", noMarker)
	assert.ErrorIs(t, err, errNoStart)
}

func TestPlanCmd_Errors(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "wall.txt", centralWallText)

	_, _, err := run(t, "", "plan", "--start", "1,1", file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is on a wall")

	_, _, err = run(t, "", "plan", "--start", "5,5", file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outside the map boundaries")

	_, _, err = run(t, "", "plan", "--format", "yaml", file)
	assert.Error(t, err)

	multi := writeFile(t, dir, "multi.txt", "S . G\n. . .\nG . .\n")
	_, _, err = run(t, "", "plan", "--strict-goal", multi)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 goal cells")

	_, _, err = run(t, "[plan]\nstrict_goal = true\n", "plan", multi)
	assert.Error(t, err, "strict_goal from config")
}

func TestPlanCmd_Unreachable(t *testing.T) {
	file := writeFile(t, t.TempDir(), "cut.txt", "S # .\n# # .\n. . G\n")

	out, stderr, err := run(t, "", "plan", file)
	require.NoError(t, err)
	assert.Contains(t, out, "reached: no")
	assert.Contains(t, out, "moves:   0")
	assert.Contains(t, stderr, "path is partial")

	out, _, err = run(t, "", "plan", "--require-reachable", file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unreachable")
	assert.Contains(t, out, "reached: no", "the partial result is still printed")
}

func TestPlanCmd_JSONOut(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "wall.txt", centralWallText)
	dest := filepath.Join(dir, "result.json")

	out, _, err := run(t, "", "plan", "--format", "json", "--out", dest, file)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	var doc struct {
		Goal    [2]int   `json:"goal"`
		Reached bool     `json:"reached"`
		Moves   int      `json:"moves"`
		Path    [][2]int `json:"path"`
		Field   [][]int  `json:"field"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, [2]int{2, 2}, doc.Goal)
	assert.True(t, doc.Reached)
	assert.Equal(t, 3, doc.Moves)
	assert.Equal(t, [][2]int{{0, 0}, {0, 1}, {1, 2}, {2, 2}}, doc.Path)
	assert.Equal(t, [][]int{{5, 4, 4}, {4, 1, 3}, {4, 3, 2}}, doc.Field)
}

func TestWriteResultFile(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "wall.txt", centralWallText)
	doc, err := gridio.Load(file)
	require.NoError(t, err)
	res, err := planner.Plan(doc.Grid, *doc.Start)
	require.NoError(t, err)

	dest := filepath.Join(dir, "result.txt")
	require.NoError(t, writeResultFile(dest, "text", res, false, render.DefaultOptions()))
	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), "S * 4\n4 # *\n4 3 G\n")

	err = writeResultFile(filepath.Join(dir, "missing", "result.txt"), "text", res, false, render.DefaultOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create")

	// the error surfaces through the command too
	_, _, err = run(t, "", "plan", "--out", filepath.Join(dir, "missing", "out.json"), "--format", "json", file)
	assert.Error(t, err)
}

func TestPlanCmd_Msgpack(t *testing.T) {
	file := writeFile(t, t.TempDir(), "wall.txt", centralWallText)
	out, _, err := run(t, "", "plan", "--format", "msgpack", file)
	require.NoError(t, err)

	snap, err := gridio.ReadMsgpack(strings.NewReader(out))
	require.NoError(t, err)
	res, err := snap.Result()
	require.NoError(t, err)
	assert.True(t, res.Reached())
	assert.Equal(t, 3, res.Len())
}

func TestPlanCmd_StepsPerRowAndTimings(t *testing.T) {
	file := writeFile(t, t.TempDir(), "wall.txt", centralWallText)
	out, _, err := run(t, "[output]\ntimings = true\n", "plan", "--steps-per-row", "2", file)
	require.NoError(t, err)
	assert.Contains(t, out, "Step 1: (0, 0)  Step 2: (0, 1)\nStep 3: (1, 2)  Step 4: (2, 2)\n")
	assert.Contains(t, out, "path found in ")
	assert.Contains(t, out, "8 cells labelled")
}

func TestBatchCmd_Timings(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", centralWallText)
	out, _, err := run(t, "", "--timings", "batch", dir)
	require.NoError(t, err)
	assert.Regexp(t, `a\.txt: reached \(2, 2\) in 3 moves \(\d+\.\d{4} ms\)\n`, out)
}

func TestInspectCmd(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "wall.txt", centralWallText)

	out, _, err := run(t, "", "inspect", file)
	require.NoError(t, err)
	assert.Contains(t, out, "size:    3 rows x 3 cols")
	assert.Contains(t, out, "goal:    (2, 2)\n")
	assert.Contains(t, out, "regions: 1\n")
	assert.Contains(t, out, "start:   (0, 0) is valid")
	assert.True(t, strings.HasSuffix(out, ". . .\n. # .\n. . G\n"))

	out, _, err = run(t, "", "inspect", "--start", "1,1", file)
	require.NoError(t, err)
	assert.Contains(t, out, "start:   (1, 1) is on a wall")

	cut := writeFile(t, dir, "cut.txt", "S # .\n# # .\n. . G\n")
	out, _, err = run(t, "", "inspect", cut)
	require.NoError(t, err)
	assert.Contains(t, out, "regions: 2\n")
	assert.Contains(t, out, "cut off from the goal")
}

func TestBatchCmd(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", centralWallText)
	writeFile(t, dir, "b.json", `{"map": [[0, 1], [1, 2]], "start": [0, 0]}`)
	writeFile(t, dir, "c.toml", "map = [[0, 2]]\n")
	writeFile(t, dir, "notes.md", "ignored")

	out, _, err := run(t, "[plan]\nstart = [0, 0]\n", "batch", "--jobs", "2", dir)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, filepath.Join(dir, "a.txt")+": reached (2, 2) in 3 moves", lines[0])
	assert.Equal(t, filepath.Join(dir, "b.json")+": reached (1, 1) in 1 moves", lines[1])
	assert.Equal(t, filepath.Join(dir, "c.toml")+": reached (0, 1) in 1 moves", lines[2])
}

func TestBatchCmd_Failures(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", centralWallText)
	writeFile(t, dir, "b.txt", "S . .\n")
	writeFile(t, dir, "c.txt", "S Q\n")

	out, _, err := run(t, "", "batch", dir)
	require.Error(t, err)
	assert.Equal(t, "2 of 3 grids failed", err.Error())
	assert.Contains(t, out, "a.txt: reached (2, 2) in 3 moves")
	assert.Contains(t, out, "b.txt: error: planner: goal not found in the map")
	assert.Contains(t, out, "c.txt: error: ")
}

func TestVersionCmd(t *testing.T) {
	out, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "wavefront "+Version+"\n", out)
}
