package gridio

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/wavefront/grid"
)

const inputName = "<input>"

// maxLineBytes bounds one text row (about 8M comma-separated cells).
const maxLineBytes = 16 << 20

// FormatOf maps a file name to its Format by extension.
func FormatOf(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".grid":
		return FormatText, true
	case ".json":
		return FormatJSON, true
	case ".toml":
		return FormatTOML, true
	default:
		return "", false
	}
}

// Load reads and parses the grid file at path.
func Load(path string) (*Document, error) {
	format, ok := FormatOf(path)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gridio: failed to read %s: %w", path, err)
	}
	return Parse(data, format, path)
}

// Parse decodes data in the given format. source names the input in errors.
func Parse(data []byte, format Format, source string) (*Document, error) {
	if source == "" {
		source = inputName
	}
	switch format {
	case FormatText:
		return parseText(bytes.NewReader(data), source)
	case FormatJSON:
		return parseJSON(data, source)
	case FormatTOML:
		return parseTOML(data, source)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// ListDir returns every grid file directly under dir, sorted by name so
// batch output is deterministic.
func ListDir(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir {
				return filepath.SkipDir
			}
			return nil
		}
		if _, ok := FormatOf(path); ok {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// newDocument builds the grid and wraps construction errors with source.
func newDocument(values [][]int, start *grid.Coord, source string) (*Document, error) {
	g, err := grid.New(values)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return &Document{Grid: g, Start: start, Source: source}, nil
}

//----------------------------------------------------------------------------//
// Text
//----------------------------------------------------------------------------//

// glyphs maps text cells to grid labels.
var glyphs = map[rune]int{
	'0': grid.Free, '.': grid.Free, 'S': grid.Free,
	'1': grid.Obstacle, '#': grid.Obstacle, 'X': grid.Obstacle,
	'2': grid.Goal, 'G': grid.Goal,
}

func parseText(r io.Reader, source string) (*Document, error) {
	var (
		values [][]int
		start  *grid.Coord
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, ";") {
			continue
		}
		cells := splitCells(text)
		row := make([]int, 0, len(cells))
		for col, cell := range cells {
			runes := []rune(cell)
			label, ok := glyphs[runes[0]]
			if len(runes) != 1 || !ok {
				return nil, fmt.Errorf("%w: %s:%d: unknown cell %q", ErrParse, source, line, cell)
			}
			if runes[0] == 'S' {
				if start != nil {
					return nil, fmt.Errorf("%w: %s:%d: second start marker (first at %s)", ErrParse, source, line, start)
				}
				start = &grid.Coord{Row: len(values), Col: col}
			}
			row = append(row, label)
		}
		values = append(values, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridio: failed to scan %s: %w", source, err)
	}
	return newDocument(values, start, source)
}

// splitCells splits on spaces and commas when present, otherwise per rune.
func splitCells(text string) []string {
	if strings.ContainsAny(text, " \t,") {
		return strings.FieldsFunc(text, func(r rune) bool {
			return r == ' ' || r == '\t' || r == ','
		})
	}
	cells := make([]string, 0, len(text))
	for _, r := range text {
		cells = append(cells, string(r))
	}
	return cells
}

//----------------------------------------------------------------------------//
// JSON
//----------------------------------------------------------------------------//

type jsonDocument struct {
	Map   [][]int `json:"map"`
	Start []int   `json:"start,omitempty"`
}

func parseJSON(data []byte, source string) (*Document, error) {
	var doc jsonDocument
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &doc.Map); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrParse, source, err)
		}
	} else if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, source, err)
	}

	var start *grid.Coord
	switch len(doc.Start) {
	case 0:
	case 2:
		start = &grid.Coord{Row: doc.Start[0], Col: doc.Start[1]}
	default:
		return nil, fmt.Errorf("%w: %s: start must be [row, col], got %v", ErrParse, source, doc.Start)
	}
	return newDocument(doc.Map, start, source)
}

//----------------------------------------------------------------------------//
// TOML
//----------------------------------------------------------------------------//

type tomlDocument struct {
	Map   [][]int    `toml:"map"`
	Start *tomlStart `toml:"start"`
}

type tomlStart struct {
	Row int `toml:"row"`
	Col int `toml:"col"`
}

func parseTOML(data []byte, source string) (*Document, error) {
	var doc tomlDocument
	meta, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, source, err)
	}
	if !meta.IsDefined("map") {
		return nil, fmt.Errorf("%w: %s: missing map", ErrParse, source)
	}
	var start *grid.Coord
	if doc.Start != nil {
		if !meta.IsDefined("start", "row") || !meta.IsDefined("start", "col") {
			return nil, fmt.Errorf("%w: %s: [start] needs both row and col", ErrParse, source)
		}
		start = &grid.Coord{Row: doc.Start.Row, Col: doc.Start.Col}
	}
	return newDocument(doc.Map, start, source)
}
