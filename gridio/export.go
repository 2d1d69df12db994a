package gridio

import (
	"encoding/json"
	"fmt"
	"io"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/katalvlaran/wavefront/grid"
	"github.com/katalvlaran/wavefront/planner"
	"github.com/katalvlaran/wavefront/wavefront"
)

// Current snapshot schema; increment when Snapshot changes shape.
const snapshotSchema uint16 = 1

// resultJSON is the JSON shape of a planning result.
type resultJSON struct {
	Goal    [2]int   `json:"goal"`
	Reached bool     `json:"reached"`
	Moves   int      `json:"moves"`
	Path    [][2]int `json:"path"`
	Field   [][]int  `json:"field"`
}

// WriteJSON writes res as indented JSON.
func WriteJSON(w io.Writer, res *planner.Result) error {
	doc := resultJSON{
		Goal:    [2]int{res.Goal.Row, res.Goal.Col},
		Reached: res.Reached(),
		Moves:   res.Len(),
		Path:    make([][2]int, len(res.Path)),
		Field:   res.Field.Values(),
	}
	for i, c := range res.Path {
		doc.Path[i] = [2]int{c.Row, c.Col}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// Snapshot is the msgpack form of a planning result. Labels are stored
// row-major and narrowed to int32.
type Snapshot struct {
	Schema uint16
	Rows   int
	Cols   int
	Labels []int32
	Goal   [2]int32
	Path   [][2]int32
}

// NewSnapshot converts res into a Snapshot. Labels or coordinates that do
// not fit in int32 are reported as errors.
func NewSnapshot(res *planner.Result) (*Snapshot, error) {
	f := res.Field
	s := &Snapshot{
		Schema: snapshotSchema,
		Rows:   f.Rows(),
		Cols:   f.Cols(),
		Labels: make([]int32, 0, f.Rows()*f.Cols()),
		Path:   make([][2]int32, 0, len(res.Path)),
	}
	for _, row := range f.Values() {
		for _, v := range row {
			l, err := safecast.Conv[int32](v)
			if err != nil {
				return nil, fmt.Errorf("gridio: label %d: %w", v, err)
			}
			s.Labels = append(s.Labels, l)
		}
	}
	goal, err := coord32(res.Goal)
	if err != nil {
		return nil, err
	}
	s.Goal = goal
	for _, c := range res.Path {
		p, err := coord32(c)
		if err != nil {
			return nil, err
		}
		s.Path = append(s.Path, p)
	}
	return s, nil
}

func coord32(c grid.Coord) ([2]int32, error) {
	r, err := safecast.Conv[int32](c.Row)
	if err != nil {
		return [2]int32{}, fmt.Errorf("gridio: row of %s: %w", c, err)
	}
	col, err := safecast.Conv[int32](c.Col)
	if err != nil {
		return [2]int32{}, fmt.Errorf("gridio: col of %s: %w", c, err)
	}
	return [2]int32{r, col}, nil
}

// Field rebuilds the distance field stored in s.
func (s *Snapshot) Field() (*wavefront.Field, error) {
	// Divide rather than multiply: Rows and Cols come from untrusted input.
	if s.Rows <= 0 || s.Cols <= 0 || len(s.Labels)%s.Rows != 0 || len(s.Labels)/s.Rows != s.Cols {
		return nil, fmt.Errorf("%w: snapshot %dx%d holds %d labels", ErrParse, s.Rows, s.Cols, len(s.Labels))
	}
	values := make([][]int, s.Rows)
	for r := range values {
		values[r] = make([]int, s.Cols)
		for c := range values[r] {
			values[r][c] = int(s.Labels[r*s.Cols+c])
		}
	}
	return wavefront.FieldFromValues(values)
}

// Result rebuilds a planner.Result (without Stats) from s.
func (s *Snapshot) Result() (*planner.Result, error) {
	f, err := s.Field()
	if err != nil {
		return nil, err
	}
	res := &planner.Result{
		Field: f,
		Goal:  grid.Coord{Row: int(s.Goal[0]), Col: int(s.Goal[1])},
		Path:  make([]grid.Coord, len(s.Path)),
	}
	for i, p := range s.Path {
		res.Path[i] = grid.Coord{Row: int(p[0]), Col: int(p[1])}
	}
	return res, nil
}

// WriteMsgpack writes res as a msgpack Snapshot.
func WriteMsgpack(w io.Writer, res *planner.Result) error {
	s, err := NewSnapshot(res)
	if err != nil {
		return err
	}
	return msgpack.NewEncoder(w).Encode(s)
}

// ReadMsgpack decodes a Snapshot written by WriteMsgpack.
func ReadMsgpack(r io.Reader) (*Snapshot, error) {
	var s Snapshot
	if err := msgpack.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: snapshot: %v", ErrParse, err)
	}
	if s.Schema != snapshotSchema {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSnapshotSchema, s.Schema, snapshotSchema)
	}
	return &s, nil
}
