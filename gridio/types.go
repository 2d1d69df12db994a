package gridio

import (
	"errors"

	"github.com/katalvlaran/wavefront/grid"
)

// Sentinel errors for loading and snapshot decoding.
var (
	// ErrParse indicates a malformed grid document.
	ErrParse = errors.New("gridio: parse error")
	// ErrUnsupportedFormat indicates an unknown file extension.
	ErrUnsupportedFormat = errors.New("gridio: unsupported format")
	// ErrSnapshotSchema indicates a snapshot with an unknown schema version.
	ErrSnapshotSchema = errors.New("gridio: unsupported snapshot schema")
)

// Format names a grid document encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// Document is a loaded grid plus the optional start it declares.
type Document struct {
	Grid *grid.Grid
	// Start is nil when the document does not name a start cell.
	Start *grid.Coord
	// Source is the file name or "<input>" for in-memory parsing.
	Source string
}
