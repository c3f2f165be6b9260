// Package state holds a read-only Go board position (the goban) and answers
// questions about it: the status of a point, and whether the group of stones
// connected to a point has been taken.
package state

import (
	"cmp"
	"fmt"
	"github.com/janpfeifer/goban/internal/generics"
	"github.com/pkg/errors"
	"iter"
	"strings"
)

// Status of a position on the goban.
type Status uint8

const (
	White Status = iota
	Black
	Empty
	Out

	// NumStatus is the number of valid Status values.
	NumStatus
)

// Markers used to describe a goban as a list of rows.
const (
	MarkerWhite = 'o'
	MarkerBlack = '#'
	MarkerEmpty = '.'
)

var (
	StatusNames   = [NumStatus]string{"White", "Black", "Empty", "Out"}
	StatusMarkers = [NumStatus]byte{MarkerWhite, MarkerBlack, MarkerEmpty, ' '}
)

// String returns the long status name.
func (s Status) String() string {
	if s >= NumStatus {
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
	return StatusNames[s]
}

// Marker returns the character used for the status in a goban row. Out is a space.
func (s Status) Marker() byte {
	return StatusMarkers[s]
}

// IsStone returns whether s is either White or Black.
func (s Status) IsStone() bool {
	return s == White || s == Black
}

// Pos packages x, y position: x indexes the columns, y the rows.
type Pos [2]int

// X coordinate of the position.
func (pos Pos) X() int {
	return pos[0]
}

// Y coordinate of the position.
func (pos Pos) Y() int {
	return pos[1]
}

// String returns a text representation of Pos.
func (pos Pos) String() string {
	return fmt.Sprintf("(%d, %d)", pos[0], pos[1])
}

// neighborRelPositions are the orthogonal neighbours, in the order they are visited: +x, -x, +y, -y.
var neighborRelPositions = [NumNeighbors]Pos{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// NumNeighbors of each position: the goban is a square grid.
const NumNeighbors = 4

// Neighbours iterates over the 4 orthogonal neighbours of pos, always in the
// order (x+1, y), (x-1, y), (x, y+1), (x, y-1).
//
// Positions outside the goban are included: it is up to the caller to check them.
func (pos Pos) Neighbours() iter.Seq[Pos] {
	return func(yield func(Pos) bool) {
		for _, rel := range neighborRelPositions {
			if !yield(Pos{pos[0] + rel[0], pos[1] + rel[1]}) {
				return
			}
		}
	}
}

// ComparePos orders positions by y first and then x.
func ComparePos(a, b Pos) int {
	if c := cmp.Compare(a[1], b[1]); c != 0 {
		return c
	}
	return cmp.Compare(a[0], b[0])
}

// PosStrings converts a list of positions to their string representation.
func PosStrings(poss []Pos) []string {
	return generics.SliceMap(poss, Pos.String)
}

var (
	// ErrJaggedBoard is returned by Parse if rows have different lengths.
	ErrJaggedBoard = errors.New("goban rows have different lengths")

	// ErrInvalidMarker is returned by Parse if a row holds anything other than '.', 'o' or '#'.
	ErrInvalidMarker = errors.New("invalid marker in goban")
)

// Goban is an immutable Go board position.
//
// It is safe to query it concurrently.
type Goban struct {
	rows []string
}

// New creates a Goban from its rows, one string per row, using '.' for empty
// positions, 'o' for white stones and '#' for black stones.
//
// No validation is performed: unknown markers are read as Empty, and positions
// beyond the end of a row shorter than the first are Out. Use Parse for a
// validated goban.
func New(rows []string) *Goban {
	return &Goban{rows: append([]string(nil), rows...)}
}

// Parse is like New, but it checks that all rows have the same length and
// only use the known markers.
func Parse(rows []string) (*Goban, error) {
	for y, row := range rows {
		if len(row) != len(rows[0]) {
			return nil, errors.Wrapf(ErrJaggedBoard, "row %d has %d columns, but row 0 has %d",
				y, len(row), len(rows[0]))
		}
		for x := range len(row) {
			switch row[x] {
			case MarkerWhite, MarkerBlack, MarkerEmpty:
			default:
				return nil, errors.Wrapf(ErrInvalidMarker, "marker %q at %s", row[x], Pos{x, y})
			}
		}
	}
	return New(rows), nil
}

// Width of the goban, taken from its first row.
func (g *Goban) Width() int {
	if len(g.rows) == 0 {
		return 0
	}
	return len(g.rows[0])
}

// Height of the goban, the number of rows.
func (g *Goban) Height() int {
	return len(g.rows)
}

// Rows returns a copy of the rows used to build the goban.
func (g *Goban) Rows() []string {
	return append([]string(nil), g.rows...)
}

// String returns the rows of the goban, one per line.
func (g *Goban) String() string {
	return strings.Join(g.rows, "\n")
}

// Status returns the status of the position (x, y).
// Any coordinate outside the goban, including negative ones, is Out.
func (g *Goban) Status(x, y int) Status {
	if len(g.rows) == 0 || x < 0 || y < 0 || y >= len(g.rows) || x >= len(g.rows[0]) {
		return Out
	}
	row := g.rows[y]
	if x >= len(row) {
		// Jagged goban built with New.
		return Out
	}
	switch row[x] {
	case MarkerWhite:
		return White
	case MarkerBlack:
		return Black
	default:
		return Empty
	}
}

// StatusAt is like Status, but takes a Pos.
func (g *Goban) StatusAt(pos Pos) Status {
	return g.Status(pos[0], pos[1])
}
