// Package statetest provides goban fixtures and helper functions to create tests using the state package.
package statetest

import (
	. "github.com/janpfeifer/goban/internal/state"
	"github.com/stretchr/testify/require"
	"testing"
)

// Fixture is a named goban layout, and the positions that are expected to be taken or not.
type Fixture struct {
	Name     string
	Rows     []string
	Taken    []Pos
	NotTaken []Pos
}

// Fixtures with the classic capture shapes.
var Fixtures = []Fixture{
	{
		Name:  "white surrounded by black",
		Rows:  []string{".#.", "#o#", ".#."},
		Taken: []Pos{{1, 1}},
	},
	{
		Name:     "white with a liberty",
		Rows:     []string{"...", "#o#", ".#."},
		NotTaken: []Pos{{1, 1}},
	},
	{
		Name:  "black shape surrounded",
		Rows:  []string{"oo.", "##o", "o#o", ".o."},
		Taken: []Pos{{0, 1}, {1, 1}, {1, 2}},
	},
	{
		Name:     "black shape with a liberty",
		Rows:     []string{"oo.", "##.", "o#o", ".o."},
		NotTaken: []Pos{{0, 1}, {1, 1}, {1, 2}},
	},
	{
		Name:  "black square surrounded",
		Rows:  []string{"oo.", "##o", "##o", "oo."},
		Taken: []Pos{{0, 1}, {0, 2}, {1, 1}, {1, 2}},
	},
	{
		Name:     "empty positions",
		Rows:     []string{"...", "##o", "##o", "oo."},
		NotTaken: []Pos{{0, 0}, {1, 0}, {2, 0}, {2, 3}},
	},
}

// MustParse builds a validated Goban from rows, failing the test if they are not valid.
func MustParse(t testing.TB, rows ...string) *Goban {
	t.Helper()
	g, err := Parse(rows)
	require.NoError(t, err, "invalid goban rows %q", rows)
	return g
}
