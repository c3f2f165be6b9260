package cli

import (
	"bytes"
	"github.com/janpfeifer/goban/internal/queries"
	"github.com/janpfeifer/goban/internal/state"
	"github.com/janpfeifer/goban/internal/state/statetest"
	"github.com/stretchr/testify/assert"
	"strings"
	"testing"
)

func TestPrintBoard(t *testing.T) {
	ui := &UI{}
	goban := statetest.MustParse(t, "...", "#o#", ".#.")
	var buf bytes.Buffer
	ui.PrintBoard(&buf, goban, nil)
	want := strings.Join([]string{
		"   0 1 2",
		"0  . . .",
		"1  # o #",
		"2  . # .",
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())

	buf.Reset()
	ui.PrintBoard(&buf, goban, goban.Group(1, 2))
	want = strings.Join([]string{
		"   0 1 2",
		"0  . . .",
		"1  # o #",
		"2  * @ *",
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())
}

func TestPrintBoardCentered(t *testing.T) {
	ui := &UI{width: 12}
	goban := statetest.MustParse(t, "o")
	var buf bytes.Buffer
	ui.PrintBoard(&buf, goban, nil)
	// Block is 4 characters wide: indent (12-4)/2=4.
	assert.Equal(t, "       0\n    0  o\n", buf.String())
}

func TestPrintResults(t *testing.T) {
	ui := &UI{}
	goban := statetest.MustParse(t, "...", "#o#", ".#.")
	results := []queries.Result{
		queries.Evaluate(goban, state.Pos{1, 1}),
		queries.Evaluate(goban, state.Pos{0, 0}),
	}
	var buf bytes.Buffer
	ui.PrintResults(&buf, goban, results, true)
	got := buf.String()
	assert.Contains(t, got, "free  (1, 1): White, not taken (group of 1 stones, 1 liberties)\n")
	assert.Contains(t, got, "\tliberties: [(1, 0)]\n")
	assert.Contains(t, got, "0  . * .\n1  # O #\n")
	assert.Contains(t, got, "free  (0, 0): Empty, not taken\n")

	buf.Reset()
	goban = statetest.MustParse(t, ".#.", "#o#", ".#.")
	ui.PrintResult(&buf, queries.Evaluate(goban, state.Pos{1, 1}))
	assert.Equal(t, "TAKEN (1, 1): White, taken (group of 1 stones, 0 liberties)\n", buf.String())
}
