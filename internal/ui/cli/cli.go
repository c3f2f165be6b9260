// Package cli implements a command-line UI to display a goban and query results.
package cli

import (
	"bytes"
	"fmt"
	"github.com/charmbracelet/lipgloss"
	"github.com/janpfeifer/goban/internal/queries"
	. "github.com/janpfeifer/goban/internal/state"
	"golang.org/x/term"
	"io"
	"os"
	"strings"
)

const (
	// CharsPerColumn used to print each position of the goban.
	CharsPerColumn = 2

	// LibertyMarker is printed on the liberties of a highlighted group.
	LibertyMarker = '*'
)

var (
	whiteStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	blackStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("250")).Bold(true)
	emptyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	highlightStyle = lipgloss.NewStyle().Reverse(true).Blink(true)
	libertyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	indexStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	takenStyle     = lipgloss.NewStyle().Background(lipgloss.Color("9")).Foreground(lipgloss.Color("0")).Padding(0, 1)
	freeStyle      = lipgloss.NewStyle().Background(lipgloss.Color("10")).Foreground(lipgloss.Color("0")).Padding(0, 1)

	// Symbols used for stones when printing with colors.
	stoneSymbols = map[Status]string{White: "●", Black: "●", Empty: "·"}

	// Markers used for the stones of a highlighted group when printing without colors.
	highlightMarkers = map[Status]string{White: "O", Black: "@"}
)

// UI prints gobans and query results.
type UI struct {
	color bool

	// width of the terminal, used to center the goban. 0 if stdout is not a terminal.
	width int
}

// New creates a UI. If color is false, the goban is printed with its plain markers.
func New(color bool) *UI {
	ui := &UI{color: color}
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		ui.width, _, _ = term.GetSize(fd)
	}
	return ui
}

// printCentered writes the block of lines to w, centered in the terminal width if known.
func (ui *UI) printCentered(w io.Writer, block string) {
	lines := strings.Split(strings.TrimRight(block, "\n"), "\n")
	blockWidth := 0
	for _, line := range lines {
		blockWidth = max(blockWidth, lipgloss.Width(line))
	}
	indent := max((ui.width-blockWidth)/2, 0)
	for _, line := range lines {
		if len(line) == 0 {
			_, _ = fmt.Fprintln(w)
			continue
		}
		_, _ = fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", indent), line)
	}
}

// PrintBoard prints the goban with the column and row indices. If highlight is not nil,
// its stones are emphasized and its liberties are marked.
func (ui *UI) PrintBoard(w io.Writer, goban *Goban, highlight *Group) {
	var buf bytes.Buffer
	rowLabelWidth := len(fmt.Sprint(goban.Height() - 1))

	// Column indices, only the last digit to keep the columns aligned.
	_, _ = fmt.Fprint(&buf, strings.Repeat(" ", rowLabelWidth+1))
	for x := range goban.Width() {
		_, _ = fmt.Fprint(&buf, ui.style(indexStyle, fmt.Sprintf("%*d", CharsPerColumn, x%10)))
	}
	_, _ = fmt.Fprintln(&buf)

	for y := range goban.Height() {
		_, _ = fmt.Fprint(&buf, ui.style(indexStyle, fmt.Sprintf("%*d ", rowLabelWidth, y)))
		for x := range goban.Width() {
			_, _ = fmt.Fprint(&buf, " "+ui.position(goban, Pos{x, y}, highlight))
		}
		_, _ = fmt.Fprintln(&buf)
	}
	ui.printCentered(w, buf.String())
}

// position returns the one character representation of pos.
func (ui *UI) position(goban *Goban, pos Pos, highlight *Group) string {
	status := goban.StatusAt(pos)
	if status == Out {
		// Only happens for jagged gobans.
		return " "
	}
	if highlight != nil && highlight.Liberties.Has(pos) {
		return ui.style(libertyStyle, string(LibertyMarker))
	}
	highlighted := highlight != nil && highlight.Stones.Has(pos)
	if !ui.color {
		if highlighted {
			return highlightMarkers[status]
		}
		return string(status.Marker())
	}
	var style lipgloss.Style
	switch status {
	case White:
		style = whiteStyle
	case Black:
		style = blackStyle
	default:
		style = emptyStyle
	}
	if highlighted {
		style = style.Inherit(highlightStyle)
	}
	return style.Render(stoneSymbols[status])
}

// PrintResult prints one line with the result of a query.
func (ui *UI) PrintResult(w io.Writer, result queries.Result) {
	badge := "free"
	badgeStyle := freeStyle
	if result.Taken {
		badge = "TAKEN"
		badgeStyle = takenStyle
	}
	_, _ = fmt.Fprintf(w, "%s %s\n", ui.style(badgeStyle, fmt.Sprintf("%-5s", badge)), result)
	if result.Group != nil && len(result.Group.Liberties) > 0 {
		_, _ = fmt.Fprintf(w, "\tliberties: [%s]\n",
			strings.Join(PosStrings(result.Group.SortedLiberties()), ", "))
	}
}

// PrintResults prints the goban followed by the results of all queries, each one
// with the goban highlighting its group if verbose is set.
func (ui *UI) PrintResults(w io.Writer, goban *Goban, results []queries.Result, verbose bool) {
	ui.PrintBoard(w, goban, nil)
	_, _ = fmt.Fprintln(w)
	for _, result := range results {
		ui.PrintResult(w, result)
		if verbose && result.Group != nil {
			_, _ = fmt.Fprintln(w)
			ui.PrintBoard(w, goban, result.Group)
			_, _ = fmt.Fprintln(w)
		}
	}
}

// style renders s with the given style, if colors are enabled.
func (ui *UI) style(style lipgloss.Style, s string) string {
	if !ui.color {
		return s
	}
	return style.Render(s)
}
