// goban prints a Go board position and reports, for each queried position, whether
// the group of stones connected to it has been taken.
//
// Example:
//
//	$ goban -board=position.txt -at="1,1;0,2" -config="strict,verbose"
//
// The board file has one row per line, with '.' for empty positions, 'o' for white
// stones and '#' for black stones. Empty lines and lines starting with "//" are ignored.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/goban/internal/parameters"
	"github.com/janpfeifer/goban/internal/queries"
	"github.com/janpfeifer/goban/internal/state"
	"github.com/janpfeifer/goban/internal/ui/cli"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"io"
	"k8s.io/klog/v2"
	"os"
	"os/signal"
	"strings"
)

var (
	_ = fmt.Printf

	flagBoard  = flag.String("board", "-", "File with the goban rows, or \"-\" to read from stdin.")
	flagAt     = flag.String("at", "", "Positions to query, given as \"x,y\" separated by \";\". Default is every stone.")
	flagConfig = flag.String("config", "",
		"Comma separated options: strict (validate the goban), color=false, verbose (print the "+
			"group of each query), parallelism=N (number of queries evaluated in parallel).")
)

// Config holds the options parsed from -config.
type Config struct {
	Strict, Color, Verbose bool
	Parallelism            int
}

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	if flag.NArg() > 0 {
		klog.Exitf("Unexpected arguments %q, see --help", flag.Args())
	}
	config := must.M1(parseConfig(*flagConfig))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	rows := must.M1(readRows(*flagBoard))
	var goban *state.Goban
	if config.Strict {
		goban = must.M1(state.Parse(rows))
	} else {
		goban = state.New(rows)
	}

	positions := must.M1(queries.ParsePositions(*flagAt))
	if len(positions) == 0 {
		positions = allStones(goban)
	}
	results, err := queries.Run(ctx, goban, positions, config.Parallelism)
	if err != nil {
		klog.Exitf("Failed to query goban: %+v", err)
	}
	cli.New(config.Color).PrintResults(os.Stdout, goban, results, config.Verbose)
}

// parseConfig parses the -config flag.
func parseConfig(configStr string) (config Config, err error) {
	params := parameters.NewFromConfigString(configStr)
	if config.Strict, err = parameters.PopParamOr(params, "strict", false); err != nil {
		return
	}
	if config.Color, err = parameters.PopParamOr(params, "color", true); err != nil {
		return
	}
	if config.Verbose, err = parameters.PopParamOr(params, "verbose", false); err != nil {
		return
	}
	if config.Parallelism, err = parameters.PopParamOr(params, "parallelism", 0); err != nil {
		return
	}
	if config.Parallelism < 0 {
		exceptions.Panicf("invalid -config parallelism=%d, it must be >= 0", config.Parallelism)
	}
	err = errors.WithMessage(parameters.CheckAllConsumed(params), "in -config")
	return
}

// readRows reads the goban rows from the given file name, or stdin if it is "-".
func readRows(fileName string) ([]string, error) {
	var r io.Reader = os.Stdin
	if fileName != "-" {
		f, err := os.Open(fileName)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open goban file %q", fileName)
		}
		defer func() { _ = f.Close() }()
		r = f
	}
	rows, err := scanRows(r)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read goban from %q", fileName)
	}
	klog.V(1).Infof("Read %d rows from %q", len(rows), fileName)
	return rows, nil
}

// scanRows reads one row per line, skipping empty lines and "//" comments.
func scanRows(r io.Reader) ([]string, error) {
	var rows []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		rows = append(rows, line)
	}
	return rows, scanner.Err()
}

// allStones lists the positions of all stones in the goban.
func allStones(goban *state.Goban) (positions []state.Pos) {
	for y := range goban.Height() {
		for x := range goban.Width() {
			if goban.Status(x, y).IsStone() {
				positions = append(positions, state.Pos{x, y})
			}
		}
	}
	return
}
