// Package queries evaluates a list of positions against a goban, concurrently.
package queries

import (
	"context"
	"fmt"
	"github.com/janpfeifer/goban/internal/state"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
	"regexp"
	"runtime"
	"strconv"
	"strings"
)

// Result of the query of one position.
type Result struct {
	Pos    state.Pos
	Status state.Status
	Taken  bool

	// Group connected to Pos, nil if Pos is Empty or Out.
	Group *state.Group
}

// String returns a one line summary of the result.
func (r Result) String() string {
	if !r.Status.IsStone() {
		return fmt.Sprintf("%s: %s, not taken", r.Pos, r.Status)
	}
	taken := "not taken"
	if r.Taken {
		taken = "taken"
	}
	return fmt.Sprintf("%s: %s, %s (group of %d stones, %d liberties)",
		r.Pos, r.Status, taken, len(r.Group.Stones), len(r.Group.Liberties))
}

var positionParser = regexp.MustCompile(`^\s*(-?\d+)[\s,]+(-?\d+)\s*$`)

// ParsePositions parses a list of positions separated by ";", each position given as "x,y" or "x y".
func ParsePositions(list string) ([]state.Pos, error) {
	var positions []state.Pos
	for ii, part := range strings.Split(list, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		matches := positionParser.FindStringSubmatch(part)
		if len(matches) != 3 {
			return nil, errors.Errorf("failed to parse position #%d %q, expected \"x,y\"", ii, part)
		}
		var pos state.Pos
		for coord := range 2 {
			value, err := strconv.Atoi(matches[1+coord])
			if err != nil {
				return nil, errors.Wrapf(err, "failed to parse coordinate %q of position #%d", matches[1+coord], ii)
			}
			pos[coord] = value
		}
		positions = append(positions, pos)
	}
	return positions, nil
}

// Evaluate a single position of the goban.
func Evaluate(goban *state.Goban, pos state.Pos) Result {
	return Result{
		Pos:    pos,
		Status: goban.StatusAt(pos),
		Taken:  goban.IsTaken(pos.X(), pos.Y()),
		Group:  goban.Group(pos.X(), pos.Y()),
	}
}

// Run evaluates all positions, with up to parallelism queries running at the same time.
// If parallelism <= 0, it uses the number of CPUs.
//
// Results are returned in the same order as positions. If ctx is cancelled, queries not
// yet started are skipped and the context error is returned.
func Run(ctx context.Context, goban *state.Goban, positions []state.Pos, parallelism int) ([]Result, error) {
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}
	klog.V(1).Infof("Evaluating %d positions on a %dx%d goban (parallelism=%d)",
		len(positions), goban.Width(), goban.Height(), parallelism)
	results := make([]Result, len(positions))
	var wg errgroup.Group
	wg.SetLimit(parallelism)
	for idx, pos := range positions {
		if ctx.Err() != nil {
			break
		}
		wg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[idx] = Evaluate(goban, pos)
			klog.V(2).Infof("Query #%d: %s", idx, results[idx])
			return nil
		})
	}
	if err := wg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrapf(err, "queries interrupted")
	}
	return results, nil
}
