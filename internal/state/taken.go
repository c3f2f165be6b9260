package state

import (
	"github.com/janpfeifer/goban/internal/generics"
	"k8s.io/klog/v2"
)

// chainStep is the outcome of looking at the neighbours of one stone in IsTaken.
type chainStep uint8

const (
	stepEnclosed chainStep = iota
	stepLiberty
	stepFollow
)

// IsTaken returns whether the stone at (x, y) and the stones connected to it
// have no liberties left.
//
// Empty and Out positions are never taken.
//
// It walks the chain of same coloured stones: at each stone the neighbours are
// checked in the order +x, -x, +y, -y, skipping the ones already visited. An
// empty neighbour is a liberty and ends the walk with false. The first
// neighbour of the same colour becomes the next stone of the walk, and the
// remaining neighbours of the current stone are not looked at. When a stone
// has nowhere left to go, the walk ends with true.
//
// The visited set is created anew at every call.
func (g *Goban) IsTaken(x, y int) bool {
	start := Pos{x, y}
	if !g.StatusAt(start).IsStone() {
		return false
	}
	visited := generics.SetWith(start)
	current := start
	for {
		next, step := g.nextInChain(current, visited)
		switch step {
		case stepLiberty:
			klog.V(2).Infof("IsTaken%s: liberty at %s, reached from %s", start, next, current)
			return false
		case stepEnclosed:
			klog.V(2).Infof("IsTaken%s: enclosed at %s after %d stones", start, current, len(visited))
			return true
		}
		visited.Insert(next)
		current = next
	}
}

// nextInChain looks at the neighbours of pos not yet visited. It returns the
// first liberty or the first stone of the same status as pos, whichever comes
// first, or stepEnclosed if there are none.
//
// The status of the chain is taken from pos itself, each time.
func (g *Goban) nextInChain(pos Pos, visited generics.Set[Pos]) (Pos, chainStep) {
	current := g.StatusAt(pos)
	for neighbour := range pos.Neighbours() {
		if visited.Has(neighbour) {
			continue
		}
		switch g.StatusAt(neighbour) {
		case Empty:
			return neighbour, stepLiberty
		case Out:
			continue
		case current:
			return neighbour, stepFollow
		}
	}
	return pos, stepEnclosed
}

// Group is a maximal set of connected stones of the same colour, along with
// its liberties.
type Group struct {
	Status    Status
	Stones    generics.Set[Pos]
	Liberties generics.Set[Pos]
}

// Taken returns whether the group has no liberties.
func (grp *Group) Taken() bool {
	return len(grp.Liberties) == 0
}

// SortedStones returns the stones of the group, sorted by row and then column.
func (grp *Group) SortedStones() []Pos {
	return grp.Stones.SortedFunc(ComparePos)
}

// SortedLiberties returns the liberties of the group, sorted by row and then column.
func (grp *Group) SortedLiberties() []Pos {
	return grp.Liberties.SortedFunc(ComparePos)
}

// Group returns the full group of stones connected to (x, y), and all its liberties.
// It returns nil if (x, y) is Empty or Out.
//
// Unlike IsTaken, it explores every branch of the group.
func (g *Goban) Group(x, y int) *Group {
	start := Pos{x, y}
	status := g.StatusAt(start)
	if !status.IsStone() {
		return nil
	}
	grp := &Group{
		Status:    status,
		Stones:    generics.SetWith(start),
		Liberties: generics.MakeSet[Pos](),
	}
	toVisit := []Pos{start}
	for len(toVisit) > 0 {
		pos := toVisit[len(toVisit)-1]
		toVisit = toVisit[:len(toVisit)-1]
		for neighbour := range pos.Neighbours() {
			switch g.StatusAt(neighbour) {
			case Empty:
				grp.Liberties.Insert(neighbour)
			case status:
				if !grp.Stones.Has(neighbour) {
					grp.Stones.Insert(neighbour)
					toVisit = append(toVisit, neighbour)
				}
			}
		}
	}
	if klog.V(2).Enabled() {
		klog.Infof("Group%s: %s with %d stones and %d liberties",
			start, status, len(grp.Stones), len(grp.Liberties))
	}
	return grp
}
