package generator

import (
	"iter"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"darkmaze/pkg/engine/maze"
)

// Entry is a wall between a room already in the maze and a neighbour that may
// not be yet.
type Entry struct {
	X, Y int
	Wall maze.Wall
}

// Frontier is the set of walls waiting to be resolved during generation.
//
// Strategies only see it through the read-only methods; the view is valid for
// the duration of the call, use Snapshot to keep a copy. A nil *Frontier is
// empty.
type Frontier struct {
	entries []Entry
	present mapset.Set[Entry]
}

func newFrontier() *Frontier {
	return &Frontier{present: mapset.New[Entry]()}
}

// Len returns the number of walls in the frontier
func (f *Frontier) Len() int {
	if f == nil {
		return 0
	}
	return len(f.entries)
}

// At returns the i'th wall of the frontier. i must be in [0, Len()), so a
// nil *Frontier has no wall to return and At panics like an out of range index.
func (f *Frontier) At(i int) Entry {
	return f.entries[i]
}

// Contains returns true if e is waiting in the frontier
func (f *Frontier) Contains(e Entry) bool {
	if f == nil {
		return false
	}
	return f.present.Has(e)
}

// All iterates over the walls of the frontier
func (f *Frontier) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		if f == nil {
			return
		}
		for _, e := range f.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// Snapshot returns a copy of the walls in the frontier
func (f *Frontier) Snapshot() []Entry {
	if f == nil {
		return nil
	}
	return slices.Clone(f.entries)
}

// push adds e unless it is already present
func (f *Frontier) push(e Entry) bool {
	if f.present.Has(e) {
		return false
	}
	f.present.Put(e)
	f.entries = append(f.entries, e)
	return true
}

// pick removes and returns a uniformly chosen wall. The last entry takes the
// place of the removed one.
func (f *Frontier) pick(rng Source) (Entry, bool) {
	n := len(f.entries)
	if n == 0 {
		return Entry{}, false
	}

	i := rng.Intn(n)
	e := f.entries[i]
	f.entries[i] = f.entries[n-1]
	f.entries = f.entries[:n-1]
	f.present.Remove(e)

	return e, true
}

// pushRoom adds every wall of the room at (x, y) that leads to another room of
// a width x height grid and is not already waiting. Returns how many were added.
func (f *Frontier) pushRoom(x, y, width, height int) int {
	added := 0
	for _, wall := range maze.AllWalls() {
		dx, dy := wall.Delta()
		nx, ny := x+dx, y+dy
		if nx < 0 || nx >= width || ny < 0 || ny >= height {
			continue
		}
		if f.push(Entry{X: x, Y: y, Wall: wall}) {
			added++
		}
	}
	return added
}
