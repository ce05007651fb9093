package maze

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Validation errors
var (
	ErrAsymmetricDoor = errors.New("door is open on one side only")
	ErrCycle          = errors.New("doors form a cycle")
	ErrDisconnected   = errors.New("rooms are not all connected")
)

// Position is a room coordinate
type Position struct {
	X, Y int
}

// DoorPairs counts the open doors between two rooms of the grid. Entrances
// leading out of the grid are not counted.
func (g *Grid[T]) DoorPairs() int {
	pairs := 0
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			walls := g.room(x, y).Walls
			if walls&WallRight != 0 && x+1 < g.width {
				pairs++
			}
			if walls&WallDown != 0 && y+1 < g.height {
				pairs++
			}
		}
	}
	return pairs
}

// Reachable returns the rooms that can be walked to from (x, y) through open
// doors, (x, y) included. It is empty if (x, y) is outside the grid.
func (g *Grid[T]) Reachable(x, y int) mapset.Set[Position] {
	reachable := mapset.New[Position]()
	if !g.Contains(x, y) {
		return reachable
	}
	queue := []Position{{x, y}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if reachable.Has(current) {
			continue
		}
		reachable.Put(current)

		for _, wall := range AllWalls() {
			nx, ny, ok := g.Enter(current.X, current.Y, wall, true)
			if ok && g.Contains(nx, ny) && !reachable.Has(Position{nx, ny}) {
				queue = append(queue, Position{nx, ny})
			}
		}
	}

	return reachable
}

// Validate checks that the open doors are symmetric and form a spanning tree
// over the rooms: every room reachable from every other through exactly
// width*height-1 doors.
func (g *Grid[T]) Validate() error {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			for _, wall := range AllWalls() {
				if !g.IsOpen(x, y, wall) {
					continue
				}
				nx, ny, _ := g.Enter(x, y, wall, false)
				if g.Contains(nx, ny) && !g.IsOpen(nx, ny, wall.Opposite()) {
					return fmt.Errorf("%w: (%d,%d) %s", ErrAsymmetricDoor, x, y, wall)
				}
			}
		}
	}

	rooms := g.width * g.height
	pairs := g.DoorPairs()
	if pairs > rooms-1 {
		return fmt.Errorf("%w: %d door pairs for %d rooms", ErrCycle, pairs, rooms)
	}
	if reached := g.Reachable(0, 0).Size(); reached != rooms {
		return fmt.Errorf("%w: %d of %d rooms reachable", ErrDisconnected, reached, rooms)
	}
	return nil
}
