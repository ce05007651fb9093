// Package maze provides a rectangular grid of rooms connected by doors, the
// topology queries renderers rely on, and a continuous movement resolver.
package maze

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidDimensions is returned when a grid cannot be created with the requested size.
var ErrInvalidDimensions = errors.New("invalid grid dimensions")

// Room is a single cell of the grid.
type Room[T any] struct {
	// Walls holds the open doors of the room
	Walls Wall

	// Data is owned by the caller; the grid never looks inside it
	Data T
}

// Grid is a fixed size matrix of rooms stored row-major.
// It does no locking; callers serialize mutation themselves.
type Grid[T any] struct {
	width  int
	height int
	rooms  []Room[T]
}

// New creates a grid of the given dimensions with every door closed
func New[T any](width, height int) (*Grid[T], error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if width > math.MaxInt/height {
		return nil, fmt.Errorf("%w: %dx%d overflows", ErrInvalidDimensions, width, height)
	}

	return &Grid[T]{
		width:  width,
		height: height,
		rooms:  make([]Room[T], width*height),
	}, nil
}

// Width returns the number of rooms in a row
func (g *Grid[T]) Width() int {
	return g.width
}

// Height returns the number of rows
func (g *Grid[T]) Height() int {
	return g.height
}

// Contains checks if a room position is within grid bounds
func (g *Grid[T]) Contains(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid[T]) room(x, y int) *Room[T] {
	return &g.rooms[y*g.width+x]
}

// Walls returns the open door mask of the room at (x, y).
//
// A position exactly one step outside an edge is a virtual boundary room: the
// side facing the grid is open only if the adjacent edge room has an entrance
// there, every other side is open. Anything further out is WallAny.
func (g *Grid[T]) Walls(x, y int) Wall {
	switch {
	case g.Contains(x, y):
		return g.room(x, y).Walls
	case x == -1 && g.Contains(0, y):
		return boundary(g.room(0, y).Walls, WallLeft)
	case x == g.width && g.Contains(g.width-1, y):
		return boundary(g.room(g.width-1, y).Walls, WallRight)
	case y == -1 && g.Contains(x, 0):
		return boundary(g.room(x, 0).Walls, WallUp)
	case y == g.height && g.Contains(x, g.height-1):
		return boundary(g.room(x, g.height-1).Walls, WallDown)
	}

	return WallAny
}

// boundary derives the mask of a virtual room lying across edge from a real edge room
func boundary(edgeRoom Wall, edge Wall) Wall {
	if edgeRoom&edge != 0 {
		return WallAny
	}
	return WallAny &^ edge.Opposite()
}

// Enter calculates the position of the room on the other side of wall.
//
// The result is not clamped to the grid, so stepping off an edge yields a
// virtual boundary room; check Contains before using it as a real room. If
// (x, y) is outside the grid, or onlyIfOpen is set and the door is closed, the
// position is returned unchanged with ok set to false.
func (g *Grid[T]) Enter(x, y int, wall Wall, onlyIfOpen bool) (nx, ny int, ok bool) {
	if !g.Contains(x, y) {
		return x, y, false
	}
	if onlyIfOpen && g.Walls(x, y)&wall == 0 {
		return x, y, false
	}

	dx, dy := wall.Delta()
	return x + dx, y + dy, true
}

// OpenDoor opens a door in a room, and the matching door of the neighbour if
// that room lies within the grid. Returns false if (x, y) is out of bounds.
func (g *Grid[T]) OpenDoor(x, y int, wall Wall) bool {
	if !g.Contains(x, y) {
		return false
	}

	g.room(x, y).Walls |= wall

	if nx, ny, ok := g.Enter(x, y, wall, false); ok && g.Contains(nx, ny) {
		g.room(nx, ny).Walls |= wall.Opposite()
	}

	return true
}

// OpenEntrance opens the outward door of an edge room. Returns false if the
// room is out of bounds or wall does not face out of the grid.
func (g *Grid[T]) OpenEntrance(x, y int, wall Wall) bool {
	nx, ny, ok := g.Enter(x, y, wall, false)
	if !ok || g.Contains(nx, ny) {
		return false
	}
	return g.OpenDoor(x, y, wall)
}

// Data returns the data of the room at (x, y), or the zero value if out of bounds
func (g *Grid[T]) Data(x, y int) T {
	if !g.Contains(x, y) {
		var zero T
		return zero
	}
	return g.room(x, y).Data
}

// SetData sets the data of a room. Returns false if out of bounds.
func (g *Grid[T]) SetData(x, y int, data T) bool {
	if !g.Contains(x, y) {
		return false
	}
	g.room(x, y).Data = data
	return true
}

// ForEachRoom iterates over all rooms in row-major order
func (g *Grid[T]) ForEachRoom(fn func(x, y int, room Room[T])) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(x, y, *g.room(x, y))
		}
	}
}
