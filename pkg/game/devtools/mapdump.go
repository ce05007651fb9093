// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"darkmaze/pkg/engine/maze"
	"darkmaze/pkg/game/generator"
	"darkmaze/pkg/game/messages"
	"darkmaze/pkg/game/renderer/text"
	"darkmaze/pkg/game/state"
)

// ErrNoGrid is returned when there is nothing to dump
var ErrNoGrid = errors.New("no grid")

// entrance is a door of an edge room that leads out of the grid
type entrance struct {
	x, y int
	wall maze.Wall
}

// entrances lists the open doors of g that lead out of it, scanning the top,
// bottom, left and right edges in that order
func entrances(g *state.Maze) []entrance {
	var found []entrance
	check := func(x, y int, wall maze.Wall) {
		if g.IsOpen(x, y, wall) {
			found = append(found, entrance{x, y, wall})
		}
	}
	for x := 0; x < g.Width(); x++ {
		check(x, 0, maze.WallUp)
	}
	for x := 0; x < g.Width(); x++ {
		check(x, g.Height()-1, maze.WallDown)
	}
	for y := 0; y < g.Height(); y++ {
		check(0, y, maze.WallLeft)
	}
	for y := 0; y < g.Height(); y++ {
		check(g.Width()-1, y, maze.WallRight)
	}
	return found
}

// maxDepth returns the deepest room, by the data the depth strategy stored
func maxDepth(g *state.Maze) (x, y, depth int) {
	g.ForEachRoom(func(rx, ry int, room state.MazeRoom) {
		if room.Data > depth {
			x, y, depth = rx, ry, room.Data
		}
	})
	return x, y, depth
}

// DumpMap writes a debug dump of g: metadata, legend, the map and the
// entrances. The format is sections of key: value lines.
func DumpMap(w io.Writer, g *state.Maze, seed int64) error {
	if g == nil {
		return ErrNoGrid
	}

	var b strings.Builder

	validation := "ok"
	if err := g.Validate(); err != nil {
		validation = err.Error()
	}
	deepX, deepY, depth := maxDepth(g)

	fmt.Fprintf(&b, "=== %s ===\n\n", strings.ToUpper(messages.Get(messages.DumpTitle)))
	fmt.Fprintln(&b, "--- Metadata ---")
	fmt.Fprintf(&b, "seed: %d\n", seed)
	fmt.Fprintf(&b, "width: %d\n", g.Width())
	fmt.Fprintf(&b, "height: %d\n", g.Height())
	fmt.Fprintf(&b, "rooms: %d\n", g.Width()*g.Height())
	fmt.Fprintln(&b, "coordinate_system: x,y (0-based, x=column, y=row, y grows downwards)")
	fmt.Fprintf(&b, "door_pairs: %d\n", g.DoorPairs())
	fmt.Fprintf(&b, "dead_ends: %d\n", generator.DeadEnds(g))
	fmt.Fprintf(&b, "max_depth: %d\n", depth)
	fmt.Fprintf(&b, "deepest_room: %d,%d\n", deepX, deepY)
	fmt.Fprintf(&b, "validation: %s\n\n", validation)

	fmt.Fprintf(&b, "--- %s ---\n", messages.Get(messages.DumpLegend))
	fmt.Fprintln(&b, "# = wall  . = floor  one room is 3x3 characters, its middle row and column hold the doors")
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "--- Map ---")
	opts := text.Options{RoomWidth: 3, RoomHeight: 3, Wall: '#', Floor: '.'}
	if err := text.Render(&b, g, opts); err != nil {
		return fmt.Errorf("render map: %w", err)
	}
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "--- Entrances ---")
	found := entrances(g)
	if len(found) == 0 {
		fmt.Fprintln(&b, "  (none)")
	}
	for _, e := range found {
		fmt.Fprintf(&b, "  x: %d y: %d wall: %s\n", e.x, e.y, e.wall)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
