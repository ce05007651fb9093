package generator

import "darkmaze/pkg/engine/maze"

// Stats describes a finished generation run
type Stats struct {
	StartX, StartY int
	Rooms          int // rooms joined to the maze, the start room included
	Doors          int // doors opened
	Discarded      int // frontier walls dropped because the room behind was taken
	MaxFrontier    int // largest frontier seen
}

// RandomizedPrim turns g into a spanning tree with the randomized Prim
// algorithm.
//
// Starting from a random room, a wall is repeatedly picked uniformly from the
// frontier; if the room behind it is not part of the maze yet the door is
// opened and that room's walls join the frontier. strategy, if not nil, is
// called once for every room as it joins and its result becomes the room's
// data; the start room is called last, with a nil frontier. The grid is
// expected to have all doors closed.
func RandomizedPrim[T any](g *maze.Grid[T], rng Source, strategy Strategy[T]) Stats {
	if g == nil {
		return Stats{}
	}

	width, height := g.Width(), g.Height()
	visited := make([]bool, width*height)

	// Start with a random room and add its walls
	sx := rng.Intn(width)
	sy := rng.Intn(height)
	visited[sy*width+sx] = true

	frontier := newFrontier()
	frontier.pushRoom(sx, sy, width, height)

	stats := Stats{StartX: sx, StartY: sy, Rooms: 1, MaxFrontier: frontier.Len()}

	for {
		wall, ok := frontier.pick(rng)
		if !ok {
			break
		}

		x, y, _ := g.Enter(wall.X, wall.Y, wall.Wall, false)
		if !g.Contains(x, y) || visited[y*width+x] {
			stats.Discarded++
			continue
		}

		g.OpenDoor(wall.X, wall.Y, wall.Wall)
		visited[y*width+x] = true
		frontier.pushRoom(x, y, width, height)

		stats.Rooms++
		stats.Doors++
		stats.MaxFrontier = max(stats.MaxFrontier, frontier.Len())

		if strategy != nil {
			g.SetData(x, y, strategy(g, x, y, frontier))
		}
	}

	var data T
	if strategy != nil {
		data = strategy(g, sx, sy, nil)
	}
	g.SetData(sx, sy, data)

	return stats
}
