package generator

import "darkmaze/pkg/engine/maze"

// Depth is a Strategy that numbers every room with its distance, in doors,
// from the start room.
//
// A room joining the maze has exactly one open door, leading to the room it
// was reached from, whose depth is already known.
func Depth(g *maze.Grid[int], x, y int, frontier *Frontier) int {
	if frontier == nil {
		return 0
	}
	for _, wall := range maze.AllWalls() {
		if nx, ny, ok := g.Enter(x, y, wall, true); ok && g.Contains(nx, ny) {
			return g.Data(nx, ny) + 1
		}
	}
	return 0
}

// DeadEnds counts the rooms with a single open door
func DeadEnds[T any](g *maze.Grid[T]) int {
	count := 0
	g.ForEachRoom(func(x, y int, room maze.Room[T]) {
		doors := 0
		for _, wall := range maze.AllWalls() {
			if nx, ny, ok := g.Enter(x, y, wall, true); ok && g.Contains(nx, ny) {
				doors++
			}
		}
		if doors == 1 {
			count++
		}
	})
	return count
}
