package generator

import (
	"math/rand"
	"testing"

	"darkmaze/pkg/engine/maze"
)

// distances returns the door distance of every room from (sx, sy)
func distances(g *maze.Grid[int], sx, sy int) map[maze.Position]int {
	dist := map[maze.Position]int{{X: sx, Y: sy}: 0}
	queue := []maze.Position{{X: sx, Y: sy}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, wall := range maze.AllWalls() {
			nx, ny, ok := g.Enter(p.X, p.Y, wall, true)
			next := maze.Position{X: nx, Y: ny}
			if _, seen := dist[next]; !ok || !g.Contains(nx, ny) || seen {
				continue
			}
			dist[next] = dist[p] + 1
			queue = append(queue, next)
		}
	}
	return dist
}

func TestDepth(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g := newGrid[int](t, 12, 9)
		stats := RandomizedPrim(g, rand.New(rand.NewSource(seed)), Depth)

		want := distances(g, stats.StartX, stats.StartY)
		g.ForEachRoom(func(x, y int, room maze.Room[int]) {
			if d := want[maze.Position{X: x, Y: y}]; room.Data != d {
				t.Errorf("seed %d: depth of (%d,%d) = %d, want %d", seed, x, y, room.Data, d)
			}
		})
	}
}

func TestDeadEnds(t *testing.T) {
	g := newGrid[int](t, 3, 1)
	g.OpenDoor(0, 0, maze.WallRight)
	g.OpenDoor(1, 0, maze.WallRight)
	if got := DeadEnds(g); got != 2 {
		t.Errorf("DeadEnds(corridor) = %d, want 2", got)
	}

	// Entrances don't count as doors
	g.OpenEntrance(0, 0, maze.WallLeft)
	if got := DeadEnds(g); got != 2 {
		t.Errorf("DeadEnds(corridor with entrance) = %d, want 2", got)
	}

	single := newGrid[int](t, 1, 1)
	if got := DeadEnds(single); got != 0 {
		t.Errorf("DeadEnds(1x1) = %d, want 0", got)
	}
}
