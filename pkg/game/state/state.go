package state

import (
	"darkmaze/pkg/engine/maze"
)

// Maze is the grid walked in the interactive modes; every room holds its
// distance from the generation start room.
type Maze = maze.Grid[int]

// MazeRoom is a room of a Maze
type MazeRoom = maze.Room[int]

// Walker is the state of an interactive session: a point moving through a
// maze.
type Walker struct {
	Grid      *Maze
	Seed      int64
	Entrances bool // mazes are generated with a top and a bottom entrance

	Pos    maze.Vec
	Margin float64 // collision band along every wall, in room units
	Step   float64 // distance covered by one move

	LastHit maze.Wall // walls that stopped the last move
	Moves   int

	Escaped bool // walked out through an entrance
	Quit    bool

	Messages []string
}

// NewWalker places a walker in the middle of room (x, y) of grid
func NewWalker(grid *Maze, seed int64, x, y int, margin, step float64) *Walker {
	return &Walker{
		Grid:     grid,
		Seed:     seed,
		Pos:      RoomCentre(x, y),
		Margin:   margin,
		Step:     step,
		Messages: make([]string, 0),
	}
}

// RoomCentre returns the centre of room (x, y)
func RoomCentre(x, y int) maze.Vec {
	return maze.Vec{X: float64(x) + 0.5, Y: float64(y) + 0.5}
}

// Room returns the room the walker is in
func (w *Walker) Room() (x, y int) {
	return w.Pos.Room()
}

// AddMessage adds a message to the walker's message log
func (w *Walker) AddMessage(msg string) {
	const maxMessages = 5
	w.Messages = append(w.Messages, msg)

	// Keep only the last maxMessages
	if len(w.Messages) > maxMessages {
		w.Messages = w.Messages[len(w.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (w *Walker) ClearMessages() {
	w.Messages = make([]string, 0)
}

// Reset puts the walker in a new maze, keeping its settings
func (w *Walker) Reset(grid *Maze, seed int64, x, y int) {
	w.Grid = grid
	w.Seed = seed
	w.Pos = RoomCentre(x, y)
	w.LastHit = maze.WallNone
	w.Moves = 0
	w.Escaped = false
	w.ClearMessages()
}
