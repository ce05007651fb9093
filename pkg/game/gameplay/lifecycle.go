package gameplay

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"darkmaze/pkg/game/config"
	"darkmaze/pkg/game/generator"
	"darkmaze/pkg/game/messages"
	"darkmaze/pkg/game/state"
)

// Log is the package logger
var Log = logrus.New()

// GenerateMaze builds a maze whose rooms hold their depth from the start room
func GenerateMaze(width, height int, seed int64, entrances bool) (*state.Maze, error) {
	return generator.Generate(generator.Config{
		Width:     width,
		Height:    height,
		Seed:      seed,
		Entrances: entrances,
	}, generator.Depth)
}

// StartRoom returns the room a walker starts in: the room behind the top
// entrance if there is one, otherwise the top left room.
func StartRoom(g *state.Maze) (x, y int) {
	for x := 0; x < g.Width(); x++ {
		if g.IsOpenUp(x, 0) {
			return x, 0
		}
	}
	return 0, 0
}

// BuildWalker generates the maze described by cfg and places a walker in it.
// cfg.Seed must already be resolved.
func BuildWalker(cfg config.Config) (*state.Walker, error) {
	g, err := GenerateMaze(cfg.Width, cfg.Height, cfg.Seed, cfg.Entrances)
	if err != nil {
		return nil, fmt.Errorf("build walker: %w", err)
	}
	x, y := StartRoom(g)
	w := state.NewWalker(g, cfg.Seed, x, y, cfg.Margin, cfg.Step)
	w.Entrances = cfg.Entrances
	w.AddMessage(messages.Get(messages.Generated, g.Width(), g.Height(), cfg.Seed))
	return w, nil
}

// Regenerate replaces the walker's maze with one of the same size built from
// seed and moves the walker to its start.
func Regenerate(w *state.Walker, seed int64) error {
	g, err := GenerateMaze(w.Grid.Width(), w.Grid.Height(), seed, w.Entrances)
	if err != nil {
		return fmt.Errorf("regenerate: %w", err)
	}
	x, y := StartRoom(g)
	w.Reset(g, seed, x, y)
	w.AddMessage(messages.Get(messages.Regenerated, seed))

	Log.WithFields(logrus.Fields{
		"seed":   seed,
		"width":  g.Width(),
		"height": g.Height(),
	}).Debug("maze regenerated")
	return nil
}
