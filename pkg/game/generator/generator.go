// Package generator builds spanning tree mazes over a maze.Grid.
package generator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"darkmaze/pkg/engine/maze"
)

// Log is the package logger; generation runs are reported at debug level
var Log = logrus.New()

// Name of the generation algorithm
const Name = "Randomized Prim"

// Source is a uniform integer generator over [0, n). *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Strategy computes the data of a room as it joins the maze.
//
// frontier holds the walls still waiting at that moment; it is nil for the
// start room, which is called last. Any context the strategy needs is
// captured by the closure.
type Strategy[T any] func(g *maze.Grid[T], x, y int, frontier *Frontier) T

// Config describes a maze to generate
type Config struct {
	Width, Height int

	// Seed for the random source; 0 picks one from the clock
	Seed int64

	// Entrances opens one door on the top edge and one on the bottom edge
	Entrances bool
}

// ResolveSeed returns seed, or a clock based seed if it is 0
func ResolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}

// NewRand returns a random source for seed, see ResolveSeed
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(ResolveSeed(seed)))
}

// Generate creates a grid of the configured size and carves a maze into it
func Generate[T any](cfg Config, strategy Strategy[T]) (*maze.Grid[T], error) {
	g, err := maze.New[T](cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	seed := ResolveSeed(cfg.Seed)
	rng := NewRand(seed)

	started := time.Now()
	stats := RandomizedPrim(g, rng, strategy)

	if cfg.Entrances {
		OpenEntrances(g, rng)
	}

	Log.WithFields(logrus.Fields{
		"algorithm":    Name,
		"width":        cfg.Width,
		"height":       cfg.Height,
		"seed":         seed,
		"start":        fmt.Sprintf("%d,%d", stats.StartX, stats.StartY),
		"rooms":        stats.Rooms,
		"doors":        stats.Doors,
		"discarded":    stats.Discarded,
		"max_frontier": stats.MaxFrontier,
		"duration":     time.Since(started).String(),
	}).Debug("maze generated")

	return g, nil
}

// OpenEntrances punches one entrance in the top edge and one in the bottom
// edge of g, at random columns
func OpenEntrances[T any](g *maze.Grid[T], rng Source) {
	g.OpenEntrance(rng.Intn(g.Width()), 0, maze.WallUp)
	g.OpenEntrance(rng.Intn(g.Width()), g.Height()-1, maze.WallDown)
}
