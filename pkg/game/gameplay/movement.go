// Package gameplay turns player intents into walker movement.
package gameplay

import (
	"darkmaze/pkg/engine/input"
	"darkmaze/pkg/engine/maze"
	"darkmaze/pkg/game/messages"
	"darkmaze/pkg/game/state"
)

// directions maps the movement actions to the wall they walk towards
var directions = map[input.Action]maze.Wall{
	input.ActionMoveUp:    maze.WallUp,
	input.ActionMoveDown:  maze.WallDown,
	input.ActionMoveLeft:  maze.WallLeft,
	input.ActionMoveRight: maze.WallRight,
}

// ProcessIntent handles a high-level input intent from the tiered input
// system. Zooming is left to the renderer.
func ProcessIntent(w *state.Walker, intent input.Intent) {
	if w == nil || w.Grid == nil {
		return
	}

	switch intent.Action {
	case input.ActionNone:
		return

	case input.ActionQuit:
		w.Quit = true
		return

	case input.ActionRegenerate:
		if err := Regenerate(w, w.Seed+1); err != nil {
			Log.WithError(err).Error("cannot regenerate maze")
		}
		return
	}

	if wall, ok := directions[intent.Action]; ok {
		MoveWalker(w, wall)
	}
}

// MoveWalker moves the walker one step towards wall, sliding along whatever
// stops it.
func MoveWalker(w *state.Walker, wall maze.Wall) {
	dx, dy := wall.Delta()
	delta := maze.Vec{X: float64(dx) * w.Step, Y: float64(dy) * w.Step}
	margin := maze.Vec{X: w.Margin, Y: w.Margin}

	pos, hit := w.Grid.Move(w.Pos, delta, margin)
	if hit == maze.WallAny {
		Log.WithField("step", w.Step).WithField("margin", w.Margin).Warn("move rejected")
		return
	}

	w.Pos = pos
	w.LastHit = hit
	w.Moves++

	switch {
	case hit&wall != 0:
		w.AddMessage(messages.Get(messages.Bump, hit))
	case hit != maze.WallNone:
		w.AddMessage(messages.Get(messages.BumpCorner, hit))
	}

	if x, y := w.Room(); !w.Escaped && !w.Grid.Contains(x, y) {
		w.Escaped = true
		w.AddMessage(messages.Get(messages.EntranceReached))
	}
}
