package gameplay

import (
	"strings"
	"testing"

	"darkmaze/pkg/engine/input"
	"darkmaze/pkg/engine/maze"
	"darkmaze/pkg/game/config"
	"darkmaze/pkg/game/state"
)

// makeCorridor creates a walker in the left room of a 2x1 maze whose rooms
// share an open door.
func makeCorridor(t *testing.T) *state.Walker {
	t.Helper()
	g, err := maze.New[int](2, 1)
	if err != nil {
		t.Fatal(err)
	}
	g.OpenDoor(0, 0, maze.WallRight)
	return state.NewWalker(g, 1, 0, 0, 0.2, 0.25)
}

func TestProcessIntent_NilWalkerNoPanic(t *testing.T) {
	ProcessIntent(nil, input.Intent{Action: input.ActionMoveUp})
	ProcessIntent(&state.Walker{}, input.Intent{Action: input.ActionMoveUp})
}

func TestProcessIntent_OpenDoorLetsWalkerThrough(t *testing.T) {
	w := makeCorridor(t)
	for i := 0; i < 4; i++ {
		ProcessIntent(w, input.Intent{Action: input.ActionMoveRight})
	}
	if x, y := w.Room(); x != 1 || y != 0 {
		t.Errorf("walker in room (%d,%d), want (1,0)", x, y)
	}
	if w.LastHit != maze.WallNone {
		t.Errorf("LastHit = %v, want None", w.LastHit)
	}
	if w.Moves != 4 {
		t.Errorf("Moves = %d, want 4", w.Moves)
	}
}

func TestProcessIntent_ClosedWallBlocks(t *testing.T) {
	w := makeCorridor(t)
	ProcessIntent(w, input.Intent{Action: input.ActionMoveUp})
	ProcessIntent(w, input.Intent{Action: input.ActionMoveUp})

	if w.Pos.Y != 0.2 {
		t.Errorf("Pos.Y = %v, want clamped to the margin 0.2", w.Pos.Y)
	}
	if w.LastHit != maze.WallUp {
		t.Errorf("LastHit = %v, want Up", w.LastHit)
	}
	if len(w.Messages) == 0 || !strings.Contains(w.Messages[len(w.Messages)-1], "Up") {
		t.Errorf("Messages = %v, want a bump into the Up wall", w.Messages)
	}
}

func TestProcessIntent_AllFourDirections(t *testing.T) {
	tests := []struct {
		action input.Action
		want   maze.Vec
	}{
		{input.ActionMoveUp, maze.Vec{X: 0.5, Y: 0.25}},
		{input.ActionMoveDown, maze.Vec{X: 0.5, Y: 0.75}},
		{input.ActionMoveLeft, maze.Vec{X: 0.25, Y: 0.5}},
		{input.ActionMoveRight, maze.Vec{X: 0.75, Y: 0.5}},
	}
	for _, tt := range tests {
		t.Run(input.ActionName(tt.action), func(t *testing.T) {
			w := makeCorridor(t)
			ProcessIntent(w, input.Intent{Action: tt.action})
			if w.Pos != tt.want {
				t.Errorf("Pos = %v, want %v", w.Pos, tt.want)
			}
		})
	}
}

func TestProcessIntent_Quit(t *testing.T) {
	w := makeCorridor(t)
	ProcessIntent(w, input.Intent{Action: input.ActionQuit})
	if !w.Quit {
		t.Error("Quit not set")
	}
}

func TestProcessIntent_Regenerate(t *testing.T) {
	w := makeCorridor(t)
	ProcessIntent(w, input.Intent{Action: input.ActionMoveRight})
	ProcessIntent(w, input.Intent{Action: input.ActionRegenerate})

	if w.Seed != 2 {
		t.Errorf("Seed = %d, want 2", w.Seed)
	}
	if w.Moves != 0 {
		t.Errorf("Moves = %d after regenerate, want 0", w.Moves)
	}
	if w.Grid.Width() != 2 || w.Grid.Height() != 1 {
		t.Errorf("regenerated maze is %dx%d, want 2x1", w.Grid.Width(), w.Grid.Height())
	}
	if err := w.Grid.Validate(); err != nil {
		t.Errorf("regenerated maze: %v", err)
	}
}

func TestMoveWalker_RejectedStep(t *testing.T) {
	w := makeCorridor(t)
	w.Step = 2
	before := w.Pos
	MoveWalker(w, maze.WallRight)
	if w.Pos != before || w.Moves != 0 {
		t.Errorf("step larger than a room moved the walker to %v", w.Pos)
	}
}

func TestMoveWalker_Escape(t *testing.T) {
	g, err := maze.New[int](1, 1)
	if err != nil {
		t.Fatal(err)
	}
	g.OpenEntrance(0, 0, maze.WallUp)
	w := state.NewWalker(g, 1, 0, 0, 0.2, 0.5)

	MoveWalker(w, maze.WallUp)
	MoveWalker(w, maze.WallUp)
	if !w.Escaped {
		t.Fatalf("walker at %v did not escape", w.Pos)
	}
	n := len(w.Messages)
	MoveWalker(w, maze.WallUp)
	if len(w.Messages) != n {
		t.Error("escape reported twice")
	}
}

func TestBuildWalker(t *testing.T) {
	cfg := config.Default()
	cfg.Width, cfg.Height, cfg.Seed, cfg.Entrances = 6, 4, 11, true

	w, err := BuildWalker(cfg)
	if err != nil {
		t.Fatalf("BuildWalker() error: %v", err)
	}
	x, y := w.Room()
	if y != 0 || !w.Grid.IsOpenUp(x, y) {
		t.Errorf("walker starts in (%d,%d), want the room behind the top entrance", x, y)
	}
	if len(w.Messages) != 1 {
		t.Errorf("Messages = %v, want the generation notice", w.Messages)
	}

	cfg.Width = 0
	if _, err := BuildWalker(cfg); err == nil {
		t.Error("BuildWalker() with zero width succeeded")
	}
}
