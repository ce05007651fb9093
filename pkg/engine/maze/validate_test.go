package maze

import (
	"errors"
	"testing"
)

func TestValidate_Tree(t *testing.T) {
	// A serpentine path through a 3x2 grid
	g := newGrid(t, 3, 2)
	g.OpenDoor(0, 0, WallRight)
	g.OpenDoor(1, 0, WallRight)
	g.OpenDoor(2, 0, WallDown)
	g.OpenDoor(2, 1, WallLeft)
	g.OpenDoor(1, 1, WallLeft)
	g.OpenEntrance(0, 0, WallLeft)

	if err := g.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
	if got := g.DoorPairs(); got != 5 {
		t.Errorf("DoorPairs() = %d, want 5", got)
	}
}

func TestValidate_SingleRoom(t *testing.T) {
	g := newGrid(t, 1, 1)
	if err := g.Validate(); err != nil {
		t.Errorf("Validate() on 1x1 = %v, want nil", err)
	}
}

func TestValidate_Cycle(t *testing.T) {
	g := newGrid(t, 2, 2)
	g.OpenDoor(0, 0, WallRight)
	g.OpenDoor(0, 0, WallDown)
	g.OpenDoor(1, 1, WallUp)
	g.OpenDoor(1, 1, WallLeft)

	if err := g.Validate(); !errors.Is(err, ErrCycle) {
		t.Errorf("Validate() = %v, want ErrCycle", err)
	}
}

func TestValidate_Disconnected(t *testing.T) {
	g := newGrid(t, 2, 2)
	g.OpenDoor(0, 0, WallRight)
	g.OpenDoor(0, 1, WallRight)

	if err := g.Validate(); !errors.Is(err, ErrDisconnected) {
		t.Errorf("Validate() = %v, want ErrDisconnected", err)
	}
}

func TestValidate_Asymmetric(t *testing.T) {
	g := newGrid(t, 2, 1)
	g.room(0, 0).Walls |= WallRight

	if err := g.Validate(); !errors.Is(err, ErrAsymmetricDoor) {
		t.Errorf("Validate() = %v, want ErrAsymmetricDoor", err)
	}
}

func TestReachable(t *testing.T) {
	g := newGrid(t, 3, 1)
	g.OpenDoor(0, 0, WallRight)
	g.OpenEntrance(0, 0, WallLeft)

	reached := g.Reachable(0, 0)
	if reached.Size() != 2 {
		t.Errorf("Reachable(0, 0) has %d rooms, want 2", reached.Size())
	}
	if reached.Has(Position{2, 0}) {
		t.Error("Reachable(0, 0) includes the closed off room (2,0)")
	}
	if got := g.Reachable(2, 0).Size(); got != 1 {
		t.Errorf("Reachable(2, 0) has %d rooms, want 1", got)
	}
	if got := g.Reachable(-1, 0).Size(); got != 0 {
		t.Errorf("Reachable(-1, 0) has %d rooms, want 0", got)
	}
}
