package maze

import (
	"errors"
	"math"
	"testing"
)

// newGrid creates a grid or fails the test
func newGrid(t *testing.T, width, height int) *Grid[int] {
	t.Helper()
	g, err := New[int](width, height)
	if err != nil {
		t.Fatalf("New(%d, %d) error: %v", width, height, err)
	}
	return g
}

func TestNew_InvalidDimensions(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 3},
		{"zero height", 3, 0},
		{"negative", -1, 5},
		{"overflow", math.MaxInt, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New[int](tt.width, tt.height)
			if !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("New(%d, %d) error = %v, want ErrInvalidDimensions", tt.width, tt.height, err)
			}
			if g != nil {
				t.Errorf("New(%d, %d) returned a grid on error", tt.width, tt.height)
			}
		})
	}
}

func TestNew_AllClosed(t *testing.T) {
	g := newGrid(t, 4, 3)
	if g.Width() != 4 || g.Height() != 3 {
		t.Fatalf("dimensions = %dx%d, want 4x3", g.Width(), g.Height())
	}
	g.ForEachRoom(func(x, y int, room Room[int]) {
		if room.Walls != WallNone {
			t.Errorf("room (%d,%d) walls = %v, want None", x, y, room.Walls)
		}
		if room.Data != 0 {
			t.Errorf("room (%d,%d) data = %v, want zero", x, y, room.Data)
		}
	})
}

func TestContains(t *testing.T) {
	g := newGrid(t, 3, 2)
	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{2, 1, true},
		{3, 1, false},
		{2, 2, false},
		{-1, 0, false},
		{0, -1, false},
	}
	for _, tt := range tests {
		if got := g.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestOpenDoor_RoundTrip(t *testing.T) {
	g := newGrid(t, 3, 3)
	if !g.OpenDoor(1, 1, WallLeft) {
		t.Fatal("OpenDoor(1, 1, Left) = false, want true")
	}
	g.ForEachRoom(func(x, y int, room Room[int]) {
		want := WallNone
		switch {
		case x == 1 && y == 1:
			want = WallLeft
		case x == 0 && y == 1:
			want = WallRight
		}
		if room.Walls != want {
			t.Errorf("room (%d,%d) walls = %v, want %v", x, y, room.Walls, want)
		}
	})
}

func TestOpenDoor_SymmetricAndIdempotent(t *testing.T) {
	const width, height = 4, 3
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			for _, wall := range AllWalls() {
				once := newGrid(t, width, height)
				once.OpenDoor(x, y, wall)
				twice := newGrid(t, width, height)
				twice.OpenDoor(x, y, wall)
				twice.OpenDoor(x, y, wall)

				if once.Walls(x, y) != twice.Walls(x, y) {
					t.Errorf("OpenDoor(%d, %d, %v) twice = %v, once = %v", x, y, wall, twice.Walls(x, y), once.Walls(x, y))
				}

				nx, ny, _ := once.Enter(x, y, wall, false)
				if once.Contains(nx, ny) && !once.IsOpen(nx, ny, wall.Opposite()) {
					t.Errorf("OpenDoor(%d, %d, %v): neighbour (%d,%d) lacks %v", x, y, wall, nx, ny, wall.Opposite())
				}
			}
		}
	}
}

func TestOpenDoor_OutOfBounds(t *testing.T) {
	g := newGrid(t, 2, 2)
	if g.OpenDoor(2, 0, WallLeft) {
		t.Error("OpenDoor(2, 0, Left) = true, want false")
	}
	if g.Walls(1, 0) != WallNone {
		t.Errorf("out of bounds OpenDoor changed (1,0) to %v", g.Walls(1, 0))
	}
}

func TestOpenDoor_EdgeLeavesGrid(t *testing.T) {
	g := newGrid(t, 2, 2)
	if !g.OpenDoor(0, 0, WallUp) {
		t.Fatal("OpenDoor(0, 0, Up) = false, want true")
	}
	if g.Walls(0, 0) != WallUp {
		t.Errorf("Walls(0, 0) = %v, want Up", g.Walls(0, 0))
	}
}

func TestOpenEntrance(t *testing.T) {
	g := newGrid(t, 3, 3)
	if g.OpenEntrance(1, 1, WallUp) {
		t.Error("OpenEntrance on an interior room = true, want false")
	}
	if g.OpenEntrance(1, 0, WallDown) {
		t.Error("OpenEntrance through an interior wall = true, want false")
	}
	if !g.OpenEntrance(1, 0, WallUp) {
		t.Fatal("OpenEntrance(1, 0, Up) = false, want true")
	}
	if !g.IsOpenDown(1, -1) {
		t.Error("virtual room above entrance should be open downwards")
	}
}

func TestEnter(t *testing.T) {
	g := newGrid(t, 3, 3)
	g.OpenDoor(1, 1, WallRight)

	tests := []struct {
		name       string
		x, y       int
		wall       Wall
		onlyIfOpen bool
		wantX      int
		wantY      int
		wantOK     bool
	}{
		{"left", 1, 1, WallLeft, false, 0, 1, true},
		{"up", 1, 1, WallUp, false, 1, 0, true},
		{"right", 1, 1, WallRight, false, 2, 1, true},
		{"down", 1, 1, WallDown, false, 1, 2, true},
		{"open only, open", 1, 1, WallRight, true, 2, 1, true},
		{"open only, closed", 1, 1, WallDown, true, 1, 1, false},
		{"unclamped off edge", 0, 0, WallLeft, false, -1, 0, true},
		{"from outside", 5, 5, WallLeft, false, 5, 5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, ok := g.Enter(tt.x, tt.y, tt.wall, tt.onlyIfOpen)
			if x != tt.wantX || y != tt.wantY || ok != tt.wantOK {
				t.Errorf("Enter(%d, %d, %v, %v) = (%d, %d, %v), want (%d, %d, %v)",
					tt.x, tt.y, tt.wall, tt.onlyIfOpen, x, y, ok, tt.wantX, tt.wantY, tt.wantOK)
			}
		})
	}
}

func TestWalls_VirtualBoundary(t *testing.T) {
	g := newGrid(t, 3, 2)
	g.OpenDoor(0, 1, WallLeft)
	g.OpenDoor(2, 0, WallRight)
	g.OpenDoor(1, 0, WallUp)
	g.OpenDoor(2, 1, WallDown)

	tests := []struct {
		name string
		x, y int
		want Wall
	}{
		{"left closed", -1, 0, WallAny &^ WallRight},
		{"left entrance", -1, 1, WallAny},
		{"right entrance", 3, 0, WallAny},
		{"right closed", 3, 1, WallAny &^ WallLeft},
		{"top entrance", 1, -1, WallAny},
		{"top closed", 0, -1, WallAny &^ WallDown},
		{"bottom entrance", 2, 2, WallAny},
		{"bottom closed", 0, 2, WallAny &^ WallUp},
		{"diagonal corner", -1, -1, WallAny},
		{"far outside", 10, 0, WallAny},
		{"far below", 1, 5, WallAny},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.Walls(tt.x, tt.y); got != tt.want {
				t.Errorf("Walls(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestData(t *testing.T) {
	g := newGrid(t, 2, 2)
	if !g.SetData(1, 1, 42) {
		t.Fatal("SetData(1, 1) = false, want true")
	}
	if got := g.Data(1, 1); got != 42 {
		t.Errorf("Data(1, 1) = %d, want 42", got)
	}
	if g.SetData(2, 0, 7) {
		t.Error("SetData(2, 0) = true, want false")
	}
	if got := g.Data(-1, 0); got != 0 {
		t.Errorf("Data(-1, 0) = %d, want zero", got)
	}
}
