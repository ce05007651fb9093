package text

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"darkmaze/pkg/engine/maze"
)

func corridor(t *testing.T) *maze.Grid[int] {
	t.Helper()
	g, err := maze.New[int](2, 1)
	if err != nil {
		t.Fatal(err)
	}
	g.OpenDoor(0, 0, maze.WallRight)
	return g
}

func render(t *testing.T, topo maze.Topology, o Options) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Render(&buf, topo, o); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	return buf.String()
}

func TestRender_Corridor(t *testing.T) {
	o := Options{RoomWidth: 3, RoomHeight: 3, Wall: '#', Floor: '.'}
	want := strings.Join([]string{
		"######",
		"#....#",
		"######",
	}, "\n") + "\n"
	if got := render(t, corridor(t), o); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestRender_WideRooms(t *testing.T) {
	g, err := maze.New[int](1, 2)
	if err != nil {
		t.Fatal(err)
	}
	g.OpenDoor(0, 0, maze.WallDown)
	g.OpenEntrance(0, 0, maze.WallUp)

	o := Options{RoomWidth: 5, RoomHeight: 3, Wall: '#', Floor: ' '}
	want := strings.Join([]string{
		"#   #",
		"#   #",
		"#   #",
		"#   #",
		"#   #",
		"#####",
	}, "\n") + "\n"
	if got := render(t, g, o); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestRender_Marker(t *testing.T) {
	o := Options{RoomWidth: 3, RoomHeight: 3, Wall: '#', Floor: '.', Marker: &maze.Vec{X: 1.5, Y: 0.5}}
	lines := strings.Split(render(t, corridor(t), o), "\n")
	if lines[1] != "#...@#" {
		t.Errorf("marker row = %q, want %q", lines[1], "#...@#")
	}

	// Off the map the marker is not drawn
	o.Marker = &maze.Vec{X: -0.5, Y: 0.5}
	if strings.ContainsRune(render(t, corridor(t), o), MarkerIcon) {
		t.Error("marker outside the map was drawn")
	}
}

func TestRender_Unicode(t *testing.T) {
	o := Options{RoomWidth: 3, RoomHeight: 3, Wall: '█', Floor: '·'}
	lines := strings.Split(render(t, corridor(t), o), "\n")
	if lines[1] != "█····█" {
		t.Errorf("row = %q", lines[1])
	}
}

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name string
		o    Options
		ok   bool
	}{
		{"default", DefaultOptions(), true},
		{"minimal", Options{RoomWidth: 3, RoomHeight: 3, Wall: '#', Floor: ' '}, true},
		{"narrow", Options{RoomWidth: 2, RoomHeight: 3, Wall: '#', Floor: ' '}, false},
		{"flat", Options{RoomWidth: 3, RoomHeight: 1, Wall: '#', Floor: ' '}, false},
		{"no wall", Options{RoomWidth: 3, RoomHeight: 3, Floor: ' '}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.o.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidOptions) {
				t.Errorf("Validate() = %v, want ErrInvalidOptions", err)
			}
		})
	}

	var buf bytes.Buffer
	if err := Render(&buf, corridor(t), Options{}); err == nil || buf.Len() != 0 {
		t.Errorf("Render with zero options = %v, wrote %d bytes", err, buf.Len())
	}
}

func TestSize(t *testing.T) {
	cols, rows := Size(corridor(t), DefaultOptions())
	if cols != 8 || rows != 3 {
		t.Errorf("Size() = %dx%d, want 8x3", cols, rows)
	}
}
