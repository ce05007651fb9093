package maze

import "strings"

// Wall is a bit mask of room walls. A set bit means the door on that side is open.
type Wall uint8

// Wall constants
const (
	WallLeft Wall = 1 << iota
	WallUp
	WallRight
	WallDown

	WallNone Wall = 0
	WallAny  Wall = WallLeft | WallUp | WallRight | WallDown
)

// Corner is the union of two adjacent walls.
type Corner = Wall

// Corner constants
const (
	CornerUpLeft    Corner = WallUp | WallLeft
	CornerUpRight   Corner = WallUp | WallRight
	CornerDownLeft  Corner = WallDown | WallLeft
	CornerDownRight Corner = WallDown | WallRight
)

// AllWalls returns the single walls in bit order, for iteration
func AllWalls() []Wall {
	return []Wall{WallLeft, WallUp, WallRight, WallDown}
}

// AllCorners returns the four corners
func AllCorners() []Corner {
	return []Corner{CornerUpLeft, CornerUpRight, CornerDownLeft, CornerDownRight}
}

// String returns the string representation of a wall mask
func (w Wall) String() string {
	if w == WallNone {
		return "None"
	}
	if w&^WallAny != 0 {
		return "Unknown"
	}

	var parts []string
	for _, single := range AllWalls() {
		if w&single != 0 {
			parts = append(parts, single.name())
		}
	}
	return strings.Join(parts, "|")
}

func (w Wall) name() string {
	switch w {
	case WallLeft:
		return "Left"
	case WallUp:
		return "Up"
	case WallRight:
		return "Right"
	case WallDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// IsValid returns true if w is exactly one wall
func (w Wall) IsValid() bool {
	return w == WallLeft || w == WallUp || w == WallRight || w == WallDown
}

// Opposite returns the wall on the other side of a door.
// The result is undefined for anything but a single wall.
func (w Wall) Opposite() Wall {
	if w > WallUp {
		return w >> 2
	}
	return w << 2
}

// Delta returns the x and y offsets for stepping through this wall.
// Only the first matching bit counts, in left, up, right, down order.
func (w Wall) Delta() (dx, dy int) {
	switch {
	case w&WallLeft != 0:
		return -1, 0
	case w&WallUp != 0:
		return 0, -1
	case w&WallRight != 0:
		return 1, 0
	case w&WallDown != 0:
		return 0, 1
	default:
		return 0, 0
	}
}
