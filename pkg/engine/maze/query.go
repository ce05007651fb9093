package maze

// Topology is the read-only view of a grid that renderers depend on.
// Implementations must never be mutated through it.
type Topology interface {
	Width() int
	Height() int
	Walls(x, y int) Wall
	IsOpen(x, y int, wall Wall) bool
	IsCorner(x, y int, c Corner) bool
	IsCornerOut(x, y int, c Corner) bool
}

var _ Topology = (*Grid[struct{}])(nil)

// IsOpen returns true if the door through wall is open.
//
// On a virtual boundary room this tells whether the maze has an entrance
// there; far outside the grid everything is open.
func (g *Grid[T]) IsOpen(x, y int, wall Wall) bool {
	return g.Walls(x, y)&wall != 0
}

// IsOpenLeft returns true if the left door is open
func (g *Grid[T]) IsOpenLeft(x, y int) bool {
	return g.IsOpen(x, y, WallLeft)
}

// IsOpenUp returns true if the up door is open
func (g *Grid[T]) IsOpenUp(x, y int) bool {
	return g.IsOpen(x, y, WallUp)
}

// IsOpenRight returns true if the right door is open
func (g *Grid[T]) IsOpenRight(x, y int) bool {
	return g.IsOpen(x, y, WallRight)
}

// IsOpenDown returns true if the down door is open
func (g *Grid[T]) IsOpenDown(x, y int) bool {
	return g.IsOpen(x, y, WallDown)
}

// split separates a corner into its horizontal and vertical wall
func split(c Corner) (h, v Wall, ok bool) {
	h = c & (WallLeft | WallRight)
	v = c & (WallUp | WallDown)
	return h, v, h.IsValid() && v.IsValid()
}

// IsCorner returns true if the room has a recessed corner at c, that is both
// walls meeting there are closed
func (g *Grid[T]) IsCorner(x, y int, c Corner) bool {
	h, v, ok := split(c)
	if !ok {
		return false
	}
	return !g.IsOpen(x, y, h) && !g.IsOpen(x, y, v)
}

// IsCornerOut returns true if the room has a protruding corner at c: both
// walls are open, but one of the neighbours through them has the shared wall
// closed, so the opening is not flush.
func (g *Grid[T]) IsCornerOut(x, y int, c Corner) bool {
	h, v, ok := split(c)
	if !ok {
		return false
	}
	if !g.IsOpen(x, y, h) || !g.IsOpen(x, y, v) {
		return false
	}

	hx, _ := h.Delta()
	_, vy := v.Delta()
	return !g.IsOpen(x+hx, y, v) || !g.IsOpen(x, y+vy, h)
}

// IsCornerUpLeft returns true if the up-left corner is recessed
func (g *Grid[T]) IsCornerUpLeft(x, y int) bool { return g.IsCorner(x, y, CornerUpLeft) }

// IsCornerUpRight returns true if the up-right corner is recessed
func (g *Grid[T]) IsCornerUpRight(x, y int) bool { return g.IsCorner(x, y, CornerUpRight) }

// IsCornerDownLeft returns true if the down-left corner is recessed
func (g *Grid[T]) IsCornerDownLeft(x, y int) bool { return g.IsCorner(x, y, CornerDownLeft) }

// IsCornerDownRight returns true if the down-right corner is recessed
func (g *Grid[T]) IsCornerDownRight(x, y int) bool { return g.IsCorner(x, y, CornerDownRight) }

// IsCornerUpLeftOut returns true if the up-left corner protrudes
func (g *Grid[T]) IsCornerUpLeftOut(x, y int) bool { return g.IsCornerOut(x, y, CornerUpLeft) }

// IsCornerUpRightOut returns true if the up-right corner protrudes
func (g *Grid[T]) IsCornerUpRightOut(x, y int) bool { return g.IsCornerOut(x, y, CornerUpRight) }

// IsCornerDownLeftOut returns true if the down-left corner protrudes
func (g *Grid[T]) IsCornerDownLeftOut(x, y int) bool { return g.IsCornerOut(x, y, CornerDownLeft) }

// IsCornerDownRightOut returns true if the down-right corner protrudes
func (g *Grid[T]) IsCornerDownRightOut(x, y int) bool { return g.IsCornerOut(x, y, CornerDownRight) }
