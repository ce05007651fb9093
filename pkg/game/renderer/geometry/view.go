package geometry

import "math"

// Rect is an axis aligned rectangle in maze units, Y growing downwards like
// room rows
type Rect struct {
	X, Y, W, H float64
}

// TopDown projects q onto the maze plane of a maze height rooms high,
// undoing the Y flip of Build. Only meaningful for horizontal quads.
func (q Quad) TopDown(height int) Rect {
	lo, hi := q.Bounds()
	return Rect{
		X: lo.X,
		Y: float64(height+1) - hi.Y,
		W: hi.X - lo.X,
		H: hi.Y - lo.Y,
	}
}

// Follow returns the screen offset along one axis that keeps focus, a maze
// coordinate, in view. A maze smaller than the screen is centred; a larger one
// scrolls with focus in the middle without showing past its ends.
func Follow(screen, size, focus, scale float64) float64 {
	extent := size * scale
	if extent <= screen {
		return math.Floor((screen - extent) / 2)
	}
	offset := screen/2 - focus*scale
	return math.Floor(math.Max(math.Min(offset, 0), screen-extent))
}
