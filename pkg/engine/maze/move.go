package maze

import "math"

// Vec is a position or displacement in room units; every room is 1x1 and room
// (x, y) spans [x, x+1) x [y, y+1).
type Vec struct {
	X, Y float64
}

// Add returns v + o
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Room returns the room containing v
func (v Vec) Room() (x, y int) {
	return int(math.Floor(v.X)), int(math.Floor(v.Y))
}

// ValidMove reports whether delta and margin are acceptable to Move: each
// delta component within [-1, 1] and each margin within [0, 0.5).
func ValidMove(delta, margin Vec) bool {
	return math.Abs(delta.X) <= 1 && math.Abs(delta.Y) <= 1 &&
		margin.X >= 0 && margin.X < 0.5 && margin.Y >= 0 && margin.Y < 0.5
}

// Move advances pos by delta and clamps the result against closed walls and
// protruding corners.
//
// margin is the half-width of the band along each room edge that collides
// with the wall on that edge. The returned mask holds the walls that stopped
// the motion; it is 0 for an unobstructed move. A nil grid or a delta or
// margin out of range returns pos unchanged with WallAny, which never occurs
// as a real collision.
//
// When a protruding corner pushes the point back along one axis, the wall on
// that axis is included in the mask. C move_point reports 0 for such a
// corner clamp; here a corner clamp is never silent.
func (g *Grid[T]) Move(pos, delta, margin Vec) (Vec, Wall) {
	if g == nil || !ValidMove(delta, margin) {
		return pos, WallAny
	}

	ox, oy := pos.Room()

	next := pos.Add(delta)
	cx, cy := next.Room()
	fx := next.X - float64(cx)
	fy := next.Y - float64(cy)

	mx, my := margin.X, margin.Y
	imx, imy := 1.0-mx, 1.0-my

	var edges Wall
	if fx < mx {
		edges |= WallLeft
	}
	if fx > imx {
		edges |= WallRight
	}
	if fy < my {
		edges |= WallUp
	}
	if fy > imy {
		edges |= WallDown
	}

	var result Wall

	// Walls of the destination room
	if edges&WallLeft != 0 && !g.IsOpenLeft(cx, cy) {
		edges &^= WallLeft
		if ox == cx {
			next.X, fx = float64(cx)+mx, mx
			result |= WallLeft
		} else {
			next.X, fx = float64(ox)+imx, imx
			result |= WallRight
		}
	} else if edges&WallRight != 0 && !g.IsOpenRight(cx, cy) {
		edges &^= WallRight
		if ox == cx {
			next.X, fx = float64(cx)+imx, imx
			result |= WallRight
		} else {
			next.X, fx = float64(ox)+mx, mx
			result |= WallLeft
		}
	}
	if edges&WallUp != 0 && !g.IsOpenUp(cx, cy) {
		edges &^= WallUp
		if oy == cy {
			next.Y, fy = float64(cy)+my, my
			result |= WallUp
		} else {
			next.Y, fy = float64(oy)+imy, imy
			result |= WallDown
		}
	} else if edges&WallDown != 0 && !g.IsOpenDown(cx, cy) {
		edges &^= WallDown
		if oy == cy {
			next.Y, fy = float64(cy)+imy, imy
			result |= WallDown
		} else {
			next.Y, fy = float64(oy)+my, my
			result |= WallUp
		}
	}

	// Protruding corners; only one axis is pushed back
	switch {
	case edges&CornerUpLeft == CornerUpLeft && g.IsCornerOut(cx, cy, CornerUpLeft):
		if fx > fy {
			next.X = float64(cx) + mx
			result |= WallLeft
		} else {
			next.Y = float64(cy) + my
			result |= WallUp
		}
	case edges&CornerUpRight == CornerUpRight && g.IsCornerOut(cx, cy, CornerUpRight):
		if 1.0-fx > fy {
			next.X = float64(cx) + imx
			result |= WallRight
		} else {
			next.Y = float64(cy) + my
			result |= WallUp
		}
	case edges&CornerDownLeft == CornerDownLeft && g.IsCornerOut(cx, cy, CornerDownLeft):
		if 1.0-fx < fy {
			next.X = float64(cx) + mx
			result |= WallLeft
		} else {
			next.Y = float64(cy) + imy
			result |= WallDown
		}
	case edges&CornerDownRight == CornerDownRight && g.IsCornerOut(cx, cy, CornerDownRight):
		if fx < fy {
			next.X = float64(cx) + imx
			result |= WallRight
		} else {
			next.Y = float64(cy) + imy
			result |= WallDown
		}
	}

	return next, result
}
