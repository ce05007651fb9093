package ebiten

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"darkmaze/pkg/engine/maze"
	"darkmaze/pkg/game/messages"
	"darkmaze/pkg/game/renderer/geometry"
)

// Draw renders the maze, the walker and the HUD (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	if e.walker == nil || e.walker.Grid == nil {
		return
	}
	e.ensureMesh()

	bounds := screen.Bounds()
	mapHeight := bounds.Dy() - e.hudHeight()
	scale := float64(e.scale)
	g := e.walker.Grid

	ox := geometry.Follow(float64(bounds.Dx()), float64(g.Width()), e.walker.Pos.X, scale)
	oy := geometry.Follow(float64(mapHeight), float64(g.Height()), e.walker.Pos.Y, scale)

	e.drawMaze(screen, ox, oy, scale)
	e.drawWalker(screen, ox, oy, scale)
	e.drawHUD(screen, mapHeight)
}

// drawMaze draws the floors, then the wall tops over them
func (e *EbitenRenderer) drawMaze(screen *ebiten.Image, ox, oy, scale float64) {
	height := e.walker.Grid.Height()
	for _, kind := range []geometry.Kind{geometry.KindFloor, geometry.KindTop} {
		for _, q := range e.mesh.Quads {
			if q.Kind != kind {
				continue
			}
			clr := color.Color(colorWall)
			if kind == geometry.KindFloor {
				clr = e.floorColor(q.Room)
			}
			r := q.TopDown(height)
			vector.DrawFilledRect(screen,
				float32(ox+r.X*scale), float32(oy+r.Y*scale),
				float32(r.W*scale), float32(r.H*scale),
				clr, false)
		}
	}
}

// floorColor shades a room by its distance from the start room
func (e *EbitenRenderer) floorColor(room maze.Position) color.Color {
	if e.maxDepth == 0 {
		return colorFloorNear
	}
	t := float64(e.walker.Grid.Data(room.X, room.Y)) / float64(e.maxDepth)
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t)
	}
	return color.RGBA{
		R: lerp(colorFloorNear.R, colorFloorFar.R),
		G: lerp(colorFloorNear.G, colorFloorFar.G),
		B: lerp(colorFloorNear.B, colorFloorFar.B),
		A: 255,
	}
}

// drawWalker draws the walker as a disc as wide as its collision band
func (e *EbitenRenderer) drawWalker(screen *ebiten.Image, ox, oy, scale float64) {
	clr := colorWalker
	if e.walker.LastHit != maze.WallNone {
		clr = colorWalkerHit
	}
	radius := max(float32(e.walker.Margin*scale), 3)
	vector.DrawFilledCircle(screen,
		float32(ox+e.walker.Pos.X*scale), float32(oy+e.walker.Pos.Y*scale),
		radius, clr, true)
}

// drawHUD draws the status panel under the maze
func (e *EbitenRenderer) drawHUD(screen *ebiten.Image, top int) {
	bounds := screen.Bounds()
	vector.DrawFilledRect(screen, 0, float32(top), float32(bounds.Dx()), float32(e.hudHeight()), colorPanel, false)

	w := e.walker
	x, y := w.Room()
	blocked := messages.Get(messages.HUDBlocked, w.LastHit)

	left := []string{
		fmt.Sprintf("%s  #%d", messages.Get(messages.Title), w.Seed),
		messages.Get(messages.HUDPosition, w.Pos.X, w.Pos.Y, x, y),
		messages.Get(messages.HUDMoves, w.Moves),
		messages.Get(messages.HUDHelp),
	}
	lineY := top + hudPadding
	for i, line := range left {
		clr := color.Color(colorText)
		switch {
		case i == 2 && w.LastHit != maze.WallNone:
			line += "  " + blocked
			clr = colorDenied
		case i == 3:
			clr = colorSubtle
		}
		e.drawText(screen, line, hudPadding, lineY, clr)
		lineY += e.lineHeight()
	}

	// Latest messages on the right half, newest last
	msgs := w.Messages
	if len(msgs) > hudLines {
		msgs = msgs[len(msgs)-hudLines:]
	}
	lineY = top + hudPadding
	for _, msg := range msgs {
		e.drawText(screen, e.FormatText(msg), bounds.Dx()/2, lineY, colorSubtle)
		lineY += e.lineHeight()
	}
}

// drawText draws a line with its top left corner at (x, y)
func (e *EbitenRenderer) drawText(screen *ebiten.Image, str string, x, y int, clr color.Color) {
	face := e.getFontFace()
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}
