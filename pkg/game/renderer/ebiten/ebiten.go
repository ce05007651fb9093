package ebiten

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"darkmaze/pkg/game/messages"
	"darkmaze/pkg/game/renderer"
	"darkmaze/pkg/game/renderer/geometry"
	"darkmaze/pkg/game/state"
)

// Log is the package logger
var Log = logrus.New()

var _ renderer.Renderer = (*EbitenRenderer)(nil)
var _ ebiten.Game = (*EbitenRenderer)(nil)

// New creates a new Ebiten renderer showing w at scale pixels per room
func New(w *state.Walker, scale int) *EbitenRenderer {
	scale = min(max(scale, minScale), maxScale)
	e := &EbitenRenderer{
		windowWidth:  800,
		windowHeight: 600,
		scale:        scale,
		walker:       w,
	}
	if w != nil && w.Grid != nil {
		e.windowWidth = min(max(w.Grid.Width()*scale, 320), 1600)
		e.windowHeight = min(max(w.Grid.Height()*scale, 240), 1000) + e.hudHeight()
	}
	return e
}

// hudHeight returns the height of the status panel under the maze
func (e *EbitenRenderer) hudHeight() int {
	return hudPadding*2 + hudLines*e.lineHeight()
}

// Init sets up the window and loads the HUD font
func (e *EbitenRenderer) Init() {
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(messages.Get(messages.Title))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	src, err := loadFont()
	if err != nil {
		Log.WithError(err).Warn("HUD text disabled")
		return
	}
	e.fontSource = src
}

// Clear is a no-op: every frame is drawn from scratch
func (e *EbitenRenderer) Clear() {}

// RenderFrame sets the walker shown by the next frames
func (e *EbitenRenderer) RenderFrame(w *state.Walker) {
	e.walker = w
}

// StyleText returns text unchanged; the HUD is drawn in a single colour
func (e *EbitenRenderer) StyleText(text string, style renderer.TextStyle) string {
	return text
}

// FormatText formats a message with the markup system
func (e *EbitenRenderer) FormatText(msg string, args ...any) string {
	return renderer.ExpandMarkup(e.StyleText, msg, args...)
}

// ShowMessage adds a message to the walker's log shown in the HUD
func (e *EbitenRenderer) ShowMessage(msg string) {
	if e.walker != nil {
		e.walker.AddMessage(msg)
	}
}

// GetViewportSize returns how many rooms fit the window
func (e *EbitenRenderer) GetViewportSize() (rows, cols int) {
	w, h := ebiten.WindowSize()
	if w == 0 || h == 0 {
		w, h = e.windowWidth, e.windowHeight
	}
	return (h - e.hudHeight()) / e.scale, w / e.scale
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until the player quits
func (e *EbitenRenderer) Run() error {
	if e.walker == nil || e.walker.Grid == nil {
		return errors.New("ebiten: no maze to show")
	}
	e.Init()
	if err := ebiten.RunGame(e); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("ebiten: %w", err)
	}
	return nil
}

// ensureMesh rebuilds the mesh when the walker moved to another maze
func (e *EbitenRenderer) ensureMesh() {
	g := e.walker.Grid
	if e.meshFor == g {
		return
	}

	p := geometry.DefaultParams(g.Width(), g.Height())
	p.WallWidth = e.walker.Margin
	p.SlopeWidth = 0
	p.Flags = geometry.FlagTop | geometry.FlagFloor

	mesh, err := geometry.Build(g, p)
	if err != nil {
		// A zero margin has no wall to show; draw the floor only
		p.WallWidth = 0.05
		mesh, err = geometry.Build(g, p)
	}
	if err != nil {
		Log.WithError(err).Error("cannot build maze mesh")
		return
	}

	e.params, e.mesh, e.meshFor = p, mesh, g
	e.maxDepth = 0
	g.ForEachRoom(func(x, y int, room state.MazeRoom) {
		e.maxDepth = max(e.maxDepth, room.Data)
	})

	Log.WithFields(logrus.Fields{
		"quads":     len(mesh.Quads),
		"max_depth": e.maxDepth,
	}).Debug("maze mesh built")
}
