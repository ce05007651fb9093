// Package ebiten shows a maze in a window, drawn from above, with a walker
// moved by the keyboard.
package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"darkmaze/pkg/game/renderer/geometry"
	"darkmaze/pkg/game/state"
)

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	// Window dimensions
	windowWidth  int
	windowHeight int

	// Pixels per room (adjustable with +/-)
	scale int

	walker *state.Walker

	// Mesh of the walker's maze, rebuilt when the maze changes
	params   geometry.Params
	mesh     geometry.Mesh
	meshFor  *state.Maze
	maxDepth int

	// Font source and cached face for the HUD
	fontSource *text.GoTextFaceSource
	cachedFace *text.GoTextFace
}
