package ebiten

import "image/color"

// Color palette
var (
	colorBackground = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorWall       = color.RGBA{180, 180, 200, 255} // Light gray-blue
	colorFloorNear  = color.RGBA{70, 70, 100, 255}   // Floor close to the start room
	colorFloorFar   = color.RGBA{30, 60, 60, 255}    // Floor of the deepest room
	colorWalker     = color.RGBA{0, 255, 0, 255}     // Bright green
	colorWalkerHit  = color.RGBA{255, 100, 100, 255} // Walker pressed against a wall
	colorText       = color.RGBA{200, 210, 245, 255} // Soft off-white
	colorSubtle     = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorDenied     = color.RGBA{255, 100, 100, 255} // Bright red
	colorPanel      = color.RGBA{30, 30, 50, 220}    // Semi-transparent dark
)

// Zoom bounds, in pixels per room
const (
	minScale  = 8
	maxScale  = 128
	scaleStep = 4
)

// Held movement keys fire on the first tick, then repeat
const (
	repeatDelay    = 12
	repeatInterval = 2
)

// HUD layout
const (
	baseFontSize = 14.0
	hudPadding   = 8
	hudLines     = 4
)
