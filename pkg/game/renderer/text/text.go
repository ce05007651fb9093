// Package text draws a maze with characters, every room a block of
// RoomWidth x RoomHeight characters.
package text

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/gookit/color"

	"darkmaze/pkg/engine/maze"
)

// MarkerIcon is drawn at the marker position
const MarkerIcon = '@'

// ErrInvalidOptions is returned for room sizes below 3 or empty characters
var ErrInvalidOptions = errors.New("invalid text render options")

// Options controls the layout of Render
type Options struct {
	RoomWidth, RoomHeight int
	Wall, Floor           rune

	// Marker, if not nil, is drawn as MarkerIcon at the character under it
	Marker *maze.Vec

	// Color styles the characters with ANSI colours
	Color bool
}

// DefaultOptions are the options of the plain print mode
func DefaultOptions() Options {
	return Options{
		RoomWidth:  4,
		RoomHeight: 3,
		Wall:       '#',
		Floor:      ' ',
	}
}

// Validate checks that a room can hold its walls and a floor
func (o Options) Validate() error {
	if o.RoomWidth < 3 || o.RoomHeight < 3 {
		return fmt.Errorf("%w: room size %dx%d", ErrInvalidOptions, o.RoomWidth, o.RoomHeight)
	}
	if o.Wall == 0 || o.Floor == 0 {
		return fmt.Errorf("%w: empty wall or floor character", ErrInvalidOptions)
	}
	return nil
}

// Styles used when Options.Color is set
var (
	ColorWall   = color.Style{color.FgGray, color.OpBold}
	ColorFloor  = color.Style{color.FgBlack}
	ColorMarker = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
)

// Size returns the rendered size, in characters, of t
func Size(t maze.Topology, o Options) (cols, rows int) {
	return t.Width() * o.RoomWidth, t.Height() * o.RoomHeight
}

// Cell returns the character drawn at column col of row row.
//
// The first and last rows of a room hold its up and down walls, the first and
// last columns its left and right walls. Room corners are always wall; a side
// is floor where its door is open.
func Cell(t maze.Topology, o Options, col, row int) rune {
	rx, ry := col/o.RoomWidth, row/o.RoomHeight
	dx, dy := col%o.RoomWidth, row%o.RoomHeight

	lastX, lastY := o.RoomWidth-1, o.RoomHeight-1
	open := true

	switch {
	case (dy == 0 || dy == lastY) && (dx == 0 || dx == lastX):
		open = false
	case dy == 0:
		open = t.IsOpen(rx, ry, maze.WallUp)
	case dy == lastY:
		open = t.IsOpen(rx, ry, maze.WallDown)
	case dx == 0:
		open = t.IsOpen(rx, ry, maze.WallLeft)
	case dx == lastX:
		open = t.IsOpen(rx, ry, maze.WallRight)
	}

	if open {
		return o.Floor
	}
	return o.Wall
}

// markerCell returns the character position of the marker, if it is on the map
func markerCell(t maze.Topology, o Options) (col, row int, ok bool) {
	if o.Marker == nil {
		return 0, 0, false
	}
	col = int(math.Floor(o.Marker.X * float64(o.RoomWidth)))
	row = int(math.Floor(o.Marker.Y * float64(o.RoomHeight)))
	cols, rows := Size(t, o)
	return col, row, col >= 0 && col < cols && row >= 0 && row < rows
}

// Render writes t to w, one line per character row
func Render(w io.Writer, t maze.Topology, o Options) error {
	if err := o.Validate(); err != nil {
		return err
	}

	cols, rows := Size(t, o)
	mcol, mrow, marked := markerCell(t, o)

	out := bufio.NewWriter(w)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if marked && col == mcol && row == mrow {
				writeStyled(out, o, MarkerIcon, ColorMarker)
				continue
			}
			c := Cell(t, o, col, row)
			style := ColorFloor
			if c == o.Wall {
				style = ColorWall
			}
			writeStyled(out, o, c, style)
		}
		out.WriteByte('\n')
	}

	return out.Flush()
}

func writeStyled(out *bufio.Writer, o Options, c rune, style color.Style) {
	if o.Color {
		out.WriteString(style.Sprint(string(c)))
		return
	}
	out.WriteRune(c)
}
