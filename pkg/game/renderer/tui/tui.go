// Package tui is the terminal renderer of the walk mode.
package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/gookit/color"

	"darkmaze/pkg/engine/input"
	"darkmaze/pkg/engine/terminal"
	"darkmaze/pkg/game/gameplay"
	"darkmaze/pkg/game/messages"
	"darkmaze/pkg/game/renderer"
	"darkmaze/pkg/game/renderer/text"
	"darkmaze/pkg/game/state"
)

// Viewport margins and minimum sizes
const (
	ViewportMinRows = 3
	ViewportMinCols = 3
	// Lines needed outside the map: title, blank, status, blank, messages
	// pane (header + 5 messages + footer), help
	ViewportTopMargin = 12
)

var _ renderer.Renderer = (*TUIRenderer)(nil)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out     io.Writer
	options text.Options

	// size returns the terminal size; replaced in tests
	size func() (width, height int)

	colorWall   color.Style
	colorFloor  color.Style
	colorMarker color.Style
	colorAction color.Style
	colorDenied color.Style
	colorSubtle color.Style
}

// New creates a TUI renderer writing to out and drawing rooms with options.
// Options.Marker is ignored; the walker is drawn instead.
func New(out io.Writer, options text.Options) *TUIRenderer {
	return &TUIRenderer{
		out:     out,
		options: options,
		size:    terminal.GetSize,
	}
}

// Init initializes the TUI renderer colors
func (t *TUIRenderer) Init() {
	t.colorWall = text.ColorWall
	t.colorFloor = text.ColorFloor
	t.colorMarker = text.ColorMarker
	t.colorAction = color.Style{color.FgMagenta}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	_ = terminal.ClearScreen(t.out)
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(str string, style renderer.TextStyle) string {
	if !t.options.Color {
		return str
	}
	switch style {
	case renderer.StyleWall:
		return t.colorWall.Sprint(str)
	case renderer.StyleFloor:
		return t.colorFloor.Sprint(str)
	case renderer.StyleMarker:
		return t.colorMarker.Sprint(str)
	case renderer.StyleAction:
		return t.colorAction.Sprint(str)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(str)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(str)
	default:
		return str
	}
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	return renderer.ExpandMarkup(t.StyleText, msg, args...)
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.out, t.FormatText(msg))
}

// GetViewportSize returns the map dimensions, in characters, that fit the
// terminal
func (t *TUIRenderer) GetViewportSize() (rows, cols int) {
	termWidth, termHeight := t.size()
	rows = max(termHeight-ViewportTopMargin, ViewportMinRows)
	cols = max(termWidth, ViewportMinCols)
	return rows, cols
}

// RenderFrame renders a complete frame
func (t *TUIRenderer) RenderFrame(w *state.Walker) {
	fmt.Fprintf(t.out, "%s  %s\n\n",
		t.StyleText(messages.Get(messages.Title), renderer.StyleAction),
		t.StyleText(fmt.Sprintf("#%d", w.Seed), renderer.StyleSubtle))

	t.printMap(w)
	t.printStatusBar(w)
	t.printMessagesPane(w)

	fmt.Fprintln(t.out, t.StyleText(messages.Get(messages.WalkHelp), renderer.StyleSubtle))
}

// printMap draws the part of the maze around the walker that fits the
// viewport
func (t *TUIRenderer) printMap(w *state.Walker) {
	o := t.options
	cols, rows := text.Size(w.Grid, o)
	vRows, vCols := t.GetViewportSize()
	vRows, vCols = min(vRows, rows), min(vCols, cols)

	mcol := int(math.Floor(w.Pos.X * float64(o.RoomWidth)))
	mrow := int(math.Floor(w.Pos.Y * float64(o.RoomHeight)))

	startCol := min(max(mcol-vCols/2, 0), cols-vCols)
	startRow := min(max(mrow-vRows/2, 0), rows-vRows)

	var b strings.Builder
	for row := startRow; row < startRow+vRows; row++ {
		for col := startCol; col < startCol+vCols; col++ {
			if row == mrow && col == mcol {
				b.WriteString(t.StyleText(string(text.MarkerIcon), renderer.StyleMarker))
				continue
			}
			c := text.Cell(w.Grid, o, col, row)
			style := renderer.StyleFloor
			if c == o.Wall {
				style = renderer.StyleWall
			}
			b.WriteString(t.StyleText(string(c), style))
		}
		b.WriteByte('\n')
	}
	fmt.Fprintln(t.out, b.String())
}

// printStatusBar renders the walker position and its last collision
func (t *TUIRenderer) printStatusBar(w *state.Walker) {
	x, y := w.Room()
	fmt.Fprint(t.out, messages.Get(messages.HUDPosition, w.Pos.X, w.Pos.Y, x, y))
	fmt.Fprint(t.out, "  ", messages.Get(messages.HUDMoves, w.Moves))
	if w.LastHit != 0 {
		fmt.Fprint(t.out, "  ", t.StyleText(messages.Get(messages.HUDBlocked, w.LastHit), renderer.StyleDenied))
	}
	fmt.Fprintln(t.out)
}

// printMessagesPane renders the messages log pane
func (t *TUIRenderer) printMessagesPane(w *state.Walker) {
	_, width := t.GetViewportSize()

	label := " Messages "
	sideLen := max((width-len(label))/2, 1)
	leftDashes := strings.Repeat("─", sideLen)
	rightDashes := strings.Repeat("─", max(width-sideLen-len(label), 1))

	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.StyleText(leftDashes+label+rightDashes, renderer.StyleSubtle))

	if len(w.Messages) == 0 {
		fmt.Fprintln(t.out, t.StyleText("  (no messages)", renderer.StyleSubtle))
	} else {
		for _, msg := range w.Messages {
			fmt.Fprintf(t.out, "  %s\n", t.FormatText(msg))
		}
	}

	fmt.Fprintln(t.out, t.StyleText(strings.Repeat("─", width), renderer.StyleSubtle))
}

// Run draws frames and feeds the keys read from keys to the walker until it
// quits or keys runs out
func (t *TUIRenderer) Run(w *state.Walker, keys *bufio.Reader) error {
	for !w.Quit {
		t.Clear()
		t.RenderFrame(w)

		intent, err := input.ReadIntent(keys)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}
		gameplay.ProcessIntent(w, intent)
	}
	return nil
}
