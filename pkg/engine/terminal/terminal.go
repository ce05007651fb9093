package terminal

import (
	"bytes"
	"io"
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// FitMaze returns the largest maze, in rooms, whose text rendering fits a
// width x height character screen with reserved lines kept free below it.
// Always at least 1x1.
func FitMaze(width, height, roomWidth, roomHeight, reserved int) (w, h int) {
	if roomWidth <= 0 || roomHeight <= 0 {
		return 1, 1
	}
	w = max(width/roomWidth, 1)
	h = max((height-reserved)/roomHeight, 1)
	return w, h
}

// IsTerminal returns true if f is connected to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// MakeRaw puts the terminal behind f into raw mode. The returned function
// restores the previous state.
func MakeRaw(f *os.File) (restore func(), err error) {
	fd := int(f.Fd())
	old, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return func() { _ = term.Restore(fd, old) }, nil
}

// CRLFWriter translates "\n" into "\r\n" for terminals in raw mode, which no
// longer return the carriage on a line feed.
type CRLFWriter struct {
	W io.Writer
}

func (c CRLFWriter) Write(p []byte) (int, error) {
	if _, err := c.W.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))); err != nil {
		return 0, err
	}
	return len(p), nil
}

// ClearScreen moves the cursor home and clears the screen
func ClearScreen(w io.Writer) error {
	_, err := io.WriteString(w, "\x1b[H\x1b[2J")
	return err
}
