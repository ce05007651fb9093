package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
)

// loadFont parses the embedded Go Mono font
func loadFont() (*text.GoTextFaceSource, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return src, nil
}

// getFontFace returns a cached monospace font face for the HUD
func (e *EbitenRenderer) getFontFace() *text.GoTextFace {
	if e.fontSource == nil {
		return nil
	}
	if e.cachedFace == nil {
		e.cachedFace = &text.GoTextFace{
			Source: e.fontSource,
			Size:   baseFontSize,
		}
	}
	return e.cachedFace
}

// lineHeight returns the distance between two HUD lines
func (e *EbitenRenderer) lineHeight() int {
	return int(baseFontSize) + 6
}
