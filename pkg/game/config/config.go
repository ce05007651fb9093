// Package config holds the settings of a darkmaze run. Values come from the
// defaults, then an optional JSON file, then the command line.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
)

// Run modes
const (
	ModePrint = "print"
	ModeWalk  = "walk"
	ModeGUI   = "gui"
	ModeDump  = "dump"
)

// Modes lists the valid run modes
var Modes = []string{ModePrint, ModeWalk, ModeGUI, ModeDump}

// Configuration errors
var (
	ErrInvalidSize     = errors.New("maze size must be positive")
	ErrInvalidMode     = errors.New("unknown mode")
	ErrInvalidRoomSize = errors.New("room size must be at least 3x3 characters")
	ErrInvalidChar     = errors.New("wall and floor must be single characters")
	ErrInvalidMargin   = errors.New("margin must be in [0, 0.5)")
	ErrInvalidStep     = errors.New("step must be in (0, 1]")
	ErrInvalidScale    = errors.New("scale must be positive")
)

type Config struct {
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Seed      int64  `json:"seed"`
	Mode      string `json:"mode"`
	Entrances bool   `json:"entrances"`
	Fit       bool   `json:"fit"`

	RoomWidth  int    `json:"room_width"`
	RoomHeight int    `json:"room_height"`
	Wall       string `json:"wall"`
	Floor      string `json:"floor"`
	Color      bool   `json:"color"`

	Margin float64 `json:"margin"`
	Step   float64 `json:"step"`
	Scale  int     `json:"scale"`

	// Bindings replaces the keys of an action, by action name
	Bindings map[string]string `json:"bindings"`

	Out     string `json:"out"`
	Verbose bool   `json:"verbose"`
}

// Default returns the configuration used when nothing is given
func Default() Config {
	return Config{
		Width:      20,
		Height:     10,
		Mode:       ModePrint,
		RoomWidth:  4,
		RoomHeight: 3,
		Wall:       "#",
		Floor:      " ",
		Margin:     0.2,
		Step:       0.1,
		Scale:      32,
	}
}

// Read decodes the JSON file at path over config. Fields missing from the
// file keep their value.
func Read(path string, config *Config) error {
	if b, err := os.ReadFile(path); err != nil {
		return fmt.Errorf("read config: %w", err)
	} else if err := json.Unmarshal(b, config); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Validate checks every field and returns the first problem found
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.Width, c.Height)
	case !slices.Contains(Modes, c.Mode):
		return fmt.Errorf("%w: %q", ErrInvalidMode, c.Mode)
	case c.RoomWidth < 3 || c.RoomHeight < 3:
		return fmt.Errorf("%w: %dx%d", ErrInvalidRoomSize, c.RoomWidth, c.RoomHeight)
	case utf8.RuneCountInString(c.Wall) != 1 || utf8.RuneCountInString(c.Floor) != 1:
		return fmt.Errorf("%w: %q, %q", ErrInvalidChar, c.Wall, c.Floor)
	case !(c.Margin >= 0 && c.Margin < 0.5):
		return fmt.Errorf("%w: %v", ErrInvalidMargin, c.Margin)
	case !(c.Step > 0 && c.Step <= 1):
		return fmt.Errorf("%w: %v", ErrInvalidStep, c.Step)
	case c.Scale <= 0:
		return fmt.Errorf("%w: %d", ErrInvalidScale, c.Scale)
	}
	return nil
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"width":       c.Width,
		"height":      c.Height,
		"seed":        c.Seed,
		"mode":        c.Mode,
		"entrances":   c.Entrances,
		"fit":         c.Fit,
		"room_width":  c.RoomWidth,
		"room_height": c.RoomHeight,
		"wall":        c.Wall,
		"floor":       c.Floor,
		"color":       c.Color,
		"margin":      c.Margin,
		"step":        c.Step,
		"scale":       c.Scale,
		"out":         c.Out,
	}
}

// Interactive returns true for the modes that move a walker
func (c Config) Interactive() bool {
	return c.Mode == ModeWalk || c.Mode == ModeGUI
}
