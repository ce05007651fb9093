package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "darkmaze/pkg/engine/input"
	"darkmaze/pkg/game/gameplay"
)

// keyCodes maps Ebiten keys to the raw codes of the input bindings
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyArrowUp:        "arrow_up",
	ebiten.KeyArrowDown:      "arrow_down",
	ebiten.KeyArrowLeft:      "arrow_left",
	ebiten.KeyArrowRight:     "arrow_right",
	ebiten.KeyW:              "w",
	ebiten.KeyA:              "a",
	ebiten.KeyS:              "s",
	ebiten.KeyD:              "d",
	ebiten.KeyH:              "h",
	ebiten.KeyJ:              "j",
	ebiten.KeyK:              "k",
	ebiten.KeyL:              "l",
	ebiten.KeyR:              "r",
	ebiten.KeyQ:              "q",
	ebiten.KeyEscape:         "escape",
	ebiten.KeyEqual:          "=",
	ebiten.KeyMinus:          "-",
	ebiten.KeyNumpadAdd:      "numpad_add",
	ebiten.KeyNumpadSubtract: "numpad_subtract",
}

// Update handles input and moves the walker (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	for _, intent := range e.checkInput() {
		switch intent.Action {
		case engineinput.ActionZoomIn:
			e.scale = min(e.scale+scaleStep, maxScale)
		case engineinput.ActionZoomOut:
			e.scale = max(e.scale-scaleStep, minScale)
		default:
			gameplay.ProcessIntent(e.walker, intent)
		}
	}

	if e.walker.Quit {
		return ebiten.Termination
	}
	return nil
}

// checkInput returns the intents of the keys firing this tick. Movement keys
// repeat while held, the others fire once per press.
func (e *EbitenRenderer) checkInput() []engineinput.Intent {
	var intents []engineinput.Intent
	for key, code := range keyCodes {
		intent := engineinput.MapToIntent(engineinput.NewDebouncedInput(engineinput.RawInput{
			Device: engineinput.DeviceKeyboard,
			Code:   code,
		}))
		if intent.Action == engineinput.ActionNone {
			continue
		}

		fire := inpututil.IsKeyJustPressed(key)
		if intent.IsMove() {
			fire = engineinput.Repeat(inpututil.KeyPressDuration(key), repeatDelay, repeatInterval)
		}
		if fire {
			intents = append(intents, intent)
		}
	}
	return intents
}
