package input

import (
	"bufio"
	"strings"
)

// Control bytes seen from a raw mode terminal
const (
	keyCtrlC     = 3
	keyBackspace = 127
	keyEscape    = 0x1b
)

// ReadKey reads one key press from a terminal in raw mode and returns its
// code: "arrow_up", "arrow_down", "arrow_left", "arrow_right", "escape",
// "enter", "backspace", "ctrl_c", or the lower-cased printable character.
// Unknown escape sequences and other control bytes return an empty code.
//
// A lone escape is told apart from the start of a sequence by the absence of
// buffered bytes behind it, since terminals write a sequence in one go.
func ReadKey(r *bufio.Reader) (string, error) {
	b, err := r.ReadByte()
	if err != nil {
		return "", err
	}

	switch {
	case b == keyEscape:
		if r.Buffered() == 0 {
			return "escape", nil
		}
		return readEscapeSequence(r)
	case b == keyCtrlC:
		return "ctrl_c", nil
	case b == '\r' || b == '\n':
		return "enter", nil
	case b == keyBackspace || b == '\b':
		return "backspace", nil
	case b >= 32 && b < 127:
		return strings.ToLower(string(b)), nil
	}

	return "", nil
}

// readEscapeSequence decodes what follows an escape byte. Both CSI (ESC [)
// and SS3 (ESC O) arrow sequences are recognised.
func readEscapeSequence(r *bufio.Reader) (string, error) {
	b2, err := r.ReadByte()
	if err != nil {
		return "", err
	}
	if b2 != '[' && b2 != 'O' {
		// Alt+key; drop the key
		return "", nil
	}

	b3, err := r.ReadByte()
	if err != nil {
		return "", err
	}
	switch b3 {
	case 'A':
		return "arrow_up", nil
	case 'B':
		return "arrow_down", nil
	case 'C':
		return "arrow_right", nil
	case 'D':
		return "arrow_left", nil
	}

	// Discard the rest of longer sequences such as "ESC [ 1 ; 5 A"
	for b3 >= '0' && b3 <= '9' || b3 == ';' {
		if b3, err = r.ReadByte(); err != nil {
			return "", err
		}
	}
	return "", nil
}

// ReadIntent reads one key press and maps it through the current bindings
func ReadIntent(r *bufio.Reader) (Intent, error) {
	code, err := ReadKey(r)
	if err != nil {
		return Intent{}, err
	}
	raw := RawInput{Device: DeviceTerminal, Code: code}
	return MapToIntent(NewDebouncedInput(raw)), nil
}
