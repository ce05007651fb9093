package input

import (
	"slices"
	"testing"
)

func TestMapToIntent(t *testing.T) {
	tests := []struct {
		code string
		want Action
	}{
		{"arrow_up", ActionMoveUp},
		{"w", ActionMoveUp},
		{"k", ActionMoveUp},
		{"s", ActionMoveDown},
		{"h", ActionMoveLeft},
		{"d", ActionMoveRight},
		{"r", ActionRegenerate},
		{"escape", ActionQuit},
		{"ctrl_c", ActionQuit},
		{"+", ActionZoomIn},
		{"x", ActionNone},
		{"", ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got := MapToIntent(DebouncedInput{Device: DeviceKeyboard, Code: tt.code})
			if got.Action != tt.want {
				t.Errorf("MapToIntent(%q) = %s, want %s", tt.code, ActionName(got.Action), ActionName(tt.want))
			}
		})
	}
}

func TestIntent_IsMove(t *testing.T) {
	for _, a := range []Action{ActionMoveUp, ActionMoveDown, ActionMoveLeft, ActionMoveRight} {
		if !(Intent{Action: a}).IsMove() {
			t.Errorf("%s is not a move", ActionName(a))
		}
	}
	for _, a := range []Action{ActionNone, ActionQuit, ActionRegenerate} {
		if (Intent{Action: a}).IsMove() {
			t.Errorf("%s is a move", ActionName(a))
		}
	}
}

func TestActionByName(t *testing.T) {
	a, ok := ActionByName("Regenerate")
	if !ok || a != ActionRegenerate {
		t.Errorf("ActionByName(Regenerate) = %v, %v", a, ok)
	}
	if _, ok := ActionByName("Jump"); ok {
		t.Error("ActionByName(Jump) succeeded")
	}
}

func TestSetSingleBinding(t *testing.T) {
	saved := make(map[string]Action, len(bindings))
	for k, v := range bindings {
		saved[k] = v
	}
	t.Cleanup(func() { bindings = saved })

	SetSingleBinding(ActionMoveUp, "i")

	codes := GetBindingsByAction()[ActionMoveUp]
	if want := []string{"arrow_up", "i"}; !slices.Equal(codes, want) {
		t.Errorf("bindings for Move Up = %v, want %v", codes, want)
	}

	// Reserved codes are never rebound
	SetSingleBinding(ActionRegenerate, "escape")
	if got := MapToIntent(DebouncedInput{Code: "escape"}); got.Action != ActionQuit {
		t.Errorf("escape maps to %s, want Quit", ActionName(got.Action))
	}
}

func TestRepeat(t *testing.T) {
	var fired []int
	for d := 0; d <= 20; d++ {
		if Repeat(d, 10, 4) {
			fired = append(fired, d)
		}
	}
	if want := []int{1, 10, 14, 18}; !slices.Equal(fired, want) {
		t.Errorf("fired on ticks %v, want %v", fired, want)
	}
	if Repeat(5, 1, 0) {
		t.Error("zero interval repeated")
	}
}
