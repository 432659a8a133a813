package core

import (
	"testing"
)

func setupInput(t *testing.T) {
	t.Helper()
	EventSystemInitialize()
	if err := InputInitialize(); err != nil {
		t.Fatal(err)
	}
	// Tests share the singleton; start each one from a clean slate.
	*inputState = InputState{}
	inputInitialized = true
}

func TestInputKeyStateRolls(t *testing.T) {
	setupInput(t)

	InputProcessKey(KEY_W, true)
	if !InputIsKeyDown(KEY_W) {
		t.Fatal("W should be down")
	}
	if !InputKeyPressedThisFrame(KEY_W) {
		t.Fatal("W should be a fresh press")
	}

	InputUpdate(0.016)
	if !InputIsKeyDown(KEY_W) {
		t.Fatal("W should still be held")
	}
	if InputKeyPressedThisFrame(KEY_W) {
		t.Fatal("held key must not read as a fresh press")
	}
	if !InputWasKeyDown(KEY_W) {
		t.Fatal("previous state should have W down")
	}

	InputProcessKey(KEY_W, false)
	if !InputIsKeyUp(KEY_W) {
		t.Fatal("W should be up after release")
	}
}

func TestInputPressedThisFrameEdges(t *testing.T) {
	setupInput(t)

	tests := []struct {
		name     string
		now      bool
		previous bool
		expected bool
	}{
		{"down edge", true, false, true},
		{"held", true, true, false},
		{"up", false, false, false},
		{"released", false, true, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			inputState.KeyboardCurrent.Keys[KEY_P] = tc.now
			inputState.KeyboardPrevious.Keys[KEY_P] = tc.previous
			if got := InputKeyPressedThisFrame(KEY_P); got != tc.expected {
				t.Errorf("pressed = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestInputMouseMoveFirstSight(t *testing.T) {
	setupInput(t)

	if InputCursorSeen() {
		t.Fatal("cursor must start unseen")
	}

	// The first report must not produce a spurious movement delta.
	InputProcessMouseMove(400, 300)
	if !InputCursorSeen() {
		t.Fatal("cursor should be seen after first move")
	}
	x, y := InputGetMousePosition()
	px, py := InputGetPreviousMousePosition()
	if x != px || y != py {
		t.Fatalf("first sighting produced a delta: current (%f,%f) previous (%f,%f)", x, y, px, py)
	}

	InputUpdate(0.016)
	InputProcessMouseMove(410, 290)
	x, y = InputGetMousePosition()
	px, py = InputGetPreviousMousePosition()
	if x-px != 10 || py-y != 10 {
		t.Errorf("unexpected movement delta: (%f,%f)", x-px, py-y)
	}
}

func TestInputMouseWheelAccumulates(t *testing.T) {
	setupInput(t)

	InputProcessMouseWheel(1)
	InputProcessMouseWheel(2)
	if got := InputGetMouseWheelDelta(); got != 3 {
		t.Errorf("wheel delta = %f, expected 3", got)
	}

	InputUpdate(0.016)
	if got := InputGetMouseWheelDelta(); got != 0 {
		t.Errorf("wheel delta = %f, expected 0 after frame roll", got)
	}
}

func TestInputKeyEventPayload(t *testing.T) {
	setupInput(t)

	var events []EventContext
	EventRegister(EVENT_CODE_KEY_PRESSED, func(context EventContext) {
		events = append(events, context)
	})

	InputProcessKey(KEY_D, true)
	EventsDispatch()

	if len(events) == 0 {
		t.Fatal("no key event delivered")
	}
	// Payloads are value types; a pointer assertion must not be needed.
	key, ok := events[len(events)-1].Data.(KeyEvent)
	if !ok {
		t.Fatalf("payload type %T, expected KeyEvent", events[len(events)-1].Data)
	}
	if key.KeyCode != KEY_D {
		t.Errorf("key code = %#x, expected KEY_D", key.KeyCode)
	}
}

func TestInputButtons(t *testing.T) {
	setupInput(t)

	InputProcessButton(BUTTON_LEFT, true)
	if !InputIsButtonDown(BUTTON_LEFT) {
		t.Fatal("left button should be down")
	}
	InputProcessButton(BUTTON_LEFT, false)
	if !InputIsButtonUp(BUTTON_LEFT) {
		t.Fatal("left button should be up")
	}
}
