package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func mouse(x, y int, buttons tcell.ButtonMask) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, buttons, 0)
}

func TestDragGesture(t *testing.T) {
	m := NewMachine()

	in := m.Process(mouse(4, 2, tcell.Button1))
	if in == nil || in.Type != IntentPress || in.X != 4 || in.Y != 2 {
		t.Fatalf("press parsed as %+v", in)
	}

	in = m.Process(mouse(6, 3, tcell.Button1))
	if in == nil || in.Type != IntentDrag || in.X != 6 || in.Y != 3 {
		t.Fatalf("drag parsed as %+v", in)
	}

	// Motion without displacement is noise
	if in = m.Process(mouse(6, 3, tcell.Button1)); in != nil {
		t.Fatalf("stationary motion parsed as %+v", in)
	}

	in = m.Process(mouse(6, 4, tcell.ButtonNone))
	if in == nil || in.Type != IntentRelease || in.X != 6 || in.Y != 4 {
		t.Fatalf("release parsed as %+v", in)
	}

	// A second cleared mask must not produce a second release
	if in = m.Process(mouse(6, 4, tcell.ButtonNone)); in != nil {
		t.Fatalf("idle motion parsed as %+v", in)
	}
}

func TestMotionWithoutPressIsIgnored(t *testing.T) {
	m := NewMachine()
	if in := m.Process(mouse(10, 10, tcell.ButtonNone)); in != nil {
		t.Fatalf("hover parsed as %+v", in)
	}
}

func TestSecondaryButtonIsIgnored(t *testing.T) {
	m := NewMachine()
	if in := m.Process(mouse(5, 5, tcell.Button2)); in != nil {
		t.Fatalf("secondary press parsed as %+v", in)
	}
}

func TestKeyIntents(t *testing.T) {
	m := NewMachine()
	tests := []struct {
		ev   *tcell.EventKey
		want IntentType
	}{
		{tcell.NewEventKey(tcell.KeyEscape, 0, 0), IntentQuit},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, 0), IntentQuit},
		{tcell.NewEventKey(tcell.KeyRune, 'q', 0), IntentQuit},
		{tcell.NewEventKey(tcell.KeyRune, 'r', 0), IntentRestart},
	}
	for _, tt := range tests {
		in := m.Process(tt.ev)
		if in == nil || in.Type != tt.want {
			t.Errorf("key %v parsed as %+v, want type %d", tt.ev.Key(), in, tt.want)
		}
	}
	if in := m.Process(tcell.NewEventKey(tcell.KeyRune, 'z', 0)); in != nil {
		t.Errorf("unbound rune parsed as %+v", in)
	}

	if in := m.Process(tcell.NewEventResize(80, 24)); in == nil || in.Type != IntentResize {
		t.Errorf("resize parsed as %+v", in)
	}
}

func TestResetDropsGesture(t *testing.T) {
	m := NewMachine()
	m.Process(mouse(1, 1, tcell.Button1))
	m.Reset()
	if in := m.Process(mouse(1, 1, tcell.ButtonNone)); in != nil {
		t.Fatalf("release after reset parsed as %+v", in)
	}
}
