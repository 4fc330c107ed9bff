package input

import (
	"github.com/gdamore/tcell/v2"
)

// Machine is the pointer state machine.
// Folds raw tcell events into press/drag/release gestures: the terminal
// reports every motion event with the current button mask, so the machine
// keeps the last primary-button state to classify motion as a drag only
// while the button is held, and to emit exactly one release per gesture
type Machine struct {
	primaryDown bool
	lastX       int
	lastY       int
}

// NewMachine creates a new input machine
func NewMachine() *Machine {
	return &Machine{}
}

// Reset clears the pending gesture
func (m *Machine) Reset() {
	m.primaryDown = false
}

// Process parses a terminal event and returns an Intent.
// Returns nil when the event carries no semantic action
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC, tcell.KeyCtrlQ:
		return &Intent{Type: IntentQuit}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return &Intent{Type: IntentQuit}
		case 'r', 'R':
			return &Intent{Type: IntentRestart}
		}
	}
	return nil
}

func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	x, y := ev.Position()
	down := ev.Buttons()&tcell.Button1 != 0
	wasDown := m.primaryDown
	m.primaryDown = down

	switch {
	case down && !wasDown:
		m.lastX, m.lastY = x, y
		return &Intent{Type: IntentPress, X: x, Y: y}
	case down && wasDown:
		if x == m.lastX && y == m.lastY {
			return nil
		}
		m.lastX, m.lastY = x, y
		return &Intent{Type: IntentDrag, X: x, Y: y}
	case !down && wasDown:
		return &Intent{Type: IntentRelease, X: x, Y: y}
	}
	return nil
}
