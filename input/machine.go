package input

import (
	"github.com/lixenwraith/vi-chain/terminal"
)

// Machine is the input state machine
// Parses terminal.Event into semantic Intent, tracking pointer position and button state
type Machine struct {
	held       bool
	x, y       int
	positioned bool
}

// NewMachine creates a new input machine
func NewMachine() *Machine {
	return &Machine{}
}

// Held reports whether the primary button is currently down
func (m *Machine) Held() bool {
	return m.held
}

// Pointer returns the last known pointer cell; ok is false before the first mouse event
func (m *Machine) Pointer() (x, y int, ok bool) {
	return m.x, m.y, m.positioned
}

// Process converts a terminal event into an Intent
// Mouse events that move the pointer yield IntentPointerMove; a press or release in place only
// updates the held flag and yields IntentPointerHeld
func (m *Machine) Process(ev terminal.Event) Intent {
	switch ev.Type {
	case terminal.EventClosed:
		return Intent{Type: IntentQuit}

	case terminal.EventResize:
		return Intent{Type: IntentResize, Width: ev.Width, Height: ev.Height}

	case terminal.EventKey:
		return m.processKey(ev)

	case terminal.EventMouse:
		return m.processMouse(ev)
	}

	return Intent{Type: IntentNone}
}

func (m *Machine) processKey(ev terminal.Event) Intent {
	switch ev.Key {
	case terminal.KeyEscape, terminal.KeyCtrlC:
		return Intent{Type: IntentQuit}
	case terminal.KeyRune:
		switch ev.Rune {
		case 'q', 'Q':
			return Intent{Type: IntentQuit}
		case 'r', 'R':
			return Intent{Type: IntentReset}
		case ' ':
			return Intent{Type: IntentPause}
		case 'd', 'D':
			return Intent{Type: IntentToggleDebug}
		case 'm', 'M':
			return Intent{Type: IntentToggleMute}
		}
	}
	return Intent{Type: IntentNone}
}

func (m *Machine) processMouse(ev terminal.Event) Intent {
	held := ev.MouseBtn == terminal.MouseBtnLeft
	moved := !m.positioned || ev.MouseX != m.x || ev.MouseY != m.y

	m.x, m.y = ev.MouseX, ev.MouseY
	m.positioned = true

	if moved {
		m.held = held
		return Intent{Type: IntentPointerMove, X: m.x, Y: m.y, Held: m.held}
	}

	if held != m.held {
		m.held = held
		return Intent{Type: IntentPointerHeld, X: m.x, Y: m.y, Held: m.held}
	}

	return Intent{Type: IntentNone}
}
