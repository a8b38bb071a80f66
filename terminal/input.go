package terminal

import "github.com/gdamore/tcell/v2"

// EventType distinguishes input event categories
type EventType uint8

const (
	EventNone EventType = iota
	EventKey
	EventResize
	EventMouse
	EventClosed // Screen finalized
)

// Key identifies the non-rune keys the application reacts to
type Key uint16

const (
	KeyNone Key = iota
	KeyRune
	KeyEscape
	KeyCtrlC
	KeyEnter
	KeyOther
)

// Event represents a terminal input event
type Event struct {
	Type   EventType
	Key    Key
	Rune   rune
	Width  int // For EventResize
	Height int // For EventResize

	// Mouse event fields
	MouseX   int
	MouseY   int
	MouseBtn MouseButton
}

// translate folds a tcell event into an Event; unknown events map to EventNone
func translate(ev tcell.Event) Event {
	switch ev := ev.(type) {
	case nil:
		return Event{Type: EventClosed}
	case *tcell.EventKey:
		out := Event{Type: EventKey}
		switch ev.Key() {
		case tcell.KeyRune:
			out.Key = KeyRune
			out.Rune = ev.Rune()
		case tcell.KeyEscape:
			out.Key = KeyEscape
		case tcell.KeyCtrlC:
			out.Key = KeyCtrlC
		case tcell.KeyEnter:
			out.Key = KeyEnter
		default:
			out.Key = KeyOther
		}
		return out
	case *tcell.EventMouse:
		x, y := ev.Position()
		return Event{
			Type:     EventMouse,
			MouseX:   x,
			MouseY:   y,
			MouseBtn: mouseButton(ev.Buttons()),
		}
	case *tcell.EventResize:
		w, h := ev.Size()
		return Event{Type: EventResize, Width: w, Height: h}
	default:
		return Event{Type: EventNone}
	}
}
