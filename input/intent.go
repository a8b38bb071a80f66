package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // Esc, Ctrl+C, q
	IntentResize // Terminal resize event

	// Scene control
	IntentReset       // r: restore initial anchor positions
	IntentPause       // space: freeze chain physics
	IntentToggleDebug // d: solver readout overlay
	IntentToggleMute  // m: audio cues on/off

	// Pointer
	IntentPointerMove // pointer moved to a new cell
	IntentPointerHeld // button pressed or released without moving
)

// Intent is a parsed input event
type Intent struct {
	Type IntentType

	// Pointer cell and button state, valid for pointer intents
	X, Y int
	Held bool

	// New screen size, valid for IntentResize
	Width, Height int
}
