package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the default update+render interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MinFPS and MaxFPS bound the -fps flag and the view.fps scene setting
	MinFPS = 10
	MaxFPS = 240

	// MaxTickSpeed caps the physics speed factor (seconds) after a stall, e.g. a suspended terminal
	MaxTickSpeed = 0.25

	// EventQueueSize is the buffered capacity of the tcell event channel
	EventQueueSize = 100
)
