package parameter

// Viewport
const (
	// DefaultViewScale is world units per terminal column; a row spans twice that
	DefaultViewScale = 4.0

	// MinViewScale and MaxViewScale bound the -scale flag and the view.scale scene setting
	MinViewScale = 0.5
	MaxViewScale = 64.0

	// BrailleDotsX and BrailleDotsY are the sub-cell dot grid of one braille glyph
	BrailleDotsX = 2
	BrailleDotsY = 4
)

// Status Bar
const (
	// StatusBarHeight is the rows reserved at the bottom of the screen
	StatusBarHeight = 1

	// FPSSampleWindow is the number of frames averaged for the FPS readout
	FPSSampleWindow = 30
)
