package render

import "github.com/lixenwraith/vi-chain/terminal"

// Palette
var (
	RgbBackground  = terminal.RGB{R: 26, G: 27, B: 38}    // Tokyo Night background
	RgbChainSlack  = terminal.RGB{R: 255, G: 255, B: 255} // White, matches the slack chain
	RgbChainTaut   = terminal.RGB{R: 247, G: 118, B: 142} // Red at full stretch and beyond
	RgbStatusBar   = terminal.RGB{R: 192, G: 202, B: 245} // Status text
	RgbStatusBarBg = terminal.RGB{R: 36, G: 40, B: 59}    // Status background
	RgbStatusWarn  = terminal.RGB{R: 224, G: 175, B: 104} // Paused / muted flags
	RgbDebugText   = terminal.RGB{R: 125, G: 207, B: 255} // Solver readout
)

// Default anchor colours
var (
	RgbAnchorRed  = terminal.RGB{R: 255, G: 150, B: 150}
	RgbAnchorBlue = terminal.RGB{R: 150, G: 150, B: 255}
)

// ChainColor shades a chain by stretch ratio dist/rest: white when slack, reaching the taut red at
// full extension
func ChainColor(stretch float32) terminal.RGB {
	// Start tinting once the chain is past 80% of its length
	const onset = 0.8
	t := (float64(stretch) - onset) / (1 - onset)
	return terminal.Blend(RgbChainSlack, RgbChainTaut, t)
}
