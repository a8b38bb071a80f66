package render

import (
	"github.com/lixenwraith/vi-chain/engine"
	"github.com/lixenwraith/vi-chain/vmath"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	// Scene is read-only during rendering
	Scene *engine.Scene

	// Viewport covers the scene area; the status bar sits below it
	Viewport vmath.Viewport

	// Frame statistics
	Stats engine.FrameStats
}
