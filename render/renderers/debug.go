package renderers

import (
	"fmt"

	"github.com/lixenwraith/vi-chain/catenary"
	"github.com/lixenwraith/vi-chain/physics"
	"github.com/lixenwraith/vi-chain/render"
)

// DebugRenderer overlays per-anchor state and per-chain solver output while FrameStats.Debug is set
type DebugRenderer struct{}

// NewDebugRenderer creates a debug overlay
func NewDebugRenderer() *DebugRenderer {
	return &DebugRenderer{}
}

// Render implements render.SystemRenderer
func (d *DebugRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if !ctx.Stats.Debug || ctx.Scene == nil {
		return
	}

	y := 0
	line := func(s string) {
		if y < ctx.Viewport.Rows {
			buf.Text(0, y, s, render.RgbDebugText, render.RgbBackground)
		}
		y++
	}

	line(fmt.Sprintf("tick %d  scale %.2f", ctx.Stats.Tick, ctx.Viewport.Scale))
	for i, a := range ctx.Scene.Anchors {
		line(fmt.Sprintf("anchor %d %-8s (%7.1f, %7.1f)", i, a.State, a.Pos.X, a.Pos.Y))
	}
	for i, c := range ctx.Scene.Chains {
		a, b, ok := c.Ends(ctx.Scene.Anchors)
		if !ok {
			line(fmt.Sprintf("chain %d invalid %d-%d", i, c.A, c.B))
			continue
		}
		shape := catenary.Curve(a.Pos, b.Pos, c.RestLength)
		line(fmt.Sprintf("chain %d %-8s a=%9.3f stretch=%.3f taut=%v",
			i, shape.Kind, shape.A, physics.Stretch(a, b, c.RestLength), ctx.Scene.Taut(i)))
	}
}
