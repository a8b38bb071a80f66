package renderers

import (
	"github.com/lixenwraith/vi-chain/catenary"
	"github.com/lixenwraith/vi-chain/physics"
	"github.com/lixenwraith/vi-chain/render"
	"github.com/lixenwraith/vi-chain/vmath"
)

// ChainRenderer draws every chain as a braille polyline shaded by stretch
type ChainRenderer struct {
	canvas *render.Canvas
	dots   []vmath.Vec2 // reused per chain
}

// NewChainRenderer creates a chain renderer
func NewChainRenderer() *ChainRenderer {
	return &ChainRenderer{
		canvas: render.NewCanvas(0, 0),
	}
}

// Render implements render.SystemRenderer
func (r *ChainRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.Scene == nil {
		return
	}
	view := ctx.Viewport
	r.canvas.Resize(view.Cols, view.Rows)

	for _, c := range ctx.Scene.Chains {
		a, b, ok := c.Ends(ctx.Scene.Anchors)
		if !ok {
			continue
		}
		shape := catenary.Curve(a.Pos, b.Pos, c.RestLength)

		r.dots = r.dots[:0]
		for _, p := range shape.Points {
			r.dots = append(r.dots, view.WorldToDot(p))
		}
		r.canvas.Polyline(r.dots, render.ChainColor(physics.Stretch(a, b, c.RestLength)))
	}

	r.canvas.Composite(buf, 0, 0)
}
