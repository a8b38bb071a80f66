package renderers

import (
	"github.com/lixenwraith/vi-chain/component"
	"github.com/lixenwraith/vi-chain/render"
	"github.com/lixenwraith/vi-chain/terminal"
)

// anchorSelectedBoost lightens a Selected anchor towards white
const anchorSelectedBoost = 0.35

// AnchorRenderer draws anchors as filled braille discs on top of the chains
type AnchorRenderer struct {
	canvas *render.Canvas
}

// NewAnchorRenderer creates an anchor renderer
func NewAnchorRenderer() *AnchorRenderer {
	return &AnchorRenderer{
		canvas: render.NewCanvas(0, 0),
	}
}

// Render implements render.SystemRenderer
func (r *AnchorRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.Scene == nil {
		return
	}
	view := ctx.Viewport
	r.canvas.Resize(view.Cols, view.Rows)

	dot := view.DotSize()
	for i := range ctx.Scene.Anchors {
		a := &ctx.Scene.Anchors[i]
		color := a.Color
		if a.State == component.AnchorSelected {
			color = terminal.Blend(color, terminal.RGBWhite, anchorSelectedBoost)
		}
		r.canvas.Disc(view.WorldToDot(a.Pos), a.Radius/dot, color)
	}

	r.canvas.Composite(buf, 0, 0)
}
