package renderers

import (
	"fmt"

	"github.com/lixenwraith/vi-chain/catenary"
	"github.com/lixenwraith/vi-chain/physics"
	"github.com/lixenwraith/vi-chain/render"
)

// Status bar labels
const (
	statusTitle  = " vi-chain "
	statusPaused = " PAUSED "
	statusMuted  = " MUTED "
	statusHelp   = "r reset  space pause  d debug  m mute  q quit"
)

// StatusBarRenderer draws the status bar below the scene area
type StatusBarRenderer struct{}

// NewStatusBarRenderer creates a status bar renderer
func NewStatusBarRenderer() *StatusBarRenderer {
	return &StatusBarRenderer{}
}

// Render implements render.SystemRenderer
func (s *StatusBarRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	width, height := buf.Bounds()
	y := ctx.Viewport.Rows
	if y >= height || width == 0 {
		return
	}

	buf.FillRow(y, render.RgbStatusBarBg)

	x := buf.Text(0, y, statusTitle, render.RgbStatusBarBg, render.RgbStatusBar)
	if ctx.Stats.Paused {
		x = buf.Text(x, y, statusPaused, render.RgbStatusBarBg, render.RgbStatusWarn)
	}
	if ctx.Stats.Muted {
		x = buf.Text(x, y, statusMuted, render.RgbStatusBarBg, render.RgbStatusWarn)
	}

	// Per-chain span over rest length and solved scale
	if ctx.Scene != nil {
		for i, c := range ctx.Scene.Chains {
			a, b, ok := c.Ends(ctx.Scene.Anchors)
			if !ok {
				continue
			}
			dist := physics.Stretch(a, b, c.RestLength) * c.RestLength
			shape := catenary.Curve(a.Pos, b.Pos, c.RestLength)
			fg := render.RgbStatusBar
			if ctx.Scene.Taut(i) {
				fg = render.RgbStatusWarn
			}
			x = buf.Text(x+1, y, fmt.Sprintf("%.0f/%.0f a=%.1f", dist, c.RestLength, shape.A), fg, render.RgbStatusBarBg)
		}
	}

	buf.Text(x+2, y, statusHelp, render.RgbStatusBar, render.RgbStatusBarBg)

	// FPS right-aligned over whatever did not fit
	fps := fmt.Sprintf(" %3.0f fps ", ctx.Stats.FPS)
	if fx := width - len(fps); fx >= len(statusTitle) {
		buf.Text(fx, y, fps, render.RgbStatusBar, render.RgbStatusBarBg)
	}
}
