// @focus: #render { canvas }
package render

import (
	"github.com/lixenwraith/vi-chain/parameter"
	"github.com/lixenwraith/vi-chain/terminal"
	"github.com/lixenwraith/vi-chain/vmath"
)

// brailleBase is U+2800, the empty braille pattern
const brailleBase = 0x2800

// brailleBits[row][col] is the pattern bit of a dot inside one cell
var brailleBits = [parameter.BrailleDotsY][parameter.BrailleDotsX]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille dot grid (2x4 dots per cell) with one foreground colour per cell
// Coordinates are dot units, x right and y down
type Canvas struct {
	cols, rows int
	masks      []uint8
	colors     []terminal.RGB
}

// NewCanvas creates a canvas covering cols x rows cells
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{}
	c.Resize(cols, rows)
	return c
}

// Resize changes the covered cell area and clears the canvas
func (c *Canvas) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	size := cols * rows
	if cap(c.masks) < size {
		c.masks = make([]uint8, size)
		c.colors = make([]terminal.RGB, size)
	} else {
		c.masks = c.masks[:size]
		c.colors = c.colors[:size]
	}
	c.cols, c.rows = cols, rows
	c.Clear()
}

// Clear removes every dot
func (c *Canvas) Clear() {
	clear(c.masks)
}

// Set lights dot (x, y); the cell takes the colour of the last dot written to it
func (c *Canvas) Set(x, y int, color terminal.RGB) {
	if x < 0 || y < 0 {
		return
	}
	cx, cy := x/parameter.BrailleDotsX, y/parameter.BrailleDotsY
	if cx >= c.cols || cy >= c.rows {
		return
	}
	idx := cy*c.cols + cx
	c.masks[idx] |= brailleBits[y%parameter.BrailleDotsY][x%parameter.BrailleDotsX]
	c.colors[idx] = color
}

// Dot reports whether dot (x, y) is lit
func (c *Canvas) Dot(x, y int) bool {
	if x < 0 || y < 0 {
		return false
	}
	cx, cy := x/parameter.BrailleDotsX, y/parameter.BrailleDotsY
	if cx >= c.cols || cy >= c.rows {
		return false
	}
	return c.masks[cy*c.cols+cx]&brailleBits[y%parameter.BrailleDotsY][x%parameter.BrailleDotsX] != 0
}

// Line lights every dot the segment from a to b passes through
// The segment is clipped to the dot grid first so off-canvas spans cost nothing
func (c *Canvas) Line(a, b vmath.Vec2, color terminal.RGB) {
	w := float32(c.cols * parameter.BrailleDotsX)
	h := float32(c.rows * parameter.BrailleDotsY)
	a, b, ok := vmath.ClipSegment(a, b, 0, 0, w, h)
	if !ok {
		return
	}
	vmath.Traverse(a.X, a.Y, b.X, b.Y, func(x, y int) bool {
		c.Set(x, y, color)
		return true
	})
}

// Polyline draws consecutive segments through points
func (c *Canvas) Polyline(points []vmath.Vec2, color terminal.RGB) {
	if len(points) == 1 {
		c.Line(points[0], points[0], color)
		return
	}
	for i := 1; i < len(points); i++ {
		c.Line(points[i-1], points[i], color)
	}
}

// Disc fills every dot whose centre lies within radius of centre; a sub-dot radius lights the
// centre dot only
func (c *Canvas) Disc(centre vmath.Vec2, radius float32, color terminal.RGB) {
	if !vmath.V2Finite(centre) {
		return
	}
	if radius < 0.5 {
		c.Line(centre, centre, color)
		return
	}
	x0, x1 := int(centre.X-radius), int(centre.X+radius)
	y0, y1 := int(centre.Y-radius), int(centre.Y+radius)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := float32(x) + 0.5 - centre.X
			dy := float32(y) + 0.5 - centre.Y
			if vmath.CircleContains(dx, dy, radius) {
				c.Set(x, y, color)
			}
		}
	}
}

// Composite writes lit cells into buf as braille runes at offset (ox, oy)
// Dots merge with a braille rune already in the target cell; the newer colour wins
func (c *Canvas) Composite(buf *RenderBuffer, ox, oy int) {
	for cy := 0; cy < c.rows; cy++ {
		for cx := 0; cx < c.cols; cx++ {
			idx := cy*c.cols + cx
			mask := c.masks[idx]
			if mask == 0 {
				continue
			}
			x, y := ox+cx, oy+cy
			if existing := buf.Get(x, y).Rune; existing > brailleBase && existing <= brailleBase+0xFF {
				mask |= uint8(existing - brailleBase)
			}
			buf.SetFgOnly(x, y, rune(brailleBase+int(mask)), c.colors[idx], terminal.AttrNone)
		}
	}
}
