package vmath

// Viewport maps world space (y up, origin at the centre of the scene area) to terminal cells and
// to the braille dot grid inside them
// A column spans Scale world units and a row twice that, matching the 1:2 cell aspect, so braille
// dots (2x4 per cell) are square with side Scale/2
type Viewport struct {
	Cols, Rows int
	Scale      float32
}

// NewViewport creates a viewport of cols x rows cells
func NewViewport(cols, rows int, scale float32) Viewport {
	return Viewport{Cols: cols, Rows: rows, Scale: scale}
}

// DotSize returns the world size of one braille dot
func (v Viewport) DotSize() float32 {
	return v.Scale * 0.5
}

// DotBounds returns the dot grid dimensions
func (v Viewport) DotBounds() (w, h int) {
	return v.Cols * 2, v.Rows * 4
}

// left and top are the world coordinates of the scene area's top-left corner
func (v Viewport) left() float32 {
	return -float32(v.Cols) * v.Scale * 0.5
}

func (v Viewport) top() float32 {
	return float32(v.Rows) * v.Scale
}

// WorldToDot converts a world point to fractional dot coordinates (x right, y down)
func (v Viewport) WorldToDot(p Vec2) Vec2 {
	d := v.DotSize()
	return Vec2{
		X: (p.X - v.left()) / d,
		Y: (v.top() - p.Y) / d,
	}
}

// CellToWorld returns the world position of the centre of cell (x, y)
func (v Viewport) CellToWorld(x, y int) Vec2 {
	return Vec2{
		X: v.left() + (float32(x)+0.5)*v.Scale,
		Y: v.top() - (float32(y)+0.5)*v.Scale*2,
	}
}

// WorldToCell returns the cell containing world point p; ok is false outside the viewport
func (v Viewport) WorldToCell(p Vec2) (x, y int, ok bool) {
	d := v.WorldToDot(p)
	if !V2Finite(d) || d.X < 0 || d.Y < 0 {
		return 0, 0, false
	}
	x, y = int(d.X)/2, int(d.Y)/4
	return x, y, x < v.Cols && y < v.Rows
}

// Contains reports whether world point p lies inside the viewport
func (v Viewport) Contains(p Vec2) bool {
	_, _, ok := v.WorldToCell(p)
	return ok
}
