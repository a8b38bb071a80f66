package catenary

import (
	"github.com/lixenwraith/vi-chain/parameter"
	"github.com/lixenwraith/vi-chain/vmath"
)

// ShapeKind tells how a chain between two anchors is drawn
type ShapeKind uint8

const (
	// ShapeCatenary is a sampled hanging curve of CurveSections+1 points
	ShapeCatenary ShapeKind = iota
	// ShapeTaut is a straight segment between over-stretched anchors
	ShapeTaut
	// ShapeHanging is a vertical segment from the higher anchor, for near-vertical slack chains
	ShapeHanging
)

// String returns human-readable kind name
func (k ShapeKind) String() string {
	switch k {
	case ShapeTaut:
		return "taut"
	case ShapeHanging:
		return "hanging"
	default:
		return "catenary"
	}
}

// Shape is a drawable chain: an ordered polyline in world coordinates (y up)
type Shape struct {
	Kind   ShapeKind
	Points []vmath.Vec2

	// A is the solved scale parameter, NaN or below CurveMinScale for fallback shapes
	A float32
}

// Curve computes the drawable shape of a chain of the given length hanging between a and b
// The result never holds non-finite coordinates when a, b and length are finite
func Curve(a, b vmath.Vec2, length float32) Shape {
	p1, p2 := b, a
	if a.X < b.X {
		p1, p2 = a, b
	}

	sign := vmath.Signum(p2.Y - p1.Y)

	h := vmath.Abs(p1.X - p2.X)
	v := vmath.Abs(p1.Y - p2.Y)

	scale, x1, x2 := Solve(h, v, length)

	if !vmath.IsFinite(scale) || scale < parameter.CurveMinScale {
		return fallback(p1, p2, length, scale)
	}

	y1 := Height(scale, x1)
	y2 := Height(scale, x2)

	xShift := x2
	if sign > 0 {
		xShift = -x1
	}

	left := vmath.Min(p1.X, p2.X)
	bottom := vmath.Min(p1.Y, p2.Y)
	lowest := vmath.Min(y1, y2)

	points := make([]vmath.Vec2, 0, parameter.CurveSections+1)
	for i := 0; i <= parameter.CurveSections; i++ {
		t := float32(i) / parameter.CurveSections
		x := t*(x2-x1) + x1
		y := Height(scale, x)

		p := vmath.Vec2{
			X: sign*x + xShift + left,
			Y: y - lowest + bottom,
		}
		if !vmath.V2Finite(p) {
			return fallback(p1, p2, length, scale)
		}
		points = append(points, p)
	}

	return Shape{Kind: ShapeCatenary, Points: points, A: scale}
}

// fallback draws a straight segment for an over-stretched chain, otherwise a vertical drop of
// (dist+length)/2 from the higher end approximating a slack chain hanging straight down
func fallback(p1, p2 vmath.Vec2, length, scale float32) Shape {
	dist := vmath.V2Dist(p1, p2)

	if dist > length {
		return Shape{Kind: ShapeTaut, Points: []vmath.Vec2{p1, p2}, A: scale}
	}

	top := p2
	if p1.Y > p2.Y {
		top = p1
	}
	bottom := vmath.Vec2{X: top.X, Y: top.Y - (dist+length)*0.5}

	return Shape{Kind: ShapeHanging, Points: []vmath.Vec2{top, bottom}, A: scale}
}
