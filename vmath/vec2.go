package vmath

// Vec2 is a float32 2D point or displacement in world space (y up)
type Vec2 struct {
	X, Y float32
}

func V2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func V2MagSq(v Vec2) float32 {
	return v.X*v.X + v.Y*v.Y
}

func V2Mag(v Vec2) float32 {
	return Sqrt(V2MagSq(v))
}

// V2Dist returns the Euclidean distance between a and b
func V2Dist(a, b Vec2) float32 {
	return V2Mag(V2Sub(a, b))
}

// V2Mid returns the midpoint of a and b, computed as (a+b)*0.5
func V2Mid(a, b Vec2) Vec2 {
	return V2Scale(V2Add(a, b), 0.5)
}

// V2Toward moves from by (to-from)*t; t outside [0,1] extrapolates
func V2Toward(from, to Vec2, t float32) Vec2 {
	return V2Add(from, V2Scale(V2Sub(to, from), t))
}

// V2Finite reports whether both components are finite
func V2Finite(v Vec2) bool {
	return IsFinite(v.X) && IsFinite(v.Y)
}
