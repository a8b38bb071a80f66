package vmath

import (
	"math"
)

// --- 2D Traversal (Supercover DDA) ---

// Traverse visits every unit grid cell intersected by a line from (x1, y1) to (x2, y2)
// Coordinates are in grid units; cell (i, j) covers [i, i+1) x [j, j+1)
// Uses Supercover DDA to ensure no skipped cells, guaranteed to terminate by checking target bounds before stepping
// Non-finite endpoints visit nothing
func Traverse(x1, y1, x2, y2 float32, callback func(x, y int) bool) {
	if !IsFinite(x1) || !IsFinite(y1) || !IsFinite(x2) || !IsFinite(y2) {
		return
	}

	fx1, fy1 := float64(x1), float64(y1)
	ix, iy := int(math.Floor(fx1)), int(math.Floor(fy1))
	targetX, targetY := int(math.Floor(float64(x2))), int(math.Floor(float64(y2)))

	if ix == targetX && iy == targetY {
		callback(ix, iy)
		return
	}

	dx := float64(x2) - fx1
	dy := float64(y2) - fy1

	stepX, stepY := 1, 1
	if dx < 0 {
		stepX = -1
		dx = -dx
	}
	if dy < 0 {
		stepY = -1
		dy = -dy
	}

	// Parametric distance (t in [0,1]) to the first boundary and between boundaries
	var tMaxX, tMaxY, tDeltaX, tDeltaY float64
	if dx == 0 {
		tMaxX = math.Inf(1)
	} else {
		tDeltaX = 1 / dx
		frac := fx1 - math.Floor(fx1)
		if stepX > 0 {
			tMaxX = (1 - frac) * tDeltaX
		} else {
			tMaxX = frac * tDeltaX
		}
	}

	if dy == 0 {
		tMaxY = math.Inf(1)
	} else {
		tDeltaY = 1 / dy
		frac := fy1 - math.Floor(fy1)
		if stepY > 0 {
			tMaxY = (1 - frac) * tDeltaY
		} else {
			tMaxY = frac * tDeltaY
		}
	}

	if !callback(ix, iy) {
		return
	}

	// Loop until both indices match targets
	for ix != targetX || iy != targetY {
		if tMaxX < tMaxY {
			// Try stepping X
			if ix != targetX {
				ix += stepX
				tMaxX += tDeltaX
			} else {
				// X is done, forced to step Y
				iy += stepY
				tMaxY += tDeltaY
			}
		} else if tMaxX > tMaxY {
			// Try stepping Y
			if iy != targetY {
				iy += stepY
				tMaxY += tDeltaY
			} else {
				// Y is done, forced to step X
				ix += stepX
				tMaxX += tDeltaX
			}
		} else {
			// Diagonal step (tMaxX == tMaxY)
			if ix != targetX {
				ix += stepX
				tMaxX += tDeltaX
			}
			if iy != targetY {
				iy += stepY
				tMaxY += tDeltaY
			}
		}

		if !callback(ix, iy) {
			break
		}
	}
}

// ClipSegment clips the segment a-b to the box [minX, maxX] x [minY, maxY] (Liang-Barsky)
// ok is false when the segment misses the box or an endpoint is not finite
func ClipSegment(a, b Vec2, minX, minY, maxX, maxY float32) (Vec2, Vec2, bool) {
	if !V2Finite(a) || !V2Finite(b) {
		return a, b, false
	}

	x0, y0 := float64(a.X), float64(a.Y)
	dx, dy := float64(b.X)-x0, float64(b.Y)-y0
	t0, t1 := 0.0, 1.0

	// Each edge as p*t <= q
	edges := [4][2]float64{
		{-dx, x0 - float64(minX)},
		{dx, float64(maxX) - x0},
		{-dy, y0 - float64(minY)},
		{dy, float64(maxY) - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return a, b, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return a, b, false
			}
			t1 = math.Min(t1, r)
		}
	}

	ca, cb := a, b
	if t0 > 0 {
		ca = Vec2{X: float32(x0 + t0*dx), Y: float32(y0 + t0*dy)}
	}
	if t1 < 1 {
		cb = Vec2{X: float32(x0 + t1*dx), Y: float32(y0 + t1*dy)}
	}
	return ca, cb, true
}
