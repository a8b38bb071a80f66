// @focus: #render { canvas }
package vmath

// Ellipse utilities for disc rasterization on the sub-cell canvas

// EllipseDistSq returns normalized squared distance for ellipse containment
// Result <= 1 means point is inside ellipse
func EllipseDistSq(dx, dy, rx, ry float32) float32 {
	nx := dx / rx
	ny := dy / ry
	return nx*nx + ny*ny
}

// EllipseContains returns true if point (dx, dy) is inside or on ellipse boundary
// Degenerate radii contain only the centre
func EllipseContains(dx, dy, rx, ry float32) bool {
	if rx <= 0 || ry <= 0 {
		return dx == 0 && dy == 0
	}
	return EllipseDistSq(dx, dy, rx, ry) <= 1
}

// CircleContains returns true if point is inside circle of given radius
func CircleContains(dx, dy, radius float32) bool {
	return EllipseContains(dx, dy, radius, radius)
}
