// Package catenary solves the hanging-chain shape y = a·cosh(x/a) between two points and
// samples it for drawing.
//
// All arithmetic is float32. Invalid geometry (a chain no longer than the straight span) is
// reported as a NaN scale parameter, never as an error; Curve turns it into a fallback segment.
package catenary
