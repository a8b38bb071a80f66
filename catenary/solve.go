package catenary

import (
	"github.com/lixenwraith/vi-chain/parameter"
	"github.com/lixenwraith/vi-chain/vmath"
)

// Solve finds the scale parameter a of the catenary with horizontal span h, vertical span v and
// length l, and the local-frame x coordinates of its two ends (x1 < x2, x2 - x1 = h)
//
// The initial estimate is the closed form a₀ = h/√24 · √(h/(√(l²−v²)−h)), refined by exactly
// NewtonIterations Newton-Raphson steps on f(a) = 2a·sinh(h/2a) − √(l²−v²)
// If a₀ is not finite all three results are NaN; a may still come out non-finite after refinement
func Solve(h, v, l float32) (a, x1, x2 float32) {
	// Arc length projected on the chord's horizontal once the vertical drop is removed
	s := vmath.Sqrt(l*l - v*v)

	a = h / float32(parameter.CatenaryApproxDivisor) * vmath.Sqrt(h/(s-h))
	if !vmath.IsFinite(a) {
		nan := vmath.NaN()
		return nan, nan, nan
	}

	for i := 0; i < parameter.NewtonIterations; i++ {
		u := h / (2 * a)
		sh := vmath.Sinh(u)

		f := 2*a*sh - s
		df := 2 * (sh - u*vmath.Cosh(u))

		a -= f / df
	}

	x2 = h*0.5 + a*vmath.Atanh(v/l)
	x1 = x2 - h

	return a, x1, x2
}

// Height evaluates y(x) = a·cosh(x/a)
func Height(a, x float32) float32 {
	return a * vmath.Cosh(x/a)
}
