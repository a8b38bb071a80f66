package parameter

// Catenary Solver
const (
	// NewtonIterations is the fixed Newton-Raphson refinement count; no convergence early exit
	NewtonIterations = 50

	// CatenaryApproxDivisor is √24 from the closed form a₀ = h/√24 · √(h/(√(l²−v²)−h))
	CatenaryApproxDivisor = 4.898979485566356
)

// Curve Sampling
const (
	// CurveSections is the number of polyline segments; CurveSections+1 points are sampled
	CurveSections = 50

	// CurveMinScale is the scale parameter below which the curve is treated as degenerate
	CurveMinScale = 0.05
)

// Chain Constraint
const (
	// ChainDamping scales the per-tick correction: force = (dist-rest) * speed * ChainDamping
	ChainDamping = 0.01

	// DefaultChainLength is the rest length of the default scene chain
	DefaultChainLength = 300.0

	// TautReleaseRatio is the stretch below which a taut chain counts as slack again
	// The gap keeps the taut cue from retriggering while the chain settles at its rest length
	TautReleaseRatio = 0.98
)
