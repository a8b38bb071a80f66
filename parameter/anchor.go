package parameter

// Anchor Interaction
const (
	// AnchorStillRadius is the drawn radius of an idle anchor (world units)
	AnchorStillRadius = 6.0

	// AnchorHoverRadius is the drawn radius of a hovered or selected anchor, and the default
	// pointer distance within which an anchor counts as hovered
	AnchorHoverRadius = 8.0

	// HoverReachCells is the default hover reach in columns; at coarse scales it exceeds
	// AnchorHoverRadius so the nearest cell centre to an anchor can always reach it
	HoverReachCells = 1.5

	// DefaultAnchorSpan is the horizontal offset of the two default anchors from the origin
	DefaultAnchorSpan = 100.0
)
