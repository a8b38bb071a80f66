package physics

import (
	"fmt"

	"github.com/lixenwraith/vi-chain/component"
)

// Chain connects two anchors by index with a fixed rest length
type Chain struct {
	RestLength float32
	A, B       int
}

// NewChain validates the rest length; equal endpoints are accepted and behave as a physics no-op
func NewChain(a, b int, restLength float32) (Chain, error) {
	if !(restLength > 0) {
		return Chain{}, fmt.Errorf("chain %d-%d: rest length must be positive, got %v", a, b, restLength)
	}
	if a < 0 || b < 0 {
		return Chain{}, fmt.Errorf("chain %d-%d: negative anchor index", a, b)
	}
	return Chain{RestLength: restLength, A: a, B: b}, nil
}

// IsLoop reports whether both ends reference the same anchor
func (c Chain) IsLoop() bool {
	return c.A == c.B
}

// Ends returns the two endpoint anchors for reading; ok is false when an index is out of range
// A loop returns the same anchor twice
func (c Chain) Ends(anchors []component.Anchor) (a, b *component.Anchor, ok bool) {
	if !inRange(c.A, anchors) || !inRange(c.B, anchors) {
		return nil, nil, false
	}
	return &anchors[c.A], &anchors[c.B], true
}

// pair returns two non-aliasing endpoint pointers; ok is false for a loop or an out of range index
func (c Chain) pair(anchors []component.Anchor) (a, b *component.Anchor, ok bool) {
	if c.IsLoop() {
		return nil, nil, false
	}
	return c.Ends(anchors)
}

// Update applies one relaxation step to the chain's endpoints with the given speed factor
// Loops and chains with out of range endpoints are left alone
func (c Chain) Update(anchors []component.Anchor, speed float32) {
	a, b, ok := c.pair(anchors)
	if !ok {
		return
	}
	Relax(a, b, c.RestLength, speed)
}

func inRange(i int, anchors []component.Anchor) bool {
	return i >= 0 && i < len(anchors)
}
