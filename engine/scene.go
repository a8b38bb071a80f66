// @focus: #core { scene }
package engine

import (
	"log"

	"github.com/lixenwraith/vi-chain/component"
	"github.com/lixenwraith/vi-chain/input"
	"github.com/lixenwraith/vi-chain/parameter"
	"github.com/lixenwraith/vi-chain/physics"
	"github.com/lixenwraith/vi-chain/vmath"
)

// Scene owns the anchors and the chains between them
// It is driven from a single goroutine: pointer events, then Update, then rendering
type Scene struct {
	Anchors []component.Anchor
	Chains  []physics.Chain

	initial []component.Anchor
	taut    []bool
}

// PointerResult describes the effect of one routed pointer event
type PointerResult struct {
	// Index of the anchor that received the event, -1 with no anchors
	Index int
	State component.AnchorState

	// Grabbed is true when the event turned the anchor Selected
	Grabbed bool
}

// NewScene creates a scene; anchors are copied so Reset can restore them
func NewScene(anchors []component.Anchor, chains []physics.Chain) *Scene {
	s := &Scene{
		Anchors: append([]component.Anchor(nil), anchors...),
		Chains:  append([]physics.Chain(nil), chains...),
		initial: append([]component.Anchor(nil), anchors...),
		taut:    make([]bool, len(chains)),
	}
	return s
}

// Pointer routes a pointer event at world position pos to one anchor
func (s *Scene) Pointer(pos vmath.Vec2, held bool) PointerResult {
	idx, prev := input.Dispatch(s.Anchors, pos, held)
	if idx < 0 {
		return PointerResult{Index: -1}
	}
	state := s.Anchors[idx].State
	grabbed := state == component.AnchorSelected && prev != component.AnchorSelected
	if grabbed {
		log.Printf("[scene] anchor %d grabbed at (%.1f, %.1f)", idx, pos.X, pos.Y)
	}
	return PointerResult{Index: idx, State: state, Grabbed: grabbed}
}

// Update runs one physics step on every chain with the given speed factor
// Returns the number of chains that went from slack to taut during this step
func (s *Scene) Update(speed float32) int {
	tightened := 0
	for i, c := range s.Chains {
		if s.trackTaut(i, c) {
			tightened++
		}
		c.Update(s.Anchors, speed)
	}
	return tightened
}

// trackTaut updates the taut latch of chain i from the pre-step stretch
// Reports a slack to taut transition; release needs the stretch to drop below TautReleaseRatio
func (s *Scene) trackTaut(i int, c physics.Chain) bool {
	if c.IsLoop() {
		return false
	}
	a, b, ok := c.Ends(s.Anchors)
	if !ok {
		return false
	}
	stretch := physics.Stretch(a, b, c.RestLength)
	switch {
	case !s.taut[i] && stretch >= 1:
		s.taut[i] = true
		return true
	case s.taut[i] && stretch < parameter.TautReleaseRatio:
		s.taut[i] = false
	}
	return false
}

// Taut reports the latched taut state of chain i
func (s *Scene) Taut(i int) bool {
	return i >= 0 && i < len(s.taut) && s.taut[i]
}

// Reset restores every anchor to its initial position and state
func (s *Scene) Reset() {
	copy(s.Anchors, s.initial)
	clear(s.taut)
	log.Printf("[scene] reset %d anchors", len(s.Anchors))
}
