package input

import (
	"github.com/lixenwraith/vi-chain/component"
	"github.com/lixenwraith/vi-chain/vmath"
)

// Route picks the single anchor that receives a pointer event at pos
// The first Selected anchor in slice order wins; several Selected anchors are tolerated and the
// earliest keeps the pointer. Otherwise the nearest anchor wins, ties to the earliest
// Returns -1 for an empty slice
func Route(anchors []component.Anchor, pos vmath.Vec2) int {
	for i := range anchors {
		if anchors[i].IsSelected() {
			return i
		}
	}

	best := -1
	var bestDist float32
	for i := range anchors {
		d := anchors[i].Distance(pos)
		if best < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// Dispatch routes a pointer event and applies it to the chosen anchor
// Returns the routed index (-1 when there are no anchors) and the anchor's state before the event
func Dispatch(anchors []component.Anchor, pos vmath.Vec2, held bool) (int, component.AnchorState) {
	i := Route(anchors, pos)
	if i < 0 {
		return -1, component.AnchorStill
	}
	prev := anchors[i].State
	anchors[i].ApplyPointer(pos, held)
	return i, prev
}
