package physics

import (
	"github.com/lixenwraith/vi-chain/component"
	"github.com/lixenwraith/vi-chain/parameter"
	"github.com/lixenwraith/vi-chain/vmath"
)

// Relax pulls a and b together when their separation exceeds rest
// force = (dist-rest) * speed * ChainDamping is the fraction of the way each free anchor moves
// toward the target: the selected anchor's position when exactly one is selected, the midpoint
// when neither is. The fraction is capped where the pair would land exactly at rest
// Selected anchors are never written; both moves read pre-update positions
func Relax(a, b *component.Anchor, rest, speed float32) {
	dist := vmath.V2Dist(a.Pos, b.Pos)
	if dist < rest {
		return
	}

	force := (dist - rest) * speed * parameter.ChainDamping

	// Moving each free end by a fraction k of its way to the target shrinks dist by the same k,
	// in both the midpoint and the one-selected case
	excess := 1 - rest/dist

	var target vmath.Vec2
	switch {
	case a.IsSelected() && b.IsSelected():
		return
	case a.IsSelected():
		target = a.Pos
	case b.IsSelected():
		target = b.Pos
	default:
		target = vmath.V2Mid(a.Pos, b.Pos)
	}

	if force > excess {
		force = excess
	}

	posA, posB := a.Pos, b.Pos
	if !a.IsSelected() {
		a.Pos = vmath.V2Toward(posA, target, force)
	}
	if !b.IsSelected() {
		b.Pos = vmath.V2Toward(posB, target, force)
	}
}

// Taut reports whether a chain of the given rest length between a and b is at or past full stretch
func Taut(a, b *component.Anchor, rest float32) bool {
	return vmath.V2Dist(a.Pos, b.Pos) >= rest
}

// Stretch returns dist/rest, 1 at full extension
func Stretch(a, b *component.Anchor, rest float32) float32 {
	if rest <= 0 {
		return 0
	}
	return vmath.V2Dist(a.Pos, b.Pos) / rest
}
