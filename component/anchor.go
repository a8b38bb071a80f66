package component

import (
	"github.com/lixenwraith/vi-chain/parameter"
	"github.com/lixenwraith/vi-chain/terminal"
	"github.com/lixenwraith/vi-chain/vmath"
)

// AnchorState is the pointer interaction state of an anchor
type AnchorState uint8

const (
	AnchorStill AnchorState = iota
	AnchorHover
	AnchorSelected
)

// String returns human-readable state name
func (s AnchorState) String() string {
	switch s {
	case AnchorHover:
		return "Hover"
	case AnchorSelected:
		return "Selected"
	default:
		return "Still"
	}
}

// Anchor is a draggable chain endpoint
// Pos is owned by the pointer while Selected and by chain physics otherwise
type Anchor struct {
	Pos   vmath.Vec2
	State AnchorState

	// Radius is derived from State by ApplyPointer
	Radius float32

	// HoverRadius is the pointer distance that counts as hovering; 0 uses AnchorHoverRadius
	HoverRadius float32

	// Visual
	Color terminal.RGB
}

// NewAnchor creates a Still anchor at pos
func NewAnchor(pos vmath.Vec2, color terminal.RGB) Anchor {
	return Anchor{
		Pos:    pos,
		State:  AnchorStill,
		Radius: parameter.AnchorStillRadius,
		Color:  color,
	}
}

// IsSelected reports whether the anchor is under direct pointer control
func (a *Anchor) IsSelected() bool {
	return a.State == AnchorSelected
}

// Distance returns the distance from the anchor to pos
func (a *Anchor) Distance(pos vmath.Vec2) float32 {
	return vmath.V2Dist(a.Pos, pos)
}

// ApplyPointer advances the interaction state for one pointer-moved event and returns the new state
// Hover or Selected with the button held stays Selected; otherwise the anchor hovers when the
// pointer is within reach and the button is up, and is Still in every other case
// A Selected anchor follows the pointer
func (a *Anchor) ApplyPointer(pos vmath.Vec2, held bool) AnchorState {
	reach := a.HoverRadius
	if reach <= 0 {
		reach = parameter.AnchorHoverRadius
	}
	hovered := a.Distance(pos) <= reach

	switch {
	case (a.State == AnchorSelected || a.State == AnchorHover) && held:
		a.State = AnchorSelected
	case hovered && !held:
		a.State = AnchorHover
	default:
		a.State = AnchorStill
	}

	if a.State == AnchorStill {
		a.Radius = parameter.AnchorStillRadius
	} else {
		a.Radius = parameter.AnchorHoverRadius
	}

	if a.State == AnchorSelected {
		a.Pos = pos
	}

	return a.State
}

// Release drops pointer control without moving the anchor, used when the pointer leaves the scene
func (a *Anchor) Release() {
	a.State = AnchorStill
	a.Radius = parameter.AnchorStillRadius
}
