package vmath

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestViewportMapping(t *testing.T) {
	// 80x24 cells at 4 world units per column: x in [-160, 160], y in [-96, 96]
	v := NewViewport(80, 24, 4)

	if v.DotSize() != 2 {
		t.Errorf("Expected dot size 2, got %v", v.DotSize())
	}
	if w, h := v.DotBounds(); w != 160 || h != 96 {
		t.Errorf("Expected dot bounds 160x96, got %dx%d", w, h)
	}

	approx := cmpopts.EquateApprox(0, 1e-4)

	tests := []struct {
		name  string
		world Vec2
		dot   Vec2
	}{
		{"top left", V2(-160, 96), V2(0, 0)},
		{"bottom right", V2(160, -96), V2(160, 96)},
		{"origin", V2(0, 0), V2(80, 48)},
		{"above origin", V2(0, 48), V2(80, 24)},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.dot, v.WorldToDot(tt.world), approx); diff != "" {
			t.Errorf("%s: WorldToDot mismatch (-want +got):\n%s", tt.name, diff)
		}
	}

	// Cell centres round-trip
	for _, c := range [][2]int{{0, 0}, {79, 23}, {40, 12}} {
		x, y, ok := v.WorldToCell(v.CellToWorld(c[0], c[1]))
		if !ok || x != c[0] || y != c[1] {
			t.Errorf("Cell %v: expected round trip, got (%d, %d, %v)", c, x, y, ok)
		}
	}
}

func TestViewportContains(t *testing.T) {
	v := NewViewport(10, 10, 1)

	// x in [-5, 5], y in [-10, 10]
	if !v.Contains(V2(0, 0)) || !v.Contains(V2(4, -9)) {
		t.Error("Expected interior points to be inside")
	}
	for _, p := range []Vec2{V2(-6, 5), V2(6, 5), V2(0, -11), V2(0, 11), V2(NaN(), 0)} {
		if v.Contains(p) {
			t.Errorf("Expected %v outside the viewport", p)
		}
	}
}
