package vmath

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestVec2Ops(t *testing.T) {
	a, b := V2(1, 2), V2(4, 6)

	tests := []struct {
		name string
		got  Vec2
		want Vec2
	}{
		{"add", V2Add(a, b), V2(5, 8)},
		{"sub", V2Sub(b, a), V2(3, 4)},
		{"scale", V2Scale(a, -2), V2(-2, -4)},
		{"mid", V2Mid(a, b), V2(2.5, 4)},
		{"toward half", V2Toward(a, b, 0.5), V2(2.5, 4)},
		{"toward zero", V2Toward(a, b, 0), a},
		{"toward full", V2Toward(a, b, 1), b},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, tt.got); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", tt.name, diff)
		}
	}

	if d := V2Dist(a, b); d != 5 {
		t.Errorf("Expected distance 5, got %v", d)
	}
	if m := V2MagSq(V2(3, 4)); m != 25 {
		t.Errorf("Expected squared magnitude 25, got %v", m)
	}
}

func TestV2Finite(t *testing.T) {
	if !V2Finite(V2(1, -1)) {
		t.Error("Expected finite vector")
	}
	if V2Finite(V2(NaN(), 0)) || V2Finite(V2(0, NaN())) {
		t.Error("Expected NaN component to be non-finite")
	}
}
