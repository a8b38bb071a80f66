package vmath

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

type cell struct{ X, Y int }

func collect(x1, y1, x2, y2 float32) []cell {
	var cells []cell
	Traverse(x1, y1, x2, y2, func(x, y int) bool {
		cells = append(cells, cell{x, y})
		return true
	})
	return cells
}

func TestTraverse(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 float32
		want           []cell
	}{
		{"single cell", 0.2, 0.2, 0.8, 0.9, []cell{{0, 0}}},
		{"horizontal", 0.5, 0.5, 3.5, 0.5, []cell{{0, 0}, {1, 0}, {2, 0}, {3, 0}}},
		{"vertical up", 0.5, 2.5, 0.5, 0.5, []cell{{0, 2}, {0, 1}, {0, 0}}},
		{"negative cells", -1.5, 0.5, 0.5, 0.5, []cell{{-2, 0}, {-1, 0}, {0, 0}}},
		{"shallow diagonal", 0.5, 0.5, 2.5, 1.5, []cell{{0, 0}, {1, 0}, {1, 1}, {2, 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(tt.x1, tt.y1, tt.x2, tt.y2)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("cells mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTraverseSupercoverConnected(t *testing.T) {
	cells := collect(0.3, 0.7, 17.9, 5.2)
	if cells[0] != (cell{0, 0}) || cells[len(cells)-1] != (cell{17, 5}) {
		t.Fatalf("Expected endpoints (0,0) and (17,5), got %v and %v", cells[0], cells[len(cells)-1])
	}
	for i := 1; i < len(cells); i++ {
		dx := cells[i].X - cells[i-1].X
		dy := cells[i].Y - cells[i-1].Y
		if dx < 0 || dy < 0 || dx > 1 || dy > 1 {
			t.Fatalf("Step %d: expected adjacent forward cells, got %v -> %v", i, cells[i-1], cells[i])
		}
	}
}

func TestTraverseEarlyExitAndNonFinite(t *testing.T) {
	visits := 0
	Traverse(0, 0, 10, 0, func(x, y int) bool {
		visits++
		return visits < 3
	})
	if visits != 3 {
		t.Errorf("Expected traversal to stop after 3 visits, got %d", visits)
	}

	if cells := collect(NaN(), 0, 1, 1); len(cells) != 0 {
		t.Errorf("Expected no cells for NaN input, got %v", cells)
	}
}

func TestClipSegment(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Vec2
		wantA  Vec2
		wantB  Vec2
		wantOk bool
	}{
		{"inside", V2(1, 1), V2(3, 2), V2(1, 1), V2(3, 2), true},
		{"crosses both sides", V2(-10, 2), V2(20, 2), V2(0, 2), V2(8, 2), true},
		{"enters from top", V2(4, -4), V2(4, 2), V2(4, 0), V2(4, 2), true},
		{"diagonal", V2(-2, -2), V2(10, 10), V2(0, 0), V2(4, 4), true},
		{"outside", V2(-5, 5), V2(-1, 5), Vec2{}, Vec2{}, false},
		{"parallel above", V2(0, -1), V2(8, -1), Vec2{}, Vec2{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b, ok := ClipSegment(tt.a, tt.b, 0, 0, 8, 4)
			if ok != tt.wantOk {
				t.Fatalf("Expected ok=%v, got %v", tt.wantOk, ok)
			}
			if !ok {
				return
			}
			if diff := cmp.Diff([]Vec2{tt.wantA, tt.wantB}, []Vec2{a, b}, cmpopts.EquateApprox(0, 1e-4)); diff != "" {
				t.Errorf("Clipped segment mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if _, _, ok := ClipSegment(V2(NaN(), 0), V2(1, 1), 0, 0, 8, 4); ok {
		t.Error("Expected non-finite endpoint to be rejected")
	}
}
