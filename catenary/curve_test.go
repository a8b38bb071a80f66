package catenary

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lixenwraith/vi-chain/parameter"
	"github.com/lixenwraith/vi-chain/vmath"
)

func near(p, q vmath.Vec2, tol float32) bool {
	return vmath.V2Dist(p, q) <= tol
}

func TestCurveCatenary(t *testing.T) {
	tests := []struct {
		name   string
		a, b   vmath.Vec2
		length float32
	}{
		{"level", vmath.V2(-100, 0), vmath.V2(100, 0), 300},
		{"right higher", vmath.V2(0, 0), vmath.V2(100, 20), 110},
		{"left higher", vmath.V2(0, 20), vmath.V2(100, 0), 110},
		{"reversed order", vmath.V2(100, 20), vmath.V2(0, 0), 110},
		{"offset", vmath.V2(500, -300), vmath.V2(620, -250), 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape := Curve(tt.a, tt.b, tt.length)

			if shape.Kind != ShapeCatenary {
				t.Fatalf("Expected catenary, got %v", shape.Kind)
			}
			if len(shape.Points) != parameter.CurveSections+1 {
				t.Fatalf("Expected %d points, got %d", parameter.CurveSections+1, len(shape.Points))
			}

			first, last := shape.Points[0], shape.Points[len(shape.Points)-1]
			ends := near(first, tt.a, 0.05) && near(last, tt.b, 0.05) ||
				near(first, tt.b, 0.05) && near(last, tt.a, 0.05)
			if !ends {
				t.Errorf("Expected curve to join %v and %v, got %v .. %v", tt.a, tt.b, first, last)
			}

			// The chain sags: no sample above the higher anchor
			top := max(tt.a.Y, tt.b.Y)
			for i, p := range shape.Points {
				if p.Y > top+0.05 {
					t.Errorf("Point %d: %v above the higher anchor %v", i, p, top)
				}
			}

			// Samples advance monotonically in x
			dir := shape.Points[1].X - first.X
			for i := 1; i < len(shape.Points); i++ {
				if step := shape.Points[i].X - shape.Points[i-1].X; step*dir <= 0 {
					t.Fatalf("Point %d: expected monotonic x, step %v", i, step)
				}
			}
		})
	}
}

func TestCurveLevelSymmetric(t *testing.T) {
	shape := Curve(vmath.V2(-100, 0), vmath.V2(100, 0), 300)
	n := len(shape.Points)
	approx := cmpopts.EquateApprox(0, 1e-2)

	for i := 0; i < n/2; i++ {
		p, q := shape.Points[i], shape.Points[n-1-i]
		if diff := cmp.Diff(float64(p.Y), float64(q.Y), approx); diff != "" {
			t.Errorf("Points %d and %d: expected equal heights (-p +q):\n%s", i, n-1-i, diff)
		}
	}

	mid := shape.Points[n/2]
	if vmath.Abs(mid.X) > 1e-2 || mid.Y >= -50 {
		t.Errorf("Expected lowest sample near (0, <-50), got %v", mid)
	}
}

func TestCurveFallbackTaut(t *testing.T) {
	a, b := vmath.V2(0, 0), vmath.V2(100, 0)
	shape := Curve(a, b, 50)

	if shape.Kind != ShapeTaut {
		t.Fatalf("Expected taut fallback, got %v", shape.Kind)
	}
	if diff := cmp.Diff([]vmath.Vec2{a, b}, shape.Points); diff != "" {
		t.Errorf("points mismatch (-want +got):\n%s", diff)
	}
	if vmath.IsFinite(shape.A) {
		t.Errorf("Expected NaN scale for taut fallback, got %v", shape.A)
	}
}

func TestCurveFallbackHanging(t *testing.T) {
	// Vertically stacked anchors with slack: h = 0 has no catenary
	shape := Curve(vmath.V2(0, 0), vmath.V2(0, 50), 100)

	if shape.Kind != ShapeHanging {
		t.Fatalf("Expected hanging fallback, got %v", shape.Kind)
	}
	want := []vmath.Vec2{{X: 0, Y: 50}, {X: 0, Y: -25}}
	if diff := cmp.Diff(want, shape.Points); diff != "" {
		t.Errorf("points mismatch (-want +got):\n%s", diff)
	}

	// Coincident anchors hang from their shared position
	shape = Curve(vmath.V2(10, 10), vmath.V2(10, 10), 40)
	want = []vmath.Vec2{{X: 10, Y: 10}, {X: 10, Y: -10}}
	if shape.Kind != ShapeHanging {
		t.Fatalf("Expected hanging fallback for coincident anchors, got %v", shape.Kind)
	}
	if diff := cmp.Diff(want, shape.Points); diff != "" {
		t.Errorf("coincident points mismatch (-want +got):\n%s", diff)
	}
}

func TestCurveTotality(t *testing.T) {
	coords := []float32{-400, -100, -0.001, 0, 0.0001, 1, 37.5, 250}
	lengths := []float32{0.01, 1, 50, 150, 300, 5000}

	for _, ax := range coords {
		for _, by := range coords {
			for _, l := range lengths {
				a := vmath.V2(ax, 0)
				b := vmath.V2(ax+by*0.5, by)
				shape := Curve(a, b, l)
				if len(shape.Points) < 2 {
					t.Fatalf("Curve(%v, %v, %v): expected at least 2 points, got %d", a, b, l, len(shape.Points))
				}
				for _, p := range shape.Points {
					if !vmath.V2Finite(p) {
						t.Fatalf("Curve(%v, %v, %v): non-finite point %v", a, b, l, p)
					}
				}
			}
		}
	}
}

func TestShapeKindString(t *testing.T) {
	if ShapeCatenary.String() != "catenary" || ShapeTaut.String() != "taut" || ShapeHanging.String() != "hanging" {
		t.Error("Unexpected shape kind names")
	}
}
