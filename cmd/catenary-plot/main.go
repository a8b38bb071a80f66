// catenary-plot prints the solved catenary for one anchor configuration without a terminal UI
//
//	catenary-plot -h 100 -v 20 -l 110
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/guptarohit/asciigraph"

	"github.com/lixenwraith/vi-chain/catenary"
	"github.com/lixenwraith/vi-chain/vmath"
)

func main() {
	h := flag.Float64("h", 200, "Horizontal distance between the anchors")
	v := flag.Float64("v", 0, "Vertical distance between the anchors (right anchor higher when positive)")
	l := flag.Float64("l", 300, "Chain length")
	height := flag.Int("height", 12, "Plot height in rows")
	width := flag.Int("width", 60, "Plot width in columns")
	flag.Parse()

	if err := run(os.Stdout, float32(*h), float32(*v), float32(*l), *width, *height); err != nil {
		fmt.Fprintf(os.Stderr, "catenary-plot: %v\n", err)
		os.Exit(1)
	}
}

// run solves and plots the chain hanging from (0, 0) to (h, v)
func run(w io.Writer, h, v, l float32, width, height int) error {
	if !(h >= 0) || !(l > 0) {
		return fmt.Errorf("need h >= 0 and l > 0, got h=%v l=%v", h, l)
	}

	a, x1, x2 := catenary.Solve(h, vmath.Abs(v), l)
	fmt.Fprintf(w, "a=%.9f x1=%.9f x2=%.9f\n", a, x1, x2)

	shape := catenary.Curve(vmath.V2(0, 0), vmath.V2(h, v), l)
	fmt.Fprintf(w, "shape=%s points=%d\n", shape.Kind, len(shape.Points))

	ys := make([]float64, len(shape.Points))
	for i, p := range shape.Points {
		ys[i] = float64(p.Y)
	}

	fmt.Fprintln(w, asciigraph.Plot(ys,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("chain height, h=%g v=%g l=%g", h, v, l)),
	))
	return nil
}
