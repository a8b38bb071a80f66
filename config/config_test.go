package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lixenwraith/vi-chain/component"
	"github.com/lixenwraith/vi-chain/parameter"
	"github.com/lixenwraith/vi-chain/physics"
	"github.com/lixenwraith/vi-chain/render"
	"github.com/lixenwraith/vi-chain/vmath"
)

func TestDefaultScene(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected default scene to validate, got %v", err)
	}

	anchors, chains, err := cfg.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	wantPos := []vmath.Vec2{{X: -100, Y: 0}, {X: 100, Y: 0}}
	var gotPos []vmath.Vec2
	for _, a := range anchors {
		gotPos = append(gotPos, a.Pos)
		if a.State != component.AnchorStill {
			t.Errorf("Expected Still anchors, got %v", a.State)
		}
	}
	if diff := cmp.Diff(wantPos, gotPos); diff != "" {
		t.Errorf("anchor positions mismatch (-want +got):\n%s", diff)
	}
	if anchors[0].Color != render.RgbAnchorRed || anchors[1].Color != render.RgbAnchorBlue {
		t.Errorf("Expected red and blue anchors, got %v %v", anchors[0].Color, anchors[1].Color)
	}

	wantChains := []physics.Chain{{A: 0, B: 1, RestLength: 300}}
	if diff := cmp.Diff(wantChains, chains); diff != "" {
		t.Errorf("chains mismatch (-want +got):\n%s", diff)
	}

	if !cfg.AudioEnabled() {
		t.Error("Expected audio enabled by default")
	}
	if cfg.View.Scale != parameter.DefaultViewScale {
		t.Errorf("Expected default scale %v, got %v", parameter.DefaultViewScale, cfg.View.Scale)
	}
}

func TestParseScene(t *testing.T) {
	doc := `
anchors:
  - {x: -50, y: 20, color: "#00ff00"}
  - {x: 50, y: -20}
  - {x: 0, y: 80, color: "#fff"}
chains:
  - {from: 0, to: 1, length: 150}
  - {from: 1, to: 2, length: 120}
view:
  scale: 2
  fps: 30
audio:
  enabled: false
  volume: 0.3
hover_radius: 12
`
	cfg, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if cfg.View.Scale != 2 || cfg.View.FPS != 30 {
		t.Errorf("Expected view {2 30}, got %+v", cfg.View)
	}
	if cfg.AudioEnabled() {
		t.Error("Expected audio disabled")
	}
	if cfg.Audio.Volume != 0.3 {
		t.Errorf("Expected volume 0.3, got %v", cfg.Audio.Volume)
	}

	anchors, chains, err := cfg.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(anchors) != 3 || len(chains) != 2 {
		t.Fatalf("Expected 3 anchors and 2 chains, got %d and %d", len(anchors), len(chains))
	}
	if anchors[0].Color.G != 255 || anchors[0].Color.R != 0 {
		t.Errorf("Expected green first anchor, got %v", anchors[0].Color)
	}
	if anchors[1].Color != render.RgbAnchorBlue {
		t.Errorf("Expected uncoloured second anchor to take the cycled default, got %v", anchors[1].Color)
	}
	if anchors[2].Color.R != 255 || anchors[2].Color.B != 255 {
		t.Errorf("Expected short hex white, got %v", anchors[2].Color)
	}
	for i, a := range anchors {
		if a.HoverRadius != 12 {
			t.Errorf("Anchor %d: expected hover radius 12, got %v", i, a.HoverRadius)
		}
	}
}

func TestApplyDefaultsClamps(t *testing.T) {
	tests := []struct {
		name      string
		view      ViewConfig
		wantScale float32
		wantFPS   int
	}{
		{"zero", ViewConfig{}, parameter.DefaultViewScale, 62},
		{"low", ViewConfig{Scale: 0.01, FPS: 1}, parameter.MinViewScale, parameter.MinFPS},
		{"high", ViewConfig{Scale: 1000, FPS: 1000}, parameter.MaxViewScale, parameter.MaxFPS},
		{"in range", ViewConfig{Scale: 3, FPS: 50}, 3, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{View: tt.view}
			cfg.applyDefaults()
			if cfg.View.Scale != tt.wantScale || cfg.View.FPS != tt.wantFPS {
				t.Errorf("Expected {%v %v}, got %+v", tt.wantScale, tt.wantFPS, cfg.View)
			}
		})
	}
}

func TestHoverReachFollowsScale(t *testing.T) {
	cfg := Default()
	if got := cfg.HoverReach(); got != parameter.AnchorHoverRadius {
		t.Errorf("Expected default reach %v at the default scale, got %v", parameter.AnchorHoverRadius, got)
	}

	cfg.View.Scale = parameter.MaxViewScale
	anchors, _, err := cfg.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	// The cell nearest the anchor must still be able to hover it
	view := vmath.NewViewport(80, 24, cfg.View.Scale)
	x, y, ok := view.WorldToCell(anchors[0].Pos)
	if !ok {
		t.Fatalf("Expected anchor inside the viewport")
	}
	if state := anchors[0].ApplyPointer(view.CellToWorld(x, y), false); state != component.AnchorHover {
		t.Errorf("Expected hover from the anchor's own cell at scale %v, got %v (reach %v)",
			cfg.View.Scale, state, anchors[0].HoverRadius)
	}

	cfg.HoverRadius = 5
	if got := cfg.HoverReach(); got != 5 {
		t.Errorf("Expected explicit hover radius to win, got %v", got)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"no anchors", "chains: []", ErrNoAnchors},
		{"zero length", "anchors: [{x: 0, y: 0}, {x: 1, y: 0}]\nchains: [{from: 0, to: 1, length: 0}]", ErrChainLength},
		{"negative length", "anchors: [{x: 0, y: 0}, {x: 1, y: 0}]\nchains: [{from: 0, to: 1, length: -5}]", ErrChainLength},
		{"endpoint out of range", "anchors: [{x: 0, y: 0}]\nchains: [{from: 0, to: 1, length: 10}]", ErrChainEndpoints},
		{"negative endpoint", "anchors: [{x: 0, y: 0}]\nchains: [{from: -1, to: 0, length: 10}]", ErrChainEndpoints},
		{"bad color", "anchors: [{x: 0, y: 0, color: red}]", ErrAnchorColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestLoopChainAccepted(t *testing.T) {
	cfg, err := Parse([]byte("anchors: [{x: 0, y: 0}]\nchains: [{from: 0, to: 0, length: 10}]"))
	if err != nil {
		t.Fatalf("Expected a chain from an anchor to itself to load, got %v", err)
	}
	_, chains, err := cfg.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !chains[0].IsLoop() {
		t.Error("Expected loop chain")
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse([]byte("anchors: [")); err == nil {
		t.Error("Expected YAML syntax error")
	}
}

func TestFindPathPriority(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, "env.yaml")

	t.Setenv(EnvScenePath, envPath)

	if got := FindPath("flag.yaml"); got != "flag.yaml" {
		t.Errorf("Expected flag path to win, got %q", got)
	}
	if got := FindPath(""); got != envPath {
		t.Errorf("Expected env path, got %q", got)
	}

	t.Setenv(EnvScenePath, "")
	t.Chdir(dir)
	if got := FindPath(""); got != "" {
		t.Errorf("Expected no scene file, got %q", got)
	}

	if err := os.WriteFile(SceneFileName, []byte("anchors: [{x: 0, y: 0}]"), 0644); err != nil {
		t.Fatal(err)
	}
	if got := FindPath(""); got != SceneFileName {
		t.Errorf("Expected working directory scene, got %q", got)
	}
}

func TestLoadFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	doc := "anchors: [{x: -10, y: 0}, {x: 10, y: 0}]\nchains: [{from: 0, to: 1, length: 40}]\n"
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != path {
		t.Errorf("Expected path %q, got %q", path, got)
	}
	if cfg.Chains[0].Length != 40 {
		t.Errorf("Expected chain length 40, got %v", cfg.Chains[0].Length)
	}

	if _, _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing explicit scene file")
	}
}
