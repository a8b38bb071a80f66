// Package config loads the scene description: anchors, the chains between them, view and audio
// settings.
//
// Scene file lookup (priority order):
//  1. -scene flag
//  2. $VI_CHAIN_SCENE
//  3. ./vi-chain.yaml
//
// Without a file the default two-anchor scene is used.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/vi-chain/component"
	"github.com/lixenwraith/vi-chain/parameter"
	"github.com/lixenwraith/vi-chain/physics"
	"github.com/lixenwraith/vi-chain/render"
	"github.com/lixenwraith/vi-chain/terminal"
	"github.com/lixenwraith/vi-chain/vmath"
)

var (
	ErrNoAnchors      = errors.New("scene has no anchors")
	ErrChainLength    = errors.New("chain length must be positive")
	ErrChainEndpoints = errors.New("chain endpoint out of range")
	ErrAnchorColor    = errors.New("invalid anchor color")
)

// Config is the scene file
type Config struct {
	Anchors     []AnchorConfig `yaml:"anchors"`
	Chains      []ChainConfig  `yaml:"chains"`
	View        ViewConfig     `yaml:"view"`
	Audio       AudioConfig    `yaml:"audio"`
	HoverRadius float32        `yaml:"hover_radius,omitempty"`
}

// AnchorConfig places one anchor in world units, y up
type AnchorConfig struct {
	X     float32 `yaml:"x"`
	Y     float32 `yaml:"y"`
	Color string  `yaml:"color,omitempty"`
}

// ChainConfig joins two anchors by index
type ChainConfig struct {
	From   int     `yaml:"from"`
	To     int     `yaml:"to"`
	Length float32 `yaml:"length"`
}

// ViewConfig holds the viewport scale and frame rate
type ViewConfig struct {
	Scale float32 `yaml:"scale,omitempty"`
	FPS   int     `yaml:"fps,omitempty"`
}

// AudioConfig toggles the cues; Enabled defaults to true when omitted
type AudioConfig struct {
	Enabled *bool   `yaml:"enabled,omitempty"`
	Volume  float64 `yaml:"volume,omitempty"`
}

// AudioEnabled reports the effective audio toggle
func (c *Config) AudioEnabled() bool {
	return c.Audio.Enabled == nil || *c.Audio.Enabled
}

// Default returns the built-in scene: a red and a blue anchor joined by one slack chain
func Default() *Config {
	cfg := &Config{
		Anchors: []AnchorConfig{
			{X: -parameter.DefaultAnchorSpan, Y: 0, Color: "#ff9696"},
			{X: parameter.DefaultAnchorSpan, Y: 0, Color: "#9696ff"},
		},
		Chains: []ChainConfig{
			{From: 0, To: 1, Length: parameter.DefaultChainLength},
		},
	}
	cfg.applyDefaults()
	return cfg
}

// Load finds and loads the scene file, or returns the default scene if none is found
// flagPath takes precedence over the environment
func Load(flagPath string) (*Config, string, error) {
	path := FindPath(flagPath)
	if path == "" {
		return Default(), "", nil
	}
	return LoadFromPath(path)
}

// LoadFromPath loads and validates the scene file at path
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read scene: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// Parse decodes and validates a scene document
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults fills in missing values and clamps view settings to their bounds
func (c *Config) applyDefaults() {
	switch {
	case c.View.Scale == 0:
		c.View.Scale = parameter.DefaultViewScale
	case c.View.Scale < parameter.MinViewScale:
		c.View.Scale = parameter.MinViewScale
	case c.View.Scale > parameter.MaxViewScale:
		c.View.Scale = parameter.MaxViewScale
	}

	switch {
	case c.View.FPS == 0:
		c.View.FPS = int(1000 / parameter.FrameUpdateInterval.Milliseconds())
	case c.View.FPS < parameter.MinFPS:
		c.View.FPS = parameter.MinFPS
	case c.View.FPS > parameter.MaxFPS:
		c.View.FPS = parameter.MaxFPS
	}

	if c.Audio.Volume <= 0 || c.Audio.Volume > 1 {
		c.Audio.Volume = parameter.AudioDefaultVolume
	}
}

// HoverReach returns the configured hover radius, or a default that grows with the view scale
func (c *Config) HoverReach() float32 {
	if c.HoverRadius > 0 {
		return c.HoverRadius
	}
	return max(parameter.AnchorHoverRadius, c.View.Scale*parameter.HoverReachCells)
}

// Validate checks anchors, chain endpoints and lengths
func (c *Config) Validate() error {
	if len(c.Anchors) == 0 {
		return ErrNoAnchors
	}
	for i, a := range c.Anchors {
		if !vmath.V2Finite(vmath.V2(a.X, a.Y)) {
			return fmt.Errorf("anchor %d: position (%v, %v) is not finite", i, a.X, a.Y)
		}
		if a.Color == "" {
			continue
		}
		if _, err := terminal.ParseHex(a.Color); err != nil {
			return fmt.Errorf("anchor %d: %w %q", i, ErrAnchorColor, a.Color)
		}
	}
	for i, ch := range c.Chains {
		if ch.From < 0 || ch.From >= len(c.Anchors) || ch.To < 0 || ch.To >= len(c.Anchors) {
			return fmt.Errorf("chain %d (%d-%d): %w", i, ch.From, ch.To, ErrChainEndpoints)
		}
		if !(ch.Length > 0) || !vmath.IsFinite(ch.Length) {
			return fmt.Errorf("chain %d: %w, got %v", i, ErrChainLength, ch.Length)
		}
	}
	return nil
}

// defaultAnchorColors cycles for anchors without a colour
var defaultAnchorColors = []terminal.RGB{render.RgbAnchorRed, render.RgbAnchorBlue}

// Build creates the scene anchors and chains
// The config must have passed Validate
func (c *Config) Build() ([]component.Anchor, []physics.Chain, error) {
	anchors := make([]component.Anchor, 0, len(c.Anchors))
	for i, a := range c.Anchors {
		color := defaultAnchorColors[i%len(defaultAnchorColors)]
		if a.Color != "" {
			parsed, err := terminal.ParseHex(a.Color)
			if err != nil {
				return nil, nil, fmt.Errorf("anchor %d: %w %q", i, ErrAnchorColor, a.Color)
			}
			color = parsed
		}
		anchor := component.NewAnchor(vmath.V2(a.X, a.Y), color)
		anchor.HoverRadius = c.HoverReach()
		anchors = append(anchors, anchor)
	}

	chains := make([]physics.Chain, 0, len(c.Chains))
	for i, ch := range c.Chains {
		chain, err := physics.NewChain(ch.From, ch.To, ch.Length)
		if err != nil {
			return nil, nil, fmt.Errorf("chain %d: %w", i, err)
		}
		chains = append(chains, chain)
	}

	return anchors, chains, nil
}
