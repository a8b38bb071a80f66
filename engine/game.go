package engine

import (
	"log"
	"time"

	"github.com/lixenwraith/vi-chain/input"
	"github.com/lixenwraith/vi-chain/parameter"
	"github.com/lixenwraith/vi-chain/terminal"
	"github.com/lixenwraith/vi-chain/vmath"
)

// FrameStats is the per-frame state handed to the renderer
type FrameStats struct {
	Tick   uint64
	FPS    float64
	Paused bool
	Debug  bool
	Muted  bool
}

// Frame draws the scene; implemented by render.RenderOrchestrator
type Frame interface {
	RenderFrame(scene *Scene, view vmath.Viewport, stats FrameStats)
	Resize(width, height int)
}

// Cues plays feedback sounds; implemented by audio.SoundManager
type Cues interface {
	PlayTaut()
	PlayGrab()
	SetMuted(muted bool)
	Muted() bool
}

// silentCues is used when no audio is wired
type silentCues struct{ muted bool }

func (c *silentCues) PlayTaut()           {}
func (c *silentCues) PlayGrab()           {}
func (c *silentCues) SetMuted(muted bool) { c.muted = muted }
func (c *silentCues) Muted() bool         { return c.muted }

// GameConfig wires the collaborators of a Game
type GameConfig struct {
	Term     terminal.Terminal
	Scene    *Scene
	Frame    Frame
	Cues     Cues  // nil plays nothing
	Clock    Clock // nil uses the system clock
	Scale    float32
	Interval time.Duration
}

// Game runs the update/render loop over one scene
type Game struct {
	term    terminal.Terminal
	scene   *Scene
	frame   Frame
	cues    Cues
	clock   Clock
	machine *input.Machine

	view     vmath.Viewport
	interval time.Duration

	lastUpdate time.Time
	tick       uint64
	paused     bool
	debug      bool
	fps        fpsCounter
}

// NewGame creates a game sized to the terminal
func NewGame(cfg GameConfig) *Game {
	g := &Game{
		term:     cfg.Term,
		scene:    cfg.Scene,
		frame:    cfg.Frame,
		cues:     cfg.Cues,
		clock:    cfg.Clock,
		machine:  input.NewMachine(),
		interval: cfg.Interval,
	}
	if g.cues == nil {
		g.cues = &silentCues{}
	}
	if g.clock == nil {
		g.clock = NewTimeProvider()
	}
	if g.interval <= 0 {
		g.interval = parameter.FrameUpdateInterval
	}
	scale := cfg.Scale
	if scale <= 0 {
		scale = parameter.DefaultViewScale
	}

	w, h := g.term.Size()
	g.view = sceneViewport(w, h, scale)
	g.lastUpdate = g.clock.Now()
	return g
}

// sceneViewport reserves the status bar rows below the scene area
func sceneViewport(w, h int, scale float32) vmath.Viewport {
	rows := h - parameter.StatusBarHeight
	if rows < 0 {
		rows = 0
	}
	return vmath.NewViewport(w, rows, scale)
}

// Viewport returns the current scene viewport
func (g *Game) Viewport() vmath.Viewport {
	return g.view
}

// Stats returns the state shown by the renderer
func (g *Game) Stats() FrameStats {
	return FrameStats{
		Tick:   g.tick,
		FPS:    g.fps.rate(),
		Paused: g.paused,
		Debug:  g.debug,
		Muted:  g.cues.Muted(),
	}
}

// Handle applies one terminal event; returns false when the game should stop
func (g *Game) Handle(ev terminal.Event) bool {
	intent := g.machine.Process(ev)

	switch intent.Type {
	case input.IntentQuit:
		return false

	case input.IntentResize:
		g.view = sceneViewport(intent.Width, intent.Height, g.view.Scale)
		g.frame.Resize(intent.Width, intent.Height)

	case input.IntentReset:
		g.scene.Reset()

	case input.IntentPause:
		g.paused = !g.paused
		log.Printf("[game] paused=%v", g.paused)

	case input.IntentToggleDebug:
		g.debug = !g.debug

	case input.IntentToggleMute:
		g.cues.SetMuted(!g.cues.Muted())

	case input.IntentPointerMove:
		res := g.scene.Pointer(g.view.CellToWorld(intent.X, intent.Y), intent.Held)
		if res.Grabbed {
			g.cues.PlayGrab()
		}
	}

	return true
}

// Tick advances physics by the wall time since the previous tick and renders one frame
func (g *Game) Tick() {
	now := g.clock.Now()
	elapsed := now.Sub(g.lastUpdate)
	g.lastUpdate = now

	speed := float32(elapsed.Seconds())
	if speed > parameter.MaxTickSpeed {
		speed = parameter.MaxTickSpeed
	}
	if speed < 0 {
		speed = 0
	}

	if !g.paused {
		if n := g.scene.Update(speed); n > 0 {
			g.cues.PlayTaut()
		}
	}

	g.tick++
	g.fps.add(elapsed)
	g.frame.RenderFrame(g.scene, g.view, g.Stats())
}

// Run pumps terminal events and ticks until quit or the terminal closes
func (g *Game) Run() {
	events := make(chan terminal.Event, parameter.EventQueueSize)
	go func() {
		for {
			ev := g.term.PollEvent()
			events <- ev
			if ev.Type == terminal.EventClosed {
				return
			}
		}
	}()

	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	g.Tick()
	for {
		select {
		case ev := <-events:
			if !g.Handle(ev) {
				return
			}
		case <-ticker.C:
			g.Tick()
		}
	}
}

// fpsCounter averages frame times over a fixed window
type fpsCounter struct {
	samples [parameter.FPSSampleWindow]time.Duration
	next    int
	count   int
}

func (f *fpsCounter) add(d time.Duration) {
	f.samples[f.next] = d
	f.next = (f.next + 1) % len(f.samples)
	if f.count < len(f.samples) {
		f.count++
	}
}

func (f *fpsCounter) rate() float64 {
	var total time.Duration
	for i := 0; i < f.count; i++ {
		total += f.samples[i]
	}
	if total <= 0 {
		return 0
	}
	return float64(f.count) / total.Seconds()
}
