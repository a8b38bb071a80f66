package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/lixenwraith/vi-chain/audio"
	"github.com/lixenwraith/vi-chain/config"
	"github.com/lixenwraith/vi-chain/engine"
	"github.com/lixenwraith/vi-chain/parameter"
	"github.com/lixenwraith/vi-chain/render"
	"github.com/lixenwraith/vi-chain/render/renderers"
	"github.com/lixenwraith/vi-chain/terminal"
)

var (
	sceneFlag = flag.String("scene", "", "Scene YAML file (default $"+config.EnvScenePath+" or ./"+config.SceneFileName+")")
	debugFlag = flag.Bool("debug", false, "Write a debug log to "+logDir+"/"+logFileName)
	muteFlag  = flag.Bool("mute", false, "Start with audio disabled")
	scaleFlag = flag.Float64("scale", 0, "World units per terminal column (overrides the scene file)")
	fpsFlag   = flag.Int("fps", 0, "Frames per second (overrides the scene file)")
)

func main() {
	// Panic Recovery: ensure terminal is reset even if the loop crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)

			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mVI-CHAIN CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	if !terminal.IsInteractive() {
		fmt.Fprintln(os.Stderr, "vi-chain needs an interactive terminal")
		os.Exit(1)
	}

	cfg, path, err := config.Load(*sceneFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load scene: %v\n", err)
		os.Exit(1)
	}
	if path != "" {
		log.Printf("[main] scene %s", path)
	}
	applyFlags(cfg)

	anchors, chains, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build scene: %v\n", err)
		os.Exit(1)
	}
	scene := engine.NewScene(anchors, chains)

	// Audio is optional; failures leave the manager silent
	sounds := audio.NewSoundManager()
	sounds.SetVolume(cfg.Audio.Volume)
	if cfg.AudioEnabled() && !*muteFlag {
		if err := sounds.Initialize(); err != nil {
			log.Printf("[audio] initialization failed: %v (continuing without audio)", err)
		} else {
			defer sounds.Cleanup()
		}
	} else {
		sounds.SetMuted(true)
	}

	term := terminal.New()
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer term.Fini()

	width, height := term.Size()
	orchestrator := render.NewRenderOrchestrator(term, width, height)
	orchestrator.Register(renderers.NewChainRenderer(), render.PriorityChain)
	orchestrator.Register(renderers.NewAnchorRenderer(), render.PriorityAnchor)
	orchestrator.Register(renderers.NewStatusBarRenderer(), render.PriorityUI)
	orchestrator.Register(renderers.NewDebugRenderer(), render.PriorityDebug)

	game := engine.NewGame(engine.GameConfig{
		Term:     term,
		Scene:    scene,
		Frame:    orchestrator,
		Cues:     sounds,
		Scale:    cfg.View.Scale,
		Interval: time.Second / time.Duration(cfg.View.FPS),
	})

	log.Printf("[main] %d anchors, %d chains, %dx%d cells", len(anchors), len(chains), width, height)
	game.Run()
}

// applyFlags overrides scene view settings with explicit flags, clamped like the scene file
func applyFlags(cfg *config.Config) {
	if *scaleFlag > 0 {
		s := float32(*scaleFlag)
		cfg.View.Scale = min(max(s, parameter.MinViewScale), parameter.MaxViewScale)
	}
	if *fpsFlag > 0 {
		cfg.View.FPS = min(max(*fpsFlag, parameter.MinFPS), parameter.MaxFPS)
	}
}
