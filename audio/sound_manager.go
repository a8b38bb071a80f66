package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-chain/parameter"
)

const (
	sampleRate = beep.SampleRate(parameter.AudioSampleRate)
)

// cue identifies a sound for rate limiting
type cue int

const (
	cueTaut cue = iota
	cueGrab
	cueCount
)

// SoundManager plays the chain cues through one beep mixer
// Every method is safe before Initialize and after Cleanup; cues are then dropped
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool

	now      func() time.Time
	lastPlay [cueCount]time.Time
	played   [cueCount]int
}

// NewSoundManager creates a new sound manager at the default volume
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: parameter.AudioDefaultVolume,
		now:    time.Now,
	}
}

// Initialize sets up the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	log.Printf("[audio] speaker ready at %d Hz", parameter.AudioSampleRate)
	return nil
}

// Cleanup stops all sounds and detaches the mixer
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	sm.mixer.Clear()

	// beep has no speaker Close; clearing streamers leaves it silent
	sm.initialized = false
}

// SetVolume sets the master gain, clamped to [0, 1]
func (sm *SoundManager) SetVolume(v float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	switch {
	case v < 0:
		v = 0
	case v > 1:
		v = 1
	}
	sm.volume = v
}

// Volume returns the master gain
func (sm *SoundManager) Volume() float64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.volume
}

// SetMuted drops every cue while muted
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = muted
	log.Printf("[audio] muted=%v", muted)
}

// Muted reports the mute flag
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// PlayTaut plays the creak of a chain pulling tight
func (sm *SoundManager) PlayTaut() {
	sm.play(cueTaut, CreateTautSound)
}

// PlayGrab plays the click of an anchor being picked up
func (sm *SoundManager) PlayGrab() {
	sm.play(cueGrab, CreateGrabSound)
}

// play adds a new instance of the cue to the mixer unless muted, uninitialised or within
// MinSoundGap of its previous start
func (sm *SoundManager) play(c cue, build func(beep.SampleRate) beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted || sm.volume <= 0 {
		return
	}

	now := sm.now()
	if !sm.lastPlay[c].IsZero() && now.Sub(sm.lastPlay[c]) < parameter.MinSoundGap {
		return
	}
	sm.lastPlay[c] = now
	sm.played[c]++

	streamer := newVolume(build(sampleRate), sm.volume)

	// The speaker callback locks the mixer too
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}
