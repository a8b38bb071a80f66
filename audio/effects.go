package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/vi-chain/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// oscillator generates raw audio waves for a fixed duration
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay multiplies a stream by exp(-rate*t)
type decay struct {
	streamer beep.Streamer
	rate     float64
	sr       beep.SampleRate
	position int
}

// NewDecay applies an exponential fade with the given rate per second
func NewDecay(s beep.Streamer, rate float64, sr beep.SampleRate) beep.Streamer {
	return &decay{streamer: s, rate: rate, sr: sr}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		t := float64(d.position) / float64(d.sr)
		env := math.Exp(-t * d.rate)
		samples[i][0] *= env
		samples[i][1] *= env
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// attack ramps a stream in linearly over the first samples
type attack struct {
	streamer beep.Streamer
	samples  int
	position int
}

// NewAttack fades the stream in over the given duration
func NewAttack(s beep.Streamer, duration time.Duration, sr beep.SampleRate) beep.Streamer {
	return &attack{streamer: s, samples: sr.N(duration)}
}

func (a *attack) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = a.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if a.position < a.samples {
			vol := float64(a.position) / float64(a.samples)
			samples[i][0] *= vol
			samples[i][1] *= vol
		}
		a.position++
	}
	return n, ok
}

func (a *attack) Err() error { return a.streamer.Err() }

// newVolume wraps s with a linear gain; math.Log2(0) is -Inf so zero is mapped to Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateTautSound generates the low creak played when a chain pulls tight:
// a decaying low sine under filtered noise
func CreateTautSound(rate beep.SampleRate) beep.Streamer {
	rumble := NewOscillator(parameter.TautSoundFreq, parameter.TautSoundDuration, WaveSine, rate)
	grit := newVolume(
		NewOscillator(0, parameter.TautSoundDuration, WaveNoise, rate),
		0.25,
	)
	return NewDecay(beep.Mix(newVolume(rumble, 0.6), grit), parameter.TautSoundDecay, rate)
}

// CreateGrabSound generates the short click played when an anchor is picked up
func CreateGrabSound(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(parameter.GrabSoundFreq, parameter.GrabSoundDuration, WaveSquare, rate)
	click := NewAttack(osc, parameter.GrabSoundAttack, rate)
	return NewDecay(newVolume(click, 0.3), 1/parameter.GrabSoundDuration.Seconds()*4, rate)
}
