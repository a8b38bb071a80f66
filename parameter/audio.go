package parameter

import "time"

// Audio Hardware Settings
const (
	// AudioSampleRate feeds beep.SampleRate for the speaker and all generators
	AudioSampleRate = 48000

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// AudioDefaultVolume is the master gain applied to every cue (0..1)
	AudioDefaultVolume = 0.6

	// MinSoundGap between two cues of the same kind
	MinSoundGap = 120 * time.Millisecond
)

// Taut Sound: low creak when a chain stops being slack
const (
	TautSoundDuration = 180 * time.Millisecond
	TautSoundFreq     = 70.0
	TautSoundDecay    = 14.0
)

// Grab Sound: short click when an anchor becomes selected
const (
	GrabSoundDuration = 40 * time.Millisecond
	GrabSoundFreq     = 1200.0
	GrabSoundAttack   = 2 * time.Millisecond
)
