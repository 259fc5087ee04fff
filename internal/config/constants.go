package config

import "time"

// Timer durations.
const (
	TickPeriod            = time.Second
	PhaseTicks            = 4
	PhaseCount            = 4
	ConnectivityInterval  = 15 * time.Second
	ProbeTimeout          = 2 * time.Second
	OfflineBannerDuration = 3 * time.Second
)

// Presets are the shortcut session lengths in minutes.
var Presets = []int{2, 5, 10}

// Cue tone.
const (
	ToneFrequencyHz = 440.0
	ToneDuration    = 100 * time.Millisecond
	ToneSampleRate  = 44100
	ToneAmplitude   = 0.3
)

// Application settings.
const (
	AppName     = "breathe"
	Title       = "Box Breathing"
	LogFileName = "breathe.log"
	EnvPrefix   = "BREATHE_"
)
