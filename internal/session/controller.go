// Package session implements the box breathing state machine.
//
// A Controller is advanced once per tick by an external tick source. Commands
// and ticks return Effects instead of touching audio, keep-awake or the screen,
// so the transition logic stays testable on its own.
package session

import (
	"math"
	"strconv"

	"github.com/akyairhashvil/breathe/internal/config"
	"github.com/akyairhashvil/breathe/internal/models"
	"github.com/google/uuid"
)

// Controller owns the session state. It is not safe for concurrent use; the
// caller serializes commands and ticks.
type Controller struct {
	playing      bool
	phaseIndex   int
	countdown    int
	elapsed      int
	timeLimit    string
	limitSeconds int
	hasLimit     bool
	limitReached bool
	complete     bool
	soundEnabled bool
	sessionID    string
	generation   uint64
	newID        func() string
}

type Option func(*Controller)

// WithSound sets the initial sound preference.
func WithSound(enabled bool) Option {
	return func(c *Controller) { c.soundEnabled = enabled }
}

// WithIDGenerator replaces the session ID source.
func WithIDGenerator(fn func() string) Option {
	return func(c *Controller) { c.newID = fn }
}

func New(opts ...Option) *Controller {
	c := &Controller{
		countdown: config.PhaseTicks,
		newID:     func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start begins a fresh session. It is a no-op while playing or complete.
func (c *Controller) Start() Effects {
	if c.playing || c.complete {
		return Effects{}
	}
	c.resetSession()
	c.limitSeconds, c.hasLimit = limitSeconds(c.timeLimit)
	c.playing = true
	c.sessionID = c.newID()
	c.generation++
	return Effects{
		PhaseChanged: true,
		Phase:        c.phase(),
		Cue:          c.soundEnabled,
		StartTicker:  true,
		Generation:   c.generation,
		AcquireWake:  true,
	}
}

// StartWithPreset stores minutes as the time limit and starts. The limit is
// stored even when Start is a no-op.
func (c *Controller) StartWithPreset(minutes int) Effects {
	if minutes <= 0 {
		return Effects{}
	}
	c.timeLimit = strconv.Itoa(minutes)
	return c.Start()
}

// Pause stops the tick source and keeps the session fields as they are.
// There is no resume: the next Start resets the session.
func (c *Controller) Pause() Effects {
	if !c.playing {
		return Effects{}
	}
	c.playing = false
	c.generation++
	return Effects{StopTicker: true, ReleaseWake: true}
}

// TogglePlay is the single start/pause control.
func (c *Controller) TogglePlay() Effects {
	if c.playing {
		return c.Pause()
	}
	return c.Start()
}

// Reset returns everything except the sound preference to the initial state.
func (c *Controller) Reset() Effects {
	var eff Effects
	if c.playing {
		c.generation++
		eff = Effects{StopTicker: true, ReleaseWake: true}
	}
	c.playing = false
	c.resetSession()
	c.timeLimit = ""
	c.limitSeconds, c.hasLimit = 0, false
	c.sessionID = ""
	return eff
}

// SetTimeLimit stores the digits of raw as the limit in minutes. The limit is
// read by the next Start.
func (c *Controller) SetTimeLimit(raw string) {
	c.timeLimit = SanitizeDigits(raw)
}

func (c *Controller) ToggleSound() {
	c.soundEnabled = !c.soundEnabled
}

// Tick advances the session by one second. Ticks from any generation other
// than the active one are ignored and reported as not applied.
func (c *Controller) Tick(gen uint64) (Effects, bool) {
	if !c.playing || gen != c.generation {
		return Effects{}, false
	}
	var eff Effects

	c.elapsed++

	if c.hasLimit && !c.limitReached && c.elapsed >= c.limitSeconds {
		c.limitReached = true
		eff.LimitReached = true
	}

	if c.countdown == 1 {
		c.phaseIndex = (c.phaseIndex + 1) % config.PhaseCount
		c.countdown = config.PhaseTicks
		eff.PhaseChanged = true
		eff.Phase = c.phase()
		eff.Cue = c.soundEnabled
		if c.phase() == models.PhaseWait && c.limitReached {
			c.complete = true
			c.playing = false
			c.generation++
			eff.Completed = true
			eff.StopTicker = true
			eff.ReleaseWake = true
		}
	} else {
		c.countdown--
	}
	return eff, true
}

func (c *Controller) Snapshot() models.Snapshot {
	return models.Snapshot{
		Playing:          c.playing,
		Phase:            c.phase(),
		Countdown:        c.countdown,
		Elapsed:          c.elapsed,
		SoundEnabled:     c.soundEnabled,
		TimeLimit:        c.timeLimit,
		TimeLimitReached: c.limitReached,
		Complete:         c.complete,
		SessionID:        c.sessionID,
	}
}

// Generation identifies the tick source currently allowed to advance the session.
func (c *Controller) Generation() uint64 {
	return c.generation
}

// PhaseIndex exposes the raw index behind Phase.
func (c *Controller) PhaseIndex() int {
	return c.phaseIndex
}

func (c *Controller) phase() models.Phase {
	return models.PhaseFromIndex(c.phaseIndex)
}

func (c *Controller) resetSession() {
	c.elapsed = 0
	c.phaseIndex = 0
	c.countdown = config.PhaseTicks
	c.complete = false
	c.limitReached = false
}

// limitSeconds converts the stored minutes. Values too large to count in
// seconds behave like no limit.
func limitSeconds(minutes string) (int, bool) {
	if minutes == "" {
		return 0, false
	}
	n, err := strconv.Atoi(minutes)
	if err != nil || n > math.MaxInt/60 {
		return 0, false
	}
	return n * 60, true
}
