package testutil

import (
	"fmt"

	"github.com/akyairhashvil/breathe/internal/session"
)

// ControllerBuilder provides fluent API for putting a controller into a known state.
type ControllerBuilder struct {
	sound     bool
	timeLimit string
	preset    int
	start     bool
	ticks     int
	pause     bool
}

func NewController() *ControllerBuilder {
	return &ControllerBuilder{}
}

func (b *ControllerBuilder) WithSound() *ControllerBuilder {
	b.sound = true
	return b
}

func (b *ControllerBuilder) WithTimeLimit(raw string) *ControllerBuilder {
	b.timeLimit = raw
	return b
}

// WithPreset starts the session through StartWithPreset.
func (b *ControllerBuilder) WithPreset(minutes int) *ControllerBuilder {
	b.preset = minutes
	b.start = true
	return b
}

func (b *ControllerBuilder) Started() *ControllerBuilder {
	b.start = true
	return b
}

// AfterTicks advances a started session by n ticks.
func (b *ControllerBuilder) AfterTicks(n int) *ControllerBuilder {
	b.start = true
	b.ticks = n
	return b
}

func (b *ControllerBuilder) Paused() *ControllerBuilder {
	b.pause = true
	return b
}

func (b *ControllerBuilder) Build() *session.Controller {
	n := 0
	c := session.New(
		session.WithSound(b.sound),
		session.WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("test-session-%d", n)
		}),
	)
	c.SetTimeLimit(b.timeLimit)
	if b.start {
		if b.preset > 0 {
			c.StartWithPreset(b.preset)
		} else {
			c.Start()
		}
	}
	for i := 0; i < b.ticks; i++ {
		c.Tick(c.Generation())
	}
	if b.pause {
		c.Pause()
	}
	return c
}
