package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/akyairhashvil/breathe/internal/config"
	"github.com/akyairhashvil/breathe/internal/device"
	"github.com/akyairhashvil/breathe/internal/models"
	"github.com/akyairhashvil/breathe/internal/util"
	"github.com/rs/zerolog/log"
)

var ErrNotStarted = errors.New("session did not start")

// Runner drives a Controller without a TUI, printing one line per tick.
type Runner struct {
	Controller *Controller
	Cue        device.CueEmitter
	Wake       device.KeepAwake
	Out        io.Writer
	Period     time.Duration
	NewTicker  func(period time.Duration) TickSource

	ticker TickSource
	gen    uint64
	cues   sync.WaitGroup
}

func NewRunner(c *Controller, cue device.CueEmitter, wake device.KeepAwake, out io.Writer) *Runner {
	return &Runner{
		Controller: c,
		Cue:        cue,
		Wake:       wake,
		Out:        out,
		Period:     config.TickPeriod,
		NewTicker:  NewIntervalTicker,
	}
}

// Run starts a session (with a time limit when presetMinutes > 0) and blocks
// until it completes, ctx is cancelled, or output fails.
func (r *Runner) Run(ctx context.Context, presetMinutes int) (models.Snapshot, error) {
	defer r.cues.Wait()
	defer r.stopTicker()

	var eff Effects
	if presetMinutes > 0 {
		eff = r.Controller.StartWithPreset(presetMinutes)
	} else {
		eff = r.Controller.Start()
	}
	if eff.Empty() {
		return r.Controller.Snapshot(), ErrNotStarted
	}
	r.apply(ctx, eff)
	snap := r.Controller.Snapshot()
	log.Info().Str("session", snap.SessionID).Str("limit", snap.TimeLimit).Msg("session started")
	if err := r.printLine(snap, eff); err != nil {
		r.apply(ctx, r.Controller.Pause())
		return r.Controller.Snapshot(), err
	}

	for {
		var ticks <-chan time.Time
		if r.ticker != nil {
			ticks = r.ticker.C()
		}
		select {
		case <-ctx.Done():
			r.apply(context.Background(), r.Controller.Pause())
			log.Info().Str("session", snap.SessionID).Msg("session interrupted")
			return r.Controller.Snapshot(), ctx.Err()
		case <-ticks:
			eff, ok := r.Controller.Tick(r.gen)
			if !ok {
				continue
			}
			r.apply(ctx, eff)
			snap = r.Controller.Snapshot()
			if err := r.printLine(snap, eff); err != nil {
				r.apply(ctx, r.Controller.Pause())
				return r.Controller.Snapshot(), err
			}
			if eff.Completed {
				log.Info().Str("session", snap.SessionID).Int("elapsed", snap.Elapsed).Msg("session complete")
				return snap, nil
			}
		}
	}
}

func (r *Runner) apply(ctx context.Context, eff Effects) {
	if eff.StopTicker {
		r.stopTicker()
	}
	if eff.StartTicker {
		r.stopTicker()
		r.ticker = r.NewTicker(r.Period)
		r.gen = eff.Generation
	}
	if eff.Cue && r.Cue != nil {
		r.cues.Add(1)
		go func() {
			defer r.cues.Done()
			util.LogError("cue", r.Cue.Cue(ctx))
		}()
	}
	if eff.AcquireWake && r.Wake != nil {
		util.LogError("keep awake", r.Wake.Acquire(ctx))
	}
	if eff.ReleaseWake && r.Wake != nil {
		util.LogError("keep awake", r.Wake.Release())
	}
}

func (r *Runner) stopTicker() {
	if r.ticker != nil {
		r.ticker.Stop()
		r.ticker = nil
	}
}

func (r *Runner) printLine(s models.Snapshot, eff Effects) error {
	line := fmt.Sprintf("[%s] %-6s %d", s.ElapsedClock(), s.Phase, s.Countdown)
	if eff.LimitReached {
		line += "  time limit reached"
	}
	if eff.Completed {
		line = fmt.Sprintf("[%s] Complete!", s.ElapsedClock())
	}
	_, err := fmt.Fprintln(r.Out, line)
	return err
}
