package tui

import (
	"context"
	"sync"
	"time"

	"github.com/akyairhashvil/breathe/internal/config"
	"github.com/akyairhashvil/breathe/internal/device"
	"github.com/akyairhashvil/breathe/internal/session"
	"github.com/akyairhashvil/breathe/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
)

// TickMsg carries the generation of the tick source that produced it.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

func tickCmd(gen uint64) tea.Cmd {
	return tea.Tick(config.TickPeriod, func(t time.Time) tea.Msg { return TickMsg{Gen: gen, Time: t} })
}

// WakeManager converges the keep-awake resource on the most recently requested
// state, whatever order the acquire and release commands end up running in.
type WakeManager struct {
	mu   sync.Mutex
	want bool
	wake device.KeepAwake
}

func NewWakeManager(wake device.KeepAwake) *WakeManager {
	return &WakeManager{wake: wake}
}

func (w *WakeManager) request(hold bool) {
	w.mu.Lock()
	w.want = hold
	w.mu.Unlock()
}

func (w *WakeManager) sync(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.wake == nil {
		return nil
	}
	held := w.wake.Held()
	switch {
	case w.want && !held:
		return w.wake.Acquire(ctx)
	case !w.want && held:
		return w.wake.Release()
	}
	return nil
}

// Wanted reports the last requested state.
func (w *WakeManager) Wanted() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.want
}

func wakeCmd(ctx context.Context, w *WakeManager) tea.Cmd {
	return func() tea.Msg {
		util.LogError("keep awake", w.sync(ctx))
		return nil
	}
}

func cueCmd(ctx context.Context, cue device.CueEmitter) tea.Cmd {
	return func() tea.Msg {
		util.LogError("cue", cue.Cue(ctx))
		return nil
	}
}

// effectsCmd turns the controller's effect description into commands.
func (m MainModel) effectsCmd(eff session.Effects) tea.Cmd {
	if eff.Empty() {
		return nil
	}
	var cmds []tea.Cmd
	if eff.StartTicker {
		cmds = append(cmds, tickCmd(eff.Generation))
	}
	if eff.Cue && m.cue != nil {
		cmds = append(cmds, cueCmd(m.ctx, m.cue))
	}
	if eff.AcquireWake || eff.ReleaseWake {
		m.wake.request(eff.AcquireWake)
		cmds = append(cmds, wakeCmd(m.ctx, m.wake))
	}

	snap := m.session.Snapshot()
	if eff.StartTicker {
		log.Info().Str("session", snap.SessionID).Str("limit", snap.TimeLimit).Msg("session started")
	}
	if eff.LimitReached {
		log.Info().Str("session", snap.SessionID).Int("elapsed", snap.Elapsed).Msg("time limit reached")
	}
	if eff.Completed {
		log.Info().Str("session", snap.SessionID).Int("elapsed", snap.Elapsed).Msg("session complete")
	} else if eff.StopTicker {
		log.Info().Str("session", snap.SessionID).Int("elapsed", snap.Elapsed).Msg("session stopped")
	}
	return tea.Batch(cmds...)
}
