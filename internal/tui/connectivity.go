package tui

import (
	"context"
	"time"

	"github.com/akyairhashvil/breathe/internal/config"
	"github.com/akyairhashvil/breathe/internal/device"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
)

// ConnectivityState drives the transient offline banner. It never touches the session.
type ConnectivityState struct {
	Online     bool
	BannerOn   bool
	bannerSeq  int
	probedOnce bool
}

type ConnectivityMsg struct {
	Online bool
}

type probeDueMsg struct{}

type bannerExpiredMsg struct {
	seq int
}

func probeCmd(ctx context.Context, p device.Prober) tea.Cmd {
	if p == nil {
		return nil
	}
	return func() tea.Msg {
		return ConnectivityMsg{Online: p.Online(ctx)}
	}
}

func nextProbeCmd() tea.Cmd {
	return tea.Tick(config.ConnectivityInterval, func(time.Time) tea.Msg { return probeDueMsg{} })
}

func bannerExpireCmd(seq int) tea.Cmd {
	return tea.Tick(config.OfflineBannerDuration, func(time.Time) tea.Msg { return bannerExpiredMsg{seq: seq} })
}

// handleConnectivity shows the banner on startup when offline and on every
// online -> offline transition.
func (m MainModel) handleConnectivity(msg ConnectivityMsg) (MainModel, tea.Cmd) {
	cmds := []tea.Cmd{nextProbeCmd()}
	wentOffline := !msg.Online && (m.conn.Online || !m.conn.probedOnce)
	if msg.Online != m.conn.Online {
		log.Info().Bool("online", msg.Online).Msg("connectivity changed")
	}
	m.conn.Online = msg.Online
	m.conn.probedOnce = true
	if wentOffline {
		m.conn.bannerSeq++
		m.conn.BannerOn = true
		cmds = append(cmds, bannerExpireCmd(m.conn.bannerSeq))
	}
	return m, tea.Batch(cmds...)
}

func (m MainModel) handleBannerExpired(msg bannerExpiredMsg) (MainModel, tea.Cmd) {
	if msg.seq == m.conn.bannerSeq {
		m.conn.BannerOn = false
	}
	return m, nil
}
