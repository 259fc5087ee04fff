package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/breathe/internal/config"
	"github.com/akyairhashvil/breathe/internal/models"
	"github.com/akyairhashvil/breathe/internal/util"
	"github.com/charmbracelet/lipgloss"
)

func (m MainModel) View() string {
	if m.quitting {
		return ""
	}
	snap := m.session.Snapshot()
	status := snap.Status()

	var sections []string
	if m.conn.BannerOn {
		sections = append(sections, m.theme.Banner.Render("You are offline"))
	}
	sections = append(sections, m.theme.Title.Render(config.Title))

	switch status {
	case models.StatusRunning:
		sections = append(sections, m.renderSession(snap))
	case models.StatusIdle:
		sections = append(sections, m.renderSettings(snap))
	case models.StatusComplete:
		sections = append(sections, m.theme.Complete.Render("Complete!"))
	}
	sections = append(sections, m.renderControls(status))
	if status == models.StatusIdle {
		sections = append(sections, m.renderPresets())
	}
	sections = append(sections, m.renderFooter(status))

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	if m.width == 0 || m.height == 0 {
		return m.theme.Base.Render(content)
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m MainModel) renderSession(s models.Snapshot) string {
	timer := m.theme.Timer.Render("Total Time: " + s.ElapsedClock())
	phase := m.theme.Phase.Render(s.Phase.String())
	countdown := m.theme.Countdown.Render(fmt.Sprintf("%d", s.Countdown))
	lines := []string{timer, "", phase, countdown}
	if s.TimeLimit != "" {
		limit := formatLimit(s.TimeLimit)
		if s.TimeLimitReached {
			limit += " reached, finishing this breath"
		}
		lines = append(lines, m.theme.Dim.Render(limit))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (m MainModel) renderSettings(s models.Snapshot) string {
	sound := m.theme.Dim.Render(soundLabel(s.SoundEnabled))
	if s.SoundEnabled {
		sound = m.theme.Focused.Render(soundLabel(true))
	}
	inputStyle := m.theme.Input.BorderForeground(m.theme.Border)
	if m.editing {
		inputStyle = m.theme.Input
	}
	field := inputStyle.Render(m.limit.View())
	label := m.theme.Dim.Render("Minutes (optional)")
	prompt := m.theme.Prompt.Render("Press start to begin")
	return lipgloss.JoinVertical(lipgloss.Center, sound, "", field, label, "", prompt)
}

func (m MainModel) renderControls(status models.Status) string {
	switch status {
	case models.StatusRunning:
		return m.theme.Button.Render(iconPause + " Pause")
	case models.StatusComplete:
		return m.theme.Button.Render(iconReset + " Back to Start")
	default:
		return m.theme.Button.Render(iconPlay + " Start")
	}
}

func (m MainModel) renderPresets() string {
	buttons := make([]string, 0, len(config.Presets))
	for _, minutes := range config.Presets {
		buttons = append(buttons, m.theme.Preset.Render(presetLabel(minutes)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}

func (m MainModel) renderFooter(status models.Status) string {
	width := util.Clamp(m.width, config.MinContentWidth, config.MaxContentWidth)
	keys := m.keys.forStatus(status, m.editing)
	helpView := m.help.View(keys)
	var lines []string
	for _, line := range strings.Split(helpView, "\n") {
		lines = append(lines, truncateLabel(line, width))
	}
	version := m.theme.Dim.Render("v" + versionLabel())
	return lipgloss.JoinVertical(lipgloss.Center, "", strings.Join(lines, "\n"), version)
}
