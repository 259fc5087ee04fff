package tui

import (
	"github.com/akyairhashvil/breathe/internal/config"
	"github.com/akyairhashvil/breathe/internal/models"
	"github.com/akyairhashvil/breathe/internal/session"
	"github.com/akyairhashvil/breathe/internal/util"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
)

func (m MainModel) handleWindowSize(msg tea.WindowSizeMsg) (MainModel, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	m.help.Width = util.Clamp(m.width, config.MinContentWidth, config.MaxContentWidth)
	return m, nil
}

// handleTick applies a tick and keeps the tick source alive while the same
// generation is still current. Stale ticks are dropped without rescheduling.
func (m MainModel) handleTick(msg TickMsg) (MainModel, tea.Cmd) {
	eff, ok := m.session.Tick(msg.Gen)
	if !ok {
		return m, nil
	}
	cmds := []tea.Cmd{m.effectsCmd(eff)}
	if m.session.Snapshot().Playing && m.session.Generation() == msg.Gen {
		cmds = append(cmds, tickCmd(msg.Gen))
	}
	return m, tea.Batch(cmds...)
}

func (m MainModel) handleNormalMode(msg tea.KeyMsg) (MainModel, tea.Cmd) {
	status := m.session.Snapshot().Status()
	keys := m.keys.forStatus(status, false)

	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, keys.Theme):
		m.themeName = nextThemeName(m.themeName)
		m.theme = ThemeByName(m.themeName)
		log.Debug().Str("theme", m.themeName).Msg("theme changed")
		return m, nil
	case key.Matches(msg, keys.Reset):
		return m.apply(m.session.Reset())
	case key.Matches(msg, keys.Toggle):
		return m.apply(m.session.TogglePlay())
	case key.Matches(msg, keys.Sound):
		m.session.ToggleSound()
		return m, nil
	case key.Matches(msg, keys.Preset2):
		return m.apply(m.session.StartWithPreset(config.Presets[0]))
	case key.Matches(msg, keys.Preset5):
		return m.apply(m.session.StartWithPreset(config.Presets[1]))
	case key.Matches(msg, keys.Preset10):
		return m.apply(m.session.StartWithPreset(config.Presets[2]))
	case key.Matches(msg, keys.Limit):
		m.editing = true
		m.limit.SetValue(m.session.Snapshot().TimeLimit)
		m.limit.CursorEnd()
		return m, m.limit.Focus()
	}
	return m, nil
}

// handleInputMode feeds the minutes field. Only digits reach the field; the
// controller stores the sanitized value on every edit.
func (m MainModel) handleInputMode(msg tea.KeyMsg) (MainModel, tea.Cmd) {
	keys := m.keys.forStatus(models.StatusIdle, true)
	switch {
	case msg.Type == tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, keys.Escape):
		m.editing = false
		m.limit.Blur()
		return m, nil
	}

	if msg.Type == tea.KeyRunes {
		digits := session.SanitizeDigits(string(msg.Runes))
		if digits == "" {
			return m, nil
		}
		msg.Runes = []rune(digits)
	}
	var cmd tea.Cmd
	m.limit, cmd = m.limit.Update(msg)
	m.session.SetTimeLimit(m.limit.Value())
	m.limit.SetValue(m.session.Snapshot().TimeLimit)
	return m, cmd
}

func (m MainModel) apply(eff session.Effects) (MainModel, tea.Cmd) {
	if !m.session.Snapshot().Playing {
		m.limit.SetValue(m.session.Snapshot().TimeLimit)
	}
	return m, m.effectsCmd(eff)
}
