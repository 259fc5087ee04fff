package tui

import (
	"context"
	"testing"

	"github.com/akyairhashvil/breathe/internal/device"
	"github.com/akyairhashvil/breathe/internal/models"
	"github.com/akyairhashvil/breathe/internal/session"
	"github.com/akyairhashvil/breathe/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
)

func setupTestModel(t *testing.T, ctrl *session.Controller) MainModel {
	t.Helper()
	if ctrl == nil {
		ctrl = testutil.NewController().Build()
	}
	return NewMainModel(context.Background(), Deps{Session: ctrl, Wake: &device.NopKeepAwake{}})
}

func press(t *testing.T, m MainModel, keys ...string) (MainModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "space":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		case "ctrl+c":
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		var model tea.Model
		model, cmd = m.Update(msg)
		m = model.(MainModel)
	}
	return m, cmd
}

func TestNewMainModelIdle(t *testing.T) {
	m := setupTestModel(t, nil)
	if m.session.Snapshot().Status() != models.StatusIdle {
		t.Fatalf("expected idle session")
	}
	if m.Init() != nil {
		t.Fatalf("expected no init command without a prober")
	}
	if m.View() == "" {
		t.Fatalf("expected non-empty view")
	}
}

func TestSpaceStartsAndPauses(t *testing.T) {
	m := setupTestModel(t, nil)
	m, cmd := press(t, m, "space")
	if !m.session.Snapshot().Playing {
		t.Fatalf("expected space to start the session")
	}
	if cmd == nil {
		t.Fatalf("expected start to schedule a tick")
	}
	if !m.wake.Wanted() {
		t.Fatalf("expected keep-awake to be requested")
	}
	m, _ = press(t, m, "space")
	if m.session.Snapshot().Playing {
		t.Fatalf("expected second space to pause")
	}
	if m.wake.Wanted() {
		t.Fatalf("expected keep-awake release after pause")
	}
}

func TestPresetKeysStartWithLimit(t *testing.T) {
	cases := map[string]string{"1": "2", "2": "5", "3": "10"}
	for k, want := range cases {
		m := setupTestModel(t, nil)
		m, _ = press(t, m, k)
		s := m.session.Snapshot()
		if !s.Playing || s.TimeLimit != want {
			t.Fatalf("key %s: expected running with limit %s, got %+v", k, want, s)
		}
	}
}

func TestPresetKeysIgnoredWhileRunning(t *testing.T) {
	m := setupTestModel(t, testutil.NewController().AfterTicks(3).Build())
	m, _ = press(t, m, "2")
	s := m.session.Snapshot()
	if s.TimeLimit != "" || s.Elapsed != 3 {
		t.Fatalf("preset must not restart a running session: %+v", s)
	}
}

func TestSoundToggle(t *testing.T) {
	m := setupTestModel(t, nil)
	m, _ = press(t, m, "s")
	if !m.session.Snapshot().SoundEnabled {
		t.Fatalf("expected sound on")
	}
	m, _ = press(t, m, "s")
	if m.session.Snapshot().SoundEnabled {
		t.Fatalf("expected sound off")
	}
}

func TestTimeLimitFieldAcceptsDigitsOnly(t *testing.T) {
	m := setupTestModel(t, nil)
	m, _ = press(t, m, "tab")
	if !m.editing {
		t.Fatalf("expected tab to focus the time limit field")
	}
	m, _ = press(t, m, "1", "2", "a", "3", "b")
	if got := m.session.Snapshot().TimeLimit; got != "123" {
		t.Fatalf("TimeLimit = %q, want 123", got)
	}
	if m.limit.Value() != "123" {
		t.Fatalf("field shows %q", m.limit.Value())
	}
	if m.session.Snapshot().Playing {
		t.Fatalf("editing the limit must not start a session")
	}
	m, _ = press(t, m, "enter")
	if m.editing {
		t.Fatalf("expected enter to leave the field")
	}
	m, _ = press(t, m, "space")
	if !m.session.Snapshot().Playing || m.session.Snapshot().TimeLimit != "123" {
		t.Fatalf("expected start with the typed limit")
	}
}

func TestTimeLimitFieldPastedText(t *testing.T) {
	m := setupTestModel(t, nil)
	m, _ = press(t, m, "tab", "4x5")
	if got := m.session.Snapshot().TimeLimit; got != "45" {
		t.Fatalf("TimeLimit = %q, want 45", got)
	}
}

func TestQuitKeys(t *testing.T) {
	m := setupTestModel(t, nil)
	m, cmd := press(t, m, "q")
	if cmd == nil || !m.quitting {
		t.Fatalf("expected q to quit")
	}
	if m.View() != "" {
		t.Fatalf("expected empty view after quitting")
	}

	m = setupTestModel(t, nil)
	m, _ = press(t, m, "tab")
	m, cmd = press(t, m, "ctrl+c")
	if cmd == nil || !m.quitting {
		t.Fatalf("expected ctrl+c to quit from the field")
	}
}

func TestCompleteOnlyLeavesThroughReset(t *testing.T) {
	m := setupTestModel(t, testutil.NewController().WithPreset(1).AfterTicks(60).Build())
	if m.session.Snapshot().Status() != models.StatusComplete {
		t.Fatalf("setup: expected complete session")
	}
	m, _ = press(t, m, "s", "1", "tab")
	if m.editing || m.session.Snapshot().Status() != models.StatusComplete {
		t.Fatalf("complete session must ignore everything but reset")
	}
	m, _ = press(t, m, "enter")
	s := m.session.Snapshot()
	if s.Status() != models.StatusIdle || s.TimeLimit != "" || s.Elapsed != 0 {
		t.Fatalf("expected enter to go back to start, got %+v", s)
	}
	if m.limit.Value() != "" {
		t.Fatalf("expected field to be cleared after reset")
	}
}

func TestHelpToggle(t *testing.T) {
	m := setupTestModel(t, nil)
	m, _ = press(t, m, "?")
	if !m.help.ShowAll {
		t.Fatalf("expected full help")
	}
}

func TestWindowSize(t *testing.T) {
	m := setupTestModel(t, nil)
	model, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = model.(MainModel)
	if m.width != 120 || m.height != 40 {
		t.Fatalf("expected stored window size")
	}
	if m.help.Width != 60 {
		t.Fatalf("expected help width clamped to 60, got %d", m.help.Width)
	}
}
