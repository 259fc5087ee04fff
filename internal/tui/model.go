package tui

import (
	"context"

	"github.com/akyairhashvil/breathe/internal/config"
	"github.com/akyairhashvil/breathe/internal/device"
	"github.com/akyairhashvil/breathe/internal/session"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Deps are the collaborators the TUI drives. Nil Cue or Prober disables that feature.
type Deps struct {
	Session *session.Controller
	Cue     device.CueEmitter
	Wake    device.KeepAwake
	Prober  device.Prober
	Theme   string
	// Preset, when positive, starts a session with that many minutes on Init.
	Preset int
}

// MainModel is the root bubbletea model. All session state lives in the
// controller; the model only renders snapshots and forwards commands.
type MainModel struct {
	ctx     context.Context
	session *session.Controller
	cue     device.CueEmitter
	wake    *WakeManager
	prober  device.Prober
	preset  int

	keys      KeyMap
	help      help.Model
	limit     textinput.Model
	editing   bool
	theme     Theme
	themeName string
	conn      ConnectivityState
	width     int // Store window dimensions
	height    int
	quitting  bool
}

func NewMainModel(ctx context.Context, deps Deps) MainModel {
	ctrl := deps.Session
	if ctrl == nil {
		ctrl = session.New()
	}
	wake := deps.Wake
	if wake == nil {
		wake = &device.NopKeepAwake{}
	}

	ti := textinput.New()
	ti.Placeholder = "Time limit (minutes)"
	ti.Width = config.TimeLimitInputWidth
	ti.SetValue(ctrl.Snapshot().TimeLimit)

	themeName := deps.Theme
	if _, ok := Themes[themeName]; !ok {
		themeName = "default"
	}

	return MainModel{
		ctx:       ctx,
		session:   ctrl,
		cue:       deps.Cue,
		wake:      NewWakeManager(wake),
		prober:    deps.Prober,
		preset:    deps.Preset,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		limit:     ti,
		theme:     ThemeByName(themeName),
		themeName: themeName,
		conn:      ConnectivityState{Online: true},
	}
}

func (m MainModel) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.prober != nil {
		cmds = append(cmds, probeCmd(m.ctx, m.prober))
	}
	if m.preset > 0 {
		cmds = append(cmds, m.effectsCmd(m.session.StartWithPreset(m.preset)))
	}
	return tea.Batch(cmds...)
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case TickMsg:
		return m.handleTick(msg)
	case ConnectivityMsg:
		return m.handleConnectivity(msg)
	case probeDueMsg:
		return m, probeCmd(m.ctx, m.prober)
	case bannerExpiredMsg:
		return m.handleBannerExpired(msg)
	case tea.KeyMsg:
		if m.editing {
			return m.handleInputMode(msg)
		}
		return m.handleNormalMode(msg)
	}
	if m.editing {
		var cmd tea.Cmd
		m.limit, cmd = m.limit.Update(msg)
		return m, cmd
	}
	return m, nil
}
