package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockpilot/internal/core"
	"github.com/vovakirdan/blockpilot/internal/registry"
	"github.com/vovakirdan/blockpilot/internal/storage"
)

type sessionView int

const (
	viewMenu sessionView = iota
	viewGame
	viewScores
)

// SessionModel manages the full flow: menu -> game or scores -> menu.
// It backs both the local menu command and every SSH session.
type SessionModel struct {
	store    *storage.Store
	opts     registry.Options
	config   core.RuntimeConfig
	renderer *ScreenRenderer
	logger   *log.Logger
	view     sessionView
	menu     MenuModel
	game     *GameModel
	scores   *ScoreboardModel
	status   string // Last game creation error, shown under the menu
	quitting bool
}

// NewSessionModel creates a session. opts are handed to every game it starts.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, opts registry.Options) SessionModel {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return SessionModel{
		store:    store,
		opts:     opts,
		config:   cfg,
		renderer: defaultScreenRenderer,
		logger:   logger,
		menu:     NewMenuModel(cfg),
	}
}

// WithRenderer sets the renderer used for game screens.
func (m SessionModel) WithRenderer(r *ScreenRenderer) SessionModel {
	if r != nil {
		m.renderer = r
	}
	return m
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}
	m.menu.selected = nil

	switch selected.Kind {
	case MenuScores:
		sb := NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		sb.embedded = true
		m.scores = &sb
		m.view = viewScores
		return m, sb.Init()

	case MenuGame:
		game, err := registry.Create(selected.GameID, m.opts)
		if err != nil {
			m.logger.Error("could not start game", "game", selected.GameID, "error", err)
			m.status = err.Error()
			return m, nil
		}
		m.status = ""

		gm := NewGameModel(game, m.store, m.config).WithRenderer(m.renderer).WithLogger(m.logger)
		gm.embedded = true
		m.game = &gm
		m.view = viewGame
		return m, gm.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		m.game = nil
		m.view = viewMenu
		m.menu = NewMenuModel(m.config)
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is open.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scores = &sb
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.scores.IsGoingBack() {
		m.scores = nil
		m.view = viewMenu
		m.menu = NewMenuModel(m.config)
		return m, m.menu.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		return m.game.View()
	case viewScores:
		return m.scores.View()
	}

	view := m.menu.View()
	if m.status != "" {
		view += "\n" + centerText(menuHintStyle.Render(m.status), m.config.ScreenW) + "\n"
	}
	return view
}

// RunSession runs the menu-driven session in the local terminal.
func RunSession(store *storage.Store, cfg core.RuntimeConfig, opts registry.Options) error {
	p := tea.NewProgram(NewSessionModel(store, cfg, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
