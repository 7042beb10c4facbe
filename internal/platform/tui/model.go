package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockpilot/internal/core"
	"github.com/vovakirdan/blockpilot/internal/registry"
	"github.com/vovakirdan/blockpilot/internal/storage"
)

// GameModel runs one game: it collects key presses into an input frame,
// steps the game on every tick and saves the score when it ends.
// Standalone it quits on Back; inside a session it hands control to the menu.
type GameModel struct {
	game     registry.Game
	screen   *core.Screen
	store    *storage.Store
	renderer *ScreenRenderer
	keys     *KeyMapper
	logger   *log.Logger
	config   core.RuntimeConfig
	input    core.InputFrame
	state    core.GameState
	embedded bool

	quitting   bool
	backToMenu bool
	saved      bool // The current game's score is stored
}

// NewGameModel wraps game. A nil store disables score saving and a zero
// seed is replaced by the clock.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) GameModel {
	cfg = cfg.Normalized()
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return GameModel{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:    store,
		renderer: defaultScreenRenderer,
		keys:     NewKeyMapper(),
		logger:   log.New(os.Stderr),
		config:   cfg,
	}
}

// WithRenderer sets the renderer used by View.
func (m GameModel) WithRenderer(r *ScreenRenderer) GameModel {
	if r != nil {
		m.renderer = r
	}
	return m
}

// WithLogger sets the logger for save failures.
func (m GameModel) WithLogger(l *log.Logger) GameModel {
	if l != nil {
		m.logger = l
	}
	return m
}

func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.fitGame()
	return tickCmd(m.config.TickRate)
}

func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		return m.step()
	case tea.KeyMsg:
		return m.press(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.fitGame()
	}
	return m, nil
}

// fitGame passes the screen size on. Games that cannot resize in place
// restart unless already over.
func (m GameModel) fitGame() {
	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	} else if !m.state.GameOver {
		m.game.Reset(m.config)
	}
}

func (m GameModel) press(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.screenshot()
		return m, nil
	}

	action, quit := m.keys.MapKey(msg)
	switch {
	case quit:
		// An unfinished game still counts.
		m.state = m.game.State()
		m.saveScore()
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack && m.embedded:
		m.saveScore()
		m.backToMenu = true
	default:
		m.input.Set(action)
	}
	return m, nil
}

func (m GameModel) step() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	res := m.game.Step(m.input)
	m.input.Clear()
	if m.state.GameOver && !res.State.GameOver {
		m.saved = false // Restarted
	}
	m.state = res.State
	if m.state.GameOver {
		m.saveScore()
	}
	return m, tickCmd(m.config.TickRate)
}

// saveScore stores the current game once. Empty games are not stored.
func (m *GameModel) saveScore() {
	if m.saved || m.state.Score <= 0 {
		return
	}
	m.saved = true
	if m.store == nil {
		return
	}

	_, err := m.store.SaveScore(storage.ScoreEntry{
		GameID: m.game.ID(),
		Score:  m.state.Score,
		Lines:  m.state.Lines,
		Level:  m.state.Level,
	})
	if err != nil {
		m.logger.Warn("could not save score", "game", m.game.ID(), "error", err)
	}
}

// screenshot writes the current frame as text to ~/.blockpilot/screenshots.
func (m *GameModel) screenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".blockpilot", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	m.game.Render(m.screen)
	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
	}
}

func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return m.renderer.Render(m.screen)
}

// IsQuitting reports whether the user asked to leave the program.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the user asked to return to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the local terminal until the user quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	_, err := tea.NewProgram(NewGameModel(game, store, cfg).WithLogger(logger), tea.WithAltScreen()).Run()
	return err
}
