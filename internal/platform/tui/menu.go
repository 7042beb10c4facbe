package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockpilot/internal/core"
	"github.com/vovakirdan/blockpilot/internal/registry"
)

// MenuKind tells the session what a menu entry opens.
type MenuKind int

const (
	MenuGame MenuKind = iota
	MenuScores
	MenuQuit
)

// MenuItem is one line of the title menu.
type MenuItem struct {
	Kind   MenuKind
	GameID string // Set for MenuGame
	Title  string
	Hint   string // Shown next to the highlighted item
}

const menuFooter = "↑/↓ move · enter select · tab scores · q quit"

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")).MarginBottom(1)
	menuItemStyle   = lipgloss.NewStyle().PaddingLeft(2)
	menuActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// defaultMenuItems lists every registered game followed by the fixed entries.
func defaultMenuItems() []MenuItem {
	var items []MenuItem
	for _, g := range registry.List() {
		hint := "play yourself, A hands over"
		if strings.HasSuffix(g.ID, "_autoplay") {
			hint = "watch the pilot play"
		}
		items = append(items, MenuItem{Kind: MenuGame, GameID: g.ID, Title: g.Title, Hint: hint})
	}
	return append(items,
		MenuItem{Kind: MenuScores, Title: "High Scores", Hint: "human, pilot and bench boards"},
		MenuItem{Kind: MenuQuit, Title: "Quit"},
	)
}

// MenuModel is the title menu. It never starts anything itself: the owner
// reads Selected after each update.
type MenuModel struct {
	items         []MenuItem
	cursor        int
	width, height int
	keys          *KeyMapper
	selected      *MenuItem
	quitting      bool
}

// NewMenuModel creates a menu sized to cfg.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		items:  defaultMenuItems(),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		keys:   NewKeyMapper(),
	}
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKeyToMenuAction(msg) {
	case MenuActionUp:
		m.cursor = max(m.cursor-1, 0)
	case MenuActionDown:
		m.cursor = min(m.cursor+1, len(m.items)-1)
	case MenuActionScoreboard:
		m.selected = &MenuItem{Kind: MenuScores, Title: "High Scores"}
	case MenuActionSelect:
		if len(m.items) == 0 {
			break
		}
		item := m.items[m.cursor]
		if item.Kind != MenuQuit {
			m.selected = &item
			break
		}
		fallthrough
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	lines := make([]string, 0, len(m.items))
	for i, item := range m.items {
		if i != m.cursor {
			lines = append(lines, menuItemStyle.Render(item.Title))
			continue
		}
		line := menuActiveStyle.Render("> " + item.Title)
		if item.Hint != "" {
			line += menuHintStyle.Render("  " + item.Hint)
		}
		lines = append(lines, line)
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		menuTitleStyle.Render("B L O C K P I L O T"),
		lipgloss.JoinVertical(lipgloss.Left, lines...),
		"",
		menuHintStyle.Render(menuFooter),
	)
	return lipgloss.Place(m.width, max(m.height-1, 0), lipgloss.Center, lipgloss.Center, body)
}

// Selected returns the chosen item, or nil.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting reports whether the user asked to leave.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText pads text so it sits in the middle of width cells.
func centerText(text string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}
