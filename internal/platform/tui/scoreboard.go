package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/vovakirdan/blockpilot/internal/registry"
	"github.com/vovakirdan/blockpilot/internal/storage"
)

const (
	minWidthForSidebar = 80 // Narrower terminals get tabs instead of a board list
	boardListWidth     = 20
	maxScores          = 100 // Rows loaded per board
)

// benchBoardTitle names the board that lists stored pilot benchmark runs.
const benchBoardTitle = "Bench Runs"

// scoreBoard is one selectable table: a game's scores or the bench runs.
type scoreBoard struct {
	Title  string
	GameID string // Empty for the bench board
}

func (b scoreBoard) isBench() bool { return b.GameID == "" }

// defaultBoards lists every registered game followed by the bench board.
func defaultBoards() []scoreBoard {
	boards := lo.Map(registry.List(), func(g registry.GameInfo, _ int) scoreBoard {
		return scoreBoard{Title: g.Title, GameID: g.ID}
	})
	return append(boards, scoreBoard{Title: benchBoardTitle})
}

// ScoreboardKeyMap lists the scoreboard bindings. Row scrolling is left
// to the table's own key map.
type ScoreboardKeyMap struct {
	NextBoard key.Binding
	PrevBoard key.Binding
	Back      key.Binding
	Quit      key.Binding
}

func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextBoard, k.PrevBoard, k.Back, k.Quit}
}

func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultScoreboardKeyMap returns the standard bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		NextBoard: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next board")),
		PrevBoard: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab/←", "prev board")),
		Back:      key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

var (
	sbTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	sbActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	sbDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	sbTabStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).Padding(0, 1)
	sbEmptyStyle  = sbDimStyle.Italic(true).Padding(2, 4)
	tableBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

// ScoreboardModel browses the human, pilot and bench boards.
type ScoreboardModel struct {
	boards        []scoreBoard
	cursor        int
	store         *storage.Store
	scores        []storage.ScoreEntry
	runs          []storage.BotRun
	table         table.Model
	help          help.Model
	keys          ScoreboardKeyMap
	width, height int
	embedded      bool // Back returns to the session menu instead of quitting
	quitting      bool
	goingBack     bool
}

// NewScoreboardModel opens on the first board. A nil store shows empty boards.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		boards: defaultBoards(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.load()
	return m
}

func (m ScoreboardModel) current() scoreBoard {
	return m.boards[m.cursor]
}

func (m ScoreboardModel) wide() bool {
	return m.width >= minWidthForSidebar
}

func (m ScoreboardModel) columns() []table.Column {
	if m.current().isBench() {
		return []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Pilot", Width: 11},
			{Title: "Score", Width: 9},
			{Title: "Lines", Width: 7},
			{Title: "Pieces", Width: 7},
			{Title: "Seed", Width: 12},
		}
	}

	avail := m.width - 4
	if m.wide() {
		avail -= boardListWidth + 3
	}
	return []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Lines", Width: 7},
		{Title: "Level", Width: 6},
		{Title: "Date", Width: max(14, min(avail-35, 20))},
	}
}

func (m ScoreboardModel) rows() []table.Row {
	rank := func(i int) string { return "#" + strconv.Itoa(i+1) }
	if m.current().isBench() {
		return lo.Map(m.runs, func(r storage.BotRun, i int) table.Row {
			return table.Row{rank(i), r.Player, strconv.Itoa(r.Score), strconv.Itoa(r.Lines),
				strconv.Itoa(r.Pieces), strconv.FormatInt(r.Seed, 10)}
		})
	}
	return lo.Map(m.scores, func(s storage.ScoreEntry, i int) table.Row {
		return table.Row{rank(i), strconv.Itoa(s.Score), strconv.Itoa(s.Lines),
			strconv.Itoa(s.Level), s.CreatedAt.Format("Jan 02 15:04")}
	})
}

// load fetches the rows of the current board. Read errors show as an
// empty board.
func (m *ScoreboardModel) load() {
	m.scores, m.runs = nil, nil
	if m.store != nil {
		if b := m.current(); b.isBench() {
			m.runs, _ = m.store.TopBotRuns(maxScores)
		} else {
			m.scores, _ = m.store.TopScores(b.GameID, maxScores)
		}
	}
	m.rebuildTable()
}

func (m *ScoreboardModel) rebuildTable() {
	m.table = table.New(
		table.WithColumns(m.columns()),
		table.WithRows(m.rows()),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).BorderBottom(true).Bold(true)
	s.Selected = s.Selected.Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).Bold(false)
	m.table.SetStyles(s)
}

func (m ScoreboardModel) rowCount() int {
	if m.current().isBench() {
		return len(m.runs)
	}
	return len(m.scores)
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.rebuildTable()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.embedded {
				return m, nil
			}
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextBoard):
			m.cursor = (m.cursor + 1) % len(m.boards)
			m.load()
			return m, nil
		case key.Matches(msg, m.keys.PrevBoard):
			m.cursor = (m.cursor + len(m.boards) - 1) % len(m.boards)
			m.load()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) View() string {
	if m.quitting || (m.goingBack && !m.embedded) {
		return ""
	}

	title := centerText(sbTitleStyle.Render("HIGH SCORES - "+m.current().Title), m.width)
	body := m.narrowView()
	if m.wide() {
		body = m.wideView()
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, "", body, "", sbDimStyle.Render(m.help.View(m.keys)))
}

// wideView puts the board list beside the table.
func (m ScoreboardModel) wideView() string {
	lines := []string{"Boards", strings.Repeat("─", boardListWidth-4)}
	for i, b := range m.boards {
		name := truncate(b.Title, boardListWidth-6)
		if i == m.cursor {
			lines = append(lines, sbActiveStyle.Render("> "+name))
		} else {
			lines = append(lines, "  "+name)
		}
	}

	list := tableBoxStyle.Width(boardListWidth).Render(strings.Join(lines, "\n"))
	return lipgloss.JoinHorizontal(lipgloss.Top, list, "  ", tableBoxStyle.Render(m.tableView()))
}

// narrowView puts board tabs above the table, or just the current board
// name when the tabs do not fit.
func (m ScoreboardModel) narrowView() string {
	tabs := lo.Map(m.boards, func(b scoreBoard, i int) string {
		name := truncate(b.Title, 10)
		if i == m.cursor {
			return sbTabStyle.Render(name)
		}
		return sbDimStyle.Render(" " + name + " ")
	})
	tabLine := strings.Join(tabs, " ")
	if lipgloss.Width(tabLine) > m.width-4 {
		tabLine = fmt.Sprintf("< %s >", m.current().Title)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		centerText(tabLine, m.width),
		"",
		centerText(tableBoxStyle.Render(m.tableView()), m.width),
	)
}

func (m ScoreboardModel) tableView() string {
	switch {
	case m.rowCount() > 0:
		return m.table.View()
	case m.current().isBench():
		return sbEmptyStyle.Render("No bench runs stored yet.\nRun `blockpilot bench --save`.")
	default:
		return sbEmptyStyle.Render("No scores recorded yet.\nPlay a game to set a high score!")
	}
}

// truncate shortens s to n runes, marking the cut with a dot.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "."
}

// IsGoingBack reports whether the user left the scoreboard.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the user asked to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the scoreboard on its own in the local terminal.
func RunScoreboard(store *storage.Store, width, height int) error {
	_, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	return err
}
