package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

const (
	maxRuns  = 50 // Max recorded runs to load
	runIDLen = 8  // Shown prefix of a run ID
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	boardEmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
)

// RunsKeyMap defines the key bindings for the runs browser.
type RunsKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k RunsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Back, k.Quit},
	}
}

// DefaultRunsKeyMap returns default key bindings.
func DefaultRunsKeyMap() RunsKeyMap {
	return RunsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next variant"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev variant"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RunsModel lists the recorded runs of each variant, newest first.
type RunsModel struct {
	games      []registry.GameInfo
	gameCursor int
	store      *storage.Store
	rows       []table.Row
	table      table.Model
	help       help.Model
	keys       RunsKeyMap
	width      int
	height     int
	quitting   bool
	goingBack  bool
}

// NewRunsModel creates a runs browser.
func NewRunsModel(store *storage.Store, width, height int) RunsModel {
	m := RunsModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultRunsKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

var runColumns = []table.Column{
	{Title: "Run", Width: runIDLen + 2},
	{Title: "Score", Width: 7},
	{Title: "Frames", Width: 8},
	{Title: "Screen", Width: 9},
	{Title: "Date", Width: 14},
}

// createTable creates a table sized to the window.
func (m RunsModel) createTable() table.Model {
	t := table.New(
		table.WithColumns(runColumns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load fills the table for the selected variant.
func (m *RunsModel) load() {
	m.rows = nil
	if m.store != nil && len(m.games) > 0 {
		m.rows = m.runRows(m.games[m.gameCursor].ID)
	}
	m.table.SetRows(m.rows)
	m.table.GotoTop()
}

func (m RunsModel) runRows(gameID string) []table.Row {
	runs, err := m.store.ListRuns(gameID, maxRuns)
	if err != nil {
		return nil
	}
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			shortID(r.ID),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.FrameCount),
			fmt.Sprintf("%dx%d", r.ScreenW, r.ScreenH),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

func shortID(id string) string {
	if len(id) > runIDLen {
		return id[:runIDLen]
	}
	return id
}

// Init initializes the runs browser.
func (m RunsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the runs browser.
func (m RunsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextGame):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor + 1) % len(m.games)
				m.load()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevGame):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor - 1 + len(m.games)) % len(m.games)
				m.load()
			}
			return m, nil

		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(m.rows)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the runs browser.
func (m RunsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	heading := "RECORDED RUNS"
	if len(m.games) > 0 {
		heading = fmt.Sprintf("%s - %s", heading, m.games[m.gameCursor].Title)
	}

	body := m.table.View()
	if len(m.rows) == 0 {
		body = boardEmptyStyle.Render("No runs recorded yet.\nPlay with --record to keep one.")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		"",
		centerText(boardTitleStyle.Render(heading), m.width),
		"",
		centerText(boardFrameStyle.Render(body), m.width),
		"",
		footerStyle.Render(m.help.View(m.keys)),
	)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m RunsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m RunsModel) IsQuitting() bool {
	return m.quitting
}

// RunRunsBrowser runs the recorded-runs screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunRunsBrowser(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewRunsModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(RunsModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
