package app

import (
	"time"

	"github.com/wahlandcase/attuned.changelog/internal/changelog"
	"github.com/wahlandcase/attuned.changelog/internal/config"
	"github.com/wahlandcase/attuned.changelog/internal/models"

	tea "github.com/charmbracelet/bubbletea"
)

// row is one selectable issue group in the current view
type row struct {
	// tag is the tag the group belongs to, empty in ViewAllIssues
	tag   string
	group models.IssueGroup
}

// key identifies the row across view rebuilds
func (r row) key() string {
	return r.tag + "\x00" + r.group.Name + "\x00" + r.group.IssueText()
}

// Model is the main application state
type Model struct {
	// Configuration
	config   *config.Config
	repoPath string

	// Navigation
	screen     Screen
	view       ViewMode
	cursor     int
	shouldQuit bool

	// Data
	changelog *changelog.Changelog
	rows      []row
	expanded  map[string]bool

	// UI state
	errorMessage string
	spinnerFrame int

	// Window size
	width  int
	height int
}

// New creates a new application model
func New(cfg *config.Config, repoPath string) Model {
	return Model{
		config:   cfg,
		repoPath: repoPath,
		screen:   ScreenLoading,
		expanded: make(map[string]bool),
		width:    80,
		height:   24,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		loadChangelogCmd(m.config, m.repoPath),
	)
}

// tickMsg is sent on each tick for the spinner
type tickMsg struct{}

func tickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(_ time.Time) tea.Msg {
		return tickMsg{}
	})
}

// buildRows flattens the changelog for the current view mode
func (m *Model) buildRows() {
	m.rows = nil
	if m.changelog == nil {
		return
	}

	switch m.view {
	case ViewAllIssues:
		for _, g := range m.changelog.Issues {
			m.rows = append(m.rows, row{group: g})
		}
	default:
		for _, tag := range m.changelog.Tags {
			for _, g := range tag.Issues {
				m.rows = append(m.rows, row{tag: tag.Name, group: g})
			}
		}
	}

	if m.cursor >= len(m.rows) {
		m.cursor = max(len(m.rows)-1, 0)
	}
}

// selected returns the highlighted row, if any
func (m Model) selected() (row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return row{}, false
	}
	return m.rows[m.cursor], true
}
