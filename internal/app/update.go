package app

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if m.screen != ScreenLoading {
			return m, nil
		}
		m.spinnerFrame = (m.spinnerFrame + 1) % 10
		return m, tickCmd()

	case changelogLoadedResult:
		return m.handleChangelogLoaded(msg)
	}

	return m, nil
}

func (m Model) handleChangelogLoaded(msg changelogLoadedResult) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errorMessage = msg.err.Error()
		m.screen = ScreenError
		return m, nil
	}

	m.changelog = msg.changelog
	m.cursor = 0
	m.buildRows()
	m.screen = ScreenBrowse
	return m, nil
}

// handleKey processes keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit
	if msg.Type == tea.KeyCtrlC {
		m.shouldQuit = true
		return m, tea.Quit
	}

	switch m.screen {
	case ScreenBrowse:
		return m.handleBrowseKey(msg)
	case ScreenError, ScreenLoading:
		if msg.String() == "q" || msg.Type == tea.KeyEsc {
			m.shouldQuit = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.shouldQuit = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		} else if len(m.rows) > 0 {
			m.cursor = len(m.rows) - 1 // Wrap to bottom
		}
	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		} else {
			m.cursor = 0 // Wrap to top
		}
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = max(len(m.rows)-1, 0)
	case "enter", " ":
		if r, ok := m.selected(); ok {
			m.expanded[r.key()] = !m.expanded[r.key()]
		}
	case "tab":
		if m.view == ViewByTag {
			m.view = ViewAllIssues
		} else {
			m.view = ViewByTag
		}
		m.cursor = 0
		m.buildRows()
	}

	return m, nil
}
