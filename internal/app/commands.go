package app

import (
	"github.com/wahlandcase/attuned.changelog/internal/changelog"
	"github.com/wahlandcase/attuned.changelog/internal/config"

	tea "github.com/charmbracelet/bubbletea"
)

// Message types for async operations

type changelogLoadedResult struct {
	changelog *changelog.Changelog
	err       error
}

// loadChangelogCmd reads the repository in the background
func loadChangelogCmd(cfg *config.Config, repoPath string) tea.Cmd {
	return func() tea.Msg {
		cl, err := changelog.FromRepo(cfg, repoPath)
		return changelogLoadedResult{changelog: cl, err: err}
	}
}
