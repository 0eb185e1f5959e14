package ui

import (
	"strings"

	"github.com/wahlandcase/attuned.changelog/internal/changelog"
	"github.com/wahlandcase/attuned.changelog/internal/models"

	"github.com/charmbracelet/lipgloss"
)

// RenderChangelog renders every tag with its issue groups and commits
func RenderChangelog(cl *changelog.Changelog) string {
	var lines []string
	for _, tag := range cl.Tags {
		lines = append(lines, SectionHeader(tag.Name, ColorGreen), "")
		for _, g := range tag.Issues {
			lines = append(lines, "  "+IssueLabel(g))
			if g.Link != nil {
				lines = append(lines, LinkLine(*g.Link, "    "))
			}
			for _, c := range g.Commits {
				lines = append(lines, CommitLine(c, "    "))
			}
			lines = append(lines, "")
		}
	}
	return strings.Join(lines, "\n")
}

// RenderMetadata renders what was derived from the origin URL
func RenderMetadata(originURL string, meta models.RepoMetadata) string {
	keyStyle := lipgloss.NewStyle().Foreground(ColorCyan).Bold(true).Width(14)
	absentStyle := lipgloss.NewStyle().Foreground(ColorDarkGray).Italic(true)

	value := func(s *string) string {
		if s == nil {
			return absentStyle.Render("(none)")
		}
		return *s
	}
	origin := &originURL
	if originURL == "" {
		origin = nil
	}

	rows := []struct {
		key   string
		value *string
	}{
		{"origin", origin},
		{"owner", meta.Owner},
		{"repo", meta.Repo},
		{"github api", meta.GitHubAPI},
		{"gitlab server", meta.GitLabServer},
	}

	var lines []string
	for _, r := range rows {
		lines = append(lines, keyStyle.Render(r.key)+" "+value(r.value))
	}
	return Box(strings.Join(lines, "\n"), ColorCyan)
}
