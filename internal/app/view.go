package app

import (
	"fmt"
	"strings"

	"github.com/wahlandcase/attuned.changelog/internal/ui"

	"github.com/charmbracelet/lipgloss"
)

// contentWidth returns the usable content width, adapting to terminal size
func (m Model) contentWidth() int {
	w := m.width - 8
	if w < 40 {
		w = 40
	}
	return w
}

// View renders the application
func (m Model) View() string {
	if m.shouldQuit {
		return ""
	}

	repoName := ""
	if m.changelog != nil {
		repoName = m.changelog.Repo.RepoName()
	}

	// Calculate fixed element heights
	bannerLines := len(ui.Banner)
	if repoName != "" {
		bannerLines += 2
	}
	statusHeight := 1

	// Available height for content = total - banner - gaps - box border - status
	availableHeight := m.height - bannerLines - 2 - 2 - statusHeight
	if availableHeight < 5 {
		availableHeight = 5
	}

	var sections []string

	sections = append(sections, ui.RenderBanner(repoName))
	sections = append(sections, "")

	outerBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorPurple).
		Width(m.contentWidth()).
		Padding(0, 1)
	sections = append(sections, outerBox.Render(m.renderContentWithHeight(availableHeight)))

	sections = append(sections, "")
	sections = append(sections, m.renderStatusBar())

	content := strings.Join(sections, "\n")

	// Center horizontally in the terminal
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Top, content)
}

func (m Model) renderContentWithHeight(availableHeight int) string {
	switch m.screen {
	case ScreenLoading:
		return m.renderLoading()
	case ScreenBrowse:
		return m.renderBrowseWithHeight(availableHeight)
	case ScreenError:
		return m.renderError()
	default:
		return ""
	}
}

func (m Model) renderLoading() string {
	spinnerStyle := lipgloss.NewStyle().Foreground(ui.ColorCyan)
	text := fmt.Sprintf("%s Reading history of %s", spinnerStyle.Render(ui.Spinner(m.spinnerFrame)), m.repoPath)
	centered := lipgloss.NewStyle().Width(m.contentWidth() - 2).Align(lipgloss.Center)
	return "\n" + centered.Render(text) + "\n"
}

func (m Model) renderError() string {
	titleStyle := lipgloss.NewStyle().Foreground(ui.ColorRed).Bold(true)
	return titleStyle.Render("Could not build the changelog") + "\n\n" + m.errorMessage
}

// renderBrowseWithHeight lists issue groups, expanding the selected ones
func (m Model) renderBrowseWithHeight(availableHeight int) string {
	header := []string{ui.SectionHeader(m.view.String(), ui.ColorCyan), ""}

	if len(m.rows) == 0 {
		dimStyle := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)
		return strings.Join(append(header, dimStyle.Render("  No commits")), "\n")
	}

	lines := append([]string{}, header...)
	highlighted := 0
	lastTag := ""
	tagStyle := lipgloss.NewStyle().Foreground(ui.ColorGreen).Bold(true)

	for i, r := range m.rows {
		if m.view == ViewByTag && (i == 0 || r.tag != lastTag) {
			if i > 0 {
				lines = append(lines, "")
			}
			lines = append(lines, tagStyle.Render(r.tag))
			lastTag = r.tag
		}

		if i == m.cursor {
			highlighted = len(lines)
		}
		expanded := m.expanded[r.key()]
		lines = append(lines, ui.IssueListItem(r.group, i == m.cursor, expanded))

		if expanded {
			if r.group.Link != nil {
				lines = append(lines, ui.LinkLine(*r.group.Link, "      "))
			}
			for _, c := range r.group.Commits {
				lines = append(lines, ui.CommitLine(c, "      "))
			}
		}
	}

	return applyViewportScroll(lines, len(header), highlighted, availableHeight-len(header))
}

// applyViewportScroll scrolls content to keep the highlighted line visible
func applyViewportScroll(lines []string, headerLines int, highlightedLine int, visibleLines int) string {
	if visibleLines < 1 || len(lines) <= headerLines+visibleLines {
		// No scrolling needed
		return strings.Join(lines, "\n")
	}

	// Keep header lines fixed
	header := lines[:headerLines]
	content := lines[headerLines:]

	scrollOffset := 0

	if highlightedLine >= headerLines {
		// Calculate scroll offset to keep highlighted line visible
		highlightInContent := highlightedLine - headerLines

		// Keep some padding around the highlighted item
		padding := 2
		if highlightInContent >= visibleLines-padding {
			scrollOffset = highlightInContent - visibleLines + padding + 1
		}
		if scrollOffset > len(content)-visibleLines {
			scrollOffset = len(content) - visibleLines
		}
		if scrollOffset < 0 {
			scrollOffset = 0
		}
	}

	endOffset := scrollOffset + visibleLines
	if endOffset > len(content) {
		endOffset = len(content)
	}

	// Copy to avoid mutating the caller's lines
	visibleContent := make([]string, endOffset-scrollOffset)
	copy(visibleContent, content[scrollOffset:endOffset])

	dimStyle := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)
	if scrollOffset > 0 {
		visibleContent[0] = dimStyle.Render("  ▲ more above")
	}
	if endOffset < len(content) {
		visibleContent[len(visibleContent)-1] = dimStyle.Render("  ▼ more below")
	}

	out := make([]string, 0, len(header)+len(visibleContent))
	out = append(out, header...)
	return strings.Join(append(out, visibleContent...), "\n")
}

func (m Model) renderStatusBar() string {
	var hints []string
	switch m.screen {
	case ScreenBrowse:
		hints = []string{
			ui.KeyBinding("↑↓", "move", ui.ColorCyan),
			ui.KeyBinding("enter", "expand", ui.ColorCyan),
			ui.KeyBinding("tab", "by tag / all issues", ui.ColorCyan),
			ui.KeyBinding("q", "quit", ui.ColorRed),
		}
		if m.changelog != nil {
			countStyle := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)
			hints = append(hints, countStyle.Render(fmt.Sprintf("%d commits, %d issues",
				len(m.changelog.Commits), len(m.changelog.Issues))))
		}
	default:
		hints = []string{ui.KeyBinding("q", "quit", ui.ColorRed)}
	}
	return strings.Join(hints, "   ")
}
