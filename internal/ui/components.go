package ui

import (
	"fmt"
	"strings"

	"github.com/wahlandcase/attuned.changelog/internal/models"

	"github.com/charmbracelet/lipgloss"
)

// SectionHeader creates a styled section header with a title and color
// Example: "─── TITLE ───────────"
func SectionHeader(title string, color lipgloss.Color) string {
	dashes := strings.Repeat("─", max(25-lipgloss.Width(title), 0))
	headerStyle := lipgloss.NewStyle().Foreground(color)
	titleStyle := lipgloss.NewStyle().Foreground(color).Bold(true)

	return fmt.Sprintf("%s%s%s",
		headerStyle.Render("  ─── "),
		titleStyle.Render(title),
		headerStyle.Render(" "+dashes),
	)
}

// Spinner frames using braille characters
var SpinnerFrames = []rune{'⠋', '⠙', '⠹', '⠸', '⠼', '⠴', '⠦', '⠧', '⠇', '⠏'}

// Spinner returns the spinner character at the given frame index
func Spinner(frame int) string {
	return string(SpinnerFrames[frame%len(SpinnerFrames)])
}

// Arrow returns an arrow indicator for selection
func Arrow(selected bool) string {
	if selected {
		return "▶ "
	}
	return "  "
}

// Fold returns the expand/collapse marker
func Fold(expanded bool) string {
	if expanded {
		return "▾"
	}
	return "▸"
}

// KeyBinding renders a key binding hint
func KeyBinding(key, description string, color lipgloss.Color) string {
	keyStyle := lipgloss.NewStyle().Foreground(color).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(ColorWhite)

	return fmt.Sprintf("%s %s",
		keyStyle.Render(key),
		descStyle.Render(description),
	)
}

// IssueLabel renders "ABC-123 Jira" for issue groups and the bare name for
// the fallback group
func IssueLabel(g models.IssueGroup) string {
	color := IssueColor(g.Name, g.HasIssue())
	nameStyle := lipgloss.NewStyle().Foreground(color)
	if !g.HasIssue() {
		return nameStyle.Italic(true).Render(g.Name)
	}
	issueStyle := lipgloss.NewStyle().Foreground(color).Bold(true)
	return issueStyle.Render(g.IssueText()) + " " + nameStyle.Render(g.Name)
}

// IssueListItem renders one issue group row in a list
func IssueListItem(g models.IssueGroup, highlighted, expanded bool) string {
	arrowStyle := lipgloss.NewStyle().Foreground(ColorCyan)
	countStyle := lipgloss.NewStyle().Foreground(ColorDarkGray)

	return fmt.Sprintf("%s%s %s %s",
		arrowStyle.Render(Arrow(highlighted)),
		Fold(expanded),
		IssueLabel(g),
		countStyle.Render(fmt.Sprintf("(%d)", len(g.Commits))),
	)
}

// CommitLine renders a commit as "abc1234 subject  author"
func CommitLine(c models.Commit, indent string) string {
	hashStyle := lipgloss.NewStyle().Foreground(ColorYellow)
	authorStyle := lipgloss.NewStyle().Foreground(ColorDarkGray)

	return fmt.Sprintf("%s%s %s  %s",
		indent,
		hashStyle.Render(c.ShortHash()),
		c.Subject(),
		authorStyle.Render(c.Author),
	)
}

// LinkLine renders a dimmed URL
func LinkLine(url, indent string) string {
	return indent + lipgloss.NewStyle().Foreground(ColorBlue).Underline(true).Render(url)
}

// Box creates a bordered box
func Box(content string, borderColor lipgloss.Color) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1)

	return style.Render(content)
}

// max returns the maximum of two integers
func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
