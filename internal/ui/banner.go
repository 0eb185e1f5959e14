package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Banner is the ASCII art shown above the browser
var Banner = []string{
	"   ___ _  _   _   _  _  ___ ___ _    ___   ___ ",
	"  / __| || | /_\\ | \\| |/ __| __| |  / _ \\ / __|",
	" | (__| __ |/ _ \\| .` | (_ | _|| |_| (_) | (_ |",
	"  \\___|_||_/_/ \\_\\_|\\_|\\___|___|____\\___/ \\___|",
}

// RenderBanner returns the styled banner with the repository name below it
func RenderBanner(repoName string) string {
	bannerStyle := lipgloss.NewStyle().
		Foreground(ColorCyan).
		Align(lipgloss.Center)

	var lines []string
	for _, line := range Banner {
		lines = append(lines, bannerStyle.Render(line))
	}

	if repoName != "" {
		lines = append(lines, "")
		nameStyle := lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true).
			Align(lipgloss.Center)
		lines = append(lines, nameStyle.Render(repoName))
	}

	return strings.Join(lines, "\n")
}
