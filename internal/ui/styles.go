package ui

import (
	"hash/fnv"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Note: Warp terminal fix is in internal/termfix package, imported first in main.go

var (
	ColorCyan       = lipgloss.Color("#00FFFF")
	ColorGreen      = lipgloss.Color("#00FF00")
	ColorYellow     = lipgloss.Color("#FFFF00")
	ColorRed        = lipgloss.Color("#FF0000")
	ColorMagenta    = lipgloss.Color("#FF00FF")
	ColorBlue       = lipgloss.Color("#5555FF")
	ColorPurple     = lipgloss.Color("#AA55FF")
	ColorOrange     = lipgloss.Color("#FFA500")
	ColorLightGreen = lipgloss.Color("#90EE90")
	ColorWhite      = lipgloss.Color("#FFFFFF")
	ColorDarkGray   = lipgloss.Color("8") // ANSI 8
)

// issuePalette is cycled through for pattern names
var issuePalette = []lipgloss.Color{
	ColorCyan,
	ColorMagenta,
	ColorOrange,
	ColorPurple,
	ColorLightGreen,
	ColorBlue,
}

// IssueColor returns a stable color for an issue group name. Groups without
// an issue are dimmed.
func IssueColor(name string, hasIssue bool) lipgloss.Color {
	if !hasIssue {
		return ColorDarkGray
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	return issuePalette[h.Sum32()%uint32(len(issuePalette))]
}

// DisableColor makes every style render plain text
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
