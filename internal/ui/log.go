package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Stderr is where warnings and errors go
var Stderr io.Writer = os.Stderr

// Warning prints a styled warning to Stderr
func Warning(msg string) {
	style := lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
	fmt.Fprintf(Stderr, "%s %s\n", style.Render("⚠"), msg)
}

// Error prints a styled error to Stderr
func Error(err error) {
	style := lipgloss.NewStyle().Foreground(ColorRed).Bold(true)
	fmt.Fprintf(Stderr, "%s %v\n", style.Render("✗"), err)
}

// Fatal prints the error and exits
func Fatal(err error) {
	Error(err)
	os.Exit(1)
}
