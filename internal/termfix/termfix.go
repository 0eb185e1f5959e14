// Package termfix adjusts terminal environment variables before termenv
// queries the terminal. Import this package FIRST (before any lipgloss/termenv
// imports) using:
//
//	_ "github.com/wahlandcase/attuned.changelog/internal/termfix"
package termfix

import "os"

func init() {
	apply(os.Getenv, os.Setenv)
}

// apply fixes Warp terminal delays and stops termenv from querying the
// background color on CI runners, where the query can hang
func apply(getenv func(string) string, setenv func(string, string) error) {
	switch {
	case getenv("TERM_PROGRAM") == "WarpTerminal":
		_ = setenv("TERM", "dumb")
		_ = setenv("COLORTERM", "truecolor")
	case getenv("CI") != "" && getenv("TERM") == "":
		_ = setenv("TERM", "dumb")
	}
}
