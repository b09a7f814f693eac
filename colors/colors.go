// Package colors renders diagnostics and CLI output with ANSI color, the
// same palette the teacher compiler uses, but degrades to plain text when
// stdout isn't a terminal or NO_COLOR is set.
package colors

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// COLOR is a pre-built ANSI escape sequence; printer.go wraps Sprintf-style
// output in it and appends RESET.
type COLOR string

const RESET COLOR = "\033[0m"

const (
	RED          COLOR = "\033[31m"
	GREEN        COLOR = "\033[32m"
	YELLOW       COLOR = "\033[33m"
	BLUE         COLOR = "\033[34m"
	PURPLE       COLOR = "\033[35m"
	CYAN         COLOR = "\033[36m"
	WHITE        COLOR = "\033[37m"
	GREY         COLOR = "\033[90m"
	LIGHT_GREEN  COLOR = "\033[92m"
	LIGHT_YELLOW COLOR = "\033[93m"
	LIGHT_ORANGE COLOR = "\033[38;5;215m"
	ORANGE       COLOR = "\033[38;5;208m"
	BROWN        COLOR = "\033[38;5;130m"
	BOLD_RED     COLOR = "\033[1;31m"
	BOLD_YELLOW  COLOR = "\033[1;33m"
	BOLD_CYAN    COLOR = "\033[1;36m"
	BOLD_PURPLE  COLOR = "\033[1;35m"
)

// colorEnabled caches whether ANSI output is appropriate for os.Stdout.
// Computed once at package init; tests that need plain output should
// compare against StripANSI(output) rather than mutate this.
var colorEnabled = computeColorEnabled()

func computeColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return false
	}
	return termenv.EnvColorProfile() != termenv.Ascii
}

// C conditionally applies a color: returns the plain string when color
// output isn't appropriate for the current terminal, matching how
// production CLIs avoid leaking escape codes into piped output.
func C(color COLOR, s string) string {
	if !colorEnabled {
		return s
	}
	return string(color) + s + string(RESET)
}
