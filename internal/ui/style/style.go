// Package style provides semantic terminal styling using lipgloss.
//
// This package is the only place where lipgloss is imported. All styling
// is semantic (Success, Warning, Error, etc.) rather than visual.
//
// When disabled, all helpers return the input string unchanged with no ANSI codes.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	enabled bool

	successStyle lipgloss.Style
	warningStyle lipgloss.Style
	errorStyle   lipgloss.Style
	infoStyle    lipgloss.Style
	headerStyle  lipgloss.Style
	mutedStyle   lipgloss.Style
)

// Init enables or disables styling. NO_COLOR and PARSECMD_NO_COLOR, when
// set to any non-empty value, disable styling regardless of enable.
// overrides is passed to LoadColorConfig and may be nil.
//
// Call it once from main before any output.
func Init(enable bool, overrides map[string]string) {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("PARSECMD_NO_COLOR") != "" {
		enabled = false
		return
	}

	enabled = enable

	if enabled {
		initStyles(LoadColorConfig(overrides))
	}
}

func initStyles(colors ColorConfig) {
	// Force ANSI256 regardless of TTY detection; Init already decided.
	lipgloss.SetColorProfile(termenv.ANSI256)

	successStyle = makeStyle(colors.Success)
	warningStyle = makeStyle(colors.Warning)
	errorStyle = makeStyle(colors.Error)
	infoStyle = makeStyle(colors.Info)
	mutedStyle = makeStyle(colors.Muted)
	headerStyle = makeStyle(colors.Header)
}

// makeStyle creates a lipgloss style from "bold" or an ANSI color number.
func makeStyle(value string) lipgloss.Style {
	if value == "bold" {
		return lipgloss.NewStyle().Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(value))
}

// Enabled returns whether styling is currently enabled.
func Enabled() bool {
	return enabled
}

func render(s lipgloss.Style, text string) string {
	if !enabled {
		return text
	}
	return s.Render(text)
}

// Success styles accepted values and merged results.
func Success(text string) string { return render(successStyle, text) }

// Warning styles default values that were not supplied.
func Warning(text string) string { return render(warningStyle, text) }

// Error styles validation failures.
func Error(text string) string { return render(errorStyle, text) }

// Info styles parameter names.
func Info(text string) string { return render(infoStyle, text) }

// Header styles section titles.
func Header(text string) string { return render(headerStyle, text) }

// Muted styles secondary details such as patterns and help text.
func Muted(text string) string { return render(mutedStyle, text) }
