package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme helpers. The editor must stay readable on both light and dark
// terminal backgrounds, so colors are lipgloss.AdaptiveColor pairs and faint
// styling is only applied on dark backgrounds (faint on light terminals often
// becomes illegible).

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted    = ac("240", "243")
	colorAccent   = ac("27", "62") // blue
	colorWarn     = ac("130", "214")
	colorDanger   = ac("124", "203")
	colorSelBg    = ac("#e9e9e9", "#262626")
	colorSelFg    = ac("235", "255")
	colorDropLine = ac("27", "111")

	styleTitle     = lipgloss.NewStyle().Bold(true)
	styleMuted     = lipgloss.NewStyle().Foreground(colorMuted)
	styleSelected  = lipgloss.NewStyle().Background(colorSelBg).Foreground(colorSelFg)
	styleGroup     = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	styleDisabled  = lipgloss.NewStyle().Foreground(colorMuted).Strikethrough(true)
	styleDropLine  = lipgloss.NewStyle().Foreground(colorDropLine).Bold(true)
	styleStatusErr = lipgloss.NewStyle().Foreground(colorDanger)
	styleStatusOK  = lipgloss.NewStyle().Foreground(colorMuted)
	styleDirty     = lipgloss.NewStyle().Foreground(colorWarn).Bold(true)
)

// applyColorPreference honors NO_COLOR/CLICOLOR via termenv before the first
// render, so scripted runs (and tests) get plain output.
func applyColorPreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	// termenv.EnvColorProfile respects CLICOLOR/CLICOLOR_FORCE.
	lipgloss.SetColorProfile(termenv.EnvColorProfile())
}
