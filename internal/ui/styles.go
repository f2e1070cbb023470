package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
// - Default (white/black): Primary text
// - Accent (soft purple #A78BFA): Highlights, paths, interactive elements
// - Muted (gray): Secondary info, line numbers
// - No colored success/error/warning - use unicode symbols only

const defaultAccent = "#A78BFA"

var (
	// Accent style for file paths, highlights
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent))

	// Muted style for secondary info, hints, line numbers
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	// Bold style for emphasis
	Bold = lipgloss.NewStyle().Bold(true)

	// AccentBold combines accent color with bold
	AccentBold = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent)).Bold(true)
)

var (
	accentColor   = defaultAccent
	accentEnabled = true
)

// normalizeAccentColor validates a configured accent color. Accepted forms
// are ANSI color codes ("0" to "255") and hex colors ("#RRGGBB").
func normalizeAccentColor(raw string) (string, bool) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return "", false
	}

	if strings.HasPrefix(v, "#") {
		if len(v) != 7 {
			return "", false
		}
		for _, c := range v[1:] {
			switch {
			case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
			default:
				return "", false
			}
		}
		return v, true
	}

	n, err := strconv.Atoi(v)
	if err != nil || n < 0 || n > 255 {
		return "", false
	}
	return v, true
}

// ConfigureTheme applies a configured accent color to the shared styles.
// "none" disables accent styling entirely; invalid or empty values keep
// the current theme.
func ConfigureTheme(accent string) {
	if strings.EqualFold(strings.TrimSpace(accent), "none") {
		accentEnabled = false
		Accent = lipgloss.NewStyle()
		AccentBold = lipgloss.NewStyle().Bold(true)
		return
	}

	color, ok := normalizeAccentColor(accent)
	if !ok {
		return
	}

	accentEnabled = true
	accentColor = color
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	AccentBold = lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
}

// AccentColor returns the active accent color. ok is false when accent
// styling has been disabled.
func AccentColor() (string, bool) {
	if !accentEnabled {
		return "", false
	}
	return accentColor, true
}
