package styles

import (
	"strings"

	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// Colors - Catppuccin Latte on light terminals, Mocha on dark ones
var (
	// Primary colors
	Primary   = adaptive(catppuccin.Latte.Mauve().Hex, catppuccin.Mocha.Mauve().Hex)
	Secondary = adaptive(catppuccin.Latte.Teal().Hex, catppuccin.Mocha.Teal().Hex)
	Accent    = adaptive(catppuccin.Latte.Peach().Hex, catppuccin.Mocha.Peach().Hex)

	// Status colors
	Success = adaptive(catppuccin.Latte.Green().Hex, catppuccin.Mocha.Green().Hex)
	Warning = adaptive(catppuccin.Latte.Yellow().Hex, catppuccin.Mocha.Yellow().Hex)
	Error   = adaptive(catppuccin.Latte.Red().Hex, catppuccin.Mocha.Red().Hex)

	// Neutral colors
	Border    = adaptive(catppuccin.Latte.Overlay0().Hex, catppuccin.Mocha.Overlay0().Hex)
	Text      = adaptive(catppuccin.Latte.Text().Hex, catppuccin.Mocha.Text().Hex)
	TextMuted = adaptive(catppuccin.Latte.Subtext0().Hex, catppuccin.Mocha.Subtext0().Hex)
	TextDim   = adaptive(catppuccin.Latte.Overlay1().Hex, catppuccin.Mocha.Overlay1().Hex)
)

func adaptive(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// Text styles
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Text)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextMuted)

	Label = lipgloss.NewStyle().
		Foreground(TextDim)

	Highlight = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	Muted = lipgloss.NewStyle().
		Foreground(TextMuted)

	Dim = lipgloss.NewStyle().
		Foreground(TextDim)

	Playing = lipgloss.NewStyle().
		Foreground(Success)

	Alert = lipgloss.NewStyle().
		Foreground(Error)
)

// Border styles
var (
	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border)

	FocusedBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary)
)

// SetTheme forces the light or dark palette. "auto" keeps the terminal's
// detected background.
func SetTheme(theme string) {
	switch theme {
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	case "light":
		lipgloss.SetHasDarkBackground(false)
	}
}

// Panel creates a styled panel with optional focus
func Panel(focused bool) lipgloss.Style {
	if focused {
		return FocusedBorder.Padding(0, 1)
	}
	return BorderStyle.Padding(0, 1)
}

// PanelTitle creates a styled panel title
func PanelTitle(title string, focused bool) string {
	style := Label
	if focused {
		style = Highlight
	}
	return style.Render(" " + title + " ")
}

// ProgressBar creates a progress bar string
func ProgressBar(percent float64, width int) string {
	filled := int(percent / 100 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	filledStyle := lipgloss.NewStyle().Foreground(Primary)
	emptyStyle := lipgloss.NewStyle().Foreground(Border)

	return filledStyle.Render(strings.Repeat("━", filled)) +
		emptyStyle.Render(strings.Repeat("─", width-filled))
}

// StatusIcon returns an icon for playback status
func StatusIcon(playing bool) string {
	if playing {
		return Playing.Render("▶")
	}
	return Dim.Render("■")
}
