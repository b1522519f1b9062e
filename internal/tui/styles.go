package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Series colors, matching the chart legends.
var (
	CurrentColor  = lipgloss.Color("#4ade80") // green
	BaselineColor = lipgloss.Color("#f59e0b") // amber
	MarkerColor   = lipgloss.Color("#94a3b8") // slate
)

// Theme holds the current color scheme
type Theme struct {
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Highlight  lipgloss.Color
	Insight    lipgloss.Color
	IsDark     bool
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Foreground: lipgloss.Color("#f2f2f2"),
		Primary:    lipgloss.Color("#93c5fd"),
		Muted:      lipgloss.Color("#64748b"),
		Border:     lipgloss.Color("#334155"),
		Highlight:  lipgloss.Color("#1e3a5f"),
		Insight:    lipgloss.Color("#fde68a"),
		IsDark:     true,
	}
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Foreground: lipgloss.Color("#101F38"),
		Primary:    lipgloss.Color("#1e40af"),
		Muted:      lipgloss.Color("#6b7280"),
		Border:     lipgloss.Color("#d1d5db"),
		Highlight:  lipgloss.Color("#dbeafe"),
		Insight:    lipgloss.Color("#854d0e"),
		IsDark:     false,
	}
}

// ThemeByName maps "light" to LightTheme and anything else to DarkTheme.
func ThemeByName(name string) Theme {
	if name == "light" {
		return LightTheme()
	}
	return DarkTheme()
}

// Styles holds all the styled components
type Styles struct {
	Theme Theme

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Section  lipgloss.Style
	Panel    lipgloss.Style
	Insight  lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style
	Error    lipgloss.Style

	SliderLabel   lipgloss.Style
	SliderFocused lipgloss.Style

	Current  lipgloss.Style
	Baseline lipgloss.Style
	Marker   lipgloss.Style
	Axis     lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Italic(true),

		Section: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		Insight: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Insight).
			Padding(0, 1),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Bold: lipgloss.NewStyle().
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e53935")).
			Bold(true),

		SliderLabel: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		SliderFocused: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Current:  lipgloss.NewStyle().Foreground(CurrentColor),
		Baseline: lipgloss.NewStyle().Foreground(BaselineColor),
		Marker:   lipgloss.NewStyle().Foreground(MarkerColor),
		Axis:     lipgloss.NewStyle().Foreground(theme.Muted),
	}
}

// DefaultStyles returns styles for the dark theme.
func DefaultStyles() Styles {
	return NewStyles(DarkTheme())
}
