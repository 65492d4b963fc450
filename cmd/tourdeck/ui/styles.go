// Package ui is the terminal front end for tourdeck: a tours page and a
// testimonials page drawn with lipgloss, driven by bubbletea.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	LightBackground = lipgloss.Color("#f0fdf4")
	LightForeground = lipgloss.Color("#1f2937")
	LightPrimary    = lipgloss.Color("#7c3aed") // Violet
	LightAccent     = lipgloss.Color("#16a34a") // Green
	LightMuted      = lipgloss.Color("#6b7280")
	LightBorder     = lipgloss.Color("#d1d5db")

	DarkBackground = lipgloss.Color("#111827")
	DarkForeground = lipgloss.Color("#f3f4f6")
	DarkPrimary    = lipgloss.Color("#a78bfa")
	DarkAccent     = lipgloss.Color("#4ade80")
	DarkMuted      = lipgloss.Color("#9ca3af")
	DarkBorder     = lipgloss.Color("#374151")

	Destructive = lipgloss.Color("#dc2626") // "Not Interested" red
	Price       = lipgloss.Color("#0d9488")
)

// Theme holds the current color scheme
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Background: LightBackground,
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Muted:      LightMuted,
		Border:     LightBorder,
	}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Background: DarkBackground,
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		IsDark:     true,
	}
}

// ThemeFor maps a config value (auto, light, dark) to a theme.
func ThemeFor(name string) Theme {
	switch name {
	case "dark":
		return DarkTheme()
	case "light":
		return LightTheme()
	default:
		return DetectTheme()
	}
}

// DetectTheme inspects COLORFGBG and TOURDECK_DARK_MODE; light otherwise.
func DetectTheme() Theme {
	if os.Getenv("TOURDECK_DARK_MODE") == "1" {
		return DarkTheme()
	}
	// Format is usually "foreground;background"
	if parts := strings.Split(os.Getenv("COLORFGBG"), ";"); len(parts) == 2 {
		if bg, err := strconv.Atoi(parts[1]); err == nil && ((bg >= 0 && bg <= 6) || bg == 8) {
			return DarkTheme()
		}
	}
	return LightTheme()
}

// Styles holds all the styled components
type Styles struct {
	Theme Theme

	Header lipgloss.Style
	Tab    lipgloss.Style
	TabOn  lipgloss.Style
	Footer lipgloss.Style

	Title  lipgloss.Style
	Body   lipgloss.Style
	Muted  lipgloss.Style
	Bold   lipgloss.Style
	Status lipgloss.Style

	Card         lipgloss.Style
	CardSelected lipgloss.Style
	Price        lipgloss.Style
	ReadMore     lipgloss.Style
	Remove       lipgloss.Style
	Quote        lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme
func NewStyles(theme Theme) Styles {
	card := lipgloss.NewStyle().
		Foreground(theme.Foreground).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)

	return Styles{
		Theme: theme,

		Header: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Padding(0, 1),
		Tab: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),
		TabOn: lipgloss.NewStyle().
			Foreground(theme.Background).
			Background(theme.Primary).
			Bold(true).
			Padding(0, 1),
		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			MarginBottom(1),
		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),
		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),
		Bold: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),
		Status: lipgloss.NewStyle().
			Foreground(Destructive).
			Italic(true),

		Card:         card,
		CardSelected: card.BorderForeground(theme.Accent),
		Price: lipgloss.NewStyle().
			Foreground(Price).
			Bold(true),
		ReadMore: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Underline(true),
		Remove: lipgloss.NewStyle().
			Foreground(Destructive).
			Bold(true),
		Quote: lipgloss.NewStyle().
			Foreground(theme.Primary),
	}
}

// DefaultStyles returns styles for the detected theme
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}
