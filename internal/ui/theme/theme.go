package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/dori/tasklist/internal/model"
)

// Theme defines the color scheme for the UI
type Theme struct {
	Name string

	// Base colors
	Foreground lipgloss.Color
	Subtle     lipgloss.Color
	Border     lipgloss.Color

	// Semantic colors
	Primary lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color

	// Status colors
	StatusOpen       lipgloss.Color
	StatusBlocked    lipgloss.Color
	StatusInProgress lipgloss.Color
	StatusReview     lipgloss.Color
	StatusDone       lipgloss.Color
}

// StatusColor returns the color for a task status
func (t Theme) StatusColor(s model.Status) lipgloss.Color {
	switch s {
	case model.StatusOpen:
		return t.StatusOpen
	case model.StatusBlocked:
		return t.StatusBlocked
	case model.StatusInProgress:
		return t.StatusInProgress
	case model.StatusReview:
		return t.StatusReview
	case model.StatusDone:
		return t.StatusDone
	default:
		return t.Foreground
	}
}

// Styles holds pre-computed lipgloss styles based on theme
type Styles struct {
	theme Theme
	r     *lipgloss.Renderer

	Header  lipgloss.Style
	MenuKey lipgloss.Style

	Index lipgloss.Style
	Title lipgloss.Style
	Label lipgloss.Style

	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style

	// Full-screen mode
	Panel    lipgloss.Style
	Input    lipgloss.Style
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
}

// NewStyles creates styles from a theme for the given renderer.
// The renderer decides whether colors are emitted for its output.
func NewStyles(r *lipgloss.Renderer, t Theme) Styles {
	return Styles{
		theme: t,
		r:     r,

		Header: r.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		MenuKey: r.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		Index: r.NewStyle().
			Foreground(t.Subtle),

		Title: r.NewStyle().
			Foreground(t.Foreground).
			Bold(true),

		Label: r.NewStyle().
			Foreground(t.Subtle),

		Success: r.NewStyle().
			Foreground(t.Success),

		Warning: r.NewStyle().
			Foreground(t.Warning),

		Error: r.NewStyle().
			Foreground(t.Error),

		Panel: r.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),

		Input: r.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Primary).
			Padding(0, 1),

		HelpKey: r.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		HelpDesc: r.NewStyle().
			Foreground(t.Subtle),
	}
}

// Status returns the style for a task status label
func (s Styles) Status(st model.Status) lipgloss.Style {
	return s.r.NewStyle().Foreground(s.theme.StatusColor(st))
}

// Theme returns the theme the styles were built from
func (s Styles) Theme() Theme {
	return s.theme
}

// Available returns all available themes
func Available() []Theme {
	return []Theme{
		Nord,
		Dracula,
		Gruvbox,
		Catppuccin,
	}
}

// ByName returns a theme by its name
func ByName(name string) (Theme, bool) {
	for _, t := range Available() {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}
