package theme

import "github.com/charmbracelet/lipgloss"

// Nord - https://www.nordtheme.com/
var Nord = Theme{
	Name: "nord",

	Foreground: lipgloss.Color("#ECEFF4"),
	Subtle:     lipgloss.Color("#4C566A"),
	Border:     lipgloss.Color("#4C566A"),
	Primary:    lipgloss.Color("#88C0D0"),
	Success:    lipgloss.Color("#A3BE8C"),
	Warning:    lipgloss.Color("#EBCB8B"),
	Error:      lipgloss.Color("#BF616A"),

	StatusOpen:       lipgloss.Color("#81A1C1"),
	StatusBlocked:    lipgloss.Color("#BF616A"),
	StatusInProgress: lipgloss.Color("#88C0D0"),
	StatusReview:     lipgloss.Color("#B48EAD"),
	StatusDone:       lipgloss.Color("#A3BE8C"),
}

// Dracula - https://draculatheme.com/
var Dracula = Theme{
	Name: "dracula",

	Foreground: lipgloss.Color("#F8F8F2"),
	Subtle:     lipgloss.Color("#6272A4"),
	Border:     lipgloss.Color("#6272A4"),
	Primary:    lipgloss.Color("#BD93F9"),
	Success:    lipgloss.Color("#50FA7B"),
	Warning:    lipgloss.Color("#F1FA8C"),
	Error:      lipgloss.Color("#FF5555"),

	StatusOpen:       lipgloss.Color("#8BE9FD"),
	StatusBlocked:    lipgloss.Color("#FF5555"),
	StatusInProgress: lipgloss.Color("#FFB86C"),
	StatusReview:     lipgloss.Color("#FF79C6"),
	StatusDone:       lipgloss.Color("#50FA7B"),
}

// Gruvbox - https://github.com/morhetz/gruvbox
var Gruvbox = Theme{
	Name: "gruvbox",

	Foreground: lipgloss.Color("#EBDBB2"),
	Subtle:     lipgloss.Color("#928374"),
	Border:     lipgloss.Color("#504945"),
	Primary:    lipgloss.Color("#83A598"),
	Success:    lipgloss.Color("#B8BB26"),
	Warning:    lipgloss.Color("#FABD2F"),
	Error:      lipgloss.Color("#FB4934"),

	StatusOpen:       lipgloss.Color("#83A598"),
	StatusBlocked:    lipgloss.Color("#FB4934"),
	StatusInProgress: lipgloss.Color("#FE8019"),
	StatusReview:     lipgloss.Color("#D3869B"),
	StatusDone:       lipgloss.Color("#B8BB26"),
}

// Catppuccin Mocha - https://catppuccin.com/
var Catppuccin = Theme{
	Name: "catppuccin",

	Foreground: lipgloss.Color("#CDD6F4"),
	Subtle:     lipgloss.Color("#6C7086"),
	Border:     lipgloss.Color("#45475A"),
	Primary:    lipgloss.Color("#89B4FA"),
	Success:    lipgloss.Color("#A6E3A1"),
	Warning:    lipgloss.Color("#F9E2AF"),
	Error:      lipgloss.Color("#F38BA8"),

	StatusOpen:       lipgloss.Color("#74C7EC"),
	StatusBlocked:    lipgloss.Color("#F38BA8"),
	StatusInProgress: lipgloss.Color("#FAB387"),
	StatusReview:     lipgloss.Color("#CBA6F7"),
	StatusDone:       lipgloss.Color("#A6E3A1"),
}
