package theme

import "github.com/charmbracelet/lipgloss"

// Gruvbox theme - retro groove, dark variant
// https://github.com/morhetz/gruvbox
var Gruvbox = Theme{
	Name: "gruvbox",

	Foreground: lipgloss.Color("#EBDBB2"),
	Subtle:     lipgloss.Color("#928374"),
	Border:     lipgloss.Color("#504945"),

	Primary:   lipgloss.Color("#83A598"), // Aqua
	Secondary: lipgloss.Color("#8EC07C"),

	Success: lipgloss.Color("#B8BB26"),
	Warning: lipgloss.Color("#FABD2F"),
	Error:   lipgloss.Color("#FB4934"),

	PriorityLow:    lipgloss.Color("#B8BB26"),
	PriorityMedium: lipgloss.Color("#FABD2F"),
	PriorityHigh:   lipgloss.Color("#FE8019"),

	Palette: map[string]lipgloss.Color{
		"Pink":       lipgloss.Color("#F5A3B7"),
		"Purple":     lipgloss.Color("#D3869B"),
		"Red":        lipgloss.Color("#FB4934"),
		"Orange":     lipgloss.Color("#FE8019"),
		"Gold":       lipgloss.Color("#FABD2F"),
		"Green":      lipgloss.Color("#B8BB26"),
		"Teal":       lipgloss.Color("#8EC07C"),
		"Light Blue": lipgloss.Color("#83A598"),
		"Dark Blue":  lipgloss.Color("#458588"),
		"Midnight":   lipgloss.Color("#3C3836"),
		"Dark Gray":  lipgloss.Color("#665C54"),
		"Gray":       lipgloss.Color("#A89984"),
	},
}
