package theme

import "github.com/charmbracelet/lipgloss"

// Catppuccin theme - Mocha flavor
// https://catppuccin.com/
var Catppuccin = Theme{
	Name: "catppuccin",

	Foreground: lipgloss.Color("#CDD6F4"),
	Subtle:     lipgloss.Color("#6C7086"), // Overlay0
	Border:     lipgloss.Color("#45475A"),

	Primary:   lipgloss.Color("#89B4FA"), // Blue
	Secondary: lipgloss.Color("#CBA6F7"), // Mauve

	Success: lipgloss.Color("#A6E3A1"),
	Warning: lipgloss.Color("#F9E2AF"),
	Error:   lipgloss.Color("#F38BA8"),

	PriorityLow:    lipgloss.Color("#A6E3A1"),
	PriorityMedium: lipgloss.Color("#F9E2AF"),
	PriorityHigh:   lipgloss.Color("#FAB387"),

	Palette: map[string]lipgloss.Color{
		"Pink":       lipgloss.Color("#F5C2E7"),
		"Purple":     lipgloss.Color("#CBA6F7"),
		"Red":        lipgloss.Color("#F38BA8"),
		"Orange":     lipgloss.Color("#FAB387"),
		"Gold":       lipgloss.Color("#F9E2AF"),
		"Green":      lipgloss.Color("#A6E3A1"),
		"Teal":       lipgloss.Color("#94E2D5"),
		"Light Blue": lipgloss.Color("#89DCEB"),
		"Dark Blue":  lipgloss.Color("#89B4FA"),
		"Midnight":   lipgloss.Color("#313244"),
		"Dark Gray":  lipgloss.Color("#585B70"),
		"Gray":       lipgloss.Color("#9399B2"),
	},
}
