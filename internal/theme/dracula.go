package theme

import "github.com/charmbracelet/lipgloss"

// Dracula theme
// https://draculatheme.com/
var Dracula = Theme{
	Name: "dracula",

	Foreground: lipgloss.Color("#F8F8F2"),
	Subtle:     lipgloss.Color("#6272A4"), // Comment
	Border:     lipgloss.Color("#44475A"),

	Primary:   lipgloss.Color("#BD93F9"), // Purple
	Secondary: lipgloss.Color("#8BE9FD"), // Cyan

	Success: lipgloss.Color("#50FA7B"),
	Warning: lipgloss.Color("#F1FA8C"),
	Error:   lipgloss.Color("#FF5555"),

	PriorityLow:    lipgloss.Color("#50FA7B"),
	PriorityMedium: lipgloss.Color("#F1FA8C"),
	PriorityHigh:   lipgloss.Color("#FFB86C"),

	Palette: map[string]lipgloss.Color{
		"Pink":       lipgloss.Color("#FF79C6"),
		"Purple":     lipgloss.Color("#BD93F9"),
		"Red":        lipgloss.Color("#FF5555"),
		"Orange":     lipgloss.Color("#FFB86C"),
		"Gold":       lipgloss.Color("#F1FA8C"),
		"Green":      lipgloss.Color("#50FA7B"),
		"Teal":       lipgloss.Color("#69D7C9"),
		"Light Blue": lipgloss.Color("#8BE9FD"),
		"Dark Blue":  lipgloss.Color("#6272A4"),
		"Midnight":   lipgloss.Color("#44475A"),
		"Dark Gray":  lipgloss.Color("#565761"),
		"Gray":       lipgloss.Color("#A4A5B0"),
	},
}
