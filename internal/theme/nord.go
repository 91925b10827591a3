package theme

import "github.com/charmbracelet/lipgloss"

// Nord theme - Arctic, north-bluish color palette
// https://www.nordtheme.com/
var Nord = Theme{
	Name: "nord",

	// Polar Night and Snow Storm
	Foreground: lipgloss.Color("#ECEFF4"),
	Subtle:     lipgloss.Color("#4C566A"),
	Border:     lipgloss.Color("#434C5E"),

	// Frost
	Primary:   lipgloss.Color("#88C0D0"), // Nord8
	Secondary: lipgloss.Color("#81A1C1"), // Nord9

	// Aurora
	Success: lipgloss.Color("#A3BE8C"), // Nord14
	Warning: lipgloss.Color("#EBCB8B"), // Nord13
	Error:   lipgloss.Color("#BF616A"), // Nord11

	PriorityLow:    lipgloss.Color("#A3BE8C"),
	PriorityMedium: lipgloss.Color("#EBCB8B"),
	PriorityHigh:   lipgloss.Color("#D08770"),

	Palette: map[string]lipgloss.Color{
		"Pink":       lipgloss.Color("#D8A0C0"),
		"Purple":     lipgloss.Color("#B48EAD"),
		"Red":        lipgloss.Color("#BF616A"),
		"Orange":     lipgloss.Color("#D08770"),
		"Gold":       lipgloss.Color("#EBCB8B"),
		"Green":      lipgloss.Color("#A3BE8C"),
		"Teal":       lipgloss.Color("#8FBCBB"),
		"Light Blue": lipgloss.Color("#88C0D0"),
		"Dark Blue":  lipgloss.Color("#5E81AC"),
		"Midnight":   lipgloss.Color("#3B4252"),
		"Dark Gray":  lipgloss.Color("#4C566A"),
		"Gray":       lipgloss.Color("#D8DEE9"),
	},
}
