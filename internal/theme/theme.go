package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dori/portfolio/internal/model"
)

// Theme defines the color scheme for command output
type Theme struct {
	Name string

	// Base colors
	Foreground lipgloss.Color
	Subtle     lipgloss.Color
	Border     lipgloss.Color

	// Semantic colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color

	// Priority colors
	PriorityLow    lipgloss.Color
	PriorityMedium lipgloss.Color
	PriorityHigh   lipgloss.Color

	// Palette maps every project color name to a terminal color
	Palette map[string]lipgloss.Color
}

// Styles holds pre-computed lipgloss styles based on theme
type Styles struct {
	Header lipgloss.Style
	Label  lipgloss.Style
	Dim    lipgloss.Style

	// Item styles
	ItemOpen lipgloss.Style
	ItemDone lipgloss.Style

	// Award styles
	AwardLocked lipgloss.Style

	// Progress bar
	BarEmpty lipgloss.Style

	Error lipgloss.Style
}

// NewStyles creates styles from a theme
func NewStyles(t Theme) Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true).
			Underline(true),

		Label: lipgloss.NewStyle().
			Foreground(t.Secondary),

		Dim: lipgloss.NewStyle().
			Foreground(t.Subtle),

		ItemOpen: lipgloss.NewStyle().
			Foreground(t.Foreground),

		ItemDone: lipgloss.NewStyle().
			Foreground(t.Subtle).
			Strikethrough(true),

		AwardLocked: lipgloss.NewStyle().
			Foreground(t.Border),

		BarEmpty: lipgloss.NewStyle().
			Foreground(t.Border),

		Error: lipgloss.NewStyle().
			Foreground(t.Error).
			Bold(true),
	}
}

// Color resolves a project color name. Names outside the palette fall back
// to the default project color.
func (t Theme) Color(name string) lipgloss.Color {
	if c, ok := t.Palette[name]; ok {
		return c
	}
	return t.Palette[model.DefaultProjectColor]
}

// Priority returns the color for an item priority
func (t Theme) Priority(p model.Priority) lipgloss.Color {
	switch p.Rank() {
	case model.PriorityHigh:
		return t.PriorityHigh
	case model.PriorityMedium:
		return t.PriorityMedium
	default:
		return t.PriorityLow
	}
}

// Current holds the current active theme and styles
var Current = struct {
	Theme  Theme
	Styles Styles
}{
	Theme:  Nord,
	Styles: NewStyles(Nord),
}

// SetTheme changes the current theme
func SetTheme(t Theme) {
	Current.Theme = t
	Current.Styles = NewStyles(t)
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

// Names returns the names of all available themes
func Names() []string {
	names := make([]string, 0, len(Available()))
	for _, t := range Available() {
		names = append(names, t.Name)
	}
	return names
}

// ByName returns a theme by its name, ignoring case
func ByName(name string) (Theme, bool) {
	for _, t := range Available() {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return Theme{}, false
}
