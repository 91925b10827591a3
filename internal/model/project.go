package model

import (
	"time"

	"github.com/dori/portfolio/internal/i18n"
)

// DefaultProjectColor is used when a project has no color set
const DefaultProjectColor = "Light Blue"

// ProjectColors is the fixed palette a project color is picked from
var ProjectColors = []string{
	"Pink", "Purple", "Red", "Orange", "Gold",
	"Green", "Teal", "Light Blue", "Dark Blue",
	"Midnight", "Dark Gray", "Gray",
}

// Project represents a group of items
type Project struct {
	ID          string    `json:"id"`
	Title       *string   `json:"title,omitempty"`
	Detail      *string   `json:"detail,omitempty"`
	Color       *string   `json:"color,omitempty"`
	CreatedDate time.Time `json:"created_date"`
	Closed      bool      `json:"closed"`
}

// ProjectTitle returns the title, or the placeholder if none is set
func (p *Project) ProjectTitle() string {
	if p.Title == nil {
		return i18n.Sprintf(i18n.KeyNewProject)
	}
	return *p.Title
}

// ProjectDetail returns the detail text, or an empty string
func (p *Project) ProjectDetail() string {
	if p.Detail == nil {
		return ""
	}
	return *p.Detail
}

// ProjectColor returns the palette color name, falling back to DefaultProjectColor
func (p *Project) ProjectColor() string {
	if p.Color == nil {
		return DefaultProjectColor
	}
	return *p.Color
}

// IsPaletteColor reports whether name is one of ProjectColors
func IsPaletteColor(name string) bool {
	for _, c := range ProjectColors {
		if c == name {
			return true
		}
	}
	return false
}
