package model

import (
	"time"

	"github.com/dori/portfolio/internal/i18n"
)

// Priority represents item priority level. Values outside Low..High are
// stored as written; Rank folds them into range for ordering.
type Priority int

const (
	PriorityLow    Priority = 1
	PriorityMedium Priority = 2
	PriorityHigh   Priority = 3
)

// String returns the display name for a priority
func (p Priority) String() string {
	switch p.Rank() {
	case PriorityLow:
		return "low"
	case PriorityHigh:
		return "high"
	default:
		return "medium"
	}
}

// Rank clamps the priority into Low..High. Anything below Low ranks as Low
// and anything above High ranks as High.
func (p Priority) Rank() Priority {
	if p < PriorityLow {
		return PriorityLow
	}
	if p > PriorityHigh {
		return PriorityHigh
	}
	return p
}

// ParsePriority accepts the names used on the command line
func ParsePriority(s string) (Priority, bool) {
	switch s {
	case "low", "l", "1":
		return PriorityLow, true
	case "medium", "med", "m", "2":
		return PriorityMedium, true
	case "high", "hi", "h", "3":
		return PriorityHigh, true
	}
	return 0, false
}

// Item represents a single piece of work inside a project
type Item struct {
	ID           string     `json:"id"`
	ProjectID    *string    `json:"project_id,omitempty"`
	Title        *string    `json:"title,omitempty"`
	Detail       *string    `json:"detail,omitempty"`
	CreationDate *time.Time `json:"creation_date,omitempty"`
	Priority     Priority   `json:"priority"`
	Completed    bool       `json:"completed"`
}

// ItemTitle returns the title, or the placeholder if none is set
func (i *Item) ItemTitle() string {
	if i.Title == nil {
		return i18n.Sprintf(i18n.KeyNewItem)
	}
	return *i.Title
}

// ItemDetail returns the detail text, or an empty string
func (i *Item) ItemDetail() string {
	if i.Detail == nil {
		return ""
	}
	return *i.Detail
}

// ItemCreationDate returns the creation date, or the current time if unset
func (i *Item) ItemCreationDate() time.Time {
	if i.CreationDate == nil {
		return time.Now()
	}
	return *i.CreationDate
}

// BelongsTo reports whether the item's back-reference points at projectID
func (i *Item) BelongsTo(projectID string) bool {
	return i.ProjectID != nil && *i.ProjectID == projectID
}
