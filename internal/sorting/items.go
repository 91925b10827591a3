package sorting

import (
	"cmp"
	"fmt"
	"strings"
	"time"

	"github.com/dori/portfolio/internal/model"
)

// Override replaces the default item ordering with a single key
type Override int

const (
	OverrideNone Override = iota
	OverrideCreationDate
	OverrideTitle
)

// String returns the command line name of the override
func (o Override) String() string {
	switch o {
	case OverrideCreationDate:
		return "created"
	case OverrideTitle:
		return "title"
	default:
		return "default"
	}
}

// ParseOverride parses the command line name of an override
func ParseOverride(s string) (Override, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default", "optimized":
		return OverrideNone, nil
	case "created", "date", "creation":
		return OverrideCreationDate, nil
	case "title", "name":
		return OverrideTitle, nil
	}
	return OverrideNone, fmt.Errorf("unknown sort order %q", s)
}

// ByCompletion puts incomplete items before completed ones
func ByCompletion() Descriptor[model.Item] {
	return Descriptor[model.Item]{
		Key: "completed",
		Compare: func(a, b model.Item) int {
			return cmp.Compare(boolRank(a.Completed), boolRank(b.Completed))
		},
	}
}

// ByPriority puts higher priorities first
func ByPriority() Descriptor[model.Item] {
	return Descriptor[model.Item]{
		Key: "priority",
		Compare: func(a, b model.Item) int {
			return cmp.Compare(a.Priority.Rank(), b.Priority.Rank())
		},
		Descending: true,
	}
}

// ByCreationDate puts earlier items first. Items without a creation date read
// as "now", captured once when the descriptor is built so every comparison
// in one sort agrees.
func ByCreationDate() Descriptor[model.Item] {
	now := time.Now()
	return Descriptor[model.Item]{
		Key: "creationDate",
		Compare: func(a, b model.Item) int {
			return creationDate(a, now).Compare(creationDate(b, now))
		},
	}
}

// ByTitle orders items by title
func ByTitle() Descriptor[model.Item] {
	return Descriptor[model.Item]{
		Key: "title",
		Compare: func(a, b model.Item) int {
			return strings.Compare(a.ItemTitle(), b.ItemTitle())
		},
	}
}

// Default is the canonical item order: incomplete first, then higher
// priority, then oldest.
func Default() []Descriptor[model.Item] {
	return []Descriptor[model.Item]{ByCompletion(), ByPriority(), ByCreationDate()}
}

// ItemDescriptors returns the descriptors for an override. Anything other
// than OverrideNone sorts on exactly one key.
func ItemDescriptors(o Override) []Descriptor[model.Item] {
	switch o {
	case OverrideCreationDate:
		return []Descriptor[model.Item]{ByCreationDate()}
	case OverrideTitle:
		return []Descriptor[model.Item]{ByTitle()}
	default:
		return Default()
	}
}

// Items returns a sorted copy of items under the given override
func Items(items []model.Item, o Override) []model.Item {
	return Sorted(items, ItemDescriptors(o)...)
}

func creationDate(it model.Item, now time.Time) time.Time {
	if it.CreationDate == nil {
		return now
	}
	return *it.CreationDate
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
