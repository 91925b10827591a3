package store

import (
	"github.com/dori/portfolio/internal/model"
	"github.com/dori/portfolio/internal/sorting"
)

// ProjectPredicate selects projects
type ProjectPredicate func(model.Project) bool

// ItemPredicate selects items
type ItemPredicate func(model.Item) bool

// AllProjects matches every project
func AllProjects(model.Project) bool { return true }

// ProjectsClosed matches projects whose closed flag equals closed
func ProjectsClosed(closed bool) ProjectPredicate {
	return func(p model.Project) bool {
		return p.Closed == closed
	}
}

// AllItems matches every item
func AllItems(model.Item) bool { return true }

// CompletedItems matches completed items
func CompletedItems(it model.Item) bool { return it.Completed }

// IncompleteItems matches items that are not completed
func IncompleteItems(it model.Item) bool { return !it.Completed }

// ItemsInProject matches the items of one project
func ItemsInProject(projectID string) ItemPredicate {
	return func(it model.Item) bool {
		return it.BelongsTo(projectID)
	}
}

// ItemsInProjects matches items belonging to any project in ids
func ItemsInProjects(ids map[string]struct{}) ItemPredicate {
	return func(it model.Item) bool {
		if it.ProjectID == nil {
			return false
		}
		_, ok := ids[*it.ProjectID]
		return ok
	}
}

// AndItems matches items satisfying every predicate
func AndItems(preds ...ItemPredicate) ItemPredicate {
	return func(it model.Item) bool {
		for _, p := range preds {
			if !p(it) {
				return false
			}
		}
		return true
	}
}

// ProjectQuery describes a project fetch. A nil Where matches everything, a
// nil Sort lists newest first and a Limit of 0 means no limit.
type ProjectQuery struct {
	Where ProjectPredicate
	Sort  []sorting.Descriptor[model.Project]
	Limit int
}

// ItemQuery describes an item fetch. A nil Sort uses the default item order.
type ItemQuery struct {
	Where ItemPredicate
	Sort  []sorting.Descriptor[model.Item]
	Limit int
}

func limit[T any](xs []T, n int) []T {
	if n > 0 && len(xs) > n {
		return xs[:n]
	}
	return xs
}
