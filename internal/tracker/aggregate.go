package tracker

import (
	"github.com/dori/portfolio/internal/i18n"
	"github.com/dori/portfolio/internal/model"
	"github.com/dori/portfolio/internal/sorting"
)

// ItemsOf returns every item of p. It is empty, never nil, for a project
// without items.
func (t *Tracker) ItemsOf(p model.Project) []model.Item {
	return t.store.ItemsOf(p.ID)
}

// CompletionRatio is completed/total for p's items, or 0 when it has none.
// It is recomputed from the store on every call.
func (t *Tracker) CompletionRatio(p model.Project) float64 {
	return completion(t.ItemsOf(p))
}

// OrderedItems returns p's items in the default order, or by the single key
// the override names
func (t *Tracker) OrderedItems(p model.Project, o sorting.Override) []model.Item {
	return sorting.Items(t.ItemsOf(p), o)
}

// SummaryLabel describes p for accessible presentation
func (t *Tracker) SummaryLabel(p model.Project) string {
	items := t.ItemsOf(p)
	return summaryLabel(p, len(items), completion(items))
}

// ProjectSummary is a project together with its derived figures
type ProjectSummary struct {
	Project    model.Project
	ItemCount  int
	Completion float64
	Label      string
}

// Summarize computes the derived figures of p
func (t *Tracker) Summarize(p model.Project) ProjectSummary {
	items := t.ItemsOf(p)
	ratio := completion(items)
	return ProjectSummary{
		Project:    p,
		ItemCount:  len(items),
		Completion: ratio,
		Label:      summaryLabel(p, len(items), ratio),
	}
}

func completion(items []model.Item) float64 {
	if len(items) == 0 {
		return 0
	}
	done := 0
	for _, it := range items {
		if it.Completed {
			done++
		}
	}
	return float64(done) / float64(len(items))
}

func summaryLabel(p model.Project, count int, ratio float64) string {
	return i18n.Sprintf(i18n.KeyProjectSummary, p.ProjectTitle(), count, ratio*100)
}
