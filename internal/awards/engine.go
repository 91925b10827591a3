package awards

import (
	"github.com/dori/portfolio/internal/model"
	"github.com/dori/portfolio/internal/store"
)

// Counter is the part of the store award evaluation reads
type Counter interface {
	CountItems(store.ItemPredicate) store.Result[int]
}

// HasEarned reports whether the store's current global counts meet the
// award's threshold. Awards with a criterion this build does not know are
// never earned.
func HasEarned(award model.Award, counter Counter) bool {
	switch award.Criterion.(type) {
	case model.ItemCount:
		return counter.CountItems(store.AllItems).Value >= award.Value
	case model.CompletedCount:
		return counter.CountItems(store.CompletedItems).Value >= award.Value
	default:
		return false
	}
}

// Status pairs an award with whether it is currently earned
type Status struct {
	Award  model.Award
	Earned bool
}

// Evaluate checks every award in catalog order
func (c *Catalog) Evaluate(counter Counter) []Status {
	out := make([]Status, len(c.awards))
	for i, a := range c.awards {
		out[i] = Status{Award: a, Earned: HasEarned(a, counter)}
	}
	return out
}

// Earned returns the names of the awards currently earned
func (c *Catalog) Earned(counter Counter) map[string]bool {
	out := make(map[string]bool)
	for _, a := range c.awards {
		if HasEarned(a, counter) {
			out[a.Name] = true
		}
	}
	return out
}
