// Package tracker is the query and command surface the front end talks to.
// It derives per-project figures from the store on demand and never caches
// them.
package tracker

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/dori/portfolio/internal/awards"
	"github.com/dori/portfolio/internal/model"
	"github.com/dori/portfolio/internal/sorting"
	"github.com/dori/portfolio/internal/store"
)

// Tracker ties the store to the award catalog
type Tracker struct {
	store   *store.Store
	catalog *awards.Catalog
	logger  *slog.Logger
	now     func() time.Time
}

// New creates a tracker over s. The catalog must already be validated.
func New(s *store.Store, catalog *awards.Catalog) *Tracker {
	return &Tracker{
		store:   s,
		catalog: catalog,
		logger:  s.Logger(),
		now:     time.Now,
	}
}

// Store returns the underlying store
func (t *Tracker) Store() *store.Store {
	return t.store
}

// Catalog returns the award catalog
func (t *Tracker) Catalog() *awards.Catalog {
	return t.catalog
}

// ListProjects returns open or closed projects, newest first
func (t *Tracker) ListProjects(closed bool) []model.Project {
	res := t.store.FetchProjects(store.ProjectQuery{
		Where: store.ProjectsClosed(closed),
		Sort:  []sorting.Descriptor[model.Project]{sorting.ProjectsByCreatedDate(true)},
	})
	if res.Degraded() {
		t.logger.Warn("failed to list projects", "error", res.Err)
	}
	return res.Value
}

// HomeProjects returns open projects ordered by title
func (t *Tracker) HomeProjects() []model.Project {
	res := t.store.FetchProjects(store.ProjectQuery{
		Where: store.ProjectsClosed(false),
		Sort:  []sorting.Descriptor[model.Project]{sorting.ProjectsByTitle()},
	})
	if res.Degraded() {
		t.logger.Warn("failed to list home projects", "error", res.Err)
	}
	return res.Value
}

// UpNext returns up to limit incomplete items from open projects, highest
// priority first
func (t *Tracker) UpNext(limit int) []model.Item {
	open := map[string]struct{}{}
	for _, p := range t.ListProjects(false) {
		open[p.ID] = struct{}{}
	}

	res := t.store.FetchItems(store.ItemQuery{
		Where: store.AndItems(store.IncompleteItems, store.ItemsInProjects(open)),
		Sort:  []sorting.Descriptor[model.Item]{sorting.ByPriority()},
		Limit: limit,
	})
	if res.Degraded() {
		t.logger.Warn("failed to fetch upcoming items", "error", res.Err)
	}
	return res.Value
}

// Project looks a project up by id
func (t *Tracker) Project(id string) (model.Project, bool) {
	return t.store.Project(id)
}

// Item looks an item up by id
func (t *Tracker) Item(id string) (model.Item, bool) {
	return t.store.Item(id)
}

// AddProject creates an open project with default values and saves
func (t *Tracker) AddProject() model.Project {
	p := t.store.CreateProject(store.ProjectFields{
		Closed:      false,
		CreatedDate: t.now(),
	})
	t.save()
	return p
}

// AddItem creates an item with default values in p and saves
func (t *Tracker) AddItem(p model.Project) (model.Item, error) {
	created := t.now()
	it, err := t.store.CreateItem(store.ItemFields{
		ProjectID:    &p.ID,
		CreationDate: &created,
		Priority:     model.PriorityMedium,
	})
	if err != nil {
		return model.Item{}, fmt.Errorf("failed to add item: %w", err)
	}
	t.save()
	return it, nil
}

// DeleteItems removes the items at offsets of p's list, as ordered by o, and
// saves. Offsets outside the list are ignored. It returns how many items
// were removed.
func (t *Tracker) DeleteItems(offsets []int, p model.Project, o sorting.Override) int {
	items := t.OrderedItems(p, o)

	removed := 0
	seen := map[int]bool{}
	for _, off := range offsets {
		if off < 0 || off >= len(items) || seen[off] {
			t.logger.Debug("ignoring item offset", "offset", off, "items", len(items))
			continue
		}
		seen[off] = true
		if t.store.Delete(items[off].ID) {
			removed++
		}
	}

	t.save()
	return removed
}

// DeleteProject removes p together with its items and saves
func (t *Tracker) DeleteProject(p model.Project) bool {
	ok := t.store.Delete(p.ID)
	t.save()
	return ok
}

// UpdateProject applies changes to the project with id and saves
func (t *Tracker) UpdateProject(id string, c store.ProjectChanges) bool {
	if c.Color != nil && !model.IsPaletteColor(*c.Color) {
		t.logger.Warn("project color is not in the palette", "color", *c.Color)
	}
	ok := t.store.UpdateProject(id, c)
	t.save()
	return ok
}

// ToggleClosed flips the closed flag of a project and saves
func (t *Tracker) ToggleClosed(id string) bool {
	p, ok := t.store.Project(id)
	if !ok {
		return false
	}
	closed := !p.Closed
	return t.UpdateProject(id, store.ProjectChanges{Closed: &closed})
}

// UpdateItem applies changes to the item with id and saves
func (t *Tracker) UpdateItem(id string, c store.ItemChanges) bool {
	ok := t.store.UpdateItem(id, c)
	t.save()
	return ok
}

// ToggleCompleted flips the completed flag of an item and saves
func (t *Tracker) ToggleCompleted(id string) bool {
	it, ok := t.store.Item(id)
	if !ok {
		return false
	}
	completed := !it.Completed
	return t.UpdateItem(id, store.ItemChanges{Completed: &completed})
}

// ResetSampleData wipes the store and fills it with sample projects
func (t *Tracker) ResetSampleData() {
	if res := t.store.DeleteAll(); res.Degraded() {
		t.logger.Warn("sample reset could not clear stored data", "error", res.Err)
	}
	if res := t.store.CreateSampleData(); res.Degraded() {
		t.logger.Warn("sample data was not saved", "error", res.Err)
	}
}

// HasEarned reports whether award is currently earned
func (t *Tracker) HasEarned(award model.Award) bool {
	return awards.HasEarned(award, t.store)
}

// Awards returns every award with its earned state, in catalog order
func (t *Tracker) Awards() []awards.Status {
	return t.catalog.Evaluate(t.store)
}

// EarnedCount returns how many awards are currently earned
func (t *Tracker) EarnedCount() int {
	return len(slices.DeleteFunc(t.Awards(), func(s awards.Status) bool { return !s.Earned }))
}

// save commits pending changes. Failures are already logged by the store and
// never reach the caller.
func (t *Tracker) save() {
	_ = t.store.Save()
}
