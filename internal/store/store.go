// Package store holds the project/item graph in memory and writes it through
// to a backend in atomic batches.
//
// Commands (create, update, delete) change the in-memory graph immediately
// and queue the change; Save commits everything queued as one transaction and
// then announces it on the bus. Queries read the in-memory graph, so they see
// queued changes before they are saved.
//
// A Store is confined to the goroutine that owns it and uses no locks.
package store

import (
	"fmt"
	"log/slog"
	"maps"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/dori/portfolio/internal/db"
	"github.com/dori/portfolio/internal/model"
	"github.com/dori/portfolio/internal/notify"
	"github.com/dori/portfolio/internal/sorting"
	"github.com/google/uuid"
)

// Backend persists committed changesets
type Backend interface {
	Load() ([]model.Project, []model.Item, error)
	Commit(db.Changeset) error
	Close() error
}

// Mode selects the storage medium
type Mode int

const (
	// ModeDurable keeps data in a database file
	ModeDurable Mode = iota
	// ModeMemory keeps data only for the life of the process
	ModeMemory
)

// String returns the mode name
func (m Mode) String() string {
	if m == ModeMemory {
		return "memory"
	}
	return "durable"
}

// Options configures Open
type Options struct {
	Mode Mode
	// Path is the database file for ModeDurable
	Path string
}

// Option customizes a Store
type Option func(*Store)

// WithLogger sets the logger used for swallowed failures
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock replaces time.Now for created timestamps
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithBus publishes committed changes on bus
func WithBus(bus *notify.Bus) Option {
	return func(s *Store) {
		if bus != nil {
			s.bus = bus
		}
	}
}

// WithRand sets the random source used for sample data
func WithRand(r *rand.Rand) Option {
	return func(s *Store) {
		if r != nil {
			s.rng = r
		}
	}
}

// ProjectFields are the caller-supplied fields of a new project
type ProjectFields struct {
	Title       *string
	Detail      *string
	Color       *string
	Closed      bool
	CreatedDate time.Time // zero means now
}

// ItemFields are the caller-supplied fields of a new item
type ItemFields struct {
	ProjectID    *string
	Title        *string
	Detail       *string
	CreationDate *time.Time
	Priority     model.Priority
	Completed    bool
}

// ProjectChanges lists project fields to overwrite; nil fields are left alone
type ProjectChanges struct {
	Title  *string
	Detail *string
	Color  *string
	Closed *bool
}

// ItemChanges lists item fields to overwrite; nil fields are left alone
type ItemChanges struct {
	Title        *string
	Detail       *string
	CreationDate *time.Time
	Priority     *model.Priority
	Completed    *bool
}

type idSet map[string]struct{}

// Store is the transactional container for projects and items
type Store struct {
	backend Backend
	bus     *notify.Bus
	logger  *slog.Logger
	now     func() time.Time
	rng     *rand.Rand

	projects map[string]*model.Project
	items    map[string]*model.Item
	// index maps a project id to the ids of the items that reference it
	index map[string]idSet

	dirtyProjects   idSet
	dirtyItems      idSet
	deletedProjects idSet
	deletedItems    idSet
	touched         idSet
	reset           bool

	closed bool
}

// Open creates the backend for opts.Mode and loads a store from it
func Open(opts Options, options ...Option) (*Store, error) {
	var (
		backend *db.DB
		err     error
	)
	switch opts.Mode {
	case ModeMemory:
		backend, err = db.OpenMemory()
	default:
		path := opts.Path
		if path == "" {
			path = db.DefaultDBPath()
		}
		backend, err = db.Open(path)
	}
	if err != nil {
		return nil, err
	}

	s, err := New(backend, options...)
	if err != nil {
		backend.Close()
		return nil, err
	}
	return s, nil
}

// NewMemory opens a throwaway store, for tests and previews
func NewMemory(options ...Option) (*Store, error) {
	return Open(Options{Mode: ModeMemory}, options...)
}

// New loads every record from backend into a new store
func New(backend Backend, options ...Option) (*Store, error) {
	s := &Store{
		backend:         backend,
		bus:             notify.NewBus(),
		logger:          slog.New(slog.DiscardHandler),
		now:             time.Now,
		rng:             rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
		projects:        map[string]*model.Project{},
		items:           map[string]*model.Item{},
		index:           map[string]idSet{},
		dirtyProjects:   idSet{},
		dirtyItems:      idSet{},
		deletedProjects: idSet{},
		deletedItems:    idSet{},
		touched:         idSet{},
	}
	for _, opt := range options {
		opt(s)
	}

	projects, items, err := backend.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load store: %w", err)
	}
	for i := range projects {
		p := projects[i]
		s.projects[p.ID] = &p
	}
	for i := range items {
		it := items[i]
		if it.ProjectID != nil {
			if _, ok := s.projects[*it.ProjectID]; !ok {
				s.logger.Warn("item references missing project, treating as orphan",
					"item", it.ID, "project", *it.ProjectID)
				it.ProjectID = nil
			}
		}
		s.items[it.ID] = &it
		s.link(&it)
	}

	return s, nil
}

// Bus returns the bus committed changes are published on
func (s *Store) Bus() *notify.Bus {
	return s.bus
}

// Logger returns the store's logger
func (s *Store) Logger() *slog.Logger {
	return s.logger
}

// CreateProject adds a project to the graph. It is persisted by the next Save.
func (s *Store) CreateProject(f ProjectFields) model.Project {
	created := f.CreatedDate
	if created.IsZero() {
		created = s.now()
	}

	p := &model.Project{
		ID:          uuid.New().String(),
		Title:       cloneString(f.Title),
		Detail:      cloneString(f.Detail),
		Color:       cloneString(f.Color),
		CreatedDate: created,
		Closed:      f.Closed,
	}
	s.projects[p.ID] = p
	s.dirtyProjects[p.ID] = struct{}{}
	s.touched[p.ID] = struct{}{}

	return cloneProject(p)
}

// CreateItem adds an item to the graph. A non-nil ProjectID must name a
// project in the store.
func (s *Store) CreateItem(f ItemFields) (model.Item, error) {
	if f.ProjectID != nil {
		if _, ok := s.projects[*f.ProjectID]; !ok {
			return model.Item{}, fmt.Errorf("create item in %s: %w", *f.ProjectID, ErrProjectNotFound)
		}
	}

	it := &model.Item{
		ID:           uuid.New().String(),
		ProjectID:    cloneString(f.ProjectID),
		Title:        cloneString(f.Title),
		Detail:       cloneString(f.Detail),
		CreationDate: cloneTime(f.CreationDate),
		Priority:     f.Priority,
		Completed:    f.Completed,
	}
	s.items[it.ID] = it
	s.link(it)
	s.dirtyItems[it.ID] = struct{}{}
	if it.ProjectID != nil {
		s.touched[*it.ProjectID] = struct{}{}
	}

	return cloneItem(it), nil
}

// UpdateProject applies changes to a project. It reports false, and does
// nothing, when the project does not exist.
func (s *Store) UpdateProject(id string, c ProjectChanges) bool {
	p, ok := s.projects[id]
	if !ok {
		s.logger.Debug("update of missing project ignored", "project", id)
		return false
	}

	if c.Title != nil {
		p.Title = cloneString(c.Title)
	}
	if c.Detail != nil {
		p.Detail = cloneString(c.Detail)
	}
	if c.Color != nil {
		p.Color = cloneString(c.Color)
	}
	if c.Closed != nil {
		p.Closed = *c.Closed
	}
	s.dirtyProjects[id] = struct{}{}
	s.touched[id] = struct{}{}
	return true
}

// UpdateItem applies changes to an item. It reports false, and does nothing,
// when the item does not exist.
func (s *Store) UpdateItem(id string, c ItemChanges) bool {
	it, ok := s.items[id]
	if !ok {
		s.logger.Debug("update of missing item ignored", "item", id)
		return false
	}

	if c.Title != nil {
		it.Title = cloneString(c.Title)
	}
	if c.Detail != nil {
		it.Detail = cloneString(c.Detail)
	}
	if c.CreationDate != nil {
		it.CreationDate = cloneTime(c.CreationDate)
	}
	if c.Priority != nil {
		it.Priority = *c.Priority
	}
	if c.Completed != nil {
		it.Completed = *c.Completed
	}
	s.dirtyItems[id] = struct{}{}
	if it.ProjectID != nil {
		s.touched[*it.ProjectID] = struct{}{}
	}
	return true
}

// Delete removes a project or an item. Deleting a project removes every item
// that references it in the same transaction. Unknown ids are ignored.
func (s *Store) Delete(id string) bool {
	if _, ok := s.projects[id]; ok {
		s.deleteProject(id)
		return true
	}
	if _, ok := s.items[id]; ok {
		s.deleteItem(id)
		return true
	}
	s.logger.Debug("delete of missing record ignored", "id", id)
	return false
}

func (s *Store) deleteProject(id string) {
	for itemID := range s.index[id] {
		s.deleteItem(itemID)
	}
	delete(s.index, id)
	delete(s.projects, id)
	delete(s.dirtyProjects, id)
	delete(s.touched, id)
	s.deletedProjects[id] = struct{}{}
}

func (s *Store) deleteItem(id string) {
	it, ok := s.items[id]
	if !ok {
		return
	}
	s.unlink(it)
	if it.ProjectID != nil {
		if _, live := s.projects[*it.ProjectID]; live {
			s.touched[*it.ProjectID] = struct{}{}
		}
	}
	delete(s.items, id)
	delete(s.dirtyItems, id)
	s.deletedItems[id] = struct{}{}
}

// HasChanges reports whether anything is waiting for Save
func (s *Store) HasChanges() bool {
	return s.reset ||
		len(s.dirtyProjects) > 0 || len(s.dirtyItems) > 0 ||
		len(s.deletedProjects) > 0 || len(s.deletedItems) > 0
}

// Save commits every queued change as one transaction, if there is anything
// to commit. A failed write is logged and reported in the result; the changes
// stay queued so the next Save retries them. Either way the change is
// published on the bus before Save returns, since the in-memory graph already
// reflects it.
func (s *Store) Save() SaveResult {
	if !s.HasChanges() {
		return SaveResult{}
	}
	if s.closed {
		return SaveResult{Err: ErrClosed}
	}

	cs := db.Changeset{}
	for _, id := range sortedIDs(s.dirtyProjects) {
		cs.Projects = append(cs.Projects, *s.projects[id])
	}
	for _, id := range sortedIDs(s.dirtyItems) {
		cs.Items = append(cs.Items, *s.items[id])
	}
	cs.DeletedProjects = sortedIDs(s.deletedProjects)
	cs.DeletedItems = sortedIDs(s.deletedItems)

	changes := len(cs.Projects) + len(cs.Items) + len(cs.DeletedProjects) + len(cs.DeletedItems)
	change := notify.Change{
		Projects: sortedIDs(s.touched),
		Items:    sortedIDs(s.dirtyItems),
		Deleted:  append(slices.Clone(cs.DeletedProjects), cs.DeletedItems...),
		Reset:    s.reset,
	}

	result := SaveResult{Changes: changes}
	if err := s.backend.Commit(cs); err != nil {
		s.logger.Error("failed to save changes", "error", err, "changes", changes)
		result.Err = fmt.Errorf("failed to save changes: %w", err)
	} else {
		s.clearPending()
	}

	s.bus.Publish(change)
	return result
}

func (s *Store) clearPending() {
	clear(s.dirtyProjects)
	clear(s.dirtyItems)
	clear(s.deletedProjects)
	clear(s.deletedItems)
	clear(s.touched)
	s.reset = false
}

// DeleteAll removes every item and then every project, and saves
func (s *Store) DeleteAll() SaveResult {
	for _, id := range sortedIDs(s.items) {
		s.deleteItem(id)
	}
	for _, id := range sortedIDs(s.projects) {
		s.deleteProject(id)
	}
	s.reset = true
	return s.Save()
}

// CountProjects returns how many projects match pred
func (s *Store) CountProjects(pred ProjectPredicate) Result[int] {
	if s.closed {
		return degraded(0, ErrClosed)
	}
	n := 0
	for _, p := range s.projects {
		if pred == nil || pred(*p) {
			n++
		}
	}
	return succeeded(n)
}

// CountItems returns how many items match pred
func (s *Store) CountItems(pred ItemPredicate) Result[int] {
	if s.closed {
		return degraded(0, ErrClosed)
	}
	n := 0
	for _, it := range s.items {
		if pred == nil || pred(*it) {
			n++
		}
	}
	return succeeded(n)
}

// FetchProjects returns the projects selected by q, in order
func (s *Store) FetchProjects(q ProjectQuery) Result[[]model.Project] {
	if s.closed {
		return degraded([]model.Project{}, ErrClosed)
	}

	out := []model.Project{}
	for _, id := range sortedIDs(s.projects) {
		p := s.projects[id]
		if q.Where == nil || q.Where(*p) {
			out = append(out, cloneProject(p))
		}
	}

	ds := q.Sort
	if ds == nil {
		ds = sorting.DefaultProjects()
	}
	sorting.Stable(out, ds...)
	return succeeded(limit(out, q.Limit))
}

// FetchItems returns the items selected by q, in order
func (s *Store) FetchItems(q ItemQuery) Result[[]model.Item] {
	if s.closed {
		return degraded([]model.Item{}, ErrClosed)
	}

	out := []model.Item{}
	for _, id := range sortedIDs(s.items) {
		it := s.items[id]
		if q.Where == nil || q.Where(*it) {
			out = append(out, cloneItem(it))
		}
	}

	ds := q.Sort
	if ds == nil {
		ds = sorting.Default()
	}
	sorting.Stable(out, ds...)
	return succeeded(limit(out, q.Limit))
}

// Project looks up a project by id
func (s *Store) Project(id string) (model.Project, bool) {
	p, ok := s.projects[id]
	if !ok || s.closed {
		return model.Project{}, false
	}
	return cloneProject(p), true
}

// Item looks up an item by id
func (s *Store) Item(id string) (model.Item, bool) {
	it, ok := s.items[id]
	if !ok || s.closed {
		return model.Item{}, false
	}
	return cloneItem(it), true
}

// ItemsOf returns the items that reference projectID, in no particular
// order. The result is never nil.
func (s *Store) ItemsOf(projectID string) []model.Item {
	out := []model.Item{}
	if s.closed {
		return out
	}
	for _, id := range sortedIDs(s.index[projectID]) {
		out = append(out, cloneItem(s.items[id]))
	}
	return out
}

// Close releases the backend. Queries on a closed store return safe defaults.
func (s *Store) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.backend.Close()
}

func (s *Store) link(it *model.Item) {
	if it.ProjectID == nil {
		return
	}
	set, ok := s.index[*it.ProjectID]
	if !ok {
		set = idSet{}
		s.index[*it.ProjectID] = set
	}
	set[it.ID] = struct{}{}
}

func (s *Store) unlink(it *model.Item) {
	if it.ProjectID == nil {
		return
	}
	if set, ok := s.index[*it.ProjectID]; ok {
		delete(set, it.ID)
	}
}

func sortedIDs[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func cloneProject(p *model.Project) model.Project {
	out := *p
	out.Title = cloneString(p.Title)
	out.Detail = cloneString(p.Detail)
	out.Color = cloneString(p.Color)
	return out
}

func cloneItem(it *model.Item) model.Item {
	out := *it
	out.ProjectID = cloneString(it.ProjectID)
	out.Title = cloneString(it.Title)
	out.Detail = cloneString(it.Detail)
	out.CreationDate = cloneTime(it.CreationDate)
	return out
}
