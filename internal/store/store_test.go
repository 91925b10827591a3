package store

import (
	"errors"
	"math/rand/v2"
	"path/filepath"
	"testing"
	"time"

	"github.com/dori/portfolio/internal/db"
	"github.com/dori/portfolio/internal/model"
	"github.com/dori/portfolio/internal/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

// stepClock returns a clock that advances one second per call
func stepClock() func() time.Time {
	t := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func newTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	opts = append([]Option{WithClock(stepClock()), WithRand(rand.New(rand.NewPCG(1, 2)))}, opts...)
	s, err := NewMemory(opts...)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// fakeBackend records commits and fails on demand
type fakeBackend struct {
	fail    bool
	commits []db.Changeset
	closed  bool
}

func (f *fakeBackend) Load() ([]model.Project, []model.Item, error) { return nil, nil, nil }

func (f *fakeBackend) Commit(cs db.Changeset) error {
	if f.fail {
		return errors.New("disk full")
	}
	f.commits = append(f.commits, cs)
	return nil
}

func (f *fakeBackend) Close() error {
	f.closed = true
	return nil
}

func TestCreatingProjectsAndItems(t *testing.T) {
	s := newTestStore(t)
	const target = 10

	for i := 0; i < target; i++ {
		p := s.CreateProject(ProjectFields{})
		for j := 0; j < target; j++ {
			_, err := s.CreateItem(ItemFields{ProjectID: &p.ID})
			require.NoError(t, err)
		}
	}

	// Counts see pending changes before Save
	assert.Equal(t, target, s.CountProjects(AllProjects).Value)
	assert.Equal(t, target*target, s.CountItems(AllItems).Value)

	res := s.Save()
	require.NoError(t, res.Err)
	assert.Equal(t, target+target*target, res.Changes)
	assert.False(t, s.HasChanges())
}

func TestProjectRoundTrip(t *testing.T) {
	s := newTestStore(t)
	created := time.Date(2023, 5, 6, 7, 8, 9, 0, time.UTC)

	p := s.CreateProject(ProjectFields{
		Title:       ptr("Garden"),
		Detail:      ptr("Plant the beds"),
		Color:       ptr("Green"),
		Closed:      true,
		CreatedDate: created,
	})
	require.NoError(t, s.Save().Err)

	got, ok := s.Project(p.ID)
	require.True(t, ok)
	assert.Equal(t, "Garden", got.ProjectTitle())
	assert.Equal(t, "Plant the beds", got.ProjectDetail())
	assert.Equal(t, "Green", got.ProjectColor())
	assert.True(t, got.Closed)
	assert.True(t, created.Equal(got.CreatedDate))
	assert.Equal(t, p, got)
}

func TestDefaultsForUnsetFields(t *testing.T) {
	s := newTestStore(t)
	p := s.CreateProject(ProjectFields{})
	it, err := s.CreateItem(ItemFields{ProjectID: &p.ID})
	require.NoError(t, err)

	assert.Equal(t, "New Project", p.ProjectTitle())
	assert.Equal(t, "", p.ProjectDetail())
	assert.Equal(t, model.DefaultProjectColor, p.ProjectColor())
	assert.False(t, p.Closed)
	assert.False(t, p.CreatedDate.IsZero())

	assert.Equal(t, "New Item", it.ItemTitle())
	assert.Equal(t, "", it.ItemDetail())
	assert.WithinDuration(t, time.Now(), it.ItemCreationDate(), time.Minute)
	assert.False(t, it.Completed)
}

func TestReturnedRecordsAreCopies(t *testing.T) {
	s := newTestStore(t)
	p := s.CreateProject(ProjectFields{Title: ptr("Original")})

	*p.Title = "Changed outside"
	got, _ := s.Project(p.ID)
	assert.Equal(t, "Original", got.ProjectTitle())
}

func TestCreateItemInMissingProject(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateItem(ItemFields{ProjectID: ptr("nope")})
	require.ErrorIs(t, err, ErrProjectNotFound)
	assert.Equal(t, 0, s.CountItems(AllItems).Value)

	orphan, err := s.CreateItem(ItemFields{})
	require.NoError(t, err)
	assert.Nil(t, orphan.ProjectID)
	assert.Equal(t, 1, s.CountItems(AllItems).Value)
}

func TestUpdateMissingRecordIsNoOp(t *testing.T) {
	s := newTestStore(t)

	assert.False(t, s.UpdateProject("missing", ProjectChanges{Title: ptr("x")}))
	assert.False(t, s.UpdateItem("missing", ItemChanges{Completed: ptr(true)}))
	assert.False(t, s.Delete("missing"))
	assert.False(t, s.HasChanges())
	assert.Equal(t, 0, s.CountProjects(AllProjects).Value)
}

func TestUpdateAppliesOnlyGivenFields(t *testing.T) {
	s := newTestStore(t)
	p := s.CreateProject(ProjectFields{Title: ptr("Keep"), Color: ptr("Red")})
	it, err := s.CreateItem(ItemFields{ProjectID: &p.ID, Title: ptr("Task"), Priority: model.PriorityLow})
	require.NoError(t, err)
	require.NoError(t, s.Save().Err)

	require.True(t, s.UpdateProject(p.ID, ProjectChanges{Closed: ptr(true)}))
	require.True(t, s.UpdateItem(it.ID, ItemChanges{Priority: ptr(model.PriorityHigh), Completed: ptr(true)}))
	assert.True(t, s.HasChanges())

	gotP, _ := s.Project(p.ID)
	assert.Equal(t, "Keep", gotP.ProjectTitle())
	assert.Equal(t, "Red", gotP.ProjectColor())
	assert.True(t, gotP.Closed)

	gotI, _ := s.Item(it.ID)
	assert.Equal(t, "Task", gotI.ItemTitle())
	assert.Equal(t, model.PriorityHigh, gotI.Priority)
	assert.True(t, gotI.Completed)
}

func TestDeletingProjectCascadeDeletesItems(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.CreateSampleData().Err)

	projects := s.FetchProjects(ProjectQuery{}).Value
	require.Len(t, projects, 5)
	victim := projects[0]
	itemIDs := []string{}
	for _, it := range s.ItemsOf(victim.ID) {
		itemIDs = append(itemIDs, it.ID)
	}
	require.Len(t, itemIDs, 10)

	require.True(t, s.Delete(victim.ID))
	require.NoError(t, s.Save().Err)

	assert.Equal(t, 4, s.CountProjects(AllProjects).Value)
	assert.Equal(t, 40, s.CountItems(AllItems).Value)
	assert.Empty(t, s.ItemsOf(victim.ID))
	assert.NotNil(t, s.ItemsOf(victim.ID))

	all := s.FetchItems(ItemQuery{}).Value
	for _, it := range all {
		assert.NotContains(t, itemIDs, it.ID)
	}
}

func TestSampleDataCreationWorks(t *testing.T) {
	s := newTestStore(t)
	res := s.CreateSampleData()
	require.NoError(t, res.Err)

	assert.Equal(t, 5, s.CountProjects(AllProjects).Value)
	assert.Equal(t, 50, s.CountItems(AllItems).Value)

	for _, it := range s.FetchItems(ItemQuery{}).Value {
		assert.GreaterOrEqual(t, int(it.Priority), 1)
		assert.LessOrEqual(t, int(it.Priority), 3)
		assert.NotNil(t, it.ProjectID)
	}
}

func TestDeleteAllClearsEverything(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.CreateSampleData().Err)

	res := s.DeleteAll()
	require.NoError(t, res.Err)
	assert.Equal(t, 55, res.Changes)

	assert.Equal(t, 0, s.CountProjects(AllProjects).Value)
	assert.Equal(t, 0, s.CountItems(AllItems).Value)
	assert.False(t, s.HasChanges())
}

func TestSaveWithoutChangesIsNoOp(t *testing.T) {
	backend := &fakeBackend{}
	s, err := New(backend)
	require.NoError(t, err)

	published := 0
	s.Bus().Subscribe(func(notify.Change) { published++ })

	res := s.Save()
	assert.Equal(t, 0, res.Changes)
	assert.False(t, res.Degraded())
	assert.Empty(t, backend.commits)
	assert.Equal(t, 0, published)
}

func TestSaveFailureKeepsChangesForRetry(t *testing.T) {
	backend := &fakeBackend{fail: true}
	s, err := New(backend)
	require.NoError(t, err)

	p := s.CreateProject(ProjectFields{Title: ptr("Stays")})

	res := s.Save()
	require.True(t, res.Degraded())
	assert.Equal(t, 1, res.Changes)

	// The in-memory graph stays authoritative
	got, ok := s.Project(p.ID)
	require.True(t, ok)
	assert.Equal(t, "Stays", got.ProjectTitle())
	assert.True(t, s.HasChanges())

	backend.fail = false
	res = s.Save()
	require.NoError(t, res.Err)
	require.Len(t, backend.commits, 1)
	require.Len(t, backend.commits[0].Projects, 1)
	assert.Equal(t, p.ID, backend.commits[0].Projects[0].ID)
	assert.False(t, s.HasChanges())
}

func TestSavePublishesBeforeReturning(t *testing.T) {
	s := newTestStore(t)
	p := s.CreateProject(ProjectFields{})
	_, err := s.CreateItem(ItemFields{ProjectID: &p.ID, Completed: true})
	require.NoError(t, err)

	var order []string
	var seen notify.Change
	s.Bus().Subscribe(func(c notify.Change) {
		order = append(order, "first")
		seen = c
		// A subscriber reads the committed state
		assert.Equal(t, 1, s.CountItems(CompletedItems).Value)
		assert.False(t, s.HasChanges())
	})
	s.Bus().Subscribe(func(notify.Change) { order = append(order, "second") })

	s.Save()

	assert.Equal(t, []string{"first", "second"}, order)
	assert.Equal(t, uint64(1), seen.Seq)
	assert.True(t, seen.Touches(p.ID))
	assert.Len(t, seen.Items, 1)
}

func TestDeleteAllPublishesReset(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.CreateSampleData().Err)

	var last notify.Change
	s.Bus().Subscribe(func(c notify.Change) { last = c })
	s.DeleteAll()

	assert.True(t, last.Reset)
	assert.Len(t, last.Deleted, 55)
}

func TestClosedStoreDegradesQueries(t *testing.T) {
	backend := &fakeBackend{}
	s, err := New(backend)
	require.NoError(t, err)
	p := s.CreateProject(ProjectFields{})
	require.NoError(t, s.Save().Err)
	require.NoError(t, s.Close())
	assert.True(t, backend.closed)

	count := s.CountProjects(AllProjects)
	assert.Equal(t, 0, count.Value)
	assert.ErrorIs(t, count.Err, ErrClosed)
	assert.True(t, count.Degraded())

	items := s.FetchItems(ItemQuery{})
	assert.NotNil(t, items.Value)
	assert.Empty(t, items.Value)
	assert.ErrorIs(t, items.Err, ErrClosed)

	_, ok := s.Project(p.ID)
	assert.False(t, ok)
	assert.NotNil(t, s.ItemsOf(p.ID))
}

func TestFetchFiltersSortsAndLimits(t *testing.T) {
	s := newTestStore(t)
	p := s.CreateProject(ProjectFields{})
	for i, prio := range []model.Priority{model.PriorityLow, model.PriorityHigh, model.PriorityMedium, model.PriorityHigh} {
		_, err := s.CreateItem(ItemFields{
			ProjectID: &p.ID,
			Title:     ptr(string(rune('a' + i))),
			Priority:  prio,
			Completed: i == 3,
		})
		require.NoError(t, err)
	}

	res := s.FetchItems(ItemQuery{Where: IncompleteItems, Limit: 2})
	require.NoError(t, res.Err)
	require.Len(t, res.Value, 2)
	assert.Equal(t, "b", res.Value[0].ItemTitle())
	assert.Equal(t, "c", res.Value[1].ItemTitle())

	assert.Equal(t, 1, s.CountItems(CompletedItems).Value)
	assert.Equal(t, 4, s.CountItems(ItemsInProject(p.ID)).Value)
	assert.Equal(t, 0, s.CountItems(ItemsInProjects(map[string]struct{}{})).Value)
}

func TestListProjectsByClosedState(t *testing.T) {
	s := newTestStore(t)
	older := s.CreateProject(ProjectFields{})
	newer := s.CreateProject(ProjectFields{})
	s.CreateProject(ProjectFields{Closed: true})

	open := s.FetchProjects(ProjectQuery{Where: ProjectsClosed(false)}).Value
	require.Len(t, open, 2)
	assert.Equal(t, newer.ID, open[0].ID)
	assert.Equal(t, older.ID, open[1].ID)
	assert.Equal(t, 1, s.CountProjects(ProjectsClosed(true)).Value)
}

func TestDurableStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.db")

	s, err := Open(Options{Mode: ModeDurable, Path: path}, WithClock(stepClock()))
	require.NoError(t, err)
	p := s.CreateProject(ProjectFields{Title: ptr("Persisted"), Color: ptr("Teal")})
	_, err = s.CreateItem(ItemFields{ProjectID: &p.ID, Title: ptr("One"), Priority: model.PriorityHigh, Completed: true})
	require.NoError(t, err)
	_, err = s.CreateItem(ItemFields{ProjectID: &p.ID})
	require.NoError(t, err)
	require.NoError(t, s.Save().Err)
	require.NoError(t, s.Close())

	reopened, err := Open(Options{Mode: ModeDurable, Path: path})
	require.NoError(t, err)
	defer reopened.Close()

	got, ok := reopened.Project(p.ID)
	require.True(t, ok)
	assert.Equal(t, "Persisted", got.ProjectTitle())
	assert.Equal(t, "Teal", got.ProjectColor())
	assert.True(t, p.CreatedDate.Equal(got.CreatedDate))

	items := reopened.ItemsOf(p.ID)
	require.Len(t, items, 2)
	assert.Equal(t, 1, reopened.CountItems(CompletedItems).Value)

	// Deleting the project cascades in the database too
	reopened.Delete(p.ID)
	require.NoError(t, reopened.Save().Err)
	require.NoError(t, reopened.Close())

	again, err := Open(Options{Mode: ModeDurable, Path: path})
	require.NoError(t, err)
	defer again.Close()
	assert.Equal(t, 0, again.CountProjects(AllProjects).Value)
	assert.Equal(t, 0, again.CountItems(AllItems).Value)
}

func TestMemoryStoresAreIsolated(t *testing.T) {
	a := newTestStore(t)
	b := newTestStore(t)

	a.CreateProject(ProjectFields{})
	require.NoError(t, a.Save().Err)

	assert.Equal(t, 1, a.CountProjects(AllProjects).Value)
	assert.Equal(t, 0, b.CountProjects(AllProjects).Value)
}
