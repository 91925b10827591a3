package tracker

import (
	"github.com/dori/portfolio/internal/notify"
)

// ProjectsView keeps the summaries of open or closed projects current by
// recomputing them after every committed change
type ProjectsView struct {
	tracker *Tracker
	closed  bool
	stop    func()

	summaries []ProjectSummary
	lastSeq   uint64
	refreshes int
}

// NewProjectsView builds the view and subscribes it to the store's bus
func NewProjectsView(t *Tracker, closed bool) *ProjectsView {
	v := &ProjectsView{tracker: t, closed: closed}
	v.refresh()
	v.stop = t.store.Bus().Subscribe(v.handle)
	return v
}

func (v *ProjectsView) handle(c notify.Change) {
	v.lastSeq = c.Seq
	v.refresh()
}

func (v *ProjectsView) refresh() {
	projects := v.tracker.ListProjects(v.closed)
	summaries := make([]ProjectSummary, 0, len(projects))
	for _, p := range projects {
		summaries = append(summaries, v.tracker.Summarize(p))
	}
	v.summaries = summaries
	v.refreshes++
}

// Summaries returns the current project summaries, newest project first
func (v *ProjectsView) Summaries() []ProjectSummary {
	out := make([]ProjectSummary, len(v.summaries))
	copy(out, v.summaries)
	return out
}

// LastSeq is the sequence number of the last change the view saw
func (v *ProjectsView) LastSeq() uint64 {
	return v.lastSeq
}

// Refreshes counts how many times the view has been recomputed
func (v *ProjectsView) Refreshes() int {
	return v.refreshes
}

// Close unsubscribes the view from the bus
func (v *ProjectsView) Close() {
	if v.stop != nil {
		v.stop()
		v.stop = nil
	}
}
