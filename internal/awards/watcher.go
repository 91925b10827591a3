package awards

import (
	"log/slog"

	"github.com/dori/portfolio/internal/model"
	"github.com/dori/portfolio/internal/notify"
)

// Announcer is told about awards as they are unlocked
type Announcer interface {
	SendAwardUnlocked(model.Award) error
}

// Watcher re-evaluates the catalog after every committed change and
// announces awards that went from locked to earned
type Watcher struct {
	catalog   *Catalog
	counter   Counter
	announcer Announcer
	logger    *slog.Logger
	earned    map[string]bool
	stop      func()
}

// Watch subscribes a watcher to bus. Awards already earned at this point are
// not announced.
func Watch(bus *notify.Bus, catalog *Catalog, counter Counter, announcer Announcer, logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	w := &Watcher{
		catalog:   catalog,
		counter:   counter,
		announcer: announcer,
		logger:    logger,
		earned:    catalog.Earned(counter),
	}
	w.stop = bus.Subscribe(w.handle)
	return w
}

func (w *Watcher) handle(notify.Change) {
	now := w.catalog.Earned(w.counter)
	for _, a := range w.catalog.awards {
		if now[a.Name] && !w.earned[a.Name] {
			if err := w.announcer.SendAwardUnlocked(a); err != nil {
				w.logger.Warn("failed to announce award", "award", a.Name, "error", err)
			}
		}
	}
	w.earned = now
}

// Close stops watching
func (w *Watcher) Close() {
	w.stop()
}
