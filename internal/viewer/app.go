package viewer

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/ironsheep/name-list-tools/internal/csvstore"
	"github.com/ironsheep/name-list-tools/internal/logging"
	"github.com/ironsheep/name-list-tools/internal/search"
)

var (
	// ErrSearchInProgress is returned when a search is requested while
	// another one is still running.
	ErrSearchInProgress = errors.New("a search is already in progress")

	// ErrUnknownName is returned when searching for a name that is not in
	// the loaded list.
	ErrUnknownName = errors.New("name is not in the list")
)

// App owns the viewer state.
//
// App is safe for concurrent use. Subscribers are called without the state
// lock held, in registration order, after every state change. Deliveries
// are serialized in state order, so a subscriber must not call methods that
// change App state.
type App struct {
	csvPath  string
	searcher search.Searcher
	logger   *zap.Logger

	mu        sync.Mutex
	names     []string
	status    map[string]Status
	query     string
	result    string
	resultFor string
	message   string
	searching string

	// notifyMu orders snapshot capture and delivery across notify calls.
	notifyMu sync.Mutex

	subMu  sync.Mutex
	subs   map[int]func(Snapshot)
	order  []int
	nextID int
}

// NewApp returns an App reading names from csvPath and searching with
// searcher. The list starts empty; call Load.
func NewApp(csvPath string, searcher search.Searcher, logger *zap.Logger) *App {
	return &App{
		csvPath:  csvPath,
		searcher: searcher,
		logger:   logging.OrNop(logger),
		status:   make(map[string]Status),
		subs:     make(map[int]func(Snapshot)),
	}
}

// Load (re)reads the CSV file. A missing or unreadable file leaves the list
// empty and sets a message; the error is also returned. Search status
// survives reloads.
func (a *App) Load() error {
	list, err := csvstore.Read(a.csvPath)

	a.mu.Lock()
	switch {
	case errors.Is(err, csvstore.ErrNotFound):
		a.names = nil
		a.message = fmt.Sprintf("%s not found!", filepath.Base(a.csvPath))
	case err != nil:
		a.names = nil
		a.message = fmt.Sprintf("Failed to load CSV: %v", err)
	default:
		a.names = list
		a.message = ""
	}
	a.mu.Unlock()

	if err != nil {
		a.logger.Warn("failed to load names", zap.String("path", a.csvPath), zap.Error(err))
	} else {
		a.logger.Info("names loaded", zap.String("path", a.csvPath), zap.Int("count", len(list)))
	}

	a.notify()
	return err
}

// SetQuery replaces the filter query.
func (a *App) SetQuery(q string) {
	a.mu.Lock()
	changed := a.query != q
	a.query = q
	a.mu.Unlock()

	if changed {
		a.notify()
	}
}

// ClearQuery resets the filter so every name is shown.
func (a *App) ClearQuery() {
	a.SetQuery("")
}

// Search submits name to the searcher. On success the result text replaces
// the result pane and the name is marked Searched; on failure only the
// message changes. Only one search runs at a time.
func (a *App) Search(ctx context.Context, name string) (string, error) {
	a.mu.Lock()
	if a.searching != "" {
		a.mu.Unlock()
		return "", ErrSearchInProgress
	}
	if !a.hasName(name) {
		a.mu.Unlock()
		return "", fmt.Errorf("%w: %q", ErrUnknownName, name)
	}
	a.searching = name
	a.message = fmt.Sprintf("Searching for %s...", name)
	a.mu.Unlock()
	a.notify()

	a.logger.Info("search started", zap.String("name", name))
	text, err := a.searcher.Search(ctx, name)

	a.mu.Lock()
	a.searching = ""
	if err != nil {
		a.message = fmt.Sprintf("Search failed: %v", err)
	} else {
		a.result = text
		a.resultFor = name
		a.status[name] = Searched
		a.message = ""
	}
	a.mu.Unlock()
	a.notify()

	if err != nil {
		a.logger.Warn("search failed", zap.String("name", name), zap.Error(err))
		return "", err
	}
	a.logger.Info("search finished", zap.String("name", name), zap.Int("chars", len(text)))
	return text, nil
}

// Status returns the search status of name.
func (a *App) Status(name string) Status {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.status[name]
}

// Snapshot returns a copy of the current state.
func (a *App) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.snapshotLocked()
}

// Subscribe registers fn to be called with a fresh Snapshot after every
// change. The returned function removes the subscription.
func (a *App) Subscribe(fn func(Snapshot)) func() {
	a.subMu.Lock()
	id := a.nextID
	a.nextID++
	a.subs[id] = fn
	a.order = append(a.order, id)
	a.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			a.subMu.Lock()
			delete(a.subs, id)
			for i, v := range a.order {
				if v == id {
					a.order = append(a.order[:i], a.order[i+1:]...)
					break
				}
			}
			a.subMu.Unlock()
		})
	}
}

func (a *App) notify() {
	a.notifyMu.Lock()
	defer a.notifyMu.Unlock()

	snap := a.Snapshot()

	a.subMu.Lock()
	fns := make([]func(Snapshot), 0, len(a.order))
	for _, id := range a.order {
		fns = append(fns, a.subs[id])
	}
	a.subMu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}

func (a *App) hasName(name string) bool {
	for _, n := range a.names {
		if n == name {
			return true
		}
	}
	return false
}

func (a *App) snapshotLocked() Snapshot {
	return Snapshot{
		Source:    a.csvPath,
		Query:     a.query,
		Rows:      BuildRows(a.names, a.status, a.query),
		Total:     len(a.names),
		Result:    a.result,
		ResultFor: a.resultFor,
		Message:   a.message,
		Searching: a.searching,
	}
}
