// Package inventory is the fastener library service: an in-memory item
// repository kept consistent with persistent storage, plus every mutation
// and its audit trail.
package inventory

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/erazemk/fastenerlib/internal/model"
)

// Storage is the persistence collaborator. ImportItems with replace set
// clears the items in the same transaction. ListAudit returns newest first;
// a limit of 0 means all records.
type Storage interface {
	ListItems(ctx context.Context) ([]model.Item, error)
	PutItem(ctx context.Context, it model.Item) error
	DeleteItem(ctx context.Context, article string) error
	ImportItems(ctx context.Context, items []model.Item, replace bool) error
	AppendAudit(ctx context.Context, r model.ChangeRecord) error
	ListAudit(ctx context.Context, limit int) ([]model.ChangeRecord, error)
}

// Library serves queries from a cached copy of the stored items. Mutations
// are serialized; each one persists, records its audit entry and refreshes
// the cache before the next is accepted.
type Library struct {
	store   Storage
	log     *slog.Logger
	metrics *Metrics
	now     func() time.Time
	newID   func() string

	qtyBelowDefault int

	mu    sync.RWMutex
	items []model.Item
}

// Option configures a Library.
type Option func(*Library)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(lib *Library) { lib.log = l }
}

// WithMetrics sets the metrics. The default is an unregistered set.
func WithMetrics(m *Metrics) Option {
	return func(lib *Library) { lib.metrics = m }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(lib *Library) { lib.now = now }
}

// WithQtyBelowDefault sets the threshold used by an enabled quantity filter
// that carries no limit of its own.
func WithQtyBelowDefault(n int) Option {
	return func(lib *Library) { lib.qtyBelowDefault = n }
}

// New loads the current items from store.
func New(ctx context.Context, store Storage, opts ...Option) (*Library, error) {
	lib := &Library{
		store:           store,
		log:             slog.Default(),
		now:             time.Now,
		newID:           uuid.NewString,
		qtyBelowDefault: 10,
	}
	for _, o := range opts {
		o(lib)
	}
	if lib.metrics == nil {
		lib.metrics = NewMetrics(nil)
	}
	if err := lib.Refresh(ctx); err != nil {
		return nil, err
	}
	return lib, nil
}

// Refresh replaces the cache with the stored items. On failure the cache is
// left as it was.
func (l *Library) Refresh(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.reload(ctx)
}

func (l *Library) reload(ctx context.Context) error {
	items, err := l.store.ListItems(ctx)
	if err != nil {
		return storageErr("loading items", err)
	}
	l.items = items
	l.metrics.Items.Set(float64(len(items)))
	return nil
}

// converge brings the cache in line with storage after a successful write.
// If the reload fails the cache is patched with the known change instead.
func (l *Library) converge(ctx context.Context, patch func([]model.Item) []model.Item) {
	if err := l.reload(ctx); err != nil {
		l.log.Warn("reloading items after write failed, patching cache", "error", err)
		l.items = patch(slices.Clone(l.items))
		l.metrics.Items.Set(float64(len(l.items)))
	}
}

func upsert(it model.Item) func([]model.Item) []model.Item {
	return func(items []model.Item) []model.Item {
		for i := range items {
			if items[i].Article == it.Article {
				items[i] = it
				return items
			}
		}
		return append(items, it)
	}
}

func remove(article string) func([]model.Item) []model.Item {
	return func(items []model.Item) []model.Item {
		return slices.DeleteFunc(items, func(it model.Item) bool { return it.Article == article })
	}
}

// record appends an audit entry. Failures are logged and counted but never
// undo the mutation being described.
func (l *Library) record(ctx context.Context, r model.ChangeRecord) {
	if r.ID == "" {
		r.ID = l.newID()
	}
	if r.Timestamp.IsZero() {
		r.Timestamp = l.now()
	}
	if err := l.store.AppendAudit(ctx, r); err != nil {
		l.metrics.AuditFailures.Inc()
		l.log.Warn("audit append failed", "action", r.Action, "article", r.Article, "user", r.User, "error", err)
	}
}

// find returns the cached item and its index, or -1. Callers hold mu.
func (l *Library) find(article string) (model.Item, int) {
	for i, it := range l.items {
		if it.Article == article {
			return it, i
		}
	}
	return model.Item{}, -1
}

// Items returns a copy of every cached item.
func (l *Library) Items() []model.Item {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.items)
}

// Get returns the item with the given article.
func (l *Library) Get(article string) (model.Item, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	it, i := l.find(article)
	if i < 0 {
		return model.Item{}, notFound(article)
	}
	return it, nil
}

// AuditLog returns stored change records, newest first.
func (l *Library) AuditLog(ctx context.Context, limit int) ([]model.ChangeRecord, error) {
	records, err := l.store.ListAudit(ctx, limit)
	if err != nil {
		return nil, storageErr("loading audit log", err)
	}
	return records, nil
}
