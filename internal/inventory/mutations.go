package inventory

import (
	"context"
	"errors"
	"strings"

	"github.com/erazemk/fastenerlib/internal/audit"
	"github.com/erazemk/fastenerlib/internal/catalog"
	"github.com/erazemk/fastenerlib/internal/model"
	"github.com/erazemk/fastenerlib/internal/stock"
)

// Save creates or replaces an item. An empty location becomes the dummy
// slot and an empty photo keeps the stored one. The audit entry carries a
// summary of the changed fields.
func (l *Library) Save(ctx context.Context, user string, it model.Item) (model.Item, error) {
	it.Article = strings.TrimSpace(it.Article)
	it.Location = strings.TrimSpace(it.Location)
	if it.Article == "" {
		return model.Item{}, invalidf("article is required")
	}
	if it.Location == "" {
		it.Location = model.DummyLocation
	}
	if it.Qty < 0 {
		return model.Item{}, invalidf("qty must not be negative")
	}
	if it.PackSize < 0 || it.SmallPack < 0 {
		return model.Item{}, invalidf("pack sizes must not be negative")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if holder := catalog.LocationHolder(l.items, it.Location, it.Article); holder != "" {
		return model.Item{}, invalid(&LocationTakenError{Location: it.Location, Article: holder})
	}

	var old *model.Item
	if prev, i := l.find(it.Article); i >= 0 {
		old = &prev
		if it.Photo == "" {
			it.Photo = prev.Photo
		}
	}
	it.UpdatedBy = user
	it.UpdatedAt = l.now()

	if err := l.store.PutItem(ctx, it); err != nil {
		return model.Item{}, storageErr("saving item", err)
	}
	l.converge(ctx, upsert(it))
	l.metrics.Saves.Inc()

	summary := audit.Diff(old, it)
	l.record(ctx, model.ChangeRecord{
		Action:    model.ActionSave,
		Article:   it.Article,
		User:      user,
		Timestamp: it.UpdatedAt,
		Summary:   summary,
	})
	l.log.Info("item saved", "user", user, "article", it.Article, "created", old == nil, "changes", summary)
	return it, nil
}

// update applies change to a stored item and persists it. Callers hold mu.
func (l *Library) update(ctx context.Context, user, article string, change func(*model.Item)) (model.Item, error) {
	it, i := l.find(article)
	if i < 0 {
		return model.Item{}, notFound(article)
	}
	change(&it)
	it.UpdatedBy = user
	it.UpdatedAt = l.now()

	if err := l.store.PutItem(ctx, it); err != nil {
		return model.Item{}, storageErr("saving item", err)
	}
	l.converge(ctx, upsert(it))
	return it, nil
}

// SaveNote replaces an item's notes.
func (l *Library) SaveNote(ctx context.Context, user, article, note string) (model.Item, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	it, err := l.update(ctx, user, article, func(it *model.Item) { it.Notes = note })
	if err != nil {
		return model.Item{}, err
	}
	l.metrics.Saves.Inc()
	l.record(ctx, model.ChangeRecord{Action: model.ActionNote, Article: article, User: user, Timestamp: it.UpdatedAt})
	l.log.Info("note saved", "user", user, "article", article)
	return it, nil
}

// AttachPhoto points an item at its stored photo.
func (l *Library) AttachPhoto(ctx context.Context, user, article, photo string) (model.Item, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var before string
	it, err := l.update(ctx, user, article, func(it *model.Item) {
		before = it.Photo
		it.Photo = photo
	})
	if err != nil {
		return model.Item{}, err
	}
	l.metrics.Saves.Inc()
	l.record(ctx, model.ChangeRecord{
		Action:    model.ActionSave,
		Article:   article,
		User:      user,
		Timestamp: it.UpdatedAt,
		Summary:   audit.DiffFields([]model.Field{{Name: "photo", Value: before}}, []model.Field{{Name: "photo", Value: photo}}),
	})
	l.log.Info("photo attached", "user", user, "article", article, "photo", photo)
	return it, nil
}

// Manage withdraws or returns amount units of an item. Negative amounts
// count as zero and are rejected as not positive.
func (l *Library) Manage(ctx context.Context, user, article string, amount int, unit model.Unit, dir stock.Direction) (stock.Movement, error) {
	amount = max(amount, 0)

	l.mu.Lock()
	defer l.mu.Unlock()

	it, i := l.find(article)
	if i < 0 {
		return stock.Movement{}, notFound(article)
	}

	pieces := stock.ToPieces(it, amount, unit)
	m, err := stock.Apply(it, pieces, dir, user, l.now())
	if err != nil {
		return stock.Movement{}, invalid(err)
	}

	if err := l.store.PutItem(ctx, m.Item); err != nil {
		return stock.Movement{}, storageErr("saving stock", err)
	}
	l.converge(ctx, upsert(m.Item))
	l.metrics.Movements.WithLabelValues(string(dir)).Inc()
	l.metrics.Pieces.WithLabelValues(string(dir)).Add(float64(pieces))

	l.record(ctx, m.Record(unit, amount))
	l.log.Info("stock moved", "user", user, "article", article, "direction", dir,
		"amount", amount, "unit", unit, "change", m.Change, "qty", m.Item.Qty)
	return m, nil
}

// Delete removes an item. The audit entry keeps the article for reference.
func (l *Library) Delete(ctx context.Context, user, article string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, i := l.find(article); i < 0 {
		return notFound(article)
	}
	if err := l.store.DeleteItem(ctx, article); err != nil {
		return storageErr("deleting item", err)
	}
	l.converge(ctx, remove(article))
	l.metrics.Deletes.Inc()

	l.record(ctx, model.ChangeRecord{Action: model.ActionDelete, Article: article, User: user})
	l.log.Info("item deleted", "user", user, "article", article)
	return nil
}

// ViewDetail returns an item and records that user opened it.
func (l *Library) ViewDetail(ctx context.Context, user, article string) (model.Item, error) {
	it, err := l.Get(article)
	if err != nil {
		return model.Item{}, err
	}
	l.record(ctx, model.ChangeRecord{Action: model.ActionViewDetail, Article: article, User: user})
	return it, nil
}

// OrderInput requests packs and small packs of one article.
type OrderInput struct {
	Article    string `json:"article"`
	PackCount  int    `json:"pack_count"`
	SmallCount int    `json:"small_count"`
}

// PrepareOrder validates a restock order against the current items.
func (l *Library) PrepareOrder(inputs []OrderInput) ([]stock.OrderLine, error) {
	l.mu.RLock()
	reqs := make([]stock.OrderRequest, 0, len(inputs))
	for _, in := range inputs {
		it, i := l.find(in.Article)
		if i < 0 {
			l.mu.RUnlock()
			return nil, notFound(in.Article)
		}
		reqs = append(reqs, stock.OrderRequest{Item: it, PackCount: in.PackCount, SmallCount: in.SmallCount})
	}
	l.mu.RUnlock()

	lines, err := stock.BuildOrder(reqs)
	if err != nil {
		return nil, invalid(err)
	}
	return lines, nil
}

// IsRuleViolation reports whether err is a stock or order rule violation
// rather than malformed input.
func IsRuleViolation(err error) bool {
	var insufficient *stock.InsufficientStockError
	var below *stock.BelowMinimumError
	var taken *LocationTakenError
	return errors.As(err, &insufficient) || errors.As(err, &below) || errors.As(err, &taken) ||
		errors.Is(err, stock.ErrAmountNotPositive) || errors.Is(err, stock.ErrEmptyOrder)
}
