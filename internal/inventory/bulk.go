package inventory

import (
	"context"

	"github.com/erazemk/fastenerlib/internal/export"
	"github.com/erazemk/fastenerlib/internal/importer"
	"github.com/erazemk/fastenerlib/internal/model"
)

// ImportResult reports how many rows were stored and why others were skipped.
type ImportResult struct {
	Imported int                  `json:"imported"`
	Rejected []importer.Rejection `json:"rejected"`
}

// Import stores the acceptable rows in one transaction. In replace mode all
// existing items are removed first; otherwise rows are merged by article.
// Location clashes with items that survive the import reject the row.
func (l *Library) Import(ctx context.Context, user string, rows []importer.RawRow, replace bool) (ImportResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	existing := l.items
	if replace {
		existing = nil
	}
	res := importer.Prepare(rows, existing)

	now := l.now()
	for i := range res.Items {
		res.Items[i].UpdatedBy = user
		res.Items[i].UpdatedAt = now
	}

	if err := l.store.ImportItems(ctx, res.Items, replace); err != nil {
		return ImportResult{}, storageErr("importing items", err)
	}
	l.converge(ctx, func(items []model.Item) []model.Item {
		if replace {
			items = nil
		}
		for _, it := range res.Items {
			items = upsert(it)(items)
		}
		return items
	})
	l.metrics.ImportRows.WithLabelValues("accepted").Add(float64(len(res.Items)))
	l.metrics.ImportRows.WithLabelValues("rejected").Add(float64(len(res.Rejected)))

	action := model.ActionImportMerge
	if replace {
		action = model.ActionImportReplace
	}
	l.record(ctx, model.ChangeRecord{Action: action, User: user, Timestamp: now, Count: len(res.Items)})
	l.log.Info("items imported", "user", user, "mode", action, "imported", len(res.Items), "rejected", len(res.Rejected))

	return ImportResult{Imported: len(res.Items), Rejected: res.Rejected}, nil
}

// Backup snapshots items and the audit log, then records the backup.
func (l *Library) Backup(ctx context.Context, user string) (export.Backup, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	records, err := l.store.ListAudit(ctx, 0)
	if err != nil {
		return export.Backup{}, storageErr("loading audit log", err)
	}
	b := export.Backup{
		Version:    export.BackupVersion,
		ExportedAt: l.now(),
		Items:      append([]model.Item{}, l.items...),
		Audit:      records,
	}

	l.record(ctx, model.ChangeRecord{Action: model.ActionBackupCreate, User: user, Timestamp: b.ExportedAt, Count: len(b.Items)})
	l.log.Info("backup created", "user", user, "items", len(b.Items), "audit", len(records))
	return b, nil
}
