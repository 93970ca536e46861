package store

import (
	"context"
	"database/sql"

	"github.com/erazemk/fastenerlib/internal/model"
)

// SQLite adapts the package functions to the library's storage interface.
type SQLite struct {
	DB *sql.DB
}

// NewSQLite returns a storage backed by db.
func NewSQLite(db *sql.DB) *SQLite {
	return &SQLite{DB: db}
}

func (s *SQLite) ListItems(ctx context.Context) ([]model.Item, error) {
	return ListItems(ctx, s.DB)
}

func (s *SQLite) PutItem(ctx context.Context, it model.Item) error {
	return PutItem(ctx, s.DB, it)
}

func (s *SQLite) DeleteItem(ctx context.Context, article string) error {
	return DeleteItem(ctx, s.DB, article)
}

func (s *SQLite) ImportItems(ctx context.Context, items []model.Item, replace bool) error {
	return ImportItems(ctx, s.DB, items, replace)
}

func (s *SQLite) AppendAudit(ctx context.Context, r model.ChangeRecord) error {
	return AppendAudit(ctx, s.DB, r)
}

func (s *SQLite) ListAudit(ctx context.Context, limit int) ([]model.ChangeRecord, error) {
	return ListAudit(ctx, s.DB, limit)
}
