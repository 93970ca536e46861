package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/erazemk/fastenerlib/internal/model"
)

// AppendAudit stores a change record. Records are never updated.
func AppendAudit(ctx context.Context, db *sql.DB, r model.ChangeRecord) error {
	var qty sql.NullInt64
	if r.Qty != nil {
		qty = sql.NullInt64{Int64: int64(*r.Qty), Valid: true}
	}
	_, err := db.ExecContext(ctx,
		`INSERT INTO audit (id, action, article, user_name, ts, delta, unit, input_amt, qty, summary, count)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Action, r.Article, r.User, toMillis(r.Timestamp),
		r.Delta, r.Unit, r.InputAmount, qty, r.Summary, r.Count,
	)
	if err != nil {
		return fmt.Errorf("appending audit record: %w", err)
	}
	return nil
}

// ListAudit returns change records newest first. A limit of 0 returns all.
func ListAudit(ctx context.Context, db *sql.DB, limit int) ([]model.ChangeRecord, error) {
	query := `SELECT id, action, article, user_name, ts, delta, unit, input_amt, qty, summary, count
		 FROM audit ORDER BY ts DESC, rowid DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing audit records: %w", err)
	}
	defer rows.Close()

	records := []model.ChangeRecord{}
	for rows.Next() {
		var r model.ChangeRecord
		var ts int64
		var qty sql.NullInt64
		if err := rows.Scan(&r.ID, &r.Action, &r.Article, &r.User, &ts,
			&r.Delta, &r.Unit, &r.InputAmount, &qty, &r.Summary, &r.Count); err != nil {
			return nil, fmt.Errorf("scanning audit record: %w", err)
		}
		r.Timestamp = fromMillis(ts)
		if qty.Valid {
			q := int(qty.Int64)
			r.Qty = &q
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
