package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/erazemk/fastenerlib/internal/model"
)

const itemColumns = `article, name, bn, category, location, qty, pack_size, small_pack,
	standard, head, recess, dim1, dim2, thread_size, length, pitch, shank_length,
	head_d, head_h, af, nut_h, washer_id, washer_od, washer_t, material, grade,
	plating, function_coat, he_risk, notes, photo, updated_by, updated_at`

// execer is satisfied by *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(s scanner) (model.Item, error) {
	var it model.Item
	var updatedAt int64
	err := s.Scan(&it.Article, &it.Name, &it.BN, &it.Category, &it.Location,
		&it.Qty, &it.PackSize, &it.SmallPack,
		&it.Standard, &it.Head, &it.Recess, &it.Dim1, &it.Dim2, &it.ThreadSize,
		&it.Length, &it.Pitch, &it.ShankLength, &it.HeadD, &it.HeadH, &it.AF,
		&it.NutH, &it.WasherID, &it.WasherOD, &it.WasherT, &it.Material, &it.Grade,
		&it.Plating, &it.FunctionCoat, &it.HERisk, &it.Notes, &it.Photo,
		&it.UpdatedBy, &updatedAt)
	it.UpdatedAt = fromMillis(updatedAt)
	return it, err
}

// GetItem returns an item by article, or nil if there is none.
func GetItem(ctx context.Context, db *sql.DB, article string) (*model.Item, error) {
	row := db.QueryRowContext(ctx, `SELECT `+itemColumns+` FROM items WHERE article = ?`, article)
	it, err := scanItem(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	return &it, nil
}

// ListItems returns every item ordered by article.
func ListItems(ctx context.Context, db *sql.DB) ([]model.Item, error) {
	rows, err := db.QueryContext(ctx, `SELECT `+itemColumns+` FROM items ORDER BY article`)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	items := []model.Item{}
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// PutItem inserts an item or updates the one with the same article. A
// location already held by another article is a constraint error.
func PutItem(ctx context.Context, db *sql.DB, it model.Item) error {
	return putItem(ctx, db, it)
}

const upsertItem = `INSERT INTO items (` + itemColumns + `)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(article) DO UPDATE SET
	name = excluded.name, bn = excluded.bn, category = excluded.category,
	location = excluded.location, qty = excluded.qty, pack_size = excluded.pack_size,
	small_pack = excluded.small_pack, standard = excluded.standard, head = excluded.head,
	recess = excluded.recess, dim1 = excluded.dim1, dim2 = excluded.dim2,
	thread_size = excluded.thread_size, length = excluded.length, pitch = excluded.pitch,
	shank_length = excluded.shank_length, head_d = excluded.head_d, head_h = excluded.head_h,
	af = excluded.af, nut_h = excluded.nut_h, washer_id = excluded.washer_id,
	washer_od = excluded.washer_od, washer_t = excluded.washer_t, material = excluded.material,
	grade = excluded.grade, plating = excluded.plating, function_coat = excluded.function_coat,
	he_risk = excluded.he_risk, notes = excluded.notes, photo = excluded.photo,
	updated_by = excluded.updated_by, updated_at = excluded.updated_at`

func putItem(ctx context.Context, ex execer, it model.Item) error {
	_, err := ex.ExecContext(ctx, upsertItem,
		it.Article, it.Name, it.BN, it.Category, it.Location,
		it.Qty, it.PackSize, it.SmallPack,
		it.Standard, it.Head, it.Recess, it.Dim1, it.Dim2, it.ThreadSize,
		it.Length, it.Pitch, it.ShankLength, it.HeadD, it.HeadH, it.AF,
		it.NutH, it.WasherID, it.WasherOD, it.WasherT, it.Material, it.Grade,
		it.Plating, it.FunctionCoat, it.HERisk, it.Notes, it.Photo,
		it.UpdatedBy, toMillis(it.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("saving item %s: %w", it.Article, err)
	}
	return nil
}

// DeleteItem removes an item and its photo. Deleting a missing article is
// not an error.
func DeleteItem(ctx context.Context, db *sql.DB, article string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM items WHERE article = ?`, article); err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM photos WHERE article = ?`, article); err != nil {
		return fmt.Errorf("deleting item photo: %w", err)
	}
	return tx.Commit()
}

// ImportItems saves items in one transaction, first removing every existing
// item when replace is set. Either all rows are stored or none are.
func ImportItems(ctx context.Context, db *sql.DB, items []model.Item, replace bool) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if replace {
		if _, err := tx.ExecContext(ctx, `DELETE FROM items`); err != nil {
			return fmt.Errorf("clearing items: %w", err)
		}
	}
	for _, it := range items {
		if err := putItem(ctx, tx, it); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing import: %w", err)
	}
	return nil
}

func toMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

func fromMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}
