package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// SetPhoto stores the photo of an article, replacing any previous one.
func SetPhoto(ctx context.Context, db *sql.DB, article string, data []byte, mime string) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO photos (article, data, mime, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(article) DO UPDATE SET data = excluded.data, mime = excluded.mime, updated_at = excluded.updated_at`,
		article, data, mime, time.Now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("setting photo: %w", err)
	}
	return nil
}

// GetPhoto returns the photo of an article. A missing photo returns nil data.
func GetPhoto(ctx context.Context, db *sql.DB, article string) ([]byte, string, error) {
	var data []byte
	var mime string
	err := db.QueryRowContext(ctx,
		`SELECT data, mime FROM photos WHERE article = ?`, article,
	).Scan(&data, &mime)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting photo: %w", err)
	}
	return data, mime, nil
}
