package db

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestMigrate(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	v, err := Version(ctx, db)
	if err != nil {
		t.Fatalf("Version: %v", err)
	}
	if v != 1 {
		t.Errorf("version = %d, want 1", v)
	}

	// Running again is a no-op.
	if err := Migrate(ctx, db); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}

	for _, table := range []string{"users", "settings", "revoked_tokens", "items", "audit", "photos"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}

func TestLocationUniqueIndex(t *testing.T) {
	db := NewTestDB(t)

	exec := func(article, location string) error {
		_, err := db.Exec(`INSERT INTO items (article, location) VALUES (?, ?)`, article, location)
		return err
	}
	if err := exec("A", "A01"); err != nil {
		t.Fatal(err)
	}
	if err := exec("B", "A01"); err == nil {
		t.Error("expected unique violation for shared slot")
	}
	if err := exec("C", "00"); err != nil {
		t.Fatal(err)
	}
	if err := exec("D", "00"); err != nil {
		t.Errorf("dummy slot should be shareable: %v", err)
	}
}

func TestOpenMigratedCreatesDirectory(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "fastenerlib.db")

	db, version, err := OpenMigrated(ctx, path)
	if err != nil {
		t.Fatalf("OpenMigrated: %v", err)
	}
	defer db.Close()

	if version != 1 {
		t.Errorf("version = %d, want 1", version)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("database file: %v", err)
	}

	var mode string
	if err := db.QueryRowContext(ctx, `PRAGMA journal_mode`).Scan(&mode); err != nil {
		t.Fatal(err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want wal", mode)
	}
	var fk int
	if err := db.QueryRowContext(ctx, `PRAGMA foreign_keys`).Scan(&fk); err != nil {
		t.Fatal(err)
	}
	if fk != 1 {
		t.Errorf("foreign_keys = %d, want 1", fk)
	}
}
