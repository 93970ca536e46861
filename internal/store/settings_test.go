package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/erazemk/fastenerlib/internal/db"
)

func TestGetJWTSecretGeneratesOnce(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	first, err := GetJWTSecret(ctx, database)
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(first))
	}

	second, err := GetJWTSecret(ctx, database)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Fatalf("expected same secret, got %q and %q", first, second)
	}
}

func TestGetJWTSecretKeepsStoredValue(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	if _, err := database.ExecContext(ctx, `INSERT INTO settings (key, value) VALUES ('jwt_secret', 'configured')`); err != nil {
		t.Fatal(err)
	}
	secret, err := GetJWTSecret(ctx, database)
	if err != nil {
		t.Fatal(err)
	}
	if secret != "configured" {
		t.Errorf("secret = %q, want configured", secret)
	}
}

// Tokens issued before a restart stay valid only if the secret survives it.
func TestGetJWTSecretSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "fastenerlib.db")

	first, _, err := db.OpenMigrated(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	before, err := GetJWTSecret(ctx, first)
	first.Close()
	if err != nil {
		t.Fatal(err)
	}

	second, _, err := db.OpenMigrated(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	defer second.Close()
	after, err := GetJWTSecret(ctx, second)
	if err != nil {
		t.Fatal(err)
	}
	if before != after {
		t.Errorf("secret changed across reopen: %q then %q", before, after)
	}
}
