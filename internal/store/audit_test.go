package store

import (
	"context"
	"testing"
	"time"

	"github.com/erazemk/fastenerlib/internal/db"
	"github.com/erazemk/fastenerlib/internal/model"
)

func TestAppendAndListAudit(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	qty := 30
	records := []model.ChangeRecord{
		{ID: "1", Action: model.ActionSave, Article: "A", User: "ana", Timestamp: base, Summary: "qty:  -> 40"},
		{ID: "2", Action: model.ActionManageMinus, Article: "A", User: "ana", Timestamp: base.Add(time.Minute),
			Delta: -10, Unit: model.UnitPiece, InputAmount: 10, Qty: &qty},
		{ID: "3", Action: model.ActionImportMerge, User: "bor", Timestamp: base.Add(time.Minute), Count: 4},
	}
	for _, r := range records {
		if err := AppendAudit(ctx, database, r); err != nil {
			t.Fatalf("AppendAudit: %v", err)
		}
	}

	got, err := ListAudit(ctx, database, 0)
	if err != nil {
		t.Fatalf("ListAudit: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d records, want 3", len(got))
	}
	// Newest first; equal timestamps keep reverse insertion order.
	if got[0].ID != "3" || got[1].ID != "2" || got[2].ID != "1" {
		t.Errorf("order = %s %s %s", got[0].ID, got[1].ID, got[2].ID)
	}
	if got[1].Qty == nil || *got[1].Qty != 30 || got[1].Delta != -10 || got[1].Unit != model.UnitPiece {
		t.Errorf("stock record = %+v", got[1])
	}
	if got[2].Qty != nil {
		t.Errorf("save record qty = %v, want nil", *got[2].Qty)
	}
	if !got[2].Timestamp.Equal(base) || got[2].Summary != "qty:  -> 40" {
		t.Errorf("save record = %+v", got[2])
	}

	limited, _ := ListAudit(ctx, database, 1)
	if len(limited) != 1 || limited[0].ID != "3" {
		t.Errorf("limited = %+v", limited)
	}
}

func TestAppendAuditDuplicateID(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	r := model.ChangeRecord{ID: "same", Action: model.ActionNote, Timestamp: time.Now()}
	if err := AppendAudit(ctx, database, r); err != nil {
		t.Fatal(err)
	}
	if err := AppendAudit(ctx, database, r); err == nil {
		t.Error("expected error for duplicate record id")
	}
}
