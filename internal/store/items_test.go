package store

import (
	"context"
	"testing"
	"time"

	"github.com/erazemk/fastenerlib/internal/db"
	"github.com/erazemk/fastenerlib/internal/model"
)

func TestPutAndGetItem(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	updated := time.Date(2024, 4, 2, 9, 30, 0, 0, time.UTC)
	it := model.Item{
		Article: "A-100", Name: "Hex bolt", Location: "A01", Qty: 40, PackSize: 100, SmallPack: 25,
		Standard: "DIN 933", HERisk: "low", Notes: "top shelf", UpdatedBy: "ana", UpdatedAt: updated,
	}
	if err := PutItem(ctx, database, it); err != nil {
		t.Fatalf("PutItem: %v", err)
	}

	got, err := GetItem(ctx, database, "A-100")
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	if got == nil {
		t.Fatal("expected item, got nil")
	}
	if *got != it {
		t.Errorf("got %+v, want %+v", *got, it)
	}

	missing, err := GetItem(ctx, database, "nope")
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing item")
	}
}

func TestPutItemReplaces(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	PutItem(ctx, database, model.Item{Article: "A", Location: "A01", Qty: 1})
	if err := PutItem(ctx, database, model.Item{Article: "A", Location: "B01", Qty: 7}); err != nil {
		t.Fatalf("PutItem: %v", err)
	}

	items, err := ListItems(ctx, database)
	if err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	if len(items) != 1 || items[0].Qty != 7 || items[0].Location != "B01" {
		t.Errorf("items = %+v", items)
	}
}

func TestPutItemLocationClash(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	if err := PutItem(ctx, database, model.Item{Article: "A", Location: "B01", Qty: 7}); err != nil {
		t.Fatal(err)
	}
	if err := PutItem(ctx, database, model.Item{Article: "B", Location: "B01"}); err == nil {
		t.Fatal("expected error for occupied location")
	}

	items, err := ListItems(ctx, database)
	if err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	if len(items) != 1 || items[0].Article != "A" || items[0].Qty != 7 {
		t.Errorf("items = %+v, want only A", items)
	}

	// The dummy slot is shared.
	PutItem(ctx, database, model.Item{Article: "C", Location: "00"})
	if err := PutItem(ctx, database, model.Item{Article: "D", Location: "00"}); err != nil {
		t.Errorf("second dummy item: %v", err)
	}
}

func TestPutItemRejectsNegativeQty(t *testing.T) {
	database := db.NewTestDB(t)
	if err := PutItem(context.Background(), database, model.Item{Article: "A", Location: "00", Qty: -1}); err == nil {
		t.Error("expected error for negative qty")
	}
}

func TestDeleteItemRemovesPhoto(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	PutItem(ctx, database, model.Item{Article: "A", Location: "00"})
	if err := SetPhoto(ctx, database, "A", []byte("jpeg"), "image/jpeg"); err != nil {
		t.Fatal(err)
	}
	if err := DeleteItem(ctx, database, "A"); err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}

	if got, _ := GetItem(ctx, database, "A"); got != nil {
		t.Error("item still present")
	}
	if data, _, _ := GetPhoto(ctx, database, "A"); data != nil {
		t.Error("photo still present")
	}
	if err := DeleteItem(ctx, database, "A"); err != nil {
		t.Errorf("deleting missing item: %v", err)
	}
}

func TestImportItems(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	PutItem(ctx, database, model.Item{Article: "OLD", Location: "A01"})

	err := ImportItems(ctx, database, []model.Item{
		{Article: "N1", Location: "B01"},
		{Article: "N2", Location: "00"},
	}, false)
	if err != nil {
		t.Fatalf("ImportItems merge: %v", err)
	}
	items, _ := ListItems(ctx, database)
	if len(items) != 3 {
		t.Fatalf("expected 3 items after merge, got %d", len(items))
	}

	err = ImportItems(ctx, database, []model.Item{{Article: "R1", Location: "A01"}}, true)
	if err != nil {
		t.Fatalf("ImportItems replace: %v", err)
	}
	items, _ = ListItems(ctx, database)
	if len(items) != 1 || items[0].Article != "R1" {
		t.Errorf("items after replace = %+v", items)
	}
}

func TestImportItemsAllOrNothing(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	PutItem(ctx, database, model.Item{Article: "KEEP", Location: "A01"})

	// The second row clashes with the first on a real slot.
	err := ImportItems(ctx, database, []model.Item{
		{Article: "N1", Location: "C01"},
		{Article: "N2", Location: "C01"},
	}, true)
	if err == nil {
		t.Fatal("expected import to fail")
	}

	items, _ := ListItems(ctx, database)
	if len(items) != 1 || items[0].Article != "KEEP" {
		t.Errorf("failed import changed items: %+v", items)
	}
}
