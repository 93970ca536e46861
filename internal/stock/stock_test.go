package stock

import (
	"errors"
	"testing"
	"time"

	"github.com/erazemk/fastenerlib/internal/model"
)

func TestResolveSizes(t *testing.T) {
	tests := []struct {
		name      string
		pack      int
		small     int
		wantPack  int
		wantSmall int
	}{
		{"both set", 100, 25, 100, 25},
		{"small falls back to pack", 10, 0, 10, 10},
		{"both missing", 0, 0, 1, 1},
		{"negative values", -5, -1, 1, 1},
		{"small without pack", 0, 6, 1, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveSizes(model.Item{PackSize: tt.pack, SmallPack: tt.small})
			if got.Pack != tt.wantPack || got.Small != tt.wantSmall {
				t.Errorf("ResolveSizes = %+v, want {%d %d}", got, tt.wantPack, tt.wantSmall)
			}
		})
	}
}

func TestToPieces(t *testing.T) {
	it := model.Item{PackSize: 10}
	tests := []struct {
		amount int
		unit   model.Unit
		want   int
	}{
		{3, model.UnitSmall, 30},
		{3, model.UnitPack, 30},
		{3, model.UnitPiece, 3},
		{0, model.UnitPack, 0},
	}
	for _, tt := range tests {
		if got := ToPieces(it, tt.amount, tt.unit); got != tt.want {
			t.Errorf("ToPieces(%d, %s) = %d, want %d", tt.amount, tt.unit, got, tt.want)
		}
	}

	if got := ToPieces(model.Item{PackSize: 100, SmallPack: 25}, 2, model.UnitSmall); got != 50 {
		t.Errorf("small packs = %d, want 50", got)
	}
}

func TestParseUnit(t *testing.T) {
	if u, err := ParseUnit(""); err != nil || u != model.UnitPiece {
		t.Errorf("ParseUnit(\"\") = %q, %v", u, err)
	}
	if u, err := ParseUnit("small"); err != nil || u != model.UnitSmall {
		t.Errorf("ParseUnit(small) = %q, %v", u, err)
	}
	if _, err := ParseUnit("box"); err == nil {
		t.Error("expected error for unknown unit")
	}
}

func TestApplyWithdraw(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	it := model.Item{Article: "A-1", Qty: 5}

	_, err := Apply(it, 10, Withdraw, "ana", now)
	var insufficient *InsufficientStockError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientStockError, got %v", err)
	}
	if insufficient.Requested != 10 || insufficient.Available != 5 {
		t.Errorf("error = %+v", insufficient)
	}

	m, err := Apply(it, 5, Withdraw, "ana", now)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if m.Item.Qty != 0 {
		t.Errorf("qty = %d, want 0", m.Item.Qty)
	}
	if m.Change != -5 {
		t.Errorf("change = %d, want -5", m.Change)
	}
	if m.Item.UpdatedBy != "ana" || !m.Item.UpdatedAt.Equal(now) {
		t.Errorf("provenance not stamped: %q %v", m.Item.UpdatedBy, m.Item.UpdatedAt)
	}
	if it.Qty != 5 {
		t.Error("input item was modified")
	}
}

func TestApplyReturn(t *testing.T) {
	m, err := Apply(model.Item{Article: "A-1", Qty: 5}, 1000, Return, "ana", time.Now())
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if m.Item.Qty != 1005 || m.Change != 1000 {
		t.Errorf("qty = %d, change = %d", m.Item.Qty, m.Change)
	}
}

func TestApplyNotPositive(t *testing.T) {
	for _, n := range []int{0, -3} {
		for _, dir := range []Direction{Withdraw, Return} {
			if _, err := Apply(model.Item{Qty: 10}, n, dir, "ana", time.Now()); !errors.Is(err, ErrAmountNotPositive) {
				t.Errorf("Apply(%d, %s) error = %v, want ErrAmountNotPositive", n, dir, err)
			}
		}
	}
}

func TestMovementRecord(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	it := model.Item{Article: "A-1", Qty: 100, PackSize: 25}
	pieces := ToPieces(it, 2, model.UnitPack)

	m, err := Apply(it, pieces, Withdraw, "ana", now)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	rec := m.Record(model.UnitPack, 2)
	if rec.Action != model.ActionManageMinus {
		t.Errorf("action = %q", rec.Action)
	}
	if rec.Delta != -50 || rec.InputAmount != 2 || rec.Unit != model.UnitPack {
		t.Errorf("record = %+v", rec)
	}
	if rec.Qty == nil || *rec.Qty != 50 {
		t.Errorf("resulting qty = %v, want 50", rec.Qty)
	}
	if rec.User != "ana" || rec.Article != "A-1" || !rec.Timestamp.Equal(now) {
		t.Errorf("record = %+v", rec)
	}
}

func TestParseDirection(t *testing.T) {
	for in, want := range map[string]Direction{"withdraw": Withdraw, "minus": Withdraw, "return": Return, "fill": Return, "plus": Return} {
		got, err := ParseDirection(in)
		if err != nil || got != want {
			t.Errorf("ParseDirection(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseDirection("sideways"); err == nil {
		t.Error("expected error")
	}
}

func TestBuildOrder(t *testing.T) {
	bolt := model.Item{Article: "A-1", Name: "Bolt", Qty: 3, PackSize: 100, SmallPack: 25}
	nut := model.Item{Article: "A-2", Qty: 0, PackSize: 50}
	washer := model.Item{Article: "A-3"}

	lines, err := BuildOrder([]OrderRequest{
		{Item: bolt, PackCount: 1, SmallCount: 2},
		{Item: nut, PackCount: 0, SmallCount: 0},
		{Item: washer, PackCount: 4},
	})
	if err != nil {
		t.Fatalf("BuildOrder: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0].TotalQty != 150 || lines[0].CurrentQty != 3 || lines[0].SmallPack != 25 {
		t.Errorf("bolt line = %+v", lines[0])
	}
	if lines[1].Article != "A-3" || lines[1].TotalQty != 4 || lines[1].PackSize != 1 {
		t.Errorf("washer line = %+v", lines[1])
	}
}

func TestBuildOrderBelowMinimum(t *testing.T) {
	valid := model.Item{Article: "A-1", PackSize: 10}
	small := model.Item{Article: "A-2", PackSize: 12, SmallPack: 6}

	lines, err := BuildOrder([]OrderRequest{
		{Item: valid, PackCount: 2},
		{Item: small, SmallCount: 1},
	})
	var below *BelowMinimumError
	if !errors.As(err, &below) {
		t.Fatalf("expected BelowMinimumError, got %v", err)
	}
	if below.Article != "A-2" || below.Total != 6 || below.PackSize != 12 {
		t.Errorf("error = %+v", below)
	}
	if lines != nil {
		t.Errorf("expected no lines, got %v", lines)
	}

	if _, err := BuildOrder([]OrderRequest{{Item: small, SmallCount: 2}}); err != nil {
		t.Errorf("two small packs make a full pack: %v", err)
	}
}

func TestBuildOrderEmpty(t *testing.T) {
	for _, reqs := range [][]OrderRequest{
		nil,
		{{Item: model.Item{Article: "A-1"}}},
		{{Item: model.Item{Article: "A-1"}, PackCount: -2, SmallCount: -1}},
	} {
		if _, err := BuildOrder(reqs); !errors.Is(err, ErrEmptyOrder) {
			t.Errorf("BuildOrder(%v) error = %v, want ErrEmptyOrder", reqs, err)
		}
	}
}
