// Package export serializes items, orders and backups for download.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/erazemk/fastenerlib/internal/model"
	"github.com/erazemk/fastenerlib/internal/stock"
)

// Sheet names.
const (
	InventorySheet = "Inventory"
	OrderSheet     = "Order"
)

// OrderHeader is the column row of an order sheet.
var OrderHeader = []any{
	"Article", "BN", "Description", "Location", "Current Qty",
	"Pack size", "Small pack", "Order Pack", "Order Small", "Order Qty",
}

// ItemsFileName is the download name of an inventory export.
func ItemsFileName(now time.Time) string {
	return fmt.Sprintf("Fastener Library %s.xlsx", now.Format(time.DateOnly))
}

// OrderFileName is the download name of an order export.
func OrderFileName(now time.Time) string {
	return fmt.Sprintf("Fastener Library Order %s.xlsx", now.Format(time.DateOnly))
}

// WriteItemsXLSX writes one row per item with every field, headed by the
// field names, so the file can be imported again.
func WriteItemsXLSX(w io.Writer, items []model.Item) error {
	var header []any
	for _, f := range (model.Item{}).Fields() {
		header = append(header, f.Name)
	}
	header = append(header, "updated_by", "updated_at")

	rows := make([][]any, 0, len(items))
	for _, it := range items {
		var row []any
		for _, f := range it.Fields() {
			row = append(row, f.Value)
		}
		var updated string
		if !it.UpdatedAt.IsZero() {
			updated = it.UpdatedAt.Format(time.RFC3339)
		}
		row = append(row, it.UpdatedBy, updated)
		rows = append(rows, row)
	}
	return writeSheet(w, InventorySheet, header, rows)
}

// WriteOrderXLSX writes validated order lines.
func WriteOrderXLSX(w io.Writer, lines []stock.OrderLine) error {
	rows := make([][]any, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, []any{
			l.Article, l.BN, l.Name, model.LocationLabel(l.Location), l.CurrentQty,
			l.PackSize, l.SmallPack, l.PackCount, l.SmallCount, l.TotalQty,
		})
	}
	return writeSheet(w, OrderSheet, OrderHeader, rows)
}

func writeSheet(w io.Writer, name string, header []any, rows [][]any) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if err := f.SetSheetName(sheet, name); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("addressing row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
