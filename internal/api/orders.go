package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/erazemk/fastenerlib/internal/export"
	"github.com/erazemk/fastenerlib/internal/inventory"
	"github.com/erazemk/fastenerlib/internal/stock"
)

// OrdersHandler validates restock orders and exports them.
type OrdersHandler struct {
	Lib *inventory.Library
}

type orderRequest struct {
	Lines []inventory.OrderInput `json:"lines"`
}

func (h *OrdersHandler) prepare(w http.ResponseWriter, r *http.Request) ([]stock.OrderLine, bool) {
	var req orderRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}
	lines, err := h.Lib.PrepareOrder(req.Lines)
	if err != nil {
		libraryError(w, r, err)
		return nil, false
	}
	return lines, true
}

// Validate handles POST /api/orders.
func (h *OrdersHandler) Validate(w http.ResponseWriter, r *http.Request) {
	if lines, ok := h.prepare(w, r); ok {
		jsonResponse(w, http.StatusOK, lines)
	}
}

// Export handles POST /api/orders/export.
func (h *OrdersHandler) Export(w http.ResponseWriter, r *http.Request) {
	lines, ok := h.prepare(w, r)
	if !ok {
		return
	}
	attachment(w, xlsxContentType, export.OrderFileName(time.Now()))
	if err := export.WriteOrderXLSX(w, lines); err != nil {
		slog.Error("order export failed", "error", err)
		return
	}
	slog.Info("order exported", "user", username(r), "lines", len(lines))
}
