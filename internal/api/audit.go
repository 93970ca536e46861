package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/erazemk/fastenerlib/internal/audit"
	"github.com/erazemk/fastenerlib/internal/inventory"
	"github.com/erazemk/fastenerlib/internal/model"
)

// AuditHandler serves the change log.
type AuditHandler struct {
	Lib *inventory.Library
}

// List handles GET /api/audit. An optional limit caps the number of records.
func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			jsonError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	records, err := h.Lib.AuditLog(r.Context(), limit)
	if err != nil {
		libraryError(w, r, err)
		return
	}
	if records == nil {
		records = []model.ChangeRecord{}
	}
	jsonResponse(w, http.StatusOK, records)
}

// Export handles GET /api/audit/export.
func (h *AuditHandler) Export(w http.ResponseWriter, r *http.Request) {
	records, err := h.Lib.AuditLog(r.Context(), 0)
	if err != nil {
		libraryError(w, r, err)
		return
	}
	now := time.Now()
	attachment(w, "text/plain; charset=utf-8", "audit-"+now.Format("2006-01-02")+".txt")
	if err := audit.WriteText(w, records, time.Local); err != nil {
		slog.Error("audit export failed", "error", err)
	}
}
