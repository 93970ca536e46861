package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/erazemk/fastenerlib/internal/export"
	"github.com/erazemk/fastenerlib/internal/importer"
	"github.com/erazemk/fastenerlib/internal/inventory"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// InventoryHandler handles bulk import and export endpoints.
type InventoryHandler struct {
	Lib *inventory.Library
	// MaxUpload limits import uploads, in bytes.
	MaxUpload int64
}

// Import handles POST /api/import?mode=merge|replace.
func (h *InventoryHandler) Import(w http.ResponseWriter, r *http.Request) {
	var replace bool
	switch mode := r.URL.Query().Get("mode"); mode {
	case "", "merge":
	case "replace":
		replace = true
	default:
		jsonError(w, http.StatusBadRequest, "mode must be merge or replace")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.MaxUpload)
	if err := r.ParseMultipartForm(h.MaxUpload); err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "file required")
		return
	}
	defer file.Close()

	rows, err := importer.Read(header.Filename, file)
	if errors.Is(err, importer.ErrUnsupportedFormat) {
		jsonError(w, http.StatusBadRequest, "file must be .xlsx or .json")
		return
	}
	if err != nil {
		slog.Warn("reading import file failed", "file", header.Filename, "error", err)
		jsonError(w, http.StatusBadRequest, "could not read file")
		return
	}

	res, err := h.Lib.Import(r.Context(), username(r), rows, replace)
	if err != nil {
		libraryError(w, r, err)
		return
	}
	jsonResponse(w, http.StatusOK, res)
}

// ExportItems handles GET /api/export/items.
func (h *InventoryHandler) ExportItems(w http.ResponseWriter, r *http.Request) {
	attachment(w, xlsxContentType, export.ItemsFileName(time.Now()))
	if err := export.WriteItemsXLSX(w, h.Lib.Items()); err != nil {
		slog.Error("items export failed", "error", err)
	}
}

// Backup handles GET /api/export/backup.
func (h *InventoryHandler) Backup(w http.ResponseWriter, r *http.Request) {
	b, err := h.Lib.Backup(r.Context(), username(r))
	if err != nil {
		libraryError(w, r, err)
		return
	}
	attachment(w, "application/json", export.BackupFileName(b.ExportedAt))
	if err := export.WriteBackup(w, b); err != nil {
		slog.Error("backup export failed", "error", err)
	}
}
