package api

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/erazemk/fastenerlib/internal/catalog"
	"github.com/erazemk/fastenerlib/internal/imaging"
	"github.com/erazemk/fastenerlib/internal/inventory"
	"github.com/erazemk/fastenerlib/internal/model"
	"github.com/erazemk/fastenerlib/internal/stock"
	"github.com/erazemk/fastenerlib/internal/store"
)

// ItemsHandler handles item endpoints. MaxUpload limits photo uploads, in
// bytes.
type ItemsHandler struct {
	DB        *sql.DB
	Lib       *inventory.Library
	MaxUpload int64
}

type noteRequest struct {
	Notes string `json:"notes"`
}

type stockRequest struct {
	Direction string `json:"direction"`
	Amount    int    `json:"amount"`
	Unit      string `json:"unit"`
}

type stockResponse struct {
	Item   model.Item `json:"item"`
	Change int        `json:"change"`
}

// parseFlag reads an optional boolean query parameter.
func parseFlag(v url.Values, key string) (bool, error) {
	s := v.Get(key)
	if s == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %q", key, s)
	}
	return b, nil
}

// parseQuery builds a catalog query from the list parameters. A present
// qty_below enables the quantity filter; an empty value uses the default.
func parseQuery(v url.Values) (catalog.Query, error) {
	q := catalog.Query{
		Text:       v.Get("q"),
		Category:   v.Get("category"),
		Attributes: make(map[model.Attribute]string),
	}
	for _, attr := range model.FilterAttributes {
		if s := v.Get(string(attr)); s != "" {
			q.Attributes[attr] = s
		}
	}

	var err error
	if q.SampleOnly, err = parseFlag(v, "sample"); err != nil {
		return q, err
	}
	if q.LowStockOnly, err = parseFlag(v, "low"); err != nil {
		return q, err
	}
	if q.IncludeDummy, err = parseFlag(v, "dummy"); err != nil {
		return q, err
	}

	if v.Has("qty_below") {
		q.QtyBelowEnabled = true
		if s := v.Get("qty_below"); s != "" {
			if q.QtyBelow, err = strconv.Atoi(s); err != nil {
				return q, fmt.Errorf("invalid qty_below: %q", s)
			}
		}
	}

	sortKey, ok := catalog.ParseSortKey(v.Get("sort"))
	if !ok {
		return q, fmt.Errorf("invalid sort: %q", v.Get("sort"))
	}
	q.Sort = sortKey
	return q, nil
}

// List handles GET /api/items.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	q, err := parseQuery(r.URL.Query())
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	jsonResponse(w, http.StatusOK, h.Lib.View(q))
}

// Save handles POST /api/items.
func (h *ItemsHandler) Save(w http.ResponseWriter, r *http.Request) {
	var it model.Item
	if err := decodeJSON(r, &it); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	saved, err := h.Lib.Save(r.Context(), username(r), it)
	if err != nil {
		libraryError(w, r, err)
		return
	}
	jsonResponse(w, http.StatusOK, saved)
}

// Get handles GET /api/items/{article}.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	it, err := h.Lib.ViewDetail(r.Context(), username(r), r.PathValue("article"))
	if err != nil {
		libraryError(w, r, err)
		return
	}
	jsonResponse(w, http.StatusOK, it)
}

// Delete handles DELETE /api/items/{article}.
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Lib.Delete(r.Context(), username(r), r.PathValue("article")); err != nil {
		libraryError(w, r, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "item deleted"})
}

// SaveNote handles PUT /api/items/{article}/note.
func (h *ItemsHandler) SaveNote(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	it, err := h.Lib.SaveNote(r.Context(), username(r), r.PathValue("article"), req.Notes)
	if err != nil {
		libraryError(w, r, err)
		return
	}
	jsonResponse(w, http.StatusOK, it)
}

// Stock handles POST /api/items/{article}/stock.
func (h *ItemsHandler) Stock(w http.ResponseWriter, r *http.Request) {
	var req stockRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	dir, err := stock.ParseDirection(req.Direction)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	unit, err := stock.ParseUnit(req.Unit)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	m, err := h.Lib.Manage(r.Context(), username(r), r.PathValue("article"), req.Amount, unit, dir)
	if err != nil {
		libraryError(w, r, err)
		return
	}
	jsonResponse(w, http.StatusOK, stockResponse{Item: m.Item, Change: m.Change})
}

// Equivalents handles GET /api/items/{article}/equivalents. Criteria come
// from query parameters named after technical attributes; with none given
// the item's own values are used.
func (h *ItemsHandler) Equivalents(w http.ResponseWriter, r *http.Request) {
	crit := make(catalog.Criteria)
	for key, values := range r.URL.Query() {
		attr, ok := model.ParseAttribute(key)
		if !ok {
			jsonError(w, http.StatusBadRequest, fmt.Sprintf("unknown attribute %q", key))
			return
		}
		if len(values) > 0 {
			crit[attr] = values[0]
		}
	}

	eq, err := h.Lib.Equivalents(r.PathValue("article"), crit)
	if err != nil {
		libraryError(w, r, err)
		return
	}
	jsonResponse(w, http.StatusOK, eq)
}

// UploadPhoto handles PUT /api/items/{article}/photo.
func (h *ItemsHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	article := r.PathValue("article")
	if _, err := h.Lib.Get(article); err != nil {
		libraryError(w, r, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.MaxUpload)
	if err := r.ParseMultipartForm(h.MaxUpload); err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	file, _, err := r.FormFile("photo")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "photo file required")
		return
	}
	defer file.Close()

	res, err := imaging.Process(file)
	if errors.Is(err, imaging.ErrUnsupported) {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		slog.Warn("photo processing failed", "article", article, "error", err)
		jsonError(w, http.StatusBadRequest, "could not read image")
		return
	}

	if err := store.SetPhoto(r.Context(), h.DB, article, res.Data, res.MIME); err != nil {
		slog.Error("failed to store photo", "article", article, "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to save photo")
		return
	}

	it, err := h.Lib.AttachPhoto(r.Context(), username(r), article, imaging.PhotoName(article))
	if err != nil {
		libraryError(w, r, err)
		return
	}
	jsonResponse(w, http.StatusOK, it)
}

// GetPhoto handles GET /api/items/{article}/photo.
func (h *ItemsHandler) GetPhoto(w http.ResponseWriter, r *http.Request) {
	article := r.PathValue("article")
	it, err := store.GetItem(r.Context(), h.DB, article)
	if err != nil {
		slog.Error("failed to get item", "article", article, "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to get photo")
		return
	}
	if it == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	data, mime, err := store.GetPhoto(r.Context(), h.DB, article)
	if err != nil {
		slog.Error("failed to get photo", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to get photo")
		return
	}
	if data == nil {
		jsonError(w, http.StatusNotFound, "no photo")
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(data)
}

// FreeLocations handles GET /api/locations/free.
func (h *ItemsHandler) FreeLocations(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, h.Lib.FreeLocations(r.URL.Query().Get("article")))
}
