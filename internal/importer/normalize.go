// Package importer turns loosely typed spreadsheet or JSON rows into items.
package importer

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/erazemk/fastenerlib/internal/model"
)

// RawRow is one imported record keyed by column name.
type RawRow map[string]any

// Rejection explains why a row was skipped.
type Rejection struct {
	// Row is the 1-based position among data rows.
	Row     int    `json:"row"`
	Article string `json:"article,omitempty"`
	Reason  string `json:"reason"`
}

// Result is the outcome of normalizing a batch.
type Result struct {
	Items    []model.Item `json:"-"`
	Rejected []Rejection  `json:"rejected"`
}

// Rejection reasons.
var (
	ErrMissingArticle = errors.New("missing article")
	ErrQtyNotNumber   = errors.New("qty is not a number")
	ErrQtyNegative    = errors.New("qty is negative")
)

// Normalize coerces a row into an item. Strings are trimmed and default to
// empty, location defaults to the dummy slot, pack_size falls back to the
// legacy min_qty column and unusable pack sizes become 0.
func Normalize(row RawRow) (model.Item, error) {
	it := model.Item{
		Article:      row.str("article"),
		Name:         row.str("name"),
		BN:           row.str("bn"),
		Category:     row.str("category"),
		Location:     row.str("location"),
		Standard:     row.str("standard"),
		Head:         row.str("head"),
		Recess:       row.str("recess"),
		Dim1:         row.str("dim1"),
		Dim2:         row.str("dim2"),
		ThreadSize:   row.str("thread_size"),
		Length:       row.str("length"),
		Pitch:        row.str("pitch"),
		ShankLength:  row.str("shank_length"),
		HeadD:        row.str("head_d"),
		HeadH:        row.str("head_h"),
		AF:           row.str("af"),
		NutH:         row.str("nut_h"),
		WasherID:     row.str("washer_id"),
		WasherOD:     row.str("washer_od"),
		WasherT:      row.str("washer_t"),
		Material:     row.str("material"),
		Grade:        row.str("grade"),
		Plating:      row.str("plating"),
		FunctionCoat: row.str("function_coat"),
		HERisk:       row.str("he_risk"),
		Notes:        row.str("notes"),
		Photo:        row.str("photo"),
	}
	if it.Article == "" {
		return model.Item{}, ErrMissingArticle
	}
	if it.Location == "" {
		it.Location = model.DummyLocation
	}

	qty, ok := row.num("qty")
	if !ok {
		return model.Item{}, ErrQtyNotNumber
	}
	if qty < 0 {
		return model.Item{}, ErrQtyNegative
	}
	it.Qty = qty

	it.PackSize = row.size("pack_size")
	if it.PackSize == 0 {
		it.PackSize = row.size("min_qty")
	}
	it.SmallPack = row.size("small_pack")
	return it, nil
}

// Prepare normalizes rows and rejects any row whose location is held by a
// different article, either in existing or in an earlier accepted row. A
// later row for the same article replaces the earlier one.
func Prepare(rows []RawRow, existing []model.Item) Result {
	holder := make(map[string]string) // location -> article
	placed := make(map[string]string) // article -> location
	for _, it := range existing {
		if !it.IsDummy() && it.Location != "" {
			holder[it.Location] = it.Article
			placed[it.Article] = it.Location
		}
	}

	res := Result{Rejected: []Rejection{}}
	index := make(map[string]int)
	for i, row := range rows {
		it, err := Normalize(row)
		if err != nil {
			res.Rejected = append(res.Rejected, Rejection{Row: i + 1, Article: row.str("article"), Reason: err.Error()})
			continue
		}

		if !it.IsDummy() {
			if h, ok := holder[it.Location]; ok && h != it.Article {
				res.Rejected = append(res.Rejected, Rejection{
					Row: i + 1, Article: it.Article,
					Reason: fmt.Sprintf("location %s is taken by %s", it.Location, h),
				})
				continue
			}
		}
		if prev, ok := placed[it.Article]; ok {
			delete(holder, prev)
			delete(placed, it.Article)
		}
		if !it.IsDummy() {
			holder[it.Location] = it.Article
			placed[it.Article] = it.Location
		}

		if j, ok := index[it.Article]; ok {
			res.Items[j] = it
			continue
		}
		index[it.Article] = len(res.Items)
		res.Items = append(res.Items, it)
	}
	return res
}

func (r RawRow) str(key string) string {
	switch v := r[key].(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

// num reads a whole number, truncating fractions. Missing and empty values
// are 0. ok is false when the value is present but not numeric.
func (r RawRow) num(key string) (n int, ok bool) {
	switch v := r[key].(type) {
	case nil:
		return 0, true
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return int(v), true
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, true
		}
		if i, err := strconv.Atoi(s); err == nil {
			return i, true
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return int(f), true
	}
	return 0, false
}

// size reads a pack size; anything unusable becomes 0.
func (r RawRow) size(key string) int {
	n, ok := r.num(key)
	if !ok || n < 0 {
		return 0
	}
	return n
}
