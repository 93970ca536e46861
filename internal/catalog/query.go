// Package catalog implements the faceted query engine over the item list:
// filtering, cascading facet options, sorting and equivalent-part search.
package catalog

import (
	"strings"

	"github.com/erazemk/fastenerlib/internal/model"
)

// DefaultQtyBelow is the threshold used when the quantity filter is enabled
// without a usable limit.
const DefaultQtyBelow = 10

// Query is a composite filter over the item list. The zero value matches
// every item except those in the dummy location.
type Query struct {
	// Text is matched case-insensitively as a substring of the item's
	// searchable fields.
	Text     string
	Category string
	// Attributes maps a facet to the exact value it must equal. For the
	// location facet the DummyLabel selects the dummy sentinel.
	Attributes map[model.Attribute]string

	SampleOnly   bool
	LowStockOnly bool
	IncludeDummy bool

	QtyBelowEnabled bool
	QtyBelow        int

	Sort SortKey
}

// Without returns a copy of q with the given facet constraint cleared.
func (q Query) Without(attr model.Attribute) Query {
	if attr == model.AttrCategory {
		q.Category = ""
		return q
	}
	attrs := make(map[model.Attribute]string, len(q.Attributes))
	for k, v := range q.Attributes {
		if k != attr {
			attrs[k] = v
		}
	}
	q.Attributes = attrs
	return q
}

// Apply returns the items matching every constraint of q, in input order.
// The input slice is not modified.
func Apply(items []model.Item, q Query) []model.Item {
	text := strings.ToLower(strings.TrimSpace(q.Text))
	out := make([]model.Item, 0, len(items))
	for _, it := range items {
		if matches(it, q, text) {
			out = append(out, it)
		}
	}
	return out
}

func matches(it model.Item, q Query, text string) bool {
	if text != "" && !strings.Contains(searchText(it), text) {
		return false
	}
	if q.Category != "" && it.Category != q.Category {
		return false
	}
	for _, attr := range model.FilterAttributes {
		want := q.Attributes[attr]
		if want == "" {
			continue
		}
		if attr == model.AttrLocation && want == model.DummyLabel {
			want = model.DummyLocation
		}
		if it.Attr(attr) != want {
			return false
		}
	}
	if q.SampleOnly && it.Qty <= 0 {
		return false
	}
	if q.LowStockOnly && !(it.PackSize > 0 && it.Qty < it.PackSize) {
		return false
	}
	if !q.IncludeDummy && it.IsDummy() {
		return false
	}
	if q.QtyBelowEnabled && it.Qty >= q.qtyLimit() {
		return false
	}
	return true
}

func (q Query) qtyLimit() int {
	if q.QtyBelow == 0 {
		return DefaultQtyBelow
	}
	return q.QtyBelow
}

func searchText(it model.Item) string {
	return strings.ToLower(strings.Join([]string{
		it.Article, it.Name, it.BN, it.Category, it.Standard, it.Head, it.Recess,
		it.Material, it.Grade, it.Plating, it.Dim1, it.Dim2, it.Location, it.Notes,
	}, " "))
}
