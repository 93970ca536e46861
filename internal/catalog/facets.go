package catalog

import (
	"slices"

	"github.com/erazemk/fastenerlib/internal/model"
)

// Facet is the option set of one filter attribute under a query.
type Facet struct {
	Attribute model.Attribute `json:"attribute"`
	Selected  string          `json:"selected"`
	Options   []string        `json:"options"`
}

// Options returns the distinct values of attr among the items that match q
// with the attr constraint removed. Locations use their display label, with
// the dummy label last. A selected value that no longer occurs is kept as
// the first option so the selection survives recomputation.
func Options(items []model.Item, q Query, attr model.Attribute) []string {
	var selected string
	if attr == model.AttrCategory {
		selected = q.Category
	} else {
		selected = q.Attributes[attr]
	}

	seen := make(map[string]bool)
	var values []string
	for _, it := range Apply(items, q.Without(attr)) {
		v := it.Attr(attr)
		if attr == model.AttrLocation {
			v = model.LocationLabel(v)
		}
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	sortStrings(values)
	if attr == model.AttrLocation && seen[model.DummyLabel] {
		values = slices.DeleteFunc(values, func(v string) bool { return v == model.DummyLabel })
		values = append(values, model.DummyLabel)
	}

	if selected != "" && !seen[selected] {
		values = append([]string{selected}, values...)
	}
	if values == nil {
		values = []string{}
	}
	return values
}

// CategoryOptions returns the categories selectable under every constraint
// of q except the category itself.
func CategoryOptions(items []model.Item, q Query) []string {
	return Options(items, q, model.AttrCategory)
}

// Facets computes the option set of every filter attribute.
func Facets(items []model.Item, q Query) []Facet {
	facets := make([]Facet, 0, len(model.FilterAttributes))
	for _, attr := range model.FilterAttributes {
		facets = append(facets, Facet{
			Attribute: attr,
			Selected:  q.Attributes[attr],
			Options:   Options(items, q, attr),
		})
	}
	return facets
}
