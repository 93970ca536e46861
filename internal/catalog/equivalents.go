package catalog

import (
	"strings"

	"github.com/erazemk/fastenerlib/internal/model"
)

// Criteria constrains technical attributes to exact, trimmed values.
type Criteria map[model.Attribute]string

// PrefillCriteria returns the base item's non-empty technical values.
func PrefillCriteria(base model.Item) Criteria {
	c := make(Criteria)
	for _, attr := range model.TechnicalAttributes {
		if v := strings.TrimSpace(base.Attr(attr)); v != "" {
			c[attr] = v
		}
	}
	return c
}

// Trimmed returns a copy with surrounding whitespace removed from every value
// and blank values dropped.
func (c Criteria) Trimmed() Criteria {
	out := make(Criteria, len(c))
	for attr, v := range c {
		if v = strings.TrimSpace(v); v != "" {
			out[attr] = v
		}
	}
	return out
}

func (c Criteria) match(it model.Item, skip model.Attribute) bool {
	for attr, want := range c {
		if attr == skip || want == "" {
			continue
		}
		if strings.TrimSpace(it.Attr(attr)) != want {
			return false
		}
	}
	return true
}

// EquivalentFacet is one criterion with the values still reachable under
// every other criterion.
type EquivalentFacet struct {
	Attribute model.Attribute `json:"attribute"`
	Selected  string          `json:"selected"`
	Options   []string        `json:"options"`
}

// Equivalents is the result of an equivalent-part search.
type Equivalents struct {
	Criteria Criteria          `json:"criteria"`
	Facets   []EquivalentFacet `json:"facets"`
	Matches  []model.Item      `json:"matches"`
}

// FindEquivalents returns the items satisfying every criterion, in article
// order, together with the cascading option list of each technical attribute.
func FindEquivalents(items []model.Item, crit Criteria) Equivalents {
	crit = crit.Trimmed()
	res := Equivalents{Criteria: crit, Matches: []model.Item{}}
	for _, it := range items {
		if crit.match(it, "") {
			res.Matches = append(res.Matches, it)
		}
	}
	res.Matches = Sort(res.Matches, SortArticle)

	for _, attr := range model.TechnicalAttributes {
		seen := make(map[string]bool)
		opts := []string{}
		for _, it := range items {
			if !crit.match(it, attr) {
				continue
			}
			v := strings.TrimSpace(it.Attr(attr))
			if v != "" && !seen[v] {
				seen[v] = true
				opts = append(opts, v)
			}
		}
		sortStrings(opts)
		sel := crit[attr]
		if sel != "" && !seen[sel] {
			opts = append([]string{sel}, opts...)
		}
		res.Facets = append(res.Facets, EquivalentFacet{Attribute: attr, Selected: sel, Options: opts})
	}
	return res
}
