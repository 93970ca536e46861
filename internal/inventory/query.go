package inventory

import (
	"slices"

	"github.com/erazemk/fastenerlib/internal/catalog"
	"github.com/erazemk/fastenerlib/internal/model"
)

// View is a filtered, sorted page of the library with its facet options.
type View struct {
	Items      []model.Item    `json:"items"`
	Facets     []catalog.Facet `json:"facets"`
	Categories []string        `json:"categories"`
	Count      int             `json:"count"`
	Total      int             `json:"total"`
}

// View runs q against the cached items.
func (l *Library) View(q catalog.Query) View {
	if q.QtyBelowEnabled && q.QtyBelow == 0 {
		q.QtyBelow = l.qtyBelowDefault
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	items := l.items

	filtered := catalog.Sort(catalog.Apply(items, q), q.Sort)
	return View{
		Items:      filtered,
		Facets:     catalog.Facets(items, q),
		Categories: catalog.CategoryOptions(items, q),
		Count:      len(filtered),
		Total:      len(items),
	}
}

// FreeLocations lists the slots article may move to.
func (l *Library) FreeLocations(article string) []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return catalog.FreeLocations(l.items, article)
}

// Equivalents searches for parts matching crit. Empty criteria are filled
// from the base article's technical attributes.
func (l *Library) Equivalents(article string, crit catalog.Criteria) (catalog.Equivalents, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	base, i := l.find(article)
	if i < 0 {
		return catalog.Equivalents{}, notFound(article)
	}
	for attr := range crit {
		if !slices.Contains(model.TechnicalAttributes, attr) {
			return catalog.Equivalents{}, invalidf("%s is not a technical attribute", attr)
		}
	}
	if len(crit.Trimmed()) == 0 {
		crit = catalog.PrefillCriteria(base)
	}
	return catalog.FindEquivalents(l.items, crit), nil
}
