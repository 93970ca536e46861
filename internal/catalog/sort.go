package catalog

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/erazemk/fastenerlib/internal/model"
)

// SortKey selects the ordering of a view.
type SortKey string

// Sort keys.
const (
	SortArticle  SortKey = "article"
	SortBN       SortKey = "bn"
	SortLocation SortKey = "location"
	SortName     SortKey = "name"
	SortQty      SortKey = "qty"
)

// ParseSortKey returns the sort key for s, defaulting to SortArticle for an
// empty string.
func ParseSortKey(s string) (SortKey, bool) {
	switch k := SortKey(s); k {
	case "":
		return SortArticle, true
	case SortArticle, SortBN, SortLocation, SortName, SortQty:
		return k, true
	}
	return "", false
}

// newCollator returns a case-insensitive collator that orders digit runs by
// numeric value. A Collator is not safe for concurrent use.
func newCollator() *collate.Collator {
	return collate.New(language.Und, collate.Numeric, collate.IgnoreCase, collate.IgnoreDiacritics)
}

// Sort returns a new slice with items ordered by key. Equal keys fall back to
// the article code, then to input order.
func Sort(items []model.Item, key SortKey) []model.Item {
	out := slices.Clone(items)
	col := newCollator()
	text := func(a, b string) int {
		return col.CompareString(strings.TrimSpace(a), strings.TrimSpace(b))
	}

	slices.SortStableFunc(out, func(a, b model.Item) int {
		var c int
		switch key {
		case SortBN:
			c = text(a.BN, b.BN)
		case SortName:
			c = text(a.Name, b.Name)
		case SortQty:
			c = cmp.Compare(a.Qty, b.Qty)
		case SortLocation:
			ad, bd := a.IsDummy(), b.IsDummy()
			switch {
			case ad && !bd:
				return 1
			case bd && !ad:
				return -1
			}
			c = text(a.Location, b.Location)
		}
		if c != 0 {
			return c
		}
		return text(a.Article, b.Article)
	})
	return out
}

// sortStrings orders option values the same way item keys are ordered.
func sortStrings(values []string) {
	col := newCollator()
	slices.SortStableFunc(values, func(a, b string) int {
		if c := col.CompareString(a, b); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
}
