// Package audit renders change records: field diffs for saves and the plain
// text log export.
package audit

import (
	"fmt"
	"strings"

	"github.com/erazemk/fastenerlib/internal/model"
)

// NoChanges is the summary of a save that changed nothing.
const NoChanges = "No significant changes"

// Diff summarizes how new differs from old. A nil old item is compared as
// if every field were empty.
func Diff(old *model.Item, new model.Item) string {
	var before []model.Field
	if old != nil {
		before = old.Fields()
	}
	return DiffFields(before, new.Fields())
}

// DiffFields compares two field lists by name, in the order of after. Values
// are compared by their trimmed text, with nil, empty strings and numeric
// zero all treated as absent. The new value is printed as given, so a
// quantity set to zero reads "-> 0".
func DiffFields(before, after []model.Field) string {
	prev := make(map[string]any, len(before))
	for _, f := range before {
		prev[f.Name] = f.Value
	}

	var changes []string
	for _, f := range after {
		o, n := normalize(prev[f.Name]), normalize(f.Value)
		if o != n {
			changes = append(changes, fmt.Sprintf("%s: %s -> %s", f.Name, o, display(f.Value)))
		}
	}
	if len(changes) == 0 {
		return NoChanges
	}
	return strings.Join(changes, ", ")
}

func display(v any) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(v))
}

func normalize(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(x)
	case int:
		if x == 0 {
			return ""
		}
	case int64:
		if x == 0 {
			return ""
		}
	case float64:
		if x == 0 {
			return ""
		}
	case bool:
		if !x {
			return ""
		}
	}
	return strings.TrimSpace(fmt.Sprint(v))
}
