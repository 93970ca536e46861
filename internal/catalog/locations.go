package catalog

import (
	"fmt"

	"github.com/erazemk/fastenerlib/internal/model"
)

// FreeLocations lists the dummy location followed by every slot A01..Z99
// that no other article occupies. The slot held by article stays listed.
func FreeLocations(items []model.Item, article string) []string {
	taken := make(map[string]bool, len(items))
	for _, it := range items {
		if it.Article != article && !it.IsDummy() && it.Location != "" {
			taken[it.Location] = true
		}
	}

	free := []string{model.DummyLocation}
	for row := 'A'; row <= 'Z'; row++ {
		for n := 1; n <= 99; n++ {
			loc := fmt.Sprintf("%c%02d", row, n)
			if !taken[loc] {
				free = append(free, loc)
			}
		}
	}
	return free
}

// LocationHolder returns the article other than article that occupies
// location, or "" when the slot is free. The dummy location is never held.
func LocationHolder(items []model.Item, location, article string) string {
	if location == "" || location == model.DummyLocation {
		return ""
	}
	for _, it := range items {
		if it.Location == location && it.Article != article {
			return it.Article
		}
	}
	return ""
}
