// Package menu derives the customer-visible item list from raw rows plus the
// active search term and category filter. Everything here is a pure function
// of its inputs; callers recompute on every relevant state change.
package menu

import (
	"strings"

	"github.com/masagus/menuku/internal/model"
)

// AllCategories is the sentinel filter value meaning "no category filter".
// The empty string is treated the same so callers using localized sentinel
// labels can map them to "" instead of threading display strings through.
const AllCategories = "Semua Kategori"

// Project returns the items matching the given filters, preserving relative
// order. Category matching is exact and case-sensitive; the search term
// matches case-insensitively against name or description. Both filters
// compose by conjunction.
func Project(items []model.MenuItem, searchTerm, categoryFilter string) []model.MenuItem {
	out := make([]model.MenuItem, 0, len(items))
	search := strings.ToLower(searchTerm)
	filterAll := categoryFilter == "" || categoryFilter == AllCategories

	for _, item := range items {
		if !filterAll && item.Category != categoryFilter {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(item.Name), search) &&
			!strings.Contains(strings.ToLower(item.Description), search) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Categories collects the distinct category values across all items in
// first-seen order, prefixed with the AllCategories sentinel.
func Categories(items []model.MenuItem) []string {
	out := []string{AllCategories}
	seen := make(map[string]bool)
	for _, item := range items {
		if seen[item.Category] {
			continue
		}
		seen[item.Category] = true
		out = append(out, item.Category)
	}
	return out
}
