// Package query derives the displayed views of a recipe collection: the
// filtered list and the statistics summary. Functions here never modify
// their input.
package query

import (
	"sort"
	"strings"

	"github.com/MKhiriev/go-cookbook/models"
)

// Filter returns the recipes of all that match query and category, in their
// original order.
//
// The query is trimmed and matched case-insensitively as a substring of the
// title, the ingredients or the category name. An empty query matches
// everything. Category [models.CategoryAll] applies no restriction,
// [models.CategoryFavorites] keeps favorites only, and any other value keeps
// recipes of exactly that category.
func Filter(all []models.Recipe, query string, category models.Category) []models.Recipe {
	needle := strings.ToLower(strings.TrimSpace(query))

	out := make([]models.Recipe, 0, len(all))
	for _, r := range all {
		if !matchesText(r, needle) || !matchesCategory(r, category) {
			continue
		}
		out = append(out, r)
	}

	return out
}

func matchesText(r models.Recipe, needle string) bool {
	if needle == "" {
		return true
	}

	return strings.Contains(strings.ToLower(r.Title), needle) ||
		strings.Contains(strings.ToLower(r.Ingredients), needle) ||
		strings.Contains(strings.ToLower(string(r.Category)), needle)
}

func matchesCategory(r models.Recipe, category models.Category) bool {
	switch category {
	case models.CategoryAll:
		return true
	case models.CategoryFavorites:
		return r.IsFavorite
	default:
		return r.Category == category
	}
}

// Statistics summarizes all from the point of view of currentUser.
// ByCategory is sorted by count, highest first; equal counts keep the order
// in which their category first appears in all.
func Statistics(all []models.Recipe, currentUser string) models.Stats {
	stats := models.Stats{
		Total:      len(all),
		ByCategory: []models.CategoryCount{},
	}

	position := make(map[models.Category]int)
	for _, r := range all {
		if r.IsAuthoredBy(currentUser) {
			stats.Mine++
		}
		if r.IsFavorite {
			stats.Favorites++
		}

		i, ok := position[r.Category]
		if !ok {
			i = len(stats.ByCategory)
			position[r.Category] = i
			stats.ByCategory = append(stats.ByCategory, models.CategoryCount{Category: r.Category})
		}
		stats.ByCategory[i].Count++
	}

	sort.SliceStable(stats.ByCategory, func(i, j int) bool {
		return stats.ByCategory[i].Count > stats.ByCategory[j].Count
	})

	return stats
}
