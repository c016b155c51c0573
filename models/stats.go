// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CategoryCount is a single row of the per-category breakdown.
type CategoryCount struct {
	Category Category
	Count    int
}

// Stats summarizes a recipe collection from the point of view of one user.
type Stats struct {
	// Total is the number of recipes in the collection.
	Total int
	// Mine is the number of recipes authored by the current user.
	Mine int
	// Favorites is the number of recipes flagged as favorite.
	Favorites int
	// ByCategory is sorted by Count descending; ties keep the order in which
	// the category was first encountered.
	ByCategory []CategoryCount
}
