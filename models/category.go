// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Category classifies a recipe. The set is fixed; two members are virtual and
// only ever used as filter selectors.
type Category string

const (
	// CategoryAll is the filter-only selector that applies no category restriction.
	CategoryAll Category = "All recipes"

	// CategoryBreakfasts groups morning dishes.
	CategoryBreakfasts Category = "Breakfasts"

	// CategoryMainDishes is the default category of a new recipe.
	CategoryMainDishes Category = "Main dishes"

	// CategoryDesserts groups sweet dishes and baking.
	CategoryDesserts Category = "Desserts"

	// CategoryDrinks groups beverages.
	CategoryDrinks Category = "Drinks"

	// CategoryAppetizers groups starters and snacks.
	CategoryAppetizers Category = "Appetizers"

	// CategoryFavorites is the filter-only selector that keeps favorite recipes.
	CategoryFavorites Category = "Favorites"
)

// DefaultCategory is assigned to a recipe created without an explicit category.
const DefaultCategory = CategoryMainDishes

// Categories returns every category in chooser order, virtual selectors included.
func Categories() []Category {
	return []Category{
		CategoryAll,
		CategoryBreakfasts,
		CategoryMainDishes,
		CategoryDesserts,
		CategoryDrinks,
		CategoryAppetizers,
		CategoryFavorites,
	}
}

// AssignableCategories returns the categories a recipe may be created with.
// The virtual selectors [CategoryAll] and [CategoryFavorites] are excluded.
func AssignableCategories() []Category {
	out := make([]Category, 0, len(Categories()))
	for _, c := range Categories() {
		if c.IsVirtual() {
			continue
		}
		out = append(out, c)
	}
	return out
}

// IsVirtual reports whether c is a filter-only selector.
func (c Category) IsVirtual() bool {
	return c == CategoryAll || c == CategoryFavorites
}

// IsAssignable reports whether c may be stored on a recipe.
func (c Category) IsAssignable() bool {
	for _, a := range AssignableCategories() {
		if a == c {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	return string(c)
}
