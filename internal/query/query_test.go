package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-cookbook/models"
)

func sampleRecipes() []models.Recipe {
	return []models.Recipe{
		{ID: "1", Title: "Omelet with cheese", Ingredients: "Eggs, Milk, Cheese", Category: models.CategoryBreakfasts, Author: "admin"},
		{ID: "2", Title: "Borscht", Ingredients: "Beets, Cabbage", Category: models.CategoryMainDishes, Author: "chef"},
		{ID: "3", Title: "Chocolate cake", Ingredients: "Flour, Cocoa, Eggs", Category: models.CategoryDesserts, Author: "admin", IsFavorite: true},
		{ID: "4", Title: "Lemonade", Ingredients: "Lemons, Water", Category: models.CategoryDrinks, Author: "user", IsFavorite: true},
		{ID: "5", Title: "Fried eggs", Ingredients: "Eggs", Category: models.CategoryBreakfasts, Author: "chef"},
	}
}

func ids(recipes []models.Recipe) []string {
	out := make([]string, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, r.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	all := sampleRecipes()

	tests := []struct {
		name     string
		query    string
		category models.Category
		want     []string
	}{
		{name: "all and empty query", query: "", category: models.CategoryAll, want: []string{"1", "2", "3", "4", "5"}},
		{name: "title match is case-insensitive", query: "BORSCHT", category: models.CategoryAll, want: []string{"2"}},
		{name: "ingredients match", query: "eggs", category: models.CategoryAll, want: []string{"1", "3", "5"}},
		{name: "category name match", query: "dessert", category: models.CategoryAll, want: []string{"3"}},
		{name: "query is trimmed", query: "  cake ", category: models.CategoryAll, want: []string{"3"}},
		{name: "favorites only", query: "", category: models.CategoryFavorites, want: []string{"3", "4"}},
		{name: "favorites and query", query: "eggs", category: models.CategoryFavorites, want: []string{"3"}},
		{name: "exact category", query: "", category: models.CategoryBreakfasts, want: []string{"1", "5"}},
		{name: "category and query", query: "fried", category: models.CategoryBreakfasts, want: []string{"5"}},
		{name: "category is case-sensitive", query: "", category: "breakfasts", want: []string{}},
		{name: "no match", query: "sushi", category: models.CategoryAll, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(all, tt.query, tt.category)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilter_Idempotent(t *testing.T) {
	all := sampleRecipes()

	once := Filter(all, "eggs", models.CategoryBreakfasts)
	twice := Filter(once, "eggs", models.CategoryBreakfasts)

	assert.Equal(t, once, twice)
}

func TestFilter_AllEmptyReturnsInputUnchanged(t *testing.T) {
	all := sampleRecipes()

	assert.Equal(t, all, Filter(all, "", models.CategoryAll))
}

func TestFilter_FavoritesExactly(t *testing.T) {
	all := sampleRecipes()

	got := Filter(all, "", models.CategoryFavorites)
	for _, r := range got {
		assert.True(t, r.IsFavorite)
	}

	favorites := 0
	for _, r := range all {
		if r.IsFavorite {
			favorites++
		}
	}
	assert.Len(t, got, favorites)
}

func TestFilter_DoesNotModifyInput(t *testing.T) {
	all := sampleRecipes()
	before := sampleRecipes()

	_ = Filter(all, "eggs", models.CategoryFavorites)

	assert.Equal(t, before, all)
}

func TestStatistics(t *testing.T) {
	stats := Statistics(sampleRecipes(), "admin")

	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 2, stats.Mine)
	assert.Equal(t, 2, stats.Favorites)
	assert.Equal(t, []models.CategoryCount{
		{Category: models.CategoryBreakfasts, Count: 2},
		{Category: models.CategoryMainDishes, Count: 1},
		{Category: models.CategoryDesserts, Count: 1},
		{Category: models.CategoryDrinks, Count: 1},
	}, stats.ByCategory)
}

func TestStatistics_TiesKeepFirstEncounteredOrder(t *testing.T) {
	all := []models.Recipe{
		{Category: models.CategoryDrinks},
		{Category: models.CategoryDesserts},
		{Category: models.CategoryDesserts},
		{Category: models.CategoryDrinks},
		{Category: models.CategoryAppetizers},
	}

	stats := Statistics(all, "nobody")

	require.Len(t, stats.ByCategory, 3)
	assert.Equal(t, models.CategoryDrinks, stats.ByCategory[0].Category)
	assert.Equal(t, models.CategoryDesserts, stats.ByCategory[1].Category)
	assert.Equal(t, models.CategoryAppetizers, stats.ByCategory[2].Category)
	assert.Zero(t, stats.Mine)
}

func TestStatistics_Empty(t *testing.T) {
	stats := Statistics(nil, "admin")

	assert.Zero(t, stats.Total)
	assert.Empty(t, stats.ByCategory)
}
