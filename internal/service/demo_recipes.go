package service

import (
	"github.com/MKhiriev/go-cookbook/internal/utils"
	"github.com/MKhiriev/go-cookbook/models"
)

// DemoRecipes returns fresh copies of the three demo recipes, each with a
// new id and the current time.
func DemoRecipes(ids utils.IDGenerator, clock utils.Clock) []models.Recipe {
	now := clock()

	return []models.Recipe{
		{
			ID:                 ids.Generate(),
			Title:              "Omelet with cheese",
			Ingredients:        "Eggs - 3 pcs, Milk - 50 ml, Cheese - 50 g, Salt, Pepper",
			Instructions:       "1. Whisk eggs with milk\n2. Add salt and pepper\n3. Pour into the pan\n4. Sprinkle with cheese\n5. Fry for 5-7 minutes",
			Category:           models.CategoryBreakfasts,
			CookingTimeMinutes: 15,
			Author:             "admin",
			CreatedAt:          now,
		},
		{
			ID:                 ids.Generate(),
			Title:              "Borscht",
			Ingredients:        "Beets - 2 pcs, Potatoes - 3 pcs, Cabbage - 200 g, Meat - 300 g, Sour cream",
			Instructions:       "1. Cook meat broth\n2. Add chopped vegetables\n3. Simmer for 40 minutes\n4. Serve with sour cream",
			Category:           models.CategoryMainDishes,
			CookingTimeMinutes: 60,
			Author:             "chef",
			CreatedAt:          now,
		},
		{
			ID:                 ids.Generate(),
			Title:              "Chocolate cake",
			Ingredients:        "Flour - 200 g, Cocoa - 50 g, Eggs - 4 pcs, Sugar - 150 g, Butter - 100 g",
			Instructions:       "1. Mix dry ingredients\n2. Add eggs and butter\n3. Bake for 30 minutes at 180°C\n4. Decorate with cream",
			Category:           models.CategoryDesserts,
			CookingTimeMinutes: 45,
			Author:             "admin",
			CreatedAt:          now,
			IsFavorite:         true,
		},
	}
}
