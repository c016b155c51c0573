// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-cookbook/internal/utils"
	"github.com/MKhiriev/go-cookbook/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sequenceIDs struct {
	next int
}

func (s *sequenceIDs) Generate() string {
	s.next++
	return fmt.Sprintf("id-%d", s.next)
}

var loadedAt = time.Date(2026, time.October, 15, 12, 0, 0, 0, time.UTC)

func newTestCodec() *RecipeCodec {
	return NewRecipeCodec(&sequenceIDs{}, utils.FixedClock(loadedAt))
}

func TestRecipeCodec_Encode(t *testing.T) {
	c := newTestCodec()

	t.Run("empty list", func(t *testing.T) {
		assert.Equal(t, "", c.Encode(nil))
		assert.Equal(t, "", c.Encode([]models.Recipe{}))
	})

	t.Run("field order and separators", func(t *testing.T) {
		got := c.Encode([]models.Recipe{
			{Title: "Tea", Ingredients: "water, leaves", Instructions: "brew", Category: models.CategoryDrinks, Author: "chef", IsFavorite: true},
			{Title: "Toast", Ingredients: "bread", Instructions: "1. toast\n2. eat", Category: models.CategoryBreakfasts, Author: "admin"},
		})
		assert.Equal(t, "Tea;water, leaves;brew;Drinks;chef;true|Toast;bread;1. toast\n2. eat;Breakfasts;admin;false", got)
	})

	t.Run("fields not carried by the format are dropped", func(t *testing.T) {
		got := c.Encode([]models.Recipe{{
			ID: "x", Title: "T", Ingredients: "I", Instructions: "S", Category: models.CategoryDesserts,
			CookingTimeMinutes: 90, Author: "a", CreatedAt: time.Now(),
		}})
		assert.Equal(t, "T;I;S;Desserts;a;false", got)
	})
}

func TestRecipeCodec_Decode(t *testing.T) {
	t.Run("empty string", func(t *testing.T) {
		recipes, skipped := newTestCodec().Decode("")
		assert.Empty(t, recipes)
		assert.NotNil(t, recipes)
		assert.Zero(t, skipped)
	})

	t.Run("defaults for fields the format does not carry", func(t *testing.T) {
		recipes, skipped := newTestCodec().Decode("Tea;water;brew;Drinks;chef;true")
		require.Len(t, recipes, 1)
		assert.Zero(t, skipped)
		assert.Equal(t, models.Recipe{
			ID:                 "id-1",
			Title:              "Tea",
			Ingredients:        "water",
			Instructions:       "brew",
			Category:           models.CategoryDrinks,
			CookingTimeMinutes: models.DefaultCookingTimeMinutes,
			Author:             "chef",
			CreatedAt:          loadedAt,
			IsFavorite:         true,
		}, recipes[0])
	})

	t.Run("malformed records are skipped", func(t *testing.T) {
		recipes, skipped := newTestCodec().Decode("A;b;c;Drinks;u;false|broken;record|B;b;c;Desserts;u;true|")
		require.Len(t, recipes, 2)
		assert.Equal(t, 2, skipped)
		assert.Equal(t, "A", recipes[0].Title)
		assert.Equal(t, "B", recipes[1].Title)
	})

	t.Run("extra fields are ignored", func(t *testing.T) {
		recipes, skipped := newTestCodec().Decode("A;b;c;Drinks;u;true;extra;more")
		require.Len(t, recipes, 1)
		assert.Zero(t, skipped)
		assert.Equal(t, "u", recipes[0].Author)
		assert.True(t, recipes[0].IsFavorite)
	})

	t.Run("favorite flag parsing", func(t *testing.T) {
		tests := map[string]bool{
			"true":  true,
			"TRUE":  true,
			"True":  true,
			"false": false,
			"yes":   false,
			"1":     false,
			"":      false,
			" true": false,
		}
		for raw, want := range tests {
			recipes, _ := newTestCodec().Decode("A;b;c;Drinks;u;" + raw)
			require.Len(t, recipes, 1, raw)
			assert.Equal(t, want, recipes[0].IsFavorite, "raw value %q", raw)
		}
	})

	t.Run("unknown category is kept verbatim", func(t *testing.T) {
		recipes, _ := newTestCodec().Decode("A;b;c;Soups;u;false")
		require.Len(t, recipes, 1)
		assert.Equal(t, models.Category("Soups"), recipes[0].Category)
	})
}

func TestRecipeCodec_RoundTrip(t *testing.T) {
	c := newTestCodec()
	original := []models.Recipe{
		{Title: "Omelet", Ingredients: "eggs, milk", Instructions: "1. whisk\n2. fry", Category: models.CategoryBreakfasts, Author: "admin"},
		{Title: "Cake", Ingredients: "flour", Instructions: "bake", Category: models.CategoryDesserts, Author: "chef", IsFavorite: true},
		{Title: "Lemonade", Ingredients: "lemons, sugar", Instructions: "mix", Category: models.CategoryDrinks, Author: "user"},
	}

	decoded, skipped := c.Decode(c.Encode(original))
	require.Zero(t, skipped)
	require.Len(t, decoded, len(original))

	for i := range original {
		assert.Equal(t, original[i].Title, decoded[i].Title)
		assert.Equal(t, original[i].Ingredients, decoded[i].Ingredients)
		assert.Equal(t, original[i].Instructions, decoded[i].Instructions)
		assert.Equal(t, original[i].Category, decoded[i].Category)
		assert.Equal(t, original[i].Author, decoded[i].Author)
		assert.Equal(t, original[i].IsFavorite, decoded[i].IsFavorite)
	}

	assert.Equal(t, c.Encode(original), c.Encode(decoded))
}

func TestRecipeCodec_DelimiterInFieldCorruptsRecord(t *testing.T) {
	c := newTestCodec()
	raw := c.Encode([]models.Recipe{
		{Title: "Salt|Pepper", Ingredients: "a;b", Instructions: "c", Category: models.CategoryAppetizers, Author: "u"},
	})

	decoded, skipped := c.Decode(raw)
	assert.Equal(t, 1, skipped)
	require.Len(t, decoded, 1)
	assert.Equal(t, "Pepper", decoded[0].Title)
	assert.Equal(t, "a", decoded[0].Ingredients)
}
