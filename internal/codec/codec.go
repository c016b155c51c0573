// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package codec converts a recipe list to and from its persisted string form.
//
// The format is positional and unescaped: recipes are joined by "|" and the
// fields of one recipe are joined by ";" in the order
//
//	title;ingredients;instructions;category;author;isFavorite
//
// Field values containing either delimiter corrupt the encoding. Any change
// to escaping must bump the format and stay inside this package.
package codec

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/go-cookbook/internal/utils"
	"github.com/MKhiriev/go-cookbook/models"
)

const (
	// RecordSeparator joins encoded recipes.
	RecordSeparator = "|"

	// FieldSeparator joins the fields of one encoded recipe.
	FieldSeparator = ";"

	// FieldCount is the minimum number of fields of an accepted record.
	FieldCount = 6
)

const (
	fieldTitle = iota
	fieldIngredients
	fieldInstructions
	fieldCategory
	fieldAuthor
	fieldFavorite
)

// RecipeCodec encodes and decodes recipe lists. Fields that the format does
// not carry (id, cooking time, creation time) are filled with creation
// defaults on decode.
type RecipeCodec struct {
	ids   utils.IDGenerator
	clock utils.Clock
}

// NewRecipeCodec constructs a [RecipeCodec].
func NewRecipeCodec(ids utils.IDGenerator, clock utils.Clock) *RecipeCodec {
	return &RecipeCodec{ids: ids, clock: clock}
}

// Encode serializes recipes. An empty list encodes to "".
func (c *RecipeCodec) Encode(recipes []models.Recipe) string {
	records := make([]string, 0, len(recipes))
	for _, r := range recipes {
		records = append(records, strings.Join([]string{
			r.Title,
			r.Ingredients,
			r.Instructions,
			string(r.Category),
			r.Author,
			strconv.FormatBool(r.IsFavorite),
		}, FieldSeparator))
	}

	return strings.Join(records, RecordSeparator)
}

// Decode parses raw and returns the accepted recipes together with the
// number of records that were dropped for having fewer than [FieldCount]
// fields. Fields beyond the sixth are ignored.
func (c *RecipeCodec) Decode(raw string) (recipes []models.Recipe, skipped int) {
	if raw == "" {
		return []models.Recipe{}, 0
	}

	records := strings.Split(raw, RecordSeparator)
	recipes = make([]models.Recipe, 0, len(records))
	for _, record := range records {
		parts := strings.Split(record, FieldSeparator)
		if len(parts) < FieldCount {
			skipped++
			continue
		}

		recipes = append(recipes, models.Recipe{
			ID:                 c.ids.Generate(),
			Title:              parts[fieldTitle],
			Ingredients:        parts[fieldIngredients],
			Instructions:       parts[fieldInstructions],
			Category:           models.Category(parts[fieldCategory]),
			CookingTimeMinutes: models.DefaultCookingTimeMinutes,
			Author:             parts[fieldAuthor],
			CreatedAt:          c.clock(),
			IsFavorite:         parseFavorite(parts[fieldFavorite]),
		})
	}

	return recipes, skipped
}

// parseFavorite accepts "true" in any letter case; everything else is false.
func parseFavorite(v string) bool {
	return strings.EqualFold(v, "true")
}
