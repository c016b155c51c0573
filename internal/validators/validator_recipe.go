package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-cookbook/models"
)

const (
	FieldTitle        = "title"
	FieldIngredients  = "ingredients"
	FieldInstructions = "instructions"
	FieldCategory     = "category"
	FieldCookingTime  = "cooking_time"
	FieldAuthor       = "author"
)

type RecipeValidator struct {
}

func NewRecipeValidator() Validator {
	return &RecipeValidator{}
}

func (v *RecipeValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Recipe:
		return v.validateRecipe(ctx, value, fields...)
	case *models.Recipe:
		return v.validateRecipe(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

// validateRecipe checks a recipe about to be stored. Whitespace-only text
// counts as empty.
func (v *RecipeValidator) validateRecipe(_ context.Context, recipe models.Recipe, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldIngredients, FieldInstructions, FieldCategory, FieldCookingTime, FieldAuthor}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if strings.TrimSpace(recipe.Title) == "" {
				return ErrEmptyTitle
			}
		case FieldIngredients:
			if strings.TrimSpace(recipe.Ingredients) == "" {
				return ErrEmptyIngredients
			}
		case FieldInstructions:
			if strings.TrimSpace(recipe.Instructions) == "" {
				return ErrEmptyInstructions
			}
		case FieldCategory:
			if !recipe.Category.IsAssignable() {
				return ErrInvalidCategory
			}
		case FieldCookingTime:
			if recipe.CookingTimeMinutes < 0 {
				return ErrNegativeCookingTime
			}
		case FieldAuthor:
			if recipe.Author == "" {
				return ErrEmptyAuthor
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
