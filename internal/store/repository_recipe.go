package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cookbook/internal/codec"
	"github.com/MKhiriev/go-cookbook/internal/logger"
	"github.com/MKhiriev/go-cookbook/models"
)

const recipesKeyPrefix = "recipes_"

// RecipesKey is the preference key holding the encoded recipes of username.
func RecipesKey(username string) string {
	return recipesKeyPrefix + username
}

type recipeRepository struct {
	prefs  Preferences
	codec  *codec.RecipeCodec
	logger *logger.Logger
}

func NewRecipeRepository(prefs Preferences, codec *codec.RecipeCodec, logger *logger.Logger) RecipeRepository {
	return &recipeRepository{
		prefs:  prefs,
		codec:  codec,
		logger: logger,
	}
}

func (r *recipeRepository) Load(ctx context.Context, username string) ([]models.Recipe, error) {
	raw, _, err := r.prefs.GetString(ctx, RecipesKey(username))
	if err != nil {
		return nil, fmt.Errorf("error loading recipes of %q: %w", username, err)
	}

	recipes, skipped := r.codec.Decode(raw)
	if skipped > 0 {
		r.logger.Debug().
			Str("func", "recipeRepository.Load").
			Str("username", username).
			Int("skipped", skipped).
			Msg("dropped malformed recipe records")
	}

	return recipes, nil
}

func (r *recipeRepository) Save(ctx context.Context, username string, recipes []models.Recipe) error {
	err := r.prefs.PutStrings(ctx, map[string]string{
		RecipesKey(username): r.codec.Encode(recipes),
	})
	if err != nil {
		return fmt.Errorf("error saving recipes of %q: %w", username, err)
	}

	return nil
}
