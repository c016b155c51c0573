package service

import (
	"context"

	"github.com/MKhiriev/go-cookbook/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientRecipeService is the in-memory recipe collection of the signed-in
// user. Add, RemoveAt and ToggleFavorite change memory only; callers persist
// with Save. The other mutating methods persist on their own and leave the
// collection unchanged when the write fails.
type ClientRecipeService interface {
	// Load replaces the collection with the recipes stored for username.
	// An empty collection of the admin account is seeded with the demo
	// recipes, which are persisted immediately.
	Load(ctx context.Context, username string) ([]models.Recipe, error)

	// Save overwrites the stored recipes of the loaded user with the
	// current collection.
	Save(ctx context.Context) error

	// Recipes returns a copy of the collection in insertion order.
	Recipes() []models.Recipe

	// Add validates recipe, fills its creation defaults and appends it.
	Add(ctx context.Context, recipe models.Recipe) (models.Recipe, error)

	// Create validates recipe, fills its creation defaults, appends it and
	// saves.
	Create(ctx context.Context, recipe models.Recipe) (models.Recipe, error)

	// RemoveAt removes the recipe at index.
	RemoveAt(index int) error

	// ToggleFavorite flips the favorite flag of the recipe at index.
	ToggleFavorite(index int) error

	// ToggleFavoriteByID flips the favorite flag of the recipe with id, saves
	// and returns the updated recipe.
	ToggleFavoriteByID(ctx context.Context, id string) (models.Recipe, error)

	// IndexByID returns the position of the recipe with id.
	IndexByID(id string) (int, bool)

	// Delete removes the recipe at index on behalf of session and saves.
	// Only the author of the recipe may delete it.
	Delete(ctx context.Context, session models.Session, index int) error

	// DeleteByID removes the recipe with id on behalf of session and saves.
	DeleteByID(ctx context.Context, session models.Session, id string) error

	// AddDemoRecipes appends the demo recipes to the collection of username
	// and saves it.
	AddDemoRecipes(ctx context.Context, username string) error
}

// ClientSessionService validates credentials and tracks the signed-in user.
type ClientSessionService interface {
	// Login checks creds against the fixed credential table and persists the
	// session on success. A failed attempt changes nothing.
	Login(ctx context.Context, creds models.Credentials) (models.Session, error)

	// Register accepts any non-empty username with a password of at least
	// four characters and signs that user in.
	Register(ctx context.Context, creds models.Credentials) (models.Session, error)

	// Logout clears the logged-in flag. The stored username is kept.
	Logout(ctx context.Context) error

	// Restore returns the persisted session. The username falls back to
	// models.GuestUsername when none was stored.
	Restore(ctx context.Context) (models.Session, error)
}
