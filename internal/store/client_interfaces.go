package store

import (
	"context"

	"github.com/MKhiriev/go-cookbook/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// Preferences is a flat string key-value store. Every write fully
// overwrites the value of its key.
type Preferences interface {
	// GetString returns the value stored under key. found is false when the
	// key has never been written.
	GetString(ctx context.Context, key string) (value string, found bool, err error)

	// PutStrings writes every key of values in a single transaction.
	PutStrings(ctx context.Context, values map[string]string) error
}

// RecipeRepository persists the recipe list of one user under that user's
// store key.
type RecipeRepository interface {
	Load(ctx context.Context, username string) ([]models.Recipe, error)
	Save(ctx context.Context, username string, recipes []models.Recipe) error
}

// SessionRepository persists the logged-in flag and the current username.
type SessionRepository interface {
	Load(ctx context.Context) (models.Session, error)
	Save(ctx context.Context, session models.Session) error
	SetLoggedIn(ctx context.Context, loggedIn bool) error
}
