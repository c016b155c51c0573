package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cookbook/internal/codec"
	"github.com/MKhiriev/go-cookbook/internal/config"
	"github.com/MKhiriev/go-cookbook/internal/logger"
	"github.com/MKhiriev/go-cookbook/internal/utils"
)

// ClientStorages groups the repositories used by the client services.
type ClientStorages struct {
	Recipes  RecipeRepository
	Sessions SessionRepository

	db *DB
}

// NewClientStorages opens the preferences database selected by cfg.DB.Driver,
// applies pending migrations and wires the repositories over it.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, codec *codec.RecipeCodec, clock utils.Clock, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("driver", cfg.DB.Driver).Msg("creating new storages...")

	var (
		db  *DB
		err error
	)
	switch cfg.DB.Driver {
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, logger)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, logger)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DB.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("%s connection error: %w", cfg.DB.Driver, err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	prefs := NewPreferencesRepository(db, clock, logger)
	storages := NewStorages(prefs, codec, logger)
	storages.db = db

	return storages, nil
}

// NewStorages wires the repositories over an existing [Preferences].
func NewStorages(prefs Preferences, codec *codec.RecipeCodec, logger *logger.Logger) *ClientStorages {
	return &ClientStorages{
		Recipes:  NewRecipeRepository(prefs, codec, logger),
		Sessions: NewSessionRepository(prefs, logger),
	}
}

// Close releases the database connection, if any.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
