package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/MKhiriev/go-cookbook/internal/logger"
	"github.com/MKhiriev/go-cookbook/internal/utils"
)

type preferencesRepository struct {
	db     *DB
	clock  utils.Clock
	logger *logger.Logger
}

// NewPreferencesRepository returns a [Preferences] backed by the
// preferences table of db.
func NewPreferencesRepository(db *DB, clock utils.Clock, logger *logger.Logger) Preferences {
	return &preferencesRepository{
		db:     db,
		clock:  clock,
		logger: logger,
	}
}

func (p *preferencesRepository) GetString(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, ErrInvalidKey
	}

	query, args, err := selectPreference(p.db.builder, key)
	if err != nil {
		p.logger.Err(err).Str("func", "preferencesRepository.GetString").Msg("error building select query")
		return "", false, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	row := p.db.QueryRowContext(ctx, query, args...)
	if err = row.Err(); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		p.logger.Err(err).Str("func", "preferencesRepository.GetString").Str("key", key).Msg("error querying preference")
		return "", false, p.db.wrapDBError(ErrExecutingQuery, err)
	}

	var value string
	err = row.Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		p.logger.Err(err).Str("func", "preferencesRepository.GetString").Str("key", key).Msg("error reading preference")
		return "", false, p.db.wrapDBError(ErrScanningRow, err)
	}

	return value, true, nil
}

func (p *preferencesRepository) PutStrings(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}

	keys := make([]string, 0, len(values))
	for key := range values {
		if key == "" {
			return ErrInvalidKey
		}
		keys = append(keys, key)
	}
	// deterministic statement order
	sort.Strings(keys)

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		p.logger.Err(err).Str("func", "preferencesRepository.PutStrings").Msg("error beginning transaction")
		return p.db.wrapDBError(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	now := p.clock().UTC()
	for _, key := range keys {
		query, args, err := upsertPreference(p.db.builder, key, values[key], now)
		if err != nil {
			p.logger.Err(err).Str("func", "preferencesRepository.PutStrings").Msg("error building upsert query")
			return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			p.logger.Err(err).Str("func", "preferencesRepository.PutStrings").Str("key", key).Msg("error writing preference")
			return p.db.wrapDBError(ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		p.logger.Err(err).Str("func", "preferencesRepository.PutStrings").Msg("error committing transaction")
		return p.db.wrapDBError(ErrCommitingTransaction, err)
	}

	return nil
}
