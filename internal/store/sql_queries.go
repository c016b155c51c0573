// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	preferencesTable  = "preferences"
	columnPrefKey     = "pref_key"
	columnPrefValue   = "pref_value"
	columnPrefUpdated = "updated_at"

	// upsertSuffix is understood by both SQLite (3.24+) and PostgreSQL.
	upsertSuffix = "ON CONFLICT (pref_key) DO UPDATE SET pref_value = excluded.pref_value, updated_at = excluded.updated_at"
)

func selectPreference(b sq.StatementBuilderType, key string) (string, []any, error) {
	return b.Select(columnPrefValue).
		From(preferencesTable).
		Where(sq.Eq{columnPrefKey: key}).
		ToSql()
}

func upsertPreference(b sq.StatementBuilderType, key, value string, now time.Time) (string, []any, error) {
	return b.Insert(preferencesTable).
		Columns(columnPrefKey, columnPrefValue, columnPrefUpdated).
		Values(key, value, now).
		Suffix(upsertSuffix).
		ToSql()
}
