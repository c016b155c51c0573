package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MKhiriev/go-cookbook/internal/logger"
	"github.com/MKhiriev/go-cookbook/internal/utils"
)

var testNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func newTestPreferencesRepo(t *testing.T, classifier ErrorClassificator) (*preferencesRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &preferencesRepository{
		db: &DB{
			DB:                 db,
			builder:            sq.StatementBuilder.PlaceholderFormat(sq.Question),
			errorClassificator: classifier,
			logger:             l,
		},
		clock:  utils.FixedClock(testNow),
		logger: l,
	}
	return repo, mock, db
}

func TestGetString_Found(t *testing.T) {
	repo, mock, db := newTestPreferencesRepo(t, NewSQLiteErrorClassifier())
	defer db.Close()

	mock.ExpectQuery("SELECT pref_value FROM preferences WHERE pref_key = ?").
		WithArgs("username").
		WillReturnRows(sqlmock.NewRows([]string{"pref_value"}).AddRow("chef"))

	value, found, err := repo.GetString(context.Background(), "username")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found || value != "chef" {
		t.Errorf("expected (chef, true), got (%q, %v)", value, found)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGetString_NotFound(t *testing.T) {
	repo, mock, db := newTestPreferencesRepo(t, NewSQLiteErrorClassifier())
	defer db.Close()

	mock.ExpectQuery("SELECT pref_value FROM preferences").
		WithArgs("recipes_nobody").
		WillReturnError(sql.ErrNoRows)

	value, found, err := repo.GetString(context.Background(), "recipes_nobody")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found || value != "" {
		t.Errorf("expected missing key, got (%q, %v)", value, found)
	}
}

func TestGetString_EmptyKey(t *testing.T) {
	repo, _, db := newTestPreferencesRepo(t, nil)
	defer db.Close()

	_, _, err := repo.GetString(context.Background(), "")
	if !errors.Is(err, ErrInvalidKey) {
		t.Errorf("expected ErrInvalidKey, got %v", err)
	}
}

func TestGetString_RetryableError(t *testing.T) {
	repo, mock, db := newTestPreferencesRepo(t, NewPostgresErrorClassifier())
	defer db.Close()

	mock.ExpectQuery("SELECT pref_value FROM preferences").
		WithArgs("username").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.CannotConnectNow})

	_, _, err := repo.GetString(context.Background(), "username")
	if !errors.Is(err, ErrStorageUnavailable) {
		t.Errorf("expected ErrStorageUnavailable, got %v", err)
	}
	if !errors.Is(err, ErrExecutingQuery) {
		t.Errorf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestGetString_ScanError(t *testing.T) {
	repo, mock, db := newTestPreferencesRepo(t, NewSQLiteErrorClassifier())
	defer db.Close()

	mock.ExpectQuery("SELECT pref_value FROM preferences").
		WithArgs("username").
		WillReturnRows(sqlmock.NewRows([]string{"pref_value"}).AddRow(nil))

	_, found, err := repo.GetString(context.Background(), "username")
	if !errors.Is(err, ErrScanningRow) {
		t.Errorf("expected ErrScanningRow, got %v", err)
	}
	if errors.Is(err, ErrExecutingQuery) {
		t.Errorf("scan failure reported as query failure: %v", err)
	}
	if found {
		t.Error("expected found to be false")
	}
}

func TestPutStrings_UpsertsSortedInTransaction(t *testing.T) {
	repo, mock, db := newTestPreferencesRepo(t, NewSQLiteErrorClassifier())
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO preferences \\(pref_key,pref_value,updated_at\\) VALUES \\(\\?,\\?,\\?\\) ON CONFLICT \\(pref_key\\) DO UPDATE").
		WithArgs("is_logged_in", "true", testNow).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO preferences").
		WithArgs("username", "admin", testNow).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.PutStrings(context.Background(), map[string]string{
		"username":     "admin",
		"is_logged_in": "true",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPutStrings_ExecErrorRollsBack(t *testing.T) {
	repo, mock, db := newTestPreferencesRepo(t, NewSQLiteErrorClassifier())
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO preferences").
		WithArgs("username", "admin", sqlmock.AnyArg()).
		WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	err := repo.PutStrings(context.Background(), map[string]string{"username": "admin"})
	if !errors.Is(err, ErrExecutingStatement) {
		t.Errorf("expected ErrExecutingStatement, got %v", err)
	}
	if errors.Is(err, ErrStorageUnavailable) {
		t.Errorf("plain error must not be classified as retryable")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPutStrings_BeginError(t *testing.T) {
	repo, mock, db := newTestPreferencesRepo(t, nil)
	defer db.Close()

	mock.ExpectBegin().WillReturnError(errors.New("database is closed"))

	err := repo.PutStrings(context.Background(), map[string]string{"username": "admin"})
	if !errors.Is(err, ErrBeginningTransaction) {
		t.Errorf("expected ErrBeginningTransaction, got %v", err)
	}
}

func TestPutStrings_CommitError(t *testing.T) {
	repo, mock, db := newTestPreferencesRepo(t, nil)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO preferences").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(errors.New("commit failed"))

	err := repo.PutStrings(context.Background(), map[string]string{"username": "admin"})
	if !errors.Is(err, ErrCommitingTransaction) {
		t.Errorf("expected ErrCommitingTransaction, got %v", err)
	}
}

func TestPutStrings_EmptyMapIsNoop(t *testing.T) {
	repo, mock, db := newTestPreferencesRepo(t, nil)
	defer db.Close()

	if err := repo.PutStrings(context.Background(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected database calls: %v", err)
	}
}

func TestPutStrings_EmptyKey(t *testing.T) {
	repo, _, db := newTestPreferencesRepo(t, nil)
	defer db.Close()

	err := repo.PutStrings(context.Background(), map[string]string{"": "x"})
	if !errors.Is(err, ErrInvalidKey) {
		t.Errorf("expected ErrInvalidKey, got %v", err)
	}
}
