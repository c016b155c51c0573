package store

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-cookbook/internal/logger"
	"github.com/MKhiriev/go-cookbook/models"
)

const (
	keyLoggedIn = "is_logged_in"
	keyUsername = "username"
)

type sessionRepository struct {
	prefs  Preferences
	logger *logger.Logger
}

func NewSessionRepository(prefs Preferences, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		prefs:  prefs,
		logger: logger,
	}
}

// Load reads the persisted session. A missing username is returned empty;
// defaulting it is up to the caller.
func (s *sessionRepository) Load(ctx context.Context) (models.Session, error) {
	rawLoggedIn, _, err := s.prefs.GetString(ctx, keyLoggedIn)
	if err != nil {
		return models.Session{}, fmt.Errorf("error loading session flag: %w", err)
	}

	username, _, err := s.prefs.GetString(ctx, keyUsername)
	if err != nil {
		return models.Session{}, fmt.Errorf("error loading session username: %w", err)
	}

	loggedIn, err := strconv.ParseBool(rawLoggedIn)
	if err != nil && rawLoggedIn != "" {
		s.logger.Warn().Str("func", "sessionRepository.Load").Str("value", rawLoggedIn).Msg("unreadable logged-in flag, treating as logged out")
	}

	return models.Session{Username: username, LoggedIn: loggedIn}, nil
}

func (s *sessionRepository) Save(ctx context.Context, session models.Session) error {
	err := s.prefs.PutStrings(ctx, map[string]string{
		keyLoggedIn: strconv.FormatBool(session.LoggedIn),
		keyUsername: session.Username,
	})
	if err != nil {
		return fmt.Errorf("error saving session: %w", err)
	}

	return nil
}

// SetLoggedIn writes only the logged-in flag. The stored username is kept.
func (s *sessionRepository) SetLoggedIn(ctx context.Context, loggedIn bool) error {
	err := s.prefs.PutStrings(ctx, map[string]string{
		keyLoggedIn: strconv.FormatBool(loggedIn),
	})
	if err != nil {
		return fmt.Errorf("error saving session flag: %w", err)
	}

	return nil
}
