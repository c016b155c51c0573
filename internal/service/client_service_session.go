package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-cookbook/internal/logger"
	"github.com/MKhiriev/go-cookbook/internal/store"
	"github.com/MKhiriev/go-cookbook/internal/validators"
	"github.com/MKhiriev/go-cookbook/models"
)

// knownCredentials is the fixed login table. It is demo-grade and not meant
// to protect anything.
var knownCredentials = map[string]string{
	"admin": "1234",
	"chef":  "cook123",
	"user":  "password",
}

type clientSessionService struct {
	sessions  store.SessionRepository
	recipes   ClientRecipeService
	validator validators.Validator
	logger    *logger.Logger
}

func NewClientSessionService(sessions store.SessionRepository, recipes ClientRecipeService, logger *logger.Logger) ClientSessionService {
	return &clientSessionService{
		sessions:  sessions,
		recipes:   recipes,
		validator: validators.NewCredentialsValidator(),
		logger:    logger,
	}
}

func (s *clientSessionService) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	creds = trimCredentials(creds)

	if err := s.validator.Validate(ctx, creds, validators.FieldUsername, validators.FieldPassword); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	password, ok := knownCredentials[creds.Username]
	if !ok || password != creds.Password {
		s.logger.Info().Str("func", "clientSessionService.Login").Str("username", creds.Username).Msg("login rejected")
		return models.Session{}, ErrInvalidCredentials
	}

	return s.signIn(ctx, creds.Username)
}

func (s *clientSessionService) Register(ctx context.Context, creds models.Credentials) (models.Session, error) {
	creds = trimCredentials(creds)

	err := s.validator.Validate(ctx, creds, validators.FieldUsername, validators.FieldPassword, validators.FieldPasswordLength)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	// session is written last; a failed registration leaves it untouched
	recipes, err := s.recipes.Load(ctx, creds.Username)
	if err != nil {
		return models.Session{}, fmt.Errorf("load recipes of registered user: %w", err)
	}
	if len(recipes) == 0 {
		if err = s.recipes.AddDemoRecipes(ctx, creds.Username); err != nil {
			return models.Session{}, fmt.Errorf("add demo recipes: %w", err)
		}
	}

	return s.signIn(ctx, creds.Username)
}

func (s *clientSessionService) signIn(ctx context.Context, username string) (models.Session, error) {
	session := models.Session{Username: username, LoggedIn: true}
	if err := s.sessions.Save(ctx, session); err != nil {
		s.logger.Err(err).Str("func", "clientSessionService.signIn").Str("username", username).Msg("error saving session")
		return models.Session{}, fmt.Errorf("save session: %w", err)
	}

	s.logger.Info().Str("func", "clientSessionService.signIn").Str("username", username).Msg("signed in")
	return session, nil
}

func (s *clientSessionService) Logout(ctx context.Context) error {
	if err := s.sessions.SetLoggedIn(ctx, false); err != nil {
		s.logger.Err(err).Str("func", "clientSessionService.Logout").Msg("error clearing session flag")
		return fmt.Errorf("logout: %w", err)
	}

	return nil
}

func (s *clientSessionService) Restore(ctx context.Context) (models.Session, error) {
	session, err := s.sessions.Load(ctx)
	if err != nil {
		return models.Session{}, fmt.Errorf("restore session: %w", err)
	}

	if session.Username == "" {
		session.Username = models.GuestUsername
	}

	return session, nil
}

func trimCredentials(creds models.Credentials) models.Credentials {
	return models.Credentials{
		Username: strings.TrimSpace(creds.Username),
		Password: strings.TrimSpace(creds.Password),
	}
}
