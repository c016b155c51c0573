package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cookbook/internal/logger"
	"github.com/MKhiriev/go-cookbook/internal/service"
	"github.com/MKhiriev/go-cookbook/internal/tui"
)

type App struct {
	sessions service.ClientSessionService
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) *App {
	return &App{
		sessions: services.SessionService,
		ui:       ui,
		logger:   logger,
	}
}

// Run restores the last session and runs the UI until the user quits.
// Quitting is not an error.
func (a *App) Run(ctx context.Context) error {
	session, err := a.sessions.Restore(ctx)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	a.logger.Info().
		Str("func", "App.Run").
		Str("username", session.Username).
		Bool("logged_in", session.LoggedIn).
		Msg("session restored")

	err = a.ui.Run(ctx, session)
	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Str("func", "App.Run").Msg("user quit")
		return nil
	}

	return err
}
