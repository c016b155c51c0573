package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-cookbook/internal/logger"
	"github.com/MKhiriev/go-cookbook/internal/mock"
	"github.com/MKhiriev/go-cookbook/internal/service"
	"github.com/MKhiriev/go-cookbook/internal/tui"
	"github.com/MKhiriev/go-cookbook/models"
)

type fakeUI struct {
	got models.Session
	err error
}

func (f *fakeUI) Run(_ context.Context, session models.Session) error {
	f.got = session
	return f.err
}

func newTestApp(t *testing.T, ui UI) (*App, *mock.MockClientSessionService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	sessions := mock.NewMockClientSessionService(ctrl)
	services := &service.ClientServices{SessionService: sessions}

	return NewApp(services, ui, logger.Nop()), sessions
}

func TestApp_Run_PassesRestoredSession(t *testing.T) {
	ui := &fakeUI{}
	app, sessions := newTestApp(t, ui)

	session := models.Session{Username: "chef", LoggedIn: true}
	sessions.EXPECT().Restore(gomock.Any()).Return(session, nil)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, session, ui.got)
}

func TestApp_Run_UserQuitIsNotAnError(t *testing.T) {
	app, sessions := newTestApp(t, &fakeUI{err: tui.ErrUserQuit})
	sessions.EXPECT().Restore(gomock.Any()).Return(models.Session{Username: models.GuestUsername}, nil)

	assert.NoError(t, app.Run(context.Background()))
}

func TestApp_Run_Errors(t *testing.T) {
	t.Run("restore", func(t *testing.T) {
		ui := &fakeUI{}
		app, sessions := newTestApp(t, ui)
		sessions.EXPECT().Restore(gomock.Any()).Return(models.Session{}, errors.New("database is locked"))

		assert.Error(t, app.Run(context.Background()))
		assert.Equal(t, models.Session{}, ui.got, "ui must not start")
	})

	t.Run("ui", func(t *testing.T) {
		uiErr := errors.New("could not open a new TTY")
		app, sessions := newTestApp(t, &fakeUI{err: uiErr})
		sessions.EXPECT().Restore(gomock.Any()).Return(models.Session{}, nil)

		assert.ErrorIs(t, app.Run(context.Background()), uiErr)
	})
}
