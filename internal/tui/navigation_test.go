package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		name  string
		mode  appMode
		event appEvent
		want  appMode
	}{
		{name: "login succeeded", mode: modeLogin, event: eventLoginSucceeded, want: modeMain},
		{name: "registered", mode: modeLogin, event: eventRegistered, want: modeMain},
		{name: "logout from main", mode: modeMain, event: eventLogout, want: modeLogin},
		{name: "logout on login screen is ignored", mode: modeLogin, event: eventLogout, want: modeLogin},
		{name: "login while in main is ignored", mode: modeMain, event: eventLoginSucceeded, want: modeMain},
		{name: "register while in main is ignored", mode: modeMain, event: eventRegistered, want: modeMain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, transition(tt.mode, tt.event))
		})
	}
}

func TestAppModeString(t *testing.T) {
	assert.Equal(t, "login", modeLogin.String())
	assert.Equal(t, "main", modeMain.String())
	assert.Equal(t, "unknown", appMode(42).String())
}
