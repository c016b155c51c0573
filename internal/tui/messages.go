package tui

import (
	"github.com/MKhiriev/go-cookbook/models"
)

type authDoneMsg struct {
	session models.Session
	event   appEvent
	err     error
}

type loggedOutMsg struct {
	err error
}

type recipesLoadedMsg struct {
	recipes []models.Recipe
	err     error
}

// recipesChangedMsg reports the outcome of a mutation together with the
// collection as it is afterwards.
type recipesChangedMsg struct {
	recipes []models.Recipe
	status  string
	err     error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
