package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/go-cookbook/models"
)

type loginModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	notice     string
}

func newLoginModel(username string) loginModel {
	usernameInput := textinput.New()
	usernameInput.Placeholder = "username"
	usernameInput.CharLimit = 64
	usernameInput.Width = 40
	usernameInput.SetValue(username)
	usernameInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return loginModel{inputs: []textinput.Model{usernameInput, passwordInput}}
}

func (m loginModel) credentials() models.Credentials {
	return models.Credentials{
		Username: m.inputs[0].Value(),
		Password: m.inputs[1].Value(),
	}
}

func (m loginModel) focusNext() loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m loginModel) focusPrev() loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m loginModel) View() string {
	var b strings.Builder

	b.WriteString("Username\n")
	b.WriteString(m.inputs[0].View())
	b.WriteString("\n\nPassword\n")
	b.WriteString(m.inputs[1].View())
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\nPlease wait...\n")
	}
	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.notice))
		b.WriteString("\n")
	}

	return renderPage("COOKBOOK: SIGN IN", b.String(), "enter: log in  ctrl+r: register  tab: next field")
}
