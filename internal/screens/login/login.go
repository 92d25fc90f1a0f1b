// Package login is the sign-in sub-program. On success the session lands in
// Model.Result for the root program to pick up; the root never sees the
// credentials themselves.
package login

import (
	"context"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/storefront/internal/auth"
	"github.com/jask/storefront/internal/theme"
	"github.com/jask/storefront/internal/tui"
)

type Model struct {
	Username   string
	Password   string
	Submitting bool
	Err        error
	// Result holds the session after a successful login.
	Result *auth.Session
}

type Msg interface{ isMsg() }

type UsernameChanged struct{ Username string }
type PasswordChanged struct{ Password string }
type Submit struct{}
type Succeeded struct{ Session auth.Session }
type Failed struct{ Err error }

func (UsernameChanged) isMsg() {}
func (PasswordChanged) isMsg() {}
func (Submit) isMsg()          {}
func (Succeeded) isMsg()       {}
func (Failed) isMsg()          {}

// Program carries the screen's dependencies.
type Program struct {
	API *auth.API
}

func (Program) Init() (Model, tui.Cmd[Msg]) {
	return Model{}, nil
}

func (p Program) Update(msg Msg, model Model) (Model, tui.Cmd[Msg]) {
	switch msg := msg.(type) {
	case UsernameChanged:
		model.Username = msg.Username
		model.Err = nil
		return model, nil
	case PasswordChanged:
		model.Password = msg.Password
		model.Err = nil
		return model, nil
	case Submit:
		if model.Submitting || model.Username == "" || model.Password == "" {
			return model, nil
		}
		model.Submitting = true
		model.Err = nil
		creds := auth.Credentials{Username: model.Username, Password: model.Password}
		return model, tui.Attempt(
			func() (auth.Session, error) { return p.API.Login(context.Background(), creds) },
			func(s auth.Session) Msg { return Succeeded{Session: s} },
			func(err error) Msg { return Failed{Err: err} },
		)
	case Succeeded:
		model.Submitting = false
		session := msg.Session
		model.Result = &session
		return model, nil
	case Failed:
		model.Submitting = false
		model.Err = msg.Err
		return model, nil
	}
	return model, nil
}

// View renders the form around the shell-owned text inputs. The error line
// is deliberately generic: callers never learn which way a login failed.
func View(model Model, usernameField, passwordField string, width int) string {
	lines := []string{
		theme.Title.Render("Sign in"),
		"",
		theme.Label.Render("Username"),
		usernameField,
		theme.Label.Render("Password"),
		passwordField,
	}
	if model.Err != nil {
		lines = append(lines, "", theme.ErrorBar.Render("Invalid username or password"))
	}
	button := "Sign in"
	if model.Submitting {
		button = "Signing in..."
	}
	style := theme.Success
	if model.Submitting || model.Username == "" || model.Password == "" {
		style = theme.Label
	}
	lines = append(lines, "", style.Render("[ "+button+" ]"), "", theme.Label.Render("enter submit · tab next field"))

	card := theme.Box.Width(min(48, max(width-4, 30))).Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, lipgloss.Height(card)+2, lipgloss.Center, lipgloss.Center, card)
}
