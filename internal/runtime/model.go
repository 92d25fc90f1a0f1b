// Package runtime is the bubbletea shell around the pure root program. It
// owns everything the state machine must not: terminal size, text input
// widgets, key translation, and the interpretation of commands and
// subscriptions into running effects.
package runtime

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/jask/storefront/internal/nav"
	"github.com/jask/storefront/internal/router"
	"github.com/jask/storefront/internal/tui"
)

const (
	fieldUsername = iota
	fieldPassword
)

// Model adapts the router program to tea.Model. The authoritative app state
// lives in state; everything else here is presentation.
type Model struct {
	app      *router.App
	state    router.Model
	recorder *nav.Recorder

	width  int
	height int

	username   textinput.Model
	password   textinput.Model
	focusField int

	keys keyMap

	sub    tui.Sub[router.Msg]
	subGen int

	initCmd tui.Cmd[router.Msg]
}

// tickMsg carries the subscription generation that scheduled it; ticks from
// a stopped or restarted subscription are discarded on arrival.
type tickMsg struct {
	gen int
}

func New(app *router.App, recorder *nav.Recorder) Model {
	state, initCmd := app.Init()

	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 64
	password.EchoMode = textinput.EchoPassword

	return Model{
		app:      app,
		state:    state,
		recorder: recorder,
		width:    100,
		height:   32,
		username: username,
		password: password,
		keys:     newKeyMap(),
		initCmd:  initCmd,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tui.Perform(m.initCmd), textinput.Blink)
}

// State exposes the current root model for tests.
func (m Model) State() router.Model {
	return m.state
}
