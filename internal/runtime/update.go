package runtime

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/storefront/internal/nav"
	"github.com/jask/storefront/internal/router"
	"github.com/jask/storefront/internal/screens/home"
	"github.com/jask/storefront/internal/screens/login"
	"github.com/jask/storefront/internal/screens/products"
	"github.com/jask/storefront/internal/tui"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		return m.handleTick(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if routerMsg, ok := msg.(router.Msg); ok {
		return m.step(routerMsg)
	}

	// Remaining messages (cursor blink and friends) belong to the inputs.
	return m.updateInputs(msg)
}

// step runs one pure transition, interprets the returned command, and
// re-derives subscriptions from the new model.
func (m Model) step(msg router.Msg) (Model, tea.Cmd) {
	prev := m.state
	next, cmd := m.app.Update(msg, m.state)
	m.state = next

	effect := tui.Perform(cmd)
	m.syncInputs(prev)
	subCmd := m.resub()
	return m, tea.Batch(effect, subCmd)
}

// resub diffs the derived subscription against the running one. Any change
// bumps the generation, which orphans in-flight ticks from the old timer.
func (m *Model) resub() tea.Cmd {
	next := m.app.Subscriptions(m.state)
	if tui.SubEqual[router.Msg](next, m.sub) {
		return nil
	}
	m.sub = next
	m.subGen++
	return m.scheduleTick()
}

func (m Model) scheduleTick() tea.Cmd {
	interval, ok := m.sub.(tui.IntervalSub[router.Msg])
	if !ok {
		return nil
	}
	gen := m.subGen
	return tea.Tick(interval.Every, func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}

func (m Model) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.subGen {
		return m, nil
	}
	interval, ok := m.sub.(tui.IntervalSub[router.Msg])
	if !ok {
		return m, nil
	}
	next, cmd := m.step(interval.Msg)
	var reschedule tea.Cmd
	if next.subGen == msg.gen {
		reschedule = next.scheduleTick()
	}
	return next, tea.Batch(cmd, reschedule)
}

// syncInputs resets the login widgets whenever the app lands back in
// Anonymous from somewhere else (logout, refresh failure, fresh start).
func (m *Model) syncInputs(prev router.Model) {
	_, wasAnon := prev.(router.Anonymous)
	_, isAnon := m.state.(router.Anonymous)
	if isAnon && !wasAnon {
		m.username.SetValue("")
		m.password.SetValue("")
		m.password.Blur()
		m.username.Focus()
		m.focusField = fieldUsername
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch state := m.state.(type) {
	case router.Anonymous:
		return m.handleLoginKey(msg, state)
	case router.Authenticated:
		return m.handleAuthenticatedKey(msg, state)
	}
	return m, nil
}

func (m Model) handleLoginKey(msg tea.KeyMsg, state router.Anonymous) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.NextFld):
		if m.focusField == fieldUsername {
			m.focusField = fieldPassword
			m.username.Blur()
			return m, m.password.Focus()
		}
		m.focusField = fieldUsername
		m.password.Blur()
		return m, m.username.Focus()

	case key.Matches(msg, m.keys.Enter):
		return m.step(router.Login{Msg: login.Submit{}})
	}

	var inputCmd tea.Cmd
	if m.focusField == fieldUsername {
		m.username, inputCmd = m.username.Update(msg)
		if value := m.username.Value(); value != state.Login.Username {
			next, cmd := m.step(router.Login{Msg: login.UsernameChanged{Username: value}})
			return next, tea.Batch(inputCmd, cmd)
		}
	} else {
		m.password, inputCmd = m.password.Update(msg)
		if value := m.password.Value(); value != state.Login.Password {
			next, cmd := m.step(router.Login{Msg: login.PasswordChanged{Password: value}})
			return next, tea.Batch(inputCmd, cmd)
		}
	}
	return m, inputCmd
}

func (m Model) handleAuthenticatedKey(msg tea.KeyMsg, state router.Authenticated) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Logout):
		return m.step(router.Logout{})

	case key.Matches(msg, m.keys.Back):
		if m.recorder == nil {
			return m, nil
		}
		previous := m.recorder.Previous()
		if previous == "" {
			return m, nil
		}
		m.recorder.GoBack()
		return m.step(router.Navigate{Name: previous})

	case key.Matches(msg, m.keys.Menu):
		return m.switchMenu(msg.String() == "right", state)
	}

	switch screen := state.Screen.(type) {
	case router.HomeScreen:
		switch msg.String() {
		case "+", "=":
			return m.step(router.Screen{Msg: router.HomeMsg{Msg: home.Increment{}}})
		case "-":
			return m.step(router.Screen{Msg: router.HomeMsg{Msg: home.Decrement{}}})
		case "0":
			return m.step(router.Screen{Msg: router.HomeMsg{Msg: home.Reset{}}})
		}

	case router.ProductsScreen:
		switch {
		case key.Matches(msg, m.keys.UpDown):
			child := products.Msg(products.CursorDown{})
			if msg.String() == "up" {
				child = products.CursorUp{}
			}
			return m.step(router.Screen{Msg: router.ProductsMsg{Msg: child}})
		case key.Matches(msg, m.keys.Enter):
			if id, ok := products.SelectedID(screen.Model); ok {
				return m.step(router.NavigateToProduct{ID: id})
			}
		case key.Matches(msg, m.keys.Reload):
			return m.step(router.Screen{Msg: router.ProductsMsg{Msg: products.Load{}}})
		}
	}
	return m, nil
}

func (m Model) switchMenu(forward bool, state router.Authenticated) (tea.Model, tea.Cmd) {
	entries := visibleEntries(state)
	if len(entries) == 0 {
		return m, nil
	}
	idx := activeMenuIndex(state, entries)
	if idx < 0 {
		idx = 0
	} else if forward {
		idx = (idx + 1) % len(entries)
	} else {
		idx = (idx - 1 + len(entries)) % len(entries)
	}
	return m.step(router.Navigate{Name: entries[idx].Screen})
}

func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := m.state.(router.Anonymous); !ok {
		return m, nil
	}
	var userCmd, passCmd tea.Cmd
	m.username, userCmd = m.username.Update(msg)
	m.password, passCmd = m.password.Update(msg)
	return m, tea.Batch(userCmd, passCmd)
}

func visibleEntries(state router.Authenticated) []nav.NavigationEntry {
	return nav.BuildNavigation(authConfig(state))
}
