package runtime

import (
	"net/http"
	"net/http/httptest"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/jask/storefront/internal/auth"
	"github.com/jask/storefront/internal/httpx"
	"github.com/jask/storefront/internal/nav"
	"github.com/jask/storefront/internal/products"
	"github.com/jask/storefront/internal/router"
	"github.com/jask/storefront/internal/screens/login"
	"github.com/jask/storefront/internal/screens/productdetail"
	pscreen "github.com/jask/storefront/internal/screens/products"
)

func testModel(t *testing.T) Model {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	t.Cleanup(server.Close)
	client := httpx.New(server.URL, zerolog.Nop())
	authAPI := &auth.API{Client: client}
	productsAPI := &products.API{Client: client}

	recorder := &nav.Recorder{}
	handle := &nav.Handle{}
	handle.Bind(recorder)
	app := &router.App{
		Auth:     authAPI,
		Login:    login.Program{API: authAPI},
		Products: pscreen.Program{API: productsAPI},
		Detail:   productdetail.Program{API: productsAPI},
		Nav:      handle,
	}
	return New(app, recorder)
}

func testSession() *auth.Session {
	return &auth.Session{
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		Username:     "emilys",
		Permissions:  []string{"home.view", "products.view"},
	}
}

// drain pumps a command tree back through Update the way the bubbletea loop
// would, returning the settled model.
func drain(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		return m
	}
	switch msg := cmd().(type) {
	case nil:
		return m
	case tea.BatchMsg:
		for _, inner := range msg {
			m = drain(t, m, inner)
		}
		return m
	default:
		next, nextCmd := m.Update(msg)
		return drain(t, next.(Model), nextCmd)
	}
}

func TestStartsInitializing(t *testing.T) {
	m := testModel(t)
	if _, ok := m.State().(router.Initializing); !ok {
		t.Fatalf("state = %T, want Initializing", m.State())
	}
}

func TestSessionLoadedAuthenticates(t *testing.T) {
	m := testModel(t)
	next, _ := m.Update(router.SessionLoaded{Session: testSession()})
	m = next.(Model)
	if _, ok := m.State().(router.Authenticated); !ok {
		t.Fatalf("state = %T, want Authenticated", m.State())
	}
	if m.sub == nil {
		t.Error("refresh subscription should start on authentication")
	}
}

func TestSubscriptionGenerationBumpsOnLogout(t *testing.T) {
	m := testModel(t)
	next, _ := m.Update(router.SessionLoaded{Session: testSession()})
	m = next.(Model)
	genWhileAuthed := m.subGen

	next, _ = m.Update(router.Logout{})
	m = next.(Model)
	if m.sub != nil {
		t.Error("subscription should stop on logout")
	}
	if m.subGen == genWhileAuthed {
		t.Error("generation must advance when the subscription stops")
	}
}

func TestStaleTickIsDropped(t *testing.T) {
	m := testModel(t)
	next, _ := m.Update(router.SessionLoaded{Session: testSession()})
	m = next.(Model)
	staleGen := m.subGen

	next, _ = m.Update(router.Logout{})
	m = next.(Model)

	next, cmd := m.Update(tickMsg{gen: staleGen})
	m = next.(Model)
	if cmd != nil {
		t.Error("stale tick must produce no command")
	}
	if _, ok := m.State().(router.Anonymous); !ok {
		t.Errorf("state = %T, want Anonymous unchanged", m.State())
	}
}

func TestUnchangedSubscriptionKeepsGeneration(t *testing.T) {
	m := testModel(t)
	next, _ := m.Update(router.SessionLoaded{Session: testSession()})
	m = next.(Model)
	gen := m.subGen

	// A transition that keeps the same derived subscription.
	next, _ = m.Update(router.Navigate{Name: "Home"})
	m = next.(Model)
	if m.subGen != gen {
		t.Error("generation must hold while the subscription is unchanged")
	}
}

func TestWindowSizeIsRecorded(t *testing.T) {
	m := testModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(Model)
	if m.width != 80 || m.height != 24 {
		t.Errorf("size = %dx%d", m.width, m.height)
	}
}

func TestLoginInputsResetOnLogout(t *testing.T) {
	m := testModel(t)
	next, _ := m.Update(router.SessionLoaded{Session: testSession()})
	m = next.(Model)

	m.username.SetValue("leftover")
	m.password.SetValue("leftover")
	m.focusField = fieldPassword

	next, _ = m.Update(router.Logout{})
	m = next.(Model)
	if m.username.Value() != "" || m.password.Value() != "" {
		t.Error("login inputs must clear when landing back on the login screen")
	}
	if m.focusField != fieldUsername {
		t.Error("focus must return to the username field")
	}
}

func TestEscNavigatesBack(t *testing.T) {
	m := testModel(t)
	next, _ := m.Update(router.SessionLoaded{Session: testSession()})
	m = next.(Model)

	m.recorder.Navigate("Home", nil)
	next, cmd := m.Update(router.Navigate{Name: "Products"})
	m = drain(t, next.(Model), cmd)

	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = drain(t, next.(Model), cmd)
	authed, ok := m.State().(router.Authenticated)
	if !ok {
		t.Fatalf("state = %T", m.State())
	}
	if _, ok := authed.Screen.(router.HomeScreen); !ok {
		t.Errorf("screen = %T, want HomeScreen after back", authed.Screen)
	}
}

func TestHomeCounterKeys(t *testing.T) {
	m := testModel(t)
	next, _ := m.Update(router.SessionLoaded{Session: testSession()})
	m = next.(Model)

	plus := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}}
	next, cmd := m.Update(plus)
	m = drain(t, next.(Model), cmd)

	authed := m.State().(router.Authenticated)
	screen := authed.Screen.(router.HomeScreen)
	if screen.Model.Count != 1 {
		t.Errorf("count = %d, want 1", screen.Model.Count)
	}
}
