package router

import (
	"context"
	"time"

	"github.com/jask/storefront/internal/auth"
	"github.com/jask/storefront/internal/nav"
	"github.com/jask/storefront/internal/screens/home"
	"github.com/jask/storefront/internal/screens/login"
	"github.com/jask/storefront/internal/screens/productdetail"
	"github.com/jask/storefront/internal/screens/products"
	"github.com/jask/storefront/internal/storage"
	"github.com/jask/storefront/internal/tui"
)

// DefaultRefreshInterval is how often an authenticated session rotates its
// tokens.
const DefaultRefreshInterval = 4 * time.Minute

// App is the root program: Init, Update, and Subscriptions over the root
// Model. Update is pure; every side effect leaves as a command.
type App struct {
	Auth     *auth.API
	Login    login.Program
	Products products.Program
	Detail   productdetail.Program
	Store    *storage.Store
	Nav      nav.Navigator

	// RefreshEvery overrides DefaultRefreshInterval when positive.
	RefreshEvery time.Duration
}

func (a *App) refreshEvery() time.Duration {
	if a.RefreshEvery > 0 {
		return a.RefreshEvery
	}
	return DefaultRefreshInterval
}

// Init starts in Initializing with the persisted-session load in flight.
func (a *App) Init() (Model, tui.Cmd[Msg]) {
	return Initializing{}, a.loadSession()
}

func (a *App) loadSession() tui.Cmd[Msg] {
	return tui.Attempt(
		func() (*auth.Session, error) {
			session, found, err := storage.GetJSON[auth.Session](context.Background(), a.Store, auth.SessionKey)
			if err != nil || !found {
				return nil, err
			}
			return &session, nil
		},
		func(session *auth.Session) Msg { return SessionLoaded{Session: session} },
		func(err error) Msg { return SessionLoadError{Err: err} },
	)
}

func (a *App) persistSession(session auth.Session) tui.Cmd[Msg] {
	return tui.Fire[Msg](func() {
		_ = storage.SetJSON(context.Background(), a.Store, auth.SessionKey, session)
	})
}

func (a *App) removeSession() tui.Cmd[Msg] {
	return tui.Fire[Msg](func() {
		_ = a.Store.Remove(context.Background(), auth.SessionKey)
	})
}

func (a *App) navigateCmd(name string) tui.Cmd[Msg] {
	return tui.Fire[Msg](func() { a.Nav.Navigate(name, nil) })
}

func (a *App) initAuthenticated(session auth.Session) (Model, tui.Cmd[Msg]) {
	screen, screenCmd := a.startScreen(routeHome)
	return Authenticated{Session: session, Screen: screen}, tui.Map(wrapScreen, screenCmd)
}

func (a *App) initAnonymous() (Model, tui.Cmd[Msg]) {
	loginModel, loginCmd := a.Login.Init()
	return Anonymous{Login: loginModel}, tui.Map(wrapLogin, loginCmd)
}

// Update is the root transition table. Combinations it does not list are
// no-ops: the model comes back unchanged with no command. That silence is
// what drops async completions arriving for a state the app already left.
func (a *App) Update(msg Msg, model Model) (Model, tui.Cmd[Msg]) {
	switch msg := msg.(type) {
	case SessionLoaded:
		if _, ok := model.(Initializing); !ok {
			return model, nil
		}
		if msg.Session == nil {
			return a.initAnonymous()
		}
		return a.initAuthenticated(*msg.Session)

	case SessionLoadError:
		if _, ok := model.(Initializing); !ok {
			return model, nil
		}
		return a.initAnonymous()

	case Login:
		anon, ok := model.(Anonymous)
		if !ok {
			return model, nil
		}
		loginModel, loginCmd := a.Login.Update(msg.Msg, anon.Login)
		if loginModel.Result != nil {
			session := *loginModel.Result
			authModel, authCmd := a.initAuthenticated(session)
			return authModel, tui.Batch(authCmd, a.persistSession(session))
		}
		return Anonymous{Login: loginModel}, tui.Map(wrapLogin, loginCmd)

	case Logout:
		anonModel, anonCmd := a.initAnonymous()
		return anonModel, tui.Batch(anonCmd, a.removeSession())

	case Screen:
		authed, ok := model.(Authenticated)
		if !ok {
			return model, nil
		}
		screen, screenCmd := a.updateScreen(msg.Msg, authed.Screen)
		authed.Screen = screen
		return authed, tui.Map(wrapScreen, screenCmd)

	case NavigateToProduct:
		authed, ok := model.(Authenticated)
		if !ok {
			return model, nil
		}
		detailModel, detailCmd := a.Detail.Init(msg.ID)
		authed.Screen = ProductDetailScreen{Model: detailModel}
		return authed, tui.Batch(
			tui.Map(wrapScreen, tui.Map(wrapDetail, detailCmd)),
			a.navigateCmd("ProductDetail"),
		)

	case Navigate:
		authed, ok := model.(Authenticated)
		if !ok {
			return model, nil
		}
		config := auth.ToAuthorizationConfig(authed.Session)
		screen, screenCmd := a.startScreenWithAuth(msg.Name, config)
		authed.Screen = screen
		return authed, tui.Batch(tui.Map(wrapScreen, screenCmd), a.navigateCmd(msg.Name))

	case RefreshTick:
		authed, ok := model.(Authenticated)
		if !ok {
			return model, nil
		}
		refreshToken := authed.Session.RefreshToken
		return model, tui.Attempt(
			func() (auth.RefreshResult, error) { return a.Auth.Refresh(context.Background(), refreshToken) },
			func(tokens auth.RefreshResult) Msg { return RefreshCompleted{Tokens: tokens} },
			func(err error) Msg { return RefreshCompleted{Err: err} },
		)

	case RefreshCompleted:
		authed, ok := model.(Authenticated)
		if !ok {
			return model, nil
		}
		if msg.Err != nil {
			anonModel, anonCmd := a.initAnonymous()
			return anonModel, tui.Batch(anonCmd, a.removeSession())
		}
		authed.Session.AccessToken = msg.Tokens.AccessToken
		authed.Session.RefreshToken = msg.Tokens.RefreshToken
		return authed, a.persistSession(authed.Session)
	}

	return model, nil
}

// updateScreen delegates a wrapped message to the matching sub-program. A
// wrapper whose target does not match the active screen is dropped; it is a
// completion from a screen the user already left.
func (a *App) updateScreen(msg ScreenMsg, screen ScreenModel) (ScreenModel, tui.Cmd[ScreenMsg]) {
	switch msg := msg.(type) {
	case HomeMsg:
		current, ok := screen.(HomeScreen)
		if !ok {
			return screen, nil
		}
		model, cmd := home.Update(msg.Msg, current.Model)
		return HomeScreen{Model: model}, tui.Map(wrapHome, cmd)

	case ProductsMsg:
		current, ok := screen.(ProductsScreen)
		if !ok {
			return screen, nil
		}
		model, cmd := a.Products.Update(msg.Msg, current.Model)
		return ProductsScreen{Model: model}, tui.Map(wrapProducts, cmd)

	case ProductDetailMsg:
		current, ok := screen.(ProductDetailScreen)
		if !ok {
			return screen, nil
		}
		model, cmd := a.Detail.Update(msg.Msg, current.Model)
		return ProductDetailScreen{Model: model}, tui.Map(wrapDetail, cmd)
	}
	return screen, nil
}

// Subscriptions derives the active event sources from the model: a refresh
// ticker exists iff the user is authenticated.
func (a *App) Subscriptions(model Model) tui.Sub[Msg] {
	if _, ok := model.(Authenticated); !ok {
		return nil
	}
	return tui.Every[Msg](a.refreshEvery(), RefreshTick{})
}
