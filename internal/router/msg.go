package router

import (
	"github.com/jask/storefront/internal/auth"
	"github.com/jask/storefront/internal/screens/home"
	"github.com/jask/storefront/internal/screens/login"
	"github.com/jask/storefront/internal/screens/productdetail"
	"github.com/jask/storefront/internal/screens/products"
)

// Msg is a discrete event driving a root transition. Values are immutable
// and carry only what the transition needs.
type Msg interface{ isMsg() }

// Screen wraps a message addressed to the active screen.
type Screen struct {
	Msg ScreenMsg
}

// SessionLoaded reports the persisted-session read. A nil Session means no
// session was stored.
type SessionLoaded struct {
	Session *auth.Session
}

type SessionLoadError struct {
	Err error
}

// Login wraps a message addressed to the login sub-program.
type Login struct {
	Msg login.Msg
}

type Logout struct{}

type RefreshTick struct{}

// RefreshCompleted carries the refresh task outcome: Tokens when Err is nil.
type RefreshCompleted struct {
	Tokens auth.RefreshResult
	Err    error
}

// Navigate asks for the named screen, subject to authorization.
type Navigate struct {
	Name string
}

// NavigateToProduct opens the detail screen for one product.
type NavigateToProduct struct {
	ID int
}

func (Screen) isMsg()            {}
func (SessionLoaded) isMsg()     {}
func (SessionLoadError) isMsg()  {}
func (Login) isMsg()             {}
func (Logout) isMsg()            {}
func (RefreshTick) isMsg()       {}
func (RefreshCompleted) isMsg()  {}
func (Navigate) isMsg()          {}
func (NavigateToProduct) isMsg() {}

// ScreenMsg wraps one sub-program's message for delegation.
type ScreenMsg interface{ isScreenMsg() }

type HomeMsg struct {
	Msg home.Msg
}

type ProductsMsg struct {
	Msg products.Msg
}

type ProductDetailMsg struct {
	Msg productdetail.Msg
}

func (HomeMsg) isScreenMsg()          {}
func (ProductsMsg) isScreenMsg()      {}
func (ProductDetailMsg) isScreenMsg() {}

func wrapScreen(msg ScreenMsg) Msg            { return Screen{Msg: msg} }
func wrapHome(msg home.Msg) ScreenMsg         { return HomeMsg{Msg: msg} }
func wrapProducts(msg products.Msg) ScreenMsg { return ProductsMsg{Msg: msg} }
func wrapDetail(msg productdetail.Msg) ScreenMsg {
	return ProductDetailMsg{Msg: msg}
}
func wrapLogin(msg login.Msg) Msg { return Login{Msg: msg} }
