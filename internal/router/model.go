package router

import (
	"github.com/jask/storefront/internal/auth"
	"github.com/jask/storefront/internal/screens/home"
	"github.com/jask/storefront/internal/screens/login"
	"github.com/jask/storefront/internal/screens/productdetail"
	"github.com/jask/storefront/internal/screens/products"
)

// Model is the root application state. Exactly one variant is active at a
// time: Initializing only ever appears once, at startup, while the persisted
// session load is in flight; afterwards the model oscillates between
// Anonymous and Authenticated.
type Model interface{ isModel() }

type Initializing struct{}

type Anonymous struct {
	Login login.Model
}

type Authenticated struct {
	Session auth.Session
	Screen  ScreenModel
}

func (Initializing) isModel()  {}
func (Anonymous) isModel()     {}
func (Authenticated) isModel() {}

// ScreenModel wraps the active screen's state. Replaced wholesale on every
// navigation.
type ScreenModel interface{ isScreen() }

type HomeScreen struct {
	Model home.Model
}

type ProductsScreen struct {
	Model products.Model
}

type ProductDetailScreen struct {
	Model productdetail.Model
}

// NotFoundScreen records that route resolution failed. Path keeps the
// placeholder the legacy client stored; Suggestion names the nearest known
// screen when one is close enough to be a plausible typo.
type NotFoundScreen struct {
	Path       string
	Suggestion string
}

// UnauthorizedScreen records a permission refusal for the given route path.
type UnauthorizedScreen struct {
	Path string
}

func (HomeScreen) isScreen()          {}
func (ProductsScreen) isScreen()      {}
func (ProductDetailScreen) isScreen() {}
func (NotFoundScreen) isScreen()      {}
func (UnauthorizedScreen) isScreen()  {}
