package router

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/storefront/internal/auth"
	"github.com/jask/storefront/internal/screens/home"
	"github.com/jask/storefront/internal/tui"
)

type route int

const (
	routeHome route = iota
	routeProducts
)

// screenNames are the logical names Navigate understands, in menu order.
var screenNames = []string{"Home", "Products"}

func resolveRoute(name string) (route, bool) {
	switch name {
	case "Home":
		return routeHome, true
	case "Products":
		return routeProducts, true
	}
	return 0, false
}

func routePermissions(r route) []string {
	switch r {
	case routeHome:
		return []string{"home.view"}
	case routeProducts:
		return []string{"products.view"}
	}
	return nil
}

func routePath(r route) string {
	switch r {
	case routeHome:
		return "home"
	case routeProducts:
		return "products"
	}
	return ""
}

// suggestScreen returns the known screen name closest to the attempted one,
// or "" when nothing is within typo distance.
func suggestScreen(name string) string {
	const maxDistance = 3
	attempted := strings.ToLower(name)
	best, bestDist := "", maxDistance+1
	for _, candidate := range screenNames {
		dist := levenshtein.ComputeDistance(attempted, strings.ToLower(candidate))
		if dist < bestDist {
			best, bestDist = candidate, dist
		}
	}
	if bestDist > maxDistance {
		return ""
	}
	return best
}

func (a *App) startScreen(r route) (ScreenModel, tui.Cmd[ScreenMsg]) {
	switch r {
	case routeProducts:
		model, cmd := a.Products.Init()
		return ProductsScreen{Model: model}, tui.Map(wrapProducts, cmd)
	default:
		model, cmd := home.Init()
		return HomeScreen{Model: model}, tui.Map(wrapHome, cmd)
	}
}

// startScreenWithAuth resolves a logical name to a running screen: unknown
// names land on NotFound, missing permissions on Unauthorized, and neither
// produces a command.
func (a *App) startScreenWithAuth(name string, config auth.AuthorizationConfig) (ScreenModel, tui.Cmd[ScreenMsg]) {
	r, ok := resolveRoute(name)
	if !ok {
		return NotFoundScreen{Path: "unknown", Suggestion: suggestScreen(name)}, nil
	}
	if !auth.HasAllPermissions(config, routePermissions(r)) {
		return UnauthorizedScreen{Path: routePath(r)}, nil
	}
	return a.startScreen(r)
}
