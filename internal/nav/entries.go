package nav

import "github.com/jask/storefront/internal/auth"

// NavigationEntry describes one menu item and its permission gate. Entries
// are static configuration, immutable for the process lifetime.
type NavigationEntry struct {
	Key                 string
	Label               string
	Screen              string
	RequiredPermissions []string
}

func allEntries() []NavigationEntry {
	return []NavigationEntry{
		{Key: "home", Label: "Home", Screen: "Home", RequiredPermissions: []string{"home.view"}},
		{Key: "products", Label: "Products", Screen: "Products", RequiredPermissions: []string{"products.view"}},
	}
}

func isPermitted(config auth.AuthorizationConfig, permissions []string) bool {
	return len(permissions) == 0 || auth.HasAllPermissions(config, permissions)
}

// BuildNavigation returns the entries the given authorization may see.
func BuildNavigation(config auth.AuthorizationConfig) []NavigationEntry {
	out := make([]NavigationEntry, 0, 2)
	for _, entry := range allEntries() {
		if isPermitted(config, entry.RequiredPermissions) {
			out = append(out, entry)
		}
	}
	return out
}

// BuildPublicNavigation returns the entries visible with no session.
func BuildPublicNavigation() []NavigationEntry {
	return BuildNavigation(auth.EmptyAuthorization)
}
