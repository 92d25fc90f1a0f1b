package auth

// Session is the authenticated user's tokens, identity, and granted
// permissions. It is owned by the root model while authenticated and
// persisted as a snapshot on every login and token rotation.
type Session struct {
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
	Username     string   `json:"username"`
	Permissions  []string `json:"permissions"`
}

// SessionKey is the persisted-state key holding the JSON-encoded session.
const SessionKey = "session"

// AuthorizationConfig is a read-only projection of the session used for
// permission checks. Derived on demand, never stored.
type AuthorizationConfig struct {
	Permissions []string
}

func ToAuthorizationConfig(s Session) AuthorizationConfig {
	perms := make([]string, len(s.Permissions))
	copy(perms, s.Permissions)
	return AuthorizationConfig{Permissions: perms}
}

// EmptyAuthorization grants nothing.
var EmptyAuthorization = AuthorizationConfig{}

func HasPermission(config AuthorizationConfig, permission string) bool {
	for _, p := range config.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// HasAllPermissions reports whether every required permission is granted.
// An empty required list always permits.
func HasAllPermissions(config AuthorizationConfig, required []string) bool {
	for _, p := range required {
		if !HasPermission(config, p) {
			return false
		}
	}
	return true
}
