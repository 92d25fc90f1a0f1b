package auth

import (
	"context"

	"github.com/jask/storefront/internal/httpx"
)

const expiresInMins = 5

// The backing API has no permission model; every session gets the same
// fixed grants regardless of the server response.
var hardcodedPermissions = []string{"home.view", "products.view"}

type Credentials struct {
	Username string
	Password string
}

type loginRequest struct {
	Username      string `json:"username"`
	Password      string `json:"password"`
	ExpiresInMins int    `json:"expiresInMins"`
}

type LoginResponse struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Gender       string `json:"gender"`
	Image        string `json:"image"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type refreshRequest struct {
	RefreshToken  string `json:"refreshToken"`
	ExpiresInMins int    `json:"expiresInMins"`
}

// RefreshResult carries the rotated token pair.
type RefreshResult struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// API talks to the auth endpoints.
type API struct {
	Client *httpx.Client
}

// Login exchanges credentials for a session.
func (a *API) Login(ctx context.Context, creds Credentials) (Session, error) {
	var resp LoginResponse
	err := a.Client.PostJSON(ctx, "/auth/login", loginRequest{
		Username:      creds.Username,
		Password:      creds.Password,
		ExpiresInMins: expiresInMins,
	}, &resp)
	if err != nil {
		return Session{}, err
	}
	return ToSession(resp), nil
}

// Refresh rotates the token pair.
func (a *API) Refresh(ctx context.Context, refreshToken string) (RefreshResult, error) {
	var resp RefreshResult
	err := a.Client.PostJSON(ctx, "/auth/refresh", refreshRequest{
		RefreshToken:  refreshToken,
		ExpiresInMins: expiresInMins,
	}, &resp)
	if err != nil {
		return RefreshResult{}, err
	}
	return resp, nil
}

// ToSession builds a session from a login response.
func ToSession(resp LoginResponse) Session {
	perms := make([]string, len(hardcodedPermissions))
	copy(perms, hardcodedPermissions)
	return Session{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		Username:     resp.Username,
		Permissions:  perms,
	}
}
