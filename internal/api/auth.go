package api

import (
	"context"
	"net/http"

	"github.com/holidaze/holidaze-cli/internal/domain"
	"github.com/holidaze/holidaze-cli/internal/gateway"
)

// Auth binds the two authentication endpoints. Both run anonymously: no
// session exists yet (or the stored one must not leak into the attempt), so
// only the static API key is attached.
type Auth struct {
	gw   Doer
	base string
}

// NewAuth creates an auth client. base is the auth endpoint root, e.g.
// https://v2.api.noroff.dev/auth.
func NewAuth(gw Doer, base string) *Auth {
	return &Auth{gw: gw, base: base}
}

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the register request body.
type Registration struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	VenueManager bool   `json:"venueManager,omitempty"`
}

// LoginResult is the login payload. The venueManager flag is not part of
// this response; callers resolve it with a follow-up profile fetch.
type LoginResult struct {
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	AccessToken string        `json:"accessToken"`
	Avatar      *domain.Image `json:"avatar,omitempty"`
	Banner      *domain.Image `json:"banner,omitempty"`
}

// Login exchanges credentials for an access token.
func (c *Auth) Login(ctx context.Context, creds Credentials) (LoginResult, error) {
	return call[LoginResult](ctx, c.gw, gateway.Request{
		Method:    http.MethodPost,
		URL:       c.base + "/login",
		Body:      creds,
		Anonymous: true,
	})
}

// Register creates a new account. The returned profile has no access
// token; the caller logs in afterwards.
func (c *Auth) Register(ctx context.Context, reg Registration) (domain.Profile, error) {
	return call[domain.Profile](ctx, c.gw, gateway.Request{
		Method:    http.MethodPost,
		URL:       c.base + "/register",
		Body:      reg,
		Anonymous: true,
	})
}
