package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/holidaze/holidaze-cli/internal/domain"
	"github.com/holidaze/holidaze-cli/internal/gateway"
)

// Profiles binds the profile resource family.
type Profiles struct {
	gw   Doer
	base string
}

// NewProfiles creates a profiles client.
func NewProfiles(gw Doer, base string) *Profiles {
	return &Profiles{gw: gw, base: base}
}

// ProfileUpdate is the update request body; only avatar and banner are
// client-mutable.
type ProfileUpdate struct {
	Avatar *domain.Image `json:"avatar,omitempty"`
	Banner *domain.Image `json:"banner,omitempty"`
}

// Get fetches a profile, including its venueManager flag.
func (c *Profiles) Get(ctx context.Context, name string) (domain.Profile, error) {
	return call[domain.Profile](ctx, c.gw, gateway.Request{
		Method: http.MethodGet,
		URL:    c.base + "/profiles/" + url.PathEscape(name),
	})
}

// GetWithToken fetches a profile using an explicit bearer token. Used right
// after login, before the session record exists to inject from.
func (c *Profiles) GetWithToken(ctx context.Context, name, token string) (domain.Profile, error) {
	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)
	return call[domain.Profile](ctx, c.gw, gateway.Request{
		Method:    http.MethodGet,
		URL:       c.base + "/profiles/" + url.PathEscape(name),
		Header:    header,
		Anonymous: true,
	})
}

// Update changes a profile's avatar and/or banner.
func (c *Profiles) Update(ctx context.Context, name string, payload ProfileUpdate) (domain.Profile, error) {
	return call[domain.Profile](ctx, c.gw, gateway.Request{
		Method: http.MethodPut,
		URL:    c.base + "/profiles/" + url.PathEscape(name),
		Body:   payload,
	})
}
