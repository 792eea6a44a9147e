package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/holidaze/holidaze-cli/internal/domain"
	"github.com/holidaze/holidaze-cli/internal/gateway"
)

// Venues binds the venue resource family.
type Venues struct {
	gw   Doer
	base string
}

// NewVenues creates a venues client. base is the holidaze resource root,
// e.g. https://v2.api.noroff.dev/holidaze.
func NewVenues(gw Doer, base string) *Venues {
	return &Venues{gw: gw, base: base}
}

// ListParams controls venue listing. Zero values fall back to the
// defaults the original client used: limit 100, page 1, newest first.
type ListParams struct {
	Limit     int
	Page      int
	Sort      string // "created" or "updated"
	SortOrder string // "asc" or "desc"
}

// List fetches a page of venues.
func (c *Venues) List(ctx context.Context, params ListParams) ([]domain.Venue, error) {
	if params.Limit <= 0 {
		params.Limit = 100
	}
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.Sort == "" {
		params.Sort = "created"
	}
	if params.SortOrder == "" {
		params.SortOrder = "desc"
	}

	q := url.Values{}
	q.Set("limit", fmt.Sprint(params.Limit))
	q.Set("page", fmt.Sprint(params.Page))
	q.Set("sort", params.Sort)
	q.Set("sortOrder", params.SortOrder)

	return call[[]domain.Venue](ctx, c.gw, gateway.Request{
		Method: http.MethodGet,
		URL:    c.base + "/venues?" + q.Encode(),
	})
}

// Search runs a server-side text search. A blank query short-circuits to an
// empty result without a network call.
func (c *Venues) Search(ctx context.Context, query string) ([]domain.Venue, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	return call[[]domain.Venue](ctx, c.gw, gateway.Request{
		Method: http.MethodGet,
		URL:    c.base + "/venues/search?q=" + url.QueryEscape(query),
	})
}

// Get fetches a single venue.
func (c *Venues) Get(ctx context.Context, id string) (domain.Venue, error) {
	return call[domain.Venue](ctx, c.gw, gateway.Request{
		Method: http.MethodGet,
		URL:    c.base + "/venues/" + url.PathEscape(id),
	})
}

// GetWithBookings fetches a venue with its bookings and owner expanded.
func (c *Venues) GetWithBookings(ctx context.Context, id string) (domain.Venue, error) {
	return call[domain.Venue](ctx, c.gw, gateway.Request{
		Method: http.MethodGet,
		URL:    c.base + "/venues/" + url.PathEscape(id) + "?_bookings=true&_owner=true",
	})
}

// ByProfile lists the venues owned by the named profile.
func (c *Venues) ByProfile(ctx context.Context, name string) ([]domain.Venue, error) {
	return call[[]domain.Venue](ctx, c.gw, gateway.Request{
		Method: http.MethodGet,
		URL:    c.base + "/profiles/" + url.PathEscape(name) + "/venues",
	})
}

// Mine lists the named manager's venues with bookings and owner expanded.
func (c *Venues) Mine(ctx context.Context, name string) ([]domain.Venue, error) {
	return call[[]domain.Venue](ctx, c.gw, gateway.Request{
		Method: http.MethodGet,
		URL:    c.base + "/profiles/" + url.PathEscape(name) + "/venues?_bookings=true&_owner=true",
	})
}

// VenuePayload is the create/update request body.
type VenuePayload struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Media       []domain.Image   `json:"media,omitempty"`
	Price       float64          `json:"price"`
	MaxGuests   int              `json:"maxGuests"`
	Rating      float64          `json:"rating,omitempty"`
	Meta        domain.VenueMeta `json:"meta"`
	Location    domain.Location  `json:"location"`
}

// Create creates a venue.
func (c *Venues) Create(ctx context.Context, payload VenuePayload) (domain.Venue, error) {
	return call[domain.Venue](ctx, c.gw, gateway.Request{
		Method: http.MethodPost,
		URL:    c.base + "/venues",
		Body:   payload,
	})
}

// Update replaces a venue's fields.
func (c *Venues) Update(ctx context.Context, id string, payload VenuePayload) (domain.Venue, error) {
	return call[domain.Venue](ctx, c.gw, gateway.Request{
		Method: http.MethodPut,
		URL:    c.base + "/venues/" + url.PathEscape(id),
		Body:   payload,
	})
}

// Delete removes a venue.
func (c *Venues) Delete(ctx context.Context, id string) error {
	_, err := c.gw.Do(ctx, gateway.Request{
		Method: http.MethodDelete,
		URL:    c.base + "/venues/" + url.PathEscape(id),
	})
	return err
}
