package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/holidaze/holidaze-cli/internal/domain"
	"github.com/holidaze/holidaze-cli/internal/gateway"
)

// Bookings binds the booking resource family.
type Bookings struct {
	gw       Doer
	base     string
	sessions gateway.SessionSource
}

// NewBookings creates a bookings client. The session source resolves the
// current profile name for Mine.
func NewBookings(gw Doer, base string, sessions gateway.SessionSource) *Bookings {
	return &Bookings{gw: gw, base: base, sessions: sessions}
}

// BookingPayload is the create request body.
type BookingPayload struct {
	VenueID  string `json:"venueId"`
	DateFrom string `json:"dateFrom"`
	DateTo   string `json:"dateTo"`
	Guests   int    `json:"guests"`
}

// BookingUpdate is the update request body: only dates and guest count are
// mutable.
type BookingUpdate struct {
	DateFrom string `json:"dateFrom"`
	DateTo   string `json:"dateTo"`
	Guests   int    `json:"guests"`
}

// Create places a booking. Pre-flight validation is the caller's job.
func (c *Bookings) Create(ctx context.Context, payload BookingPayload) (domain.Booking, error) {
	return call[domain.Booking](ctx, c.gw, gateway.Request{
		Method: http.MethodPost,
		URL:    c.base + "/bookings",
		Body:   payload,
	})
}

// Update changes a booking's dates or guest count.
func (c *Bookings) Update(ctx context.Context, id string, payload BookingUpdate) (domain.Booking, error) {
	return call[domain.Booking](ctx, c.gw, gateway.Request{
		Method: http.MethodPut,
		URL:    c.base + "/bookings/" + url.PathEscape(id),
		Body:   payload,
	})
}

// Delete cancels a booking.
func (c *Bookings) Delete(ctx context.Context, id string) error {
	_, err := c.gw.Do(ctx, gateway.Request{
		Method: http.MethodDelete,
		URL:    c.base + "/bookings/" + url.PathEscape(id),
	})
	return err
}

// Mine lists the current user's bookings with the venue expanded. Without a
// logged-in session it returns an empty list rather than erroring, matching
// the original page behavior.
func (c *Bookings) Mine(ctx context.Context) ([]domain.Booking, error) {
	sess := c.sessions.Current()
	if sess == nil || sess.Name == "" {
		return nil, nil
	}
	return call[[]domain.Booking](ctx, c.gw, gateway.Request{
		Method: http.MethodGet,
		URL:    c.base + "/profiles/" + url.PathEscape(sess.Name) + "/bookings?_venue=true",
	})
}
