package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/holidaze/holidaze-cli/internal/domain"
	"github.com/holidaze/holidaze-cli/internal/gateway"
)

// Manager aggregates booking data across all venues a manager owns. The
// remote API has no "all bookings for my venues" endpoint, so the client
// fetches the manager's venues with bookings and customers expanded and
// flattens the per-venue lists itself.
type Manager struct {
	gw   Doer
	base string
}

// NewManager creates a manager aggregation client.
func NewManager(gw Doer, base string) *Manager {
	return &Manager{gw: gw, base: base}
}

// AllBookings returns every booking against the named manager's venues as
// one sequence, ordered by venue then by the venue's own booking order.
// Each booking carries its parent venue so callers can render it without a
// second lookup; a venue already attached by the API is left alone.
func (c *Manager) AllBookings(ctx context.Context, managerName string) ([]domain.Booking, error) {
	venues, err := call[[]domain.Venue](ctx, c.gw, gateway.Request{
		Method: http.MethodGet,
		URL:    c.base + "/profiles/" + url.PathEscape(managerName) + "/venues?_bookings=true&_customer=true",
	})
	if err != nil {
		return nil, err
	}

	var bookings []domain.Booking
	for i := range venues {
		venue := venues[i]
		for _, b := range venue.Bookings {
			if b.Venue == nil {
				// detach the nested list before using the venue as a parent
				parent := venue
				parent.Bookings = nil
				b.Venue = &parent
			}
			bookings = append(bookings, b)
		}
	}
	return bookings, nil
}
