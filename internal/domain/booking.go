package domain

import "time"

// Booking is a reservation against a venue. DateFrom and DateTo are kept as
// the raw strings the API returned: the remote side serves either bare
// dates ("2024-06-01") or full timestamps for the same logical field, and
// the policy layer normalizes them at the point of comparison.
type Booking struct {
	ID       string    `json:"id"`
	DateFrom string    `json:"dateFrom"`
	DateTo   string    `json:"dateTo"`
	Guests   int       `json:"guests"`
	Created  time.Time `json:"created"`
	Updated  time.Time `json:"updated"`
	Venue    *Venue    `json:"venue,omitempty"`
	Customer *Profile  `json:"customer,omitempty"`
}

// BelongsToVenue reports whether the booking's attached venue matches the
// given venue id.
func (b *Booking) BelongsToVenue(venueID string) bool {
	return b.Venue != nil && b.Venue.ID == venueID
}
