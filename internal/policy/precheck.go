package policy

import (
	"fmt"
	"time"

	"github.com/holidaze/holidaze-cli/internal/domain"
)

// BookingRequest is the pre-flight input for a create-booking attempt.
type BookingRequest struct {
	DateFrom string
	DateTo   string
	Guests   int
}

// CheckBookingRequest rejects an obviously invalid booking attempt before it
// reaches the network. Rules run in a fixed precedence order and the first
// failure wins, so exactly one message is surfaced at a time:
//
//	session exists > not a manager > dates chosen > dates parse >
//	check-out after check-in > at least one guest > within venue capacity
func CheckBookingRequest(sess *domain.Session, venue *domain.Venue, req BookingRequest) error {
	if !sess.LoggedIn() {
		return domain.ErrNotLoggedIn
	}
	if sess.VenueManager {
		return domain.ErrManagerCannotBook
	}
	if req.DateFrom == "" || req.DateTo == "" {
		return domain.ErrMissingDates
	}
	from, errFrom := ParseInstant(req.DateFrom)
	to, errTo := ParseInstant(req.DateTo)
	if errFrom != nil || errTo != nil {
		return domain.ErrInvalidDates
	}
	if !to.After(from) {
		return domain.ErrCheckOutTooEarly
	}
	if req.Guests < 1 {
		return domain.ErrNoGuests
	}
	if req.Guests > venue.MaxGuests {
		return fmt.Errorf("%w: max guests is %d", domain.ErrTooManyGuests, venue.MaxGuests)
	}
	return nil
}

// Nights is the number of nights between two parsed instants, rounding any
// partial day up. Zero when the range is empty or inverted.
func Nights(dateFrom, dateTo string) int {
	from, errFrom := ParseInstant(dateFrom)
	to, errTo := ParseInstant(dateTo)
	if errFrom != nil || errTo != nil {
		return 0
	}
	diff := to.Sub(from)
	if diff <= 0 {
		return 0
	}
	const day = 24 * time.Hour
	return int((diff + day - 1) / day)
}

// TotalPrice is the pre-flight price estimate for a stay: nights times the
// venue's nightly price. Display-only; the API computes nothing from it.
func TotalPrice(dateFrom, dateTo string, venue *domain.Venue) float64 {
	return float64(Nights(dateFrom, dateTo)) * venue.Price
}
