package domain

import "errors"

// Domain errors
var (
	// Booking pre-flight errors, in the order the rules are checked
	ErrNotLoggedIn       = errors.New("you must be logged in to book")
	ErrManagerCannotBook = errors.New("venue managers cannot book venues")
	ErrMissingDates      = errors.New("please select both dates")
	ErrInvalidDates      = errors.New("invalid dates")
	ErrCheckOutTooEarly  = errors.New("check-out must be after check-in")
	ErrNoGuests          = errors.New("guests must be at least 1")
	ErrTooManyGuests     = errors.New("guest count exceeds venue capacity")

	// Venue errors
	ErrInvalidVenueName  = errors.New("venue name is required")
	ErrInvalidVenuePrice = errors.New("venue price must be greater than zero")
	ErrInvalidMaxGuests  = errors.New("venue must allow at least one guest")

	// Gateway errors
	ErrDecode = errors.New("unexpected response body")

	// Session errors
	ErrNoSession = errors.New("no active session")
)
