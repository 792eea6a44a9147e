// Package policy holds the client-side rules that gate user actions against
// time and role. Every function is pure: the current time is always an
// explicit parameter so callers and tests control the clock.
package policy

import (
	"strings"
	"time"
)

// EditCutoff is how long before check-in a booking stops being editable or
// cancellable by the customer.
const EditCutoff = 24 * time.Hour

// instantLayouts are tried in order for values that carry a time component.
// The remote API serves RFC3339, but older records have been seen without a
// zone suffix; those are read as local time.
var instantLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
}

const dateOnlyLayout = "2006-01-02"

// ParseInstant parses an ISO date or timestamp string. A bare date resolves
// to midnight local time on that calendar day.
func ParseInstant(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, "T") {
		return time.ParseInLocation(dateOnlyLayout, s, time.Local)
	}
	var firstErr error
	for _, layout := range instantLayouts {
		t, err := time.ParseInLocation(layout, s, time.Local)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

// endOfDay resolves the comparison instant for a dateTo value. A bare date
// means the whole calendar day, so it maps to 23:59:59.999 local time; a
// value that already carries a time component is used as-is. Without this a
// booking ending "today" would be classified as already past.
func endOfDay(s string) (time.Time, error) {
	if strings.Contains(s, "T") {
		return ParseInstant(s)
	}
	d, err := ParseInstant(s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, int(999*time.Millisecond), d.Location()), nil
}

// CanEditBooking reports whether a booking starting at dateFrom may still be
// edited or cancelled at the given time. The cutoff is inclusive: exactly 24
// hours before check-in is still eligible. An unparseable dateFrom is never
// eligible.
func CanEditBooking(dateFrom string, now time.Time) bool {
	checkIn, err := ParseInstant(dateFrom)
	if err != nil {
		return false
	}
	return checkIn.Sub(now) >= EditCutoff
}

// IsUpcoming reports whether a booking ending at dateTo is still current at
// the given time. A booking counts as upcoming through the end of its
// checkout day; only dateTo is consulted, so a stay already in progress is
// upcoming until checkout.
func IsUpcoming(dateTo string, now time.Time) bool {
	end, err := endOfDay(dateTo)
	if err != nil {
		return false
	}
	return !now.After(end)
}

// IsPast is the exact complement of IsUpcoming: true iff the given time is
// after the end of the checkout day. Unparseable values bucket as past.
func IsPast(dateTo string, now time.Time) bool {
	return !IsUpcoming(dateTo, now)
}
