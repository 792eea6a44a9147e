package policy

import (
	"time"

	"github.com/holidaze/holidaze-cli/internal/domain"
)

// Buckets partitions a booking list into upcoming and past, preserving the
// input order within each bucket.
type Buckets struct {
	Upcoming []domain.Booking
	Past     []domain.Booking
}

// Bucket classifies each booking by its checkout date. Because IsUpcoming
// and IsPast are exact complements, every booking lands in exactly one
// bucket.
func Bucket(bookings []domain.Booking, now time.Time) Buckets {
	var b Buckets
	for _, booking := range bookings {
		if IsUpcoming(booking.DateTo, now) {
			b.Upcoming = append(b.Upcoming, booking)
		} else {
			b.Past = append(b.Past, booking)
		}
	}
	return b
}
