package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/holidaze/holidaze-cli/internal/domain"
	"github.com/holidaze/holidaze-cli/internal/policy"
)

func renderVenues(w io.Writer, venues []domain.Venue) error {
	if len(venues) == 0 {
		fmt.Fprintln(w, "No venues found.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Name", "City", "Price", "Max guests", "Rating"})
	for _, v := range venues {
		table.Append([]string{
			v.ID,
			v.Name,
			v.Location.City,
			fmt.Sprintf("%.0f", v.Price),
			fmt.Sprint(v.MaxGuests),
			fmt.Sprintf("%.1f", v.Rating),
		})
	}
	table.Render()
	return nil
}

func renderVenueDetail(w io.Writer, v domain.Venue) error {
	fmt.Fprintf(w, "%s (%s)\n", v.Name, v.ID)
	if v.Description != "" {
		fmt.Fprintln(w, v.Description)
	}
	fmt.Fprintf(w, "Price: %.0f per night, max %d guests, rating %.1f\n", v.Price, v.MaxGuests, v.Rating)

	var amenities []string
	if v.Meta.Wifi {
		amenities = append(amenities, "wifi")
	}
	if v.Meta.Parking {
		amenities = append(amenities, "parking")
	}
	if v.Meta.Breakfast {
		amenities = append(amenities, "breakfast")
	}
	if v.Meta.Pets {
		amenities = append(amenities, "pets")
	}
	if len(amenities) > 0 {
		fmt.Fprintf(w, "Amenities: %s\n", strings.Join(amenities, ", "))
	}

	loc := v.Location
	if loc.City != "" || loc.Country != "" {
		fmt.Fprintf(w, "Location: %s\n", strings.TrimSuffix(strings.TrimSpace(loc.City+" "+loc.Country), " "))
	}
	if v.Owner != nil {
		fmt.Fprintf(w, "Owner: %s\n", v.Owner.Name)
	}
	if v.Bookings != nil {
		fmt.Fprintf(w, "Bookings: %d\n", len(v.Bookings))
	}
	return nil
}

// renderBookingTable prints one bucket of bookings. The editable column
// reflects the 24-hour cutoff at render time.
func renderBookingTable(w io.Writer, bookings []domain.Booking, now time.Time) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Venue", "From", "To", "Guests", "Editable"})
	for _, b := range bookings {
		venueName := ""
		if b.Venue != nil {
			venueName = b.Venue.Name
		}
		editable := "no"
		if policy.CanEditBooking(b.DateFrom, now) {
			editable = "yes"
		}
		table.Append([]string{b.ID, venueName, b.DateFrom, b.DateTo, fmt.Sprint(b.Guests), editable})
	}
	table.Render()
}

// renderBookingBuckets prints the upcoming and past sections the way the
// bookings page splits them.
func renderBookingBuckets(w io.Writer, bookings []domain.Booking, now time.Time) error {
	if len(bookings) == 0 {
		fmt.Fprintln(w, "No bookings yet.")
		return nil
	}

	buckets := policy.Bucket(bookings, now)
	if len(buckets.Upcoming) > 0 {
		fmt.Fprintln(w, "Upcoming")
		renderBookingTable(w, buckets.Upcoming, now)
	}
	if len(buckets.Past) > 0 {
		fmt.Fprintln(w, "Past")
		renderBookingTable(w, buckets.Past, now)
	}
	return nil
}
