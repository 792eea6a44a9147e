package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/holidaze/holidaze-cli/internal/api"
	"github.com/holidaze/holidaze-cli/internal/domain"
	"github.com/holidaze/holidaze-cli/internal/policy"
)

func newBookingsCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "bookings",
		Short: "List your bookings, split into upcoming and past",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			return runPage(cmd, "bookings", func(ctx context.Context) ([]domain.Booking, error) {
				return app.Bookings.Mine(ctx)
			}, func(w io.Writer, bookings []domain.Booking) error {
				return renderBookingBuckets(w, bookings, now)
			})
		},
	}
}

func newBookCommand(app *App) *cobra.Command {
	var from, to string
	var guests int

	cmd := &cobra.Command{
		Use:   "book <venue-id>",
		Short: "Book a venue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPage(cmd, "book", func(ctx context.Context) (domain.Booking, error) {
				venue, err := app.Venues.Get(ctx, args[0])
				if err != nil {
					return domain.Booking{}, err
				}

				sess, err := app.Store.Load()
				if err != nil {
					return domain.Booking{}, err
				}
				req := policy.BookingRequest{DateFrom: from, DateTo: to, Guests: guests}
				if err := policy.CheckBookingRequest(sess, &venue, req); err != nil {
					return domain.Booking{}, err
				}

				booking, err := app.Bookings.Create(ctx, api.BookingPayload{
					VenueID:  venue.ID,
					DateFrom: from,
					DateTo:   to,
					Guests:   guests,
				})
				if err != nil {
					return domain.Booking{}, err
				}
				if booking.Venue == nil {
					booking.Venue = &venue
				}
				return booking, nil
			}, func(w io.Writer, b domain.Booking) error {
				nights := policy.Nights(b.DateFrom, b.DateTo)
				fmt.Fprintf(w, "Booked %s: %s to %s, %d guests (%d nights", b.Venue.Name, b.DateFrom, b.DateTo, b.Guests, nights)
				fmt.Fprintf(w, ", total %.0f)\n", policy.TotalPrice(b.DateFrom, b.DateTo, b.Venue))
				fmt.Fprintf(w, "Booking id: %s\n", b.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "check-in date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "check-out date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&guests, "guests", 1, "number of guests")
	return cmd
}

func newBookingCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "booking",
		Short: "Change or cancel a booking",
	}
	cmd.AddCommand(
		newBookingUpdateCommand(app),
		newBookingCancelCommand(app),
	)
	return cmd
}

// findOwnBooking locates one of the current user's bookings. A nil return
// with no error means the list did not contain it; the mutation still goes
// to the server, which owns the final decision.
func findOwnBooking(ctx context.Context, app *App, id string) (*domain.Booking, error) {
	bookings, err := app.Bookings.Mine(ctx)
	if err != nil {
		return nil, err
	}
	for i := range bookings {
		if bookings[i].ID == id {
			return &bookings[i], nil
		}
	}
	return nil, nil
}

// checkEditable enforces the 24-hour cutoff client-side before a mutation.
func checkEditable(b *domain.Booking, now time.Time) error {
	if b != nil && !policy.CanEditBooking(b.DateFrom, now) {
		return fmt.Errorf("booking %s can no longer be changed: less than 24 hours to check-in", b.ID)
	}
	return nil
}

func newBookingUpdateCommand(app *App) *cobra.Command {
	var from, to string
	var guests int

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change a booking's dates or guests",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			return runPage(cmd, "booking-update", func(ctx context.Context) (domain.Booking, error) {
				current, err := findOwnBooking(ctx, app, args[0])
				if err != nil {
					return domain.Booking{}, err
				}
				if err := checkEditable(current, now); err != nil {
					return domain.Booking{}, err
				}

				payload := api.BookingUpdate{DateFrom: from, DateTo: to, Guests: guests}
				if current != nil {
					if payload.DateFrom == "" {
						payload.DateFrom = current.DateFrom
					}
					if payload.DateTo == "" {
						payload.DateTo = current.DateTo
					}
					if !cmd.Flags().Changed("guests") {
						payload.Guests = current.Guests
					}
				}
				return app.Bookings.Update(ctx, args[0], payload)
			}, func(w io.Writer, b domain.Booking) error {
				fmt.Fprintf(w, "Booking %s updated: %s to %s, %d guests\n", b.ID, b.DateFrom, b.DateTo, b.Guests)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "new check-in date")
	cmd.Flags().StringVar(&to, "to", "", "new check-out date")
	cmd.Flags().IntVar(&guests, "guests", 0, "new guest count")
	return cmd
}

func newBookingCancelCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel a booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			ctx := cmd.Context()

			current, err := findOwnBooking(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := checkEditable(current, now); err != nil {
				return err
			}

			if err := app.Bookings.Delete(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Booking cancelled.")
			return nil
		},
	}
}
