package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/holidaze/holidaze-cli/internal/domain"
	"github.com/holidaze/holidaze-cli/internal/policy"
)

// requireManager is the command-side use of the role gate: denied sessions
// get the redirect hint instead of an API call.
func requireManager(app *App) error {
	decision := policy.ManagerAccess(app.Store.Current())
	if decision.Allow {
		return nil
	}
	switch decision.Redirect {
	case policy.RedirectLogin:
		return fmt.Errorf("not logged in: run 'holidaze login' first")
	default:
		return fmt.Errorf("this area is for venue managers: see 'holidaze profile show'")
	}
}

func newManagerCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manager",
		Short: "Venue manager area",
	}
	cmd.AddCommand(
		newManagerVenuesCommand(app),
		newManagerBookingsCommand(app),
	)
	return cmd
}

func newManagerVenuesCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "venues",
		Short: "List your venues with booking counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireManager(app); err != nil {
				return err
			}
			sess := app.Store.Current()

			return runPage(cmd, "manager-venues", func(ctx context.Context) ([]domain.Venue, error) {
				return app.Venues.Mine(ctx, sess.Name)
			}, func(w io.Writer, venues []domain.Venue) error {
				if len(venues) == 0 {
					fmt.Fprintln(w, "You have no venues yet.")
					return nil
				}
				table := tablewriter.NewWriter(w)
				table.SetHeader([]string{"ID", "Name", "Price", "Max guests", "Bookings"})
				for _, v := range venues {
					table.Append([]string{
						v.ID,
						v.Name,
						fmt.Sprintf("%.0f", v.Price),
						fmt.Sprint(v.MaxGuests),
						fmt.Sprint(len(v.Bookings)),
					})
				}
				table.Render()
				return nil
			})
		},
	}
}

func newManagerBookingsCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "bookings",
		Short: "List all bookings across your venues",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireManager(app); err != nil {
				return err
			}
			sess := app.Store.Current()
			now := time.Now()

			return runPage(cmd, "manager-bookings", func(ctx context.Context) ([]domain.Booking, error) {
				return app.Manager.AllBookings(ctx, sess.Name)
			}, func(w io.Writer, bookings []domain.Booking) error {
				if len(bookings) == 0 {
					fmt.Fprintln(w, "No bookings against your venues yet.")
					return nil
				}
				table := tablewriter.NewWriter(w)
				table.SetHeader([]string{"Venue", "Customer", "From", "To", "Guests", "Status"})
				for _, b := range bookings {
					venueName, customer := "", ""
					if b.Venue != nil {
						venueName = b.Venue.Name
					}
					if b.Customer != nil {
						customer = b.Customer.Name
					}
					status := "past"
					if policy.IsUpcoming(b.DateTo, now) {
						status = "upcoming"
					}
					table.Append([]string{venueName, customer, b.DateFrom, b.DateTo, fmt.Sprint(b.Guests), status})
				}
				table.Render()
				return nil
			})
		},
	}
}
