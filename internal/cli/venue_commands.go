package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/holidaze/holidaze-cli/internal/api"
	"github.com/holidaze/holidaze-cli/internal/domain"
)

func newVenuesCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "venues",
		Short: "Browse venues",
	}
	cmd.AddCommand(
		newVenuesListCommand(app),
		newVenuesSearchCommand(app),
		newVenuesShowCommand(app),
	)
	return cmd
}

func newVenuesListCommand(app *App) *cobra.Command {
	var params api.ListParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List venues, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPage(cmd, "venues", func(ctx context.Context) ([]domain.Venue, error) {
				return app.Venues.List(ctx, params)
			}, renderVenues)
		},
	}

	cmd.Flags().IntVar(&params.Limit, "limit", 100, "venues per page")
	cmd.Flags().IntVar(&params.Page, "page", 1, "page number")
	cmd.Flags().StringVar(&params.Sort, "sort", "created", "sort field (created or updated)")
	cmd.Flags().StringVar(&params.SortOrder, "order", "desc", "sort order (asc or desc)")
	return cmd
}

func newVenuesSearchCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search venues by text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPage(cmd, "venue-search", func(ctx context.Context) ([]domain.Venue, error) {
				return app.Venues.Search(ctx, args[0])
			}, renderVenues)
		},
	}
}

func newVenuesShowCommand(app *App) *cobra.Command {
	var withBookings bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one venue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPage(cmd, "venue", func(ctx context.Context) (domain.Venue, error) {
				if withBookings {
					return app.Venues.GetWithBookings(ctx, args[0])
				}
				return app.Venues.Get(ctx, args[0])
			}, renderVenueDetail)
		},
	}

	cmd.Flags().BoolVar(&withBookings, "bookings", false, "include bookings and owner")
	return cmd
}

// newVenueCommand groups the manager-side venue mutations.
func newVenueCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "venue",
		Short: "Create and manage your venues (venue managers)",
	}
	cmd.AddCommand(
		newVenueCreateCommand(app),
		newVenueUpdateCommand(app),
		newVenueDeleteCommand(app),
	)
	return cmd
}

// venueFlags registers the shared create/update payload flags.
func venueFlags(cmd *cobra.Command, p *api.VenuePayload, media *[]string) {
	cmd.Flags().StringVar(&p.Name, "name", "", "venue name")
	cmd.Flags().StringVar(&p.Description, "description", "", "venue description")
	cmd.Flags().Float64Var(&p.Price, "price", 0, "price per night")
	cmd.Flags().IntVar(&p.MaxGuests, "max-guests", 0, "maximum number of guests")
	cmd.Flags().Float64Var(&p.Rating, "rating", 0, "venue rating")
	cmd.Flags().StringSliceVar(media, "media", nil, "media image URL (repeatable)")
	cmd.Flags().BoolVar(&p.Meta.Wifi, "wifi", false, "has wifi")
	cmd.Flags().BoolVar(&p.Meta.Parking, "parking", false, "has parking")
	cmd.Flags().BoolVar(&p.Meta.Breakfast, "breakfast", false, "serves breakfast")
	cmd.Flags().BoolVar(&p.Meta.Pets, "pets", false, "allows pets")
	cmd.Flags().StringVar(&p.Location.Address, "address", "", "street address")
	cmd.Flags().StringVar(&p.Location.City, "city", "", "city")
	cmd.Flags().StringVar(&p.Location.Zip, "zip", "", "zip code")
	cmd.Flags().StringVar(&p.Location.Country, "country", "", "country")
}

func mediaImages(urls []string) []domain.Image {
	images := make([]domain.Image, 0, len(urls))
	for _, u := range urls {
		images = append(images, domain.Image{URL: u})
	}
	return images
}

func newVenueCreateCommand(app *App) *cobra.Command {
	var payload api.VenuePayload
	var media []string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a venue",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireManager(app); err != nil {
				return err
			}

			payload.Media = mediaImages(media)
			venue := domain.Venue{Name: payload.Name, Price: payload.Price, MaxGuests: payload.MaxGuests}
			if err := venue.Validate(); err != nil {
				return err
			}

			return runPage(cmd, "venue-create", func(ctx context.Context) (domain.Venue, error) {
				return app.Venues.Create(ctx, payload)
			}, func(w io.Writer, v domain.Venue) error {
				fmt.Fprintf(w, "Created venue %s (%s)\n", v.Name, v.ID)
				return nil
			})
		},
	}

	venueFlags(cmd, &payload, &media)
	return cmd
}

func newVenueUpdateCommand(app *App) *cobra.Command {
	var payload api.VenuePayload
	var media []string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a venue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireManager(app); err != nil {
				return err
			}

			return runPage(cmd, "venue-update", func(ctx context.Context) (domain.Venue, error) {
				// PUT replaces the record, so start from the current one and
				// overlay only the flags the user actually set.
				current, err := app.Venues.Get(ctx, args[0])
				if err != nil {
					return domain.Venue{}, err
				}

				merged := api.VenuePayload{
					Name:        current.Name,
					Description: current.Description,
					Media:       current.Media,
					Price:       current.Price,
					MaxGuests:   current.MaxGuests,
					Rating:      current.Rating,
					Meta:        current.Meta,
					Location:    current.Location,
				}
				overlayVenueFlags(cmd, &merged, payload, media)

				venue := domain.Venue{Name: merged.Name, Price: merged.Price, MaxGuests: merged.MaxGuests}
				if err := venue.Validate(); err != nil {
					return domain.Venue{}, err
				}
				return app.Venues.Update(ctx, args[0], merged)
			}, func(w io.Writer, v domain.Venue) error {
				fmt.Fprintf(w, "Updated venue %s (%s)\n", v.Name, v.ID)
				return nil
			})
		},
	}

	venueFlags(cmd, &payload, &media)
	return cmd
}

// overlayVenueFlags copies the explicitly-set flag values onto the merged
// payload.
func overlayVenueFlags(cmd *cobra.Command, merged *api.VenuePayload, flags api.VenuePayload, media []string) {
	set := cmd.Flags().Changed
	if set("name") {
		merged.Name = flags.Name
	}
	if set("description") {
		merged.Description = flags.Description
	}
	if set("price") {
		merged.Price = flags.Price
	}
	if set("max-guests") {
		merged.MaxGuests = flags.MaxGuests
	}
	if set("rating") {
		merged.Rating = flags.Rating
	}
	if set("media") {
		merged.Media = mediaImages(media)
	}
	if set("wifi") {
		merged.Meta.Wifi = flags.Meta.Wifi
	}
	if set("parking") {
		merged.Meta.Parking = flags.Meta.Parking
	}
	if set("breakfast") {
		merged.Meta.Breakfast = flags.Meta.Breakfast
	}
	if set("pets") {
		merged.Meta.Pets = flags.Meta.Pets
	}
	if set("address") {
		merged.Location.Address = flags.Location.Address
	}
	if set("city") {
		merged.Location.City = flags.Location.City
	}
	if set("zip") {
		merged.Location.Zip = flags.Location.Zip
	}
	if set("country") {
		merged.Location.Country = flags.Location.Country
	}
}

func newVenueDeleteCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a venue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireManager(app); err != nil {
				return err
			}
			if err := app.Venues.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Venue deleted.")
			return nil
		},
	}
}
