package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand builds the command tree.
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "holidaze",
		Short:         "Book venues and manage listings on the Holidaze marketplace",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		newLoginCommand(app),
		newRegisterCommand(app),
		newLogoutCommand(app),
		newWhoamiCommand(app),
		newVenuesCommand(app),
		newVenueCommand(app),
		newBookingsCommand(app),
		newBookCommand(app),
		newBookingCommand(app),
		newProfileCommand(app),
		newManagerCommand(app),
	)
	return root
}
