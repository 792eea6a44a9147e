package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/holidaze/holidaze-cli/internal/api"
	"github.com/holidaze/holidaze-cli/internal/domain"
)

func newProfileCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View and update your profile",
	}
	cmd.AddCommand(
		newProfileShowCommand(app),
		newProfileSetImageCommand(app, "set-avatar", "avatar"),
		newProfileSetImageCommand(app, "set-banner", "banner"),
	)
	return cmd
}

func requireLogin(app *App) (*domain.Session, error) {
	sess, err := app.Store.Load()
	if err != nil {
		return nil, err
	}
	if !sess.LoggedIn() {
		return nil, fmt.Errorf("not logged in: run 'holidaze login' first")
	}
	return sess, nil
}

func newProfileShowCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := requireLogin(app)
			if err != nil {
				return err
			}

			return runPage(cmd, "profile", func(ctx context.Context) (domain.Profile, error) {
				return app.Profiles.Get(ctx, sess.Name)
			}, func(w io.Writer, p domain.Profile) error {
				role := "customer"
				if p.VenueManager {
					role = "venue manager"
				}
				fmt.Fprintf(w, "%s <%s> (%s)\n", p.Name, p.Email, role)
				if p.Avatar != nil && p.Avatar.URL != "" {
					fmt.Fprintf(w, "Avatar: %s\n", p.Avatar.URL)
				}
				if p.Banner != nil && p.Banner.URL != "" {
					fmt.Fprintf(w, "Banner: %s\n", p.Banner.URL)
				}
				return nil
			})
		},
	}
}

// newProfileSetImageCommand covers both avatar and banner; the two updates
// differ only in which field of the payload is set.
func newProfileSetImageCommand(app *App, use, kind string) *cobra.Command {
	var alt string

	cmd := &cobra.Command{
		Use:   use + " <url>",
		Short: "Set your profile " + kind,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := requireLogin(app)
			if err != nil {
				return err
			}

			image := &domain.Image{URL: args[0], Alt: alt}
			payload := api.ProfileUpdate{}
			if kind == "avatar" {
				payload.Avatar = image
			} else {
				payload.Banner = image
			}

			return runPage(cmd, "profile-"+use, func(ctx context.Context) (domain.Profile, error) {
				profile, err := app.Profiles.Update(ctx, sess.Name, payload)
				if err != nil {
					return domain.Profile{}, err
				}

				// keep the cached session record in step with the remote one
				if kind == "avatar" {
					sess.Avatar = profile.Avatar
				} else {
					sess.Banner = profile.Banner
				}
				if err := app.Store.Save(sess); err != nil {
					return domain.Profile{}, err
				}
				return profile, nil
			}, func(w io.Writer, p domain.Profile) error {
				fmt.Fprintf(w, "Profile %s updated.\n", kind)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&alt, "alt", "", "alt text for the image")
	return cmd
}
