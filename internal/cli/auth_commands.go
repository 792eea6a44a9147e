package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/holidaze/holidaze-cli/internal/api"
	"github.com/holidaze/holidaze-cli/internal/domain"
	"github.com/holidaze/holidaze-cli/internal/session"
	"github.com/holidaze/holidaze-cli/pkg/logger"
)

func newLoginCommand(app *App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" || password == "" {
				return fmt.Errorf("please enter email and password")
			}

			return runPage(cmd, "login", func(ctx context.Context) (*domain.Session, error) {
				result, err := app.Auth.Login(ctx, api.Credentials{Email: email, Password: password})
				if err != nil {
					return nil, err
				}

				// The login payload has no role flag; resolve it from the
				// profile before the session is written.
				profile, err := app.Profiles.GetWithToken(ctx, result.Name, result.AccessToken)
				if err != nil {
					return nil, err
				}

				sess := &domain.Session{
					Name:         result.Name,
					Email:        result.Email,
					VenueManager: profile.VenueManager,
					AccessToken:  result.AccessToken,
					Avatar:       result.Avatar,
					Banner:       result.Banner,
				}
				if err := app.Store.Save(sess); err != nil {
					return nil, err
				}

				logger.Info("logged in", zap.String("name", sess.Name), zap.Bool("venue_manager", sess.VenueManager))
				return sess, nil
			}, func(w io.Writer, sess *domain.Session) error {
				role := "customer"
				if sess.VenueManager {
					role = "venue manager"
				}
				fmt.Fprintf(w, "Logged in as %s (%s)\n", sess.Name, role)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	return cmd
}

func newRegisterCommand(app *App) *cobra.Command {
	var name, email, password string
	var manager bool

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" || email == "" || password == "" {
				return fmt.Errorf("name, email and password are required")
			}

			return runPage(cmd, "register", func(ctx context.Context) (domain.Profile, error) {
				return app.Auth.Register(ctx, api.Registration{
					Name:         name,
					Email:        email,
					Password:     password,
					VenueManager: manager,
				})
			}, func(w io.Writer, profile domain.Profile) error {
				fmt.Fprintf(w, "Registered %s. Run 'holidaze login' to sign in.\n", profile.Name)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "profile name")
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.Flags().BoolVar(&manager, "manager", false, "register as a venue manager")
	return cmd
}

func newLogoutCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Store.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}

func newWhoamiCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			sess, err := app.Store.Load()
			if err != nil {
				return err
			}
			if !sess.LoggedIn() {
				fmt.Fprintln(w, "Not logged in.")
				return nil
			}

			role := "customer"
			if sess.VenueManager {
				role = "venue manager"
			}
			fmt.Fprintf(w, "%s <%s> (%s)\n", sess.Name, sess.Email, role)

			info, err := session.TokenClaims(sess)
			if err != nil {
				// token is opaque to us then; the server still decides
				return nil
			}
			if !info.ExpiresAt.IsZero() {
				state := "valid"
				if info.Expired(time.Now()) {
					state = "expired"
				}
				fmt.Fprintf(w, "Token %s, expires %s\n", state, info.ExpiresAt.Format(time.RFC3339))
			}
			return nil
		},
	}
}
