// Package cli is the view layer: one cobra command per page of the
// original client, each running the same loading -> ready/error flow
// against the typed API clients.
package cli

import (
	"fmt"

	"github.com/holidaze/holidaze-cli/internal/api"
	"github.com/holidaze/holidaze-cli/internal/config"
	"github.com/holidaze/holidaze-cli/internal/gateway"
	"github.com/holidaze/holidaze-cli/internal/session"
)

// App carries the wired dependencies every command shares.
type App struct {
	Config   *config.Config
	Store    *session.FileStore
	Auth     *api.Auth
	Venues   *api.Venues
	Bookings *api.Bookings
	Profiles *api.Profiles
	Manager  *api.Manager
}

// NewApp wires the session store, gateway and resource clients from
// configuration.
func NewApp(cfg *config.Config) (*App, error) {
	store, err := session.NewFileStore(cfg.SessionFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	gw, err := gateway.New(gateway.Config{
		APIKey:  cfg.API.Key,
		Timeout: cfg.API.Timeout,
	}, store)
	if err != nil {
		return nil, fmt.Errorf("failed to build gateway: %w", err)
	}

	holidaze := cfg.API.HolidazeBase()

	return &App{
		Config:   cfg,
		Store:    store,
		Auth:     api.NewAuth(gw, cfg.API.AuthBase()),
		Venues:   api.NewVenues(gw, holidaze),
		Bookings: api.NewBookings(gw, holidaze, store),
		Profiles: api.NewProfiles(gw, holidaze),
		Manager:  api.NewManager(gw, holidaze),
	}, nil
}
