package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIConfig_Bases(t *testing.T) {
	api := APIConfig{BaseURL: "https://v2.api.noroff.dev"}
	assert.Equal(t, "https://v2.api.noroff.dev/holidaze", api.HolidazeBase())
	assert.Equal(t, "https://v2.api.noroff.dev/auth", api.AuthBase())

	// a trailing slash must not double up
	api.BaseURL = "https://v2.api.noroff.dev/"
	assert.Equal(t, "https://v2.api.noroff.dev/holidaze", api.HolidazeBase())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"missing base URL", func(c *Config) { c.API.BaseURL = "" }, true},
		{"bad base URL scheme", func(c *Config) { c.API.BaseURL = "ftp://example.com" }, true},
		{"missing session file", func(c *Config) { c.SessionFile = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				API:         APIConfig{BaseURL: "https://v2.api.noroff.dev"},
				SessionFile: "/tmp/session.json",
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
