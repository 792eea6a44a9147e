// Package config loads CLI configuration from a .env file and environment
// variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	API  APIConfig
	Log  LogConfig
	OTel OTelConfig
	// SessionFile is where the single session record lives.
	SessionFile string
}

// APIConfig holds remote API settings.
type APIConfig struct {
	// BaseURL is the Noroff API root, without the /holidaze suffix.
	BaseURL string
	// Key is the deployment-configured X-Noroff-API-Key value. Optional;
	// most read endpoints work without it.
	Key string
	// Timeout bounds each outbound call. Zero disables the bound, which
	// reproduces the original client's hang-forever behavior.
	Timeout time.Duration
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string
}

// OTelConfig holds OpenTelemetry settings.
type OTelConfig struct {
	Enabled       bool
	ServiceName   string
	CollectorAddr string
}

// HolidazeBase returns the base path for holidaze resource endpoints.
func (a *APIConfig) HolidazeBase() string {
	return strings.TrimRight(a.BaseURL, "/") + "/holidaze"
}

// AuthBase returns the base path for the auth endpoints.
func (a *APIConfig) AuthBase() string {
	return strings.TrimRight(a.BaseURL, "/") + "/auth"
}

// Load loads configuration from an optional .env file with environment
// variable override.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")

	// .env is optional; env vars alone are fine.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	cfg := &Config{}
	bindConfig(v, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_BASE_URL", "https://v2.api.noroff.dev")
	v.SetDefault("NOROFF_API_KEY", "")
	v.SetDefault("HTTP_TIMEOUT", "30s")

	v.SetDefault("SESSION_FILE", defaultSessionFile())

	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("OTEL_ENABLED", false)
	v.SetDefault("OTEL_SERVICE_NAME", "holidaze-cli")
	v.SetDefault("OTEL_COLLECTOR_ADDR", "localhost:4317")
}

func bindConfig(v *viper.Viper, cfg *Config) {
	cfg.API.BaseURL = v.GetString("API_BASE_URL")
	cfg.API.Key = v.GetString("NOROFF_API_KEY")
	cfg.API.Timeout = v.GetDuration("HTTP_TIMEOUT")

	cfg.SessionFile = v.GetString("SESSION_FILE")

	cfg.Log.Level = v.GetString("LOG_LEVEL")

	cfg.OTel.Enabled = v.GetBool("OTEL_ENABLED")
	cfg.OTel.ServiceName = v.GetString("OTEL_SERVICE_NAME")
	cfg.OTel.CollectorAddr = v.GetString("OTEL_COLLECTOR_ADDR")
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("API base URL is required")
	}
	if !strings.HasPrefix(c.API.BaseURL, "http://") && !strings.HasPrefix(c.API.BaseURL, "https://") {
		return fmt.Errorf("invalid API base URL: %s", c.API.BaseURL)
	}
	if c.SessionFile == "" {
		return fmt.Errorf("session file path is required")
	}
	return nil
}

// defaultSessionFile places the session record under the user config
// directory, falling back to the working directory when that cannot be
// resolved.
func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".holidaze-session.json"
	}
	return filepath.Join(dir, "holidaze", "session.json")
}
