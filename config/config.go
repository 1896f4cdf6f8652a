package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/s0up4200/better-trakt/trakt"
)

// EnvPrefix is prepended to environment overrides, e.g. BETTER_TRAKT_TRAKT_CLIENT_ID
const EnvPrefix = "BETTER_TRAKT"

// Load loads the configuration from file and environment
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".better-trakt"))
		}
		v.AddConfigPath("/etc/better-trakt/")
	}

	// Read config file. Without one, everything must come from the environment.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Trakt defaults
	v.SetDefault("trakt.client_id", "")
	v.SetDefault("trakt.client_secret", "")
	v.SetDefault("trakt.redirect_uri", trakt.DefaultRedirectURI)
	v.SetDefault("trakt.api_url", trakt.DefaultAPIURL)
	v.SetDefault("trakt.user_agent", "")
	v.SetDefault("trakt.access_token", "")
	v.SetDefault("trakt.timeout", "30s")

	// Output defaults
	v.SetDefault("output.limit", 10)
	v.SetDefault("output.format", "table")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.Trakt.ClientID == "" || cfg.Trakt.ClientID == "your-client-id-here" {
		return fmt.Errorf("trakt.client_id must be set to your Trakt application's client id")
	}

	if cfg.Trakt.Timeout < 0 {
		return fmt.Errorf("trakt.timeout must not be negative")
	}

	if cfg.Output.Limit < 1 {
		return fmt.Errorf("output.limit must be at least 1")
	}

	validOutput := map[string]bool{
		"table": true,
		"json":  true,
	}
	if !validOutput[cfg.Output.Format] {
		return fmt.Errorf("invalid output format: %s", cfg.Output.Format)
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	for name, expression := range cfg.Filters {
		if strings.TrimSpace(expression) == "" {
			return fmt.Errorf("filter preset %q has an empty expression", name)
		}
	}

	return nil
}

// Settings converts the Trakt section into client settings
func (c *Config) Settings() trakt.Settings {
	return trakt.Settings{
		ClientID:     c.Trakt.ClientID,
		ClientSecret: c.Trakt.ClientSecret,
		RedirectURI:  c.Trakt.RedirectURI,
		APIURL:       c.Trakt.APIURL,
		UserAgent:    c.Trakt.UserAgent,
	}
}
