package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	Trakt   TraktConfig   `mapstructure:"trakt"`
	Output  OutputConfig  `mapstructure:"output"`
	Filters FilterConfig  `mapstructure:"filters"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// TraktConfig holds the API application credentials and client settings
type TraktConfig struct {
	ClientID     string        `mapstructure:"client_id"`
	ClientSecret string        `mapstructure:"client_secret"`
	RedirectURI  string        `mapstructure:"redirect_uri"`
	APIURL       string        `mapstructure:"api_url"`
	UserAgent    string        `mapstructure:"user_agent"`
	AccessToken  string        `mapstructure:"access_token"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

// OutputConfig controls how listing commands print results
type OutputConfig struct {
	Limit  int    `mapstructure:"limit"`
	Format string `mapstructure:"format"`
}

// FilterConfig maps preset names to filter expressions
type FilterConfig map[string]string

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
