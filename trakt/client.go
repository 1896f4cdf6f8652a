package trakt

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/rs/zerolog"
)

const defaultTimeout = 30 * time.Second

// Settings configure a Client. Zero values fall back to the documented defaults.
type Settings struct {
	// ClientID is the Trakt application's client id. Required.
	ClientID string

	// ClientSecret is the Trakt application's client secret. It is stored
	// but not used by any endpoint this package implements.
	ClientSecret string

	// RedirectURI is the OAuth redirect.
	// Default "urn:ietf:wg:oauth:2.0:oob".
	RedirectURI string

	// APIURL is the Trakt API base URL, without trailing slash.
	// Default "https://api.trakt.tv".
	APIURL string

	// UserAgent is sent with every request.
	// Default "better-trakt / <Version> (+https://github.com/getaugur/better-trakt/)".
	UserAgent string
}

// withDefaults returns a copy of s with every empty optional field set
func (s Settings) withDefaults() Settings {
	if s.RedirectURI == "" {
		s.RedirectURI = DefaultRedirectURI
	}
	if s.APIURL == "" {
		s.APIURL = DefaultAPIURL
	}
	s.APIURL = strings.TrimRight(s.APIURL, "/")
	if s.UserAgent == "" {
		s.UserAgent = DefaultUserAgent()
	}
	return s
}

// Namespace is implemented by every API namespace of a Client
type Namespace interface {
	// APIURL returns the namespace's base URL, e.g. "https://api.trakt.tv/shows"
	APIURL() string
}

var (
	_ Namespace = (*Shows)(nil)
	_ Namespace = (*Movies)(nil)
	_ Namespace = (*Users)(nil)
)

// namespaceConfig is the configuration a namespace derives from its parent
type namespaceConfig struct {
	apiURL    string
	transport *transport
}

// scoped appends a path segment to the config's URL
func (c namespaceConfig) scoped(segment string) namespaceConfig {
	return namespaceConfig{
		apiURL:    c.apiURL + "/" + segment,
		transport: c.transport,
	}
}

// Client is the Trakt API client
type Client struct {
	settings  Settings
	transport *transport

	// Users is the users API
	Users *Users
	// Shows is the shows API
	Shows *Shows
	// Movies is the movies API
	Movies *Movies
}

// New creates a new Trakt client. It does not contact the API.
func New(settings Settings, opts ...Option) (*Client, error) {
	if err := checkRequiredArg(settings.ClientID, "clientId", ArgString); err != nil {
		return nil, &configError{err: err}
	}

	options := clientOptions{
		timeout: defaultTimeout,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&options)
	}

	doer := options.doer
	if doer == nil {
		doer = &http.Client{Timeout: options.timeout}
	}
	set := options.metrics
	if set == nil {
		set = metrics.NewSet()
	}

	settings = settings.withDefaults()
	t := newTransport(settings, doer, options.logger, set)
	root := namespaceConfig{apiURL: settings.APIURL, transport: t}

	return &Client{
		settings:  settings,
		transport: t,
		Users:     newUsers(root),
		Shows:     newShows(root),
		Movies:    newMovies(root),
	}, nil
}

// Settings returns a copy of the settings the client was built with, defaults applied
func (c *Client) Settings() Settings {
	return c.settings
}

// WriteMetrics writes the client's request metrics in Prometheus text format
func (c *Client) WriteMetrics(w io.Writer) {
	c.transport.metrics.WritePrometheus(w)
}
