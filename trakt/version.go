package trakt

// Version is the current SDK version.
const Version = "0.3.0"

// APIVersion is the value sent in the trakt-api-version header.
const APIVersion = "2"

const (
	// DefaultAPIURL is the production Trakt API.
	DefaultAPIURL = "https://api.trakt.tv"

	// DefaultRedirectURI is the OAuth out-of-band redirect sentinel.
	DefaultRedirectURI = "urn:ietf:wg:oauth:2.0:oob"

	projectURL = "https://github.com/getaugur/better-trakt/"
)

// DefaultUserAgent returns the User-Agent sent when Settings.UserAgent is empty.
func DefaultUserAgent() string {
	return "better-trakt / " + Version + " (+" + projectURL + ")"
}
