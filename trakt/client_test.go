package trakt

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyDoer records requests and answers them with respond
type spyDoer struct {
	mu       sync.Mutex
	requests []*http.Request
	respond  func(req *http.Request) (*http.Response, error)
}

func (s *spyDoer) Do(req *http.Request) (*http.Response, error) {
	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()

	if s.respond == nil {
		return jsonResponse(http.StatusOK, "[]", nil), nil
	}
	return s.respond(req)
}

func (s *spyDoer) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

func jsonResponse(status int, body string, header http.Header) *http.Response {
	if header == nil {
		header = http.Header{}
	}
	header.Set("Content-Type", "application/json")
	return &http.Response{
		StatusCode: status,
		Header:     header,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

// newSpyClient returns a client whose requests never leave the process
func newSpyClient(t *testing.T, spy *spyDoer) *Client {
	t.Helper()
	client, err := New(Settings{ClientID: "abc"}, WithHTTPClient(spy))
	require.NoError(t, err)
	return client
}

// newServerClient returns a client pointed at an httptest server
func newServerClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(Settings{ClientID: "abc", APIURL: server.URL})
	require.NoError(t, err)
	return client
}

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		wantErr  bool
		expected Settings
	}{
		{
			name:     "defaults applied",
			settings: Settings{ClientID: "abc"},
			expected: Settings{
				ClientID:    "abc",
				RedirectURI: "urn:ietf:wg:oauth:2.0:oob",
				APIURL:      "https://api.trakt.tv",
				UserAgent:   DefaultUserAgent(),
			},
		},
		{
			name: "explicit settings kept",
			settings: Settings{
				ClientID:     "abc",
				ClientSecret: "secret",
				RedirectURI:  "http://localhost/callback",
				APIURL:       "https://api-staging.trakt.tv/",
				UserAgent:    "my-app/1.0",
			},
			expected: Settings{
				ClientID:     "abc",
				ClientSecret: "secret",
				RedirectURI:  "http://localhost/callback",
				APIURL:       "https://api-staging.trakt.tv",
				UserAgent:    "my-app/1.0",
			},
		},
		{
			name:     "missing client id",
			settings: Settings{ClientSecret: "secret"},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := New(tt.settings)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, client)
				assert.ErrorIs(t, err, ErrInvalidConfig)
				assert.ErrorIs(t, err, ErrInvalidArgument)

				var argErr *InvalidArgumentError
				require.ErrorAs(t, err, &argErr)
				assert.Equal(t, "clientId", argErr.Param)
				assert.Equal(t, ArgString, argErr.Kind)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, client.Settings())
		})
	}
}

func TestNew_DefaultUserAgent(t *testing.T) {
	client, err := New(Settings{ClientID: "abc"})
	require.NoError(t, err)
	assert.Contains(t, client.Settings().UserAgent, "better-trakt")
	assert.Contains(t, client.Settings().UserAgent, Version)
}

func TestNew_NamespaceURLs(t *testing.T) {
	client, err := New(Settings{ClientID: "abc"})
	require.NoError(t, err)

	namespaces := map[string]Namespace{
		"https://api.trakt.tv/shows":  client.Shows,
		"https://api.trakt.tv/movies": client.Movies,
		"https://api.trakt.tv/users":  client.Users,
	}
	for want, ns := range namespaces {
		assert.Equal(t, want, ns.APIURL())
	}
}

func TestClientOptions(t *testing.T) {
	t.Run("with timeout", func(t *testing.T) {
		client, err := New(Settings{ClientID: "abc"}, WithTimeout(5*time.Second))
		require.NoError(t, err)
		httpClient, ok := client.transport.doer.(*http.Client)
		require.True(t, ok)
		assert.Equal(t, 5*time.Second, httpClient.Timeout)
	})

	t.Run("default timeout", func(t *testing.T) {
		client, err := New(Settings{ClientID: "abc"})
		require.NoError(t, err)
		httpClient, ok := client.transport.doer.(*http.Client)
		require.True(t, ok)
		assert.Equal(t, 30*time.Second, httpClient.Timeout)
	})

	t.Run("with custom http client", func(t *testing.T) {
		customClient := &http.Client{Timeout: 10 * time.Second}
		client, err := New(Settings{ClientID: "abc"}, WithHTTPClient(customClient))
		require.NoError(t, err)
		assert.Equal(t, customClient, client.transport.doer)
	})

	t.Run("with logger", func(t *testing.T) {
		var buf bytes.Buffer
		logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
		spy := &spyDoer{}
		client, err := New(Settings{ClientID: "abc"}, WithHTTPClient(spy), WithLogger(logger))
		require.NoError(t, err)

		_, err = client.Shows.BoxOffice(context.Background())
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Making Trakt API request")
		assert.Contains(t, buf.String(), `"namespace":"shows"`)
		assert.Contains(t, buf.String(), `"request_id"`)
	})

	t.Run("with metrics set", func(t *testing.T) {
		set := metrics.NewSet()
		spy := &spyDoer{}
		client, err := New(Settings{ClientID: "abc"}, WithHTTPClient(spy), WithMetricsSet(set))
		require.NoError(t, err)

		_, err = client.Movies.BoxOffice(context.Background())
		require.NoError(t, err)

		var buf bytes.Buffer
		set.WritePrometheus(&buf)
		assert.Contains(t, buf.String(), `trakt_requests_total{namespace="movies",endpoint="boxoffice",status="200"} 1`)
	})
}

func TestFixedHeaders(t *testing.T) {
	client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "2", r.Header.Get("trakt-api-version"))
		assert.Equal(t, "abc", r.Header.Get("trakt-api-key"))
		assert.Equal(t, DefaultUserAgent(), r.Header.Get("User-Agent"))
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte("[]"))
	})

	_, err := client.Shows.BoxOffice(context.Background())
	require.NoError(t, err)
}

func TestTransportErrorPassthrough(t *testing.T) {
	errBoom := errors.New("connection reset by peer")
	spy := &spyDoer{
		respond: func(*http.Request) (*http.Response, error) {
			return nil, errBoom
		},
	}
	client := newSpyClient(t, spy)

	res, err := client.Shows.Trending(context.Background(), ListOptions{Pagination: &Pagination{Page: 1, Limit: 10}})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.Same(t, errBoom, err)
	assert.Equal(t, 1, spy.calls())

	var buf bytes.Buffer
	client.WriteMetrics(&buf)
	assert.Contains(t, buf.String(), `trakt_request_errors_total{namespace="shows",endpoint="trending"} 1`)
}

func TestAPIErrorResponse(t *testing.T) {
	client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "10")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":"rate limit exceeded"}`))
	})

	res, err := client.Movies.Summary(context.Background(), "tron-legacy-2010")
	require.Error(t, err)
	assert.Nil(t, res)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
	assert.True(t, apiErr.IsRateLimited())
	assert.Equal(t, "10", apiErr.Header.Get("Retry-After"))
	assert.Contains(t, apiErr.Body, "rate limit exceeded")
	assert.Contains(t, apiErr.URL, "/movies/tron-legacy-2010")
}

func TestMalformedBody(t *testing.T) {
	client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"title": `))
	})

	res, err := client.Shows.Summary(context.Background(), "game-of-thrones")
	require.Error(t, err)
	assert.Nil(t, res)
	assert.Contains(t, err.Error(), "failed to parse shows summary response")
}

func TestContextCancellation(t *testing.T) {
	client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := client.Shows.BoxOffice(ctx)
	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, context.Canceled)
}
