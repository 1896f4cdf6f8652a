package trakt

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// maxErrorBodySize limits how much of an error response is kept in APIError.Body
const maxErrorBodySize = 4096

// Doer sends HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// transport is shared by every namespace of a Client. It holds no mutable
// state of its own; the metric counters are atomic.
type transport struct {
	doer    Doer
	headers http.Header
	logger  zerolog.Logger
	metrics *metrics.Set
}

func newTransport(settings Settings, doer Doer, logger zerolog.Logger, set *metrics.Set) *transport {
	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	headers.Set("trakt-api-version", APIVersion)
	headers.Set("trakt-api-key", settings.ClientID)
	headers.Set("User-Agent", settings.UserAgent)

	return &transport{
		doer:    doer,
		headers: headers,
		logger:  logger,
		metrics: set,
	}
}

// endpoint describes one outbound GET
type endpoint struct {
	// namespace and name label logs and metrics, e.g. "shows" / "trending"
	namespace string
	name      string

	url         string
	query       queryParams
	accessToken string
}

func (e endpoint) fullURL() string {
	params := e.query.values()
	if len(params) == 0 {
		return e.url
	}
	return e.url + "?" + params.Encode()
}

// getJSON performs the request and decodes the body into T
func getJSON[T any](ctx context.Context, t *transport, e endpoint) (*Response[T], error) {
	resp, body, err := t.get(ctx, e)
	if err != nil {
		return nil, err
	}

	var data T
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("failed to parse %s %s response: %w", e.namespace, e.name, err)
	}

	return newResponse(resp, data), nil
}

// get sends a GET and returns the response with its fully read body.
// Errors from the Doer are returned unchanged.
func (t *transport) get(ctx context.Context, e endpoint) (*http.Response, []byte, error) {
	requestURL := e.fullURL()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header = t.headers.Clone()
	if e.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+e.accessToken)
	}

	logger := t.logger.With().
		Str("request_id", uuid.NewString()).
		Str("namespace", e.namespace).
		Str("endpoint", e.name).
		Logger()
	logger.Debug().Str("method", req.Method).Str("url", requestURL).Msg("Making Trakt API request")

	start := time.Now()
	resp, err := t.doer.Do(req)
	t.metrics.GetOrCreateHistogram(metricName("trakt_request_duration_seconds", e)).UpdateDuration(start)
	if err != nil {
		t.metrics.GetOrCreateCounter(metricName("trakt_request_errors_total", e)).Inc()
		logger.Debug().Err(err).Msg("Trakt API request failed")
		return nil, nil, err
	}
	defer resp.Body.Close()

	t.metrics.GetOrCreateCounter(statusMetricName(e, resp.StatusCode)).Inc()
	logger.Debug().
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("Trakt API response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return nil, nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
			Body:       string(body),
			URL:        requestURL,
			Header:     resp.Header,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return resp, body, nil
}

func metricName(name string, e endpoint) string {
	return fmt.Sprintf(`%s{namespace=%q,endpoint=%q}`, name, e.namespace, e.name)
}

func statusMetricName(e endpoint, status int) string {
	return fmt.Sprintf(`trakt_requests_total{namespace=%q,endpoint=%q,status=%q}`,
		e.namespace, e.name, strconv.Itoa(status))
}
