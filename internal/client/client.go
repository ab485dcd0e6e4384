// Marquee - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/models"
)

// DefaultBaseURL is the address the server listens on by default.
const DefaultBaseURL = "http://127.0.0.1:6000"

// maxResponseBytes bounds how much of a response body is read.
const maxResponseBytes = 4 << 20

var (
	// ErrBadRequest matches 400 responses.
	ErrBadRequest = errors.New("bad request")

	// ErrNotFound matches 404 responses (unknown user, title or route).
	ErrNotFound = errors.New("not found")

	// ErrRateLimited is returned when 429 persists after all retries.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrUnavailable matches 5xx responses and an open circuit.
	ErrUnavailable = errors.New("service unavailable")
)

// APIError is a non-2xx answer decoded from the response envelope.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("HTTP %d %s: %s", e.StatusCode, e.Code, e.Message)
}

// Unwrap maps the status code onto the package sentinels.
func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusBadRequest:
		return ErrBadRequest
	case e.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case e.StatusCode == http.StatusTooManyRequests:
		return ErrRateLimited
	case e.StatusCode >= 500:
		return ErrUnavailable
	default:
		return nil
	}
}

// Config configures a Client.
type Config struct {
	BaseURL string

	// Timeout bounds a single HTTP round trip. Default: 30s
	Timeout time.Duration

	// RequestsPerSecond is the client-side request rate. Zero means unlimited.
	RequestsPerSecond float64
	Burst             int

	// MaxRetries is how many times a 429 answer is retried. Default: 3
	MaxRetries     int
	RetryBaseDelay time.Duration

	// BreakerTimeout is how long the circuit stays open. Default: 30s
	BreakerTimeout time.Duration

	HTTPClient *http.Client
}

// Client talks to a Marquee server.
type Client struct {
	baseURL        string
	http           *http.Client
	limiter        *rate.Limiter
	cb             *gobreaker.CircuitBreaker[*response]
	maxRetries     int
	retryBaseDelay time.Duration
}

type response struct {
	status int
	body   []byte
}

// New creates a Client, filling zero Config fields with defaults.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	} else if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryBaseDelay <= 0 {
		cfg.RetryBaseDelay = 500 * time.Millisecond
	}
	if cfg.BreakerTimeout <= 0 {
		cfg.BreakerTimeout = 30 * time.Second
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	limit := rate.Inf
	burst := cfg.Burst
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
		if burst <= 0 {
			burst = 1
		}
	}

	return &Client{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		http:           httpClient,
		limiter:        rate.NewLimiter(limit, burst),
		cb:             newBreaker("marquee-api", cfg.BreakerTimeout),
		maxRetries:     cfg.MaxRetries,
		retryBaseDelay: cfg.RetryBaseDelay,
	}
}

func newBreaker(name string, timeout time.Duration) *gobreaker.CircuitBreaker[*response] {
	return gobreaker.NewCircuitBreaker[*response](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Info().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state transition")
		},
	})
}

// BreakerState reports the circuit breaker state ("closed", "half-open" or "open").
func (c *Client) BreakerState() string {
	return c.cb.State().String()
}

// Recommend asks for up to limit titles similar to title for userID.
// A non-positive limit leaves the count to the server.
func (c *Client) Recommend(ctx context.Context, title string, userID int64, limit int) (*models.RecommendResponse, error) {
	params := url.Values{}
	params.Set("title", title)
	params.Set("user_id", strconv.FormatInt(userID, 10))
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	return get[*models.RecommendResponse](ctx, c, "/api/v1/recommend", params)
}

// MostRated returns the ten movies with the most ratings.
func (c *Client) MostRated(ctx context.Context) ([]models.TitleCount, error) {
	return get[[]models.TitleCount](ctx, c, "/api/v1/movies/most-rated", nil)
}

// LeastRated returns the ten movies with the fewest ratings.
func (c *Client) LeastRated(ctx context.Context) ([]models.TitleCount, error) {
	return get[[]models.TitleCount](ctx, c, "/api/v1/movies/least-rated", nil)
}

// Statistics returns dataset and engine statistics.
func (c *Client) Statistics(ctx context.Context) (*models.StatisticsResponse, error) {
	return get[*models.StatisticsResponse](ctx, c, "/api/v1/statistics", nil)
}

// Ready returns the readiness report. A server without an engine answers
// with an error matching ErrUnavailable.
func (c *Client) Ready(ctx context.Context) (*models.HealthStatus, error) {
	return get[*models.HealthStatus](ctx, c, "/api/v1/health/ready", nil)
}

type envelope[T any] struct {
	Status string           `json:"status"`
	Data   T                `json:"data"`
	Error  *models.APIError `json:"error,omitempty"`
}

func get[T any](ctx context.Context, c *Client, path string, params url.Values) (T, error) {
	var zero T

	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return zero, err
	}

	resp, err := c.cb.Execute(func() (*response, error) {
		resp, err := c.doRequestWithRetry(ctx, reqURL)
		if err != nil {
			return nil, err
		}
		if resp.status >= 500 {
			// Returned with the error so the envelope can still be decoded.
			return resp, &APIError{StatusCode: resp.status}
		}
		return resp, nil
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return zero, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	var apiErr *APIError
	if (err != nil && !errors.As(err, &apiErr)) || resp == nil {
		return zero, err
	}

	var env envelope[T]
	if decodeErr := json.Unmarshal(resp.body, &env); decodeErr != nil {
		if resp.status != http.StatusOK {
			return zero, &APIError{StatusCode: resp.status, Message: http.StatusText(resp.status)}
		}
		return zero, fmt.Errorf("decode %s: %w", path, decodeErr)
	}

	if resp.status != http.StatusOK || env.Status != models.StatusSuccess {
		out := &APIError{StatusCode: resp.status, Message: http.StatusText(resp.status)}
		if env.Error != nil {
			out.Code = env.Error.Code
			out.Message = env.Error.Message
		}
		return zero, out
	}
	return env.Data, nil
}

// doRequestWithRetry performs a GET, retrying 429 answers with exponential
// backoff. The body is read and closed before returning.
func (c *Client) doRequestWithRetry(ctx context.Context, reqURL string) (*response, error) {
	for attempt := 0; ; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("HTTP request failed: %w", err)
		}
		body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
		_ = resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("read response: %w", err)
		}

		if resp.StatusCode != http.StatusTooManyRequests || attempt >= c.maxRetries {
			return &response{status: resp.StatusCode, body: body}, nil
		}

		delay := c.retryBaseDelay * time.Duration(1<<uint(attempt))
		if seconds, err := strconv.Atoi(resp.Header.Get("Retry-After")); err == nil && seconds > 0 {
			delay = time.Duration(seconds) * time.Second
		}
		logging.Debug().Int("attempt", attempt+1).Dur("delay", delay).Msg("rate limited, retrying")

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}
