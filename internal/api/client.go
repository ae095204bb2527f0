package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"cinematch/internal/config"
	"cinematch/pkg/logging"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/tidwall/gjson"
)

const (
	apiSubsystem = "API"

	moviesPath    = "/movies"
	recommendPath = "/recommend"

	// maxBodyBytes bounds how much of a response body is read.
	maxBodyBytes = 4 << 20

	// halfOpenRequests lets a title reload and a recommendation reach the
	// service together once the breaker half-opens.
	halfOpenRequests = 2
)

// Options configures a Client.
type Options struct {
	BaseURL string
	// Timeout bounds each request. Zero means no client-side timeout.
	Timeout time.Duration
	// CacheTTL is how long a recommendation list is reused. Zero disables caching.
	CacheTTL time.Duration
	// FailureThreshold is the number of consecutive failures that opens the breaker.
	FailureThreshold uint32
	// OpenTimeout is how long the breaker stays open before probing again.
	OpenTimeout time.Duration
	// HTTPClient overrides the transport, mostly for tests.
	HTTPClient *http.Client
}

// Client talks to the recommendation service over HTTP.
type Client struct {
	baseURL      string
	timeout      time.Duration
	httpClient   *http.Client
	breaker      *gobreaker.CircuitBreaker[[]string]
	recCache     *cache.Cache
	newRequestID func() string
}

var _ Service = (*Client)(nil)

// NewClient creates a client for the service at opts.BaseURL.
func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	threshold := opts.FailureThreshold
	if threshold == 0 {
		threshold = config.DefaultFailureThreshold
	}

	c := &Client{
		baseURL:      strings.TrimRight(opts.BaseURL, "/"),
		timeout:      opts.Timeout,
		httpClient:   httpClient,
		newRequestID: uuid.NewString,
	}

	c.breaker = gobreaker.NewCircuitBreaker[[]string](gobreaker.Settings{
		Name:        "recommendation-service",
		MaxRequests: halfOpenRequests,
		Timeout:     opts.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		IsSuccessful: isBreakerSuccess,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn(apiSubsystem, "Circuit breaker %s changed from %s to %s", name, from, to)
		},
	})

	if opts.CacheTTL > 0 {
		c.recCache = cache.New(opts.CacheTTL, 2*opts.CacheTTL)
	}

	return c
}

// NewClientFromConfig creates a client from the loaded configuration.
func NewClientFromConfig(cfg config.CinematchConfig) *Client {
	return NewClient(Options{
		BaseURL:          cfg.Service.BaseURL,
		Timeout:          cfg.Service.Timeout,
		CacheTTL:         cfg.CacheTTL(),
		FailureThreshold: cfg.Breaker.FailureThreshold,
		OpenTimeout:      cfg.Breaker.OpenTimeout,
	})
}

// BaseURL returns the normalized service address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListTitles fetches the full title list.
func (c *Client) ListTitles(ctx context.Context) ([]string, error) {
	return c.execute(func() ([]string, error) {
		status, body, err := c.do(ctx, http.MethodGet, moviesPath, nil)
		if err != nil {
			return nil, err
		}
		if !isSuccess(status) {
			return nil, newStatusError(status, body)
		}
		return parseTitles(body)
	})
}

// Recommend asks the service for recommendations for title.
func (c *Client) Recommend(ctx context.Context, title string) ([]string, error) {
	if c.recCache != nil {
		if cached, found := c.recCache.Get(title); found {
			logging.Debug(apiSubsystem, "Returning cached recommendations for %q", title)
			return append([]string(nil), cached.([]string)...), nil
		}
	}

	payload, err := json.Marshal(recommendRequest{MovieTitle: title})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	recs, err := c.execute(func() ([]string, error) {
		status, body, err := c.do(ctx, http.MethodPost, recommendPath, payload)
		if err != nil {
			return nil, err
		}
		if !isSuccess(status) {
			return nil, newStatusError(status, body)
		}
		return parseRecommendations(body)
	})
	if err != nil {
		return nil, err
	}

	if c.recCache != nil && len(recs) > 0 {
		c.recCache.Set(title, append([]string(nil), recs...), cache.DefaultExpiration)
	}
	return recs, nil
}

type recommendRequest struct {
	MovieTitle string `json:"movie_title"`
}

type recommendResponse struct {
	Recommendations []string `json:"recommendations"`
}

func (c *Client) execute(fn func() ([]string, error)) ([]string, error) {
	result, err := c.breaker.Execute(fn)
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w (%v)", ErrServiceUnavailable, err)
	}
	return result, err
}

// do performs one request and returns the status code and the (bounded) body.
func (c *Client) do(ctx context.Context, method, path string, payload []byte) (int, []byte, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	endpoint := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := c.newRequestID()
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logging.Debug(apiSubsystem, "%s %s [%s] failed after %s: %v", method, path, requestID, time.Since(start), err)
		return 0, nil, fmt.Errorf("could not reach %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read response body: %w", err)
	}
	logging.Debug(apiSubsystem, "%s %s [%s] -> %d in %s", method, path, requestID, resp.StatusCode, time.Since(start))
	return resp.StatusCode, body, nil
}

func parseTitles(body []byte) ([]string, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: body is not JSON", ErrUnexpectedPayload)
	}
	field := gjson.GetBytes(body, "movie_titles")
	if !field.IsArray() {
		return nil, fmt.Errorf("%w: movie_titles is missing or not a list", ErrUnexpectedPayload)
	}

	items := field.Array()
	titles := make([]string, 0, len(items))
	for _, item := range items {
		if item.Type == gjson.String {
			titles = append(titles, item.Str)
		}
	}
	return titles, nil
}

func parseRecommendations(body []byte) ([]string, error) {
	var resp recommendResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse recommendations: %w", err)
	}
	if resp.Recommendations == nil {
		return []string{}, nil
	}
	return resp.Recommendations, nil
}

func newStatusError(status int, body []byte) *StatusError {
	statusErr := &StatusError{StatusCode: status}
	if gjson.ValidBytes(body) {
		if msg := gjson.GetBytes(body, "message"); msg.Type == gjson.String {
			statusErr.Message = msg.Str
		}
	}
	return statusErr
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

// isBreakerSuccess keeps 4xx answers from tripping the breaker: the service is up.
func isBreakerSuccess(err error) bool {
	if err == nil {
		return true
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.IsClientError()
	}
	return errors.Is(err, ErrUnexpectedPayload)
}
