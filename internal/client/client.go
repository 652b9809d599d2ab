package client

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	defaultBaseURL        = "https://api.bitmovin.com/v1"
	defaultRatePerSecond  = 5.0
	defaultRateBurst      = 10
	apiKeyHeader          = "X-Api-Key"
	accountInformationURL = "/account/information"
)

// Client is a minimal REST client for the encoding API, authenticated with
// the API key resolved from configuration. Requests are throttled by a token
// bucket so tight example loops cannot hammer the API.
type Client struct {
	http    *resty.Client
	limiter *rate.Limiter
	logger  *zap.Logger
}

// Option configures Client behaviour.
type Option func(*Client)

// WithBaseURL overrides the API base URL, primarily for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.http.SetBaseURL(baseURL)
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit overrides the request throttle. Non-positive values fall
// back to the defaults.
func WithRateLimit(ratePerSecond float64, burst int) Option {
	return func(c *Client) {
		if ratePerSecond <= 0 {
			ratePerSecond = defaultRatePerSecond
		}
		if burst <= 0 {
			burst = defaultRateBurst
		}
		c.limiter = rate.NewLimiter(rate.Limit(ratePerSecond), burst)
	}
}

// New creates a Client sending the given API key with every request.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		http:    resty.New().SetBaseURL(defaultBaseURL).SetHeader(apiKeyHeader, apiKey),
		limiter: rate.NewLimiter(rate.Limit(defaultRatePerSecond), defaultRateBurst),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AccountInformation describes the account owning the API key.
type AccountInformation struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// envelope is the standard API response wrapper.
type envelope[T any] struct {
	Status string `json:"status"`
	Data   struct {
		Result T `json:"result"`
	} `json:"data"`
}

// AccountInformation fetches the account behind the configured API key.
func (c *Client) AccountInformation(ctx context.Context) (*AccountInformation, error) {
	var result envelope[AccountInformation]
	if err := c.get(ctx, accountInformationURL, &result); err != nil {
		return nil, err
	}
	return &result.Data.Result, nil
}

func (c *Client) get(ctx context.Context, path string, result any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("wait for request slot: %w", err)
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(result).
		Get(path)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	if resp.IsError() {
		return fmt.Errorf("GET %s: unexpected status %s", path, resp.Status())
	}

	c.logger.Debug("api request completed",
		zap.String("path", path),
		zap.Int("status", resp.StatusCode()),
	)
	return nil
}
