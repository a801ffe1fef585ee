package orders

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"arbitrage-dashboard-go/internal/config"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Source provides the raw text of orders.csv.
type Source interface {
	FetchText(ctx context.Context) (string, error)
}

// Client fetches orders.csv over HTTP.
// It implements the Source interface.
type Client struct {
	client      *resty.Client
	url         string
	maxAttempts int
	logger      *zap.Logger
	limiter     *rate.Limiter
}

// ensure Client implements the interface
var _ Source = (*Client)(nil)

// NewClient creates a client for the CSV resource described by cfg.
// cfg.Path is resolved against cfg.BaseURL the way a browser resolves a relative link.
func NewClient(cfg *config.Feed, logger *zap.Logger) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid feed base url %q: %w", cfg.BaseURL, err)
	}
	ref, err := url.Parse(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("invalid feed path %q: %w", cfg.Path, err)
	}

	client := resty.New()
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}

	attempts := cfg.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	burst := cfg.RateLimitBurst
	if burst < 1 {
		burst = 1
	}

	return &Client{
		client:      client,
		url:         base.ResolveReference(ref).String(),
		maxAttempts: attempts,
		logger:      logger,
		limiter:     rate.NewLimiter(rate.Limit(cfg.RateLimit), burst),
	}, nil
}

// URL returns the resolved location of orders.csv.
func (c *Client) URL() string {
	return c.url
}

// FetchText issues a GET for orders.csv and returns the whole body.
func (c *Client) FetchText(ctx context.Context) (string, error) {
	req := c.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/csv, text/plain, */*")

	resp, err := c.doRequest(ctx, http.MethodGet, c.url, req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch orders: %w", err)
	}

	return string(resp.Body()), nil
}

// doRequest executes req with rate limiting, retrying retryable failures up to maxAttempts.
func (c *Client) doRequest(ctx context.Context, method, url string, req *resty.Request) (*resty.Response, error) {
	var resp *resty.Response
	var err error

	for i := 0; i < c.maxAttempts; i++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter wait failed: %w", err)
		}

		c.logger.Debug("Executing request", zap.String("method", method), zap.String("url", url), zap.Int("attempt", i+1))
		resp, err = req.Execute(method, url)

		if err == nil && !resp.IsError() {
			return resp, nil
		}

		shouldRetry := false
		var retryAfter time.Duration

		if err == nil && resp != nil {
			statusCode := resp.StatusCode()
			if statusCode == http.StatusTooManyRequests || statusCode == http.StatusTeapot {
				shouldRetry = true
				if seconds, convErr := strconv.Atoi(resp.Header().Get("Retry-After")); convErr == nil {
					retryAfter = time.Duration(seconds) * time.Second
				}
			} else if statusCode >= 500 {
				shouldRetry = true
			}
			err = fmt.Errorf("request failed with status %s", resp.Status())
		} else if ctx.Err() == nil {
			// network or other client-side error
			shouldRetry = true
		}

		if !shouldRetry || i == c.maxAttempts-1 {
			break
		}

		if retryAfter == 0 {
			// 1s, 2s, 4s...
			retryAfter = time.Duration(math.Pow(2, float64(i))) * time.Second
		}

		c.logger.Warn("Request failed, retrying...",
			zap.Int("attempt", i+1),
			zap.Duration("retry_after", retryAfter),
			zap.Error(err),
		)

		select {
		case <-time.After(retryAfter):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return nil, err
}
