// Package fetch provides the outbound HTTP client the extraction adapters
// share. Every call carries a bounded timeout; a hanging upstream fails the
// request instead of blocking it indefinitely.
package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jonesrussell/linkmeta/internal/logger"
)

const (
	defaultTimeout             = 15 * time.Second
	defaultMaxIdleConns        = 100
	defaultMaxIdleConnsPerHost = 10
	defaultIdleConnTimeout     = 90 * time.Second
	defaultTLSHandshakeTimeout = 10 * time.Second
)

// Config configures the shared fetch client.
type Config struct {
	Timeout   time.Duration
	UserAgent string
}

// Client performs outbound requests against platform pages and APIs.
// It is safe for concurrent use.
type Client struct {
	http      *http.Client
	userAgent string
	logger    logger.Logger
}

// NewClient creates a fetch client with pooled connections and the given
// per-request timeout.
func NewClient(cfg Config, log logger.Logger) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &Client{
		http: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        defaultMaxIdleConns,
				MaxIdleConnsPerHost: defaultMaxIdleConnsPerHost,
				IdleConnTimeout:     defaultIdleConnTimeout,
				TLSHandshakeTimeout: defaultTLSHandshakeTimeout,
			},
		},
		userAgent: cfg.UserAgent,
		logger:    log,
	}
}

// Page fetches a platform page and returns the status code and raw body.
// Non-2xx statuses are not errors here; adapters that care inspect the
// status, the rest parse whatever body came back.
func (c *Client) Page(ctx context.Context, pageURL string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, http.NoBody)
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read body of %s: %w", pageURL, err)
	}

	c.logger.Debug("Fetched page",
		logger.String("url", pageURL),
		logger.Int("status", resp.StatusCode),
	)

	return resp.StatusCode, body, nil
}

// GetJSON performs a GET against an API endpoint and decodes the JSON
// response into out.
func (c *Client) GetJSON(ctx context.Context, apiURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	return c.doJSON(req, out)
}

// PostJSON performs a POST with a JSON payload and decodes the JSON response
// into out. Extra headers are applied on top of the JSON content type.
func (c *Client) PostJSON(ctx context.Context, apiURL string, headers map[string]string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return c.doJSON(req, out)
}

func (c *Client) doJSON(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("call %s: %w", req.URL, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("API call",
		logger.String("url", req.URL.String()),
		logger.String("method", req.Method),
		logger.Int("status", resp.StatusCode),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("call %s: unexpected status %d", req.URL, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response of %s: %w", req.URL, err)
	}
	return nil
}
