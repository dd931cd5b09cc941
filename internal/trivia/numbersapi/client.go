// Package numbersapi implements the remote trivia data source on top of the
// Numbers API (numbersapi.com).
package numbersapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/go-resty/resty/v2"

	"github.com/ddanielcruz/numbertrivia/internal/trivia"
)

const (
	DefaultHost          = "numbersapi.com"
	DefaultTimeout       = 10 * time.Second
	DefaultRetryAttempts = 3
)

type Config struct {
	Host          string
	Timeout       time.Duration
	RetryAttempts uint
}

// Client fetches trivia records over HTTP. Transient faults are retried here
// because retry policy belongs to the transport, not to the repository above.
type Client struct {
	httpClient    *resty.Client
	retryAttempts uint
}

var _ trivia.RemoteDataSource = (*Client)(nil)

// NewClient creates a new Numbers API client.
func NewClient(cfg Config) *Client {
	if cfg.Host == "" {
		cfg.Host = DefaultHost
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RetryAttempts == 0 {
		cfg.RetryAttempts = DefaultRetryAttempts
	}

	client := resty.New()
	client.SetBaseURL("http://" + cfg.Host)
	client.SetTimeout(cfg.Timeout)
	client.SetHeader("Content-Type", "application/json")

	return &Client{
		httpClient:    client,
		retryAttempts: cfg.RetryAttempts,
	}
}

// SetBaseURL overrides the API base URL. Used by tests to point the client at
// a local server.
func (c *Client) SetBaseURL(url string) {
	c.httpClient.SetBaseURL(url)
}

// FetchByNumber fetches trivia for a specific number.
func (c *Client) FetchByNumber(ctx context.Context, number int64) (trivia.TriviaRecord, error) {
	return c.fetch(ctx, strconv.FormatInt(number, 10))
}

// FetchRandom fetches trivia for a random number.
func (c *Client) FetchRandom(ctx context.Context) (trivia.TriviaRecord, error) {
	return c.fetch(ctx, "random")
}

func (c *Client) fetch(ctx context.Context, path string) (trivia.TriviaRecord, error) {
	var record trivia.TriviaRecord
	err := retry.Do(
		func() error {
			body, err := c.get(ctx, path)
			if err != nil {
				return err
			}
			var fetched trivia.TriviaRecord
			if err := json.Unmarshal(body, &fetched); err != nil {
				return fmt.Errorf("json.Unmarshal > %w", err)
			}
			if !fetched.Valid() {
				return fmt.Errorf("empty trivia text in response: %s", string(body))
			}
			record = fetched
			return nil
		},
		retry.Attempts(c.retryAttempts),
		retry.Delay(100*time.Millisecond),
		retry.LastErrorOnly(true),
		retry.RetryIf(isRetryableError),
	)
	if err != nil {
		return trivia.TriviaRecord{}, fmt.Errorf("fetch %q > %w", path, err)
	}
	return record, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	res, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("json", "").
		Get("/" + path)
	if err != nil {
		return nil, fmt.Errorf("client.R.Get > %w", err)
	}
	if res.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("status code: %d, body: %s", res.StatusCode(), string(res.Body()))
	}
	return res.Body(), nil
}

// isRetryableError reports whether a fetch attempt is worth repeating.
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	// 5xx responses and transport-level faults are transient.
	if strings.Contains(errStr, "status code: 5") {
		return true
	}
	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}
	// A truncated payload shows up as a JSON decode error.
	if strings.Contains(errStr, "unexpected end of JSON input") {
		return true
	}
	return false
}
