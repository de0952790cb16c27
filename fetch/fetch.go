package fetch

import (
	"fmt"
	"io"
	"net/http"

	"marketscout/config"
	"marketscout/utils"
)

// Client performs HTTP GET requests with a per-attempt timeout and bounded,
// fixed-interval retry. A failure that survives all attempts is terminal.
type Client struct {
	http   *http.Client
	retry  *utils.RetryConfig
	logger *utils.Logger
}

// NewClient creates a Client from the retry and timeout settings in cfg.
func NewClient(cfg *config.Config, logger *utils.Logger) *Client {
	return &Client{
		http: &http.Client{Timeout: cfg.HTTPTimeout},
		retry: &utils.RetryConfig{
			MaxAttempts: cfg.MaxRetries,
			Delay:       cfg.RetryDelay,
			Logger:      logger,
		},
		logger: logger,
	}
}

// Get fetches the given URL and returns the raw body and HTTP status.
// Transport errors and non-2xx statuses are retried; the error returned
// after the final attempt wraps the last underlying cause.
func (c *Client) Get(url string) ([]byte, int, error) {
	var body []byte
	var status int

	err := c.retry.Do("GET "+url, func() error {
		resp, err := c.http.Get(url)
		if err != nil {
			return fmt.Errorf("request failed: %w", err)
		}
		defer resp.Body.Close()

		b, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("read body: %w", err)
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return fmt.Errorf("unexpected status %d", resp.StatusCode)
		}

		body = b
		status = resp.StatusCode
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	return body, status, nil
}
