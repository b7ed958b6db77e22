// Package luxebid provides a Go client for the LuxeBid auction
// marketplace REST API: account and session endpoints, auctions and
// bids, orders, payment receipts, messages, and disputes.
package luxebid

import "time"

// DefaultBaseURL is the LuxeBid backend a client talks to when no
// other URL is configured. The standard development backend listens
// on port 8000.
const DefaultBaseURL = "http://localhost:8000/api"

// Default client settings.
const (
	DefaultTimeout = 30 * time.Second
)

// Config holds all configuration for the LuxeBid API client.
type Config struct {
	// BaseURL is the root of the LuxeBid REST API.
	BaseURL string

	// Timeout is the HTTP client timeout for each request.
	Timeout time.Duration

	// UserAgent overrides the User-Agent header when non-empty.
	UserAgent string
}

// DefaultConfig returns a Config with default settings.
func DefaultConfig() Config {
	return Config{
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}

// WithBaseURL returns a copy of the config with the specified base URL.
func (c Config) WithBaseURL(url string) Config {
	c.BaseURL = url
	return c
}

// WithTimeout returns a copy of the config with the specified timeout.
func (c Config) WithTimeout(timeout time.Duration) Config {
	c.Timeout = timeout
	return c
}
