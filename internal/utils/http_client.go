package utils

import (
	"github.com/go-resty/resty/v2"
)

// DefaultUserAgent is sent with every request unless overridden.
const DefaultUserAgent = "go-secret-share"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Post("/api/secret")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance that asks for
// JSON responses and identifies itself with [DefaultUserAgent].
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", DefaultUserAgent)

	return &HTTPClient{Client: client}
}
