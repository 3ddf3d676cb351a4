package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with the given request timeout
// and User-Agent. Zero values keep resty's defaults.
func NewHTTPClient(timeout time.Duration, userAgent string) *HTTPClient {
	c := resty.New()
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	if userAgent != "" {
		c.SetHeader("User-Agent", userAgent)
	}
	return &HTTPClient{Client: c}
}
