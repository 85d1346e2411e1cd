package gutenberg

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/gutenberg-print/gutenberg-go/pkg/convert"
)

// Option configures a Client.
type Option func(*Client)

// WithToken authenticates requests with the given print token.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithHTTPClient replaces the underlying HTTP client, for custom
// timeouts, proxies, or test transports.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout overrides the per-request timeout, which defaults to
// constants.DefaultHTTPTimeout. Uploads use their own, longer deadline.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithLogger replaces the client's logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithPipeline enables local document conversion before upload using
// the given pipeline.
func WithPipeline(pipeline *convert.Pipeline) Option {
	return func(c *Client) {
		c.pipeline = pipeline
	}
}
