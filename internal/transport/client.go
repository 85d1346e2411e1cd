// Package transport implements the HTTP layer shared by all gutenberg
// client operations: base URL handling, authentication, common headers,
// and response decoding. Paths come from pkg/endpoints; this package
// never spells out a server route itself.
package transport

import (
	"context"
	stderrors "errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gutenberg-print/gutenberg-go/pkg/constants"
	"github.com/gutenberg-print/gutenberg-go/pkg/endpoints"
	"github.com/gutenberg-print/gutenberg-go/pkg/errors"
	"github.com/gutenberg-print/gutenberg-go/pkg/logging"
)

// DefaultHTTPTimeout is the default timeout for HTTP requests.
var DefaultHTTPTimeout = constants.DefaultHTTPTimeout

// Client provides HTTP client functionality against a single print server.
type Client struct {
	base    *url.URL
	http    *http.Client
	auth    Authenticator
	timeout time.Duration
}

// Option configures a transport Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.http = httpClient
		}
	}
}

// WithTimeout overrides the per-request timeout. It applies to requests
// whose context carries no deadline of its own.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// New creates a transport client for the given server base URL.
func New(baseURL string, auth Authenticator, opts ...Option) (*Client, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.NewValidationError("server_url", baseURL, "not a valid URL")
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, errors.NewValidationError("server_url", baseURL, "scheme must be http or https")
	}
	if auth == nil {
		auth = &NoAuth{}
	}

	c := &Client{
		base: base,
		http: &http.Client{
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout:   constants.DialTimeout,
					KeepAlive: constants.KeepAliveInterval,
				}).DialContext,
			},
		},
		auth:    auth,
		timeout: DefaultHTTPTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the server base URL the client talks to.
func (c *Client) BaseURL() string {
	return strings.TrimSuffix(c.base.String(), "/")
}

// URL resolves an endpoint against the server base URL, preserving the
// registered path byte-for-byte including any query string.
func (c *Client) URL(endpoint endpoints.Endpoint) string {
	return c.URLForPath(endpoint.Path())
}

// URLForPath resolves a raw registry path against the server base URL.
func (c *Client) URLForPath(path string) string {
	return c.BaseURL() + path
}

// deadline applies the client timeout to contexts that carry no
// deadline of their own. Callers with longer operations (uploads,
// conversion) set their own deadline and are left alone.
func (c *Client) deadline(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.timeout)
}

// Do performs an HTTP request with authentication and common headers applied.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	c.auth.Apply(req)

	req.Header.Set("Accept", "application/json")
	if req.Header.Get("X-Request-ID") == "" {
		req.Header.Set("X-Request-ID", uuid.NewString())
	}
	req = req.WithContext(logging.WithRequestID(req.Context(), req.Header.Get("X-Request-ID")))

	logging.Ctx(req.Context()).Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Msg("sending request")

	resp, err := c.http.Do(req)
	if err != nil {
		if stderrors.Is(err, context.DeadlineExceeded) {
			return nil, errors.ErrTimeout
		}
		if stderrors.Is(err, context.Canceled) {
			return nil, errors.ErrCanceled
		}
		return nil, err
	}
	return resp, nil
}

// Get performs a GET request against an endpoint and decodes the JSON
// response into target.
func (c *Client) Get(ctx context.Context, endpoint endpoints.Endpoint, target any) error {
	return c.GetPath(logging.WithEndpoint(ctx, string(endpoint)), endpoint.Path(), target)
}

// GetPath performs a GET request against a raw registry path.
func (c *Client) GetPath(ctx context.Context, path string, target any) error {
	ctx, cancel := c.deadline(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URLForPath(path), nil)
	if err != nil {
		return errors.WrapIO("create", "GET "+path, err)
	}

	resp, err := c.Do(req)
	if err != nil {
		return err
	}
	return DecodeResponse(resp, path, target)
}

// Post performs a POST request against an endpoint and decodes the JSON
// response into target. A nil target discards the response body.
func (c *Client) Post(ctx context.Context, endpoint endpoints.Endpoint, body io.Reader, contentType string, target any) error {
	return c.PostPath(logging.WithEndpoint(ctx, string(endpoint)), endpoint.Path(), body, contentType, target)
}

// PostPath performs a POST request against a raw registry path.
func (c *Client) PostPath(ctx context.Context, path string, body io.Reader, contentType string, target any) error {
	ctx, cancel := c.deadline(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URLForPath(path), body)
	if err != nil {
		return errors.WrapIO("create", "POST "+path, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.Do(req)
	if err != nil {
		return err
	}
	return DecodeResponse(resp, path, target)
}
