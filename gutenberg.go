// Package gutenberg is a Go client for the Gutenberg print service.
// It wraps the server's HTTP API: querying the signed-in user, listing
// and canceling print jobs, submitting documents (with optional local
// conversion to PDF), and rotating the print token. Server routes are
// taken from pkg/endpoints, the single registry of paths shared with
// the server.
//
// Example usage:
//
//	client, err := gutenberg.New("https://print.example.org",
//	    gutenberg.WithToken(os.Getenv("GUTENBERG_TOKEN")))
//	if err != nil {
//	    return err
//	}
//
//	jobs, err := client.Jobs(ctx)
package gutenberg

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/gutenberg-print/gutenberg-go/internal/transport"
	"github.com/gutenberg-print/gutenberg-go/pkg/convert"
	"github.com/gutenberg-print/gutenberg-go/pkg/endpoints"
	"github.com/gutenberg-print/gutenberg-go/pkg/logging"
)

// Client talks to a single Gutenberg print server.
type Client struct {
	transport *transport.Client
	pipeline  *convert.Pipeline
	logger    *zerolog.Logger

	// deferred option state, applied in New
	token      string
	httpClient *http.Client
	timeout    time.Duration
}

// New creates a client for the print server at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	c := &Client{logger: logging.Default()}
	for _, opt := range opts {
		opt(c)
	}

	var auth transport.Authenticator = &transport.NoAuth{}
	if c.token != "" {
		auth = &transport.TokenAuth{Token: c.token}
	}

	var topts []transport.Option
	if c.httpClient != nil {
		topts = append(topts, transport.WithHTTPClient(c.httpClient))
	}
	if c.timeout > 0 {
		topts = append(topts, transport.WithTimeout(c.timeout))
	}

	t, err := transport.New(baseURL, auth, topts...)
	if err != nil {
		return nil, err
	}
	c.transport = t
	return c, nil
}

// BaseURL returns the server base URL the client talks to.
func (c *Client) BaseURL() string {
	return c.transport.BaseURL()
}

// LogoutURL returns the absolute OIDC logout URL. Logging out is a
// browser redirect, not an API call, so the URL is handed to the caller.
func (c *Client) LogoutURL() string {
	return c.transport.URL(endpoints.Logout)
}

// PrinterURL returns the absolute IPP endpoint URL, the address
// configured into printers and CUPS clients.
func (c *Client) PrinterURL() string {
	return c.transport.URL(endpoints.Printer)
}
