package client

import (
	"net/http"
	"strings"
	"time"

	"github.com/mwstools/mwstools"
	"github.com/mwstools/mwstools/wserrors"
)

// DefaultTimeout bounds a single call when no timeout is configured.
const DefaultTimeout = 30 * time.Second

// restPath is the fixed REST endpoint path relative to the site base URL.
const restPath = "/webservice/rest/server.php"

// Client calls web service functions on one Moodle site.
// A Client is safe for concurrent use.
type Client struct {
	baseURL    string
	token      string
	timeout    time.Duration
	httpClient *http.Client
	logger     Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
// Useful for custom transports, proxies, or test doubles.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the per-call deadline. Values <= 0 keep the default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger sets the structured logger. The default discards all output.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a Client for the site at baseURL authenticating with token.
// Trailing slashes on baseURL are stripped. Both arguments are required;
// a missing one fails immediately with a *wserrors.ValidationError.
func New(baseURL, token string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		return nil, &wserrors.ValidationError{Field: "baseUrl", Message: "must not be empty"}
	}
	if token == "" {
		return nil, &wserrors.ValidationError{Field: "token", Message: "must not be empty"}
	}

	c := &Client{
		baseURL:    baseURL,
		token:      token,
		timeout:    DefaultTimeout,
		httpClient: &http.Client{},
		logger:     NopLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the configured site base URL with trailing slashes stripped.
func (c *Client) BaseURL() string { return c.baseURL }

// Timeout returns the per-call deadline.
func (c *Client) Timeout() time.Duration { return c.timeout }

// Endpoint returns the full REST endpoint URL calls are posted to.
func (c *Client) Endpoint() string { return c.baseURL + restPath }

func (c *Client) userAgent() string { return mwstools.UserAgent() }
