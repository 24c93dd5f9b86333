// Package api is the HTTP client for the remote catalog/order service. It
// exposes the two calls the storefront makes, fetching the product list and
// submitting an order, and keeps wire concerns (envelopes, status handling,
// image URL absolutization) out of the core.
package api

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/weblarek/weblarek/pkg/errors"
	"github.com/weblarek/weblarek/pkg/logging"
)

// DefaultTimeout bounds every request to the shop API.
const DefaultTimeout = 30 * time.Second

// Client provides HTTP access to the shop API.
type Client struct {
	http    *http.Client
	baseURL string
	cdnURL  string
	logger  *zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithCDN sets the content root that relative image references are
// absolutized against.
func WithCDN(cdnURL string) Option {
	return func(c *Client) { c.cdnURL = cdnURL }
}

// WithLogger sets the logger for boundary failures.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New creates a client for the shop API at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		http:    &http.Client{Timeout: DefaultTimeout},
		baseURL: strings.TrimSuffix(baseURL, "/"),
		logger:  logging.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get performs a GET and returns the response body for 2xx statuses.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, errors.WrapResource("create", "request", "GET "+path, err)
	}
	req.Header.Set("Accept", "application/json")
	return c.do(req, path)
}

// post performs a JSON POST and returns the response body for 2xx statuses.
func (c *Client) post(ctx context.Context, path string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WrapResource("create", "request", "POST "+path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, path)
}

func (c *Client) do(req *http.Request, path string) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.WrapAPI(path, 0, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WrapAPI(path, resp.StatusCode, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.NewAPIError(path, resp.StatusCode, apiMessage(body))
	}
	return body, nil
}

// absolutize resolves an image reference against the CDN root.
func (c *Client) absolutize(image string) string {
	if c.cdnURL == "" || image == "" || strings.Contains(image, "://") {
		return image
	}
	return strings.TrimSuffix(c.cdnURL, "/") + "/" + strings.TrimPrefix(image, "/")
}
