// Package base provides shared HTTP transport for the NCBI API clients.
package base

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultTimeout for API requests
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent identifies the server to upstream services
	DefaultUserAgent = "ncbi-mcp-server/1.0 (github.com/olgasafonova/ncbi-mcp-server)"
)

// Client provides common HTTP infrastructure for the E-utilities and
// BLAST clients. Transport failures abort the current operation; there
// are no retries, no caching, and no circuit breaking.
type Client struct {
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// ClientOption configures the Client
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(c *http.Client) ClientOption {
	return func(client *Client) {
		client.HTTPClient = c
	}
}

// WithLogger sets a custom logger
func WithLogger(l *slog.Logger) ClientOption {
	return func(client *Client) {
		client.Logger = l
	}
}

// NewClient creates a new base client with default settings
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		HTTPClient: NewHTTPClient(DefaultTimeout),
		Logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Request describes a single outbound API call.
type Request struct {
	Method    string     // http.MethodGet (default) or http.MethodPost
	URL       string     // endpoint URL without query string
	Query     url.Values // encoded into the URL
	Form      url.Values // form body for POST requests
	UserAgent string     // defaults to DefaultUserAgent
	Accept    string     // Accept header, omitted when empty
}

// Do performs one HTTP request and returns the response body and status
// code. The caller interprets the status; non-2xx responses are not an
// error at this layer so callers can wrap them with endpoint context.
func (c *Client) Do(ctx context.Context, r Request) ([]byte, int, error) {
	method := r.Method
	if method == "" {
		method = http.MethodGet
	}

	target := r.URL
	if len(r.Query) > 0 {
		target = target + "?" + r.Query.Encode()
	}

	var body io.Reader
	if method == http.MethodPost && len(r.Form) > 0 {
		body = strings.NewReader(r.Form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if r.Accept != "" {
		req.Header.Set("Accept", r.Accept)
	}
	if r.UserAgent != "" {
		req.Header.Set("User-Agent", r.UserAgent)
	} else {
		req.Header.Set("User-Agent", DefaultUserAgent)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request failed: %w", err)
	}

	data, err := readAndClose(resp)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response: %w", err)
	}

	return data, resp.StatusCode, nil
}

// readAndClose reads the response body and closes it
func readAndClose(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return body, err
}

// NewHTTPClient creates an HTTP client with optimized transport settings
func NewHTTPClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   20,
		MaxConnsPerHost:       50,
		IdleConnTimeout:       120 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 30 * time.Second,
		DisableCompression:    false,
		ForceAttemptHTTP2:     true,
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
