// Package gemini is a minimal client for the Gemini generateContent API,
// covering exactly the single-turn text completion the chat router needs.
package gemini

import (
	"net/http"
)

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=gemini_test -destination=mock_http_client_test.go -source=client.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-2.0-flash"
)

// Client calls the generateContent endpoint of a single model. The API key
// travels as a query parameter on every request, which is how the upstream
// authenticates v1beta calls.
type Client struct {
	baseURL    string
	model      string
	key        string
	httpClient HTTPClient
}

// Option is a configuration option for the client.
type Option func(*Client)

// WithBaseURL overrides the API base URL (used by tests and proxies).
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithModel overrides the model name used in the request path.
func WithModel(model string) Option {
	return func(c *Client) {
		c.model = model
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(httpClient HTTPClient) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a client authenticated with key.
func NewClient(key string, options ...Option) (*Client, error) {
	var client = &Client{
		baseURL:    defaultBaseURL,
		model:      defaultModel,
		key:        key,
		httpClient: http.DefaultClient,
	}
	for _, option := range options {
		option(client)
	}
	return client, nil
}
