package intersight

import (
	"crypto"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultEndpoint is the Intersight SaaS API base URL.
const DefaultEndpoint = "https://intersight.com/api/v1"

// RealClient implements Manager using the Intersight REST API.
type RealClient struct {
	baseURL    *url.URL
	endpoint   string
	httpClient *http.Client
	signer     *Signer
	timeout    time.Duration
	metrics    *Metrics
}

// ClientOption configures a RealClient.
type ClientOption func(*RealClient)

// WithEndpoint sets the API base URL (e.g. an Intersight appliance).
func WithEndpoint(endpoint string) ClientOption {
	return func(c *RealClient) {
		c.endpoint = endpoint
	}
}

// WithTimeout sets the timeout applied to each API request.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *RealClient) {
		c.timeout = d
	}
}

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *RealClient) {
		c.httpClient = hc
	}
}

// WithMetrics records request metrics into m.
func WithMetrics(m *Metrics) ClientOption {
	return func(c *RealClient) {
		c.metrics = m
	}
}

// NewRealClient creates a new RealClient authenticating with the given key.
func NewRealClient(keyID string, key crypto.Signer, opts ...ClientOption) (*RealClient, error) {
	signer, err := NewSigner(keyID, key)
	if err != nil {
		return nil, err
	}

	c := &RealClient{
		endpoint:   DefaultEndpoint,
		httpClient: http.DefaultClient,
		signer:     signer,
		timeout:    60 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}

	u, err := url.Parse(strings.TrimRight(c.endpoint, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint %q: %w", c.endpoint, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid endpoint %q: scheme and host are required", c.endpoint)
	}
	c.baseURL = u

	return c, nil
}

// Endpoint returns the API base URL the client talks to.
func (c *RealClient) Endpoint() string {
	return c.baseURL.String()
}
