package youtube

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

const apiBaseURL = "https://www.googleapis.com/youtube/v3"

// Client wraps the YouTube Data API v3. Channel search, channel statistics
// and playlist enumeration go through the generated service; video details
// use direct HTTP requests so that fields absent from a response decode to
// nil instead of a zero value.
type Client struct {
	service *youtube.Service
	hc      *http.Client
	apiKey  string
	baseURL string

	// pageLimit caps the playlist walk; 0 walks every page.
	pageLimit int
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for every request, on both the
// service and the direct paths.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.hc = hc
	}
}

// WithBaseURL points the client at an alternative API endpoint.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithPageLimit caps how many playlist pages a single enumeration may fetch.
// The walk fails with ErrPageLimit instead of returning a truncated list.
func WithPageLimit(n int) Option {
	return func(c *Client) {
		c.pageLimit = n
	}
}

// NewClient creates a YouTube Data API client.
func NewClient(ctx context.Context, apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("youtube: api key required")
	}

	c := &Client{
		apiKey:  apiKey,
		baseURL: apiBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}

	var svcOpts []option.ClientOption
	if c.hc != nil {
		svcOpts = append(svcOpts, option.WithHTTPClient(c.hc))
	} else {
		c.hc = &http.Client{}
		svcOpts = append(svcOpts, option.WithAPIKey(apiKey))
	}
	if c.baseURL != apiBaseURL {
		svcOpts = append(svcOpts, option.WithEndpoint(c.baseURL))
	}

	service, err := youtube.NewService(ctx, svcOpts...)
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}
	c.service = service

	return c, nil
}
