package lastfm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"time"
)

// Config holds client configuration.
type Config struct {
	APIKey     string        // Optional: Last.fm API key, may also be set later with SetAPIKey
	HTTPClient *http.Client  // Optional: HTTP client (defaults to one with Timeout)
	Timeout    time.Duration // Optional: per-attempt timeout when HTTPClient is nil (defaults to 10s)
	BaseURL    string        // Optional: Base URL for API (defaults to Last.fm API, used for testing)
	UserAgent  string        // Optional: User-Agent header (defaults to DefaultUserAgent)
	Logger     Logger        // Optional: Logger for debug output and warnings
}

// Client is the main entry point for Last.fm API operations.
type Client struct {
	transport *Transport

	artist *ArtistService
	album  *AlbumService
	track  *TrackService
	tag    *TagService
	chart  *ChartService
}

var apiKeyPattern = regexp.MustCompile(`^[a-fA-F0-9]{32}$`)

// ValidAPIKeyFormat reports whether key looks like a Last.fm API key
// (32 hexadecimal characters).
func ValidAPIKeyFormat(key string) bool {
	return apiKeyPattern.MatchString(key)
}

// NewClient creates a new Last.fm API client.
//
// An empty APIKey is allowed; requests fail with ErrAPIKeyRequired until
// one is set. A key that does not look like a Last.fm key only produces a
// warning. Returns an error if BaseURL cannot be parsed.
func NewClient(cfg Config) (*Client, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: invalid BaseURL %q", ErrInvalidConfig, baseURL)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	logger := cfg.Logger
	if logger == nil {
		logger = defaultLogger()
	}

	if cfg.APIKey != "" && !ValidAPIKeyFormat(cfg.APIKey) {
		logger.Warnf("lastfm: API key format appears invalid")
	}

	t := &Transport{
		apiKey:     cfg.APIKey,
		baseURL:    u,
		httpClient: httpClient,
		userAgent:  userAgent,
		logger:     logger,
	}

	return &Client{
		transport: t,
		artist:    &ArtistService{client: t},
		album:     &AlbumService{client: t},
		track:     &TrackService{client: t},
		tag:       &TagService{client: t},
		chart:     &ChartService{client: t},
	}, nil
}

// Artist returns the artist service.
func (c *Client) Artist() *ArtistService {
	return c.artist
}

// Album returns the album service.
func (c *Client) Album() *AlbumService {
	return c.album
}

// Track returns the track service.
func (c *Client) Track() *TrackService {
	return c.track
}

// Tag returns the tag service.
func (c *Client) Tag() *TagService {
	return c.tag
}

// Chart returns the chart service.
func (c *Client) Chart() *ChartService {
	return c.chart
}

// Transport returns the underlying transport for advanced usage.
func (c *Client) Transport() *Transport {
	return c.transport
}

// SetAPIKey sets the API key for subsequent requests.
func (c *Client) SetAPIKey(key string) {
	c.transport.SetAPIKey(key)
}

// ClearAPIKey removes the API key.
func (c *Client) ClearAPIKey() {
	c.transport.ClearAPIKey()
}

// APIKey returns the current API key.
func (c *Client) APIKey() string {
	return c.transport.APIKey()
}

// Request calls any Last.fm API method and returns the raw JSON response.
// Use it for methods the typed services do not cover.
//
// Example:
//
//	raw, err := client.Request(ctx, "geo.getTopArtists", lastfm.Params{"country": "Japan"})
func (c *Client) Request(ctx context.Context, method string, params Params, opts ...RequestOption) (json.RawMessage, error) {
	return c.transport.Request(ctx, method, params, opts...)
}

// cleaner is implemented by services that hold releasable state.
type cleaner interface {
	cleanup()
}

// Close clears the API key and releases service state. The client can
// be reused after SetAPIKey.
func (c *Client) Close() {
	c.ClearAPIKey()
	for _, svc := range []any{c.artist, c.album, c.track, c.tag, c.chart} {
		if cl, ok := svc.(cleaner); ok {
			cl.cleanup()
		}
	}
}
