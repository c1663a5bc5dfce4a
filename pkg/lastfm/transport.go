package lastfm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const (
	// DefaultBaseURL is the default Last.fm API endpoint.
	DefaultBaseURL = "https://ws.audioscrobbler.com/2.0/"

	// DefaultUserAgent identifies the client to Last.fm.
	DefaultUserAgent = "lfm/1.0"

	// DefaultTimeout bounds every HTTP attempt.
	DefaultTimeout = 10 * time.Second

	// rateLimitBackoff is the fixed wait before retrying an HTTP 429.
	rateLimitBackoff = 1000 * time.Millisecond
)

// Reserved parameters are always set by the transport. Caller values for
// these keys are dropped.
const (
	paramMethod = "method"
	paramAPIKey = "api_key"
	paramFormat = "format"
)

// IsReservedParam reports whether key is set by the transport on every
// request. Caller values for reserved keys are never sent.
func IsReservedParam(key string) bool {
	switch key {
	case paramMethod, paramAPIKey, paramFormat:
		return true
	}
	return false
}

// Transport sends requests to the Last.fm API.
//
// It owns the API key, injects the method name, key and format into every
// request, detects API errors reported inside successful responses and
// retries transient HTTP failures once. A Transport is safe for concurrent
// use; the API key is read once per request.
//
// Client.Transport returns the transport configured by NewClient. A zero
// Transport is also usable once it has a key; it talks to DefaultBaseURL
// with DefaultTimeout and DefaultUserAgent.
type Transport struct {
	mu     sync.RWMutex
	apiKey string

	baseURL    *url.URL
	httpClient *http.Client
	userAgent  string
	logger     Logger
}

var (
	defaultEndpoint, _ = url.Parse(DefaultBaseURL)
	defaultHTTPClient  = &http.Client{Timeout: DefaultTimeout}
)

// RequestOption customizes a single request.
type RequestOption func(*requestConfig)

type requestConfig struct {
	httpMethod string
	headers    map[string]string
}

// WithHTTPMethod selects the HTTP method. Only GET (the default) and POST
// are meaningful; POST sends the parameters as a form body.
func WithHTTPMethod(method string) RequestOption {
	return func(c *requestConfig) {
		c.httpMethod = strings.ToUpper(method)
	}
}

// WithHeader adds an HTTP header to the request.
func WithHeader(key, value string) RequestOption {
	return func(c *requestConfig) {
		c.headers[key] = value
	}
}

// SetAPIKey replaces the API key used for subsequent requests.
func (t *Transport) SetAPIKey(key string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.apiKey = key
}

// ClearAPIKey removes the API key. Requests fail with ErrAPIKeyRequired
// until a new key is set.
func (t *Transport) ClearAPIKey() {
	t.SetAPIKey("")
}

// APIKey returns the current API key.
func (t *Transport) APIKey() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.apiKey
}

// Request calls a Last.fm API method and returns the raw JSON response.
//
// It handles:
//   - Failing with ErrAPIKeyRequired before any network access
//   - Injecting method, api_key and format=json over caller values
//   - Detecting API errors inside HTTP 200 bodies
//   - Normalizing HTTP failures into *Error
//   - One retry for HTTP 408, 429, 500, 502, 503 and 504
func (t *Transport) Request(ctx context.Context, method string, params Params, opts ...RequestOption) (json.RawMessage, error) {
	apiKey := t.APIKey()
	if apiKey == "" {
		return nil, ErrAPIKeyRequired
	}

	cfg := requestConfig{
		httpMethod: http.MethodGet,
		headers:    make(map[string]string),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	reqParams := make(Params, len(params)+3)
	for k, v := range Sanitize(params) {
		if IsReservedParam(k) {
			t.logDebugf("lastfm: dropping reserved parameter %q from %s", k, method)
			continue
		}
		reqParams[k] = v
	}
	reqParams[paramMethod] = method
	reqParams[paramAPIKey] = apiKey
	reqParams[paramFormat] = "json"

	values, err := encodeParams(reqParams)
	if err != nil {
		return nil, err
	}

	const maxAttempts = 2
	for attempt := 1; ; attempt++ {
		t.logDebugf("lastfm: calling %s (attempt %d/%d)", method, attempt, maxAttempts)

		body, err := t.do(ctx, cfg, values)
		if err == nil {
			t.logDebugf("lastfm: %s succeeded", method)
			return body, nil
		}

		var lastfmErr *Error
		if attempt < maxAttempts && errors.As(err, &lastfmErr) && lastfmErr.Retryable() {
			var delay time.Duration
			if lastfmErr.StatusCode == http.StatusTooManyRequests {
				delay = rateLimitBackoff
			}
			t.logDebugf("lastfm: %s failed with http %d, retrying in %v", method, lastfmErr.StatusCode, delay)
			if !sleep(ctx, delay) {
				return nil, ctx.Err()
			}
			continue
		}

		return nil, err
	}
}

// do performs a single HTTP attempt.
func (t *Transport) do(ctx context.Context, cfg requestConfig, values url.Values) (json.RawMessage, error) {
	req, err := t.newRequest(ctx, cfg, values)
	if err != nil {
		return nil, err
	}

	httpClient := t.httpClient
	if httpClient == nil {
		httpClient = defaultHTTPClient
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, &Error{Message: err.Error(), err: err}
	}

	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return nil, &Error{
			Message:    fmt.Sprintf("failed to read response: %v", err),
			StatusCode: resp.StatusCode,
			err:        err,
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, httpError(resp.StatusCode, body)
	}

	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("lastfm: failed to parse response: %w", err)
	}
	if envelope.Error != 0 {
		msg := envelope.Message
		if msg == "" {
			msg = "Last.fm API error"
		}
		return nil, &Error{
			Code:       envelope.Error,
			Message:    msg,
			StatusCode: resp.StatusCode,
		}
	}

	return body, nil
}

func (t *Transport) newRequest(ctx context.Context, cfg requestConfig, values url.Values) (*http.Request, error) {
	endpoint := t.baseURL
	if endpoint == nil {
		endpoint = defaultEndpoint
	}
	u := *endpoint

	var (
		req *http.Request
		err error
	)
	switch cfg.httpMethod {
	case http.MethodPost:
		req, err = http.NewRequestWithContext(ctx, http.MethodPost, u.String(), strings.NewReader(values.Encode()))
		if err == nil {
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
	default:
		u.RawQuery = values.Encode()
		req, err = http.NewRequestWithContext(ctx, cfg.httpMethod, u.String(), nil)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	userAgent := t.userAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	for k, v := range cfg.headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

// errorEnvelope is the error object Last.fm embeds in JSON responses.
type errorEnvelope struct {
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// UnmarshalJSON tolerates bodies whose top-level value is not an object
// and error codes sent as strings.
func (e *errorEnvelope) UnmarshalJSON(data []byte) error {
	if !isJSONObject(data) {
		return nil
	}
	var raw struct {
		Error   FlexInt `json:"error"`
		Message string  `json:"message"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	e.Error = int(raw.Error)
	e.Message = raw.Message
	return nil
}

// httpError builds an *Error for a non-2xx response, extracting the
// Last.fm message from the body when there is one.
func httpError(status int, body []byte) *Error {
	e := &Error{
		StatusCode: status,
		Message:    http.StatusText(status),
		Body:       body,
	}

	var envelope errorEnvelope
	if json.Unmarshal(body, &envelope) == nil {
		e.Code = envelope.Error
		if envelope.Message != "" {
			e.Message = envelope.Message
		}
	}
	if e.Message == "" {
		e.Message = "request failed"
	}

	return e
}

func (t *Transport) logDebugf(format string, args ...interface{}) {
	if t.logger != nil {
		t.logger.Debugf(format, args...)
	}
}

// sleep waits for the specified duration or until context is cancelled.
// Returns true if sleep completed, false if context was cancelled.
func sleep(ctx context.Context, duration time.Duration) bool {
	if duration <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(duration)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
