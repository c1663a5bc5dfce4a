package lastfm

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents a failed Last.fm API call.
//
// It covers both failure shapes the API produces: an error object inside
// an otherwise successful (HTTP 200) JSON body, and an HTTP-level failure
// (non-2xx status or network error). Fields that do not apply to a given
// failure are left at their zero value.
type Error struct {
	Code       int    // Last.fm error code, 0 if the API did not report one
	Message    string // Error message from Last.fm or the transport
	StatusCode int    // HTTP status code, 0 for network errors
	Body       []byte // Raw response body of HTTP-level failures, if any

	err error // underlying transport error, if any
}

// Error returns the error message.
func (e *Error) Error() string {
	switch {
	case e.Code != 0:
		return fmt.Sprintf("lastfm: error %d: %s", e.Code, e.Message)
	case e.StatusCode != 0:
		return fmt.Sprintf("lastfm: http %d: %s", e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("lastfm: %s", e.Message)
	}
}

// Unwrap returns the underlying transport error, if any.
func (e *Error) Unwrap() error {
	return e.err
}

// Is checks if the target error is a Last.fm error with the same code.
// Errors without a Last.fm code match on a non-zero HTTP status instead.
//
// This allows errors.Is() to work with *Error types.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	switch {
	case e.Code != 0 || t.Code != 0:
		return e.Code == t.Code
	case e.StatusCode != 0 || t.StatusCode != 0:
		return e.StatusCode == t.StatusCode
	default:
		return false
	}
}

// Temporary returns true if Last.fm reported a condition that is likely to
// clear up on its own.
//
// The following Last.fm error codes are considered temporary:
//   - 11: Service Offline
//   - 16: Service Temporarily Unavailable
//   - 29: Rate Limit Exceeded
//
// The client never retries these itself; callers decide.
func (e *Error) Temporary() bool {
	switch e.Code {
	case ErrCodeServiceOffline, ErrCodeTempUnavailable, ErrCodeRateLimitExceeded:
		return true
	default:
		return false
	}
}

// Retryable returns true if the HTTP status of the failure is one the
// transport retries once.
func (e *Error) Retryable() bool {
	return retryableStatus(e.StatusCode)
}

// Common Last.fm error codes.
const (
	ErrCodeInvalidService       = 2
	ErrCodeInvalidMethod        = 3
	ErrCodeAuthenticationFailed = 4
	ErrCodeInvalidFormat        = 5
	ErrCodeInvalidParameters    = 6
	ErrCodeInvalidResourceSpec  = 7
	ErrCodeOperationFailed      = 8
	ErrCodeInvalidSessionKey    = 9
	ErrCodeInvalidAPIKey        = 10
	ErrCodeServiceOffline       = 11
	ErrCodeSubscribersOnly      = 12
	ErrCodeInvalidSignature     = 13
	ErrCodeUnauthorizedToken    = 14
	ErrCodeExpiredToken         = 15
	ErrCodeTempUnavailable      = 16
	ErrCodeSuspendedAPIKey      = 26
	ErrCodeRateLimitExceeded    = 29
)

// Predefined errors for common cases.
var (
	// ErrAPIKeyRequired is returned before any network access when a
	// request is attempted without an API key.
	ErrAPIKeyRequired = errors.New("lastfm: API key required")

	// ErrInvalidConfig is returned when client configuration is invalid.
	ErrInvalidConfig = errors.New("lastfm: invalid configuration")
)

// retryableStatus reports whether an HTTP status is transient.
func retryableStatus(status int) bool {
	switch status {
	case http.StatusRequestTimeout,
		http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}
