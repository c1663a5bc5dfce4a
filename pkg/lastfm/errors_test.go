package lastfm

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		err  *Error
		want string
	}{
		{&Error{Code: 6, Message: "Artist not found", StatusCode: 200}, "lastfm: error 6: Artist not found"},
		{&Error{StatusCode: 503, Message: "Service Unavailable"}, "lastfm: http 503: Service Unavailable"},
		{&Error{Message: "dial tcp: connection refused"}, "lastfm: dial tcp: connection refused"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}

func TestError_Is(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &Error{Code: ErrCodeInvalidAPIKey, Message: "Invalid API key"})

	if !errors.Is(err, &Error{Code: ErrCodeInvalidAPIKey}) {
		t.Error("expected errors.Is to match on code")
	}
	if errors.Is(err, &Error{Code: ErrCodeInvalidParameters}) {
		t.Error("expected errors.Is not to match a different code")
	}

	var lastfmErr *Error
	if !errors.As(err, &lastfmErr) || lastfmErr.Message != "Invalid API key" {
		t.Errorf("expected errors.As to find the error, got %v", lastfmErr)
	}
}

func TestError_IsWithoutCode(t *testing.T) {
	tests := []struct {
		name   string
		err    *Error
		target *Error
		want   bool
	}{
		{"same status", &Error{StatusCode: 503}, &Error{StatusCode: 503}, true},
		{"different status", &Error{StatusCode: 404}, &Error{StatusCode: 500}, false},
		{"status against empty", &Error{StatusCode: 404}, &Error{}, false},
		{"network errors", &Error{Message: "connection refused"}, &Error{Message: "timeout"}, false},
		{"code against status", &Error{Code: ErrCodeInvalidParameters, StatusCode: 200}, &Error{StatusCode: 200}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.target); got != tt.want {
				t.Errorf("expected errors.Is to be %v, got %v", tt.want, got)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := &Error{Message: cause.Error(), err: cause}

	if !errors.Is(err, cause) {
		t.Error("expected the transport cause to be reachable")
	}
}

func TestError_Temporary(t *testing.T) {
	for _, code := range []int{ErrCodeServiceOffline, ErrCodeTempUnavailable, ErrCodeRateLimitExceeded} {
		if !(&Error{Code: code}).Temporary() {
			t.Errorf("expected code %d to be temporary", code)
		}
	}
	for _, code := range []int{ErrCodeInvalidParameters, ErrCodeInvalidAPIKey, ErrCodeSuspendedAPIKey} {
		if (&Error{Code: code}).Temporary() {
			t.Errorf("expected code %d not to be temporary", code)
		}
	}
}

func TestError_Retryable(t *testing.T) {
	retryable := map[int]bool{
		http.StatusRequestTimeout:      true,
		http.StatusTooManyRequests:     true,
		http.StatusInternalServerError: true,
		http.StatusBadGateway:          true,
		http.StatusServiceUnavailable:  true,
		http.StatusGatewayTimeout:      true,
		http.StatusOK:                  false,
		http.StatusBadRequest:          false,
		http.StatusForbidden:           false,
		http.StatusNotFound:            false,
		http.StatusNotImplemented:      false,
		0:                              false,
	}

	for status, want := range retryable {
		if got := (&Error{StatusCode: status}).Retryable(); got != want {
			t.Errorf("status %d: expected retryable=%v, got %v", status, want, got)
		}
	}
}
