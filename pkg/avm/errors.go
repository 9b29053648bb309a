package avm

import (
	"fmt"
)

// HTTPError is returned when a provider answers with a non-2xx status. Body is
// best-effort and may be empty if the response body was unreadable.
type HTTPError struct {
	Provider   Descriptor
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s API error (HTTP %d): %s", e.Provider.DisplayName, e.StatusCode, e.Body)
}

// NetworkError is returned on transport failures: DNS, connection, timeout.
type NetworkError struct {
	Provider Descriptor
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s network error: %v", e.Provider.DisplayName, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when a provider body is not valid JSON.
type DecodeError struct {
	Provider Descriptor
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s invalid JSON response: %v", e.Provider.DisplayName, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// UnknownError wraps any other unexpected failure.
type UnknownError struct {
	Provider Descriptor
	Err      error
}

func (e *UnknownError) Error() string {
	return fmt.Sprintf("%s unexpected error: %v", e.Provider.DisplayName, e.Err)
}

func (e *UnknownError) Unwrap() error {
	return e.Err
}
