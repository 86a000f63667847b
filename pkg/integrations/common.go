package integrations

import (
	"errors"
	"net/http"
)

var (
	// ErrNotFound is returned when a package or resource doesn't exist in the registry.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for transport failures (timeouts, connection errors).
	ErrNetwork = errors.New("network error")

	// ErrStatus is returned when the registry answers with a status other than 200 or 404.
	ErrStatus = errors.New("unexpected status")

	// ErrMalformedResponse is returned when a response body does not have the expected shape.
	ErrMalformedResponse = errors.New("malformed response")
)

// NewHTTPClient creates the HTTP client used for registry requests.
//
// No timeout is set beyond net/http's transport defaults; a stalled lookup
// is ended by cancelling the request context.
func NewHTTPClient() *http.Client {
	return &http.Client{}
}
