package invidious

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors matched with errors.Is.
var (
	ErrNotFound    = errors.New("invidious: not found")
	ErrRateLimited = errors.New("invidious: rate limited")
)

// APIError is a non-2xx response from the instance.
type APIError struct {
	Status   int
	Endpoint string
	Message  string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("invidious %s: %d %s", e.Endpoint, e.Status, e.Message)
	}
	return fmt.Sprintf("invidious %s: %d %s", e.Endpoint, e.Status, http.StatusText(e.Status))
}

// Is maps status codes onto the sentinel errors.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case ErrRateLimited:
		return e.Status == http.StatusTooManyRequests
	default:
		return false
	}
}

// Temporary reports whether retrying the request may succeed.
func (e *APIError) Temporary() bool {
	return e.Status == http.StatusTooManyRequests || e.Status >= http.StatusInternalServerError
}
