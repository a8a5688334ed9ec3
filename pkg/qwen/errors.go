package qwen

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrRateLimited is returned when DashScope throttles the caller.
var ErrRateLimited = errors.New("qwen: rate limited")

// APIError is a non-200 answer from the API.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("qwen: API error %d: %s", e.StatusCode, e.Message)
}

// Is matches ErrRateLimited for HTTP 429 answers.
func (e *APIError) Is(target error) bool {
	return target == ErrRateLimited && e.StatusCode == http.StatusTooManyRequests
}
