package gemini

import (
	"errors"
	"fmt"
)

// ErrRateLimited is returned when the API rejects a call for quota reasons.
var ErrRateLimited = errors.New("gemini: rate limited")

// APIError is a non-200 answer from the API.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("gemini: API error %d %s: %s", e.StatusCode, e.Status, e.Message)
	}
	return fmt.Sprintf("gemini: API error %d: %s", e.StatusCode, e.Message)
}

// Is matches ErrRateLimited for HTTP 429 and RESOURCE_EXHAUSTED answers.
func (e *APIError) Is(target error) bool {
	return target == ErrRateLimited && (e.StatusCode == 429 || e.Status == statusResourceExhausted)
}
