package extractor

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyInput    = errors.New("input is empty")
	ErrInputTooShort = fmt.Errorf("input must be at least %d characters", MinInputLength)

	// ErrQuotaExceeded means the generative service refused the call for quota reasons.
	ErrQuotaExceeded = errors.New("generative service quota exceeded")
	// ErrNotConfigured means no generative service credential is available.
	ErrNotConfigured = errors.New("generative service is not configured")
	// ErrExtractionFailed covers every other interpreter failure.
	ErrExtractionFailed = errors.New("task extraction failed")
)

// InputTooLongError reports the character count of an over-long input.
type InputTooLongError struct {
	Count int
}

func (e *InputTooLongError) Error() string {
	return fmt.Sprintf("input must be at most %d characters, got %d", MaxInputLength, e.Count)
}
