package llmprovider

import (
	"errors"
	"fmt"

	"smart-todo/pkg/deepseek"
	"smart-todo/pkg/gemini"
	"smart-todo/pkg/qwen"
)

var (
	// ErrAllProvidersFailed indicates all providers failed to generate content
	ErrAllProvidersFailed = errors.New("all providers failed")

	// ErrNoProvidersConfigured indicates no providers are enabled
	ErrNoProvidersConfigured = errors.New("no providers configured")

	// ErrProviderRateLimited indicates the provider reported a quota or rate limit
	ErrProviderRateLimited = errors.New("provider rate limited")
)

// ProviderError wraps provider-specific errors
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// wrapError tags err with the provider name and marks quota answers with
// ErrProviderRateLimited.
func wrapError(provider string, err error) error {
	if errors.Is(err, gemini.ErrRateLimited) || errors.Is(err, qwen.ErrRateLimited) || errors.Is(err, deepseek.ErrRateLimited) {
		err = fmt.Errorf("%w: %w", ErrProviderRateLimited, err)
	}
	return &ProviderError{Provider: provider, Err: err}
}
