package llmprovider

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"time"

	"smart-todo/config"
	"smart-todo/pkg/deepseek"
	"smart-todo/pkg/gemini"
	"smart-todo/pkg/log"
	"smart-todo/pkg/qwen"
)

// InitializeProviders creates Provider instances from config.LLMConfig.
// Providers are sorted by priority (ascending) and disabled ones are skipped.
// A provider that fails to initialize is logged and skipped.
func InitializeProviders(ctx context.Context, cfg *config.LLMConfig, l log.Logger) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var enabled []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	if len(enabled) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Priority < enabled[j].Priority
	})

	var providers []Provider
	for _, p := range enabled {
		provider, err := createProvider(p)
		if err != nil {
			l.Warnf(ctx, "llmprovider.InitializeProviders: skip provider %s (priority %d): %v", p.Name, p.Priority, err)
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}
	return providers, nil
}

// NewManagerFromConfig builds a Manager from config. A Manager without
// providers is returned when none could be initialized; its calls fail with
// ErrNoProvidersConfigured.
func NewManagerFromConfig(ctx context.Context, cfg *config.LLMConfig, l log.Logger) *Manager {
	providers, err := InitializeProviders(ctx, cfg, l)
	if err != nil {
		l.Warnf(ctx, "llmprovider.NewManagerFromConfig: %v", err)
	}

	mc := &Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      parseDuration(cfg.RetryDelay, time.Second),
		MaxTotalTimeout: parseDuration(cfg.MaxTotalTimeout, 0),
	}
	return NewManager(providers, mc, l)
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
	}

	var httpClient *http.Client
	if d := parseDuration(cfg.Timeout, 0); d > 0 {
		httpClient = &http.Client{Timeout: d}
	}

	switch cfg.Name {
	case "deepseek":
		client, err := deepseek.New(deepseek.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			BaseURL:    cfg.BaseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create deepseek client: %w", err)
		}
		return NewDeepSeekAdapter(client), nil

	case "qwen", "alibaba":
		client, err := qwen.New(qwen.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			BaseURL:    cfg.BaseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create qwen client: %w", err)
		}
		return NewQwenAdapter(client), nil

	case "gemini":
		client, err := gemini.New(gemini.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			APIURL:     cfg.BaseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}

func parseDuration(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return d
}
