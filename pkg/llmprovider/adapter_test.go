package llmprovider_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"smart-todo/config"
	"smart-todo/pkg/llmprovider"
	"smart-todo/pkg/log"
)

func TestInitializeProviders_OrderAndSkip(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "gemini", Enabled: true, Priority: 2, APIKey: "g", Model: "gemini-2.5-flash"},
			{Name: "qwen", Enabled: true, Priority: 1, APIKey: "q", Model: "qwen-plus", Timeout: "5s"},
			{Name: "deepseek", Enabled: false, Priority: 3, APIKey: "d"},
			{Name: "unknown", Enabled: true, Priority: 4, APIKey: "x"},
			{Name: "gemini", Enabled: true, Priority: 5},
		},
	}

	providers, err := llmprovider.InitializeProviders(context.Background(), cfg, log.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(providers) != 2 {
		t.Fatalf("expected 2 providers, got %d", len(providers))
	}
	if providers[0].Name() != "qwen" || providers[1].Name() != "gemini" {
		t.Errorf("unexpected order: %s, %s", providers[0].Name(), providers[1].Name())
	}
}

func TestInitializeProviders_NoneEnabled(t *testing.T) {
	_, err := llmprovider.InitializeProviders(context.Background(), &config.LLMConfig{}, log.NewNop())
	if !errors.Is(err, llmprovider.ErrNoProvidersConfigured) {
		t.Errorf("expected ErrNoProvidersConfigured, got %v", err)
	}
}

func TestManagerFromConfig_QuotaFromGemini(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"code":429,"message":"Resource has been exhausted","status":"RESOURCE_EXHAUSTED"}}`))
	}))
	defer ts.Close()

	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "gemini", Enabled: true, Priority: 1, APIKey: "k", Model: "m", BaseURL: ts.URL},
		},
		RetryAttempts: 1,
	}

	manager := llmprovider.NewManagerFromConfig(context.Background(), cfg, log.NewNop())
	_, err := manager.GenerateContent(context.Background(), llmprovider.UserPrompt("sys", "hi"))
	if !errors.Is(err, llmprovider.ErrProviderRateLimited) {
		t.Fatalf("expected ErrProviderRateLimited, got %v", err)
	}
	if !errors.Is(err, llmprovider.ErrAllProvidersFailed) {
		t.Errorf("expected ErrAllProvidersFailed in chain, got %v", err)
	}
}

func TestManagerFromConfig_DeepSeekText(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"model":"deepseek-chat","choices":[{"message":{"role":"assistant","content":"{}"}}],"usage":{"total_tokens":2}}`))
	}))
	defer ts.Close()

	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "deepseek", Enabled: true, Priority: 1, APIKey: "k", BaseURL: ts.URL},
		},
	}

	manager := llmprovider.NewManagerFromConfig(context.Background(), cfg, log.NewNop())
	req := llmprovider.UserPrompt("sys", "hi")
	req.JSONMode = true

	resp, err := manager.GenerateContent(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "{}" || resp.ProviderName != "deepseek" || resp.Usage.TotalTokens != 2 {
		t.Errorf("unexpected response: %+v", resp)
	}
}
