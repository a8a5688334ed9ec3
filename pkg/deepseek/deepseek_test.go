package deepseek_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"smart-todo/pkg/deepseek"
)

func TestGenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req deepseek.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		switch req.Messages[0].Content {
		case "busy":
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":{"message":"rate limit reached","type":"rate_limit"}}`))
		case "broken":
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte(`upstream`))
		default:
			json.NewEncoder(w).Encode(deepseek.Response{
				Model: req.Model,
				Choices: []deepseek.Choice{
					{Message: deepseek.Message{Role: "assistant", Content: "pong"}},
				},
				Usage: deepseek.Usage{PromptTokens: 3, CompletionTokens: 1, TotalTokens: 4},
			})
		}
	}))
	defer ts.Close()

	client, err := deepseek.New(deepseek.Config{APIKey: "k", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name        string
		content     string
		wantText    string
		wantErr     bool
		rateLimited bool
	}{
		{name: "ok", content: "ping", wantText: "pong"},
		{name: "rate limited", content: "busy", wantErr: true, rateLimited: true},
		{name: "server error", content: "broken", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := client.GenerateContent(context.Background(), &deepseek.Request{
				Messages: []deepseek.Message{{Role: "user", Content: tt.content}},
			})
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if errors.Is(err, deepseek.ErrRateLimited) != tt.rateLimited {
					t.Errorf("rate limited = %v, want %v (%v)", !tt.rateLimited, tt.rateLimited, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if resp.Model != deepseek.DefaultModel {
				t.Errorf("model = %q, want default", resp.Model)
			}
			if resp.Choices[0].Message.Content != tt.wantText {
				t.Errorf("text = %q, want %q", resp.Choices[0].Message.Content, tt.wantText)
			}
		})
	}
}
