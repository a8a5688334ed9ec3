package gemini_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"smart-todo/pkg/gemini"
)

type wireRequest struct {
	SystemInstruction *struct {
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"system_instruction"`
	Contents []struct {
		Role  string `json:"role"`
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"contents"`
	GenerationConfig *struct {
		ResponseMimeType string `json:"responseMimeType"`
	} `json:"generationConfig"`
}

func TestNew_RequiresAPIKey(t *testing.T) {
	if _, err := gemini.New(gemini.Config{}); err == nil {
		t.Fatal("expected error for missing API key")
	}
}

func TestGenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.URL.Path != "/models/gemini-test:generateContent" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		var req wireRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		switch req.Contents[0].Parts[0].Text {
		case "cause_500":
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":{"code":500,"message":"internal","status":"INTERNAL"}}`))
			return
		case "cause_429":
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":{"code":429,"message":"quota","status":"RESOURCE_EXHAUSTED"}}`))
			return
		}

		if req.SystemInstruction == nil || req.SystemInstruction.Parts[0].Text != "be brief" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if req.GenerationConfig == nil || req.GenerationConfig.ResponseMimeType != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"candidates": [
				{"content": {"role": "model", "parts": [{"text": "{\"ok\":"}, {"text": "true}"}]}}
			],
			"usageMetadata": {"promptTokenCount": 12, "candidatesTokenCount": 3, "totalTokenCount": 15}
		}`))
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{APIKey: "test-api-key", Model: "gemini-test", APIURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.Model() != "gemini-test" {
		t.Errorf("Model() = %q", client.Model())
	}

	t.Run("Success Flow", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), &gemini.Request{
			SystemInstruction: "be brief",
			Messages:          []gemini.Content{{Role: "user", Text: "hello"}},
			JSONMode:          true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text != `{"ok":true}` {
			t.Errorf("unexpected text: %s", resp.Text)
		}
		if resp.Usage.TotalTokens != 15 {
			t.Errorf("unexpected usage: %+v", resp.Usage)
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), &gemini.Request{
			Messages: []gemini.Content{{Role: "user", Text: "cause_500"}},
		})
		if err == nil {
			t.Fatal("expected error from 500 response")
		}
		if errors.Is(err, gemini.ErrRateLimited) {
			t.Errorf("500 should not be classified as rate limited")
		}
	})

	t.Run("Rate Limit Flow", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), &gemini.Request{
			Messages: []gemini.Content{{Role: "user", Text: "cause_429"}},
		})
		if !errors.Is(err, gemini.ErrRateLimited) {
			t.Fatalf("expected ErrRateLimited, got %v", err)
		}
		var apiErr *gemini.APIError
		if !errors.As(err, &apiErr) || apiErr.Status != "RESOURCE_EXHAUSTED" {
			t.Errorf("unexpected api error: %v", err)
		}
	})
}
