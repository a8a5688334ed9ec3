package usecase

import (
	"context"
	"time"

	"smart-todo/internal/extractor"
	"smart-todo/pkg/gemini"
	"smart-todo/pkg/llmprovider"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// createManagerFromGeminiClient creates a Provider Manager with a Gemini provider for testing
func createManagerFromGeminiClient(client gemini.IGemini) *llmprovider.Manager {
	provider := llmprovider.NewGeminiAdapter(client)
	config := &llmprovider.Config{
		FallbackEnabled: false,
		RetryAttempts:   1,
	}
	return llmprovider.NewManager([]llmprovider.Provider{provider}, config, &mockLogger{})
}

// Mock Gemini client for testing
type mockGeminiClient struct {
	response *gemini.Response
	err      error
	lastReq  *gemini.Request
}

func (m *mockGeminiClient) GenerateContent(ctx context.Context, req *gemini.Request) (*gemini.Response, error) {
	m.lastReq = req
	return m.response, m.err
}

func (m *mockGeminiClient) Model() string {
	return "gemini-test"
}

// fakeInterpreter returns a fixed candidate and records what it was asked.
type fakeInterpreter struct {
	candidate extractor.Candidate
	err       error
	calls     int
	gotText   string
	gotNow    time.Time
}

func (f *fakeInterpreter) Interpret(ctx context.Context, text string, now time.Time) (extractor.Candidate, error) {
	f.calls++
	f.gotText = text
	f.gotNow = now
	return f.candidate, f.err
}
