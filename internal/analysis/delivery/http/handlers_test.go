package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"smart-todo/internal/analysis"
	"smart-todo/internal/analysis/stats"
	"smart-todo/internal/analysis/usecase"
	"smart-todo/internal/model"
	"smart-todo/pkg/datemath"
	"smart-todo/pkg/response"
)

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

type countingNarrator struct {
	calls int
	err   error
}

func (n *countingNarrator) Narrate(ctx context.Context, period datemath.Period, snap stats.Snapshot) (analysis.Narrative, error) {
	n.calls++
	return analysis.Narrative{Summary: "generated"}, n.err
}

type emptyLister struct{}

func (emptyLister) ListTasks(ctx context.Context, ownerID string) ([]model.Task, error) {
	return nil, nil
}

func newRouter(n analysis.Narrator, production bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	parser, _ := datemath.NewParser("Asia/Seoul")
	uc := usecase.New(&mockLogger{}, n, emptyLister{}, parser)
	h := New(&mockLogger{}, uc, parser, production)

	r := gin.New()
	r.POST("/analysis", h.Analyze)
	r.GET("/analysis", h.AnalyzeStored)
	r.GET("/analysis/stats", h.Stats)
	return r
}

func do(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestAnalyze_EmptyTodayIsCanned(t *testing.T) {
	n := &countingNarrator{}
	w := do(newRouter(n, false), http.MethodPost, "/analysis", `{"todos":[],"period":"today"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if n.calls != 0 {
		t.Errorf("narrator called %d times", n.calls)
	}

	var resp struct {
		Data analyzeResp `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)

	canned := usecase.EmptyNarrative(datemath.PeriodToday)
	want := analyzeResp{
		Summary:         canned.Summary,
		UrgentTasks:     []string{},
		Insights:        canned.Insights,
		Recommendations: []string{},
	}
	if !reflect.DeepEqual(resp.Data, want) {
		t.Errorf("response = %+v, want %+v", resp.Data, want)
	}
	if !strings.Contains(w.Body.String(), `"urgentTasks":[]`) {
		t.Errorf("urgentTasks should serialize as an empty array: %s", w.Body.String())
	}
}

func TestAnalyze_OutsideWindowSkipsNarrator(t *testing.T) {
	n := &countingNarrator{}
	body := `{"period":"week","todos":[{"id":"1","title":"보고서","created_date":"` +
		"2999-01-01T09:00:00+09:00" + `","due_date":null,"priority":"high","category":["업무"],"completed":false}]}`

	// A task far in the future falls outside every window.
	w := do(newRouter(n, false), http.MethodPost, "/analysis", body)
	if w.Code != http.StatusOK || n.calls != 0 {
		t.Fatalf("code=%d calls=%d", w.Code, n.calls)
	}
}

func TestAnalyze_BadRequest(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"missing todos", `{"period":"today"}`, "todos must be an array"},
		{"todos not array", `{"todos":{},"period":"today"}`, "todos must be a"},
		{"invalid period", `{"todos":[],"period":"month"}`, "period must be one of today|week"},
		{"missing period", `{"todos":[]}`, "period must be one of today|week"},
		{"bad created_date", `{"todos":[{"title":"a","created_date":"yesterday"}],"period":"today"}`, "todos[0].created_date"},
		{"bad due_date", `{"todos":[{"title":"a","created_date":"2024-05-01","due_date":"soon"}],"period":"today"}`, "todos[0].due_date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(newRouter(&countingNarrator{}, false), http.MethodPost, "/analysis", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
			var resp response.Resp
			json.Unmarshal(w.Body.Bytes(), &resp)
			if !strings.Contains(resp.Message, tt.wantMsg) {
				t.Errorf("message %q does not contain %q", resp.Message, tt.wantMsg)
			}
		})
	}
}

func TestAnalyzeStored_Errors(t *testing.T) {
	if w := do(newRouter(&countingNarrator{}, false), http.MethodGet, "/analysis?period=year", ""); w.Code != http.StatusBadRequest {
		t.Errorf("invalid period: expected 400, got %d", w.Code)
	}
	if w := do(newRouter(&countingNarrator{}, false), http.MethodGet, "/analysis?period=week", ""); w.Code != http.StatusOK {
		t.Errorf("empty store: expected 200, got %d", w.Code)
	}
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		production bool
		wantCode   int
		wantMsg    string
	}{
		{"quota", analysis.ErrQuotaExceeded, false, http.StatusTooManyRequests, "retry"},
		{"not configured dev", analysis.ErrNotConfigured, false, http.StatusInternalServerError, "not configured"},
		{"not configured prod", analysis.ErrNotConfigured, true, http.StatusInternalServerError, "Internal server error"},
		{"invalid period", analysis.ErrInvalidPeriod, true, http.StatusBadRequest, "today|week"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New(&mockLogger{}, nil, nil, tt.production)
			gin.SetMode(gin.TestMode)
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			response.Error(c, h.mapError(tt.err), nil)

			if w.Code != tt.wantCode {
				t.Errorf("expected %d, got %d", tt.wantCode, w.Code)
			}
			if !strings.Contains(w.Body.String(), tt.wantMsg) {
				t.Errorf("body %s does not contain %q", w.Body.String(), tt.wantMsg)
			}
			if tt.production && strings.Contains(w.Body.String(), "not configured") {
				t.Errorf("production body leaks detail: %s", w.Body.String())
			}
		})
	}
}

func TestStats(t *testing.T) {
	w := do(newRouter(&countingNarrator{}, false), http.MethodGet, "/analysis/stats?period=today", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Data statsResp `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Data.Period != "today" || resp.Data.Stats.Total != 0 {
		t.Errorf("unexpected stats: %+v", resp.Data)
	}
}
