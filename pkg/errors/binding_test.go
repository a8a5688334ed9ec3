package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
)

type bindTarget struct {
	Title    string `json:"title" validate:"required,max=5"`
	Priority string `json:"priority" validate:"omitempty,oneof=high medium low"`
}

func TestNewBindingError_Validation(t *testing.T) {
	v := validator.New()
	err := v.Struct(bindTarget{Title: "", Priority: "urgent"})

	httpErr := NewBindingError(err)
	if httpErr.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d", httpErr.StatusCode)
	}
	if !strings.Contains(httpErr.Message, "Title is required") {
		t.Errorf("message = %q", httpErr.Message)
	}
	if !strings.Contains(httpErr.Message, "Priority must be one of high|medium|low") {
		t.Errorf("message = %q", httpErr.Message)
	}
}

func TestNewBindingError_Type(t *testing.T) {
	var target struct {
		Input string `json:"input"`
	}
	err := json.Unmarshal([]byte(`{"input": 42}`), &target)

	httpErr := NewBindingError(err)
	if httpErr.Message != "input must be a string" {
		t.Errorf("message = %q", httpErr.Message)
	}
}

func TestNewInternalError(t *testing.T) {
	cause := errors.New("boom")

	if got := NewInternalError(cause, true).Message; strings.Contains(got, "boom") {
		t.Errorf("production message leaks cause: %q", got)
	}
	if got := NewInternalError(cause, false).Message; !strings.Contains(got, "boom") {
		t.Errorf("development message should carry cause: %q", got)
	}
}
