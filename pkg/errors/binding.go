package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NewBindingError turns a gin binding failure into a 400 whose message names
// the rule that was violated.
func NewBindingError(err error) *HTTPError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fieldMessage(fe))
		}
		return NewHTTPError(http.StatusBadRequest, strings.Join(msgs, "; "))
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return NewHTTPError(http.StatusBadRequest, fmt.Sprintf("%s must be a %s", typeErr.Field, jsonKind(typeErr.Type.Kind().String())))
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return NewHTTPError(http.StatusBadRequest, "request body is not valid JSON")
	}

	return NewHTTPError(http.StatusBadRequest, err.Error())
}

// NewInternalError reports a 500. Production hides the cause.
func NewInternalError(cause error, production bool) *HTTPError {
	if production || cause == nil {
		return NewHTTPError(http.StatusInternalServerError, ErrInternalServerError.Message)
	}
	return NewHTTPError(http.StatusInternalServerError, ErrInternalServerError.Message+": "+cause.Error())
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", field, strings.ReplaceAll(fe.Param(), " ", "|"))
	case "dive":
		return field + " is invalid"
	}
	return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
}

func jsonKind(kind string) string {
	switch kind {
	case "slice", "array":
		return "array"
	case "struct", "map":
		return "object"
	case "ptr":
		return "value of the expected type"
	}
	return kind
}
