package checkapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/numvalid/pkg/validator"
)

// Response is the envelope of every JSON answer.
type Response struct {
	Code  string       `json:"code,omitempty"`
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a failed request.
type ErrorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Details map[string][]string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body Response) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

// statusFor maps an error to status code and error code.
func statusFor(err error) (int, string) {
	switch {
	case validator.IsValidationError(err):
		return http.StatusUnprocessableEntity, "validation_error"
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType, "unsupported_media_type"
	case errors.Is(err, ErrInvalidJSON):
		return http.StatusBadRequest, "invalid_json"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

func errorResponse(err error) (int, Response) {
	status, code := statusFor(err)
	detail := &ErrorDetail{Code: code, Message: err.Error()}
	if status == http.StatusInternalServerError {
		detail.Message = http.StatusText(status)
	}
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		detail.Message = "request validation failed"
		detail.Details = verrs.Map()
	}
	return status, Response{Error: detail}
}
