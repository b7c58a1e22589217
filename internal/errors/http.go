package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// backendError is the error envelope the CollabHub API returns on non-2xx
// responses. The backend is inconsistent between {"detail": ...},
// {"error": ...}, and per-field maps, so all shapes are tolerated.
type backendError struct {
	Detail string `json:"detail"`
	Error  string `json:"error"`
}

// MapHTTPError maps a non-2xx API response to an AppError.
// The body may be nil or partially read; it is only used for the message.
func MapHTTPError(status int, body []byte) error {
	message := extractMessage(body)
	if message == "" {
		message = fmt.Sprintf("request failed with status %d", status)
	}

	switch {
	case status == http.StatusUnauthorized:
		return &AppError{Code: ErrCodeUnauthorized, Message: message}
	case status == http.StatusForbidden:
		return &AppError{Code: ErrCodeUnauthorized, Message: message}
	case status == http.StatusNotFound:
		return &AppError{Code: ErrCodeNotFound, Message: message}
	case status == http.StatusConflict:
		return &AppError{Code: ErrCodeConflict, Message: message}
	case status == http.StatusBadRequest:
		return &AppError{Code: ErrCodeValidation, Message: message}
	case status >= 500:
		return &AppError{Code: ErrCodeInternal, Message: message}
	default:
		return &AppError{Code: ErrCodeInternal, Message: message}
	}
}

// extractMessage pulls the most useful human-readable string out of an
// error response body. Returns "" when nothing usable is present.
func extractMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	var envelope backendError
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Detail != "" {
			return envelope.Detail
		}
		if envelope.Error != "" {
			return envelope.Error
		}
	}

	// Per-field validation maps: {"email": ["This field is required."]}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err == nil && len(fields) > 0 {
		parts := make([]string, 0, len(fields))
		for field, raw := range fields {
			var messages []string
			if err := json.Unmarshal(raw, &messages); err == nil && len(messages) > 0 {
				parts = append(parts, field+": "+messages[0])
			}
		}
		if len(parts) > 0 {
			return strings.Join(parts, "; ")
		}
	}

	return ""
}
