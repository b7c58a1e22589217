package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapHTTPError_Statuses(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		predicate func(error) bool
	}{
		{name: "401 unauthorized", status: http.StatusUnauthorized, predicate: IsUnauthorized},
		{name: "403 treated as unauthorized", status: http.StatusForbidden, predicate: IsUnauthorized},
		{name: "404 not found", status: http.StatusNotFound, predicate: IsNotFound},
		{name: "409 conflict", status: http.StatusConflict, predicate: IsConflict},
		{name: "400 validation", status: http.StatusBadRequest, predicate: IsValidation},
		{name: "500 internal", status: http.StatusInternalServerError, predicate: IsInternal},
		{name: "503 internal", status: http.StatusServiceUnavailable, predicate: IsInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := MapHTTPError(tt.status, nil)
			assert.True(t, tt.predicate(err))
		})
	}
}

func TestMapHTTPError_DetailMessage(t *testing.T) {
	err := MapHTTPError(http.StatusUnauthorized, []byte(`{"detail":"Invalid email or password."}`))
	assert.EqualError(t, err, "Invalid email or password.")
}

func TestMapHTTPError_ErrorMessage(t *testing.T) {
	err := MapHTTPError(http.StatusNotFound, []byte(`{"error":"Skill not found"}`))
	assert.EqualError(t, err, "Skill not found")
}

func TestMapHTTPError_FieldMap(t *testing.T) {
	err := MapHTTPError(http.StatusBadRequest, []byte(`{"email":["This field is required."]}`))
	assert.Contains(t, err.Error(), "email: This field is required.")
}

func TestMapHTTPError_GarbageBody(t *testing.T) {
	err := MapHTTPError(http.StatusBadGateway, []byte("<html>bad gateway</html>"))
	assert.EqualError(t, err, "request failed with status 502")
}
