package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeError(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantMsg    string
		wantFields map[string]string
	}{
		{
			name:    "string detail",
			status:  400,
			body:    `{"detail": "login already taken"}`,
			wantMsg: "login already taken",
		},
		{
			name:   "field error list",
			status: 422,
			body:   `{"detail": [{"loc": ["body", "login"], "msg": "too short"}, {"loc": ["body", "password"], "msg": "too weak"}]}`,
			wantFields: map[string]string{
				"login":    "too short",
				"password": "too weak",
			},
		},
		{
			name:   "numeric loc element is skipped",
			status: 422,
			body:   `{"detail": [{"loc": ["body", 0], "msg": "x"}]}`,
		},
		{
			name:   "short loc is skipped",
			status: 422,
			body:   `{"detail": [{"loc": ["body"], "msg": "x"}]}`,
		},
		{
			name:   "unrecognized detail shape",
			status: 500,
			body:   `{"detail": {"weird": true}}`,
		},
		{
			name:   "no detail key",
			status: 503,
			body:   `{"error": "nope"}`,
		},
		{
			name:   "not json at all",
			status: 502,
			body:   `<html>bad gateway</html>`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := decodeError(tc.status, []byte(tc.body))
			require.NotNil(t, e)
			assert.Equal(t, tc.status, e.Status)
			assert.Equal(t, tc.wantMsg, e.Message)
			assert.Equal(t, tc.wantFields, e.Fields)
		})
	}
}

func TestError_ErrorString(t *testing.T) {
	assert.Contains(t, (&Error{Status: 400, Message: "bad"}).Error(), "bad")
	assert.Contains(t, (&Error{Status: 422, Fields: map[string]string{"login": "x"}}).Error(), "field errors")
	assert.Contains(t, (&Error{Status: 500}).Error(), "500")
}

func TestIsStatus(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &Error{Status: http.StatusUnauthorized})
	assert.True(t, IsUnauthorized(err))
	assert.True(t, IsStatus(err, http.StatusUnauthorized))
	assert.False(t, IsStatus(err, http.StatusUnprocessableEntity))
	assert.False(t, IsUnauthorized(errors.New("plain")))
}
