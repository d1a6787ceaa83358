package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrUnavailable marks transport-level failures: the request never produced
// an HTTP response. Match with errors.Is.
var ErrUnavailable = errors.New("server unavailable")

// Error is a backend error response decoded once at the gateway boundary.
// Exactly one of Message or Fields is populated when the backend used its
// `detail` shape; both stay empty for unrecognized bodies.
type Error struct {
	Status  int
	Message string            // detail was a plain string
	Fields  map[string]string // detail was a list of field-scoped errors
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
	}
	if len(e.Fields) > 0 {
		return fmt.Sprintf("server returned %d with %d field errors", e.Status, len(e.Fields))
	}
	return fmt.Sprintf("server returned %d", e.Status)
}

// IsStatus reports whether err is a backend *Error with the given status.
func IsStatus(err error, status int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// IsUnauthorized reports whether err is a backend 401.
func IsUnauthorized(err error) bool {
	return IsStatus(err, http.StatusUnauthorized)
}

// fieldErrorItem mirrors one element of a list-shaped `detail`:
// {"loc": [_, "field"], "msg": "..."}.
type fieldErrorItem struct {
	Loc []json.RawMessage `json:"loc"`
	Msg string            `json:"msg"`
}

// decodeError classifies a non-2xx body. The `detail` key may hold a plain
// string or a list of field-scoped errors; anything else yields a bare
// status-only Error.
func decodeError(status int, body []byte) *Error {
	e := &Error{Status: status}

	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return e
	}

	var msg string
	if err := json.Unmarshal(envelope.Detail, &msg); err == nil {
		e.Message = msg
		return e
	}

	var items []fieldErrorItem
	if err := json.Unmarshal(envelope.Detail, &items); err == nil {
		fields := make(map[string]string, len(items))
		for _, item := range items {
			if len(item.Loc) < 2 {
				continue
			}
			var field string
			if err := json.Unmarshal(item.Loc[1], &field); err != nil {
				continue
			}
			fields[field] = item.Msg
		}
		if len(fields) > 0 {
			e.Fields = fields
		}
		return e
	}

	return e
}
