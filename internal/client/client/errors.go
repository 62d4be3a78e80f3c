package client

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrNetwork         = errors.New("network error")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrDecode          = errors.New("malformed response body")
)

// ServerError is a response with an error status other than the handled 401.
type ServerError struct {
	StatusCode int
	Body       []byte
}

func (e *ServerError) Error() string {
	if d := e.Detail(); d != "" {
		return fmt.Sprintf("server error: status %d: %s", e.StatusCode, d)
	}
	return fmt.Sprintf("server error: status %d", e.StatusCode)
}

// Detail extracts a human-readable message from common backend error bodies
// ({"detail": ...}, {"message": ...}, {"error": ...}). Field errors such as
// {"title": ["This field is required."]} are rendered as "title: ...".
func (e *ServerError) Detail() string {
	var body map[string]any
	if err := json.Unmarshal(e.Body, &body); err != nil {
		return ""
	}

	for _, k := range []string{"detail", "message", "error"} {
		if s, ok := body[k].(string); ok && s != "" {
			return s
		}
	}

	for k, v := range body {
		if list, ok := v.([]any); ok && len(list) > 0 {
			if s, ok := list[0].(string); ok {
				return k + ": " + s
			}
		}
	}
	return ""
}
