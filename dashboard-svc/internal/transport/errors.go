package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"
)

const (
	maxErrorBody   = 64 << 10
	maxBodyExcerpt = 200
)

type APIError struct {
	StatusCode int
	Status     string
	Body       string
	// Message is the server supplied "message" field, if the body had one.
	Message string
}

func newAPIError(code int, raw []byte) *APIError {
	body := strings.TrimSpace(string(raw))
	return &APIError{
		StatusCode: code,
		Status:     http.StatusText(code),
		Body:       body,
		Message:    serverMessage(raw),
	}
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("HTTP error! status: %d %s", e.StatusCode, e.Status)
	switch {
	case e.Message != "":
		msg += ": " + e.Message
	case e.Body != "":
		msg += ": " + excerpt(e.Body)
	}
	return msg
}

// AuthError is returned by login and registration. Its message is exactly
// what the server said, falling back to the HTTP status.
type AuthError struct {
	StatusCode int
	Message    string
}

func (e *AuthError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
}

// AsAuthError converts an *APIError into an *AuthError and passes any other
// error through.
func AsAuthError(err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return &AuthError{StatusCode: apiErr.StatusCode, Message: apiErr.Message}
	}
	return err
}

func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr.StatusCode
	}
	return 0
}

func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

func serverMessage(raw []byte) string {
	var payload struct {
		Message json.RawMessage `json:"message"`
		Error   string          `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ""
	}

	var single string
	if err := json.Unmarshal(payload.Message, &single); err == nil && single != "" {
		return single
	}
	// validation failures come back as a list of messages
	var many []string
	if err := json.Unmarshal(payload.Message, &many); err == nil && len(many) > 0 {
		return strings.Join(many, ", ")
	}
	return payload.Error
}

func excerpt(body string) string {
	if len(body) <= maxBodyExcerpt {
		return body
	}
	cut := maxBodyExcerpt
	for cut > 0 && !utf8.RuneStart(body[cut]) {
		cut--
	}
	return body[:cut] + "..."
}
