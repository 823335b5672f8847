package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
)

var ErrUnauthorized = errors.New("unauthorized")

// Error carries the server-provided message for a failed call. Status is zero
// when the request reached the server but the mutation envelope said no.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("api: %d %s", e.Status, e.Message)
	}
	return "api: " + e.Message
}

func parseError(status int, body []byte) error {
	var raw struct {
		Message string `json:"message"`
		Err     string `json:"error"`
	}
	msg := ""
	if json.Unmarshal(body, &raw) == nil {
		msg = raw.Message
		if msg == "" {
			msg = raw.Err
		}
	}
	if msg == "" || status >= 500 {
		msg = http.StatusText(status)
	}
	return &Error{Status: status, Message: msg}
}

// ServerMessage returns the operator-facing message of a validation error
// (4xx with a message) and false for everything else.
func ServerMessage(err error) (string, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Status < 500 && apiErr.Message != "" {
		return apiErr.Message, true
	}
	return "", false
}

func IsTimeout(err error) bool {
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

func shouldRetry(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrUnauthorized) {
		return false
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status >= 500
	}
	return true
}
