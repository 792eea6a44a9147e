package gateway

import (
	"encoding/json"
	"fmt"
)

// APIError is a non-2xx response from the remote API. Message carries the
// server's own wording when the body was decodable, so it can be surfaced
// to the user verbatim.
type APIError struct {
	Status  int
	Message string
}

// Error returns the server-supplied message.
func (e *APIError) Error() string {
	return e.Message
}

// apiErrorBody matches the remote error envelope:
// {"errors":[{"message":"..."}], ...}
type apiErrorBody struct {
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// classify turns a non-2xx response into an APIError. The body is probed
// for errors[0].message; anything undecodable falls back to a generic
// status message.
func classify(status int, body []byte) *APIError {
	if len(body) > 0 {
		var parsed apiErrorBody
		if err := json.Unmarshal(body, &parsed); err == nil &&
			len(parsed.Errors) > 0 && parsed.Errors[0].Message != "" {
			return &APIError{Status: status, Message: parsed.Errors[0].Message}
		}
	}
	return &APIError{Status: status, Message: fmt.Sprintf("API error %d", status)}
}
