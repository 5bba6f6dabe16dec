package api

import (
	"encoding/json"
	"fmt"
)

// Error is a non-2xx response from the backend.
type Error struct {
	StatusCode int
	// Detail is the backend's "detail" message, if it sent one.
	Detail string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
}

// NewError builds an Error from a response status and body.
func NewError(statusCode int, body []byte) *Error {
	return &Error{StatusCode: statusCode, Detail: parseDetail(body)}
}

// parseDetail extracts "detail", which the backend sends either as a string
// or as a list of validation problems.
func parseDetail(body []byte) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return ""
	}

	var text string
	if err := json.Unmarshal(envelope.Detail, &text); err == nil {
		return text
	}

	var problems []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(envelope.Detail, &problems); err == nil && len(problems) > 0 && problems[0].Msg != "" {
		return problems[0].Msg
	}
	if string(envelope.Detail) == "null" {
		return ""
	}
	return string(envelope.Detail)
}
