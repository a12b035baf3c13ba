package backend

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

// ErrNotFound matches (errors.Is) any *APIError with status 404.
var ErrNotFound = errors.New("backend: not found")

// FieldError is one entry of the backend's validation error list.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// APIError is a non-2xx backend response.
type APIError struct {
	StatusCode int
	Message    string
	Fields     []FieldError
	RequestID  string
}

// Error returns the server message verbatim.
func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	return nil
}

// errorBody is the backend's ErrorResponse JSON.
type errorBody struct {
	Status  int          `json:"status"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors"`
}

func decodeError(status int, raw []byte, reqID string) *APIError {
	apiErr := &APIError{StatusCode: status, RequestID: reqID}

	var body errorBody
	if err := json.Unmarshal(raw, &body); err == nil {
		apiErr.Message = body.Message
		apiErr.Fields = body.Errors
	}
	if strings.TrimSpace(apiErr.Message) == "" {
		apiErr.Message = http.StatusText(status)
	}
	if apiErr.Message == "" {
		apiErr.Message = "unexpected backend status"
	}
	return apiErr
}

// Message returns the text to show a user for err: the server's message for
// backend errors, err.Error() otherwise.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
