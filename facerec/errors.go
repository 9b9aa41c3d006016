package facerec

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Kind classifies an APIError into the local error taxonomy
type Kind string

// Error kinds. Validation errors never reach the network; network errors
// carry no status code; HTTP errors carry whatever the backend reported.
const (
	KindValidation Kind = "validation"
	KindNetwork    Kind = "network"
	KindHTTP       Kind = "http"
	KindUnknown    Kind = "unknown"
)

// APIError is the single error shape every client call returns. Errors that
// are already an *APIError pass through the wrapping helpers unchanged.
type APIError struct {
	Kind       Kind   `json:"kind"`
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
	RawBody    string `json:"raw_body,omitempty"`
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("facerec: %s (%d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("facerec: %s", e.Message)
}

// IsValidation reports whether err is a client-side validation failure
func IsValidation(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Kind == KindValidation
}

func validationError(format string, args ...interface{}) *APIError {
	return &APIError{
		Kind:       KindValidation,
		StatusCode: http.StatusBadRequest,
		Message:    fmt.Sprintf(format, args...),
	}
}

func networkError(err error) *APIError {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr
	}
	return &APIError{
		Kind:    KindNetwork,
		Message: err.Error(),
	}
}

// backendError is the error envelope the backend serves; any of error, detail
// or message may carry the text.
type backendError struct {
	Err        string `json:"error"`
	Detail     string `json:"detail"`
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}

var defaultStatusMessages = map[int]string{
	http.StatusBadRequest:          "bad request",
	http.StatusUnauthorized:        "unauthorized",
	http.StatusForbidden:           "forbidden",
	http.StatusNotFound:            "not found",
	http.StatusInternalServerError: "internal server error",
	http.StatusServiceUnavailable:  "service unavailable",
}

func statusError(statusCode int, body []byte) *APIError {
	var be backendError
	_ = json.Unmarshal(body, &be)

	message := be.Err
	if message == "" {
		message = be.Detail
	}
	if message == "" {
		message = be.Message
	}
	if message == "" {
		message = defaultStatusMessages[statusCode]
	}
	if message == "" {
		message = fmt.Sprintf("request failed with status %d", statusCode)
	}

	return &APIError{
		Kind:       KindHTTP,
		StatusCode: statusCode,
		Message:    message,
		RawBody:    string(body),
	}
}

func unknownError(err error) *APIError {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr
	}
	return &APIError{
		Kind:    KindUnknown,
		Message: err.Error(),
	}
}
