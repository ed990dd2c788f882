package openai

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Static errors for err113 compliance.
var (
	ErrValidation           = errors.New("validation failed")
	ErrFileNotFound         = errors.New("file does not exist")
	ErrFileNotReadable      = errors.New("file is not readable")
	ErrNotAFile             = errors.New("path is a directory")
	ErrUnrecognizedData     = errors.New("data must be a part, reader, byte buffer, string or integer")
	ErrUnsupportedOperation = errors.New("unsupported operation")
	ErrConfigRequired       = errors.New("config is required")
	ErrBaseURLRequired      = errors.New("base URL is required")
)

// ValidationError is a client-side precondition failure raised before any
// network activity.
type ValidationError struct {
	Field  string
	Value  string
	Reason error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Reason)
	}

	return fmt.Sprintf("invalid %s: %v", e.Field, e.Reason)
}

// Unwrap exposes both ErrValidation and the specific reason.
func (e *ValidationError) Unwrap() []error {
	return []error{ErrValidation, e.Reason}
}

// UnsupportedOperationError is returned for API areas this client does not implement.
type UnsupportedOperationError struct {
	Operation string
}

// Error implements the error interface.
func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Operation, ErrUnsupportedOperation)
}

// Unwrap returns ErrUnsupportedOperation.
func (e *UnsupportedOperationError) Unwrap() error {
	return ErrUnsupportedOperation
}

// TransportError is a failure that happened before any response was received.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
}

// Unwrap returns the underlying network error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError is the error object returned by the API in {"error": {...}}.
type APIError struct {
	Message string      `json:"message"         yaml:"message"`
	Type    string      `json:"type"            yaml:"type"`
	Param   *string     `json:"param,omitempty" yaml:"param,omitempty"`
	Code    interface{} `json:"code,omitempty"  yaml:"code,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Type == "" {
		return e.Message
	}

	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// RequestError is a response with a non-2xx status. The response itself is
// returned next to it, unmodified.
type RequestError struct {
	StatusCode int
	Body       []byte
	API        *APIError
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	if e.API != nil && e.API.Message != "" {
		return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.API.Error())
	}

	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// NewRequestError builds a RequestError, decoding the API error object when the
// body carries one.
func NewRequestError(statusCode int, body []byte) *RequestError {
	reqErr := &RequestError{StatusCode: statusCode, Body: body}

	var envelope struct {
		Error *APIError `json:"error"`
	}

	err := json.Unmarshal(body, &envelope)
	if err == nil && envelope.Error != nil {
		reqErr.API = envelope.Error
	}

	return reqErr
}

// IsValidation checks if the error is a client-side validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsUnsupported checks if the error reports an unsupported operation.
func IsUnsupported(err error) bool {
	return errors.Is(err, ErrUnsupportedOperation)
}

// IsNotFound checks if the error is a 404 response.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks if the error is a 401 response.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsRateLimited checks if the error is a 429 response.
func IsRateLimited(err error) bool {
	return hasStatus(err, http.StatusTooManyRequests)
}

func hasStatus(err error, status int) bool {
	reqErr := &RequestError{}
	if errors.As(err, &reqErr) {
		return reqErr.StatusCode == status
	}

	return false
}
