package testlab

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIStatus is the structured error payload the service returns inside the
// "error" member of a failed response body.
type APIStatus struct {
	Code    int    `json:"code"    yaml:"code"`
	Message string `json:"message" yaml:"message"`
	Status  string `json:"status"  yaml:"status"`
}

// Error implements the error interface.
func (e *APIStatus) Error() string {
	return fmt.Sprintf("%s: %s (code: %d)", e.Status, e.Message, e.Code)
}

// statusEnvelope mirrors the wire shape {"error": {...}}.
type statusEnvelope struct {
	Error *APIStatus `json:"error"`
}

// Canonical status strings used by the service.
const (
	StatusNotFound          = "NOT_FOUND"
	StatusPermissionDenied  = "PERMISSION_DENIED"
	StatusInvalidArgument   = "INVALID_ARGUMENT"
	StatusUnauthenticated   = "UNAUTHENTICATED"
	StatusResourceExhausted = "RESOURCE_EXHAUSTED"
)

// FieldClashError reports a caller-supplied additional parameter whose name
// collides with a parameter the call manages itself. It is raised before any
// network traffic.
type FieldClashError struct {
	Field string
}

// Error implements the error interface.
func (e *FieldClashError) Error() string {
	return fmt.Sprintf("field clash: parameter %q is managed by the call and cannot be set", e.Field)
}

// MissingTokenError reports that no usable authorization token could be
// obtained for the call's scopes.
type MissingTokenError struct {
	Err error
}

// Error implements the error interface.
func (e *MissingTokenError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("missing token: %v", e.Err)
	}

	return "missing token"
}

// Unwrap returns the underlying token source error.
func (e *MissingTokenError) Unwrap() error {
	return e.Err
}

// HTTPError reports a transport-level failure: the request never produced a
// complete HTTP response.
type HTTPError struct {
	Err error
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("transport failure: %v", e.Err)
}

// Unwrap returns the underlying transport error.
func (e *HTTPError) Unwrap() error {
	return e.Err
}

// BadRequestError reports a non-2xx response whose body parsed as JSON.
// Value holds the exact parsed body; Status is the service's structured
// error payload when the body carried one.
type BadRequestError struct {
	StatusCode int
	Value      interface{}
	Status     *APIStatus
}

// Error implements the error interface.
func (e *BadRequestError) Error() string {
	if e.Status != nil {
		return fmt.Sprintf("bad request (HTTP %d): %s", e.StatusCode, e.Status.Error())
	}

	return fmt.Sprintf("bad request (HTTP %d)", e.StatusCode)
}

// FailureError reports a non-2xx response whose body was not valid JSON.
// Body preserves the raw bytes for inspection.
type FailureError struct {
	StatusCode int
	Body       []byte
}

// Error implements the error interface.
func (e *FailureError) Error() string {
	return fmt.Sprintf("request failed (HTTP %d): %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// JSONDecodeError reports a 2xx response whose body could not be decoded
// into the call's result type. Body preserves the raw text.
type JSONDecodeError struct {
	Body string
	Err  error
}

// Error implements the error interface.
func (e *JSONDecodeError) Error() string {
	return fmt.Sprintf("decoding response body: %v", e.Err)
}

// Unwrap returns the underlying decode error.
func (e *JSONDecodeError) Unwrap() error {
	return e.Err
}

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired          = errors.New("config is required")
	ErrEndpointRequired        = errors.New("endpoint is required")
	ErrNoCredentials           = errors.New("no valid credentials available")
	ErrStaticTokenNoRefresh    = errors.New("static token cannot be refreshed")
	ErrProjectIDRequired       = errors.New("project ID is required")
	ErrMatrixIDRequired        = errors.New("test matrix ID is required")
	ErrEnvironmentTypeRequired = errors.New("environment type is required")
	ErrFileReferenceRequired   = errors.New("file reference is required")
	ErrMatrixRequired          = errors.New("test matrix is required")
	ErrPollTimeout             = errors.New("timeout waiting for test matrix to reach a final state")
)

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return matchStatus(err, http.StatusNotFound, StatusNotFound)
}

// IsPermissionDenied checks if the error is a permission denied error.
func IsPermissionDenied(err error) bool {
	return matchStatus(err, http.StatusForbidden, StatusPermissionDenied)
}

// IsInvalidArgument checks if the error is an invalid argument error.
func IsInvalidArgument(err error) bool {
	return matchStatus(err, http.StatusBadRequest, StatusInvalidArgument)
}

// IsUnauthenticated checks if the error is an authentication error.
func IsUnauthenticated(err error) bool {
	if matchStatus(err, http.StatusUnauthorized, StatusUnauthenticated) {
		return true
	}

	missingToken := &MissingTokenError{}

	return errors.As(err, &missingToken)
}

func matchStatus(err error, httpCode int, status string) bool {
	badReq := &BadRequestError{}
	if errors.As(err, &badReq) {
		if badReq.Status != nil && badReq.Status.Status == status {
			return true
		}

		return badReq.StatusCode == httpCode
	}

	failure := &FailureError{}
	if errors.As(err, &failure) {
		return failure.StatusCode == httpCode
	}

	return false
}

// ParseAPIStatus extracts the service's structured error payload from a
// response body, or nil when the body does not carry one.
func ParseAPIStatus(data []byte) *APIStatus {
	var envelope statusEnvelope

	err := json.Unmarshal(data, &envelope)
	if err != nil {
		return nil
	}

	return envelope.Error
}
