package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// RouteError is returned by request handlers to signal a client-facing
// failure. Its status and message are written verbatim to the response.
type RouteError struct {
	Status  int
	Message string
}

func (e *RouteError) Error() string {
	return e.Message
}

func NewRouteError(status int, message string) *RouteError {
	return &RouteError{Status: status, Message: message}
}

func NewRouteErrorf(status int, format string, args ...any) *RouteError {
	return &RouteError{Status: status, Message: fmt.Sprintf(format, args...)}
}

func NewBadRequestError(message string) *RouteError {
	return NewRouteError(http.StatusBadRequest, message)
}

func NewRouteNotFoundError() *RouteError {
	return NewRouteError(http.StatusNotFound, "route not found")
}

func NewPayloadTooLargeError(limit int64) *RouteError {
	return NewRouteErrorf(http.StatusRequestEntityTooLarge, "request body exceeds %d bytes", limit)
}

// AsRouteError returns the first RouteError in err's chain.
func AsRouteError(err error) (*RouteError, bool) {
	var e *RouteError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// ConfigurationError reports an invalid or missing startup setting.
type ConfigurationError struct {
	Key    string
	Value  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid configuration %s: %s", e.Key, e.Reason)
	}
	return fmt.Sprintf("invalid configuration %s=%q: %s", e.Key, e.Value, e.Reason)
}

func NewConfigurationError(key, value, reason string) *ConfigurationError {
	return &ConfigurationError{Key: key, Value: value, Reason: reason}
}

func IsConfigurationError(err error) bool {
	var e *ConfigurationError
	return errors.As(err, &e)
}
