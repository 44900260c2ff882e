package errors

import (
	"errors"
	"fmt"
	"net"
	"strings"
)

var (
	// ErrNotFound marks an expected "not yet discovered" outcome, e.g. a
	// chat id that has not appeared in the update window yet. It drives
	// re-polling and is not a failure.
	ErrNotFound = errors.New("not found")

	// ErrServiceUnavailable means the bot identity could not be obtained
	ErrServiceUnavailable = errors.New("verification service unavailable")

	// ErrTokenInvalid means the payment gateway rejected the credentials
	ErrTokenInvalid = errors.New("gateway rejected API credentials")
)

// ConnectivityError means every relay strategy failed at the transport
// level; it carries the last underlying cause.
type ConnectivityError struct {
	Cause error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("all relay strategies failed: %v", e.Cause)
}

func (e *ConnectivityError) Unwrap() error {
	return e.Cause
}

// GatewayError is a generic remote rejection carrying the gateway message
type GatewayError struct {
	Message string
}

func (e *GatewayError) Error() string {
	if e.Message == "" {
		return "payment gateway error"
	}
	return fmt.Sprintf("payment gateway refused: %s", e.Message)
}

// ValidationError rejects invalid input before any side effect
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a validation error with the given message
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// transientSignatures are failure messages treated as transient transport
// conditions worth retrying
var transientSignatures = []string{
	"connection refused",
	"connection reset",
	"broken pipe",
	"timeout",
	"timed out",
	"no such host",
	"network is unreachable",
	"fetch",
	"load failed",
}

// IsTransient reports whether err looks like a transient transport
// failure. Anything else, e.g. missing schema or constraint violations,
// must propagate on first occurrence.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, sig := range transientSignatures {
		if strings.Contains(msg, sig) {
			return true
		}
	}
	return false
}
