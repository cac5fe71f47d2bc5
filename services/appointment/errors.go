package appointment

import (
	"errors"
	"fmt"
)

// Error codes for the appointment subsystem.
const (
	CodeUnauthenticated  = "unauthenticated"
	CodeUnauthorized     = "unauthorized"
	CodeInvalidInput     = "invalidInput"
	CodeSlotNotAvailable = "slotNotAvailable"
	CodeActorNotFound    = "actorNotFound"
	CodeInternal         = "internal"
)

// Error carries a machine-readable code alongside the message so handlers
// can map domain failures to HTTP statuses.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newError(code, msg string) error {
	return &Error{Code: code, Message: msg}
}

func ErrUnauthenticated(msg string) error  { return newError(CodeUnauthenticated, msg) }
func ErrUnauthorized(msg string) error     { return newError(CodeUnauthorized, msg) }
func ErrInvalidInput(msg string) error     { return newError(CodeInvalidInput, msg) }
func ErrSlotNotAvailable(msg string) error { return newError(CodeSlotNotAvailable, msg) }
func ErrActorNotFound(msg string) error    { return newError(CodeActorNotFound, msg) }
func ErrInternal(msg string) error         { return newError(CodeInternal, msg) }

// CodeOf extracts the appointment error code, defaulting to internal.
func CodeOf(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Code
	}
	return CodeInternal
}
