package booking

import "fmt"

// Error codes crossing the orchestrator boundary. Anything else that goes
// wrong during a booking is absorbed and logged.
const (
	codeValidation = "validationError"
	codeNotFound   = "notFoundError"
	codeConflict   = "conflictError"
)

// BookingError carries a stable code alongside the message so handlers
// can map failures without string matching.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &BookingError{Code: codeValidation, Message: msg}
}

func NewNotFoundError(msg string) error {
	return &BookingError{Code: codeNotFound, Message: msg}
}

func NewConflictError(msg string) error {
	return &BookingError{Code: codeConflict, Message: msg}
}

// IsValidation reports whether err is a rejected-input failure.
func IsValidation(err error) bool {
	be, ok := err.(*BookingError)
	return ok && be.Code == codeValidation
}

// IsNotFound reports whether err refers to a missing record.
func IsNotFound(err error) bool {
	be, ok := err.(*BookingError)
	return ok && be.Code == codeNotFound
}

// IsConflict reports whether err is a slot-no-longer-available failure.
func IsConflict(err error) bool {
	be, ok := err.(*BookingError)
	return ok && be.Code == codeConflict
}
