package session

import "fmt"

const (
	codeValidation = "validationError"
	codeNotFound   = "notFoundError"
	codeConflict   = "conflictError"
	codeForbidden  = "forbiddenError"
)

// SessionError carries a stable code alongside the message so handlers
// can map lifecycle failures without string matching.
type SessionError struct {
	Code    string
	Message string
}

func (e *SessionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &SessionError{Code: codeValidation, Message: msg}
}

func NewNotFoundError(msg string) error {
	return &SessionError{Code: codeNotFound, Message: msg}
}

func NewConflictError(msg string) error {
	return &SessionError{Code: codeConflict, Message: msg}
}

func NewForbiddenError(msg string) error {
	return &SessionError{Code: codeForbidden, Message: msg}
}

func IsValidation(err error) bool {
	se, ok := err.(*SessionError)
	return ok && se.Code == codeValidation
}

func IsNotFound(err error) bool {
	se, ok := err.(*SessionError)
	return ok && se.Code == codeNotFound
}

func IsConflict(err error) bool {
	se, ok := err.(*SessionError)
	return ok && se.Code == codeConflict
}

func IsForbidden(err error) bool {
	se, ok := err.(*SessionError)
	return ok && se.Code == codeForbidden
}
