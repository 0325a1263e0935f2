package user

import "fmt"

const (
	codeValidation   = "validationError"
	codeNotFound     = "notFoundError"
	codeConflict     = "conflictError"
	codeUnauthorized = "unauthorizedError"
)

// AuthError carries a stable code so handlers can map account failures
// to status codes without string matching.
type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &AuthError{Code: codeValidation, Message: msg}
}

func NewNotFoundError(msg string) error {
	return &AuthError{Code: codeNotFound, Message: msg}
}

func NewConflictError(msg string) error {
	return &AuthError{Code: codeConflict, Message: msg}
}

func NewUnauthorizedError(msg string) error {
	return &AuthError{Code: codeUnauthorized, Message: msg}
}

func IsValidation(err error) bool {
	ae, ok := err.(*AuthError)
	return ok && ae.Code == codeValidation
}

func IsNotFound(err error) bool {
	ae, ok := err.(*AuthError)
	return ok && ae.Code == codeNotFound
}

func IsConflict(err error) bool {
	ae, ok := err.(*AuthError)
	return ok && ae.Code == codeConflict
}

func IsUnauthorized(err error) bool {
	ae, ok := err.(*AuthError)
	return ok && ae.Code == codeUnauthorized
}
