package assignment

import "fmt"

// AssignmentError carries a stable code alongside the message so handlers
// can map failures without string matching.
type AssignmentError struct {
	Code    string
	Message string
}

func (e *AssignmentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ErrNoMentors is returned when no mentor covers the requested field.
var ErrNoMentors = &AssignmentError{
	Code:    "notFoundError",
	Message: "no mentors available for this field",
}

// ErrMentorNotFound is returned when a mentor id resolves to nothing.
var ErrMentorNotFound = &AssignmentError{
	Code:    "notFoundError",
	Message: "mentor not found",
}

// IsNotFound reports whether err is a missing-mentor failure.
func IsNotFound(err error) bool {
	ae, ok := err.(*AssignmentError)
	return ok && ae.Code == "notFoundError"
}
