// Package validation defines the error kind handlers use to tell client
// mistakes apart from storage failures.
package validation

// Error carries a client-safe message describing the first violated rule of a
// request. Handlers translate it into a 400 response with the message verbatim;
// every other error kind stays opaque to the caller.
type Error struct {
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// NewError creates a validation error with the given client-safe message.
func NewError(message string) *Error {
	return &Error{Message: message}
}
