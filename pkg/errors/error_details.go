package errors

import stderrors "errors"

// ErrorDetails represents detailed information about an error.
type ErrorDetails struct {
	// Message (required) is the user-defined error message.
	// E.g. "order quantity must be positive".
	Message string

	// Code (required) is the error code string, one of the ErrorCode constants.
	Code string

	// Field (optional) is the related field the error occurred on, if any.
	Field string

	// Object (optional) is the related object the error occurred on, if any.
	Object any
}

// NewErrorDetails creates a new ErrorDetails struct with the given parameters.
func NewErrorDetails(message, code, field string) *ErrorDetails {
	return &ErrorDetails{
		Message: message,
		Code:    code,
		Field:   field,
	}
}

// NewErrorDetailsWithObject creates a new ErrorDetails struct with an associated object.
func NewErrorDetailsWithObject(message, code, field string, object any) *ErrorDetails {
	return &ErrorDetails{
		Message: message,
		Code:    code,
		Field:   field,
		Object:  object,
	}
}

// Error() is used to implement the Golang `error` interface.
func (e *ErrorDetails) Error() string {
	return e.Message
}

// ErrorCodeEquals checks whether a given `error`, or any error it wraps, has a specific code.
func ErrorCodeEquals(err error, code ErrorCode) bool {
	var errDetails *ErrorDetails
	if !stderrors.As(err, &errDetails) {
		return false
	}

	return errDetails.Code == string(code)
}
