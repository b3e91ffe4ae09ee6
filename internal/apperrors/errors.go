package apperrors

import "errors"

// Common errors
var (
	// ErrInvalidID is returned for identifiers that are not 24 hex characters.
	ErrInvalidID      = errors.New("invalid id")
	ErrInvalidPayload = errors.New("invalid payload")
	ErrNotFound       = errors.New("resource not found")
)

// Resource errors
var (
	ErrStudentNotFound = &CustomError{Err: ErrNotFound, Message: "Aluno não encontrado"}
	ErrCourseNotFound  = &CustomError{Err: ErrNotFound, Message: "Curso não encontrado"}
)

// CustomError carries a client-facing message on top of a sentinel error
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// Message returns the client-facing message of err, or fallback when err
// carries none.
func Message(err error, fallback string) string {
	var custom *CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		return custom.Message
	}
	return fallback
}
