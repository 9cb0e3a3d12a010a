// Package errors defines the error types shared by the scaffolding steps.
package errors

import "fmt"

// Operation names used when wrapping errors.
const (
	OpResolvePath = "resolve-path"
	OpValidateURL = "validate-url"
	OpClean       = "clean"
	OpLookup      = "github-lookup"
	OpConfig      = "config"
)

// OperationError represents an error that occurred during a scaffolding step
type OperationError struct {
	Op  string // The step being performed
	Err error  // The underlying error
}

// Error implements the error interface
func (e *OperationError) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *OperationError) Unwrap() error {
	return e.Err
}

// New creates a new OperationError
func New(op string, err error) *OperationError {
	return &OperationError{
		Op:  op,
		Err: err,
	}
}

// Is matches any OperationError carrying the same Op
func (e *OperationError) Is(target error) bool {
	t, ok := target.(*OperationError)
	if !ok {
		return false
	}
	return e.Op == t.Op
}

// APIError is returned when the GitHub API answers with a non-success status
type APIError struct {
	Op      string
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: %s (HTTP %d)", e.Op, e.Message, e.Status)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// NewAPIError creates an APIError for the given HTTP status
func NewAPIError(op string, status int, message string, err error) *APIError {
	return &APIError{
		Op:      op,
		Status:  status,
		Message: message,
		Err:     err,
	}
}
