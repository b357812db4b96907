package services

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrTaskNotFound        = errors.New("task not found")
	ErrConcurrentUpdate    = errors.New("task was modified concurrently")
	ErrUnrecognizedFailure = errors.New("unrecognized failure")
)

// ErrorKind classifies why an operation failed.
type ErrorKind string

const (
	KindValidation ErrorKind = "VALIDATION"
	KindStorage    ErrorKind = "STORAGE"
	KindNotFound   ErrorKind = "NOT_FOUND"
	KindInternal   ErrorKind = "INTERNAL"
)

// Operation names used in user-facing messages.
const (
	OpListTasks  = "fetch tasks"
	OpGetTask    = "fetch task"
	OpCreateTask = "create task"
	OpToggleTask = "toggle task"
	OpDeleteTask = "delete task"
)

// ValidationError reports a caller argument that violates an input rule.
// Reason is shown to the caller verbatim.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// OperationError is the only error shape that leaves TaskService.
type OperationError struct {
	Op   string
	Kind ErrorKind
	Err  error
}

func (e *OperationError) Error() string {
	if e.Err == nil || e.Err.Error() == "" || errors.Is(e.Err, ErrUnrecognizedFailure) {
		return "Failed to " + e.Op
	}
	return fmt.Sprintf("Failed to %s: %s", e.Op, e.Err.Error())
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// Extensions is picked up by the GraphQL executor and attached to the
// error entry of the response.
func (e *OperationError) Extensions() map[string]interface{} {
	ext := map[string]interface{}{
		"code":      string(e.Kind),
		"operation": e.Op,
	}
	var verr *ValidationError
	if errors.As(e.Err, &verr) && verr.Field != "" {
		ext["field"] = verr.Field
	}
	return ext
}

// Normalize wraps any failure raised by an operation into an
// *OperationError. Validation failures keep their reason; task-not-found
// is classified separately; every other error is treated as a storage
// failure and keeps the storage layer's message.
func Normalize(op string, err error) error {
	if err == nil {
		return nil
	}

	var opErr *OperationError
	if errors.As(err, &opErr) {
		return opErr
	}

	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		return &OperationError{Op: op, Kind: KindValidation, Err: err}
	case errors.Is(err, ErrTaskNotFound):
		return &OperationError{Op: op, Kind: KindNotFound, Err: err}
	case errors.Is(err, ErrUnrecognizedFailure):
		return &OperationError{Op: op, Kind: KindInternal, Err: err}
	default:
		return &OperationError{Op: op, Kind: KindStorage, Err: err}
	}
}

// RecoverOperation turns a panic inside an operation into a normalized
// error. Panics carrying an error keep its message; anything else is an
// unrecognized failure.
func RecoverOperation(op string, errp *error) {
	r := recover()
	if r == nil {
		return
	}
	if err, ok := r.(error); ok {
		*errp = &OperationError{Op: op, Kind: KindInternal, Err: err}
		return
	}
	*errp = &OperationError{Op: op, Kind: KindInternal, Err: ErrUnrecognizedFailure}
}

func kindOf(err error) ErrorKind {
	var opErr *OperationError
	if errors.As(err, &opErr) {
		return opErr.Kind
	}
	return ""
}

func IsValidation(err error) bool {
	return kindOf(err) == KindValidation
}

func IsNotFound(err error) bool {
	return kindOf(err) == KindNotFound || errors.Is(err, ErrTaskNotFound)
}

func IsStorage(err error) bool {
	return kindOf(err) == KindStorage
}

// KindOf reports the kind of a normalized error, or KindInternal for
// errors that never went through Normalize.
func KindOf(err error) ErrorKind {
	if k := kindOf(err); k != "" {
		return k
	}
	return KindInternal
}
