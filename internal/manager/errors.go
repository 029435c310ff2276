package manager

import (
	"errors"
	"net/http"
	"strings"
)

// Caller-facing messages. Causes are logged, never returned to callers.
const (
	msgNoName   = "No model specified"
	msgInitFail = "Error initializing model"
	msgExecFail = "Error processing request"
)

// ErrNoNameProvided is returned when the caller omitted the model name.
var ErrNoNameProvided error = noNameError{}

type noNameError struct{}

func (noNameError) Error() string   { return msgNoName }
func (noNameError) StatusCode() int { return http.StatusBadRequest }

// IsNoName reports whether err indicates a missing model name.
func IsNoName(err error) bool { return errors.Is(err, ErrNoNameProvided) }

// NotAvailableError is returned for names outside the available set, whether
// unknown or filtered out by the allowlist.
type NotAvailableError struct {
	Requested string
	Available []string
}

func (e *NotAvailableError) Error() string {
	return "Invalid model: " + e.Requested + ". Available models: " + strings.Join(e.Available, ", ")
}

func (e *NotAvailableError) StatusCode() int { return http.StatusBadRequest }

// ErrNotAvailable constructs a NotAvailableError.
func ErrNotAvailable(requested string, available []string) error {
	return &NotAvailableError{Requested: requested, Available: append([]string(nil), available...)}
}

// IsNotAvailable reports whether err indicates an unavailable model.
func IsNotAvailable(err error) bool {
	var e *NotAvailableError
	return errors.As(err, &e)
}

// InitError is returned when a model factory fails. Nothing is cached.
type InitError struct {
	Name  string
	Cause error
}

func (e *InitError) Error() string   { return msgInitFail }
func (e *InitError) Unwrap() error   { return e.Cause }
func (e *InitError) StatusCode() int { return http.StatusBadRequest }

// IsInitError reports whether err came from a failed model construction.
func IsInitError(err error) bool {
	var e *InitError
	return errors.As(err, &e)
}

// ExecError is returned when a model's Process fails.
type ExecError struct {
	Name  string
	Cause error
}

func (e *ExecError) Error() string   { return msgExecFail }
func (e *ExecError) Unwrap() error   { return e.Cause }
func (e *ExecError) StatusCode() int { return http.StatusInternalServerError }

// IsExecError reports whether err came from a failed Process call.
func IsExecError(err error) bool {
	var e *ExecError
	return errors.As(err, &e)
}
