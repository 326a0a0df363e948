package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Sentinels used to mark errors raised while invoking a webhook
var (
	ErrTransport  = new(ErrCodeTransport, "transport error")
	ErrProtocol   = new(ErrCodeProtocol, "protocol error")
	ErrValidation = new(ErrCodeValidation, "validation error")
	ErrSystem     = new(ErrCodeSystemError, "system error")

	// maps errors to process exit codes
	exitCodeMap = map[error]int{
		ErrTransport:  ExitCodeTransport,
		ErrProtocol:   ExitCodeTransport,
		ErrValidation: ExitCodeUsage,
		ErrSystem:     ExitCodeTransport,
	}
)

const (
	ErrCodeTransport   = "transport_error"
	ErrCodeProtocol    = "protocol_error"
	ErrCodeValidation  = "validation_error"
	ErrCodeSystemError = "system_error"
)

const (
	ExitCodeOK        = 0
	ExitCodeTransport = 1
	ExitCodeUsage     = 2
)

// InternalError represents a domain error
type InternalError struct {
	Code    string // Machine-readable error code
	Message string // Human-readable error message
	Err     error  // Underlying error
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return e.DisplayError()
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Err.Error())
}

func (e *InternalError) DisplayError() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// Is implements error matching for wrapped errors
func (e *InternalError) Is(target error) bool {
	if target == nil {
		return false
	}

	t, ok := target.(*InternalError)
	if !ok {
		return errors.Is(e.Err, target)
	}

	return e.Code == t.Code
}

func new(code string, message string) *InternalError {
	return &InternalError{
		Code:    code,
		Message: message,
	}
}

// New creates an InternalError with the given code wrapping err
func New(code string, err error) *InternalError {
	return &InternalError{
		Code:    code,
		Message: err.Error(),
		Err:     err,
	}
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}

// IsTransport checks if an error is a transport error
func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}

// IsProtocol checks if an error is a protocol (name resolution) error
func IsProtocol(err error) bool {
	return errors.Is(err, ErrProtocol)
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// ExitCodeFromErr maps an error to the exit code of the invoker process.
// Unmarked errors exit like transport failures.
func ExitCodeFromErr(err error) int {
	if err == nil {
		return ExitCodeOK
	}
	// validation is checked first so that a usage mistake never reports as transport
	if errors.Is(err, ErrValidation) {
		return ExitCodeUsage
	}
	for e, code := range exitCodeMap {
		if errors.Is(err, e) {
			return code
		}
	}
	return ExitCodeTransport
}
