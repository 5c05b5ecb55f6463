package domain

import (
	"errors"
	"fmt"
)

// DomainError represents an error with a structured error code.
// Codes follow the format OSSD-<AREA>-<NNNN>.
type DomainError struct {
	Code    string // Error code (e.g., "OSSD-CORP-5000")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Details != "" {
		msg += ": " + e.Details
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is matches any DomainError with the same code.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// Wrap returns a copy of the error wrapping cause.
func (e *DomainError) Wrap(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// GetErrorCode extracts the error code from an error if it's a DomainError.
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

var (
	// ErrCorpusRead indicates a project file or directory could not be read.
	ErrCorpusRead = NewDomainError("OSSD-CORP-5000", "cannot read project corpus")

	// ErrSnapshotWrite indicates a snapshot file could not be written.
	ErrSnapshotWrite = NewDomainError("OSSD-SNAP-5000", "cannot write snapshot")

	// ErrDatasetRead indicates the namespace dataset could not be loaded.
	ErrDatasetRead = NewDomainError("OSSD-DATA-4000", "cannot read namespace dataset")

	// ErrInvalidConfig indicates the configuration failed verification.
	ErrInvalidConfig = NewDomainError("OSSD-CONF-4000", "invalid configuration")
)
