package store

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

// StoreError is an error detected at the store boundary, categorized so
// callers can decide how to surface it without parsing messages.
type StoreError struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Err is the underlying storage error, if any.
	Err error
}

// ErrorCode categorizes store errors.
type ErrorCode string

const (
	// ErrCodeStorageUnavailable indicates the database could not be opened
	// or the schema could not be created. Fatal to the session.
	ErrCodeStorageUnavailable ErrorCode = "STORAGE_UNAVAILABLE"

	// ErrCodeIntegrityViolation indicates a constraint violation, e.g. a
	// duplicate ingredient within one recipe submission.
	ErrCodeIntegrityViolation ErrorCode = "INTEGRITY_VIOLATION"

	// ErrCodeQueryFailed indicates any other storage failure during a
	// read or write.
	ErrCodeQueryFailed ErrorCode = "QUERY_FAILED"

	// ErrCodeAuditLogFailed indicates a failed audit log append. Never
	// fails the primary operation it accompanies; reported on the
	// diagnostic logger and surfaced only from LogAction itself.
	ErrCodeAuditLogFailed ErrorCode = "AUDIT_LOG_FAILED"

	// ErrCodeInvalidInput indicates input rejected before any write, e.g.
	// a negative preparation time or an empty recipe name.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// Error implements the error interface.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying storage error for errors.Is/As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// IsIntegrityError reports whether err is an integrity violation.
// Uses errors.As to handle wrapped errors.
func IsIntegrityError(err error) bool {
	var se *StoreError
	if errors.As(err, &se) {
		return se.Code == ErrCodeIntegrityViolation
	}
	return false
}

// IsStorageUnavailable reports whether err means the database could not
// be opened or initialized.
func IsStorageUnavailable(err error) bool {
	var se *StoreError
	if errors.As(err, &se) {
		return se.Code == ErrCodeStorageUnavailable
	}
	return false
}

// IsInvalidInput reports whether err is a rejected write input.
func IsInvalidInput(err error) bool {
	var se *StoreError
	if errors.As(err, &se) {
		return se.Code == ErrCodeInvalidInput
	}
	return false
}

func newStorageUnavailable(message string, err error) *StoreError {
	return &StoreError{Code: ErrCodeStorageUnavailable, Message: message, Err: err}
}

func newIntegrityViolation(message string, err error) *StoreError {
	return &StoreError{Code: ErrCodeIntegrityViolation, Message: message, Err: err}
}

func newQueryFailed(message string, err error) *StoreError {
	return &StoreError{Code: ErrCodeQueryFailed, Message: message, Err: err}
}

func newInvalidInput(message string) *StoreError {
	return &StoreError{Code: ErrCodeInvalidInput, Message: message}
}

// classifyWriteError maps a raw SQLite error to the store taxonomy.
// Constraint violations (duplicate association key, broken foreign key)
// become integrity violations; everything else is a query failure.
func classifyWriteError(op string, err error) *StoreError {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		return newIntegrityViolation(op, err)
	}
	return newQueryFailed(op, err)
}
