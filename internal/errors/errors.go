// Package errors provides coded domain errors for the OpenShelf library service.
//
// Every anticipated failure (duplicate ISBN, unknown user, borrowing an
// unavailable copy, ...) is an *Error carrying a machine-readable Code. The
// HTTP boundary checks for *Error to decide whether a failure is a domain
// outcome or an unexpected fault.
//
// Usage:
//
//	// In the store/services - return typed errors
//	if isbnTaken {
//	    return errors.DuplicateISBN("a book with ISBN %s already exists", isbn)
//	}
//
//	// In handlers - check with errors.As
//	var domainErr *errors.Error
//	if errors.As(err, &domainErr) {
//	    // anticipated failure, surface message to the caller
//	}
package errors

import (
	"errors"
	"fmt"
)

// Re-export standard library functions for convenience.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	Join   = errors.Join
)

// Code represents a machine-readable error code.
type Code string

// Error codes used throughout the application.
const (
	CodeInvalidInput    Code = "INVALID_INPUT"
	CodeDuplicateUser   Code = "DUPLICATE_USER"
	CodeUserNotFound    Code = "USER_NOT_FOUND"
	CodeDuplicateISBN   Code = "DUPLICATE_ISBN"
	CodeBookNotFound    Code = "BOOK_NOT_FOUND"
	CodeBookUnavailable Code = "BOOK_UNAVAILABLE"
	CodeBookBorrowed    Code = "BOOK_BORROWED"
	CodeNoActiveLoan    Code = "NO_ACTIVE_LOAN"
	CodeLoanMismatch    Code = "LOAN_MISMATCH"
	CodeInternal        Code = "INTERNAL"
)

// Error is a domain error with a code and a user-facing message.
type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	cause   error  // unexported, for wrapping
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target matches this error.
// Matches if target is an *Error with the same Code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// WithCause wraps an underlying error.
func (e *Error) WithCause(err error) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		cause:   err,
	}
}

// Sentinel errors for use with errors.Is().
var (
	ErrInvalidInput    = &Error{Code: CodeInvalidInput, Message: "invalid input"}
	ErrDuplicateUser   = &Error{Code: CodeDuplicateUser, Message: "user already exists"}
	ErrUserNotFound    = &Error{Code: CodeUserNotFound, Message: "user not found"}
	ErrDuplicateISBN   = &Error{Code: CodeDuplicateISBN, Message: "ISBN already exists"}
	ErrBookNotFound    = &Error{Code: CodeBookNotFound, Message: "book not found"}
	ErrBookUnavailable = &Error{Code: CodeBookUnavailable, Message: "book is not available"}
	ErrBookBorrowed    = &Error{Code: CodeBookBorrowed, Message: "book is currently borrowed"}
	ErrNoActiveLoan    = &Error{Code: CodeNoActiveLoan, Message: "no active loan for this book"}
	ErrLoanMismatch    = &Error{Code: CodeLoanMismatch, Message: "book was borrowed by another user"}
	ErrInternal        = &Error{Code: CodeInternal, Message: "internal error"}
)

// Constructor functions for creating errors with custom messages.

// InvalidInput creates an invalid input error with a formatted message.
func InvalidInput(format string, args ...any) *Error {
	return &Error{Code: CodeInvalidInput, Message: fmt.Sprintf(format, args...)}
}

// DuplicateUser creates a duplicate user error with a formatted message.
func DuplicateUser(format string, args ...any) *Error {
	return &Error{Code: CodeDuplicateUser, Message: fmt.Sprintf(format, args...)}
}

// UserNotFound creates a user not found error with a formatted message.
func UserNotFound(format string, args ...any) *Error {
	return &Error{Code: CodeUserNotFound, Message: fmt.Sprintf(format, args...)}
}

// DuplicateISBN creates a duplicate ISBN error with a formatted message.
func DuplicateISBN(format string, args ...any) *Error {
	return &Error{Code: CodeDuplicateISBN, Message: fmt.Sprintf(format, args...)}
}

// BookNotFound creates a book not found error with a formatted message.
func BookNotFound(format string, args ...any) *Error {
	return &Error{Code: CodeBookNotFound, Message: fmt.Sprintf(format, args...)}
}

// BookUnavailable creates a book unavailable error with a formatted message.
func BookUnavailable(format string, args ...any) *Error {
	return &Error{Code: CodeBookUnavailable, Message: fmt.Sprintf(format, args...)}
}

// BookBorrowed creates a book currently borrowed error with a formatted message.
func BookBorrowed(format string, args ...any) *Error {
	return &Error{Code: CodeBookBorrowed, Message: fmt.Sprintf(format, args...)}
}

// NoActiveLoan creates a no active loan error with a formatted message.
func NoActiveLoan(format string, args ...any) *Error {
	return &Error{Code: CodeNoActiveLoan, Message: fmt.Sprintf(format, args...)}
}

// LoanMismatch creates a loan mismatch error with a formatted message.
func LoanMismatch(format string, args ...any) *Error {
	return &Error{Code: CodeLoanMismatch, Message: fmt.Sprintf(format, args...)}
}

// Internal creates an internal error with a formatted message.
func Internal(format string, args ...any) *Error {
	return &Error{Code: CodeInternal, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with a code and message.
func Wrap(err error, code Code, msg string) *Error {
	return &Error{Code: code, Message: msg, cause: err}
}
