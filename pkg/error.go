package pkg

// Sentinel errors for the arprof packages.
// These errors can be tested using errors.Is for reliable error checking.

import (
	"fmt"
	"slices"
	"strings"
)

// Error represents a chain of errors.
type Error []error

// ErrReadInput is returned when reading input fails.
//
// This error should be wrapped with the underlying I/O error
// to preserve the error chain.
var ErrReadInput = MakeErrorf("failed to read input")

// ErrFilterCompile is returned when a report filter expression does not
// compile.
//
// This error should be wrapped with the compiler error, which carries the
// offending position within the expression.
var ErrFilterCompile = MakeErrorf("invalid filter expression")

// ErrFilterResult is returned when a report filter expression evaluates to
// something other than a boolean.
var ErrFilterResult = MakeErrorf("filter expression must evaluate to bool")

// ErrConfigParse is returned when a configuration file cannot be decoded.
//
// This error should be wrapped with the decoder error and the file path.
var ErrConfigParse = MakeErrorf("configuration parse error")

// MakeError constructs an Error from the given errors.
// The errors are stored in the order they are provided:
// the first argument is the innermost error in the chain.
// Nil is returned if no errors are provided.
func MakeError(errs ...error) Error {
	var e Error

	for _, err := range errs {
		if err != nil {
			e = append(e, UnwrapErrors(err)...)
		}
	}

	return e
}

// MakeErrorf constructs an Error from a formatted error message.
func MakeErrorf(format string, args ...any) Error {
	return MakeError(fmt.Errorf(format, args...))
}

// Error returns a concatenated string representation of all errors
// in the error chain, separated by ": ", from innermost to outermost.
func (e Error) Error() string {
	var sb strings.Builder

	for i, err := range slices.All(e) {
		if i > 0 {
			sb.WriteString(": ")
		}

		sb.WriteString(err.Error())
	}

	return sb.String()
}

// Wrap appends one or more errors to the receiver and returns the result.
func (e Error) Wrap(err ...error) Error {
	return append(e, err...)
}

// Wrapf appends a formatted error to the receiver and returns the result.
func (e Error) Wrapf(format string, args ...any) Error {
	return append(e, fmt.Errorf(format, args...))
}

// Is reports whether every error in target also appears in the receiver, so
// that a sentinel matches any chain built from it with [Error.Wrap] or
// [Error.Wrapf].
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	if !ok || len(t) == 0 {
		return false
	}

	for _, want := range t {
		if !slices.ContainsFunc(e, func(err error) bool {
			return sameError(err, want)
		}) {
			return false
		}
	}

	return true
}

// sameError compares two chain elements by identity.
// Nested chains are slices and never compare equal.
func sameError(a, b error) bool {
	if _, ok := a.(Error); ok {
		return false
	}

	if _, ok := b.(Error); ok {
		return false
	}

	return a == b
}

// Unwrap returns the slice of errors contained in the receiver.
func (e Error) Unwrap() []error {
	return e
}

// UnwrapErrors recursively unwraps an error chain and returns a slice
// containing all errors in the chain, starting from the innermost error.
func UnwrapErrors(err error) Error {
	if err == nil {
		return nil
	}

	chain := Error{}

	if e, ok := err.(interface{ Unwrap() []error }); ok {
		for _, wrapped := range e.Unwrap() {
			chain = append(chain, UnwrapErrors(wrapped)...)
		}
	} else if e, ok := err.(interface{ Unwrap() error }); ok {
		chain = append(chain, UnwrapErrors(e.Unwrap())...)
	}

	return append(chain, err)
}
