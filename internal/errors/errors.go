// Package errors is the single import for error construction in prepmap.
// Sentinel values and tree inspection come from the standard library, while
// wrapping goes through pkg/errors so that logged failures carry a stack trace.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// New returns a plain sentinel-style error without a stack trace.
func New(text string) error {
	return stderrors.New(text)
}

// Errorf formats a new error and records the stack at the call site.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Join combines several errors into one.
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

// Wrap annotates err with a message and a stack trace. It returns nil for a nil err.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// Wrapf is Wrap with a format specifier.
func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack annotates err with a stack trace only.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// Cause unwraps pkg/errors annotations down to the root error.
//
//nolint:wrapcheck // passthrough keeps pkg/errors semantics.
func Cause(err error) error {
	return pkgerrors.Cause(err)
}
