// Package errors wraps the standard library errors with annotations that
// carry structured logging attributes alongside the error message.
package errors

import (
	"errors"
	"log/slog"
)

// annotatedError is an error with a message, optional slog attributes, and an
// optional wrapped cause.
type annotatedError struct {
	msg     string
	attrs   []slog.Attr
	wrapped error
}

// New creates an error annotated with the given slog attributes.
func New(msg string, attrs ...slog.Attr) error {
	return &annotatedError{msg: msg, attrs: attrs, wrapped: nil}
}

// NewSentinel creates a plain error meant to be compared with Is. Sentinels
// carry no attributes and unwrap to nil.
func NewSentinel(msg string) error {
	return &annotatedError{msg: msg, attrs: nil, wrapped: nil}
}

// Wrap annotates err with a message and optional slog attributes. The
// resulting message reads "msg: err".
func Wrap(err error, msg string, attrs ...slog.Attr) error {
	return &annotatedError{msg: msg, attrs: attrs, wrapped: err}
}

func (e *annotatedError) Error() string {
	if e.wrapped != nil {
		return e.msg + ": " + e.wrapped.Error()
	}
	return e.msg
}

func (e *annotatedError) Unwrap() error {
	return e.wrapped
}

// SlogError collects the messages and annotations along the error chain into
// a single attribute suitable for logging.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.Attr{Key: "error", Value: slog.StringValue("<nil>")}
	}
	var annotations []any
	for unwrapped := err; unwrapped != nil; unwrapped = errors.Unwrap(unwrapped) {
		if annotated, ok := unwrapped.(*annotatedError); ok {
			for _, attr := range annotated.attrs {
				annotations = append(annotations, attr)
			}
		}
	}
	group := []any{slog.String("message", err.Error())}
	if len(annotations) > 0 {
		group = append(group, slog.Group("annotations", annotations...))
	}
	return slog.Group("error", group...)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err, if any.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// Join aggregates the given errors, discarding nils.
func Join(errs ...error) error {
	return errors.Join(errs...)
}
