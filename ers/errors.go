package ers

import (
	"errors"
	"fmt"
)

// As is a wrapper around errors.As to allow ers to be a drop in
// replacement for errors.
func As(err error, target any) bool { return errors.As(err, target) }

// Unwrap is a wrapper around errors.Unwrap to allow ers to be a drop in
// replacement for errors.
func Unwrap(err error) error { return errors.Unwrap(err) }

// Is returns true if the error is one of the target errors, (or one
// of it's constituent (wrapped) errors is a target error. ers.Is uses
// errors.Is.
func Is(err error, targets ...error) bool {
	for _, target := range targets {
		if err == nil && target != nil {
			continue
		}
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// Ok returns true when the error is nil, and false otherwise. It
// should always be inlined, and mostly exists for clarity at call
// sites in bool/Ok check relevant contexts.
func Ok(err error) bool {
	switch e := err.(type) {
	case nil:
		return true
	case interface{ Ok() bool }:
		return e.Ok()
	default:
		return false
	}
}

// IsError returns true when the error is non-nil. Provides the
// inverse of Ok().
func IsError(err error) bool { return !Ok(err) }

// When returns the error IF the conditional is true, and returns nil
// otherwise.
func When(cond bool, err error) error {
	if !cond {
		return nil
	}

	return err
}

// Whenf constructs an error (using fmt.Errorf) IF the conditional is
// true, and returns nil otherwise.
func Whenf(cond bool, tmpl string, args ...any) error {
	if !cond {
		return nil
	}

	return fmt.Errorf(tmpl, args...)
}

// Wrap produces a wrapped error if the err is non-nil, wrapping the
// error with the provided annotation. When the wrapped error is nil,
// Wrap returns nil.
func Wrap(err error, annotation string) error {
	if err == nil {
		return nil
	}

	return &wrapped{current: err, annotation: annotation}
}

// Wrapf produces a wrapped error, if the error is non-nil, with a
// formated wrap annotation. When the wrapped error is nil, Wrapf
// returns nil.
func Wrapf(err error, tmpl string, args ...any) error {
	if err == nil {
		return nil
	}

	return &wrapped{current: err, annotation: fmt.Sprintf(tmpl, args...)}
}

type wrapped struct {
	current    error
	annotation string
}

func (w *wrapped) Error() string { return fmt.Sprintf("%s: %v", w.annotation, w.current) }
func (w *wrapped) Unwrap() error { return w.current }
