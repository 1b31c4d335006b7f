package ers

import (
	"bytes"
	"errors"
)

// Stack represents the error type returned by Join and by the
// erc.Collector when it has more than one error. The implementation
// provides support for errors.Is and errors.As, and provides an
// Unwind() method which returns a slice of the constituent errors for
// additional use.
type Stack struct {
	err   error
	next  *Stack
	count int
}

// Join takes a slice of errors and converts it into an *ers.Stack
// typed error. Nil errors are ignored, a single error is returned
// as is, and no errors produce a nil error.
func Join(errs ...error) error {
	s := &Stack{}
	s.Add(errs...)

	switch s.count {
	case 0:
		return nil
	case 1:
		return s.err
	default:
		return s
	}
}

// Len returns the number of errors in the stack.
func (e *Stack) Len() int {
	if e == nil {
		return 0
	}
	return e.count
}

// Push adds an error to the stack. Stacks and errors that unwrap to
// slices of errors are flattened; nil errors are ignored.
func (e *Stack) Push(err error) {
	switch werr := err.(type) {
	case nil:
		return
	case *Stack:
		errs := werr.Unwind()
		for idx := len(errs) - 1; idx >= 0; idx-- {
			e.Push(errs[idx])
		}
	case interface{ Unwrap() []error }:
		for _, err := range werr.Unwrap() {
			e.Push(err)
		}
	default:
		if e.count > 0 {
			e.next = &Stack{next: e.next, err: e.err, count: e.count}
		}
		e.err = err
		e.count++
	}
}

// Add pushes all of the errors onto the stack.
func (e *Stack) Add(errs ...error) {
	for _, err := range errs {
		e.Push(err)
	}
}

// Error produces the aggregated error strings from this method,
// oldest first.
func (e *Stack) Error() string {
	if e.Len() == 0 {
		return "<nil>"
	}

	buf := &bytes.Buffer{}
	errs := e.Unwind()
	for idx := len(errs) - 1; idx >= 0; idx-- {
		if buf.Len() > 0 {
			buf.WriteString("; ")
		}
		buf.WriteString(errs[idx].Error())
	}

	return buf.String()
}

// Is reports if any of the errors in the stack match the target.
func (e *Stack) Is(target error) bool {
	for iter := e; iter != nil && iter.err != nil; iter = iter.next {
		if errors.Is(iter.err, target) {
			return true
		}
	}
	return false
}

// As calls errors.As on the errors in the stack, most recent first.
func (e *Stack) As(target any) bool {
	for iter := e; iter != nil && iter.err != nil; iter = iter.next {
		if errors.As(iter.err, target) {
			return true
		}
	}
	return false
}

// Unwind returns the errors in the stack, most recently added first.
func (e *Stack) Unwind() []error {
	out := make([]error, 0, e.Len())
	for iter := e; iter != nil && iter.err != nil; iter = iter.next {
		out = append(out, iter.err)
	}
	return out
}
