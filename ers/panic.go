package ers

import "fmt"

// ParsePanic converts the value returned by recover() into an error
// rooted in ErrRecoveredPanic. Errors keep their identity, strings
// become Error values, and anything else is formatted with its
// type. ParsePanic returns nil when nothing was recovered.
func ParsePanic(r any) error {
	var cause error
	switch val := r.(type) {
	case nil:
		return nil
	case error:
		cause = val
	case string:
		cause = Error(val)
	default:
		cause = fmt.Errorf("[%T]: %v", val, val)
	}

	return Join(cause, ErrRecoveredPanic)
}

// WithRecoverCall calls fn, and converts a panic inside it into an
// error.
func WithRecoverCall(fn func()) error {
	_, err := WithRecoverDo(func() struct{} { fn(); return struct{}{} })
	return err
}

// WithRecoverDo calls fn and returns its result, converting a panic
// inside it into an error.
func WithRecoverDo[T any](fn func() T) (out T, err error) {
	defer func() { err = ParsePanic(recover()) }()
	out = fn()
	return
}
