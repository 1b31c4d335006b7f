// Package check provides the same assertions as the assert package,
// but failures are reported with t.Error rather than t.Fatal, so the
// test continues after a failed check.
package check

import (
	"errors"
	"testing"
)

// True causes a test to fail if the condition is false.
func True(t testing.TB, cond bool) {
	t.Helper()
	if !cond {
		t.Error("assertion failure")
	}
}

// Equal causes a test to fail if the two (comparable) values are not
// equal.
func Equal[T comparable](t testing.TB, valOne, valTwo T) {
	t.Helper()
	if valOne != valTwo {
		t.Errorf("values unequal: <%v> != <%v>", valOne, valTwo)
	}
}

// NotEqual causes a test to fail if two (comparable) values are
// equal.
func NotEqual[T comparable](t testing.TB, valOne, valTwo T) {
	t.Helper()
	if valOne == valTwo {
		t.Errorf("values equal: <%v>", valOne)
	}
}

// Zero fails a test if the value is not the zero-value for its type.
func Zero[T comparable](t testing.TB, val T) {
	t.Helper()
	var zero T
	if zero != val {
		t.Errorf("expected zero for value of type %T <%v>", val, val)
	}
}

// Error fails the test if the error is nil.
func Error(t testing.TB, err error) {
	t.Helper()
	if err == nil {
		t.Error("expected non-nil error")
	}
}

// NotError fails the test if the error is non-nil.
func NotError(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Error(err)
	}
}

// ErrorIs is an assertion form of errors.Is, and fails the test if
// the error (or its wrapped values) are not equal to the target
// error.
func ErrorIs(t testing.TB, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Errorf("error <%v>, is not <%v>", err, target)
	}
}

// EqualItems compares the values in two slices and fails the test
// if the slices differ in length or in any item.
func EqualItems[T comparable](t testing.TB, one, two []T) {
	t.Helper()
	if len(one) != len(two) {
		t.Errorf("slices are of different lengths [%d vs %d]: %v vs %v", len(one), len(two), one, two)
		return
	}

	for idx := range one {
		if one[idx] != two[idx] {
			t.Errorf("items at index %d [%v vs %v] are not equal", idx, one[idx], two[idx])
		}
	}
}
