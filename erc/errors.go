// Package erc provides a simple/fast error aggregation tool for
// collecting and aggregating errors. The tools are compatible with
// go's native error wrapping, and are safe for use from multiple
// goroutines.
package erc

import (
	"sync"

	"github.com/tychoish/queue/ers"
)

// Collector aggregates errors which can be resolved as a single
// error. When more than one error is collected, the resolved error is
// an *ers.Stack, which can be introspected as needed. The zero value
// is ready for use.
type Collector struct {
	mu    sync.Mutex
	stack ers.Stack
}

// Add collects an error if that error is non-nil.
func (ec *Collector) Add(err error) {
	if err == nil {
		return
	}

	ec.mu.Lock()
	defer ec.mu.Unlock()
	ec.stack.Push(err)
}

// Len reports the number of errors collected.
func (ec *Collector) Len() int {
	ec.mu.Lock()
	defer ec.mu.Unlock()
	return ec.stack.Len()
}

// HasErrors returns true if there are any errors in the collector.
func (ec *Collector) HasErrors() bool { return ec.Len() > 0 }

// Ok returns true if there are no errors in the collector.
func (ec *Collector) Ok() bool { return ec.Len() == 0 }

// Resolve returns an error of type *ers.Stack, the only error
// collected, or nil if there have been no errors added.
func (ec *Collector) Resolve() error {
	ec.mu.Lock()
	defer ec.mu.Unlock()

	errs := ec.stack.Unwind()
	for i, j := 0, len(errs)-1; i < j; i, j = i+1, j-1 {
		errs[i], errs[j] = errs[j], errs[i]
	}

	return ers.Join(errs...)
}

// Recover calls the builtin recover() function and converts it to an
// error that is populated in the collector, for direct use in defers.
func (ec *Collector) Recover() { ec.Add(ers.ParsePanic(recover())) }

// Check executes a simple function and if it returns an error, adds
// it to the collector, primarily for use in defer statements.
func (ec *Collector) Check(fn func() error) { ec.Add(fn()) }

// When is a helper function, typically useful for improving the
// readability of validation code. If the condition is true, then When
// creates an invariant violation error from the string and adds it
// to the collector.
func When(ec *Collector, cond bool, val string) {
	if cond {
		ec.Add(ers.Wrap(ers.ErrInvariantViolation, val))
	}
}

// Whenf conditionally creates and adds an invariant violation error
// to the collector, as When, and with a format string.
func Whenf(ec *Collector, cond bool, tmpl string, args ...any) {
	if cond {
		ec.Add(ers.Wrapf(ers.ErrInvariantViolation, tmpl, args...))
	}
}
