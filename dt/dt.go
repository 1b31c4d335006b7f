// Package dt provides a circular, sentinel-anchored, doubly linked
// list and the in-place algorithms (splice, cut, merge sort) that
// operate on it.
//
// Lists can be trivially constructed from their zero value. They are
// not safe for access from multiple concurrent goroutines: callers
// that share a list must provide their own mutual exclusion.
package dt

import "github.com/tychoish/queue/ers"

// ErrUninitializedContainer is the content of the panic produced when you
// attempt to perform an operation on a nil list.
const ErrUninitializedContainer ers.Error = ers.Error("uninitialized container")
