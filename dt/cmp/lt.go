// Package cmp provides comparators and sort directions for ordering
// linked lists.
package cmp

// OrderableNative describes all native types which (currently) support the
// < operator. To order custom types, use the Orderable interface.
type OrderableNative interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64 | ~string
}

// Orderable allows users to define a method on their types which
// implement a method to provide a LessThan operation.
type Orderable[T any] interface{ LessThan(T) bool }

// LessThan describes a strict less than operation, typically provided
// by one of the following operations.
type LessThan[T any] func(a, b T) bool

// LessThanNative provides a wrapper around the < operator for types
// that support it, and can be used for sorting lists of compatible
// types. For strings this is a bytewise lexicographic comparison.
func LessThanNative[T OrderableNative](a, b T) bool { return a < b }

// LessThanCustom converts types that implement Orderable
// interface.
func LessThanCustom[T Orderable[T]](a, b T) bool { return a.LessThan(b) }

// Reverse wraps an existing LessThan operator and reverses it's
// direction: the result reports whether a is strictly greater than b.
func Reverse[T any](fn LessThan[T]) LessThan[T] { return func(a, b T) bool { return fn(b, a) } }

// Equal reports whether neither value is less than the other.
func Equal[T any](fn LessThan[T], a, b T) bool { return !fn(a, b) && !fn(b, a) }

// Direction selects the order produced by sorting and merging
// operations.
type Direction int

const (
	// Ascending orders from lowest to highest.
	Ascending Direction = iota
	// Descending orders from highest to lowest.
	Descending
)

// DirectionOf converts a "descend" flag into a Direction.
func DirectionOf(descend bool) Direction {
	if descend {
		return Descending
	}
	return Ascending
}

// IsDescending reports whether the direction is Descending.
func (d Direction) IsDescending() bool { return d == Descending }

// String returns the name of the direction.
func (d Direction) String() string {
	switch d {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return "invalid"
	}
}

// InOrder reports whether a may precede b in a sequence ordered in
// this direction: equal values are always in order.
func InOrder[T any](d Direction, fn LessThan[T], a, b T) bool {
	if d.IsDescending() {
		return !fn(a, b)
	}
	return !fn(b, a)
}
