package dt

import "fmt"

// Element is the underlying component of a list, provided by the
// Pop operations and the Front/Back accesses in the list. You can use
// the methods on this objects to iterate through the list, and the
// Ok() method for validating zero-valued items.
//
// An element is a member of at most one list at a time. Elements do
// not hold a reference to their list, which makes splicing and
// cutting runs of elements constant time operations.
type Element[T any] struct {
	next *Element[T]
	prev *Element[T]
	ok   bool
	item T
}

// NewElement produces an unattached Element that you can use with
// Append. Element.Append(NewElement()) is essentially the same as
// List.PushBack().
func NewElement[T any](val T) *Element[T] { return &Element[T]{item: val, ok: true} }

// String returns the string form of the value of the element.
func (e *Element[T]) String() string { return fmt.Sprint(e.Value()) }

// Value accesses the element's value. Nil and released elements
// return the zero value.
func (e *Element[T]) Value() (out T) {
	if e != nil {
		out = e.item
	}
	return
}

// Next produces the next element. This is always non-nil, *unless*
// the element is not a member of a list. At the ends of a list, the
// value is non-nil, but would return false for Ok.
func (e *Element[T]) Next() *Element[T] { return e.next }

// Previous produces the previous element. This is always non-nil,
// *unless* the element is not a member of a list. At the ends of a
// list, the value is non-nil, but would return false for Ok.
func (e *Element[T]) Previous() *Element[T] { return e.prev }

// Ok checks that an element is valid. Invalid elements are the list's
// sentinel (produced at the ends of iterations,) released elements,
// and nil elements, which the Pop operations return for empty lists.
func (e *Element[T]) Ok() bool { return e != nil && e.ok }

// IsDetached reports whether the element is not a member of any
// list. Nil elements are detached.
func (e *Element[T]) IsDetached() bool { return e == nil || (e.next == nil && e.prev == nil) }

// Set allows you to change set the value of an item in place. Returns
// true if the operation is successful. The operation fails if the
// Element is nil, a list's sentinel, or has been released.
func (e *Element[T]) Set(v T) bool {
	if e.Ok() {
		e.item = v
		return true
	}

	return false
}

// Append adds the element 'val' after the element 'e', inserting it
// in the next position in the list, and returns 'val'. Will return
// 'e' if 'val' is not valid for insertion (e.g. it is nil, released,
// or already a member of a list,) or if 'e' is not a member of a
// list. PushBack and PushFront, are implemented in terms of Append.
func (e *Element[T]) Append(val *Element[T]) *Element[T] {
	if e.appendable(val) {
		val.link(e)
		return val
	}

	return e
}

// Push adds a value to the list, after the element, and returns the
// resulting element.
func (e *Element[T]) Push(v T) *Element[T] { return e.Append(NewElement(v)) }

// Remove removes the element from the list, returning true if the
// operation was successful. Remove returns false when the element is
// not valid to be removed (e.g. is not part of a list, is the
// sentinel of a list, etc.) Removed elements retain their value.
func (e *Element[T]) Remove() bool {
	if e.removable() {
		e.unlink()
		return true
	}

	return false
}

// Drop wraps remove, and additionally, if the remove was successful,
// releases the value.
func (e *Element[T]) Drop() {
	if e.Remove() {
		e.Release()
	}
}

// Release drops the value held by a detached element, after which
// the element reports Ok() false and cannot be inserted into a
// list. Release returns false if the element is nil, still a member
// of a list, or was already released, so a value is only ever
// released once.
func (e *Element[T]) Release() bool {
	if !e.Ok() || !e.IsDetached() {
		return false
	}

	e.item = e.zero()
	e.ok = false
	return true
}

func (*Element[T]) zero() (o T) { return }

// MoveAfter relocates the element so that it immediately follows the
// anchor, which may be in the same or another list (including the
// sentinel of a list, as returned by List.Sentinel). Returns false if
// either element is not a member of a list or they are the same
// element.
func (e *Element[T]) MoveAfter(anchor *Element[T]) bool {
	if !e.removable() || anchor.IsDetached() || e == anchor {
		return false
	}

	if anchor.next != e {
		e.unlink()
		e.link(anchor)
	}
	return true
}

// Swap exchanges the location of two elements, returning true if the
// operation was successful, and false if the elements are not
// eligible to be swapped. The elements may be adjacent or in
// different lists. Swap will not operate if either element is nil,
// a sentinel, detached, or if both are the same element.
func (e *Element[T]) Swap(with *Element[T]) bool {
	if !e.removable() || !with.removable() || e == with {
		return false
	}

	switch {
	case e.next == with:
		e.unlink()
		e.link(with)
	case with.next == e:
		with.unlink()
		with.link(e)
	default:
		eprev, wprev := e.prev, with.prev
		e.unlink()
		e.link(wprev)
		with.unlink()
		with.link(eprev)
	}

	return true
}

// Splice moves every element of the input list to the position
// immediately after 'e', preserving their order, and leaves the
// input list empty. The operation takes constant time. Splice
// returns false if 'e' is not a member of a list or if the input is
// the list that 'e' anchors.
func (e *Element[T]) Splice(input *List[T]) bool {
	if e.IsDetached() || input == nil || (input.head == e) {
		return false
	}
	if input.IsEmpty() {
		return true
	}

	root := input.root()
	first, last := root.next, root.prev
	root.next, root.prev = root, root

	first.prev = e
	last.next = e.next
	e.next.prev = last
	e.next = first
	return true
}

func (e *Element[T]) appendable(val *Element[T]) bool {
	return val.Ok() && val.IsDetached() && !e.IsDetached()
}

func (e *Element[T]) removable() bool { return e.Ok() && !e.IsDetached() }

// link inserts e after at.
func (e *Element[T]) link(at *Element[T]) {
	e.prev = at
	e.next = at.next
	at.next.prev = e
	at.next = e
}

func (e *Element[T]) unlink() {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.next = nil
	e.prev = nil
}
