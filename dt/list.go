package dt

import (
	"iter"

	"github.com/tychoish/queue/ers"
)

// List provides a circular doubly linked list anchored by a sentinel
// element. Callers are responsible for their own concurrency control
// and bounds checking, and should generally use with the same care
// as a slice.
//
// The list does not track its length: Len is a linear traversal, so
// that moving runs of elements between lists (Extend, Splice, Cut)
// remains a constant time operation. Calling methods on a nil list
// panics with ErrUninitializedContainer; the zero value is an empty
// list.
type List[T any] struct {
	head *Element[T]
}

// NewList constructs a list containing the provided items, in order.
func NewList[T any](items ...T) *List[T] {
	out := &List[T]{}
	out.Append(items...)
	return out
}

// Append adds a variadic sequence of items to the end of the list.
func (l *List[T]) Append(items ...T) {
	for idx := range items {
		l.PushBack(items[idx])
	}
}

// Len returns the length of the list, by traversing it. Nil lists
// have a length of zero.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}

	count := 0
	for e := l.Front(); e.Ok(); e = e.Next() {
		count++
	}
	return count
}

// IsEmpty reports whether the list has no elements: that is, if the
// sentinel links only to itself. Nil lists are empty.
func (l *List[T]) IsEmpty() bool {
	if l == nil {
		return true
	}

	root := l.root()
	return root.next == root && root.prev == root
}

// IsSingular reports whether the list has exactly one element.
func (l *List[T]) IsSingular() bool { return !l.IsEmpty() && l.Front() == l.Back() }

// PushFront creates an element and prepends it to the list,
// returning the new element.
func (l *List[T]) PushFront(it T) *Element[T] { return l.root().Push(it) }

// PushBack creates an element and appends it to the list, returning
// the new element.
func (l *List[T]) PushBack(it T) *Element[T] { return l.Back().Push(it) }

// PopFront removes the first element from the list. If the list is
// empty, this returns a nil element, that will report an Ok() false
// You can use this element to produce a C-style iterator over
// the list, that removes items during the iteration:
//
//	for e := list.PopFront(); e.Ok(); e = list.PopFront() {
//		// do work
//	}
func (l *List[T]) PopFront() *Element[T] { return l.pop(l.root().next) }

// PopBack removes the last element from the list. If the list is
// empty, this returns a nil element, that will report an Ok() false.
func (l *List[T]) PopBack() *Element[T] { return l.pop(l.root().prev) }

// Front returns a pointer to the first element of the list. If the
// list is empty, this is the sentinel of the list, which reports
// Ok() false. The operation is non-destructive. You can use this
// pointer to begin a c-style iteration over the list:
//
//	for e := list.Front(); e.Ok(); e = e.Next() {
//	       // operate
//	}
func (l *List[T]) Front() *Element[T] { return l.root().next }

// Back returns a pointer to the last element of the list. If the
// list is empty, this is the sentinel of the list.
//
//	for e := list.Back(); e.Ok(); e = e.Previous() {
//	       // operate
//	}
func (l *List[T]) Back() *Element[T] { return l.root().prev }

// Sentinel returns the list's sentinel element, which is never Ok()
// and never holds a value, for use as an anchor for Append, Splice and
// MoveAfter when inserting at the front of the list.
func (l *List[T]) Sentinel() *Element[T] { return l.root() }

// Extend removes every element from the input list and appends them
// to the end (back) of the current list, in constant time.
func (l *List[T]) Extend(input *List[T]) {
	if input == nil || input == l {
		return
	}
	l.Back().Splice(input)
}

// Cut extracts the contiguous run of elements from first through
// last (inclusive) out of the list that contains them, and returns a
// new list holding the run in its original order. The operation takes
// constant time and relies on the caller to ensure that first and
// last belong to the same list and that last does not precede
// first. Cut returns nil if either element is not an Ok() member of a
// list.
func Cut[T any](first, last *Element[T]) *List[T] {
	if !first.removable() || !last.removable() {
		return nil
	}

	out := &List[T]{}
	root := out.root()

	before, after := first.prev, last.next
	before.next = after
	after.prev = before

	first.prev = root
	last.next = root
	root.next = first
	root.prev = last

	return out
}

// Seq returns a native go iterator function for the items in a
// list, from front to back.
func (l *List[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := l.Front(); e.Ok(); e = e.Next() {
			if !yield(e.Value()) {
				return
			}
		}
	}
}

// Elements returns an iterator over the elements of the list from
// front to back. The iterator captures the following element before
// yielding, so the yielded element may be removed or moved during
// iteration.
func (l *List[T]) Elements() iter.Seq[*Element[T]] {
	return func(yield func(*Element[T]) bool) {
		for e, next := l.Front(), l.Front().Next(); e.Ok(); e, next = next, next.Next() {
			if !yield(e) {
				return
			}
		}
	}
}

// ElementsReverse returns an iterator over the elements of the list
// from back to front, with the same removal guarantees as Elements.
func (l *List[T]) ElementsReverse() iter.Seq[*Element[T]] {
	return func(yield func(*Element[T]) bool) {
		for e, prev := l.Back(), l.Back().Previous(); e.Ok(); e, prev = prev, prev.Previous() {
			if !yield(e) {
				return
			}
		}
	}
}

// Slice exports the contents of the list to a slice.
func (l *List[T]) Slice() []T {
	out := []T{}
	if l == nil {
		return out
	}
	for e := l.Front(); e.Ok(); e = e.Next() {
		out = append(out, e.Value())
	}
	return out
}

// Copy duplicates the list. The element objects in the list are
// distinct, though if the Values are themselves references, the
// values of both lists would be shared.
func (l *List[T]) Copy() *List[T] {
	out := &List[T]{}
	for e := l.Front(); e.Ok(); e = e.Next() {
		out.PushBack(e.Value())
	}
	return out
}

func (l *List[T]) root() *Element[T] {
	if l == nil {
		panic(ers.Join(ErrUninitializedContainer, ers.ErrInvariantViolation))
	}

	if l.head == nil {
		l.uncheckedSetup()
	}

	return l.head
}

func (l *List[T]) uncheckedSetup() {
	l.head = &Element[T]{}
	l.head.next = l.head
	l.head.prev = l.head
}

func (l *List[T]) pop(it *Element[T]) *Element[T] {
	if !it.Ok() {
		return nil
	}

	it.unlink()
	return it
}
