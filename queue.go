// Package queue provides a queue of strings built on a circular,
// sentinel-anchored doubly linked list, along with a family of
// in-place structural algorithms: middle and duplicate deletion,
// pairwise swaps, full and grouped reversal, merge sort, monotonic
// filtering, and the merge of several sorted queues into one.
//
// Every operation relinks existing elements; none of them copy
// values into auxiliary storage. Queues are not safe for concurrent
// use: a queue and its elements must be mutated by one goroutine at
// a time.
//
// Invalid arguments, such as nil queues or (for removal and middle
// deletion) empty queues, are reported through the return value of
// each operation (false, nil, or zero) and never by panicking.
package queue

import (
	"fmt"
	"iter"
	"strings"

	"github.com/tychoish/queue/dt"
)

// Element is a single value in a queue. Elements returned by the
// Remove operations are detached, and belong to the caller, who
// should either Release them or reinsert them with PushElementHead
// or PushElementTail.
type Element = dt.Element[string]

// Queue is a list of strings. The zero value is an empty queue ready
// for use.
type Queue struct {
	list dt.List[string]
}

// New returns an empty queue.
func New() *Queue { return &Queue{} }

// Free removes and releases every element in the queue, leaving it
// empty. Free is a no-op for nil queues.
func (q *Queue) Free() {
	if q == nil {
		return
	}

	for e := q.list.PopFront(); e.Ok(); e = q.list.PopFront() {
		e.Release()
	}
}

// InsertHead adds a copy of the value to the front of the queue,
// returning false if the queue is nil.
func (q *Queue) InsertHead(s string) bool {
	if q == nil {
		return false
	}

	q.list.PushFront(strings.Clone(s))
	return true
}

// InsertTail adds a copy of the value to the back of the queue,
// returning false if the queue is nil.
func (q *Queue) InsertTail(s string) bool {
	if q == nil {
		return false
	}

	q.list.PushBack(strings.Clone(s))
	return true
}

// RemoveHead detaches the first element of the queue and returns
// it. RemoveHead returns nil if the queue is nil or empty.
//
// When buf is not empty, the value is also copied into it as a
// zero-terminated byte string: at most len(buf)-1 bytes of the
// value are copied, the remainder of buf is zeroed, and longer
// values are silently truncated.
func (q *Queue) RemoveHead(buf []byte) *Element {
	if q == nil {
		return nil
	}

	return detach(q.list.PopFront(), buf)
}

// RemoveTail detaches the last element of the queue and returns it,
// with the same semantics as RemoveHead.
func (q *Queue) RemoveTail(buf []byte) *Element {
	if q == nil {
		return nil
	}

	return detach(q.list.PopBack(), buf)
}

// PushElementHead reinserts a detached element at the front of the
// queue. It returns false if the queue is nil, or if the element is
// nil, released, or a member of a list.
func (q *Queue) PushElementHead(e *Element) bool {
	return q != nil && q.list.Sentinel().Append(e) == e
}

// PushElementTail reinserts a detached element at the back of the
// queue, as PushElementHead.
func (q *Queue) PushElementTail(e *Element) bool {
	return q != nil && q.list.Back().Append(e) == e
}

// Size counts the elements in the queue by traversal. Nil queues
// have a size of zero.
func (q *Queue) Size() int {
	if q == nil {
		return 0
	}

	return q.list.Len()
}

// Values returns the values in the queue, from front to back.
func (q *Queue) Values() []string {
	if q == nil {
		return []string{}
	}

	return q.list.Slice()
}

// Seq returns an iterator over the values in the queue, from front
// to back.
func (q *Queue) Seq() iter.Seq[string] {
	if q == nil {
		return func(func(string) bool) {}
	}

	return q.list.Seq()
}

// String renders the values of the queue.
func (q *Queue) String() string { return fmt.Sprint(q.Values()) }

func detach(e *Element, buf []byte) *Element {
	if e == nil {
		return nil
	}

	copyTerminated(buf, e.Value())
	return e
}

func copyTerminated(buf []byte, value string) {
	if len(buf) == 0 {
		return
	}

	n := copy(buf[:len(buf)-1], value)
	clear(buf[n:])
}
