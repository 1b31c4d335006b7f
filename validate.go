package queue

import (
	"unsafe"

	"github.com/tychoish/queue/erc"
	"github.com/tychoish/queue/ers"
)

// ErrNilQueue is returned by the validation methods for nil queues
// and contexts.
const ErrNilQueue ers.Error = ers.Error("nil queue")

// Validate walks the queue and reports every structural problem it
// finds: broken neighbor links, a list that does not return to its
// sentinel, linked elements that have been released, and pairs of
// elements whose values share storage. Each problem is reported as
// an error that wraps ers.ErrInvariantViolation. Validate returns
// nil for a consistent queue.
func (q *Queue) Validate() error {
	if q == nil {
		return ErrNilQueue
	}

	ec := &erc.Collector{}
	root := q.list.Sentinel()
	seen := map[*Element]int{}
	storage := map[*byte]int{}

	pos := 0
	for e := root.Next(); e != root; e = e.Next() {
		if e == nil {
			erc.Whenf(ec, true, "position %d: missing next link", pos)
			break
		}
		if prev, ok := seen[e]; ok {
			erc.Whenf(ec, true, "position %d: revisits position %d before the sentinel", pos, prev)
			break
		}
		seen[e] = pos

		erc.Whenf(ec, !e.Ok(), "position %d: released element is linked", pos)
		erc.Whenf(ec, e.Next() == nil || e.Next().Previous() != e, "position %d: next element does not link back", pos)
		erc.Whenf(ec, e.Previous() == nil || e.Previous().Next() != e, "position %d: previous element does not link forward", pos)

		if value := e.Value(); len(value) > 0 {
			ptr := unsafe.StringData(value)
			if other, ok := storage[ptr]; ok {
				erc.Whenf(ec, true, "positions %d and %d share value storage", other, pos)
			} else {
				storage[ptr] = pos
			}
		}

		pos++
	}

	erc.When(ec, root.Previous() == nil || root.Previous().Next() != root, "sentinel's previous element does not link forward")

	return ec.Resolve()
}

// Validate checks the context's queue, as Queue.Validate, and that
// the cached size matches the number of elements in the queue.
func (c *Context) Validate() error {
	if c == nil || c.queue == nil {
		return ErrNilQueue
	}

	ec := &erc.Collector{}
	ec.Add(c.queue.Validate())

	size := c.queue.Size()
	erc.Whenf(ec, c.size != size, "context %d: cached size %d, found %d elements", c.ID, c.size, size)

	return ec.Resolve()
}

// Validate checks every context in the chain.
func (c *Chain) Validate() error {
	if c == nil {
		return ErrNilQueue
	}

	ec := &erc.Collector{}
	for ctx := range c.Contexts() {
		ec.Add(ctx.Validate())
	}

	return ec.Resolve()
}
