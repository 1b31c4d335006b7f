package queue

import (
	"iter"

	"github.com/tychoish/queue/dt"
	"github.com/tychoish/queue/dt/cmp"
)

// Context pairs a queue with a cached element count, for use in a
// Chain of queues that will be merged together. The cached size is
// recorded when the queue is added to a chain and is maintained by
// Merge; operations performed directly on the queue do not update
// it, use Refresh to recount.
type Context struct {
	ID    int
	queue *Queue
	size  int
}

// Queue returns the context's queue.
func (c *Context) Queue() *Queue {
	if c == nil {
		return nil
	}
	return c.queue
}

// Size returns the cached element count.
func (c *Context) Size() int {
	if c == nil {
		return 0
	}
	return c.size
}

// Refresh recounts the queue's elements, updates the cached size,
// and returns it.
func (c *Context) Refresh() int {
	if c == nil {
		return 0
	}
	c.size = c.queue.Size()
	return c.size
}

// Chain links together the contexts of several queues. The zero
// value is an empty chain.
type Chain struct {
	contexts dt.List[*Context]
	nextID   int
}

// NewChain returns an empty chain.
func NewChain() *Chain { return &Chain{} }

// Add appends a queue to the chain, caching its current size, and
// returns the new context. Contexts are numbered in the order they
// are added, starting at zero. A nil queue is replaced with a new
// empty queue. Add returns nil for nil chains.
func (c *Chain) Add(q *Queue) *Context {
	if c == nil {
		return nil
	}
	if q == nil {
		q = New()
	}

	ctx := &Context{ID: c.nextID, queue: q, size: q.Size()}
	c.nextID++
	c.contexts.PushBack(ctx)
	return ctx
}

// Len returns the number of contexts in the chain.
func (c *Chain) Len() int {
	if c == nil {
		return 0
	}
	return c.contexts.Len()
}

// Front returns the first context in the chain, or nil if the chain
// is nil or empty.
func (c *Chain) Front() *Context {
	if c == nil {
		return nil
	}
	return c.contexts.Front().Value()
}

// Contexts returns an iterator over the contexts in the chain, in the
// order they were added.
func (c *Chain) Contexts() iter.Seq[*Context] {
	if c == nil {
		return func(func(*Context) bool) {}
	}
	return c.contexts.Seq()
}

// Merge combines the queues of every context in the chain, each of
// which must already be sorted in the requested direction, into the
// queue of the first context, and returns the combined size. The
// elements are moved, so every other queue is left empty, and the
// cached size of every other context is reset to zero. The queues are
// folded into the first one pairwise, with the first queue taking
// the destination side of dt.Merge.
//
// Merge returns zero for nil or empty chains. A queue that appears in
// the chain more than once is merged only once.
func Merge(chain *Chain, descend bool) int {
	first := chain.Front()
	if first == nil {
		return 0
	}

	dir := cmp.DirectionOf(descend)
	for ctx := range chain.Contexts() {
		if ctx == first {
			continue
		}
		if ctx.queue != first.queue {
			dt.Merge(&first.queue.list, &ctx.queue.list, lessThan, dir)
			ctx.size = 0
		}
	}

	return first.Refresh()
}
