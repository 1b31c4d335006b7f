package queue_test

import (
	"testing"

	"github.com/tychoish/queue"
	"github.com/tychoish/queue/assert"
	"github.com/tychoish/queue/ers"
)

func TestValidate(t *testing.T) {
	t.Run("Consistent", func(t *testing.T) {
		q := makeQueue(t, "a", "b", "a", "", "")
		assert.NotError(t, q.Validate())
	})
	t.Run("SharedStorage", func(t *testing.T) {
		q := makeQueue(t, "shared", "other")
		e := q.RemoveTail(nil)
		assert.True(t, e.Set(q.Values()[0]))
		assert.True(t, q.PushElementTail(e))

		err := q.Validate()
		assert.Error(t, err)
		assert.ErrorIs(t, err, ers.ErrInvariantViolation)
		assert.Substring(t, err.Error(), "positions 0 and 1 share value storage")

		// equal values in separate storage are fine
		assert.True(t, e.Set("shared"))
		assert.NotError(t, q.Validate())
	})
	t.Run("StaleContext", func(t *testing.T) {
		chain := queue.NewChain()
		ctx := chain.Add(makeQueue(t, "a", "b"))
		assert.NotError(t, ctx.Validate())

		ctx.Queue().InsertHead("c")
		err := ctx.Validate()
		assert.ErrorIs(t, err, ers.ErrInvariantViolation)
		assert.Substring(t, err.Error(), "cached size 2, found 3 elements")
		assert.ErrorIs(t, chain.Validate(), ers.ErrInvariantViolation)

		ctx.Refresh()
		assert.NotError(t, ctx.Validate())
		assert.NotError(t, chain.Validate())
	})
	t.Run("AfterEveryOperation", func(t *testing.T) {
		q := makeQueue(t, "d", "b", "b", "a", "e", "c", "c", "f")
		for _, op := range []func(){
			func() { q.Sort(false) },
			func() { q.Swap() },
			func() { q.ReverseK(3) },
			func() { q.Reverse() },
			func() { q.DeleteMid() },
			func() { q.Sort(true) },
			func() { q.DeleteDup() },
			func() { q.Ascend() },
			func() { q.Free() },
		} {
			op()
			assert.NotError(t, q.Validate())
		}
		assert.Equal(t, q.Size(), 0)
	})
}
