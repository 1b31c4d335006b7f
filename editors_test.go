package queue_test

import (
	"fmt"
	"testing"

	"github.com/tychoish/queue"
	"github.com/tychoish/queue/assert"
	"github.com/tychoish/queue/assert/check"
)

func TestDeleteMid(t *testing.T) {
	for _, tt := range []struct {
		input  []string
		expect []string
	}{
		{input: []string{"A"}, expect: []string{}},
		{input: []string{"A", "B"}, expect: []string{"B"}},
		{input: []string{"A", "B", "C"}, expect: []string{"A", "C"}},
		{input: []string{"A", "B", "C", "D"}, expect: []string{"A", "C", "D"}},
		{input: []string{"A", "B", "C", "D", "E"}, expect: []string{"A", "B", "D", "E"}},
		{input: []string{"A", "B", "C", "D", "E", "F"}, expect: []string{"A", "B", "D", "E", "F"}},
	} {
		t.Run(fmt.Sprint("Length", len(tt.input)), func(t *testing.T) {
			q := makeQueue(t, tt.input...)
			assert.True(t, q.DeleteMid())
			assert.EqualItems(t, q.Values(), tt.expect)
			assert.NotError(t, q.Validate())
		})
	}
	t.Run("PositionRule", func(t *testing.T) {
		for n := 1; n <= 40; n++ {
			values := make([]string, n)
			for idx := range values {
				values[idx] = fmt.Sprintf("%03d", idx)
			}
			q := makeQueue(t, values...)
			assert.True(t, q.DeleteMid())

			removed := (n - 1) / 2
			expect := append(append([]string{}, values[:removed]...), values[removed+1:]...)
			check.EqualItems(t, q.Values(), expect)
		}
	})
	t.Run("Empty", func(t *testing.T) {
		q := queue.New()
		assert.True(t, !q.DeleteMid())
		assert.Equal(t, q.Size(), 0)
		assert.NotError(t, q.Validate())
	})
}

func TestDeleteDup(t *testing.T) {
	for _, tt := range []struct {
		name   string
		input  []string
		expect []string
	}{
		{name: "NoDuplicates", input: []string{"a", "b", "c"}, expect: []string{"a", "b", "c"}},
		{name: "Single", input: []string{"a"}, expect: []string{"a"}},
		{name: "Pair", input: []string{"a", "a"}, expect: []string{}},
		{name: "AllSame", input: []string{"a", "a", "a", "a"}, expect: []string{}},
		{name: "RunsRemovedEntirely", input: []string{"a", "a", "b", "c", "c", "c", "d"}, expect: []string{"b", "d"}},
		{name: "TrailingRun", input: []string{"a", "b", "b"}, expect: []string{"a"}},
		{name: "LeadingRun", input: []string{"a", "a", "b"}, expect: []string{"b"}},
		{name: "AdjacentRuns", input: []string{"a", "a", "b", "b"}, expect: []string{}},
		{name: "NonAdjacentKept", input: []string{"a", "b", "a"}, expect: []string{"a", "b", "a"}},
		{name: "EmptyStrings", input: []string{"", "", "x"}, expect: []string{"x"}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			q := makeQueue(t, tt.input...)
			assert.True(t, q.DeleteDup())
			assert.EqualItems(t, q.Values(), tt.expect)
			assert.NotError(t, q.Validate())
		})
	}
	t.Run("Empty", func(t *testing.T) {
		assert.True(t, !queue.New().DeleteDup())
	})
	t.Run("AfterSort", func(t *testing.T) {
		q := makeQueue(t, "d", "a", "c", "a", "b", "d")
		q.Sort(false)
		assert.True(t, q.DeleteDup())
		assert.EqualItems(t, q.Values(), []string{"b", "c"})
	})
}

func TestSwap(t *testing.T) {
	for _, tt := range []struct {
		input  []string
		expect []string
	}{
		{input: []string{}, expect: []string{}},
		{input: []string{"1"}, expect: []string{"1"}},
		{input: []string{"1", "2"}, expect: []string{"2", "1"}},
		{input: []string{"1", "2", "3"}, expect: []string{"2", "1", "3"}},
		{input: []string{"1", "2", "3", "4"}, expect: []string{"2", "1", "4", "3"}},
		{input: []string{"1", "2", "3", "4", "5"}, expect: []string{"2", "1", "4", "3", "5"}},
	} {
		t.Run(fmt.Sprint("Length", len(tt.input)), func(t *testing.T) {
			q := makeQueue(t, tt.input...)
			q.Swap()
			assert.EqualItems(t, q.Values(), tt.expect)
			assert.NotError(t, q.Validate())

			q.Swap()
			assert.EqualItems(t, q.Values(), tt.input)
		})
	}
}

func TestReverse(t *testing.T) {
	for _, tt := range []struct {
		input  []string
		expect []string
	}{
		{input: []string{}, expect: []string{}},
		{input: []string{"1"}, expect: []string{"1"}},
		{input: []string{"1", "2"}, expect: []string{"2", "1"}},
		{input: []string{"1", "2", "3", "4", "5"}, expect: []string{"5", "4", "3", "2", "1"}},
	} {
		t.Run(fmt.Sprint("Length", len(tt.input)), func(t *testing.T) {
			q := makeQueue(t, tt.input...)
			q.Reverse()
			assert.EqualItems(t, q.Values(), tt.expect)
			assert.NotError(t, q.Validate())

			q.Reverse()
			assert.EqualItems(t, q.Values(), tt.input)
		})
	}
}

func TestReverseK(t *testing.T) {
	input := []string{"1", "2", "3", "4", "5"}
	for _, tt := range []struct {
		k      int
		expect []string
	}{
		{k: -1, expect: []string{"1", "2", "3", "4", "5"}},
		{k: 0, expect: []string{"1", "2", "3", "4", "5"}},
		{k: 1, expect: []string{"1", "2", "3", "4", "5"}},
		{k: 2, expect: []string{"2", "1", "4", "3", "5"}},
		{k: 3, expect: []string{"3", "2", "1", "4", "5"}},
		{k: 4, expect: []string{"4", "3", "2", "1", "5"}},
		{k: 5, expect: []string{"5", "4", "3", "2", "1"}},
		{k: 6, expect: []string{"1", "2", "3", "4", "5"}},
	} {
		t.Run(fmt.Sprint("K", tt.k), func(t *testing.T) {
			q := makeQueue(t, input...)
			q.ReverseK(tt.k)
			assert.EqualItems(t, q.Values(), tt.expect)
			assert.NotError(t, q.Validate())
		})
	}
	t.Run("ExactMultiple", func(t *testing.T) {
		q := makeQueue(t, "1", "2", "3", "4", "5", "6")
		q.ReverseK(3)
		assert.EqualItems(t, q.Values(), []string{"3", "2", "1", "6", "5", "4"})
	})
	t.Run("Empty", func(t *testing.T) {
		q := queue.New()
		q.ReverseK(2)
		assert.Equal(t, q.Size(), 0)
	})
	t.Run("PairsMatchSwap", func(t *testing.T) {
		one := makeQueue(t, "a", "b", "c", "d", "e", "f", "g")
		two := makeQueue(t, one.Values()...)
		one.ReverseK(2)
		two.Swap()
		assert.EqualItems(t, one.Values(), two.Values())
	})
}
