package queue

import "github.com/tychoish/queue/dt/cmp"

// Ascend removes and releases every element that has a strictly
// smaller value somewhere after it, leaving a non-decreasing
// sequence, and returns the number of remaining elements. Nil and
// empty queues return zero.
func (q *Queue) Ascend() int { return q.monotonic(cmp.Ascending) }

// Descend removes and releases every element that has a strictly
// greater value somewhere after it, leaving a non-increasing
// sequence, and returns the number of remaining elements. Nil and
// empty queues return zero.
func (q *Queue) Descend() int { return q.monotonic(cmp.Descending) }

// monotonic scans from the back, tracking the best value seen so far
// (the minimum when ascending, the maximum when descending).
func (q *Queue) monotonic(dir cmp.Direction) int {
	if q == nil || q.list.IsEmpty() {
		return 0
	}

	better := lessThan
	if dir.IsDescending() {
		better = cmp.Reverse(lessThan)
	}

	best := q.list.Back().Value()
	count := 0
	for e := range q.list.ElementsReverse() {
		value := e.Value()
		if better(best, value) {
			e.Drop()
			continue
		}

		if better(value, best) {
			best = value
		}
		count++
	}

	return count
}
