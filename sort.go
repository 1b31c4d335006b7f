package queue

import (
	"github.com/tychoish/queue/dt"
	"github.com/tychoish/queue/dt/cmp"
)

var lessThan cmp.LessThan[string] = cmp.LessThanNative[string]

// Sort orders the queue in place, lexicographically, ascending or
// (when descend is true) descending, using a merge sort that relinks
// elements. Equal values are not kept in their original relative
// order; see dt.Merge for the tie-breaking rule.
func (q *Queue) Sort(descend bool) {
	if q == nil {
		return
	}

	dt.SortMerge(&q.list, lessThan, cmp.DirectionOf(descend))
}

// IsSorted reports whether the queue is ordered in the requested
// direction. Nil and empty queues are sorted.
func (q *Queue) IsSorted(descend bool) bool {
	if q == nil {
		return true
	}

	return dt.IsSorted(&q.list, lessThan, cmp.DirectionOf(descend))
}
