package queue

import "github.com/tychoish/queue/dt"

// DeleteMid removes and releases the middle element of the queue:
// for a queue of n elements, the element at zero-indexed position
// (n-1)/2. Two cursors walk inward from the back and the front until
// they meet or are adjacent, and the front cursor's element is
// removed.
//
// DeleteMid returns false, without modifying the queue, if the queue
// is nil or empty.
func (q *Queue) DeleteMid() bool {
	if q == nil || q.list.IsEmpty() {
		return false
	}

	back, front := q.list.Back(), q.list.Front()
	for back != front && back.Previous() != front {
		back = back.Previous()
		front = front.Next()
	}

	front.Drop()
	return true
}

// DeleteDup removes and releases every element whose value equals an
// adjacent element's value, so that each run of two or more equal
// values is removed entirely. Values that appear more than once but
// never next to each other are left in place, so callers typically
// sort first.
//
// DeleteDup returns false if the queue is nil or empty.
func (q *Queue) DeleteDup() bool {
	if q == nil || q.list.IsEmpty() {
		return false
	}

	inRun := false
	for e := range q.list.Elements() {
		next := e.Next()
		switch {
		case next.Ok() && next.Value() == e.Value():
			inRun = true
			e.Drop()
		case inRun:
			inRun = false
			e.Drop()
		}
	}

	return true
}

// Swap exchanges every pair of adjacent elements in place: the first
// with the second, the third with the fourth, and so on. When the
// queue has an odd number of elements the last one is not moved.
func (q *Queue) Swap() {
	if q == nil {
		return
	}

	for e := q.list.Front(); e.Ok() && e.Next().Ok(); e = e.Next() {
		e.MoveAfter(e.Next())
	}
}

// Reverse reverses the order of the elements in place.
func (q *Queue) Reverse() {
	if q == nil {
		return
	}

	reverse(&q.list)
}

// ReverseK reverses, in place, each consecutive group of k elements
// starting from the front of the queue. A trailing group of fewer
// than k elements keeps its order. ReverseK does nothing when k is
// less than two.
func (q *Queue) ReverseK(k int) {
	if q == nil || k < 2 {
		return
	}

	anchor := q.list.Sentinel()
	for {
		first := anchor.Next()
		if !first.Ok() {
			return
		}

		last := first
		for count := 1; count < k; count++ {
			if !last.Next().Ok() {
				return
			}
			last = last.Next()
		}

		group := dt.Cut(first, last)
		reverse(group)
		anchor.Splice(group)

		anchor = first
	}
}

// reverse moves each element, in original order, to the front.
func reverse(list *dt.List[string]) {
	root := list.Sentinel()
	for e := range list.Elements() {
		e.MoveAfter(root)
	}
}
