package dt

import "github.com/tychoish/queue/dt/cmp"

// IsSorted reports if the list is ordered in the given direction,
// according to the LessThan function. Empty and single-element lists
// are always sorted.
func IsSorted[T any](list *List[T], lt cmp.LessThan[T], dir cmp.Direction) bool {
	if list.IsEmpty() {
		return true
	}

	for item := list.Front(); item.Next().Ok(); item = item.Next() {
		if !cmp.InOrder(dir, lt, item.Value(), item.Next().Value()) {
			return false
		}
	}
	return true
}

// SortMerge sorts the list in place with a top-down merge sort,
// relinking the existing elements rather than copying values. The
// list is split at its midpoint, found with a slow/fast pointer
// traversal, each half is sorted recursively, and the halves are
// combined with Merge.
//
// The merge does not preserve the input order of equal values in the
// conventional sense: see Merge for the tie-breaking rule.
func SortMerge[T any](list *List[T], lt cmp.LessThan[T], dir cmp.Direction) {
	if list.IsEmpty() || list.IsSingular() {
		return
	}

	head := split(list)

	SortMerge(head, lt, dir)
	SortMerge(list, lt, dir)

	Merge(head, list, lt, dir)
	list.Extend(head)
}

// Merge combines two lists, each already sorted in the given
// direction, into dst, leaving src empty. Elements are moved, not
// copied.
//
// The front elements of the two lists are compared repeatedly. When
// ascending, the dst element is taken only if it is strictly less
// than the src element, so on ties the src element is emitted first.
// When descending, the src element is taken only if the dst element
// is strictly less than it, so on ties the dst element is emitted
// first.
func Merge[T any](dst, src *List[T], lt cmp.LessThan[T], dir cmp.Direction) {
	if dst == nil || src == nil || dst == src || src.IsEmpty() {
		return
	}

	out := &List[T]{}
	for !dst.IsEmpty() && !src.IsEmpty() {
		left, right := dst.Front(), src.Front()
		if takeLeft(lt, dir, left.Value(), right.Value()) {
			left.MoveAfter(out.Back())
		} else {
			right.MoveAfter(out.Back())
		}
	}

	out.Extend(dst)
	out.Extend(src)
	dst.Extend(out)
}

func takeLeft[T any](lt cmp.LessThan[T], dir cmp.Direction, left, right T) bool {
	if dir.IsDescending() {
		return !lt(left, right)
	}
	return lt(left, right)
}

// split cuts the first half of the list, through the midpoint, into a
// new list. The input must have at least two elements.
func split[T any](list *List[T]) *List[T] {
	slow, fast := list.Front(), list.Front().Next()
	for fast.Ok() && fast.Next().Ok() {
		slow = slow.Next()
		fast = fast.Next().Next()
	}

	return Cut(list.Front(), slow)
}
