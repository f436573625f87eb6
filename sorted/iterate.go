package sorted

import "iter"

// Values returns an iterator over the payloads in sorted order, for Go
// range-over-func loops:
//
//	for v := range arr.Values() { ... }
//
// The array must not be mutated while the iterator is live. iter.Seq has
// no error channel, so a comparator contract violation detected by the
// implicit sort panics with ErrComparator; explicit reads like ToArray
// report the same condition as an ordinary error.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		a.mustSort()

		for _, n := range a.nodes {
			if !yield(n.payload) {
				return
			}
		}
	}
}

// Keys returns an iterator over the indices of the sorted view.
func (a *Array[T]) Keys() iter.Seq[int] {
	return func(yield func(int) bool) {
		a.mustSort()

		for i := range a.nodes {
			if !yield(i) {
				return
			}
		}
	}
}

// Entries returns an iterator over (index, payload) pairs in sorted
// order:
//
//	for i, v := range arr.Entries() { ... }
func (a *Array[T]) Entries() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		a.mustSort()

		for i, n := range a.nodes {
			if !yield(i, n.payload) {
				return
			}
		}
	}
}

func (a *Array[T]) mustSort() {
	if err := a.ensureSorted(); err != nil {
		panic(err)
	}
}
