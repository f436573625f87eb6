package sorted

import (
	"fmt"

	"github.com/amp-labs/amp-sorted/optional"
)

// Match pairs a found payload with its index in the sorted view.
type Match[T any] struct {
	Index int
	Value T
}

// Rank selects which element of a key's match run FindNth resolves.
type Rank struct {
	offset  int
	fromEnd bool
	anyHit  bool
}

// AnyMatch selects an arbitrary element of the run; which one is
// unspecified.
func AnyMatch() Rank {
	return Rank{anyHit: true}
}

// FromStart selects the element offset places after the first match.
// FromStart(0) is the first match.
func FromStart(offset int) Rank {
	return Rank{offset: offset}
}

// FromEnd selects the element offset places before the last match.
// FromEnd(0) is the last match.
func FromEnd(offset int) Rank {
	return Rank{offset: offset, fromEnd: true}
}

func (r Rank) validate() error {
	if r.offset < 0 {
		return fmt.Errorf("%w: negative rank offset %d", ErrInvalidArgument, r.offset)
	}

	return nil
}

// Search locates key in the sorted view with a binary search over the
// full array, using the payload comparator alone: ties among
// comparator-equal elements are not broken, so any element of an equal
// run may be returned, with no guarantee of which. When the key is
// absent, found is false and index is the insertion point that would
// keep the array ordered (Size() means past the end). An empty array
// reports (0, false).
func (a *Array[T]) Search(key T) (int, bool, error) {
	if err := a.ensureSorted(); err != nil {
		return 0, false, err
	}

	return a.search(key, 0, len(a.nodes)-1)
}

// SearchRange is Search restricted to the inclusive index range
// [min, max]. min must be non-negative and max below the current length,
// otherwise ErrInvalidArgument is returned.
func (a *Array[T]) SearchRange(key T, min, max int) (int, bool, error) {
	if err := a.ensureSorted(); err != nil {
		return 0, false, err
	}

	if len(a.nodes) == 0 {
		return 0, false, nil
	}

	if min < 0 || max >= len(a.nodes) {
		return 0, false, fmt.Errorf("%w: search bounds [%d, %d], length %d",
			ErrInvalidArgument, min, max, len(a.nodes))
	}

	return a.search(key, min, max)
}

// search is the bounded binary search over already-sorted storage. The
// key is wrapped in a transient probe node carrying an emulated sequence
// so the engine never confuses it with a stored node; the probe is
// discarded when the search returns.
func (a *Array[T]) search(key T, low, high int) (int, bool, error) {
	probe := node[T]{payload: key, seq: a.seq.emulated()}

	for low <= high {
		mid := int(uint(low+high) >> 1)

		c, err := a.comparePayloads(probe.payload, a.nodes[mid].payload)
		if err != nil {
			return 0, false, err
		}

		switch {
		case c == 0:
			return mid, true, nil
		case c < 0:
			high = mid - 1
		default:
			low = mid + 1
		}
	}

	return low, false, nil
}

// Contains reports whether any stored element compares equal to key.
func (a *Array[T]) Contains(key T) (bool, error) {
	_, found, err := a.Search(key)

	return found, err
}

// FindAll returns every element the comparator considers equal to key,
// as a contiguous ascending run of matches. Within the run, elements
// appear in insertion order. The result is empty when the key is absent.
func (a *Array[T]) FindAll(key T) ([]Match[T], error) {
	first, last, found, err := a.findRun(key)
	if err != nil || !found {
		return []Match[T]{}, err
	}

	out := make([]Match[T], 0, last-first+1)
	for i := first; i <= last; i++ {
		out = append(out, a.matchAt(i))
	}

	return out, nil
}

// FindExact returns the matches from FindAll whose payload is the very
// instance passed as key: the same pointer, slice, map, channel or
// function value, or an equal value for plainly comparable types.
// Comparator equality alone does not qualify. Order is insertion order
// among the identical instances.
func (a *Array[T]) FindExact(key T) ([]Match[T], error) {
	all, err := a.FindAll(key)
	if err != nil {
		return nil, err
	}

	out := make([]Match[T], 0, len(all))

	for _, m := range all {
		if identical(key, m.Value) {
			out = append(out, m)
		}
	}

	return out, nil
}

// FindNth resolves one element of key's match run by rank. AnyMatch
// reports whatever Search returned. FromStart and FromEnd apply their
// offset from the run's first and last element; an offset that walks
// past the run reports found == false.
func (a *Array[T]) FindNth(key T, rank Rank) (Match[T], bool, error) {
	if err := rank.validate(); err != nil {
		return Match[T]{}, false, err
	}

	if rank.anyHit {
		idx, found, err := a.Search(key)
		if err != nil || !found {
			return Match[T]{}, false, err
		}

		return a.matchAt(idx), true, nil
	}

	first, last, found, err := a.findRun(key)
	if err != nil || !found {
		return Match[T]{}, false, err
	}

	idx := first + rank.offset
	if rank.fromEnd {
		idx = last - rank.offset
	}

	// An offset may land outside the run; verify before reporting found.
	if idx < first || idx > last {
		return Match[T]{}, false, nil
	}

	return a.matchAt(idx), true, nil
}

// FindNthExact is FindNth restricted to identity matches. Identity
// matches need not be contiguous in the sorted view, so the rank indexes
// into the list of identity matches rather than a run of indices, and an
// out-of-range rank reports found == false.
func (a *Array[T]) FindNthExact(key T, rank Rank) (Match[T], bool, error) {
	if err := rank.validate(); err != nil {
		return Match[T]{}, false, err
	}

	exact, err := a.FindExact(key)
	if err != nil {
		return Match[T]{}, false, err
	}

	if len(exact) == 0 {
		return Match[T]{}, false, nil
	}

	if rank.anyHit {
		return exact[0], true, nil
	}

	idx := rank.offset
	if rank.fromEnd {
		idx = len(exact) - 1 - rank.offset
	}

	if idx < 0 || idx >= len(exact) {
		return Match[T]{}, false, nil
	}

	return exact[idx], true, nil
}

// Neighbors is the result of FindNearest. Either Eq is set, or Lt and Gt
// carry the tightest elements ordering before and after the key — each
// None when the key falls off that end of the array. On an empty array
// all three are None.
type Neighbors[T any] struct {
	Eq optional.Value[Match[T]]
	Lt optional.Value[Match[T]]
	Gt optional.Value[Match[T]]
}

// FindNearest resolves key against the array even when it is absent. A
// present key yields Eq; an absent one yields the bounding neighbors
// derived from the search's insertion-point hint.
func (a *Array[T]) FindNearest(key T) (Neighbors[T], error) {
	out := Neighbors[T]{
		Eq: optional.None[Match[T]](),
		Lt: optional.None[Match[T]](),
		Gt: optional.None[Match[T]](),
	}

	hint, found, err := a.Search(key)
	if err != nil {
		return out, err
	}

	if found {
		out.Eq = optional.Some(a.matchAt(hint))

		return out, nil
	}

	length := len(a.nodes)
	if length == 0 {
		return out, nil
	}

	switch {
	case hint < 0:
		out.Gt = optional.Some(a.matchAt(0))
	case hint >= length:
		out.Lt = optional.Some(a.matchAt(length - 1))
	default:
		// The hint is adjacent to the insertion slot but not definitively
		// before or after it until compared.
		c, err := a.comparePayloads(key, a.nodes[hint].payload)
		if err != nil {
			return out, err
		}

		if c < 0 {
			out.Gt = optional.Some(a.matchAt(hint))

			if hint > 0 {
				out.Lt = optional.Some(a.matchAt(hint - 1))
			}
		} else {
			out.Lt = optional.Some(a.matchAt(hint))

			if hint+1 < length {
				out.Gt = optional.Some(a.matchAt(hint + 1))
			}
		}
	}

	return out, nil
}

// findRun locates the contiguous run of comparator-equal elements around
// an arbitrary hit from Search. Sortedness makes the run contiguous, so
// a linear scan outward from the hit finds both boundaries.
func (a *Array[T]) findRun(key T) (first, last int, found bool, err error) {
	idx, found, err := a.Search(key)
	if err != nil || !found {
		return 0, 0, false, err
	}

	first, last = idx, idx

	for first > 0 {
		c, err := a.comparePayloads(key, a.nodes[first-1].payload)
		if err != nil {
			return 0, 0, false, err
		}

		if c != 0 {
			break
		}

		first--
	}

	for last < len(a.nodes)-1 {
		c, err := a.comparePayloads(key, a.nodes[last+1].payload)
		if err != nil {
			return 0, 0, false, err
		}

		if c != 0 {
			break
		}

		last++
	}

	return first, last, true, nil
}

func (a *Array[T]) matchAt(i int) Match[T] {
	return Match[T]{Index: i, Value: a.nodes[i].payload}
}
