package sorted

import (
	"fmt"
	"math"
	"sort"

	"github.com/amp-labs/amp-sorted/compare"
	errors2 "github.com/amp-labs/amp-sorted/errors"
	"github.com/amp-labs/amp-sorted/optional"
	"github.com/amp-labs/amp-sorted/zero"
)

// Array is a sequence ordered by a caller-supplied comparator, with
// insertion order as the tie-break among comparator-equal elements. The
// actual reorder work is deferred until a read observes order.
//
// Array is not safe for concurrent use.
type Array[T any] struct {
	nodes []*node[T]
	cmp   compare.Comparator[T]
	seq   sequencer[T]

	// dirty means storage may be out of order; sorting and formatting
	// guard against reentrant sort and format passes.
	dirty      bool
	sorting    bool
	formatting bool

	// cmpErr holds the first comparator contract violation observed
	// during an in-place sort pass, until ensureSorted reports it.
	cmpErr error
}

// New creates an empty Array ordered by cmp.
func New[T any](cmp compare.Comparator[T]) *Array[T] {
	return &Array[T]{
		cmp: cmp,
		seq: newSequencer[T](),
	}
}

// NewAny creates an Array over any ordered by compare.Default: nil sorts
// last, everything else by its canonical string form.
func NewAny() *Array[any] {
	return New(compare.Default())
}

// Of creates an Array ordered by cmp, seeded with items.
func Of[T any](cmp compare.Comparator[T], items ...T) *Array[T] {
	arr := New(cmp)
	arr.AddAll(items...)

	return arr
}

// Size returns the number of stored elements. It never triggers a sort.
func (a *Array[T]) Size() int {
	return len(a.nodes)
}

// IsEmpty returns true if the array holds no elements.
func (a *Array[T]) IsEmpty() bool {
	return len(a.nodes) == 0
}

// Add appends item and returns the new length. The element is stamped
// with the next insertion sequence; reordering is deferred until the
// next operation that observes order, so the comparator is not consulted
// here.
func (a *Array[T]) Add(item T) int {
	a.nodes = append(a.nodes, &node[T]{payload: item, seq: a.seq.next(a.nodes)})
	a.dirty = true

	return len(a.nodes)
}

// AddAll appends every item in argument order and returns the new length.
func (a *Array[T]) AddAll(items ...T) int {
	for _, item := range items {
		a.Add(item)
	}

	return len(a.nodes)
}

// Clear removes all elements. The sequence counter is deliberately not
// reset; renumbering handles it if it ever nears overflow.
func (a *Array[T]) Clear() {
	a.nodes = nil
	a.dirty = false
}

// Clone returns a copy sharing no storage with the original. Insertion
// sequences are preserved, so comparator-equal elements keep their
// relative order in the copy.
func (a *Array[T]) Clone() *Array[T] {
	out := &Array[T]{
		cmp:   a.cmp,
		seq:   a.seq,
		dirty: a.dirty,
		nodes: make([]*node[T], len(a.nodes)),
	}

	for i, n := range a.nodes {
		out.nodes[i] = &node[T]{payload: n.payload, seq: n.seq}
	}

	return out
}

// Get returns the element at index in the sorted view.
// Returns ErrOutOfBounds for an index outside [0, Size()-1].
func (a *Array[T]) Get(index int) (T, error) {
	if err := a.ensureSorted(); err != nil {
		return zero.Value[T](), err
	}

	if index < 0 || index >= len(a.nodes) {
		return zero.Value[T](), fmt.Errorf("%w: index %d, length %d", ErrOutOfBounds, index, len(a.nodes))
	}

	return a.nodes[index].payload, nil
}

// ToArray returns a snapshot of the payloads in sorted order.
func (a *Array[T]) ToArray() ([]T, error) {
	if err := a.ensureSorted(); err != nil {
		return nil, err
	}

	out := make([]T, len(a.nodes))
	for i, n := range a.nodes {
		out[i] = n.payload
	}

	return out, nil
}

// Remove deletes the element at index in the sorted view and returns it.
func (a *Array[T]) Remove(index int) (T, error) {
	removed, err := a.RemoveAll(index)
	if err != nil {
		return zero.Value[T](), err
	}

	return removed[0], nil
}

// RemoveAll deletes the elements at the given sorted-view indices and
// returns the removed payloads in the order the indices were requested.
//
// Indices are processed in ascending order, each later removal adjusted
// for the left shift caused by removals at strictly smaller indices;
// duplicate indices therefore remove successive elements. If any
// adjusted index falls out of range, nothing is removed and every bad
// index is reported in a combined ErrOutOfBounds error.
func (a *Array[T]) RemoveAll(indices ...int) ([]T, error) {
	if err := a.ensureSorted(); err != nil {
		return nil, err
	}

	if len(indices) == 0 {
		return nil, nil
	}

	// order holds positions into indices, ascending by target index, so
	// results can be mapped back to the requested order after removal.
	order := make([]int, len(indices))
	for i := range order {
		order[i] = i
	}

	sort.SliceStable(order, func(i, j int) bool {
		return indices[order[i]] < indices[order[j]]
	})

	length := len(a.nodes)

	var errs errors2.Collection

	// shifted holds each target adjusted for the removals processed
	// before it; equal indices share an adjustment so they land on
	// successive elements.
	shifted := make([]int, len(order))
	strictLess := 0

	for k, pos := range order {
		idx := indices[pos]
		if k > 0 && idx != indices[order[k-1]] {
			strictLess = k
		}

		shifted[k] = idx - strictLess

		if shifted[k] < 0 || shifted[k] >= length-k {
			errs.Add(fmt.Errorf("%w: index %d, length %d", ErrOutOfBounds, idx, length))
		}
	}

	if err := errs.GetError(); err != nil {
		return nil, err
	}

	removed := make([]T, len(indices))

	for k, pos := range order {
		idx := shifted[k]
		removed[pos] = a.nodes[idx].payload
		a.nodes = append(a.nodes[:idx], a.nodes[idx+1:]...)
	}

	return removed, nil
}

// Pop removes and returns the greatest element, or None when the array
// is empty. Removing an extremal element can never break sortedness.
func (a *Array[T]) Pop() (optional.Value[T], error) {
	if err := a.ensureSorted(); err != nil {
		return optional.None[T](), err
	}

	if len(a.nodes) == 0 {
		return optional.None[T](), nil
	}

	last := a.nodes[len(a.nodes)-1]
	a.nodes = a.nodes[:len(a.nodes)-1]

	return optional.Some(last.payload), nil
}

// Shift removes and returns the least element, or None when the array
// is empty.
func (a *Array[T]) Shift() (optional.Value[T], error) {
	if err := a.ensureSorted(); err != nil {
		return optional.None[T](), err
	}

	if len(a.nodes) == 0 {
		return optional.None[T](), nil
	}

	first := a.nodes[0]
	a.nodes = append([]*node[T]{}, a.nodes[1:]...)

	return optional.Some(first.payload), nil
}

// Slice returns a snapshot of the payloads over [start, end), following
// slice conventions: negative indexes count from the end, and both
// bounds are clamped to the valid range.
func (a *Array[T]) Slice(start, end int) ([]T, error) {
	if err := a.ensureSorted(); err != nil {
		return nil, err
	}

	length := len(a.nodes)
	start = clampIndex(start, length)
	end = clampIndex(end, length)

	if start >= end {
		return []T{}, nil
	}

	out := make([]T, 0, end-start)
	for _, n := range a.nodes[start:end] {
		out = append(out, n.payload)
	}

	return out, nil
}

// Splice removes deleteCount elements starting at start (negative start
// counts from the end, and both values are clamped) and returns them in
// sorted order. Passing replacement items is rejected with
// ErrUnsupported: spliced-in elements would bypass sequencing and land
// at arbitrary positions.
func (a *Array[T]) Splice(start, deleteCount int, items ...T) ([]T, error) {
	if len(items) > 0 {
		return nil, fmt.Errorf("%w: splice with replacement items", ErrUnsupported)
	}

	if err := a.ensureSorted(); err != nil {
		return nil, err
	}

	length := len(a.nodes)
	start = clampIndex(start, length)

	if deleteCount < 0 {
		deleteCount = 0
	}

	if deleteCount > length-start {
		deleteCount = length - start
	}

	out := make([]T, 0, deleteCount)
	for _, n := range a.nodes[start : start+deleteCount] {
		out = append(out, n.payload)
	}

	a.nodes = append(a.nodes[:start], a.nodes[start+deleteCount:]...)

	return out, nil
}

// Truncate shrinks the array to length n, dropping elements from the
// tail of the sorted view. Growing is rejected with ErrUnsupported:
// there is no value to fill new slots with that would respect ordering.
func (a *Array[T]) Truncate(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative length %d", ErrInvalidArgument, n)
	}

	if n > len(a.nodes) {
		return fmt.Errorf("%w: cannot extend length from %d to %d", ErrUnsupported, len(a.nodes), n)
	}

	if err := a.ensureSorted(); err != nil {
		return err
	}

	a.nodes = a.nodes[:n]

	return nil
}

// Sort forces a re-sort even if the array believes itself ordered. Use
// it after mutating element contents in place in a way that affects
// their ordering, which the array cannot observe on its own.
func (a *Array[T]) Sort() error {
	a.dirty = true

	return a.ensureSorted()
}

// SortWith rejects comparator replacement. The comparator fixed at
// construction defines the array's single total order; swapping it
// mid-life would silently invalidate every stored position. Construct a
// new array with the desired comparator instead.
func (a *Array[T]) SortWith(_ compare.Comparator[T]) error {
	return fmt.Errorf("%w: sort with a replacement comparator", ErrUnsupported)
}

// ensureSorted re-sorts the backing storage if a mutation left it dirty.
// The sorting flag guards against reentrancy: a comparator (or the
// format of an element that contains this array) may call back into the
// array while a sort pass is mid-flight, and that nested call must treat
// storage as already sorted instead of starting a second pass over
// half-ordered nodes.
func (a *Array[T]) ensureSorted() error {
	if a.dirty && !a.sorting {
		a.sorting = true

		sort.SliceStable(a.nodes, func(i, j int) bool {
			return a.less(a.nodes[i], a.nodes[j])
		})

		a.sorting = false
	}

	a.dirty = false

	if err := a.cmpErr; err != nil {
		a.cmpErr = nil

		return err
	}

	return nil
}

// less is the augmented ordering: the payload comparator first, the
// insertion sequence to break ties. Sequences are unique, so no two
// distinct nodes ever compare equal. A NaN from the payload comparator
// is recorded (first occurrence wins) and treated as a tie for this
// comparison, which keeps the pass deterministic while the violation
// propagates to the caller.
func (a *Array[T]) less(x, y *node[T]) bool {
	c := a.cmp(x.payload, y.payload)

	if math.IsNaN(c) {
		if a.cmpErr == nil {
			a.cmpErr = fmt.Errorf("%w: compare(%v, %v)", ErrComparator, x.payload, y.payload)
		}

		c = 0
	}

	if c != 0 {
		return c < 0
	}

	return x.seq < y.seq
}

// comparePayloads runs the payload comparator directly (no tie-break)
// and rejects NaN results.
func (a *Array[T]) comparePayloads(x, y T) (float64, error) {
	c := a.cmp(x, y)
	if math.IsNaN(c) {
		return 0, fmt.Errorf("%w: compare(%v, %v)", ErrComparator, x, y)
	}

	return c, nil
}

// clampIndex resolves a possibly negative index against length and
// clamps it to [0, length].
func clampIndex(i, length int) int {
	if i < 0 {
		i += length
	}

	if i < 0 {
		return 0
	}

	if i > length {
		return length
	}

	return i
}
