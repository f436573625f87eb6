package sorted

import (
	"strings"

	"github.com/amp-labs/amp-sorted/optional"
)

// The read-only sequence operations below mirror their standard slice
// counterparts over the sorted payload view. Each re-sorts first if a
// mutation left the array dirty.

// Join concatenates the elements' default string forms with sep between
// them. An element that is this array renders as the circular marker
// instead of recursing (see String).
func (a *Array[T]) Join(sep string) (string, error) {
	if err := a.ensureSorted(); err != nil {
		return "", err
	}

	if a.formatting {
		return circularMarker, nil
	}

	a.formatting = true
	defer func() { a.formatting = false }()

	var b strings.Builder

	for i, n := range a.nodes {
		if i > 0 {
			b.WriteString(sep)
		}

		b.WriteString(a.formatPayload(n.payload))
	}

	return b.String(), nil
}

// Every reports whether pred holds for all elements. True on an empty
// array.
func (a *Array[T]) Every(pred func(T) bool) (bool, error) {
	if err := a.ensureSorted(); err != nil {
		return false, err
	}

	for _, n := range a.nodes {
		if !pred(n.payload) {
			return false, nil
		}
	}

	return true, nil
}

// Some reports whether pred holds for at least one element.
func (a *Array[T]) Some(pred func(T) bool) (bool, error) {
	if err := a.ensureSorted(); err != nil {
		return false, err
	}

	for _, n := range a.nodes {
		if pred(n.payload) {
			return true, nil
		}
	}

	return false, nil
}

// ForEach applies f to every element in sorted order.
func (a *Array[T]) ForEach(f func(T)) error {
	if err := a.ensureSorted(); err != nil {
		return err
	}

	for _, n := range a.nodes {
		f(n.payload)
	}

	return nil
}

// Filter returns the elements satisfying pred, in sorted order.
func (a *Array[T]) Filter(pred func(T) bool) ([]T, error) {
	if err := a.ensureSorted(); err != nil {
		return nil, err
	}

	out := make([]T, 0, len(a.nodes))

	for _, n := range a.nodes {
		if pred(n.payload) {
			out = append(out, n.payload)
		}
	}

	return out, nil
}

// Find returns the first element in sorted order satisfying pred, or
// None when no element does.
func (a *Array[T]) Find(pred func(T) bool) (optional.Value[T], error) {
	if err := a.ensureSorted(); err != nil {
		return optional.None[T](), err
	}

	for _, n := range a.nodes {
		if pred(n.payload) {
			return optional.Some(n.payload), nil
		}
	}

	return optional.None[T](), nil
}

// FindIndex returns the index of the first element in sorted order
// satisfying pred, or -1 when no element does.
func (a *Array[T]) FindIndex(pred func(T) bool) (int, error) {
	if err := a.ensureSorted(); err != nil {
		return -1, err
	}

	for i, n := range a.nodes {
		if pred(n.payload) {
			return i, nil
		}
	}

	return -1, nil
}

// Map applies f to every element of arr in sorted order and returns the
// results. It is a package function because Go methods cannot introduce
// the result type parameter.
func Map[T, U any](arr *Array[T], f func(T) U) ([]U, error) {
	if err := arr.ensureSorted(); err != nil {
		return nil, err
	}

	out := make([]U, len(arr.nodes))
	for i, n := range arr.nodes {
		out[i] = f(n.payload)
	}

	return out, nil
}

// Reduce folds the sorted view left to right starting from init.
func Reduce[T, U any](arr *Array[T], init U, f func(U, T) U) (U, error) {
	if err := arr.ensureSorted(); err != nil {
		return init, err
	}

	acc := init
	for _, n := range arr.nodes {
		acc = f(acc, n.payload)
	}

	return acc, nil
}

// ReduceRight folds the sorted view right to left starting from init.
func ReduceRight[T, U any](arr *Array[T], init U, f func(U, T) U) (U, error) {
	if err := arr.ensureSorted(); err != nil {
		return init, err
	}

	acc := init
	for i := len(arr.nodes) - 1; i >= 0; i-- {
		acc = f(acc, arr.nodes[i].payload)
	}

	return acc, nil
}
