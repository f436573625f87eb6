// Package sortable provides sortable wrapper types for primitive types to implement comparison interfaces.
package sortable

import (
	"github.com/amp-labs/amp-sorted/compare"
)

type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Comparator derives a three-way comparator from the Sortable interface,
// letting Sortable types flow into comparator-keyed collections such as
// sorted.Array.
func Comparator[T Sortable[T]]() compare.Comparator[T] {
	return func(a, b T) float64 {
		switch {
		case a.LessThan(b):
			return -1
		case b.LessThan(a):
			return 1
		default:
			return 0
		}
	}
}
