package compare

import "cmp"

// Comparator is a three-way comparison over T. It returns a negative
// number when a orders before b, a positive number when a orders after b,
// and zero when the two are equivalent under the ordering.
//
// The result must always be an ordinary signed number. NaN is a contract
// violation: collections built on this type reject it with an error
// rather than guessing an order.
type Comparator[T any] func(a, b T) float64

// Reverse returns a comparator with the opposite ordering of c.
//
// Use it at construction time to get a descending collection. Collections
// do not accept a replacement comparator after construction, so this is
// the supported way to flip an ordering.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) float64 {
		return c(b, a)
	}
}

// Ordered returns a comparator over any ordered primitive type using the
// built-in < operator.
func Ordered[T cmp.Ordered]() Comparator[T] {
	return func(a, b T) float64 {
		switch {
		case a < b:
			return -1
		case b < a:
			return 1
		default:
			return 0
		}
	}
}
