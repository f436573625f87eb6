package sorted

import "fmt"

// The operations below are structurally disallowed: each would let a
// caller place an element at an arbitrary position, which the sortedness
// invariant cannot survive. They exist so that code ported from a plain
// slice gets the documented rejection instead of a silent gap.

// Push rejects tail insertion; use Add, which sequences the element and
// lets the lazy sort place it.
func (a *Array[T]) Push(_ ...T) error {
	return unsupported("push; use Add")
}

// Unshift rejects head insertion; use Add.
func (a *Array[T]) Unshift(_ ...T) error {
	return unsupported("unshift; use Add")
}

// Concat rejects appending other collections wholesale; use AddAll with
// the other collection's snapshot.
func (a *Array[T]) Concat(_ ...*Array[T]) error {
	return unsupported("concat; use AddAll")
}

// Reverse rejects in-place reversal; construct the array with
// compare.Reverse for a descending order.
func (a *Array[T]) Reverse() error {
	return unsupported("reverse; construct with compare.Reverse")
}

// Fill rejects overwriting the elements with a repeated value.
func (a *Array[T]) Fill(_ T) error {
	return unsupported("fill")
}

// CopyWithin rejects copying a range of elements over another.
func (a *Array[T]) CopyWithin(_, _ int) error {
	return unsupported("copyWithin")
}

// Set rejects assignment by index; remove the old element and Add the
// new one.
func (a *Array[T]) Set(_ int, _ T) error {
	return unsupported("assignment by index; use RemoveAll and Add")
}

func unsupported(op string) error {
	return fmt.Errorf("%w: %s", ErrUnsupported, op)
}
