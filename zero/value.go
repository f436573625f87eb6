// Package zero provides the zero value of a generic type parameter.
package zero

// Value returns the zero value for type T. Error paths of generic
// functions use it to return an explicit "no result" alongside the
// error, where a plain literal cannot be spelled for an arbitrary T.
//
//	func (a *Array[T]) Get(index int) (T, error) {
//		if index < 0 {
//			return zero.Value[T](), ErrOutOfBounds
//		}
//		...
//	}
func Value[T any]() T {
	var zeroVal T

	return zeroVal
}
