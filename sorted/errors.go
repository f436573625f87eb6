package sorted

import "errors"

var (
	// ErrOutOfBounds is returned for an index argument outside
	// [0, Size()-1]. Callers may rely on it to detect range exhaustion;
	// the other error kinds in this package indicate programmer errors.
	ErrOutOfBounds = errors.New("index out of bounds")

	// ErrUnsupported is returned by structurally disallowed mutations:
	// operations that would let a caller place an element at an
	// arbitrary position, or change the ordering contract mid-life.
	ErrUnsupported = errors.New("operation not supported on a sorted array")

	// ErrInvalidArgument is returned for search bounds, rank offsets or
	// lengths outside their required range.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrComparator is returned when the payload comparator violates its
	// contract by producing NaN instead of a signed number.
	ErrComparator = errors.New("comparator returned a non-numeric result")
)
