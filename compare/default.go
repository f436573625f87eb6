package compare

import "fmt"

// Default returns the comparator used when a collection over any is
// constructed without one. nil orders after every other value; all other
// values are rendered to a canonical string form and compared by code
// point, with a string ordering before any longer string it is a prefix
// of. Strings are used as-is; everything else goes through fmt's default
// formatting.
func Default() Comparator[any] {
	return func(a, b any) float64 {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return 1
		case b == nil:
			return -1
		}

		ca, cb := canonical(a), canonical(b)

		switch {
		case ca < cb:
			return -1
		case ca > cb:
			return 1
		default:
			return 0
		}
	}
}

// canonical renders a value to the string form Default compares.
// Byte-wise comparison of UTF-8 strings matches code-point order.
func canonical(v any) string {
	if s, ok := v.(string); ok {
		return s
	}

	return fmt.Sprintf("%v", v)
}
