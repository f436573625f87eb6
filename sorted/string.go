package sorted

import (
	"fmt"
	"strings"
)

// circularMarker is substituted for an element whose rendering would
// recurse back into the array being rendered.
const circularMarker = "[Circular]"

// String renders the sorted view like a slice literal. Rendering is
// reentrancy-guarded: while a format of this array is in progress, any
// nested attempt to format it again — directly, because an element is
// the array itself, or indirectly through a container element — produces
// the circular marker instead of unbounded recursion.
//
// fmt.Stringer cannot report errors; a comparator contract violation
// during the implicit sort is swallowed here and resurfaces on the next
// explicit read.
func (a *Array[T]) String() string {
	if a.formatting {
		return circularMarker
	}

	a.formatting = true
	defer func() { a.formatting = false }()

	if err := a.ensureSorted(); err != nil {
		a.cmpErr = err
	}

	var b strings.Builder

	b.WriteByte('[')

	for i, n := range a.nodes {
		if i > 0 {
			b.WriteString(" ")
		}

		b.WriteString(a.formatPayload(n.payload))
	}

	b.WriteByte(']')

	return b.String()
}

// formatPayload renders one payload, substituting the circular marker
// when the payload is this very array.
func (a *Array[T]) formatPayload(p T) string {
	if self, ok := any(p).(*Array[T]); ok && self == a {
		return circularMarker
	}

	return fmt.Sprintf("%v", p)
}
