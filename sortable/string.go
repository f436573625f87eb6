package sortable

// String is a sortable wrapper type for the built-in string type.
// It implements the Sortable[String] interface, allowing strings to be
// used as elements in ordered data structures like sorted.Array. Ordering
// is lexicographic by byte, the same as the built-in < operator.
//
// Example:
//
//	arr := sorted.New(sortable.Comparator[sortable.String]())
//	arr.AddAll(sortable.String("pear"), sortable.String("apple"))
//	// Iterating yields: "apple", "pear" (sorted order)
type String string

// Compile-time check that String implements Sortable[String].
var _ Sortable[String] = (*String)(nil)

// Equals returns true if this String has the same value as the other String.
func (s String) Equals(other String) bool {
	return string(s) == string(other)
}

// LessThan returns true if this String orders before the other String.
func (s String) LessThan(other String) bool {
	return string(s) < string(other)
}
