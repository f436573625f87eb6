// Package sortable provides wrapper types for primitive types that implement
// the Sortable interface, enabling their use in ordered data structures.
//
// # Overview
//
// The sortable package defines the [Sortable] interface and provides
// ready-to-use implementations for common primitive types: [Int], [Byte],
// and [String]. These types are designed to work with comparator-keyed
// collections such as [github.com/amp-labs/amp-sorted/sorted.Array];
// [Comparator] bridges any Sortable type into the comparator those
// collections expect.
//
// The Sortable interface extends [github.com/amp-labs/amp-sorted/compare.Comparable]
// by adding a LessThan method, providing both equality comparison and ordering.
//
// # Usage
//
//	// Create a sorted sequence of integers
//	arr := sorted.New(sortable.Comparator[sortable.Int]())
//	arr.AddAll(sortable.Int(42), sortable.Int(10), sortable.Int(25))
//
//	// Elements are observed in sorted order: 10, 25, 42
//	for val := range arr.Values() {
//	    fmt.Println(int(val))
//	}
//
// # Creating Custom Sortable Types
//
// To create a custom sortable type, implement the Sortable interface:
//
//	type MyType struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (m MyType) Equals(other MyType) bool {
//	    return m.Priority == other.Priority && m.Name == other.Name
//	}
//
//	func (m MyType) LessThan(other MyType) bool {
//	    if m.Priority != other.Priority {
//	        return m.Priority < other.Priority
//	    }
//	    return m.Name < other.Name
//	}
//
// # Thread Safety
//
// The wrapper types in this package are value types and are inherently
// thread-safe for read operations. Collections using these types may not
// be thread-safe and require external synchronization for concurrent access.
package sortable
