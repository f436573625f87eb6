// Package sorted provides [Array], a sequence that keeps its elements
// ordered by a caller-supplied comparator while deferring the actual
// reorder work until a read needs it.
//
// # Ordering model
//
// Every element is stamped with a strictly increasing insertion sequence
// number when it is added. Internally the array orders by the payload
// comparator first and the insertion sequence second, which makes the
// ordering total: elements the comparator considers equal always appear
// in the order they were inserted, no matter how many sort passes run.
//
// # Lazy sorting
//
// Mutations only mark the array dirty. The re-sort happens once, at the
// next operation that observes order (reads, searches, removals by
// index). Sorting is reentrancy-safe: a comparator or formatter that
// calls back into the array mid-sort sees the storage as already sorted
// instead of starting a second pass.
//
// # Searching
//
// [Array.Search] is a bounded binary search returning some element of a
// key's equal run (which one is unspecified) or the insertion point when
// the key is absent. [Array.FindAll] expands a hit to the full
// contiguous run, [Array.FindExact] restricts it to reference-identical
// payloads, [Array.FindNth] resolves a single element of the run by
// [Rank], and [Array.FindNearest] reports the tightest bounding
// neighbors of an absent key.
//
// # Errors
//
// Operations that would let a caller place an element at an arbitrary
// position (Push, Unshift, Set, ...) are rejected with [ErrUnsupported].
// A comparator that returns NaN violates its contract and surfaces as
// [ErrComparator]. The array is not safe for concurrent use.
package sorted
