package compare

import "facette.io/natsort"

// Natural returns a string comparator using natural sort order, where
// digit runs embedded in the strings compare numerically (so "file2"
// orders before "file10"). Strings the natural order considers
// equivalent compare as zero.
func Natural() Comparator[string] {
	return func(a, b string) float64 {
		switch {
		case natsort.Compare(a, b):
			return -1
		case natsort.Compare(b, a):
			return 1
		default:
			return 0
		}
	}
}
