package sorted

// node pairs one stored payload with the insertion sequence number that
// breaks comparator ties. Nodes are owned by the Array and never escape
// it; only the sequence field is ever rewritten, and only during a
// renumbering pass.
type node[T any] struct {
	payload T
	seq     int64
}
