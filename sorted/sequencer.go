package sorted

import (
	"math"
	"sort"
)

const (
	// sequenceFloor and sequenceCeil bound the issuable sequence range.
	// The top int64 value is reserved for emulated probe sequences, so a
	// transient search key can never collide with a stored node.
	sequenceFloor int64 = math.MinInt64 + 1
	sequenceCeil  int64 = math.MaxInt64 - 1

	emulatedSequence int64 = math.MaxInt64
)

// sequencer issues the strictly increasing insertion sequence numbers
// that back the comparator tie-break.
type sequencer[T any] struct {
	counter int64
}

func newSequencer[T any]() sequencer[T] {
	return sequencer[T]{counter: sequenceFloor}
}

// next issues the sequence number for a genuinely inserted node. It is
// strictly greater than every previously issued sequence, except across
// a renumbering pass, which next triggers once the counter exhausts the
// issuable range.
func (s *sequencer[T]) next(live []*node[T]) int64 {
	if s.counter > sequenceCeil {
		s.renumber(live)
	}

	seq := s.counter
	s.counter++

	return seq
}

// emulated returns the sequence for a transient probe node used by the
// search engine. It never advances the counter; the reserved value sits
// above every issuable sequence, so a probe orders after any stored node
// it ties with and must never be persisted.
func (s *sequencer[T]) emulated() int64 {
	return emulatedSequence
}

// renumber reassigns a dense, strictly increasing sequence to every live
// node and resets the counter to the floor. Nodes are visited in the
// order of their current sequences (stably, via a snapshot), so relative
// insertion order — and with it the grouping of comparator-equal
// elements — is preserved. Triggered so rarely that the O(n log n) cost
// is amortized to nothing.
func (s *sequencer[T]) renumber(live []*node[T]) {
	snapshot := make([]*node[T], len(live))
	copy(snapshot, live)

	sort.SliceStable(snapshot, func(i, j int) bool {
		return snapshot[i].seq < snapshot[j].seq
	})

	s.counter = sequenceFloor

	for _, n := range snapshot {
		n.seq = s.counter
		s.counter++
	}
}
