package sorted

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequencer_Next(t *testing.T) {
	t.Parallel()

	t.Run("sequences are strictly increasing from the floor", func(t *testing.T) {
		t.Parallel()

		seq := newSequencer[int]()

		prev := seq.next(nil)
		assert.Equal(t, sequenceFloor, prev)

		for range 100 {
			next := seq.next(nil)
			assert.Greater(t, next, prev)
			prev = next
		}
	})

	t.Run("emulated sequence orders after every issued sequence", func(t *testing.T) {
		t.Parallel()

		seq := newSequencer[int]()

		for range 100 {
			assert.Less(t, seq.next(nil), seq.emulated())
		}
	})

	t.Run("emulated never advances the counter", func(t *testing.T) {
		t.Parallel()

		seq := newSequencer[int]()

		seq.emulated()
		seq.emulated()

		assert.Equal(t, sequenceFloor, seq.next(nil))
	})
}

func TestSequencer_Renumber(t *testing.T) {
	t.Parallel()

	t.Run("exhaustion renumbers live nodes densely from the floor", func(t *testing.T) {
		t.Parallel()

		arr := New(pairCompare)
		arr.AddAll(pair{1, 0}, pair{1, 1}, pair{1, 2})

		// Pretend the issuable range is spent.
		arr.seq.counter = sequenceCeil + 1

		arr.Add(pair{1, 3})

		for i, n := range arr.nodes {
			assert.Equal(t, sequenceFloor+int64(i), n.seq)
		}
	})

	t.Run("renumbering preserves the tie-break among equal elements", func(t *testing.T) {
		t.Parallel()

		arr := New(pairCompare)
		arr.AddAll(pair{2, 0}, pair{1, 1}, pair{2, 2}, pair{1, 3})

		arr.seq.counter = sequenceCeil + 1
		arr.Add(pair{1, 4})

		got, err := arr.ToArray()
		require.NoError(t, err)
		assert.Equal(t, []pair{{1, 1}, {1, 3}, {1, 4}, {2, 0}, {2, 2}}, got)
	})

	t.Run("renumbering keeps relative order of stale sequences", func(t *testing.T) {
		t.Parallel()

		seq := newSequencer[int]()

		nodes := []*node[int]{
			{payload: 10, seq: 500},
			{payload: 20, seq: -3},
			{payload: 30, seq: 42},
		}

		seq.renumber(nodes)

		// Dense reassignment follows the old sequence order, not the
		// slice order.
		assert.Equal(t, sequenceFloor+1, nodes[0].seq)
		assert.Equal(t, sequenceFloor, nodes[1].seq)
		assert.Equal(t, sequenceFloor+2, nodes[2].seq)
		assert.Equal(t, sequenceFloor+3, seq.counter)
	})
}
