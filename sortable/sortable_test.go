package sortable_test

import (
	"testing"

	"github.com/amp-labs/amp-sorted/sortable"
	"github.com/stretchr/testify/assert"
)

func TestComparator(t *testing.T) {
	t.Parallel()

	t.Run("ints", func(t *testing.T) {
		t.Parallel()

		cmp := sortable.Comparator[sortable.Int]()
		assert.Negative(t, cmp(sortable.Int(1), sortable.Int(2)))
		assert.Positive(t, cmp(sortable.Int(2), sortable.Int(1)))
		assert.Zero(t, cmp(sortable.Int(7), sortable.Int(7)))
	})

	t.Run("strings", func(t *testing.T) {
		t.Parallel()

		cmp := sortable.Comparator[sortable.String]()
		assert.Negative(t, cmp(sortable.String("a"), sortable.String("b")))
		assert.Zero(t, cmp(sortable.String("a"), sortable.String("a")))
	})

	t.Run("bytes", func(t *testing.T) {
		t.Parallel()

		cmp := sortable.Comparator[sortable.Byte]()
		assert.Negative(t, cmp(sortable.Byte('a'), sortable.Byte('z')))
		assert.Positive(t, cmp(sortable.Byte('z'), sortable.Byte('a')))
	})
}
