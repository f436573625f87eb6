package sorted

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArray_String(t *testing.T) {
	t.Parallel()

	t.Run("renders the sorted view", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "[1 2 3]", Of(intCompare, 3, 1, 2).String())
	})

	t.Run("empty array", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "[]", New(intCompare).String())
	})

	t.Run("works through fmt", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "got [1 2]", fmt.Sprintf("got %v", Of(intCompare, 2, 1)))
	})

	t.Run("self containment renders the circular marker", func(t *testing.T) {
		t.Parallel()

		arr := NewAny()
		arr.Add(1)
		arr.Add(arr)

		assert.Equal(t, "[1 [Circular]]", arr.String())
	})

	t.Run("join substitutes the marker for a self element", func(t *testing.T) {
		t.Parallel()

		arr := NewAny()
		arr.Add("a")
		arr.Add(arr)

		out, err := arr.Join(", ")
		require.NoError(t, err)
		assert.Equal(t, "[Circular], a", out)
	})
}
