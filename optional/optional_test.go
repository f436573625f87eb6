package optional_test

import (
	"testing"

	"github.com/amp-labs/amp-sorted/optional"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSomeAndNone(t *testing.T) {
	t.Parallel()

	t.Run("Some contains a value", func(t *testing.T) {
		t.Parallel()

		v := optional.Some(42)

		assert.True(t, v.NonEmpty())
		assert.False(t, v.Empty())
		assert.Equal(t, 1, v.Size())

		got, ok := v.Get()
		require.True(t, ok)
		assert.Equal(t, 42, got)
	})

	t.Run("None is empty", func(t *testing.T) {
		t.Parallel()

		v := optional.None[int]()

		assert.False(t, v.NonEmpty())
		assert.True(t, v.Empty())
		assert.Equal(t, 0, v.Size())

		_, ok := v.Get()
		assert.False(t, ok)
	})
}

func TestGetOrElse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "value", optional.Some("value").GetOrElse("default"))
	assert.Equal(t, "default", optional.None[string]().GetOrElse("default"))

	assert.Equal(t, 7, optional.None[int]().GetOrElseFunc(func() int { return 7 }))
}

func TestGetOrPanic(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, optional.Some(1).GetOrPanic())
	assert.Panics(t, func() {
		optional.None[int]().GetOrPanic()
	})
}

func TestOrElse(t *testing.T) {
	t.Parallel()

	some := optional.Some(1)
	other := optional.Some(2)

	assert.Equal(t, some, some.OrElse(other))
	assert.Equal(t, other, optional.None[int]().OrElse(other))
}

func TestAllAndForEach(t *testing.T) {
	t.Parallel()

	var seen []int

	for v := range optional.Some(3).All() {
		seen = append(seen, v)
	}

	optional.None[int]().ForEach(func(v int) {
		seen = append(seen, v)
	})

	assert.Equal(t, []int{3}, seen)
}

func TestFilter(t *testing.T) {
	t.Parallel()

	even := func(v int) bool { return v%2 == 0 }

	assert.True(t, optional.Some(2).Filter(even).NonEmpty())
	assert.True(t, optional.Some(3).Filter(even).Empty())
	assert.True(t, optional.None[int]().Filter(even).Empty())
}

func TestEquals(t *testing.T) {
	t.Parallel()

	eq := func(a, b int) bool { return a == b }

	assert.True(t, optional.Some(1).Equals(optional.Some(1), eq))
	assert.False(t, optional.Some(1).Equals(optional.Some(2), eq))
	assert.False(t, optional.Some(1).Equals(optional.None[int](), eq))
	assert.True(t, optional.None[int]().Equals(optional.None[int](), eq))
}

func TestMapAndFlatMap(t *testing.T) {
	t.Parallel()

	doubled := optional.Map(optional.Some(21), func(v int) int { return v * 2 })
	assert.Equal(t, 42, doubled.GetOrPanic())

	none := optional.Map(optional.None[int](), func(v int) int { return v * 2 })
	assert.True(t, none.Empty())

	flat := optional.FlatMap(optional.Some(5), func(v int) optional.Value[string] {
		return optional.Some("five")
	})
	assert.Equal(t, "five", flat.GetOrPanic())
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Some(42)", optional.Some(42).String())
	assert.Equal(t, "None", optional.None[int]().String())
}
