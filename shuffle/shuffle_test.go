package shuffle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"crimson/shuffle"
)

func TestBlumBlumShub(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, shuffle.BlumBlumShub(1337), shuffle.BlumBlumShub(1337))
		assert.NotEqual(t, shuffle.BlumBlumShub(1337), shuffle.BlumBlumShub(1338))
	})

	t.Run("source advances", func(t *testing.T) {
		src := shuffle.NewSource(1337)
		first := src.Next()
		second := src.Next()
		assert.NotEqual(t, first, second)

		replay := shuffle.NewSource(1337)
		assert.Equal(t, first, replay.Next())
		assert.Equal(t, second, replay.Next())
	})
}

func TestPermutation(t *testing.T) {
	t.Run("is a permutation", func(t *testing.T) {
		vals := shuffle.NewSource(1337).Permutation(100)
		assert.Len(t, vals, 100)

		seen := make(map[int64]bool, len(vals))
		for _, v := range vals {
			assert.False(t, seen[v], "value %d repeated", v)
			assert.GreaterOrEqual(t, v, int64(0))
			assert.Less(t, v, int64(100))
			seen[v] = true
		}
	})

	t.Run("same seed same order", func(t *testing.T) {
		assert.Equal(t,
			shuffle.NewSource(1337).Permutation(15),
			shuffle.NewSource(1337).Permutation(15))
	})

	t.Run("different seed different order", func(t *testing.T) {
		assert.NotEqual(t,
			shuffle.NewSource(1337).Permutation(64),
			shuffle.NewSource(7331).Permutation(64))
	})

	t.Run("tiny inputs", func(t *testing.T) {
		assert.Equal(t, []int64{0}, shuffle.NewSource(1).Permutation(1))
		assert.Empty(t, shuffle.NewSource(1).Permutation(0))
	})
}
