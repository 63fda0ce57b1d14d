package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rec struct{ id int }

func TestRetireRingFIFO(t *testing.T) {
	ring := NewRetireRing[rec](4)

	for i := 0; i < 4; i++ {
		require.True(t, ring.Enqueue(&rec{id: i}))
	}
	assert.False(t, ring.Enqueue(&rec{id: 99}), "full ring must reject")

	for i := 0; i < 4; i++ {
		v := ring.Dequeue()
		require.NotNil(t, v)
		assert.Equal(t, i, v.id)
	}
	assert.Nil(t, ring.Dequeue(), "empty ring returns nil")
}

func TestRetireRingSizeMustBePowerOfTwo(t *testing.T) {
	assert.Panics(t, func() { NewRetireRing[rec](3) })
}

func TestDrainIntoPool(t *testing.T) {
	pool := NewPool(func() *rec { return &rec{} })
	ring := NewRetireRing[rec](8)

	retired := &rec{id: 7}
	require.True(t, ring.Enqueue(retired))
	ring.Drain(pool)

	assert.Nil(t, ring.Dequeue())
	// The retired record is available for reuse.
	got := pool.Get()
	assert.Equal(t, retired, got)
}
