package archive_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crimson/archive"
)

func openStore(t *testing.T) *archive.Store {
	t.Helper()

	store, err := archive.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

func TestPutGet(t *testing.T) {
	store := openStore(t)

	require.NoError(t, store.Put("rand", 0, []byte("digraph RBTree {}")))

	rec, err := store.Get("rand", 0)
	require.NoError(t, err)
	assert.Equal(t, []byte("digraph RBTree {}"), rec.Data)
	assert.NotZero(t, rec.TakenAt)

	_, err = store.Get("rand", 99)
	assert.Error(t, err)
}

func TestScanInStepOrder(t *testing.T) {
	store := openStore(t)

	// Insert out of order; keys are zero-padded so the scan comes
	// back sorted.
	for _, step := range []uint32{5, 1, 3, 2, 4, 0} {
		payload := fmt.Sprintf("step-%d", step)
		require.NoError(t, store.Put("sorted", step, []byte(payload)))
	}
	require.NoError(t, store.Put("other", 0, []byte("unrelated")))

	var steps []uint32
	err := store.Scan("sorted", func(step uint32, rec archive.Record) error {
		steps = append(steps, step)
		assert.Equal(t, fmt.Sprintf("step-%d", step), string(rec.Data))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 1, 2, 3, 4, 5}, steps)
}

func TestScanStopsOnError(t *testing.T) {
	store := openStore(t)

	for step := uint32(0); step < 3; step++ {
		require.NoError(t, store.Put("rand", step, []byte("x")))
	}

	calls := 0
	err := store.Scan("rand", func(uint32, archive.Record) error {
		calls++
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 1, calls)
}
