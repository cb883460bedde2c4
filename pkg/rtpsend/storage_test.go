package rtpsend

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_storagePool_slot(t *testing.T) {
	pool := newStoragePool(4, 1200)
	require.Equal(t, 4, pool.capacity())

	for i := 0; i < pool.capacity(); i++ {
		require.Len(t, pool.slot(i), 1200+storageExtraBytes)
	}

	require.Panics(t, func() { pool.slot(-1) })
	require.Panics(t, func() { pool.slot(4) })
}

func Test_storagePool_slotsAreDistinct(t *testing.T) {
	pool := newStoragePool(2, 100)
	pool.slot(0)[0] = 0xAB
	require.NotEqual(t, byte(0xAB), pool.slot(1)[0])
}
