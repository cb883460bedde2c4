package rtpsend

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_retransmissionBuffer_orderedInsertBySeq(t *testing.T) {
	b := newRetransmissionBuffer(4)

	idx, dup := b.orderedInsertBySeq(bufferItem{Seq: 10})
	require.False(t, dup)
	require.Equal(t, 0, idx)

	idx, dup = b.orderedInsertBySeq(bufferItem{Seq: 12})
	require.False(t, dup)
	require.Equal(t, 1, idx)

	idx, dup = b.orderedInsertBySeq(bufferItem{Seq: 11})
	require.False(t, dup)
	require.Equal(t, 1, idx)

	require.Equal(t, 3, b.size())
	require.Equal(t, uint16(10), b.at(0).Seq)
	require.Equal(t, uint16(11), b.at(1).Seq)
	require.Equal(t, uint16(12), b.at(2).Seq)
}

func Test_retransmissionBuffer_duplicateDoesNotMutate(t *testing.T) {
	b := newRetransmissionBuffer(4)
	for _, seq := range []uint16{10, 11, 12, 13} {
		b.orderedInsertBySeq(bufferItem{Seq: seq})
	}

	before := make([]uint16, b.size())
	for i := range before {
		before[i] = b.at(i).Seq
	}

	idx, dup := b.orderedInsertBySeq(bufferItem{Seq: 12})
	require.True(t, dup)
	require.Equal(t, 2, idx)
	require.Equal(t, 4, b.size())

	after := make([]uint16, b.size())
	for i := range after {
		after[i] = b.at(i).Seq
	}
	require.Equal(t, before, after)
}

func Test_retransmissionBuffer_trimFront(t *testing.T) {
	b := newRetransmissionBuffer(4)
	for _, seq := range []uint16{1, 2, 3} {
		b.orderedInsertBySeq(bufferItem{Seq: seq})
	}

	b.trimFront()
	require.Equal(t, 2, b.size())
	require.Equal(t, uint16(2), b.first().Seq)
}

func Test_retransmissionBuffer_overflowsByOne(t *testing.T) {
	b := newRetransmissionBuffer(3)
	for _, seq := range []uint16{1, 2, 3} {
		_, dup := b.orderedInsertBySeq(bufferItem{Seq: seq})
		require.False(t, dup)
	}

	_, dup := b.orderedInsertBySeq(bufferItem{Seq: 4})
	require.False(t, dup)
	require.Equal(t, 4, b.size())
	require.Greater(t, b.size(), b.capacity())
}

func Test_retransmissionBuffer_at_outOfRangePanics(t *testing.T) {
	b := newRetransmissionBuffer(2)
	b.orderedInsertBySeq(bufferItem{Seq: 1})

	require.Panics(t, func() { b.at(1) })
	require.Panics(t, func() { b.at(-1) })
}

func Test_retransmissionBuffer_clear(t *testing.T) {
	b := newRetransmissionBuffer(2)
	b.orderedInsertBySeq(bufferItem{Seq: 1})
	b.orderedInsertBySeq(bufferItem{Seq: 2})

	b.clear()
	require.True(t, b.empty())
	require.Equal(t, 0, b.size())
}
