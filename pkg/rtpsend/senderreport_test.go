package rtpsend

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Stream_GetRTCPSenderReport_nilBeforeFirstPacket(t *testing.T) {
	s := newTestStream(10)
	require.Nil(t, s.GetRTCPSenderReport(1111, 0))
}

func Test_Stream_GetRTCPSenderReport_populatedAfterPackets(t *testing.T) {
	s := newTestStream(10)
	storeSeq(t, s, 1, 3000)
	storeSeq(t, s, 2, 6000)

	sr := s.GetRTCPSenderReport(1111, 123456)
	require.NotNil(t, sr)
	require.Equal(t, uint32(1111), sr.SSRC)
	require.Equal(t, uint32(6000), sr.RTPTime)
	require.Equal(t, uint32(2), sr.PacketCount)
	require.Greater(t, sr.OctetCount, uint32(0))
}
