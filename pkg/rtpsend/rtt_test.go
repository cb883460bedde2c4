package rtpsend

import (
	"testing"

	"github.com/pion/rtcp"
	"github.com/stretchr/testify/require"
)

func Test_Stream_RTT_defaultsWhenUnknown(t *testing.T) {
	s := newTestStream(10)
	require.Equal(t, DefaultRtt, s.RTT())
}

func Test_Stream_ReceiveRTCPReceiverReport_updatesRttAndLoss(t *testing.T) {
	s := newTestStream(10)
	nowMs := uint64(1_700_000_000_000)
	s.SetClock(func() uint64 { return nowMs })

	now := toCompactNtp(toNtp(msToTime(nowMs)))
	lastSR := now - 1000 // roughly 15ms in compact-NTP units back
	s.ReceiveRTCPReceiverReport(&rtcp.ReceptionReport{
		TotalLost:        7,
		FractionLost:     12,
		LastSenderReport: lastSR,
		Delay:            1,
	})

	require.Equal(t, uint32(7), s.packetsLost)
	require.Equal(t, uint8(12), s.fractionLost)
	require.NotEqual(t, DefaultRtt, s.RTT())
	require.Greater(t, s.RTT(), 0.0)
}

func Test_Stream_ReceiveRTCPReceiverReport_zeroLSRIgnored(t *testing.T) {
	s := newTestStream(10)
	s.ReceiveRTCPReceiverReport(&rtcp.ReceptionReport{LastSenderReport: 0, Delay: 5})
	require.Equal(t, DefaultRtt, s.RTT())
}

func Test_Stream_ReceiveRTCPReceiverReport_nilIsNoop(t *testing.T) {
	s := newTestStream(10)
	s.ReceiveRTCPReceiverReport(nil)
	require.Equal(t, DefaultRtt, s.RTT())
}
