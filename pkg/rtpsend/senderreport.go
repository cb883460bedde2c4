package rtpsend

import "github.com/pion/rtcp"

// GetRTCPSenderReport builds the sender report for this stream as of nowMs.
// It returns nil before the first packet has gone out, since a sender
// report with zero packet and octet counts conveys no useful information
// and the caller is expected to simply skip emitting one.
func (s *Stream) GetRTCPSenderReport(ssrc uint32, nowMs uint64) *rtcp.SenderReport {
	if s.packetCount == 0 {
		return nil
	}

	return &rtcp.SenderReport{
		SSRC:        ssrc,
		NTPTime:     toNtp(msToTime(nowMs)),
		RTPTime:     s.maxPacketTs,
		PacketCount: s.packetCount,
		OctetCount:  s.octetCount,
	}
}
