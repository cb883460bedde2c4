package rtpsend

import "math"

// Stats is the subset of the WebRTC outbound-rtp stats object this module
// is responsible for filling in; a caller composing the full stats report
// for a track merges this in alongside fields owned elsewhere (codec,
// frames encoded, and so on).
type Stats struct {
	Type          string  `json:"type"`
	PacketsSent   uint32  `json:"packetsSent"`
	BytesSent     uint32  `json:"bytesSent"`
	PacketsLost   uint32  `json:"packetsLost"`
	FractionLost  float64 `json:"fractionLost"`
	RoundTripTime float64 `json:"roundTripTime"`
}

// Stats reports this stream's current counters. RoundTripTime is the RTT
// estimate floored to whole milliseconds.
func (s *Stream) Stats() Stats {
	return Stats{
		Type:          "outbound-rtp",
		PacketsSent:   s.packetCount,
		BytesSent:     s.octetCount,
		PacketsLost:   s.packetsLost,
		FractionLost:  float64(s.fractionLost) / 256,
		RoundTripTime: math.Floor(s.RTT()),
	}
}
