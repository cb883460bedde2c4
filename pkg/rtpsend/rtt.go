package rtpsend

import "github.com/pion/rtcp"

// DefaultRtt is used until the first receiver report lets us compute a real
// estimate, and again whenever a report's receipt time is not later than
// LSR+DLSR (the estimate is then reset to 0). A report with a zero LSR or
// DLSR leaves the current estimate, default or computed, unchanged.
const DefaultRtt = 100.0 // milliseconds

// rtt tracks the round-trip time estimate derived from RTCP receiver
// reports, per the RFC 3550 section 6.4.1 formula: RTT = A - LSR - DLSR,
// where A is the compact NTP time of report receipt. A value of 0 means
// "unknown"; valueOrDefault substitutes DefaultRtt in that case.
type rtt struct {
	valueMs float64
}

func newRtt() *rtt {
	return &rtt{}
}

func (r *rtt) valueOrDefault() float64 {
	if r.valueMs == 0 {
		return DefaultRtt
	}
	return r.valueMs
}

// update folds one receiver report's LSR/DLSR pair into the estimate. A
// zero LSR or DLSR means the receiver has not yet echoed a sender report to
// time against, so the fields carry no information (matches the original
// source's guard before attempting the calculation at all). Otherwise the
// compact-NTP subtraction only yields a meaningful RTT when the receipt
// time is actually later than lastSR+DLSR; when it isn't (clock skew, a
// stale report), the estimate resets to 0 rather than wrapping into a
// nonsense multi-hour value.
func (r *rtt) update(lastSR, delaySinceLastSR uint32, nowMs uint64) {
	if lastSR == 0 || delaySinceLastSR == 0 {
		return
	}

	now := toCompactNtp(toNtp(msToTime(nowMs)))
	if now <= lastSR+delaySinceLastSR {
		r.valueMs = 0
		return
	}

	compactRtt := now - lastSR - delaySinceLastSR
	r.valueMs = float64(compactRtt>>16)*1000 + float64(compactRtt&0x0000ffff)/65536*1000
}

// ReceiveRTCPReceiverReport folds one ReceptionReport for this stream's SSRC
// into the loss stats and RTT estimate.
func (s *Stream) ReceiveRTCPReceiverReport(report *rtcp.ReceptionReport) {
	if report == nil {
		return
	}
	s.packetsLost = report.TotalLost
	s.fractionLost = report.FractionLost

	s.rtt.update(report.LastSenderReport, report.Delay, s.nowMs())
	s.metrics.observeRtt(s.rtt.valueOrDefault())
}

// RTT returns the current round-trip time estimate in milliseconds.
func (s *Stream) RTT() float64 {
	return s.rtt.valueOrDefault()
}
