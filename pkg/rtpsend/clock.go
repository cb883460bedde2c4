package rtpsend

import "time"

// defaultNowMs is the production wall-clock source; Stream.nowMs is swapped
// out in tests so throttle checks and RTT estimates don't depend on real time
// passing.
func defaultNowMs() uint64 {
	return uint64(time.Now().UnixMilli())
}

func msToTime(ms uint64) time.Time {
	return time.UnixMilli(int64(ms))
}

// SetClock overrides the wall-clock source this stream uses for NACK
// throttling, resend bookkeeping, and RTT estimation; production code never
// needs it.
func (s *Stream) SetClock(now func() uint64) {
	s.nowMs = now
}
