package rtpsend

import "time"

// ntpEpochOffset is the number of seconds between the NTP epoch (1900-01-01)
// and the Unix epoch, the same constant the vendored pion NTP helper uses.
const ntpEpochOffset = 2208988800

// toNtp converts a wall-clock time into a 64 bit NTP timestamp: the upper 32
// bits are whole seconds since the NTP epoch, the lower 32 bits are the
// fractional part.
func toNtp(t time.Time) uint64 {
	nanos := uint64(t.UnixNano())
	seconds := nanos/1e9 + ntpEpochOffset
	fraction := (nanos % 1e9) << 32 / 1e9
	return seconds<<32 | fraction
}

// toCompactNtp takes the middle 32 bits of a 64 bit NTP timestamp: the low
// 16 bits of the seconds field and the high 16 bits of the fraction field.
// This is the representation RTCP sender reports and the LSR/DLSR fields of
// receiver reports use.
func toCompactNtp(full uint64) uint32 {
	return uint32(full >> 16)
}
