package rtpsend

// isTimestampWrapAround and isLaterTimestamp mirror the wrap-aware RTP
// timestamp comparison the teacher uses for its inbound jitter/ordering
// tracking (pkg/buffer/buffer.go), adapted here to maintain maxPacketTs on
// the egress side: this module owns that hook itself rather than receiving
// it from an external base-stream object.
func isTimestampWrapAround(ts1, ts2 uint32) bool {
	return ts2 < ts1 && ts1 > 0xf0000000 && ts2 < 0x0fffffff
}

func isLaterTimestamp(ts1, ts2 uint32) bool {
	if ts1 > ts2 {
		return !isTimestampWrapAround(ts1, ts2)
	}
	return isTimestampWrapAround(ts2, ts1)
}
