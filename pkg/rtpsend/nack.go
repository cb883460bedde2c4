package rtpsend

import (
	"github.com/pion/rtcp"
	"github.com/pion/rtp"
)

// MaxRequestedPackets bounds how many sequence numbers a single NackPair
// can name: the base packet ID plus up to 16 bits of its follow-up bitmask.
const MaxRequestedPackets = 17

// MaxRetransmissionDelay is the oldest, relative to the newest packet this
// stream has sent, a retained packet may be before a NACK for it is
// ignored as stale.
const MaxRetransmissionDelay = 2000 // milliseconds

// RequestRetransmission answers one NackPair by looking up each sequence
// number it names in the retransmission buffer and returning the packets
// that should actually go back out. A sequence number is skipped, rather
// than resent, when: it was never stored or has already been evicted; it
// is older than MaxRetransmissionDelay relative to the most recent packet
// sent on this stream; or it was already resent within the last estimated
// RTT. The "too old" condition is logged at most once per call, matching
// the source's tooOldPacketFound latch, rather than once per skipped
// sequence number.
func (s *Stream) RequestRetransmission(pair rtcp.NackPair) []*rtp.Packet {
	if !s.params.UseNack {
		s.logger.V(1).Info("nack not supported on this stream")
		return nil
	}
	if s.buf.empty() {
		s.logger.V(2).Info("retransmission buffer empty, nothing to send", "packetID", pair.PacketID)
		return nil
	}

	now := s.nowMs()
	rttMs := uint64(s.rtt.valueOrDefault())
	tooOldLogged := false

	var out []*rtp.Packet
	requested := 0

	pair.Range(func(seq uint16) bool {
		requested++

		item := s.findBufferItem(seq)
		if item == nil || item.packet == nil {
			return requested < MaxRequestedPackets
		}

		diffTs := s.maxPacketTs - item.packet.Timestamp()
		diffMs := uint64(diffTs) * 1000 / uint64(s.params.ClockRate)

		switch {
		case diffMs > MaxRetransmissionDelay:
			s.metrics.observeNackTooOld()
			if !tooOldLogged {
				s.logger.V(1).Info("ignoring retransmission for too old packet",
					"seq", seq, "maxAgeMs", MaxRetransmissionDelay, "ageMs", diffMs)
				tooOldLogged = true
			}
		case item.ResentAtMs != 0 && now-item.ResentAtMs <= rttMs:
			s.logger.V(2).Info("ignoring retransmission already resent within one rtt",
				"seq", seq, "rttMs", rttMs)
		default:
			item.ResentAtMs = now
			item.SentTimes++
			out = append(out, item.packet.Packet())
		}

		return requested < MaxRequestedPackets
	})

	s.metrics.observeNackRequested(requested)
	s.metrics.observeRetransmitted(len(out))
	return out
}

// findBufferItem locates the item holding seq, if still retained. The
// buffer is kept ordered by sequence number, so this is a binary search
// over logical positions using the same wrap-aware comparison as the
// buffer's own ordering.
func (s *Stream) findBufferItem(seq uint16) *bufferItem {
	if s.buf.empty() {
		return nil
	}

	first, last := s.buf.first(), s.buf.last()
	if seqDistance(seq, first.Seq) > seqDistance(last.Seq, first.Seq) {
		// seq falls outside the span the buffer currently covers.
		return nil
	}

	lo, hi := 0, s.buf.size()-1
	for lo <= hi {
		mid := (lo + hi) / 2
		item := s.buf.at(mid)
		switch {
		case item.Seq == seq:
			return item
		case IsSeqHigherThan(seq, item.Seq):
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return nil
}
