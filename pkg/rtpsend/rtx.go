package rtpsend

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/pion/rtp"
)

// rtxState holds the parameters of the RTX stream this Stream retransmits
// through: a distinct payload type and SSRC from the media stream, and a
// sequence number space of its own.
type rtxState struct {
	enabled     bool
	payloadType uint8
	ssrc        uint32
	seq         uint16
}

// SetRtx enables RTX encoding for subsequent retransmissions. The initial
// RTX sequence number is randomized, matching the recommendation that it
// not be predictable or start at zero.
func (s *Stream) SetRtx(payloadType uint8, ssrc uint32) {
	var b [2]byte
	_, _ = rand.Read(b[:])

	s.rtx = rtxState{
		enabled:     true,
		payloadType: payloadType,
		ssrc:        ssrc,
		seq:         binary.BigEndian.Uint16(b[:]),
	}
}

// HasRtx reports whether SetRtx has been called.
func (s *Stream) HasRtx() bool {
	return s.rtx.enabled
}

// RtxEncode rewrites pkt in place as an RTX packet per RFC 4588 and returns
// it ready to send: the payload becomes a 2-byte original-sequence-number
// prefix (network byte order) followed by the unmodified original payload,
// and the header's payload type, SSRC, and sequence number are replaced.
// Callers route a RequestRetransmission result through this before sending
// it back out; pkt's Payload slice already has the extra headroom a packet
// taken from the retransmission buffer needs for the prefix to be inserted
// without allocating, since the storage pool sizes slots at mtu+100.
//
// The prefix is inserted only once per packet: pkt.PayloadType already
// equal to the RTX payload type means an earlier call already did the
// shift, so only the sequence number (and, redundantly, SSRC/payload type)
// are refreshed. Without this check, a packet resent more than once would
// have its payload shifted further right on every call and end up
// corrupted.
func (s *Stream) RtxEncode(pkt *rtp.Packet) (*rtp.Packet, error) {
	if !s.rtx.enabled {
		return nil, ErrRtxNotEnabled
	}

	if pkt.PayloadType != s.rtx.payloadType {
		orig := pkt.SequenceNumber
		n := len(pkt.Payload)

		var buf []byte
		if cap(pkt.Payload) >= n+2 {
			buf = pkt.Payload[:n+2]
			copy(buf[2:], pkt.Payload[:n])
		} else {
			buf = make([]byte, n+2)
			copy(buf[2:], pkt.Payload)
		}
		binary.BigEndian.PutUint16(buf[:2], orig)
		pkt.Payload = buf
	}

	s.rtx.seq++
	pkt.PayloadType = s.rtx.payloadType
	pkt.SSRC = s.rtx.ssrc
	pkt.SequenceNumber = s.rtx.seq
	return pkt, nil
}
