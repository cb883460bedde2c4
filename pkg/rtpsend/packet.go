package rtpsend

import (
	"github.com/pion/rtp"
)

// cachedPacket is a clone of an outgoing RTP packet living inside a
// storagePool slot. Its header is a private copy; its Payload aliases the
// slot's backing array, so no per-packet payload allocation happens on the
// retransmission path. The slot's extra headroom (see storageExtraBytes)
// is what later lets Stream.RtxEncode grow Payload in place for the OSN
// prefix without reallocating.
type cachedPacket struct {
	pkt  rtp.Packet
	slot []byte
}

// cloneInto marshals src into slot and unmarshals the result back into a
// fresh cachedPacket, so Payload/Raw end up referencing slot rather than a
// newly allocated buffer.
func cloneInto(src *rtp.Packet, slot []byte) (*cachedPacket, error) {
	n, err := src.MarshalTo(slot)
	if err != nil {
		return nil, err
	}

	cp := &cachedPacket{slot: slot}
	if err := cp.pkt.Unmarshal(slot[:n]); err != nil {
		return nil, err
	}
	return cp, nil
}

func (cp *cachedPacket) SequenceNumber() uint16 { return cp.pkt.SequenceNumber }
func (cp *cachedPacket) Timestamp() uint32      { return cp.pkt.Timestamp }
func (cp *cachedPacket) Size() int              { return cp.pkt.MarshalSize() }

// Packet returns the live packet for sending; callers must not retain it
// past the next store into the same slot.
func (cp *cachedPacket) Packet() *rtp.Packet { return &cp.pkt }
