package rtpsend

import (
	"github.com/go-logr/logr"
	"github.com/pion/rtp"
)

// DefaultMTU matches the teacher's bucket sizing for a single outgoing RTP
// packet before RTX headroom is added.
const DefaultMTU = 1500

// BaseReceiver is the external collaborator this module hooks into: the
// outer RtpStreamSend-equivalent that tracks sequence-number continuity,
// jitter, and loss, and decides whether a packet is accepted onto the wire
// at all. That machinery is out of scope here; a Stream with a nil
// BaseReceiver accepts every packet handed to it.
type BaseReceiver interface {
	ReceivePacket(pkt *rtp.Packet) bool
}

// DefaultClockRate is assumed when Params.ClockRate is left zero; it
// matches the common video clock rate and only affects the too-old-packet
// age computation, not correctness of storage or ordering.
const DefaultClockRate = 90000

// Params configures a Stream at construction time.
type Params struct {
	// MTU bounds the size of a packet this stream will retain for
	// retransmission; larger packets are still sent, just never stored.
	MTU int
	// ClockRate is the RTP clock rate in Hz, used by the NACK responder's
	// packet-age check.
	ClockRate uint32
	// UseNack gates RequestRetransmission; when false every NACK is logged
	// and ignored, matching a stream whose negotiated RTP parameters never
	// advertised NACK support.
	UseNack bool
}

// Stream is the sender-side retransmission core for one outgoing RTP
// stream: it retains a bounded window of recently-sent packets, answers
// NACKs with RTX-encoded copies of them, and emits RTCP sender reports.
type Stream struct {
	params  Params
	Base    BaseReceiver
	logger  logr.Logger
	metrics *Metrics

	storage *storagePool
	buf     *retransmissionBuffer

	maxPacketTs uint32
	packetCount uint32
	octetCount  uint32

	packetsLost  uint32
	fractionLost uint8

	rtt   *rtt
	rtx   rtxState
	nowMs func() uint64
}

// NewStream allocates a Stream with a retransmission window of bufferSize
// packets. logger and metrics may be zero-value/nil respectively.
func NewStream(params Params, bufferSize int, logger logr.Logger, metrics *Metrics) *Stream {
	if params.MTU <= 0 {
		params.MTU = DefaultMTU
	}
	if params.ClockRate == 0 {
		params.ClockRate = DefaultClockRate
	}
	return &Stream{
		params:  params,
		logger:  logger,
		metrics: metrics,
		storage: newStoragePool(bufferSize, params.MTU),
		buf:     newRetransmissionBuffer(bufferSize),
		rtt:     newRtt(),
		nowMs:   defaultNowMs,
	}
}

// ReceivePacket is the per-outgoing-packet hook: it defers to Base (if any)
// for stream-level acceptance, then stores an accepted packet for possible
// later retransmission and folds it into the transmission counters the
// sender-report emitter reads.
func (s *Stream) ReceivePacket(pkt *rtp.Packet) bool {
	if s.Base != nil && !s.Base.ReceivePacket(pkt) {
		return false
	}

	if s.storage.capacity() > 0 {
		if err := s.storePacket(pkt); err != nil {
			s.logger.V(1).Info(err.Error(), "seq", pkt.SequenceNumber)
		}
	}

	if s.packetCount == 0 || isLaterTimestamp(pkt.Timestamp, s.maxPacketTs) {
		s.maxPacketTs = pkt.Timestamp
	}
	s.packetCount++
	s.octetCount += uint32(pkt.MarshalSize())

	return true
}

// storePacket implements the ordered-insert-then-slot-assign path: packets
// larger than the MTU are dropped, an exact sequence-number duplicate
// replaces the existing clone in place only if its timestamp differs
// (repeated SRTP-retransmitted copies of the same packet are otherwise
// silently ignored), and a genuinely new sequence number is cloned into
// either the next never-used slot or, once the buffer is full, the slot
// just freed by evicting the oldest retained packet.
func (s *Stream) storePacket(pkt *rtp.Packet) error {
	size := pkt.MarshalSize()
	if size > s.params.MTU {
		s.metrics.observeDropped()
		return ErrOversizePacket
	}

	idx, duplicate := s.buf.orderedInsertBySeq(bufferItem{Seq: pkt.SequenceNumber})

	if duplicate {
		existing := s.buf.at(idx)
		if existing.packet != nil && existing.packet.Timestamp() == pkt.Timestamp {
			return nil
		}
		if existing.packet == nil {
			// A retained item with no clone yet would mean its slot was
			// never assigned, which orderedInsertBySeq never produces for
			// an index it reports as a duplicate.
			panic("rtpsend: duplicate buffer item has no packet")
		}
		cp, err := cloneInto(pkt, existing.packet.slot)
		if err != nil {
			return err
		}
		existing.ResentAtMs = 0
		existing.SentTimes = 0
		existing.packet = cp
		return nil
	}

	overflow := s.buf.size() > s.buf.capacity()
	if overflow && idx == 0 {
		// the new packet sorts older than everything retained and the
		// buffer was already full: it is evicted immediately, equivalent
		// to never having been stored.
		s.buf.trimFront()
		return nil
	}

	var slot []byte
	if !overflow {
		slot = s.storage.slot(s.buf.size() - 1)
	} else {
		evicted := s.buf.first()
		slot = evicted.packet.slot
		s.buf.trimFront()
		idx--
	}

	cp, err := cloneInto(pkt, slot)
	if err != nil {
		return err
	}
	s.buf.at(idx).packet = cp
	s.metrics.observeStored()
	return nil
}

// ClearRetransmissionBuffer drops every retained packet, e.g. on a keyframe
// that makes earlier retransmittable packets moot.
func (s *Stream) ClearRetransmissionBuffer() {
	s.buf.clear()
}

// Healthy reports whether this stream currently has any packets on hand to
// retransmit.
func (s *Stream) Healthy() bool {
	return !s.buf.empty()
}

// Close releases the retransmission window. A closed Stream must not be
// used again.
func (s *Stream) Close() {
	s.buf.clear()
}
