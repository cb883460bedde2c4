package main

import (
	"github.com/gammazero/deque"
	"github.com/pion/rtp"
)

// packetGenerator queues synthetic outgoing RTP packets ahead of feeding
// them to the stream one at a time, mirroring how the teacher's
// pkg/sfu/buffer.Buffer queues packets in a deque.Deque before processing.
type packetGenerator struct {
	queue     deque.Deque[*rtp.Packet]
	ssrc      uint32
	clockRate uint32
	nextSeq   uint16
	nextTs    uint32
}

func newPacketGenerator(ssrc, clockRate uint32) *packetGenerator {
	return &packetGenerator{ssrc: ssrc, clockRate: clockRate}
}

// fill appends n synthetic packets, each clockRate/30 timestamp units apart
// (a 30fps cadence), with a tiny fixed payload.
func (g *packetGenerator) fill(n int) {
	for i := 0; i < n; i++ {
		g.queue.PushBack(&rtp.Packet{
			Header: rtp.Header{
				Version:        2,
				PayloadType:    96,
				SequenceNumber: g.nextSeq,
				Timestamp:      g.nextTs,
				SSRC:           g.ssrc,
			},
			Payload: []byte{0xDE, 0xAD, 0xBE, 0xEF},
		})
		g.nextSeq++
		g.nextTs += g.clockRate / 30
	}
}

func (g *packetGenerator) empty() bool {
	return g.queue.Len() == 0
}

func (g *packetGenerator) next() *rtp.Packet {
	return g.queue.PopFront()
}
