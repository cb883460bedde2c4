package rtpsend

import "errors"

var (
	// ErrRtxNotEnabled is returned by RtxEncode when SetRtx has not been called.
	ErrRtxNotEnabled = errors.New("rtx not enabled on this stream")

	// ErrOversizePacket is returned by storePacket for a packet bigger than the MTU.
	ErrOversizePacket = errors.New("packet exceeds mtu, not stored")

	// ErrIndexOutOfRange is raised by retransmissionBuffer.at on a programmer error.
	ErrIndexOutOfRange = errors.New("retransmission buffer index out of range")
)
