// Command rtpsend-demo drives pkg/rtpsend.Stream with a synthetic packet
// source, standing in for the live outgoing RTP stream the core is
// normally wired to. It exists to exercise construction, storage, NACK
// handling, and sender-report emission end to end the way the teacher's
// cmd/server wires pkg/sfu together, just at the scale of a single stream.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-logr/logr"
	"github.com/pion/rtcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"

	"github.com/LivelyVideo/rtpsend/pkg/logger"
	"github.com/LivelyVideo/rtpsend/pkg/rtpsend"
)

var baseFlags = []cli.Flag{
	&cli.StringFlag{Name: "config", Usage: "path to a YAML config file, optional"},
	&cli.IntFlag{Name: "buffer-size", Usage: "retransmission window size in packets"},
	&cli.IntFlag{Name: "mtu", Usage: "max retained packet size in bytes"},
	&cli.UintFlag{Name: "clock-rate", Usage: "RTP clock rate in Hz"},
	&cli.BoolFlag{Name: "use-nack", Usage: "answer NACK requests"},
	&cli.IntFlag{Name: "packet-count", Usage: "number of synthetic packets to send"},
	&cli.IntFlag{Name: "nack-every", Usage: "simulate a NACK every N packets"},
	&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn, or error"},
	&cli.BoolFlag{Name: "dev", Usage: "use development (console) logging"},
}

func main() {
	app := &cli.App{
		Name:   "rtpsend-demo",
		Usage:  "exercise the sender-side RTP retransmission core against a synthetic stream",
		Flags:  baseFlags,
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	conf, err := loadConfig(c.String("config"))
	if err != nil {
		return err
	}
	applyFlagOverrides(c, &conf)

	log := logger.New(!conf.Dev, conf.LogLevel)
	log.Info("starting rtpsend-demo", "config", conf)

	registry := prometheus.NewRegistry()
	metrics := rtpsend.NewMetrics(registry, prometheus.Labels{"stream": "demo"})

	stream := rtpsend.NewStream(rtpsend.Params{
		MTU:       conf.MTU,
		ClockRate: conf.ClockRate,
		UseNack:   conf.UseNack,
	}, conf.BufferSize, log, metrics)
	stream.SetRtx(conf.RTXPayloadType, conf.RTXSSRC)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	gen := newPacketGenerator(conf.SSRC, conf.ClockRate)
	gen.fill(conf.PacketCount)

	sent := 0
	for !gen.empty() {
		select {
		case <-ctx.Done():
			log.Info("interrupted, shutting down early", "sent", sent)
			stream.Close()
			return nil
		default:
		}

		pkt := gen.next()
		stream.ReceivePacket(pkt)
		sent++

		if conf.NackEveryN > 0 && sent%conf.NackEveryN == 0 && pkt.SequenceNumber >= 2 {
			simulateNack(log, stream, pkt.SequenceNumber)
		}

		if sent%50 == 0 {
			emitSenderReport(log, stream, conf.SSRC)
		}
	}

	emitSenderReport(log, stream, conf.SSRC)
	stream.Close()
	log.Info("done", "sent", sent)
	return nil
}

// simulateNack asks for retransmission of the two packets immediately
// preceding lastSeq, standing in for a receiver-originated RTCP NACK, then
// routes whatever comes back through the RTX encoder before it would go out
// on the wire.
func simulateNack(log logr.Logger, stream *rtpsend.Stream, lastSeq uint16) {
	pair := rtcp.NackPair{PacketID: lastSeq - 2, LostPackets: 0x0001}
	resent := stream.RequestRetransmission(pair)

	rtxSeqs := make([]uint16, 0, len(resent))
	if stream.HasRtx() {
		for _, pkt := range resent {
			rtxPkt, err := stream.RtxEncode(pkt)
			if err != nil {
				log.Info("rtx encode failed", "err", err.Error())
				continue
			}
			rtxSeqs = append(rtxSeqs, rtxPkt.SequenceNumber)
		}
	}

	log.Info("simulated nack", "baseSeq", pair.PacketID, "resent", len(resent), "rtxSeqs", rtxSeqs)
}

func emitSenderReport(log logr.Logger, stream *rtpsend.Stream, ssrc uint32) {
	sr := stream.GetRTCPSenderReport(ssrc, uint64(time.Now().UnixMilli()))
	if sr == nil {
		return
	}
	statsJSON, _ := json.Marshal(stream.Stats())
	log.Info("sender report", "packetCount", sr.PacketCount, "octetCount", sr.OctetCount, "stats", string(statsJSON))
}

// applyFlagOverrides lets any explicitly-set CLI flag win over the config
// file / defaults, matching the teacher's cmd/server precedence.
func applyFlagOverrides(c *cli.Context, conf *Config) {
	if c.IsSet("buffer-size") {
		conf.BufferSize = c.Int("buffer-size")
	}
	if c.IsSet("mtu") {
		conf.MTU = c.Int("mtu")
	}
	if c.IsSet("clock-rate") {
		conf.ClockRate = uint32(c.Uint("clock-rate"))
	}
	if c.IsSet("use-nack") {
		conf.UseNack = c.Bool("use-nack")
	}
	if c.IsSet("packet-count") {
		conf.PacketCount = c.Int("packet-count")
	}
	if c.IsSet("nack-every") {
		conf.NackEveryN = c.Int("nack-every")
	}
	if c.IsSet("log-level") {
		conf.LogLevel = c.String("log-level")
	}
	if c.IsSet("dev") {
		conf.Dev = c.Bool("dev")
	}
}
