package rtpsend

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the Prometheus collectors for one Stream. A nil *Metrics is
// valid everywhere it's used below; streams created without metrics just
// skip recording rather than needing a no-op implementation swapped in.
type Metrics struct {
	packetsStored    prometheus.Counter
	packetsDropped   prometheus.Counter
	packetsRetransmitted prometheus.Counter
	nackRequested    prometheus.Counter
	nackTooOld       prometheus.Counter
	rtt              prometheus.Gauge
}

// NewMetrics registers a Stream's collectors against reg under the given
// constant labels (typically trackID/participantID), mirroring the
// per-component collector grouping the teacher uses in pkg/metric.
func NewMetrics(reg prometheus.Registerer, labels prometheus.Labels) *Metrics {
	m := &Metrics{
		packetsStored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "rtpsend",
			Name:        "packets_stored_total",
			Help:        "outgoing RTP packets retained in the retransmission buffer",
			ConstLabels: labels,
		}),
		packetsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "rtpsend",
			Name:        "packets_dropped_total",
			Help:        "outgoing RTP packets dropped for exceeding the MTU",
			ConstLabels: labels,
		}),
		packetsRetransmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "rtpsend",
			Name:        "packets_retransmitted_total",
			Help:        "retained packets returned for resending in response to NACK requests",
			ConstLabels: labels,
		}),
		nackRequested: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "rtpsend",
			Name:        "nack_requested_total",
			Help:        "individual sequence numbers named in received NACKs",
			ConstLabels: labels,
		}),
		nackTooOld: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "rtpsend",
			Name:        "nack_too_old_total",
			Help:        "NACKed sequence numbers skipped for exceeding the max retransmission delay",
			ConstLabels: labels,
		}),
		rtt: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "rtpsend",
			Name:        "round_trip_time_ms",
			Help:        "estimated round-trip time derived from receiver reports",
			ConstLabels: labels,
		}),
	}
	for _, c := range []prometheus.Collector{
		m.packetsStored, m.packetsDropped, m.packetsRetransmitted,
		m.nackRequested, m.nackTooOld, m.rtt,
	} {
		if reg != nil {
			reg.MustRegister(c)
		}
	}
	return m
}

func (m *Metrics) observeStored() {
	if m != nil {
		m.packetsStored.Inc()
	}
}

func (m *Metrics) observeDropped() {
	if m != nil {
		m.packetsDropped.Inc()
	}
}

func (m *Metrics) observeRetransmitted(n int) {
	if m != nil {
		m.packetsRetransmitted.Add(float64(n))
	}
}

func (m *Metrics) observeNackRequested(n int) {
	if m != nil {
		m.nackRequested.Add(float64(n))
	}
}

func (m *Metrics) observeNackTooOld() {
	if m != nil {
		m.nackTooOld.Inc()
	}
}

func (m *Metrics) observeRtt(ms float64) {
	if m != nil {
		m.rtt.Set(ms)
	}
}
