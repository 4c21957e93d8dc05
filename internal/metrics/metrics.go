// Package metrics exposes Prometheus collectors for lookups and the
// upstream AniList API.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// UpstreamBuckets covers AniList round trips from 50ms to 10s.
var UpstreamBuckets = []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10}

var (
	// LookupsTotal counts plugin queries by command prefix and outcome
	// (ok, no_results, bad_request, error).
	LookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "anilookup_lookups_total",
			Help: "Plugin lookups",
		},
		[]string{"prefix", "outcome"},
	)

	// UpstreamRequestsTotal counts GraphQL round trips by result status.
	UpstreamRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "anilookup_upstream_requests_total",
			Help: "AniList requests",
		},
		[]string{"status"},
	)

	// UpstreamLatency records AniList round-trip latency in seconds.
	UpstreamLatency = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "anilookup_upstream_latency_seconds",
			Help:    "AniList latency",
			Buckets: UpstreamBuckets,
		},
	)

	// ChatConnections tracks open chat websocket connections.
	ChatConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "anilookup_chat_connections_active",
			Help: "Active chat connections",
		},
	)
)

func init() {
	prometheus.MustRegister(
		LookupsTotal,
		UpstreamRequestsTotal,
		UpstreamLatency,
		ChatConnections,
	)
}
