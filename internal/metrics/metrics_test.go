package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRegistered(t *testing.T) {
	LookupsTotal.WithLabelValues("al", "ok").Inc()
	UpstreamRequestsTotal.WithLabelValues("ok").Inc()
	UpstreamLatency.Observe(0.2)
	ChatConnections.Set(0)

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	found := map[string]bool{}
	for _, mf := range families {
		found[mf.GetName()] = true
	}

	for _, name := range []string{
		"anilookup_lookups_total",
		"anilookup_upstream_requests_total",
		"anilookup_upstream_latency_seconds",
		"anilookup_chat_connections_active",
	} {
		assert.True(t, found[name], "metric %s not registered", name)
	}
}

func TestLookupsCounterIncrements(t *testing.T) {
	c := LookupsTotal.WithLabelValues("al", "no_results")
	before := testutil.ToFloat64(c)
	c.Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(c))
}
