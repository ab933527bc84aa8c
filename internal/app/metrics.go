package app

import (
	"github.com/prometheus/client_golang/prometheus"

	"service-livreur-client/internal/metrics"
)

// Metrics bundles the agent's counters and the registry serving /metrics.
type Metrics struct {
	Registry         *prometheus.Registry
	GatewayRetries   prometheus.Counter
	BrokerReconnects prometheus.Counter
	EventFallback    prometheus.Counter
	EventMalformed   prometheus.Counter
	ClaimConflicts   prometheus.Counter
}

func newMetrics() (*Metrics, error) {
	m := &Metrics{
		Registry:         prometheus.NewRegistry(),
		GatewayRetries:   metrics.NewGatewayRetriesTotal(),
		BrokerReconnects: metrics.NewBrokerReconnectsTotal(),
		EventFallback:    metrics.NewEventFallbackTotal(),
		EventMalformed:   metrics.NewEventMalformedTotal(),
		ClaimConflicts:   metrics.NewClaimConflictsTotal(),
	}
	for _, c := range []prometheus.Collector{
		m.GatewayRetries, m.BrokerReconnects, m.EventFallback,
		m.EventMalformed, m.ClaimConflicts,
	} {
		if err := m.Registry.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}
