package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewGatewayRetriesTotal returns a Prometheus counter for the number of retry attempts performed by gateways
func NewGatewayRetriesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gateway_retries_total",
		Help: "Total number of retry attempts performed by gateways",
	})
}

// NewBrokerReconnectsTotal returns a Prometheus counter for the number of broker reconnect attempts
func NewBrokerReconnectsTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "broker_reconnects_total",
		Help: "Total number of broker reconnect attempts",
	})
}

// NewEventFallbackTotal returns a Prometheus counter for payloads classified by the fallback arm
func NewEventFallbackTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "event_classify_fallback_total",
		Help: "Total number of push payloads classified as single orders by the fallback arm",
	})
}

// NewEventMalformedTotal returns a Prometheus counter for dropped unclassifiable payloads
func NewEventMalformedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "event_malformed_total",
		Help: "Total number of push payloads dropped as malformed",
	})
}

// NewClaimConflictsTotal returns a Prometheus counter for claims lost to another driver
func NewClaimConflictsTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "claim_conflicts_total",
		Help: "Total number of claim attempts rejected because another driver won",
	})
}
