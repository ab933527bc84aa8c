package config

import "time"

const defaultPort = 8081

var defaultAPI = API{
	BaseURL: "http://localhost:8080",
	Timeout: 15 * time.Second,
}

var defaultBroker = Broker{
	GroupID:             "livreur-agent",
	TopicNewOrders:      "commandes.nouvelles",
	TopicAcceptances:    "commandes.acceptees",
	TopicPersonalPrefix: "livreur.",
	ReconnectDelay:      5 * time.Second,
}

var defaultRefresh = Refresh{
	Interval:    30 * time.Second,
	MaxAttempts: 4,
	BaseDelay:   150 * time.Millisecond,
	MaxDelay:    2 * time.Second,
}

// DefaultPort returns the default ops server port.
func DefaultPort() int {
	return defaultPort
}

// DefaultAPI returns the default REST gateway settings.
func DefaultAPI() API {
	return defaultAPI
}

// DefaultBroker returns the default push channel settings.
func DefaultBroker() Broker {
	return defaultBroker
}

// DefaultRefresh returns the default pull reconciliation settings.
func DefaultRefresh() Refresh {
	return defaultRefresh
}
