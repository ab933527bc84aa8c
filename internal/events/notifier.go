package events

import (
	"sync"

	"service-livreur-client/internal/logx"
)

// Sink receives the audible/visual alert for an event. The agent logs;
// a UI implementation would play a sound.
type Sink interface {
	Notify(Event)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Event)

// Notify calls the wrapped function.
func (f SinkFunc) Notify(ev Event) { f(ev) }

// seenLimit bounds the dedup set; past it the set is dropped wholesale,
// which can at worst re-alert, never suppress a first alert.
const seenLimit = 4096

// Notifier emits exactly one alert per distinct event instance. Handler
// retries reuse the instance id, so a retried event never alerts twice.
type Notifier struct {
	mu     sync.Mutex
	sink   Sink
	logger logx.Logger
	seen   map[string]struct{}
}

// NewNotifier creates a Notifier; a nil sink disables alerting.
func NewNotifier(sink Sink, logger logx.Logger) *Notifier {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Notifier{sink: sink, logger: logger, seen: make(map[string]struct{})}
}

// alertable reports whether the kind triggers a driver alert. Acceptance
// broadcasts reconcile silently.
func alertable(k Kind) bool {
	switch k {
	case KindNewOrder, KindNewBundle, KindNewRequest, KindPersonalNote:
		return true
	default:
		return false
	}
}

// Alert notifies the sink once for the event instance.
func (n *Notifier) Alert(ev Event) {
	if n.sink == nil || !alertable(ev.Kind) {
		return
	}

	n.mu.Lock()
	if _, dup := n.seen[ev.InstanceID]; dup {
		n.mu.Unlock()
		return
	}
	if len(n.seen) >= seenLimit {
		n.seen = make(map[string]struct{})
	}
	n.seen[ev.InstanceID] = struct{}{}
	n.mu.Unlock()

	n.logger.Debug("alert", logx.String("kind", string(ev.Kind)))
	n.sink.Notify(ev)
}
