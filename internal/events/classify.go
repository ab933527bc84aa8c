package events

import (
	"encoding/json"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"service-livreur-client/internal/apperr"
	"service-livreur-client/internal/domain"
	"service-livreur-client/internal/logx"
)

// Classifier turns raw payloads into typed events. The wire format carries
// no explicit discriminant, so classification is an ordered set of shape
// predicates, most specific first:
//
//  1. a member-order array means a bundle;
//  2. an item-type field means a delivery request;
//  3. a bare JSON string, or a message/notification field, is a personal note;
//  4. anything else is a single order.
//
// Arm 4 is the fragile fallback; every hit is counted for monitoring.
type Classifier struct {
	logger    logx.Logger
	fallbacks prometheus.Counter
}

// NewClassifier creates a Classifier. fallbacks may be nil.
func NewClassifier(logger logx.Logger, fallbacks prometheus.Counter) *Classifier {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Classifier{logger: logger, fallbacks: fallbacks}
}

// probe sniffs the discriminating fields without committing to a shape.
type probe struct {
	ID           int64           `json:"id"`
	Orders       json.RawMessage `json:"commandes"`
	ItemType     string          `json:"typeArticle"`
	Message      string          `json:"message"`
	Notification string          `json:"notification"`
}

// Classify maps one payload to an event. A payload that fits no shape
// returns apperr.ErrMalformedEvent; the caller logs and drops it, the
// channel keeps running.
func (c *Classifier) Classify(src Source, topic string, body []byte) (Event, error) {
	// a bare JSON string is always a personal note
	var text string
	if err := json.Unmarshal(body, &text); err == nil && text != "" {
		ev := newEvent(KindPersonalNote, topic)
		ev.Note = text
		return ev, nil
	}

	var p probe
	if err := json.Unmarshal(body, &p); err != nil {
		return Event{}, fmt.Errorf("%w: %v", apperr.ErrMalformedEvent, err)
	}

	switch {
	case len(p.Orders) > 0 && p.Orders[0] == '[':
		var b domain.Bundle
		if err := json.Unmarshal(body, &b); err != nil || b.ID == 0 {
			return Event{}, fmt.Errorf("%w: bundle shape: %v", apperr.ErrMalformedEvent, err)
		}
		ev := newEvent(KindNewBundle, topic)
		ev.Bundle = b
		return ev, nil

	case p.ItemType != "":
		var r domain.DeliveryRequest
		if err := json.Unmarshal(body, &r); err != nil || r.ID == 0 {
			return Event{}, fmt.Errorf("%w: request shape: %v", apperr.ErrMalformedEvent, err)
		}
		kind := KindNewRequest
		if src == SourceAcceptedBroadcast {
			kind = KindRequestAccepted
		}
		ev := newEvent(kind, topic)
		ev.Request = r
		return ev, nil

	case p.Message != "" || p.Notification != "":
		ev := newEvent(KindPersonalNote, topic)
		ev.Note = p.Message
		if ev.Note == "" {
			ev.Note = p.Notification
		}
		return ev, nil

	default:
		var o domain.Order
		if err := json.Unmarshal(body, &o); err != nil || o.ID == 0 {
			return Event{}, fmt.Errorf("%w: order shape: %v", apperr.ErrMalformedEvent, err)
		}
		if c.fallbacks != nil {
			c.fallbacks.Inc()
		}
		c.logger.Debug("payload classified by fallback arm",
			logx.String("topic", topic),
			logx.Int64("order_id", o.ID),
		)
		kind := KindNewOrder
		if src == SourceAcceptedBroadcast {
			kind = KindOrderAccepted
		}
		ev := newEvent(kind, topic)
		ev.Order = o
		return ev, nil
	}
}
