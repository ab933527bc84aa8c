// Package events defines the closed set of push events the engine consumes
// and the classification of raw broker payloads into them.
package events

import (
	"github.com/google/uuid"

	"service-livreur-client/internal/domain"
)

// Kind is the event discriminant after classification.
type Kind string

// Closed set of event kinds
const (
	KindNewOrder        Kind = "new_order"
	KindOrderAccepted   Kind = "order_accepted"
	KindNewBundle       Kind = "new_bundle"
	KindNewRequest      Kind = "new_delivery_request"
	KindRequestAccepted Kind = "delivery_request_accepted"
	KindPersonalNote    Kind = "personal_notification"
)

// Source tells the classifier which topic family a payload arrived on. The
// acceptance broadcast reuses the same payload shapes but flips the New*
// kinds to their Accepted counterparts.
type Source int

// Topic families
const (
	SourcePersonal Source = iota
	SourceNewBroadcast
	SourceAcceptedBroadcast
)

// Event is one classified push message. Exactly one of Order, Bundle,
// Request or Note carries the payload, selected by Kind. InstanceID is
// assigned once at classification so retries of the same instance can be
// deduplicated downstream.
type Event struct {
	InstanceID string
	Kind       Kind
	Topic      string

	Order   domain.Order
	Bundle  domain.Bundle
	Request domain.DeliveryRequest
	Note    string
}

func newEvent(kind Kind, topic string) Event {
	return Event{InstanceID: uuid.NewString(), Kind: kind, Topic: topic}
}
