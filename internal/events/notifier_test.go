package events_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"service-livreur-client/internal/domain"
	"service-livreur-client/internal/events"
	"service-livreur-client/internal/logx"
)

func TestNotifier_OncePerInstance(t *testing.T) {
	t.Parallel()

	var got []events.Event
	n := events.NewNotifier(events.SinkFunc(func(ev events.Event) {
		got = append(got, ev)
	}), logx.Nop())

	ev := events.Event{InstanceID: "i-1", Kind: events.KindNewOrder, Order: domain.Order{ID: 1}}
	n.Alert(ev)
	n.Alert(ev) // retry of the same instance
	n.Alert(ev)

	require.Len(t, got, 1)

	other := events.Event{InstanceID: "i-2", Kind: events.KindNewOrder, Order: domain.Order{ID: 1}}
	n.Alert(other)
	require.Len(t, got, 2)
}

func TestNotifier_SilentKinds(t *testing.T) {
	t.Parallel()

	calls := 0
	n := events.NewNotifier(events.SinkFunc(func(events.Event) { calls++ }), logx.Nop())

	n.Alert(events.Event{InstanceID: "a", Kind: events.KindOrderAccepted})
	n.Alert(events.Event{InstanceID: "b", Kind: events.KindRequestAccepted})
	require.Zero(t, calls)

	n.Alert(events.Event{InstanceID: "c", Kind: events.KindPersonalNote, Note: "hi"})
	require.Equal(t, 1, calls)
}

func TestNotifier_NilSink(t *testing.T) {
	t.Parallel()

	n := events.NewNotifier(nil, logx.Nop())
	n.Alert(events.Event{InstanceID: "a", Kind: events.KindNewOrder})
}
