// Package reconcile drives the local store from both directions: push
// events arriving over the broker and pull refreshes against the backend.
// It also coordinates claims, where the backend stays authoritative and
// the store is only updated from its responses.
package reconcile

import (
	"context"
	"sync"

	"service-livreur-client/internal/domain"
	"service-livreur-client/internal/events"
	"service-livreur-client/internal/logx"
	"service-livreur-client/internal/store"
)

type counter interface {
	Inc()
}

// Engine owns one driver session: the store, the cached profile and the
// gateways. One engine per logged-in driver.
type Engine struct {
	store     *store.Store
	claims    ClaimGateway
	pull      PullGateway
	notifier  *events.Notifier
	logger    logx.Logger
	conflicts counter

	profileMu  sync.RWMutex
	profile    domain.DriverProfile
	hasProfile bool
}

// New creates an Engine. conflicts may be nil.
func New(st *store.Store, claims ClaimGateway, pull PullGateway, notifier *events.Notifier, logger logx.Logger, conflicts counter) *Engine {
	if logger == nil {
		logger = logx.Nop()
	}
	if notifier == nil {
		notifier = events.NewNotifier(nil, logger)
	}
	return &Engine{
		store:     st,
		claims:    claims,
		pull:      pull,
		notifier:  notifier,
		logger:    logger,
		conflicts: conflicts,
	}
}

// Store exposes the session store for read-only views.
func (e *Engine) Store() *store.Store { return e.store }

func (e *Engine) self() int64 { return e.store.DriverID() }

// HandleEvent applies one classified push event to the store and alerts.
// The store's upsert rules decide whether a copy applies, so replays and
// out-of-order arrivals are safe to feed straight through.
func (e *Engine) HandleEvent(ctx context.Context, ev events.Event) error {
	switch ev.Kind {
	case events.KindNewOrder, events.KindOrderAccepted:
		changed := e.store.UpsertOrder(ev.Order)
		e.logger.Debug("order event applied",
			logx.Int64("order_id", ev.Order.ID),
			logx.String("kind", string(ev.Kind)),
			logx.Bool("changed", changed),
		)

	case events.KindNewBundle:
		e.store.UpsertBundle(ev.Bundle)

	case events.KindNewRequest, events.KindRequestAccepted:
		e.store.UpsertRequest(ev.Request)

	case events.KindPersonalNote:
		// personal notes usually follow a balance or assignment change
		if err := e.RefreshProfile(ctx); err != nil {
			e.logger.Warn("profile refresh after personal note failed", logx.Any("err", err))
		}
	}

	e.notifier.Alert(ev)
	return nil
}

// RefreshDay pulls the orders for one calendar day into the store. Copies
// rejected by the upsert rules (stale pulls racing fresher pushes) are
// dropped silently.
func (e *Engine) RefreshDay(ctx context.Context, date string) error {
	list, err := e.pull.OrdersByDay(ctx, date, e.self())
	if err != nil {
		return err
	}
	for _, o := range list {
		e.store.UpsertOrder(o)
	}
	e.logger.Debug("orders refreshed", logx.String("date", date), logx.Int("count", len(list)))
	return nil
}

// RefreshBundles pulls the bundle list into the store.
func (e *Engine) RefreshBundles(ctx context.Context) error {
	list, err := e.pull.Bundles(ctx, e.self())
	if err != nil {
		return err
	}
	for _, b := range list {
		e.store.UpsertBundle(b)
	}
	return nil
}

// RefreshRequests pulls both the open and the driver's own delivery
// requests into the store.
func (e *Engine) RefreshRequests(ctx context.Context) error {
	open, err := e.pull.AcceptedRequests(ctx, 0)
	if err != nil {
		return err
	}
	mine, err := e.pull.MyRequests(ctx, e.self())
	if err != nil {
		return err
	}
	for _, r := range open {
		e.store.UpsertRequest(r)
	}
	for _, r := range mine {
		e.store.UpsertRequest(r)
	}
	return nil
}

// RefreshProfile fetches the driver profile and caches it for the
// eligibility gate.
func (e *Engine) RefreshProfile(ctx context.Context) error {
	p, err := e.pull.Profile(ctx, e.self())
	if err != nil {
		return err
	}
	e.profileMu.Lock()
	e.profile = p
	e.hasProfile = true
	e.profileMu.Unlock()
	return nil
}

// profileFor returns the cached profile, fetching it on first use.
func (e *Engine) profileFor(ctx context.Context) (domain.DriverProfile, error) {
	e.profileMu.RLock()
	p, ok := e.profile, e.hasProfile
	e.profileMu.RUnlock()
	if ok {
		return p, nil
	}
	if err := e.RefreshProfile(ctx); err != nil {
		return domain.DriverProfile{}, err
	}
	e.profileMu.RLock()
	defer e.profileMu.RUnlock()
	return e.profile, nil
}

// Profile returns the cached driver profile, if any.
func (e *Engine) Profile() (domain.DriverProfile, bool) {
	e.profileMu.RLock()
	defer e.profileMu.RUnlock()
	return e.profile, e.hasProfile
}

// IgnoreOrder hides an order from the available view for this session.
func (e *Engine) IgnoreOrder(id int64) {
	e.store.Ignore(id)
}

// SetOnline flips the driver's availability server-side.
func (e *Engine) SetOnline(ctx context.Context, online bool) error {
	return e.claims.UpdateOnline(ctx, e.self(), online)
}

// Close resets the session store; called at logout.
func (e *Engine) Close() {
	e.store.Reset()
	e.profileMu.Lock()
	e.profile = domain.DriverProfile{}
	e.hasProfile = false
	e.profileMu.Unlock()
}
