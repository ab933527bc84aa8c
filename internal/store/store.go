// Package store is the client-side source of truth for every order, bundle
// and delivery request the driver's UI may render. It reconciles pull
// results and push events through a single set of upsert rules, so that any
// interleaving of both paths converges to the same state.
package store

import (
	"sort"
	"sync"

	"service-livreur-client/internal/domain"
)

// Store keys entities by id and replaces them wholesale; fields are never
// merged. One reconciler goroutine writes, UI readers read concurrently.
// The taken* sets remember every id ever seen assigned to another driver,
// so replayed pre-claim copies cannot resurrect an entity after eviction.
type Store struct {
	mu            sync.RWMutex
	self          int64
	orders        map[int64]domain.Order
	bundles       map[int64]domain.Bundle
	requests      map[int64]domain.DeliveryRequest
	ignored       map[int64]struct{}
	takenOrders   map[int64]struct{}
	takenBundles  map[int64]struct{}
	takenRequests map[int64]struct{}
}

// New creates an empty store bound to the local driver id.
func New(driverID int64) *Store {
	return &Store{
		self:          driverID,
		orders:        make(map[int64]domain.Order),
		bundles:       make(map[int64]domain.Bundle),
		requests:      make(map[int64]domain.DeliveryRequest),
		ignored:       make(map[int64]struct{}),
		takenOrders:   make(map[int64]struct{}),
		takenBundles:  make(map[int64]struct{}),
		takenRequests: make(map[int64]struct{}),
	}
}

// DriverID returns the local driver id the store is bound to.
func (s *Store) DriverID() int64 { return s.self }

type verdict int

const (
	apply verdict = iota
	reject
	evict
)

// decide implements the shared upsert rules:
//   - an entity assigned to another driver evicts the local copy unless we
//     own it (ownership is sticky), and is never inserted fresh;
//   - an entity assigned to the local driver always applies;
//   - an unassigned entity never overwrites an assigned local copy, never
//     resurrects an id already seen assigned to another driver
//     (anti-flicker, in either replay order) and never regresses the
//     status rank (stale duplicate).
func (s *Store) decide(exists, taken bool, localOwner int64, localRank int, incOwner int64, incRank int) verdict {
	if incOwner != 0 && incOwner != s.self {
		if !exists || localOwner == s.self {
			return reject
		}
		return evict
	}
	if incOwner == s.self {
		return apply
	}
	if taken {
		return reject
	}
	if exists {
		if localOwner != 0 {
			return reject
		}
		if incRank < localRank {
			return reject
		}
	}
	return apply
}

// markTaken records that the id was seen assigned to another driver.
func markTaken(taken map[int64]struct{}, id, incOwner, self int64) bool {
	if incOwner != 0 && incOwner != self {
		taken[id] = struct{}{}
	}
	_, ok := taken[id]
	return ok
}

// UpsertOrder applies one order copy, fresher-wins. It reports whether the
// stored state changed.
func (s *Store) UpsertOrder(o domain.Order) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.upsertOrderLocked(o)
}

func (s *Store) upsertOrderLocked(o domain.Order) bool {
	local, ok := s.orders[o.ID]
	taken := markTaken(s.takenOrders, o.ID, o.LivreurID, s.self)
	switch s.decide(ok, taken, local.LivreurID, local.Status.Rank(), o.LivreurID, o.Status.Rank()) {
	case apply:
		s.orders[o.ID] = o
		return true
	case evict:
		delete(s.orders, o.ID)
		return true
	default:
		return false
	}
}

// UpsertBundle applies one bundle copy under the same rules as orders.
func (s *Store) UpsertBundle(b domain.Bundle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	local, ok := s.bundles[b.ID]
	taken := markTaken(s.takenBundles, b.ID, b.LivreurID, s.self)
	switch s.decide(ok, taken, local.LivreurID, local.Status.Rank(), b.LivreurID, b.Status.Rank()) {
	case apply:
		s.bundles[b.ID] = b
		return true
	case evict:
		delete(s.bundles, b.ID)
		return true
	default:
		return false
	}
}

// UpsertRequest applies one delivery request copy under the same rules.
func (s *Store) UpsertRequest(r domain.DeliveryRequest) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	local, ok := s.requests[r.ID]
	taken := markTaken(s.takenRequests, r.ID, r.LivreurID, s.self)
	switch s.decide(ok, taken, local.LivreurID, local.Status.Rank(), r.LivreurID, r.Status.Rank()) {
	case apply:
		s.requests[r.ID] = r
		return true
	case evict:
		delete(s.requests, r.ID)
		return true
	default:
		return false
	}
}

// ApplyBundleAccepted stores an accepted bundle and every member order in a
// single critical section. The claim coordinator calls this only after the
// remote accept succeeded, so a failed call never leaves partial state.
func (s *Store) ApplyBundleAccepted(b domain.Bundle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bundles[b.ID] = b
	for _, o := range b.Orders {
		s.upsertOrderLocked(o)
	}
}

// RemoveOrder deletes an order by id.
func (s *Store) RemoveOrder(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.orders, id)
}

// RemoveBundle deletes a bundle by id.
func (s *Store) RemoveBundle(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.bundles, id)
}

// RemoveRequest deletes a delivery request by id.
func (s *Store) RemoveRequest(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.requests, id)
}

// Ignore hides an order from the available view. Client-local only; it is
// never sent to the server and resets with the session.
func (s *Store) Ignore(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ignored[id] = struct{}{}
}

// IsIgnored reports whether the order id is hidden from the available view.
func (s *Store) IsIgnored(id int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.ignored[id]
	return ok
}

// Order returns a single order by id.
func (s *Store) Order(id int64) (domain.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[id]
	return o, ok
}

// Bundle returns a single bundle by id.
func (s *Store) Bundle(id int64) (domain.Bundle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bundles[id]
	return b, ok
}

// Request returns a single delivery request by id.
func (s *Store) Request(id int64) (domain.DeliveryRequest, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.requests[id]
	return r, ok
}

// Orders lists orders matching the predicate, newest id first. A nil
// predicate matches everything. The result is a deterministic function of
// the upsert/remove sequence applied so far.
func (s *Store) Orders(pred func(domain.Order) bool) []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Order, 0, len(s.orders))
	for _, o := range s.orders {
		if pred == nil || pred(o) {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

// Bundles lists bundles matching the predicate, newest id first.
func (s *Store) Bundles(pred func(domain.Bundle) bool) []domain.Bundle {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Bundle, 0, len(s.bundles))
	for _, b := range s.bundles {
		if pred == nil || pred(b) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

// Requests lists delivery requests matching the predicate, newest id first.
func (s *Store) Requests(pred func(domain.DeliveryRequest) bool) []domain.DeliveryRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.DeliveryRequest, 0, len(s.requests))
	for _, r := range s.requests {
		if pred == nil || pred(r) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

// AvailableOrders lists claimable, non-ignored orders.
func (s *Store) AvailableOrders() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Order, 0, len(s.orders))
	for _, o := range s.orders {
		if _, skip := s.ignored[o.ID]; skip {
			continue
		}
		if o.Claimable() {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

// MyOrders lists orders assigned to the local driver.
func (s *Store) MyOrders() []domain.Order {
	return s.Orders(func(o domain.Order) bool { return o.LivreurID == s.self })
}

// AvailableBundles lists claimable bundles.
func (s *Store) AvailableBundles() []domain.Bundle {
	return s.Bundles(domain.Bundle.Claimable)
}

// MyBundles lists bundles assigned to the local driver.
func (s *Store) MyBundles() []domain.Bundle {
	return s.Bundles(func(b domain.Bundle) bool { return b.LivreurID == s.self })
}

// AvailableRequests lists claimable delivery requests.
func (s *Store) AvailableRequests() []domain.DeliveryRequest {
	return s.Requests(domain.DeliveryRequest.Claimable)
}

// MyRequests lists delivery requests assigned to the local driver.
func (s *Store) MyRequests() []domain.DeliveryRequest {
	return s.Requests(func(r domain.DeliveryRequest) bool { return r.LivreurID == s.self })
}

// Reset clears everything; called at logout.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = make(map[int64]domain.Order)
	s.bundles = make(map[int64]domain.Bundle)
	s.requests = make(map[int64]domain.DeliveryRequest)
	s.ignored = make(map[int64]struct{})
	s.takenOrders = make(map[int64]struct{})
	s.takenBundles = make(map[int64]struct{})
	s.takenRequests = make(map[int64]struct{})
}
