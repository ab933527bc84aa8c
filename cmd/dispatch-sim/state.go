package main

import (
	"sync"

	"service-livreur-client/internal/domain"
)

// simState is the in-memory dispatch state the simulator serves. Claims are
// first-wins: a second driver gets a conflict, exactly like production.
type simState struct {
	mu        sync.Mutex
	orders    map[int64]domain.Order
	bundles   map[int64]domain.Bundle
	requests  map[int64]domain.DeliveryRequest
	profiles  map[int64]domain.DriverProfile
	products  map[int64]domain.Product
	shops     map[int64]domain.Shop
	addresses map[int64]domain.Address
}

func newSimState() *simState {
	return &simState{
		orders:    make(map[int64]domain.Order),
		bundles:   make(map[int64]domain.Bundle),
		requests:  make(map[int64]domain.DeliveryRequest),
		profiles:  make(map[int64]domain.DriverProfile),
		products:  make(map[int64]domain.Product),
		shops:     make(map[int64]domain.Shop),
		addresses: make(map[int64]domain.Address),
	}
}

func ptr(v float64) *float64 { return &v }

// seedCatalog loads a small fixed product/shop/address catalog so revenue
// estimation has something to resolve against.
func (s *simState) seedCatalog() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addresses[10] = domain.Address{ID: 10, Street: "Avenue Habib Bourguiba", Latitude: ptr(36.8065), Longitude: ptr(10.1815)}
	s.addresses[20] = domain.Address{ID: 20, Street: "Rue de la Medina", Latitude: ptr(36.4510), Longitude: ptr(10.7357)}
	s.shops[100] = domain.Shop{ID: 100, AddressID: 10}
	s.shops[200] = domain.Shop{ID: 200, AddressID: 20}
	s.products[1] = domain.Product{ID: 1, ShopID: 100}
	s.products[2] = domain.Product{ID: 2, ShopID: 200}
	s.products[3] = domain.Product{ID: 3, ShopID: 100}
}

func (s *simState) product(id int64) (domain.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	return p, ok
}

func (s *simState) shop(id int64) (domain.Shop, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sh, ok := s.shops[id]
	return sh, ok
}

func (s *simState) address(id int64) (domain.Address, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.addresses[id]
	return a, ok
}

func (s *simState) putOrder(o domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.ID] = o
}

func (s *simState) order(id int64) (domain.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	return o, ok
}

func (s *simState) listOrders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o)
	}
	return out
}

// claimOrder assigns the order to the driver if nobody holds it yet.
func (s *simState) claimOrder(id, driverID int64) (domain.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok || o.LivreurID != 0 {
		return domain.Order{}, false
	}
	o.LivreurID = driverID
	o.Status = domain.OrderAccepted
	s.orders[id] = o
	return o, true
}

func (s *simState) setOrderStatus(id int64, status domain.OrderStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return false
	}
	o.Status = status
	s.orders[id] = o
	return true
}

func (s *simState) putBundle(b domain.Bundle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bundles[b.ID] = b
	for _, o := range b.Orders {
		s.orders[o.ID] = o
	}
}

func (s *simState) listBundles() []domain.Bundle {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Bundle, 0, len(s.bundles))
	for _, b := range s.bundles {
		out = append(out, b)
	}
	return out
}

// claimBundle assigns the bundle and all member orders atomically.
func (s *simState) claimBundle(id, driverID int64) (domain.Bundle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bundles[id]
	if !ok || b.LivreurID != 0 {
		return domain.Bundle{}, false
	}
	b.LivreurID = driverID
	b.Status = domain.BundleAccepted
	for i := range b.Orders {
		b.Orders[i].LivreurID = driverID
		b.Orders[i].Status = domain.OrderAccepted
		s.orders[b.Orders[i].ID] = b.Orders[i]
	}
	s.bundles[id] = b
	return b, true
}

func (s *simState) putRequest(r domain.DeliveryRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests[r.ID] = r
}

func (s *simState) listRequests() []domain.DeliveryRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.DeliveryRequest, 0, len(s.requests))
	for _, r := range s.requests {
		out = append(out, r)
	}
	return out
}

func (s *simState) claimRequest(id, driverID int64) (domain.DeliveryRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.requests[id]
	if !ok || r.LivreurID != 0 {
		return domain.DeliveryRequest{}, false
	}
	r.LivreurID = driverID
	r.Status = domain.RequestAccepted
	s.requests[id] = r
	return r, true
}

func (s *simState) setRequestStatus(id int64, status domain.RequestStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.requests[id]
	if !ok {
		return false
	}
	r.Status = status
	s.requests[id] = r
	return true
}

func (s *simState) request(id int64) (domain.DeliveryRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.requests[id]
	return r, ok
}

func (s *simState) bundle(id int64) (domain.Bundle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bundles[id]
	return b, ok
}

func (s *simState) putProfile(p domain.DriverProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[p.ID] = p
}

func (s *simState) profile(id int64) (domain.DriverProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[id]
	return p, ok
}
