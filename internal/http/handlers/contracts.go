package handlers

import (
	"context"

	"service-livreur-client/internal/domain"
	"service-livreur-client/internal/service/reconcile"
	"service-livreur-client/internal/store"
)

// Session is the driver session surface the handlers expose over HTTP.
type Session interface {
	Store() *store.Store
	Profile() (domain.DriverProfile, bool)
	RefreshProfile(ctx context.Context) error
	ClaimOrder(ctx context.Context, id int64) (domain.Order, error)
	ClaimBundle(ctx context.Context, id int64) (domain.Bundle, error)
	ClaimRequest(ctx context.Context, id int64) (domain.DeliveryRequest, error)
	AdvanceOrder(ctx context.Context, id int64, status domain.OrderStatus) error
	AdvanceRequest(ctx context.Context, id int64, status domain.RequestStatus) error
	IgnoreOrder(id int64)
	SetOnline(ctx context.Context, online bool) error
}

// NewSession wires a reconcile.Engine into the Session interface.
func NewSession(e *reconcile.Engine) Session {
	return e
}

// Estimator computes revenue estimates for completed work.
type Estimator interface {
	Estimate(ctx context.Context, orderID int64, transport domain.TransportMode) (float64, error)
	EstimateBundle(ctx context.Context, b domain.Bundle, transport domain.TransportMode) (float64, error)
}
