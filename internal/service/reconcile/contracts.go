//go:generate mockgen -source=contracts.go -destination=reconcile_mocks_test.go -package=reconcile_test

package reconcile

import (
	"context"

	"service-livreur-client/internal/domain"
)

// ClaimGateway abstracts the mutating backend operations the engine
// performs on behalf of the driver. Implementations must not retry: a
// claim or status update is sent at most once.
type ClaimGateway interface {
	AcceptOrder(ctx context.Context, id, driverID int64) (domain.Order, error)
	AcceptBundle(ctx context.Context, id, driverID int64) (domain.Bundle, error)
	AcceptRequest(ctx context.Context, id, driverID int64) (domain.DeliveryRequest, error)
	UpdateOrderStatus(ctx context.Context, id int64, status domain.OrderStatus) error
	UpdateRequestStatus(ctx context.Context, id int64, status domain.RequestStatus) error
	UpdateOnline(ctx context.Context, driverID int64, online bool) error
}

// PullGateway abstracts the read-only backend surface the engine refreshes
// the local store from.
type PullGateway interface {
	OrdersByDay(ctx context.Context, date string, driverID int64) ([]domain.Order, error)
	Bundles(ctx context.Context, driverID int64) ([]domain.Bundle, error)
	AcceptedRequests(ctx context.Context, driverID int64) ([]domain.DeliveryRequest, error)
	MyRequests(ctx context.Context, driverID int64) ([]domain.DeliveryRequest, error)
	Profile(ctx context.Context, driverID int64) (domain.DriverProfile, error)
}
