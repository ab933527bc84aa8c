// Package revenue estimates the driver's earnings for completed orders.
// Estimates are advisory and client-side only; the backend settles actual
// payouts.
package revenue

import (
	"context"
	"fmt"

	"service-livreur-client/internal/domain"
	"service-livreur-client/internal/geo"
	"service-livreur-client/internal/logx"
)

// Catalog resolves the product, shop and address references an order
// carries. Backed by the REST gateway, usually behind the retrying
// decorator.
type Catalog interface {
	OrderDetails(ctx context.Context, id int64) (domain.Order, error)
	ProductByID(ctx context.Context, id int64) (domain.Product, error)
	ShopByID(ctx context.Context, id int64) (domain.Shop, error)
	AddressByID(ctx context.Context, id int64) (domain.Address, error)
}

// Pricing rates, in currency units.
const (
	returnedRatePerShop = 1.0
	carRateExpress      = 4.0
	carRateStandard     = 3.2
	ratePerKm           = 0.8
)

// Estimator computes per-order revenue estimates. Three modes, checked in
// order: returned orders pay per pickup shop, car drivers pay a flat
// per-shop rate by delivery type, everyone else pays per kilometre over
// the pickup route.
type Estimator struct {
	catalog Catalog
	logger  logx.Logger
}

// New creates an Estimator.
func New(catalog Catalog, logger logx.Logger) *Estimator {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Estimator{catalog: catalog, logger: logger}
}

// Estimate fetches the order and computes its revenue estimate. Estimates
// are advisory, so any lookup failure yields zero instead of an error; a
// partial route is never priced.
func (e *Estimator) Estimate(ctx context.Context, orderID int64, transport domain.TransportMode) (float64, error) {
	o, err := e.catalog.OrderDetails(ctx, orderID)
	if err != nil {
		e.logger.Warn("estimate unavailable",
			logx.Int64("order_id", orderID),
			logx.Any("err", err),
		)
		return 0, nil
	}
	return e.EstimateOrder(ctx, o, transport)
}

// EstimateOrder computes the revenue estimate for an already-fetched order,
// zero when a catalog lookup fails.
func (e *Estimator) EstimateOrder(ctx context.Context, o domain.Order, transport domain.TransportMode) (float64, error) {
	v, err := e.estimate(ctx, o, transport)
	if err != nil {
		e.logger.Warn("estimate unavailable",
			logx.Int64("order_id", o.ID),
			logx.Any("err", err),
		)
		return 0, nil
	}
	return v, nil
}

func (e *Estimator) estimate(ctx context.Context, o domain.Order, transport domain.TransportMode) (float64, error) {
	shops, err := e.distinctShops(ctx, o)
	if err != nil {
		return 0, fmt.Errorf("estimate order %d: %w", o.ID, err)
	}

	switch {
	case o.Status == domain.OrderReturned:
		return returnedRatePerShop * float64(len(shops)), nil

	case transport == domain.TransportCar:
		rate := carRateStandard
		if o.Type == domain.DeliveryExpress {
			rate = carRateExpress
		}
		return rate * float64(len(shops)), nil
	}

	km, err := e.routeKm(ctx, shops, o.Address)
	if err != nil {
		return 0, fmt.Errorf("estimate order %d: %w", o.ID, err)
	}
	estimate := ratePerKm * km
	e.logger.Debug("distance estimate",
		logx.Int64("order_id", o.ID),
		logx.Float64("km", km),
		logx.Float64("estimate", estimate),
	)
	return estimate, nil
}

// EstimateBundle sums the member-order estimates. A single failing member
// zeroes the whole bundle estimate rather than reporting a partial sum, and
// like the per-order estimate this is advisory and never an error.
func (e *Estimator) EstimateBundle(ctx context.Context, b domain.Bundle, transport domain.TransportMode) (float64, error) {
	var total float64
	for _, o := range b.Orders {
		v, err := e.estimate(ctx, o, transport)
		if err != nil {
			e.logger.Warn("bundle estimate unavailable",
				logx.Int64("bundle_id", b.ID),
				logx.Any("err", err),
			)
			return 0, nil
		}
		total += v
	}
	return total, nil
}

// distinctShops resolves the order's line items to their shops, first seen
// first, each shop once.
func (e *Estimator) distinctShops(ctx context.Context, o domain.Order) ([]int64, error) {
	seen := make(map[int64]struct{}, len(o.Items))
	out := make([]int64, 0, len(o.Items))
	for _, item := range o.Items {
		p, err := e.catalog.ProductByID(ctx, item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("product %d: %w", item.ProductID, err)
		}
		if _, dup := seen[p.ShopID]; dup {
			continue
		}
		seen[p.ShopID] = struct{}{}
		out = append(out, p.ShopID)
	}
	return out, nil
}

// routeKm walks the pickup shops in order and ends at the recipient.
// Waypoints without coordinates are skipped, so their legs contribute
// nothing rather than failing the estimate.
func (e *Estimator) routeKm(ctx context.Context, shops []int64, recipient domain.Address) (float64, error) {
	points := make([]geo.Point, 0, len(shops)+1)
	for _, shopID := range shops {
		shop, err := e.catalog.ShopByID(ctx, shopID)
		if err != nil {
			return 0, fmt.Errorf("shop %d: %w", shopID, err)
		}
		addr, err := e.catalog.AddressByID(ctx, shop.AddressID)
		if err != nil {
			return 0, fmt.Errorf("address %d: %w", shop.AddressID, err)
		}
		if addr.HasCoordinates() {
			points = append(points, geo.Point{Lat: *addr.Latitude, Lng: *addr.Longitude})
		}
	}
	if recipient.HasCoordinates() {
		points = append(points, geo.Point{Lat: *recipient.Latitude, Lng: *recipient.Longitude})
	}
	return geo.RouteKm(points), nil
}
