package reconcile

import (
	"context"
	"errors"
	"fmt"

	"service-livreur-client/internal/apperr"
	"service-livreur-client/internal/domain"
	"service-livreur-client/internal/eligibility"
	"service-livreur-client/internal/logx"
)

// ClaimOrder claims an order for the driver. The eligibility gate runs
// first and fails fast without touching the network. On a conflict the
// local copy is evicted: another driver won the race.
func (e *Engine) ClaimOrder(ctx context.Context, id int64) (domain.Order, error) {
	o, ok := e.store.Order(id)
	if !ok {
		return domain.Order{}, fmt.Errorf("claim order %d: %w", id, apperr.ErrNotFound)
	}

	p, err := e.profileFor(ctx)
	if err != nil {
		return domain.Order{}, fmt.Errorf("claim order %d: profile: %w", id, err)
	}
	if !eligibility.CanClaimOrder(p, o) {
		return domain.Order{}, fmt.Errorf("claim order %d: %w", id, apperr.ErrBlocked)
	}

	accepted, err := e.claims.AcceptOrder(ctx, id, e.self())
	if err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			e.store.RemoveOrder(id)
			if e.conflicts != nil {
				e.conflicts.Inc()
			}
			e.logger.Info("order claim lost", logx.Int64("order_id", id))
		}
		return domain.Order{}, err
	}

	e.store.UpsertOrder(accepted)
	e.refreshProfileBestEffort(ctx)
	e.logger.Info("order claimed",
		logx.Int64("order_id", id),
		logx.Float64("fee", accepted.DeliveryFee()),
	)
	return accepted, nil
}

// ClaimBundle claims a bundle; on success the bundle and every member
// order land in the store in a single step.
func (e *Engine) ClaimBundle(ctx context.Context, id int64) (domain.Bundle, error) {
	b, ok := e.store.Bundle(id)
	if !ok {
		return domain.Bundle{}, fmt.Errorf("claim bundle %d: %w", id, apperr.ErrNotFound)
	}

	p, err := e.profileFor(ctx)
	if err != nil {
		return domain.Bundle{}, fmt.Errorf("claim bundle %d: profile: %w", id, err)
	}
	if !eligibility.CanClaimBundle(p, b) {
		return domain.Bundle{}, fmt.Errorf("claim bundle %d: %w", id, apperr.ErrBlocked)
	}

	accepted, err := e.claims.AcceptBundle(ctx, id, e.self())
	if err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			e.store.RemoveBundle(id)
			if e.conflicts != nil {
				e.conflicts.Inc()
			}
			e.logger.Info("bundle claim lost", logx.Int64("bundle_id", id))
		}
		return domain.Bundle{}, err
	}

	e.store.ApplyBundleAccepted(accepted)
	e.refreshProfileBestEffort(ctx)
	e.logger.Info("bundle claimed",
		logx.Int64("bundle_id", id),
		logx.Int("orders", len(accepted.Orders)),
	)
	return accepted, nil
}

// ClaimRequest claims a delivery request. Requests carry no cash, so only
// the global gate applies.
func (e *Engine) ClaimRequest(ctx context.Context, id int64) (domain.DeliveryRequest, error) {
	r, ok := e.store.Request(id)
	if !ok {
		return domain.DeliveryRequest{}, fmt.Errorf("claim request %d: %w", id, apperr.ErrNotFound)
	}

	p, err := e.profileFor(ctx)
	if err != nil {
		return domain.DeliveryRequest{}, fmt.Errorf("claim request %d: profile: %w", id, err)
	}
	if !eligibility.CanClaimRequest(p, r) {
		return domain.DeliveryRequest{}, fmt.Errorf("claim request %d: %w", id, apperr.ErrBlocked)
	}

	accepted, err := e.claims.AcceptRequest(ctx, id, e.self())
	if err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			e.store.RemoveRequest(id)
			if e.conflicts != nil {
				e.conflicts.Inc()
			}
			e.logger.Info("request claim lost", logx.Int64("request_id", id))
		}
		return domain.DeliveryRequest{}, err
	}

	e.store.UpsertRequest(accepted)
	e.refreshProfileBestEffort(ctx)
	e.logger.Info("request claimed", logx.Int64("request_id", id))
	return accepted, nil
}

// AdvanceOrder moves an owned order to the next status. The store is
// updated optimistically and rolled back if the backend rejects the
// transition.
func (e *Engine) AdvanceOrder(ctx context.Context, id int64, status domain.OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("advance order %d: status %q: %w", id, status, apperr.ErrInvalid)
	}
	prev, ok := e.store.Order(id)
	if !ok {
		return fmt.Errorf("advance order %d: %w", id, apperr.ErrNotFound)
	}
	if prev.LivreurID != e.self() {
		return fmt.Errorf("advance order %d: not owned: %w", id, apperr.ErrInvalid)
	}

	next := prev
	next.Status = status
	e.store.UpsertOrder(next)

	if err := e.claims.UpdateOrderStatus(ctx, id, status); err != nil {
		e.store.UpsertOrder(prev)
		return fmt.Errorf("advance order %d: %w", id, err)
	}
	if err := e.RefreshProfile(ctx); err != nil {
		// delivered cash changes the balance; keep serving the stale copy
		e.logger.Warn("profile refresh after status update failed", logx.Any("err", err))
	}
	return nil
}

// AdvanceRequest moves an owned delivery request to the next status, with
// the same optimistic update and rollback as orders.
func (e *Engine) AdvanceRequest(ctx context.Context, id int64, status domain.RequestStatus) error {
	if !status.Valid() {
		return fmt.Errorf("advance request %d: status %q: %w", id, status, apperr.ErrInvalid)
	}
	prev, ok := e.store.Request(id)
	if !ok {
		return fmt.Errorf("advance request %d: %w", id, apperr.ErrNotFound)
	}
	if prev.LivreurID != e.self() {
		return fmt.Errorf("advance request %d: not owned: %w", id, apperr.ErrInvalid)
	}

	next := prev
	next.Status = status
	e.store.UpsertRequest(next)

	if err := e.claims.UpdateRequestStatus(ctx, id, status); err != nil {
		e.store.UpsertRequest(prev)
		return fmt.Errorf("advance request %d: %w", id, err)
	}
	return nil
}

func (e *Engine) refreshProfileBestEffort(ctx context.Context) {
	if err := e.RefreshProfile(ctx); err != nil {
		e.logger.Warn("profile refresh after claim failed", logx.Any("err", err))
	}
}
