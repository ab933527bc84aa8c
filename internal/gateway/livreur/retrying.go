package livreur

import (
	"context"
	"errors"
	"time"

	"service-livreur-client/internal/apperr"
	"service-livreur-client/internal/domain"
	"service-livreur-client/internal/logx"
)

// catalog is the read-only lookup surface the revenue estimator depends on.
type catalog interface {
	OrderDetails(ctx context.Context, id int64) (domain.Order, error)
	ProductByID(ctx context.Context, id int64) (domain.Product, error)
	ShopByID(ctx context.Context, id int64) (domain.Shop, error)
	AddressByID(ctx context.Context, id int64) (domain.Address, error)
}

type counter interface {
	Inc()
}

// RetryConfig describes the RetryingCatalog behaviour.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// RetryingCatalog decorates catalog lookups with bounded retries on
// transient failures. Claim and status-advance calls are deliberately not
// behind it: mutating calls must never be replayed automatically.
type RetryingCatalog struct {
	next    catalog
	logger  logx.Logger
	retries counter
	cfg     RetryConfig
}

// NewRetryingCatalog wraps next; returns nil if next is nil.
func NewRetryingCatalog(next catalog, logger logx.Logger, retries counter, cfg RetryConfig) *RetryingCatalog {
	if next == nil {
		return nil
	}
	if logger == nil {
		logger = logx.Nop()
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	return &RetryingCatalog{next: next, logger: logger, retries: retries, cfg: cfg}
}

func retry[T any](ctx context.Context, g *RetryingCatalog, method string, id int64, call func(context.Context) (T, error)) (T, error) {
	var zero T
	var lastErr error
	for attempt := 1; attempt <= g.cfg.MaxAttempts; attempt++ {
		v, err := call(ctx)
		if err == nil {
			return v, nil
		}
		lastErr = err
		if ctx.Err() != nil || attempt == g.cfg.MaxAttempts || !isRetryable(err) {
			break
		}
		delay := backoff(g.cfg.BaseDelay, g.cfg.MaxDelay, attempt)
		if g.retries != nil {
			g.retries.Inc()
		}
		g.logger.Warn("catalog lookup retry",
			logx.String("method", method),
			logx.Int64("id", id),
			logx.Int("attempt", attempt),
			logx.Duration("delay", delay),
			logx.Any("err", err),
		)
		if !sleepWithContext(ctx, delay) {
			break
		}
	}
	return zero, lastErr
}

// OrderDetails retries transient failures of the underlying lookup.
func (g *RetryingCatalog) OrderDetails(ctx context.Context, id int64) (domain.Order, error) {
	return retry(ctx, g, "OrderDetails", id, func(ctx context.Context) (domain.Order, error) {
		return g.next.OrderDetails(ctx, id)
	})
}

// ProductByID retries transient failures of the underlying lookup.
func (g *RetryingCatalog) ProductByID(ctx context.Context, id int64) (domain.Product, error) {
	return retry(ctx, g, "ProductByID", id, func(ctx context.Context) (domain.Product, error) {
		return g.next.ProductByID(ctx, id)
	})
}

// ShopByID retries transient failures of the underlying lookup.
func (g *RetryingCatalog) ShopByID(ctx context.Context, id int64) (domain.Shop, error) {
	return retry(ctx, g, "ShopByID", id, func(ctx context.Context) (domain.Shop, error) {
		return g.next.ShopByID(ctx, id)
	})
}

// AddressByID retries transient failures of the underlying lookup.
func (g *RetryingCatalog) AddressByID(ctx context.Context, id int64) (domain.Address, error) {
	return retry(ctx, g, "AddressByID", id, func(ctx context.Context) (domain.Address, error) {
		return g.next.AddressByID(ctx, id)
	})
}

// isRetryable reports whether the error is transient.
func isRetryable(err error) bool {
	return errors.Is(err, apperr.ErrNetwork)
}

// backoff computes the retry delay.
func backoff(base, max time.Duration, attempt int) time.Duration {
	d := base << (attempt - 1)
	if d > max {
		return max
	}
	return d
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
