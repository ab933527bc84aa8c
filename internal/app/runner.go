package app

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"go.uber.org/dig"

	"service-livreur-client/internal/config"
	"service-livreur-client/internal/logx"
	"service-livreur-client/internal/service/reconcile"
	"service-livreur-client/internal/transport/kafka"
)

const dayFormat = "2006-01-02"

// MustRun starts the agent using the provided DI container
func MustRun(container *dig.Container) {
	if err := run(container); err != nil {
		switch {
		case errors.Is(err, context.Canceled):
			log.Println("shutdown requested, exiting")
			return
		default:
			log.Fatalf("run error: %v", err)
		}
	}
}

func run(container *dig.Container) error {
	return container.Invoke(func(
		ctx context.Context,
		cfg *config.Config,
		server *http.Server,
		consumer *kafka.Consumer,
		engine *reconcile.Engine,
		logger logx.Logger,
	) error {
		defer engine.Close()

		startServer(server, logger)

		if consumer != nil {
			go func() {
				if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
					logger.Error("broker consumer stopped", logx.Any("err", err))
				}
			}()
			defer closeConsumer(consumer, logger)
		} else {
			logger.Warn("broker not configured, running pull-only")
		}

		go refreshLoop(ctx, engine, cfg.Refresh.Interval, logger)

		<-ctx.Done()
		logger.Info("shutting down livreur-agent")
		gracefulShutdown(server, logger, 15*time.Second)
		return ctx.Err()
	})
}

func startServer(server *http.Server, logger logx.Logger) {
	go func() {
		logger.Info("livreur-agent listening", logx.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen error: %v", err)
		}
	}()
}

// refreshLoop reconciles the store by pulling, immediately at startup and
// then on a fixed interval. Pull fills whatever the push channel missed.
func refreshLoop(ctx context.Context, engine *reconcile.Engine, interval time.Duration, logger logx.Logger) {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	refreshAll(ctx, engine, logger)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			refreshAll(ctx, engine, logger)
		}
	}
}

func refreshAll(ctx context.Context, engine *reconcile.Engine, logger logx.Logger) {
	if err := engine.RefreshProfile(ctx); err != nil {
		logger.Warn("profile refresh failed", logx.Any("err", err))
	}
	if err := engine.RefreshDay(ctx, time.Now().Format(dayFormat)); err != nil {
		logger.Warn("orders refresh failed", logx.Any("err", err))
	}
	if err := engine.RefreshBundles(ctx); err != nil {
		logger.Warn("bundles refresh failed", logx.Any("err", err))
	}
	if err := engine.RefreshRequests(ctx); err != nil {
		logger.Warn("requests refresh failed", logx.Any("err", err))
	}
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Warn("graceful shutdown error", logx.Any("err", err))
	}
}

func closeConsumer(consumer *kafka.Consumer, logger logx.Logger) {
	if err := consumer.Close(); err != nil {
		logger.Error("broker close error", logx.Any("err", err))
	}
}
