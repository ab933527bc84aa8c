package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"go.uber.org/dig"

	"service-livreur-client/internal/config"
	"service-livreur-client/internal/events"
	"service-livreur-client/internal/gateway/livreur"
	"service-livreur-client/internal/http/handlers"
	"service-livreur-client/internal/http/router"
	"service-livreur-client/internal/logx"
	"service-livreur-client/internal/service/reconcile"
	"service-livreur-client/internal/service/revenue"
	"service-livreur-client/internal/store"
	"service-livreur-client/internal/transport/kafka"
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	logFatalf func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{logFatalf: log.Fatalf}
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds and returns a new dig container
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerGateway(container); err != nil {
		return nil, fmt.Errorf("gateway: %w", err)
	}
	if err := registerSession(container); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	if err := registerTransport(container); err != nil {
		return nil, fmt.Errorf("transport: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds and returns a new dig container
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context) error {
	return provideAll(container,
		func() context.Context { return ctx },
		NewLogger,
		config.Load,
		newMetrics,
	)
}

func registerGateway(container *dig.Container) error {
	return provideAll(container,
		func(cfg *config.Config) livreur.TokenSource {
			if cfg.Driver.RefreshToken != "" {
				return livreur.NewRefreshingToken(cfg.API.BaseURL, cfg.Driver.Token, cfg.Driver.RefreshToken, cfg.API.Timeout)
			}
			return livreur.StaticToken(cfg.Driver.Token)
		},
		func(cfg *config.Config, tokens livreur.TokenSource, logger logx.Logger) *livreur.Client {
			return livreur.NewClient(cfg.API.BaseURL, tokens, logger, cfg.API.Timeout)
		},
		func(cfg *config.Config, client *livreur.Client, logger logx.Logger, m *Metrics) *livreur.RetryingCatalog {
			return livreur.NewRetryingCatalog(client, logger, m.GatewayRetries, livreur.RetryConfig{
				MaxAttempts: cfg.Refresh.MaxAttempts,
				BaseDelay:   cfg.Refresh.BaseDelay,
				MaxDelay:    cfg.Refresh.MaxDelay,
			})
		},
		func(catalog *livreur.RetryingCatalog, logger logx.Logger) *revenue.Estimator {
			return revenue.New(catalog, logger)
		},
	)
}

func registerSession(container *dig.Container) error {
	return provideAll(container,
		func(cfg *config.Config) *store.Store {
			return store.New(cfg.Driver.ID)
		},
		func(logger logx.Logger) *events.Notifier {
			// the headless agent "rings" through the log
			sink := events.SinkFunc(func(ev events.Event) {
				logger.Info("driver alert",
					logx.String("kind", string(ev.Kind)),
					logx.String("note", ev.Note),
				)
			})
			return events.NewNotifier(sink, logger)
		},
		func(st *store.Store, client *livreur.Client, notifier *events.Notifier, logger logx.Logger, m *Metrics) *reconcile.Engine {
			return reconcile.New(st, client, client, notifier, logger, m.ClaimConflicts)
		},
	)
}

func registerTransport(container *dig.Container) error {
	return provideAll(container,
		func(logger logx.Logger, m *Metrics) *events.Classifier {
			return events.NewClassifier(logger, m.EventFallback)
		},
		func(engine *reconcile.Engine) kafka.HandleFunc {
			return engine.HandleEvent
		},
		func(cfg *config.Config, classifier *events.Classifier, h kafka.HandleFunc, logger logx.Logger, m *Metrics) (*kafka.Consumer, error) {
			return kafka.NewConsumer(kafka.Config{
				Brokers: cfg.Broker.Brokers,
				GroupID: cfg.Broker.GroupID,
				Topics: kafka.Topics{
					Personal:    cfg.PersonalTopic(),
					NewOrders:   cfg.Broker.TopicNewOrders,
					Acceptances: cfg.Broker.TopicAcceptances,
				},
				ReconnectDelay: cfg.Broker.ReconnectDelay,
			}, classifier, h, logger, m.BrokerReconnects, m.EventMalformed)
		},
	)
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	return provideAll(container,
		handlers.NewSession,
		func(e *revenue.Estimator) handlers.Estimator { return e },
		handlers.New,
		func(h *handlers.Handlers, m *Metrics) http.Handler {
			return router.New(h, m.Registry)
		},
		serverProvider,
	)
}
