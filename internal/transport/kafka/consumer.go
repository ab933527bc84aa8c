// Package kafka maintains the driver session's subscription to the push
// broker and translates raw messages into typed events. Delivery to
// consumers is at-most-once: the live feed starts at the newest offset and
// failed handlers skip rather than replay, so gaps are expected and are
// covered by the pull-refresh path.
package kafka

import (
	"context"
	"strings"
	"time"

	"github.com/IBM/sarama"

	"service-livreur-client/internal/events"
	"service-livreur-client/internal/logx"
)

// HandleFunc processes a single classified event.
type HandleFunc func(context.Context, events.Event) error

type counter interface {
	Inc()
}

// seam for tests
var newConsumerGroup = sarama.NewConsumerGroup

// Topics names the three topic families a driver session subscribes to.
// Personal may be empty when the driver id is not yet known.
type Topics struct {
	Personal    string
	NewOrders   string
	Acceptances string
}

func (t Topics) list() []string {
	out := make([]string, 0, 3)
	for _, topic := range []string{t.Personal, t.NewOrders, t.Acceptances} {
		if strings.TrimSpace(topic) != "" {
			out = append(out, topic)
		}
	}
	return out
}

// Config stores consumer settings.
type Config struct {
	Brokers        []string
	GroupID        string
	Topics         Topics
	ReconnectDelay time.Duration
}

// Consumer wraps a Sarama consumer group and dispatches classified events
// to a handler.
type Consumer struct {
	group      sarama.ConsumerGroup
	cfg        Config
	classifier *events.Classifier
	handler    HandleFunc
	logger     logx.Logger
	reconnects counter
	malformed  counter
}

// NewConsumer creates a broker consumer. Returns nil when the broker is not
// configured, which disables the push path entirely.
func NewConsumer(cfg Config, classifier *events.Classifier, h HandleFunc, logger logx.Logger, reconnects, malformed counter) (*Consumer, error) {
	if len(cfg.Brokers) == 0 || len(cfg.Topics.list()) == 0 || strings.TrimSpace(cfg.GroupID) == "" {
		return nil, nil
	}
	if cfg.ReconnectDelay <= 0 {
		cfg.ReconnectDelay = 5 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}

	sc := sarama.NewConfig()
	// live feed only: missed messages are recovered by pull refresh, not replay
	sc.Consumer.Offsets.Initial = sarama.OffsetNewest

	group, err := newConsumerGroup(cfg.Brokers, cfg.GroupID, sc)
	if err != nil {
		return nil, err
	}

	return &Consumer{
		group:      group,
		cfg:        cfg,
		classifier: classifier,
		handler:    h,
		logger:     logger,
		reconnects: reconnects,
		malformed:  malformed,
	}, nil
}

// Run consumes until ctx is cancelled. Every disconnect reconnects after a
// fixed delay and re-establishes the identical subscriptions.
func (c *Consumer) Run(ctx context.Context) error {
	if c == nil {
		return nil
	}

	h := &groupHandler{c: c}
	topics := c.cfg.Topics.list()

	c.logger.Info("broker connecting", logx.Any("topics", topics))
	for {
		if err := c.group.Consume(ctx, topics, h); err != nil {
			if ctx.Err() != nil {
				c.logger.Info("broker closed")
				return ctx.Err()
			}
			c.logger.Warn("broker disconnected, reconnecting",
				logx.Any("err", err),
				logx.Duration("delay", c.cfg.ReconnectDelay),
			)
			if c.reconnects != nil {
				c.reconnects.Inc()
			}
			select {
			case <-ctx.Done():
				c.logger.Info("broker closed")
				return ctx.Err()
			case <-time.After(c.cfg.ReconnectDelay):
			}
			continue
		}
		// rebalance: Consume returns nil and we resubscribe immediately
		if ctx.Err() != nil {
			c.logger.Info("broker closed")
			return ctx.Err()
		}
	}
}

// Close tears down the consumer group.
func (c *Consumer) Close() error {
	if c == nil {
		return nil
	}
	return c.group.Close()
}

// sourceOf maps a topic name to the classifier's topic family.
func (c *Consumer) sourceOf(topic string) events.Source {
	switch topic {
	case c.cfg.Topics.Acceptances:
		return events.SourceAcceptedBroadcast
	case c.cfg.Topics.NewOrders:
		return events.SourceNewBroadcast
	default:
		return events.SourcePersonal
	}
}

type groupHandler struct{ c *Consumer }

func (h *groupHandler) Setup(sarama.ConsumerGroupSession) error {
	h.c.logger.Info("broker connected")
	return nil
}

func (h *groupHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *groupHandler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		ev, err := h.c.classifier.Classify(h.c.sourceOf(msg.Topic), msg.Topic, msg.Value)
		if err != nil {
			h.c.logger.Warn("broker payload dropped",
				logx.String("topic", msg.Topic),
				logx.Any("err", err),
			)
			if h.c.malformed != nil {
				h.c.malformed.Inc()
			}
			sess.MarkMessage(msg, "")
			continue
		}

		if err := h.c.handler(sess.Context(), ev); err != nil {
			// at-most-once: skip, the next pull refresh reconciles
			h.c.logger.Warn("event handler failed, skipping message",
				logx.String("kind", string(ev.Kind)),
				logx.Any("err", err),
			)
		}
		sess.MarkMessage(msg, "")
	}
	return nil
}
