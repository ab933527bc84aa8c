package kafka

import (
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"

	"service-livreur-client/internal/logx"
)

// Producer publishes JSON payloads to broker topics. Used by dispatch-sim
// to emulate the backend's broadcasts.
type Producer struct {
	producer sarama.SyncProducer
	logger   logx.Logger
}

// NewProducer creates a synchronous producer.
func NewProducer(brokers []string, logger logx.Logger) (*Producer, error) {
	if logger == nil {
		logger = logx.Nop()
	}
	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForLocal
	cfg.Producer.Return.Successes = true

	p, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return &Producer{producer: p, logger: logger}, nil
}

// Publish marshals v and sends it to the topic.
func (p *Producer) Publish(topic string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("kafka producer: marshal: %w", err)
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: topic,
		Value: sarama.ByteEncoder(body),
	})
	if err != nil {
		return fmt.Errorf("kafka producer: send to %s: %w", topic, err)
	}

	p.logger.Debug("event published",
		logx.String("topic", topic),
		logx.Int("partition", int(partition)),
		logx.Int64("offset", offset),
	)
	return nil
}

// Close shuts the producer down.
func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.producer.Close()
}
