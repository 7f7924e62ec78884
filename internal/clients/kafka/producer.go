package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"phishsim-server/internal/observability"

	"github.com/segmentio/kafka-go"
)

// Producer handles publishing events to Kafka
type Producer struct {
	writer *kafka.Writer
	logger *observability.Logger
}

// ProducerConfig contains configuration for Kafka producer
type ProducerConfig struct {
	Brokers []string
	Topic   string
}

// NewProducer creates a new Kafka producer
func NewProducer(config ProducerConfig, logger *observability.Logger) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(config.Brokers...),
		Topic:        config.Topic,
		Balancer:     &kafka.Hash{},
		Compression:  kafka.Snappy,
		BatchSize:    100,
		RequiredAcks: kafka.RequireOne,
	}

	return &Producer{
		writer: writer,
		logger: logger,
	}
}

// EventMessage is the wire shape of an engagement event
type EventMessage struct {
	ID          string                 `json:"id"`
	Type        string                 `json:"type"`
	CompanyID   string                 `json:"company_id"`
	CampaignID  string                 `json:"campaign_id"`
	RecipientID string                 `json:"recipient_id"`
	Data        map[string]interface{} `json:"data,omitempty"`
	Timestamp   string                 `json:"timestamp"`
}

// PublishEvent publishes an event keyed by company so a tenant's events stay ordered
func (p *Producer) PublishEvent(ctx context.Context, event EventMessage) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "event_type", Value: event.Type},
		observability.Field{Key: "event_id", Value: event.ID},
	)

	eventBytes, err := json.Marshal(event)
	if err != nil {
		p.logger.Error(ctx, "failed to marshal event", err)
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.CompanyID),
		Value: eventBytes,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
			{Key: "company_id", Value: []byte(event.CompanyID)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error(ctx, "failed to write message to kafka", err)
		return fmt.Errorf("failed to write message to kafka: %w", err)
	}

	p.logger.Debug(ctx, fmt.Sprintf("published event %s to kafka", event.Type))
	return nil
}

// Close closes the Kafka producer
func (p *Producer) Close() error {
	return p.writer.Close()
}
