package events

import (
	"context"
	"time"

	"phishsim-server/internal/clients/kafka"
	"phishsim-server/internal/observability"

	"github.com/google/uuid"
)

// Engagement event types
const (
	TypeRecipientSent      = "recipient.sent"
	TypeRecipientOpened    = "recipient.opened"
	TypeRecipientClicked   = "recipient.clicked"
	TypeRecipientSubmitted = "recipient.submitted"
)

// Producer is the transport the publisher writes to
type Producer interface {
	PublishEvent(ctx context.Context, event kafka.EventMessage) error
}

// Engagement identifies the recipient a funnel event belongs to
type Engagement struct {
	CompanyID   uuid.UUID
	CampaignID  uuid.UUID
	RecipientID uuid.UUID
	ClickedURL  string
	DataType    string
}

// Publisher publishes engagement events. A Publisher without a producer drops every event.
type Publisher struct {
	producer Producer
	logger   *observability.Logger
	now      func() time.Time
}

// NewPublisher creates a new event publisher; producer may be nil when streaming is disabled
func NewPublisher(producer Producer, logger *observability.Logger) *Publisher {
	return &Publisher{
		producer: producer,
		logger:   logger,
		now:      time.Now,
	}
}

// PublishRecipientSent publishes a recipient.sent event
func (p *Publisher) PublishRecipientSent(ctx context.Context, e Engagement) error {
	return p.publish(ctx, TypeRecipientSent, e, nil)
}

// PublishRecipientOpened publishes a recipient.opened event
func (p *Publisher) PublishRecipientOpened(ctx context.Context, e Engagement) error {
	return p.publish(ctx, TypeRecipientOpened, e, nil)
}

// PublishRecipientClicked publishes a recipient.clicked event
func (p *Publisher) PublishRecipientClicked(ctx context.Context, e Engagement) error {
	var data map[string]interface{}
	if e.ClickedURL != "" {
		data = map[string]interface{}{"clicked_url": e.ClickedURL}
	}
	return p.publish(ctx, TypeRecipientClicked, e, data)
}

// PublishRecipientSubmitted publishes a recipient.submitted event. Submitted field values are never included.
func (p *Publisher) PublishRecipientSubmitted(ctx context.Context, e Engagement) error {
	return p.publish(ctx, TypeRecipientSubmitted, e, map[string]interface{}{"data_type": e.DataType})
}

func (p *Publisher) publish(ctx context.Context, eventType string, e Engagement, data map[string]interface{}) error {
	if p == nil || p.producer == nil {
		return nil
	}
	return p.producer.PublishEvent(ctx, kafka.EventMessage{
		ID:          uuid.New().String(),
		Type:        eventType,
		CompanyID:   e.CompanyID.String(),
		CampaignID:  e.CampaignID.String(),
		RecipientID: e.RecipientID.String(),
		Data:        data,
		Timestamp:   p.now().UTC().Format(time.RFC3339),
	})
}
