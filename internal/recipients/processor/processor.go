package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"phishsim-server/internal/authz"
	"phishsim-server/internal/events"
	"phishsim-server/internal/observability"
	"phishsim-server/internal/store"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// RecipientStore defines the database operations required by RecipientProcessor
type RecipientStore interface {
	GetCampaignByID(ctx context.Context, id uuid.UUID) (store.Campaign, error)
	ListRecipientsByCampaign(ctx context.Context, campaignID uuid.UUID) ([]store.RecipientWithContact, error)
	GetRecipientByID(ctx context.Context, id uuid.UUID) (store.CampaignRecipient, error)
	AddRecipients(ctx context.Context, campaignID, companyID uuid.UUID, contactIDs []uuid.UUID) (int, error)
	DeletePendingRecipient(ctx context.Context, id uuid.UUID) error
	MarkRecipientSent(ctx context.Context, trackingID string) (store.FunnelResult, error)
	FindOrCreateContact(ctx context.Context, companyID uuid.UUID, input store.ContactInput) (store.Contact, bool, error)
}

// EventPublisher streams delivery events
type EventPublisher interface {
	PublishRecipientSent(ctx context.Context, e events.Engagement) error
}

var (
	ErrCampaignNotFound    = errors.New("campaign not found")
	ErrRecipientNotFound   = errors.New("recipient not found")
	ErrRecipientNotPending = errors.New("only pending recipients can be removed")
	ErrNoRecipients        = errors.New("no recipients provided")
)

type RecipientProcessor struct {
	store     RecipientStore
	publisher EventPublisher
	validate  *validator.Validate
	logger    *observability.Logger
}

func New(store RecipientStore, publisher EventPublisher, logger *observability.Logger) RecipientProcessor {
	return RecipientProcessor{store: store, publisher: publisher, validate: validator.New(), logger: logger}
}

// ImportRow is one recipient to find or create by email
type ImportRow struct {
	Line      int
	Email     string
	FirstName *string
	LastName  *string
}

type RowError struct {
	Line  int    `json:"line"`
	Email string `json:"email,omitempty"`
	Error string `json:"error"`
}

// ImportResult reports how many contacts were created or reused and how many recipients were attached
type ImportResult struct {
	ContactsCreated int        `json:"contacts_created"`
	ContactsReused  int        `json:"contacts_reused"`
	RecipientsAdded int        `json:"recipients_added"`
	Errors          []RowError `json:"errors"`
}

// ListRecipients returns a campaign's recipients with their contact details
func (p *RecipientProcessor) ListRecipients(ctx context.Context, actor authz.Actor, campaignID uuid.UUID) ([]store.RecipientWithContact, error) {
	if _, err := p.getCampaign(ctx, actor, campaignID); err != nil {
		return nil, err
	}

	recipients, err := p.store.ListRecipientsByCampaign(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipients: %w", err)
	}
	return recipients, nil
}

// AddRecipients attaches existing contacts of the campaign's company. Contacts already on
// the campaign or outside the company are skipped; the count of new recipients is returned.
func (p *RecipientProcessor) AddRecipients(ctx context.Context, actor authz.Actor, campaignID uuid.UUID, contactIDs []uuid.UUID) (int, error) {
	if len(contactIDs) == 0 {
		return 0, ErrNoRecipients
	}
	campaign, err := p.getCampaign(ctx, actor, campaignID)
	if err != nil {
		return 0, err
	}

	added, err := p.store.AddRecipients(ctx, campaign.ID, campaign.CompanyID, dedupe(contactIDs))
	if err != nil {
		return 0, fmt.Errorf("failed to add recipients: %w", err)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaign.ID},
		observability.Field{Key: "added", Value: added},
		observability.Field{Key: "requested", Value: len(contactIDs)},
	)
	p.logger.Info(ctx, "recipients added")
	return added, nil
}

// ImportRecipients finds or creates a contact per row by email and attaches them all
func (p *RecipientProcessor) ImportRecipients(ctx context.Context, actor authz.Actor, campaignID uuid.UUID, rows []ImportRow) (ImportResult, error) {
	if len(rows) == 0 {
		return ImportResult{}, ErrNoRecipients
	}
	campaign, err := p.getCampaign(ctx, actor, campaignID)
	if err != nil {
		return ImportResult{}, err
	}

	result := ImportResult{Errors: []RowError{}}
	contactIDs := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		email := strings.ToLower(strings.TrimSpace(row.Email))
		if err := p.validate.Var(email, "required,email"); err != nil {
			result.Errors = append(result.Errors, RowError{Line: row.Line, Email: row.Email, Error: "invalid email address"})
			continue
		}

		contact, created, err := p.store.FindOrCreateContact(ctx, campaign.CompanyID, store.ContactInput{
			Email:     email,
			FirstName: row.FirstName,
			LastName:  row.LastName,
		})
		if err != nil {
			p.logger.Error(ctx, "failed to find or create contact", err)
			result.Errors = append(result.Errors, RowError{Line: row.Line, Email: row.Email, Error: "failed to store contact"})
			continue
		}
		if created {
			result.ContactsCreated++
		} else {
			result.ContactsReused++
		}
		contactIDs = append(contactIDs, contact.ID)
	}

	if len(contactIDs) > 0 {
		added, err := p.store.AddRecipients(ctx, campaign.ID, campaign.CompanyID, dedupe(contactIDs))
		if err != nil {
			return ImportResult{}, fmt.Errorf("failed to add recipients: %w", err)
		}
		result.RecipientsAdded = added
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaign.ID},
		observability.Field{Key: "contacts_created", Value: result.ContactsCreated},
		observability.Field{Key: "contacts_reused", Value: result.ContactsReused},
		observability.Field{Key: "recipients_added", Value: result.RecipientsAdded},
	)
	p.logger.Info(ctx, "recipients imported")
	return result, nil
}

// RemoveRecipient detaches a recipient that is still pending
func (p *RecipientProcessor) RemoveRecipient(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	if _, _, err := p.getRecipient(ctx, actor, id); err != nil {
		return err
	}

	if err := p.store.DeletePendingRecipient(ctx, id); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return ErrRecipientNotFound
		case errors.Is(err, store.ErrConflict):
			return ErrRecipientNotPending
		}
		return fmt.Errorf("failed to remove recipient: %w", err)
	}
	return nil
}

// MarkSent records that the recipient's email was delivered outside this server. Repeated
// calls leave the recipient and counters unchanged.
func (p *RecipientProcessor) MarkSent(ctx context.Context, actor authz.Actor, id uuid.UUID) (store.CampaignRecipient, error) {
	recipient, campaign, err := p.getRecipient(ctx, actor, id)
	if err != nil {
		return store.CampaignRecipient{}, err
	}

	result, err := p.store.MarkRecipientSent(ctx, recipient.TrackingID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.CampaignRecipient{}, ErrRecipientNotFound
		}
		return store.CampaignRecipient{}, fmt.Errorf("failed to mark recipient sent: %w", err)
	}

	if result.Advanced {
		err := p.publisher.PublishRecipientSent(ctx, events.Engagement{
			CompanyID:   campaign.CompanyID,
			CampaignID:  campaign.ID,
			RecipientID: recipient.ID,
		})
		if err != nil {
			p.logger.Error(ctx, "failed to publish recipient sent event", err)
		}
	}
	return result.Recipient, nil
}

func (p *RecipientProcessor) getCampaign(ctx context.Context, actor authz.Actor, id uuid.UUID) (store.Campaign, error) {
	campaign, err := p.store.GetCampaignByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, ErrCampaignNotFound
		}
		return store.Campaign{}, fmt.Errorf("failed to get campaign: %w", err)
	}
	if err := authz.Enforce(actor, authz.Owned(campaign.CompanyID), authz.Write, ErrCampaignNotFound); err != nil {
		return store.Campaign{}, err
	}
	return campaign, nil
}

// getRecipient loads a recipient and checks access through its campaign
func (p *RecipientProcessor) getRecipient(ctx context.Context, actor authz.Actor, id uuid.UUID) (store.CampaignRecipient, store.Campaign, error) {
	recipient, err := p.store.GetRecipientByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.CampaignRecipient{}, store.Campaign{}, ErrRecipientNotFound
		}
		return store.CampaignRecipient{}, store.Campaign{}, fmt.Errorf("failed to get recipient: %w", err)
	}
	campaign, err := p.getCampaign(ctx, actor, recipient.CampaignID)
	if err != nil {
		if errors.Is(err, ErrCampaignNotFound) {
			return store.CampaignRecipient{}, store.Campaign{}, ErrRecipientNotFound
		}
		return store.CampaignRecipient{}, store.Campaign{}, err
	}
	return recipient, campaign, nil
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
