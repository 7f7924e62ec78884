package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type CreateCampaignParams struct {
	CompanyID      uuid.UUID
	Name           string
	Subject        string
	TemplateID     *uuid.UUID
	EmailServiceID *uuid.UUID
	LandingPageID  *uuid.UUID
	ContactGroupID *uuid.UUID
	FromEmail      *string
	FromName       *string
	ReplyTo        *string
	HTMLContent    *string
	TextContent    *string
	ScheduledAt    *time.Time
	CreatedBy      *uuid.UUID
}

type UpdateCampaignParams struct {
	Name           *string
	Subject        *string
	TemplateID     *uuid.UUID
	EmailServiceID *uuid.UUID
	LandingPageID  *uuid.UUID
	ContactGroupID *uuid.UUID
	FromEmail      *string
	FromName       *string
	ReplyTo        *string
	HTMLContent    *string
	TextContent    *string
	ScheduledAt    *time.Time

	// Clear* unlink the reference; they win over the matching ID
	ClearTemplate     bool
	ClearEmailService bool
	ClearLandingPage  bool
	ClearContactGroup bool

	// Transition, when set, is applied in the same transaction as the content patch
	Transition *CampaignTransition
}

type ListCampaignsParams struct {
	CompanyID *uuid.UUID
	Status    *string
	Limit     int
	Offset    int
}

// CampaignTransition moves a campaign from one status to another. The update only applies
// while the campaign still has status From.
type CampaignTransition struct {
	From        string
	To          string
	ScheduledAt *time.Time
}

const campaignColumns = `id, company_id, name, subject, status, template_id, email_service_id,
    landing_page_id, contact_group_id, from_email, from_name, reply_to, html_content, text_content,
    scheduled_at, launched_at, sent_at, total_recipients, sent_count, delivered_count, opened_count,
    clicked_count, bounced_count, unsubscribed_count, submitted_data_count, created_by,
    created_at, updated_at`

const sqlCreateCampaign = `
INSERT INTO campaigns (company_id, name, subject, template_id, email_service_id, landing_page_id,
    contact_group_id, from_email, from_name, reply_to, html_content, text_content, scheduled_at, created_by)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
RETURNING ` + campaignColumns

// CreateCampaign creates a campaign in draft status
func (s *Store) CreateCampaign(ctx context.Context, params CreateCampaignParams) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlCreateCampaign,
		params.CompanyID, params.Name, params.Subject, params.TemplateID, params.EmailServiceID,
		params.LandingPageID, params.ContactGroupID, params.FromEmail, params.FromName, params.ReplyTo,
		params.HTMLContent, params.TextContent, params.ScheduledAt, params.CreatedBy)
	if err != nil {
		s.logger.Error(ctx, "failed to create campaign", err)
		return Campaign{}, fmt.Errorf("failed to create campaign: %w", err)
	}
	return campaign, nil
}

const sqlGetCampaignByID = `SELECT ` + campaignColumns + ` FROM campaigns WHERE id = $1`

// GetCampaignByID retrieves a campaign by ID
func (s *Store) GetCampaignByID(ctx context.Context, id uuid.UUID) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlGetCampaignByID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get campaign by id", err)
		return Campaign{}, fmt.Errorf("failed to get campaign by id: %w", err)
	}
	return campaign, nil
}

const sqlCampaignFilter = `
WHERE ($1::uuid IS NULL OR company_id = $1)
  AND ($2::campaign_status IS NULL OR status = $2)`

const sqlListCampaigns = `SELECT ` + campaignColumns + ` FROM campaigns` + sqlCampaignFilter + `
ORDER BY created_at DESC
LIMIT $3 OFFSET $4`

const sqlCountCampaigns = `SELECT COUNT(*) FROM campaigns` + sqlCampaignFilter

// ListCampaigns returns one page of campaigns and the total match count
func (s *Store) ListCampaigns(ctx context.Context, params ListCampaignsParams) ([]Campaign, int, error) {
	campaigns := []Campaign{}
	err := s.db.SelectContext(ctx, &campaigns, sqlListCampaigns, params.CompanyID, params.Status, params.Limit, params.Offset)
	if err != nil {
		s.logger.Error(ctx, "failed to list campaigns", err)
		return nil, 0, fmt.Errorf("failed to list campaigns: %w", err)
	}

	var total int
	if err := s.db.GetContext(ctx, &total, sqlCountCampaigns, params.CompanyID, params.Status); err != nil {
		s.logger.Error(ctx, "failed to count campaigns", err)
		return nil, 0, fmt.Errorf("failed to count campaigns: %w", err)
	}
	return campaigns, total, nil
}

const sqlUpdateCampaign = `
UPDATE campaigns
SET name = COALESCE($2, name),
    subject = COALESCE($3, subject),
    template_id = CASE WHEN $14::boolean THEN NULL ELSE COALESCE($4, template_id) END,
    email_service_id = CASE WHEN $15::boolean THEN NULL ELSE COALESCE($5, email_service_id) END,
    landing_page_id = CASE WHEN $16::boolean THEN NULL ELSE COALESCE($6, landing_page_id) END,
    contact_group_id = CASE WHEN $17::boolean THEN NULL ELSE COALESCE($7, contact_group_id) END,
    from_email = COALESCE($8, from_email),
    from_name = COALESCE($9, from_name),
    reply_to = COALESCE($10, reply_to),
    html_content = COALESCE($11, html_content),
    text_content = COALESCE($12, text_content),
    scheduled_at = COALESCE($13, scheduled_at),
    updated_at = NOW()
WHERE id = $1
RETURNING ` + campaignColumns

// UpdateCampaign patches the non-nil content fields of a campaign and, when params.Transition
// is set, moves its status in the same transaction. Either both apply or neither does.
// ErrConflict means the campaign was no longer in status Transition.From.
func (s *Store) UpdateCampaign(ctx context.Context, id uuid.UUID, params UpdateCampaignParams) (Campaign, error) {
	var campaign Campaign
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &campaign, sqlUpdateCampaign, id,
			params.Name, params.Subject, params.TemplateID, params.EmailServiceID, params.LandingPageID,
			params.ContactGroupID, params.FromEmail, params.FromName, params.ReplyTo,
			params.HTMLContent, params.TextContent, params.ScheduledAt,
			params.ClearTemplate, params.ClearEmailService, params.ClearLandingPage, params.ClearContactGroup)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to update campaign: %w", err)
		}

		if params.Transition == nil {
			return nil
		}
		t := params.Transition
		if err := tx.GetContext(ctx, &campaign, sqlTransitionCampaign, id, t.From, t.To, t.ScheduledAt); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrConflict
			}
			return fmt.Errorf("failed to transition campaign: %w", err)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) && !errors.Is(err, ErrConflict) {
			s.logger.Error(ctx, "failed to update campaign", err)
		}
		return Campaign{}, err
	}
	return campaign, nil
}

const sqlTransitionCampaign = `
UPDATE campaigns
SET status = $3::campaign_status,
    scheduled_at = CASE WHEN $3::campaign_status = 'scheduled' THEN $4 ELSE scheduled_at END,
    launched_at = CASE
        WHEN $3::campaign_status = 'sending' AND launched_at IS NULL THEN NOW()
        ELSE launched_at
    END,
    sent_at = CASE WHEN $3::campaign_status = 'sent' THEN NOW() ELSE sent_at END,
    total_recipients = CASE
        WHEN $3::campaign_status = 'sending' AND launched_at IS NULL AND contact_group_id IS NOT NULL
            THEN (SELECT COUNT(*) FROM contacts c WHERE c.group_id = campaigns.contact_group_id)::int
        ELSE total_recipients
    END,
    updated_at = NOW()
WHERE id = $1 AND status = $2::campaign_status
RETURNING ` + campaignColumns

// TransitionCampaign applies a status change as a compare-and-set on the current status.
// The first move into sending, by launch or by resuming a paused scheduled campaign, stamps
// launched_at and recounts recipients from the linked contact group.
// ErrConflict means the campaign was not in status From.
func (s *Store) TransitionCampaign(ctx context.Context, id uuid.UUID, transition CampaignTransition) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlTransitionCampaign, id, transition.From, transition.To, transition.ScheduledAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrConflict
		}
		s.logger.Error(ctx, "failed to transition campaign", err)
		return Campaign{}, fmt.Errorf("failed to transition campaign: %w", err)
	}
	return campaign, nil
}

const sqlDeleteCampaign = `DELETE FROM campaigns WHERE id = $1`

// DeleteCampaign removes a campaign; recipients, events, and collected data cascade
func (s *Store) DeleteCampaign(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlDeleteCampaign, id)
	if err != nil {
		s.logger.Error(ctx, "failed to delete campaign", err)
		return fmt.Errorf("failed to delete campaign: %w", err)
	}
	return expectAffected(res)
}

const sqlListEmailEvents = `
SELECT id, campaign_id, recipient_id, tracking_id, event_type, clicked_url, ip_address, user_agent, created_at
FROM email_events
WHERE campaign_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

// ListEmailEvents returns a page of a campaign's audit trail, newest first
func (s *Store) ListEmailEvents(ctx context.Context, campaignID uuid.UUID, limit, offset int) ([]EmailEvent, error) {
	events := []EmailEvent{}
	if err := s.db.SelectContext(ctx, &events, sqlListEmailEvents, campaignID, limit, offset); err != nil {
		s.logger.Error(ctx, "failed to list email events", err)
		return nil, fmt.Errorf("failed to list email events: %w", err)
	}
	return events, nil
}
