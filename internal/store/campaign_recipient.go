package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const recipientColumns = `id, campaign_id, contact_id, tracking_id, status, sent_at, opened_at,
    clicked_at, submitted_data_at, created_at`

const sqlListRecipientsByCampaign = `
SELECT r.id, r.campaign_id, r.contact_id, r.tracking_id, r.status, r.sent_at, r.opened_at,
    r.clicked_at, r.submitted_data_at, r.created_at,
    c.email, c.first_name, c.last_name
FROM campaign_recipients r
JOIN contacts c ON c.id = r.contact_id
WHERE r.campaign_id = $1
ORDER BY r.created_at, c.email`

// ListRecipientsByCampaign returns a campaign's recipients joined with their contacts
func (s *Store) ListRecipientsByCampaign(ctx context.Context, campaignID uuid.UUID) ([]RecipientWithContact, error) {
	recipients := []RecipientWithContact{}
	if err := s.db.SelectContext(ctx, &recipients, sqlListRecipientsByCampaign, campaignID); err != nil {
		s.logger.Error(ctx, "failed to list recipients by campaign", err)
		return nil, fmt.Errorf("failed to list recipients by campaign: %w", err)
	}
	return recipients, nil
}

const sqlGetRecipientByID = `SELECT ` + recipientColumns + ` FROM campaign_recipients WHERE id = $1`

func (s *Store) GetRecipientByID(ctx context.Context, id uuid.UUID) (CampaignRecipient, error) {
	var recipient CampaignRecipient
	err := s.db.GetContext(ctx, &recipient, sqlGetRecipientByID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CampaignRecipient{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get recipient by id", err)
		return CampaignRecipient{}, fmt.Errorf("failed to get recipient by id: %w", err)
	}
	return recipient, nil
}

const sqlGetRecipientByTrackingID = `SELECT ` + recipientColumns + ` FROM campaign_recipients WHERE tracking_id = $1`

func (s *Store) GetRecipientByTrackingID(ctx context.Context, trackingID string) (CampaignRecipient, error) {
	var recipient CampaignRecipient
	err := s.db.GetContext(ctx, &recipient, sqlGetRecipientByTrackingID, trackingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CampaignRecipient{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get recipient by tracking id", err)
		return CampaignRecipient{}, fmt.Errorf("failed to get recipient by tracking id: %w", err)
	}
	return recipient, nil
}

// Contacts outside the company are ignored; duplicates are skipped by the (campaign, contact) key.
const sqlInsertRecipients = `
INSERT INTO campaign_recipients (campaign_id, contact_id, tracking_id)
SELECT $1, c.id, encode(gen_random_bytes(16), 'hex')
FROM contacts c
WHERE c.company_id = $2 AND c.id = ANY($3::uuid[])
ON CONFLICT (campaign_id, contact_id) DO NOTHING`

const sqlAdjustTotalRecipients = `
UPDATE campaigns SET total_recipients = GREATEST(total_recipients + $2, 0), updated_at = NOW() WHERE id = $1`

// AddRecipients attaches the given contacts to a campaign and bumps total_recipients by the
// number of rows actually created, in one transaction.
func (s *Store) AddRecipients(ctx context.Context, campaignID, companyID uuid.UUID, contactIDs []uuid.UUID) (int, error) {
	if len(contactIDs) == 0 {
		return 0, nil
	}

	var created int
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, sqlInsertRecipients, campaignID, companyID, uuidArray(contactIDs))
		if err != nil {
			s.logger.Error(ctx, "failed to insert recipients", err)
			return fmt.Errorf("failed to insert recipients: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read rows affected: %w", err)
		}
		created = int(n)

		if created > 0 {
			if _, err := tx.ExecContext(ctx, sqlAdjustTotalRecipients, campaignID, created); err != nil {
				s.logger.Error(ctx, "failed to adjust total recipients", err)
				return fmt.Errorf("failed to adjust total recipients: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}

const sqlDeletePendingRecipient = `
DELETE FROM campaign_recipients
WHERE id = $1 AND status = 'pending'
RETURNING campaign_id`

// DeletePendingRecipient removes a recipient that has not entered the funnel yet and
// decrements total_recipients. ErrConflict means the recipient is past pending.
func (s *Store) DeletePendingRecipient(ctx context.Context, id uuid.UUID) error {
	return s.withTx(ctx, func(tx *sqlx.Tx) error {
		var campaignID uuid.UUID
		err := tx.GetContext(ctx, &campaignID, sqlDeletePendingRecipient, id)
		if errors.Is(err, sql.ErrNoRows) {
			var recipient CampaignRecipient
			if err := tx.GetContext(ctx, &recipient, sqlGetRecipientByID, id); err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return ErrNotFound
				}
				return fmt.Errorf("failed to get recipient by id: %w", err)
			}
			return ErrConflict
		}
		if err != nil {
			s.logger.Error(ctx, "failed to delete recipient", err)
			return fmt.Errorf("failed to delete recipient: %w", err)
		}

		if _, err := tx.ExecContext(ctx, sqlAdjustTotalRecipients, campaignID, -1); err != nil {
			s.logger.Error(ctx, "failed to adjust total recipients", err)
			return fmt.Errorf("failed to adjust total recipients: %w", err)
		}
		return nil
	})
}
