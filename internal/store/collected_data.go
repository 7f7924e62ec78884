package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

type ListCollectedDataParams struct {
	CompanyID  *uuid.UUID
	CampaignID *uuid.UUID
	Status     *string
	Limit      int
	Offset     int
}

const collectedDataColumns = `id, campaign_id, recipient_id, data_type, fields, ip_address,
    user_agent, submitted_at, status, verified_at, flagged_at, flag_reason`

const collectedDataJoinedSelect = `
SELECT d.id, d.campaign_id, d.recipient_id, d.data_type, d.fields, d.ip_address, d.user_agent,
    d.submitted_at, d.status, d.verified_at, d.flagged_at, d.flag_reason,
    c.company_id, c.name AS campaign_name, ct.email AS recipient_email
FROM collected_data d
JOIN campaigns c ON c.id = d.campaign_id
LEFT JOIN campaign_recipients r ON r.id = d.recipient_id
LEFT JOIN contacts ct ON ct.id = r.contact_id`

const sqlCollectedDataFilter = `
WHERE ($1::uuid IS NULL OR c.company_id = $1)
  AND ($2::uuid IS NULL OR d.campaign_id = $2)
  AND ($3::collected_data_status IS NULL OR d.status = $3)`

const sqlListCollectedData = collectedDataJoinedSelect + sqlCollectedDataFilter + `
ORDER BY d.submitted_at DESC
LIMIT $4 OFFSET $5`

const sqlCountCollectedData = `
SELECT COUNT(*)
FROM collected_data d
JOIN campaigns c ON c.id = d.campaign_id` + sqlCollectedDataFilter

// ListCollectedData returns one page of submissions with their campaign context and the total count
func (s *Store) ListCollectedData(ctx context.Context, params ListCollectedDataParams) ([]CollectedDataWithCampaign, int, error) {
	rows := []CollectedDataWithCampaign{}
	err := s.db.SelectContext(ctx, &rows, sqlListCollectedData,
		params.CompanyID, params.CampaignID, params.Status, params.Limit, params.Offset)
	if err != nil {
		s.logger.Error(ctx, "failed to list collected data", err)
		return nil, 0, fmt.Errorf("failed to list collected data: %w", err)
	}

	var total int
	err = s.db.GetContext(ctx, &total, sqlCountCollectedData, params.CompanyID, params.CampaignID, params.Status)
	if err != nil {
		s.logger.Error(ctx, "failed to count collected data", err)
		return nil, 0, fmt.Errorf("failed to count collected data: %w", err)
	}
	return rows, total, nil
}

const sqlListCollectedDataForExport = collectedDataJoinedSelect + `
WHERE $1::uuid IS NULL OR c.company_id = $1
ORDER BY d.submitted_at DESC`

// ListCollectedDataForExport returns every submission, optionally for one company
func (s *Store) ListCollectedDataForExport(ctx context.Context, companyID *uuid.UUID) ([]CollectedDataWithCampaign, error) {
	rows := []CollectedDataWithCampaign{}
	if err := s.db.SelectContext(ctx, &rows, sqlListCollectedDataForExport, companyID); err != nil {
		s.logger.Error(ctx, "failed to list collected data for export", err)
		return nil, fmt.Errorf("failed to list collected data for export: %w", err)
	}
	return rows, nil
}

const sqlGetCollectedDataByID = collectedDataJoinedSelect + ` WHERE d.id = $1`

func (s *Store) GetCollectedDataByID(ctx context.Context, id uuid.UUID) (CollectedDataWithCampaign, error) {
	var row CollectedDataWithCampaign
	err := s.db.GetContext(ctx, &row, sqlGetCollectedDataByID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CollectedDataWithCampaign{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get collected data by id", err)
		return CollectedDataWithCampaign{}, fmt.Errorf("failed to get collected data by id: %w", err)
	}
	return row, nil
}

// Each moderation state owns its timestamp; entering one clears the others.
const sqlUpdateCollectedDataStatus = `
UPDATE collected_data
SET status = $2::collected_data_status,
    verified_at = CASE WHEN $2::collected_data_status = 'verified' THEN NOW() ELSE NULL END,
    flagged_at = CASE WHEN $2::collected_data_status = 'flagged' THEN NOW() ELSE NULL END,
    flag_reason = CASE WHEN $2::collected_data_status = 'flagged' THEN $3::text ELSE NULL END
WHERE id = $1
RETURNING ` + collectedDataColumns

// UpdateCollectedDataStatus moves a submission to pending, verified, or flagged
func (s *Store) UpdateCollectedDataStatus(ctx context.Context, id uuid.UUID, status string, flagReason *string) (CollectedData, error) {
	var data CollectedData
	err := s.db.GetContext(ctx, &data, sqlUpdateCollectedDataStatus, id, status, flagReason)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CollectedData{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update collected data status", err)
		return CollectedData{}, fmt.Errorf("failed to update collected data status: %w", err)
	}
	return data, nil
}

const sqlDeleteCollectedData = `DELETE FROM collected_data WHERE id = $1`

func (s *Store) DeleteCollectedData(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlDeleteCollectedData, id)
	if err != nil {
		s.logger.Error(ctx, "failed to delete collected data", err)
		return fmt.Errorf("failed to delete collected data: %w", err)
	}
	return expectAffected(res)
}
