package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type funnelStage struct {
	timestampColumn string
	counterColumn   string
	eventType       string
	// logRepeats appends an email event even when the recipient already passed this stage
	logRepeats bool
}

var funnelStages = map[string]funnelStage{
	RecipientStatusSent:          {timestampColumn: "sent_at", counterColumn: "sent_count", eventType: EmailEventSent},
	RecipientStatusOpened:        {timestampColumn: "opened_at", counterColumn: "opened_count", eventType: EmailEventOpened},
	RecipientStatusClicked:       {timestampColumn: "clicked_at", counterColumn: "clicked_count", eventType: EmailEventClicked, logRepeats: true},
	RecipientStatusSubmittedData: {timestampColumn: "submitted_data_at", counterColumn: "submitted_data_count"},
}

// TrackingHit is one tracked interaction of a recipient.
type TrackingHit struct {
	TrackingID string
	Stage      string
	ClickedURL *string
	IPAddress  *string
	UserAgent  *string
}

// FunnelResult reports the recipient after a hit and whether the hit moved it into the stage.
type FunnelResult struct {
	Recipient CampaignRecipient
	Advanced  bool
}

type RecordSubmissionParams struct {
	TrackingID string
	DataType   string
	Fields     JSONB
	IPAddress  *string
	UserAgent  *string
}

// AdvanceFunnel records a tracking hit in one transaction. The first hit of a stage stamps the
// stage timestamp, raises the status to at least that stage, and increments the campaign counter.
// Repeat hits leave both untouched. ErrNotFound means the tracking id is unknown.
func (s *Store) AdvanceFunnel(ctx context.Context, hit TrackingHit) (FunnelResult, error) {
	var result FunnelResult
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		result, err = s.advanceFunnel(ctx, tx, hit)
		return err
	})
	if err != nil {
		return FunnelResult{}, err
	}
	return result, nil
}

const sqlInsertCollectedData = `
INSERT INTO collected_data (campaign_id, recipient_id, data_type, fields, ip_address, user_agent)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + collectedDataColumns

// RecordSubmission stores every submission as collected data and advances the recipient to
// submitted_data on the first one, in one transaction.
func (s *Store) RecordSubmission(ctx context.Context, params RecordSubmissionParams) (CollectedData, FunnelResult, error) {
	var (
		data   CollectedData
		result FunnelResult
	)
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		result, err = s.advanceFunnel(ctx, tx, TrackingHit{
			TrackingID: params.TrackingID,
			Stage:      RecipientStatusSubmittedData,
			IPAddress:  params.IPAddress,
			UserAgent:  params.UserAgent,
		})
		if err != nil {
			return err
		}

		fields := params.Fields
		if fields == nil {
			fields = JSONB{}
		}
		err = tx.GetContext(ctx, &data, sqlInsertCollectedData,
			result.Recipient.CampaignID, result.Recipient.ID, params.DataType, fields,
			params.IPAddress, params.UserAgent)
		if err != nil {
			s.logger.Error(ctx, "failed to insert collected data", err)
			return fmt.Errorf("failed to insert collected data: %w", err)
		}
		return nil
	})
	if err != nil {
		return CollectedData{}, FunnelResult{}, err
	}
	return data, result, nil
}

const sqlInsertEmailEvent = `
INSERT INTO email_events (campaign_id, recipient_id, tracking_id, event_type, clicked_url, ip_address, user_agent)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

func (s *Store) advanceFunnel(ctx context.Context, tx *sqlx.Tx, hit TrackingHit) (FunnelResult, error) {
	stage, ok := funnelStages[hit.Stage]
	if !ok {
		return FunnelResult{}, fmt.Errorf("unknown funnel stage %q", hit.Stage)
	}

	// The IS NULL guard makes the stamp a compare-and-set; a concurrent duplicate hit
	// re-evaluates it after the first commits and matches nothing.
	advanceQuery := fmt.Sprintf(`
UPDATE campaign_recipients
SET %[1]s = NOW(), status = GREATEST(status, $2::recipient_status)
WHERE tracking_id = $1 AND %[1]s IS NULL
RETURNING `+recipientColumns, stage.timestampColumn)

	var result FunnelResult
	err := tx.GetContext(ctx, &result.Recipient, advanceQuery, hit.TrackingID, hit.Stage)
	switch {
	case err == nil:
		result.Advanced = true
	case errors.Is(err, sql.ErrNoRows):
		if err := tx.GetContext(ctx, &result.Recipient, sqlGetRecipientByTrackingID, hit.TrackingID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return FunnelResult{}, ErrNotFound
			}
			s.logger.Error(ctx, "failed to get recipient by tracking id", err)
			return FunnelResult{}, fmt.Errorf("failed to get recipient by tracking id: %w", err)
		}
	default:
		s.logger.Error(ctx, "failed to advance recipient funnel", err)
		return FunnelResult{}, fmt.Errorf("failed to advance recipient funnel: %w", err)
	}

	if result.Advanced {
		counterQuery := fmt.Sprintf(`UPDATE campaigns SET %[1]s = %[1]s + 1, updated_at = NOW() WHERE id = $1`, stage.counterColumn)
		if _, err := tx.ExecContext(ctx, counterQuery, result.Recipient.CampaignID); err != nil {
			s.logger.Error(ctx, "failed to increment campaign counter", err)
			return FunnelResult{}, fmt.Errorf("failed to increment campaign counter: %w", err)
		}
	}

	if stage.eventType != "" && (result.Advanced || stage.logRepeats) {
		_, err := tx.ExecContext(ctx, sqlInsertEmailEvent,
			result.Recipient.CampaignID, result.Recipient.ID, hit.TrackingID, stage.eventType,
			hit.ClickedURL, hit.IPAddress, hit.UserAgent)
		if err != nil {
			s.logger.Error(ctx, "failed to insert email event", err)
			return FunnelResult{}, fmt.Errorf("failed to insert email event: %w", err)
		}
	}

	return result, nil
}

// MarkRecipientSent records out-of-band delivery of the email behind a tracking id.
func (s *Store) MarkRecipientSent(ctx context.Context, trackingID string) (FunnelResult, error) {
	return s.AdvanceFunnel(ctx, TrackingHit{TrackingID: trackingID, Stage: RecipientStatusSent})
}
