package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// DashboardStats aggregates a tenant's activity; with no tenant it spans the platform.
type DashboardStats struct {
	TotalCampaigns     int `db:"total_campaigns" json:"total_campaigns"`
	ActiveCampaigns    int `db:"active_campaigns" json:"active_campaigns"`
	TotalContacts      int `db:"total_contacts" json:"total_contacts"`
	TotalTemplates     int `db:"total_templates" json:"total_templates"`
	TotalRecipients    int `db:"total_recipients" json:"total_recipients"`
	SentCount          int `db:"sent_count" json:"sent_count"`
	OpenedCount        int `db:"opened_count" json:"opened_count"`
	ClickedCount       int `db:"clicked_count" json:"clicked_count"`
	SubmittedDataCount int `db:"submitted_data_count" json:"submitted_data_count"`
	PendingReview      int `db:"pending_review" json:"pending_review"`
}

// PlatformStats aggregates across all tenants for platform administration.
type PlatformStats struct {
	TotalCompanies     int `db:"total_companies" json:"total_companies"`
	ActiveCompanies    int `db:"active_companies" json:"active_companies"`
	TotalUsers         int `db:"total_users" json:"total_users"`
	TotalCampaigns     int `db:"total_campaigns" json:"total_campaigns"`
	TotalContacts      int `db:"total_contacts" json:"total_contacts"`
	TotalCollectedData int `db:"total_collected_data" json:"total_collected_data"`
	TotalEmailEvents   int `db:"total_email_events" json:"total_email_events"`
}

const sqlDashboardStats = `
SELECT
    (SELECT COUNT(*) FROM campaigns WHERE $1::uuid IS NULL OR company_id = $1)::int AS total_campaigns,
    (SELECT COUNT(*) FROM campaigns WHERE ($1::uuid IS NULL OR company_id = $1)
        AND status IN ('scheduled', 'sending', 'paused'))::int AS active_campaigns,
    (SELECT COUNT(*) FROM contacts WHERE $1::uuid IS NULL OR company_id = $1)::int AS total_contacts,
    (SELECT COUNT(*) FROM templates WHERE $1::uuid IS NULL OR company_id = $1 OR is_global)::int AS total_templates,
    COALESCE(SUM(c.total_recipients), 0)::int AS total_recipients,
    COALESCE(SUM(c.sent_count), 0)::int AS sent_count,
    COALESCE(SUM(c.opened_count), 0)::int AS opened_count,
    COALESCE(SUM(c.clicked_count), 0)::int AS clicked_count,
    COALESCE(SUM(c.submitted_data_count), 0)::int AS submitted_data_count,
    (SELECT COUNT(*) FROM collected_data d JOIN campaigns dc ON dc.id = d.campaign_id
        WHERE ($1::uuid IS NULL OR dc.company_id = $1) AND d.status = 'pending')::int AS pending_review
FROM campaigns c
WHERE $1::uuid IS NULL OR c.company_id = $1`

// DashboardStats aggregates counts and funnel sums for a company, or the platform when companyID is nil
func (s *Store) DashboardStats(ctx context.Context, companyID *uuid.UUID) (DashboardStats, error) {
	var stats DashboardStats
	if err := s.db.GetContext(ctx, &stats, sqlDashboardStats, companyID); err != nil {
		s.logger.Error(ctx, "failed to get dashboard stats", err)
		return DashboardStats{}, fmt.Errorf("failed to get dashboard stats: %w", err)
	}
	return stats, nil
}

const sqlPlatformStats = `
SELECT
    (SELECT COUNT(*) FROM companies)::int AS total_companies,
    (SELECT COUNT(*) FROM companies WHERE is_active)::int AS active_companies,
    (SELECT COUNT(*) FROM users)::int AS total_users,
    (SELECT COUNT(*) FROM campaigns)::int AS total_campaigns,
    (SELECT COUNT(*) FROM contacts)::int AS total_contacts,
    (SELECT COUNT(*) FROM collected_data)::int AS total_collected_data,
    (SELECT COUNT(*) FROM email_events)::int AS total_email_events`

func (s *Store) PlatformStats(ctx context.Context) (PlatformStats, error) {
	var stats PlatformStats
	if err := s.db.GetContext(ctx, &stats, sqlPlatformStats); err != nil {
		s.logger.Error(ctx, "failed to get platform stats", err)
		return PlatformStats{}, fmt.Errorf("failed to get platform stats: %w", err)
	}
	return stats, nil
}

const sqlListCampaignsForExport = `SELECT ` + campaignColumns + ` FROM campaigns ORDER BY created_at DESC`

// ListCampaignsForExport returns every campaign on the platform
func (s *Store) ListCampaignsForExport(ctx context.Context) ([]Campaign, error) {
	campaigns := []Campaign{}
	if err := s.db.SelectContext(ctx, &campaigns, sqlListCampaignsForExport); err != nil {
		s.logger.Error(ctx, "failed to list campaigns for export", err)
		return nil, fmt.Errorf("failed to list campaigns for export: %w", err)
	}
	return campaigns, nil
}
