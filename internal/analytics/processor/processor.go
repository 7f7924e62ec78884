package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"phishsim-server/internal/authz"
	"phishsim-server/internal/observability"
	"phishsim-server/internal/store"

	"github.com/google/uuid"
)

// AnalyticsStore defines the database operations required by AnalyticsProcessor
type AnalyticsStore interface {
	DashboardStats(ctx context.Context, companyID *uuid.UUID) (store.DashboardStats, error)
	PlatformStats(ctx context.Context) (store.PlatformStats, error)
	GetCampaignByID(ctx context.Context, id uuid.UUID) (store.Campaign, error)
	ListCompanies(ctx context.Context) ([]store.Company, error)
	ListUsersWithCompany(ctx context.Context) ([]store.UserWithCompany, error)
	ListCampaignsForExport(ctx context.Context) ([]store.Campaign, error)
	ListCollectedDataForExport(ctx context.Context, companyID *uuid.UUID) ([]store.CollectedDataWithCampaign, error)
}

var ErrCampaignNotFound = errors.New("campaign not found")

type AnalyticsProcessor struct {
	store  AnalyticsStore
	logger *observability.Logger
}

func New(store AnalyticsStore, logger *observability.Logger) AnalyticsProcessor {
	return AnalyticsProcessor{store: store, logger: logger}
}

// Rates are percentages of the funnel base, rounded to two decimals
type Rates struct {
	OpenRate       float64 `json:"open_rate"`
	ClickRate      float64 `json:"click_rate"`
	SubmissionRate float64 `json:"submission_rate"`
}

type FunnelStep struct {
	Name       string  `json:"name"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type DashboardResponse struct {
	store.DashboardStats
	Rates  Rates        `json:"rates"`
	Funnel []FunnelStep `json:"funnel"`
}

type CampaignFunnelResponse struct {
	CampaignID uuid.UUID    `json:"campaign_id"`
	Status     string       `json:"status"`
	Rates      Rates        `json:"rates"`
	Funnel     []FunnelStep `json:"funnel"`
}

// CSVExport is a header plus rows ready to be written as a download
type CSVExport struct {
	Header []string
	Rows   [][]string
}

// Dashboard aggregates the actor's company. Superadmins see the platform, or one company
// when companyID is given.
func (p *AnalyticsProcessor) Dashboard(ctx context.Context, actor authz.Actor, companyID *uuid.UUID) (DashboardResponse, error) {
	scope := authz.ScopeCompanyID(actor, companyID)

	stats, err := p.store.DashboardStats(ctx, scope)
	if err != nil {
		return DashboardResponse{}, fmt.Errorf("failed to get dashboard stats: %w", err)
	}

	counts := funnelCounts{
		recipients: stats.TotalRecipients,
		sent:       stats.SentCount,
		opened:     stats.OpenedCount,
		clicked:    stats.ClickedCount,
		submitted:  stats.SubmittedDataCount,
	}
	return DashboardResponse{DashboardStats: stats, Rates: counts.rates(), Funnel: counts.steps()}, nil
}

// CampaignFunnel reports one campaign's funnel from its aggregate counters
func (p *AnalyticsProcessor) CampaignFunnel(ctx context.Context, actor authz.Actor, campaignID uuid.UUID) (CampaignFunnelResponse, error) {
	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return CampaignFunnelResponse{}, ErrCampaignNotFound
		}
		return CampaignFunnelResponse{}, fmt.Errorf("failed to get campaign: %w", err)
	}
	if err := authz.Enforce(actor, authz.Owned(campaign.CompanyID), authz.Read, ErrCampaignNotFound); err != nil {
		return CampaignFunnelResponse{}, err
	}

	counts := funnelCounts{
		recipients: campaign.TotalRecipients,
		sent:       campaign.SentCount,
		opened:     campaign.OpenedCount,
		clicked:    campaign.ClickedCount,
		submitted:  campaign.SubmittedDataCount,
	}
	return CampaignFunnelResponse{
		CampaignID: campaign.ID,
		Status:     campaign.Status,
		Rates:      counts.rates(),
		Funnel:     counts.steps(),
	}, nil
}

func (p *AnalyticsProcessor) PlatformStats(ctx context.Context) (store.PlatformStats, error) {
	stats, err := p.store.PlatformStats(ctx)
	if err != nil {
		return store.PlatformStats{}, fmt.Errorf("failed to get platform stats: %w", err)
	}
	return stats, nil
}

func (p *AnalyticsProcessor) ListUsers(ctx context.Context) ([]store.UserWithCompany, error) {
	users, err := p.store.ListUsersWithCompany(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (p *AnalyticsProcessor) ExportCompanies(ctx context.Context) (CSVExport, error) {
	companies, err := p.store.ListCompanies(ctx)
	if err != nil {
		return CSVExport{}, fmt.Errorf("failed to list companies: %w", err)
	}

	out := CSVExport{Header: []string{
		"id", "name", "domain", "contactEmail", "monthlyEmailLimit", "dailyEmailLimit", "isActive", "createdAt",
	}}
	for _, c := range companies {
		out.Rows = append(out.Rows, []string{
			c.ID.String(),
			c.Name,
			deref(c.Domain),
			deref(c.ContactEmail),
			strconv.Itoa(c.MonthlyEmailLimit),
			strconv.Itoa(c.DailyEmailLimit),
			strconv.FormatBool(c.IsActive),
			formatTime(&c.CreatedAt),
		})
	}
	p.logExport(ctx, "companies", len(out.Rows))
	return out, nil
}

func (p *AnalyticsProcessor) ExportUsers(ctx context.Context) (CSVExport, error) {
	users, err := p.store.ListUsersWithCompany(ctx)
	if err != nil {
		return CSVExport{}, fmt.Errorf("failed to list users: %w", err)
	}

	out := CSVExport{Header: []string{
		"id", "email", "firstName", "lastName", "role", "company", "isActive", "lastLoginAt", "createdAt",
	}}
	for _, u := range users {
		out.Rows = append(out.Rows, []string{
			u.ID.String(),
			u.Email,
			deref(u.FirstName),
			deref(u.LastName),
			u.Role,
			deref(u.CompanyName),
			strconv.FormatBool(u.IsActive),
			formatTime(u.LastLoginAt),
			formatTime(&u.CreatedAt),
		})
	}
	p.logExport(ctx, "users", len(out.Rows))
	return out, nil
}

func (p *AnalyticsProcessor) ExportCampaigns(ctx context.Context) (CSVExport, error) {
	campaigns, err := p.store.ListCampaignsForExport(ctx)
	if err != nil {
		return CSVExport{}, fmt.Errorf("failed to list campaigns: %w", err)
	}

	out := CSVExport{Header: []string{
		"id", "companyId", "name", "subject", "status", "totalRecipients", "sentCount", "openedCount",
		"clickedCount", "submittedDataCount", "launchedAt", "createdAt",
	}}
	for _, c := range campaigns {
		out.Rows = append(out.Rows, []string{
			c.ID.String(),
			c.CompanyID.String(),
			c.Name,
			c.Subject,
			c.Status,
			strconv.Itoa(c.TotalRecipients),
			strconv.Itoa(c.SentCount),
			strconv.Itoa(c.OpenedCount),
			strconv.Itoa(c.ClickedCount),
			strconv.Itoa(c.SubmittedDataCount),
			formatTime(c.LaunchedAt),
			formatTime(&c.CreatedAt),
		})
	}
	p.logExport(ctx, "campaigns", len(out.Rows))
	return out, nil
}

// ExportCollectedData writes every submission. Field payloads are embedded as JSON.
func (p *AnalyticsProcessor) ExportCollectedData(ctx context.Context, companyID *uuid.UUID) (CSVExport, error) {
	rows, err := p.store.ListCollectedDataForExport(ctx, companyID)
	if err != nil {
		return CSVExport{}, fmt.Errorf("failed to list collected data: %w", err)
	}

	out := CSVExport{Header: []string{
		"id", "companyId", "campaign", "recipientEmail", "dataType", "status", "fields", "ipAddress",
		"userAgent", "submittedAt", "flagReason",
	}}
	for _, d := range rows {
		fields, err := json.Marshal(d.Fields)
		if err != nil {
			return CSVExport{}, fmt.Errorf("failed to encode collected data fields: %w", err)
		}
		out.Rows = append(out.Rows, []string{
			d.ID.String(),
			d.CompanyID.String(),
			d.CampaignName,
			deref(d.RecipientEmail),
			d.DataType,
			d.Status,
			string(fields),
			deref(d.IPAddress),
			deref(d.UserAgent),
			formatTime(&d.SubmittedAt),
			deref(d.FlagReason),
		})
	}
	p.logExport(ctx, "collected_data", len(out.Rows))
	return out, nil
}

func (p *AnalyticsProcessor) logExport(ctx context.Context, kind string, rows int) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "export", Value: kind},
		observability.Field{Key: "rows", Value: rows},
	)
	p.logger.Info(ctx, "export generated")
}

type funnelCounts struct {
	recipients int
	sent       int
	opened     int
	clicked    int
	submitted  int
}

// base is the sent count, or the recipient count when no delivery has been recorded
func (f funnelCounts) base() int {
	if f.sent > 0 {
		return f.sent
	}
	return f.recipients
}

func (f funnelCounts) rates() Rates {
	base := f.base()
	return Rates{
		OpenRate:       percentage(f.opened, base),
		ClickRate:      percentage(f.clicked, base),
		SubmissionRate: percentage(f.submitted, base),
	}
}

func (f funnelCounts) steps() []FunnelStep {
	base := f.base()
	return []FunnelStep{
		{Name: "recipients", Count: f.recipients, Percentage: percentage(f.recipients, f.recipients)},
		{Name: "sent", Count: f.sent, Percentage: percentage(f.sent, f.recipients)},
		{Name: "opened", Count: f.opened, Percentage: percentage(f.opened, base)},
		{Name: "clicked", Count: f.clicked, Percentage: percentage(f.clicked, base)},
		{Name: "submitted_data", Count: f.submitted, Percentage: percentage(f.submitted, base)},
	}
}

func percentage(part, whole int) float64 {
	if whole <= 0 {
		return 0
	}
	return math.Round(float64(part)/float64(whole)*10000) / 100
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
