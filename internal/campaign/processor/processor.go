package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"phishsim-server/internal/authz"
	"phishsim-server/internal/observability"
	"phishsim-server/internal/store"

	"github.com/google/uuid"
)

// CampaignStore defines the database operations required by CampaignProcessor
type CampaignStore interface {
	CreateCampaign(ctx context.Context, params store.CreateCampaignParams) (store.Campaign, error)
	GetCampaignByID(ctx context.Context, id uuid.UUID) (store.Campaign, error)
	ListCampaigns(ctx context.Context, params store.ListCampaignsParams) ([]store.Campaign, int, error)
	UpdateCampaign(ctx context.Context, id uuid.UUID, params store.UpdateCampaignParams) (store.Campaign, error)
	TransitionCampaign(ctx context.Context, id uuid.UUID, transition store.CampaignTransition) (store.Campaign, error)
	DeleteCampaign(ctx context.Context, id uuid.UUID) error
	ListEmailEvents(ctx context.Context, campaignID uuid.UUID, limit, offset int) ([]store.EmailEvent, error)
	GetTemplateByID(ctx context.Context, id uuid.UUID) (store.Template, error)
	IncrementTemplateUsage(ctx context.Context, id uuid.UUID) error
	GetLandingPageByID(ctx context.Context, id uuid.UUID) (store.LandingPage, error)
	GetEmailServiceByID(ctx context.Context, id uuid.UUID) (store.EmailService, error)
	GetContactGroupByID(ctx context.Context, id uuid.UUID) (store.ContactGroup, error)
}

var (
	ErrCampaignNotFound      = errors.New("campaign not found")
	ErrCompanyRequired       = errors.New("company is required")
	ErrSubjectRequired       = errors.New("subject is required when no template is set")
	ErrTemplateNotFound      = errors.New("template not found")
	ErrLandingPageNotFound   = errors.New("landing page not found")
	ErrEmailServiceNotFound  = errors.New("email service not found")
	ErrContactGroupNotFound  = errors.New("contact group not found")
	ErrInvalidTransition     = errors.New("campaign cannot make this status change")
	ErrInvalidCampaignStatus = errors.New("invalid campaign status")
	ErrScheduledAtRequired   = errors.New("scheduled_at is required")
	ErrScheduledAtInPast     = errors.New("scheduled_at must be in the future")
)

type CampaignProcessor struct {
	store  CampaignStore
	now    func() time.Time
	logger *observability.Logger
}

func New(store CampaignStore, logger *observability.Logger) CampaignProcessor {
	return CampaignProcessor{store: store, now: time.Now, logger: logger}
}

// References are the optional rows a campaign points at
type References struct {
	TemplateID     *uuid.UUID
	LandingPageID  *uuid.UUID
	EmailServiceID *uuid.UUID
	ContactGroupID *uuid.UUID
}

type ListCampaignsFilter struct {
	CompanyID *uuid.UUID
	Status    *string
	Page      int
	Limit     int
}

type CampaignPage struct {
	Campaigns []store.Campaign
	Total     int
	Page      int
	Limit     int
}

// CreateCampaign stores a draft campaign for the actor's company. When a template is set, its
// subject and content fill whatever the request left empty, and the template's usage count grows.
func (p *CampaignProcessor) CreateCampaign(ctx context.Context, actor authz.Actor, params store.CreateCampaignParams) (store.Campaign, error) {
	if !actor.IsSuperadmin() {
		if actor.CompanyID == nil {
			return store.Campaign{}, ErrCompanyRequired
		}
		params.CompanyID = *actor.CompanyID
	}
	if params.CompanyID == uuid.Nil {
		return store.Campaign{}, ErrCompanyRequired
	}

	template, err := p.checkReferences(ctx, params.CompanyID, References{
		TemplateID:     params.TemplateID,
		LandingPageID:  params.LandingPageID,
		EmailServiceID: params.EmailServiceID,
		ContactGroupID: params.ContactGroupID,
	})
	if err != nil {
		return store.Campaign{}, err
	}
	if template != nil {
		if params.Subject == "" {
			params.Subject = template.Subject
		}
		if params.HTMLContent == nil {
			params.HTMLContent = &template.HTMLContent
		}
		if params.TextContent == nil {
			params.TextContent = template.TextContent
		}
	}
	if params.Subject == "" {
		return store.Campaign{}, ErrSubjectRequired
	}
	params.CreatedBy = &actor.UserID

	campaign, err := p.store.CreateCampaign(ctx, params)
	if err != nil {
		return store.Campaign{}, fmt.Errorf("failed to create campaign: %w", err)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaign.ID},
		observability.Field{Key: "company_id", Value: campaign.CompanyID},
	)
	if template != nil {
		if err := p.store.IncrementTemplateUsage(ctx, template.ID); err != nil {
			p.logger.Error(ctx, "failed to increment template usage", err)
		}
	}
	p.logger.Info(ctx, "campaign created")
	return campaign, nil
}

func (p *CampaignProcessor) GetCampaign(ctx context.Context, actor authz.Actor, id uuid.UUID) (store.Campaign, error) {
	return p.get(ctx, actor, id)
}

func (p *CampaignProcessor) ListCampaigns(ctx context.Context, actor authz.Actor, filter ListCampaignsFilter) (CampaignPage, error) {
	if filter.Status != nil && !isValidCampaignStatus(*filter.Status) {
		return CampaignPage{}, ErrInvalidCampaignStatus
	}
	page, limit := filter.Page, filter.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	campaigns, total, err := p.store.ListCampaigns(ctx, store.ListCampaignsParams{
		CompanyID: authz.ScopeCompanyID(actor, filter.CompanyID),
		Status:    filter.Status,
		Limit:     limit,
		Offset:    (page - 1) * limit,
	})
	if err != nil {
		return CampaignPage{}, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return CampaignPage{Campaigns: campaigns, Total: total, Page: page, Limit: limit}, nil
}

// UpdateCampaign patches content fields and, when status is set, applies the matching
// lifecycle transition. The transition is checked before anything is written and the store
// applies both together, so a rejected status leaves the content untouched.
func (p *CampaignProcessor) UpdateCampaign(ctx context.Context, actor authz.Actor, id uuid.UUID, params store.UpdateCampaignParams, status *string) (store.Campaign, error) {
	current, err := p.get(ctx, actor, id)
	if err != nil {
		return store.Campaign{}, err
	}

	params.Transition = nil
	if status != nil && *status != current.Status {
		if !isValidCampaignStatus(*status) {
			return store.Campaign{}, ErrInvalidCampaignStatus
		}
		action, ok := actionFor(current.Status, *status)
		if !ok {
			return store.Campaign{}, ErrInvalidTransition
		}
		scheduledAt := params.ScheduledAt
		if scheduledAt == nil {
			scheduledAt = current.ScheduledAt
		}
		to, err := p.checkTransition(current.Status, action, scheduledAt)
		if err != nil {
			return store.Campaign{}, err
		}
		params.Transition = &store.CampaignTransition{From: current.Status, To: to, ScheduledAt: scheduledAt}
	}

	if _, err := p.checkReferences(ctx, current.CompanyID, References{
		TemplateID:     params.TemplateID,
		LandingPageID:  params.LandingPageID,
		EmailServiceID: params.EmailServiceID,
		ContactGroupID: params.ContactGroupID,
	}); err != nil {
		return store.Campaign{}, err
	}

	campaign, err := p.store.UpdateCampaign(ctx, id, params)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return store.Campaign{}, ErrCampaignNotFound
		case errors.Is(err, store.ErrConflict):
			return store.Campaign{}, ErrInvalidTransition
		}
		return store.Campaign{}, fmt.Errorf("failed to update campaign: %w", err)
	}

	if params.Transition != nil {
		p.logStatusChange(ctx, campaign.ID, current.Status, campaign.Status)
	}
	return campaign, nil
}

// Transition applies a lifecycle action. Scheduling requires a future scheduledAt.
func (p *CampaignProcessor) Transition(ctx context.Context, actor authz.Actor, id uuid.UUID, action Action, scheduledAt *time.Time) (store.Campaign, error) {
	campaign, err := p.get(ctx, actor, id)
	if err != nil {
		return store.Campaign{}, err
	}
	return p.transition(ctx, campaign, action, scheduledAt)
}

func (p *CampaignProcessor) DeleteCampaign(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	if !actor.HasRole(store.UserRoleAdmin, store.UserRoleSuperadmin) {
		return authz.ErrInsufficientRole
	}
	if _, err := p.get(ctx, actor, id); err != nil {
		return err
	}

	if err := p.store.DeleteCampaign(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCampaignNotFound
		}
		return fmt.Errorf("failed to delete campaign: %w", err)
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: id})
	p.logger.Info(ctx, "campaign deleted")
	return nil
}

// ListEvents returns a page of the campaign's email event audit trail, newest first
func (p *CampaignProcessor) ListEvents(ctx context.Context, actor authz.Actor, id uuid.UUID, limit, offset int) ([]store.EmailEvent, error) {
	if _, err := p.get(ctx, actor, id); err != nil {
		return nil, err
	}
	if limit < 1 || limit > 500 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	events, err := p.store.ListEmailEvents(ctx, id, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list email events: %w", err)
	}
	return events, nil
}

func (p *CampaignProcessor) transition(ctx context.Context, campaign store.Campaign, action Action, scheduledAt *time.Time) (store.Campaign, error) {
	to, err := p.checkTransition(campaign.Status, action, scheduledAt)
	if err != nil {
		return store.Campaign{}, err
	}

	updated, err := p.store.TransitionCampaign(ctx, campaign.ID, store.CampaignTransition{
		From:        campaign.Status,
		To:          to,
		ScheduledAt: scheduledAt,
	})
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return store.Campaign{}, ErrInvalidTransition
		}
		return store.Campaign{}, fmt.Errorf("failed to %s campaign: %w", action, err)
	}

	p.logStatusChange(ctx, campaign.ID, campaign.Status, to)
	return updated, nil
}

// checkTransition resolves the target status of action and its preconditions
func (p *CampaignProcessor) checkTransition(from string, action Action, scheduledAt *time.Time) (string, error) {
	to, ok := NextStatus(from, action)
	if !ok {
		return "", ErrInvalidTransition
	}
	if action == ActionSchedule {
		if scheduledAt == nil {
			return "", ErrScheduledAtRequired
		}
		if !scheduledAt.After(p.now()) {
			return "", ErrScheduledAtInPast
		}
	}
	return to, nil
}

func (p *CampaignProcessor) logStatusChange(ctx context.Context, id uuid.UUID, from, to string) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: id},
		observability.Field{Key: "from_status", Value: from},
		observability.Field{Key: "to_status", Value: to},
	)
	p.logger.Info(ctx, "campaign status changed")
}

func (p *CampaignProcessor) get(ctx context.Context, actor authz.Actor, id uuid.UUID) (store.Campaign, error) {
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

// checkReferences verifies every set reference is visible to companyID. It returns the
// template when one is referenced.
func (p *CampaignProcessor) checkReferences(ctx context.Context, companyID uuid.UUID, refs References) (*store.Template, error) {
	var template *store.Template
	if refs.TemplateID != nil {
		t, err := p.store.GetTemplateByID(ctx, *refs.TemplateID)
		if err != nil {
			return nil, lookupError(err, ErrTemplateNotFound, "template")
		}
		if !visible(companyID, authz.Resource{CompanyID: t.CompanyID, Shared: t.IsGlobal}) {
			return nil, ErrTemplateNotFound
		}
		template = &t
	}
	if refs.LandingPageID != nil {
		lp, err := p.store.GetLandingPageByID(ctx, *refs.LandingPageID)
		if err != nil {
			return nil, lookupError(err, ErrLandingPageNotFound, "landing page")
		}
		if !visible(companyID, authz.Resource{CompanyID: lp.CompanyID, Shared: lp.IsGlobal}) {
			return nil, ErrLandingPageNotFound
		}
	}
	if refs.EmailServiceID != nil {
		es, err := p.store.GetEmailServiceByID(ctx, *refs.EmailServiceID)
		if err != nil {
			return nil, lookupError(err, ErrEmailServiceNotFound, "email service")
		}
		if !visible(companyID, authz.Resource{CompanyID: es.CompanyID, Shared: es.IsPlatformDefault}) {
			return nil, ErrEmailServiceNotFound
		}
	}
	if refs.ContactGroupID != nil {
		group, err := p.store.GetContactGroupByID(ctx, *refs.ContactGroupID)
		if err != nil {
			return nil, lookupError(err, ErrContactGroupNotFound, "contact group")
		}
		if group.CompanyID != companyID {
			return nil, ErrContactGroupNotFound
		}
	}
	return template, nil
}

// visible reports whether a row may be referenced by a campaign of companyID
func visible(companyID uuid.UUID, r authz.Resource) bool {
	return r.Shared || (r.CompanyID != nil && *r.CompanyID == companyID)
}

func lookupError(err, notFound error, what string) error {
	if errors.Is(err, store.ErrNotFound) {
		return notFound
	}
	return fmt.Errorf("failed to get %s: %w", what, err)
}

func isValidCampaignStatus(status string) bool {
	switch status {
	case store.CampaignStatusDraft, store.CampaignStatusScheduled, store.CampaignStatusSending,
		store.CampaignStatusSent, store.CampaignStatusPaused, store.CampaignStatusCancelled:
		return true
	}
	return false
}
