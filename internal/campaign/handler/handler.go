package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"
	"time"

	"phishsim-server/internal/apierrors"
	"phishsim-server/internal/authz"
	"phishsim-server/internal/campaign/processor"
	"phishsim-server/internal/observability"
	"phishsim-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.CampaignProcessor
	logger    *observability.Logger
}

func New(processor processor.CampaignProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// CreateCampaignRequest represents the HTTP request for creating a campaign
type CreateCampaignRequest struct {
	CompanyID      *uuid.UUID `json:"company_id,omitempty"`
	Name           string     `json:"name" binding:"required,min=1,max=255"`
	Subject        string     `json:"subject" binding:"max=500"`
	TemplateID     *uuid.UUID `json:"template_id,omitempty"`
	EmailServiceID *uuid.UUID `json:"email_service_id,omitempty"`
	LandingPageID  *uuid.UUID `json:"landing_page_id,omitempty"`
	ContactGroupID *uuid.UUID `json:"contact_group_id,omitempty"`
	FromEmail      *string    `json:"from_email,omitempty" binding:"omitempty,email"`
	FromName       *string    `json:"from_name,omitempty" binding:"omitempty,max=255"`
	ReplyTo        *string    `json:"reply_to,omitempty" binding:"omitempty,email"`
	HTMLContent    *string    `json:"html_content,omitempty"`
	TextContent    *string    `json:"text_content,omitempty"`
	ScheduledAt    *time.Time `json:"scheduled_at,omitempty"`
}

// UpdateCampaignRequest represents the HTTP request for patching a campaign.
// A status, when present, must be reachable from the current status.
type UpdateCampaignRequest struct {
	Name           *string    `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Subject        *string    `json:"subject,omitempty" binding:"omitempty,min=1,max=500"`
	TemplateID     *uuid.UUID `json:"template_id,omitempty"`
	EmailServiceID *uuid.UUID `json:"email_service_id,omitempty"`
	LandingPageID  *uuid.UUID `json:"landing_page_id,omitempty"`
	ContactGroupID *uuid.UUID `json:"contact_group_id,omitempty"`
	FromEmail      *string    `json:"from_email,omitempty" binding:"omitempty,email"`
	FromName       *string    `json:"from_name,omitempty" binding:"omitempty,max=255"`
	ReplyTo        *string    `json:"reply_to,omitempty" binding:"omitempty,email"`
	HTMLContent    *string    `json:"html_content,omitempty"`
	TextContent    *string    `json:"text_content,omitempty"`
	ScheduledAt    *time.Time `json:"scheduled_at,omitempty"`
	Status         *string    `json:"status,omitempty" binding:"omitempty,oneof=draft scheduled sending sent paused cancelled"`

	// Clear names references to unlink
	Clear []string `json:"clear,omitempty" binding:"omitempty,dive,oneof=template_id email_service_id landing_page_id contact_group_id"`
}

type TransitionRequest struct {
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
}

// HandleCreateCampaign creates a new draft campaign
func (h *Handler) HandleCreateCampaign(c *gin.Context) {
	ctx := c.Request.Context()
	actor, ok := authz.MustActor(c)
	if !ok {
		return
	}

	var req CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	params := store.CreateCampaignParams{
		Name:           req.Name,
		Subject:        req.Subject,
		TemplateID:     req.TemplateID,
		EmailServiceID: req.EmailServiceID,
		LandingPageID:  req.LandingPageID,
		ContactGroupID: req.ContactGroupID,
		FromEmail:      req.FromEmail,
		FromName:       req.FromName,
		ReplyTo:        req.ReplyTo,
		HTMLContent:    req.HTMLContent,
		TextContent:    req.TextContent,
		ScheduledAt:    req.ScheduledAt,
	}
	if req.CompanyID != nil {
		params.CompanyID = *req.CompanyID
	}

	campaign, err := h.processor.CreateCampaign(ctx, actor, params)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, campaign)
}

// HandleListCampaigns lists campaigns with optional status filter and pagination
func (h *Handler) HandleListCampaigns(c *gin.Context) {
	ctx := c.Request.Context()
	actor, ok := authz.MustActor(c)
	if !ok {
		return
	}

	filter := processor.ListCampaignsFilter{
		Page:  queryInt(c, "page", 1),
		Limit: queryInt(c, "limit", 20),
	}
	if raw := c.Query("company_id"); raw != "" {
		companyID, err := uuid.Parse(raw)
		if err != nil {
			apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Invalid company_id")
			return
		}
		filter.CompanyID = &companyID
	}
	if status := c.Query("status"); status != "" {
		filter.Status = &status
	}

	page, err := h.processor.ListCampaigns(ctx, actor, filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	totalPages := (page.Total + page.Limit - 1) / page.Limit
	c.JSON(http.StatusOK, gin.H{
		"campaigns": page.Campaigns,
		"pagination": gin.H{
			"page":        page.Page,
			"limit":       page.Limit,
			"total":       page.Total,
			"total_pages": totalPages,
		},
	})
}

func (h *Handler) HandleGetCampaign(c *gin.Context) {
	ctx := c.Request.Context()
	actor, ok := authz.MustActor(c)
	if !ok {
		return
	}
	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}

	campaign, err := h.processor.GetCampaign(ctx, actor, campaignID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

func (h *Handler) HandleUpdateCampaign(c *gin.Context) {
	ctx := c.Request.Context()
	actor, ok := authz.MustActor(c)
	if !ok {
		return
	}
	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}

	var req UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	campaign, err := h.processor.UpdateCampaign(ctx, actor, campaignID, store.UpdateCampaignParams{
		Name:           req.Name,
		Subject:        req.Subject,
		TemplateID:     req.TemplateID,
		EmailServiceID: req.EmailServiceID,
		LandingPageID:  req.LandingPageID,
		ContactGroupID: req.ContactGroupID,
		FromEmail:      req.FromEmail,
		FromName:       req.FromName,
		ReplyTo:        req.ReplyTo,
		HTMLContent:    req.HTMLContent,
		TextContent:    req.TextContent,
		ScheduledAt:    req.ScheduledAt,

		ClearTemplate:     slices.Contains(req.Clear, "template_id"),
		ClearEmailService: slices.Contains(req.Clear, "email_service_id"),
		ClearLandingPage:  slices.Contains(req.Clear, "landing_page_id"),
		ClearContactGroup: slices.Contains(req.Clear, "contact_group_id"),
	}, req.Status)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

func (h *Handler) HandleDeleteCampaign(c *gin.Context) {
	ctx := c.Request.Context()
	actor, ok := authz.MustActor(c)
	if !ok {
		return
	}
	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}

	if err := h.processor.DeleteCampaign(ctx, actor, campaignID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// HandleTransition returns the handler for POST /api/campaigns/:id/<action>
func (h *Handler) HandleTransition(action processor.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		actor, ok := authz.MustActor(c)
		if !ok {
			return
		}
		campaignID, ok := h.getCampaignID(c)
		if !ok {
			return
		}

		var req TransitionRequest
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			apierrors.ValidationError(c, err)
			return
		}

		ctx = observability.WithFields(ctx,
			observability.Field{Key: "campaign_id", Value: campaignID},
			observability.Field{Key: "action", Value: string(action)},
		)

		campaign, err := h.processor.Transition(ctx, actor, campaignID, action, req.ScheduledAt)
		if err != nil {
			h.handleError(c, err)
			return
		}

		c.JSON(http.StatusOK, campaign)
	}
}

// HandleListEvents returns the campaign's email event audit trail
func (h *Handler) HandleListEvents(c *gin.Context) {
	ctx := c.Request.Context()
	actor, ok := authz.MustActor(c)
	if !ok {
		return
	}
	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}

	events, err := h.processor.ListEvents(ctx, actor, campaignID, queryInt(c, "limit", 100), queryInt(c, "offset", 0))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}

func (h *Handler) getCampaignID(c *gin.Context) (uuid.UUID, bool) {
	campaignID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Invalid campaign ID format")
		return uuid.UUID{}, false
	}
	return campaignID, true
}

func queryInt(c *gin.Context, key string, fallback int) int {
	value := fallback
	if raw := strings.TrimSpace(c.Query(key)); raw != "" {
		if _, err := fmt.Sscanf(raw, "%d", &value); err != nil {
			return fallback
		}
	}
	return value
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrCampaignNotFound):
		apierrors.NotFound(c, "Campaign not found")
	case errors.Is(err, processor.ErrTemplateNotFound):
		apierrors.NotFound(c, "Template not found")
	case errors.Is(err, processor.ErrLandingPageNotFound):
		apierrors.NotFound(c, "Landing page not found")
	case errors.Is(err, processor.ErrEmailServiceNotFound):
		apierrors.NotFound(c, "Email service not found")
	case errors.Is(err, processor.ErrContactGroupNotFound):
		apierrors.NotFound(c, "Contact group not found")
	case errors.Is(err, processor.ErrInvalidTransition):
		apierrors.BadRequest(c, "INVALID_TRANSITION", "Campaign cannot make this status change")
	case errors.Is(err, processor.ErrInvalidCampaignStatus):
		apierrors.BadRequest(c, "INVALID_STATUS", "Invalid campaign status")
	case errors.Is(err, processor.ErrScheduledAtRequired):
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "scheduled_at is required")
	case errors.Is(err, processor.ErrScheduledAtInPast):
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "scheduled_at must be in the future")
	case errors.Is(err, processor.ErrSubjectRequired):
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "subject is required when no template is set")
	case errors.Is(err, processor.ErrCompanyRequired):
		apierrors.BadRequest(c, "COMPANY_REQUIRED", "company_id is required")
	case errors.Is(err, authz.ErrInsufficientRole):
		apierrors.InsufficientPermissions(c)
	default:
		apierrors.InternalError(c, err)
	}
}
