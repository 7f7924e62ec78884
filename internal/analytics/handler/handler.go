package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"phishsim-server/internal/analytics/processor"
	"phishsim-server/internal/apierrors"
	"phishsim-server/internal/authz"
	"phishsim-server/internal/csvexport"
	"phishsim-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.AnalyticsProcessor
	logger    *observability.Logger
}

func New(processor processor.AnalyticsProcessor, logger *observability.Logger) Handler {
	return Handler{processor: processor, logger: logger}
}

// HandleDashboard handles GET /api/stats
func (h *Handler) HandleDashboard(c *gin.Context) {
	ctx := c.Request.Context()
	actor, ok := authz.MustActor(c)
	if !ok {
		return
	}
	companyID, ok := optionalUUIDQuery(c, "company_id")
	if !ok {
		return
	}

	stats, err := h.processor.Dashboard(ctx, actor, companyID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// HandleCampaignFunnel handles GET /api/stats/campaigns/:id
func (h *Handler) HandleCampaignFunnel(c *gin.Context) {
	ctx := c.Request.Context()
	actor, ok := authz.MustActor(c)
	if !ok {
		return
	}
	campaignID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Invalid campaign ID format")
		return
	}

	funnel, err := h.processor.CampaignFunnel(ctx, actor, campaignID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, funnel)
}

func (h *Handler) HandlePlatformStats(c *gin.Context) {
	stats, err := h.processor.PlatformStats(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) HandleListUsers(c *gin.Context) {
	users, err := h.processor.ListUsers(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (h *Handler) HandleExportCompanies(c *gin.Context) {
	h.export(c, "companies", h.processor.ExportCompanies)
}

func (h *Handler) HandleExportUsers(c *gin.Context) {
	h.export(c, "users", h.processor.ExportUsers)
}

func (h *Handler) HandleExportCampaigns(c *gin.Context) {
	h.export(c, "campaigns", h.processor.ExportCampaigns)
}

// HandleExportCollectedData accepts an optional company_id filter
func (h *Handler) HandleExportCollectedData(c *gin.Context) {
	companyID, ok := optionalUUIDQuery(c, "company_id")
	if !ok {
		return
	}
	h.export(c, "collected-data", func(ctx context.Context) (processor.CSVExport, error) {
		return h.processor.ExportCollectedData(ctx, companyID)
	})
}

func (h *Handler) export(c *gin.Context, name string, build func(context.Context) (processor.CSVExport, error)) {
	ctx := c.Request.Context()

	export, err := build(ctx)
	if err != nil {
		h.handleError(c, err)
		return
	}

	filename := fmt.Sprintf("%s-%s.csv", name, time.Now().UTC().Format("2006-01-02"))
	if err := csvexport.Send(c, filename, export.Header, export.Rows); err != nil {
		h.logger.Error(ctx, "failed to write csv export", err)
	}
}

func optionalUUIDQuery(c *gin.Context, key string) (*uuid.UUID, bool) {
	raw := c.Query(key)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Invalid "+key)
		return nil, false
	}
	return &id, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrCampaignNotFound):
		apierrors.NotFound(c, "Campaign not found")
	default:
		apierrors.InternalError(c, err)
	}
}
