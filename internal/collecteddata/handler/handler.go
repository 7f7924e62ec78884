package handler

import (
	"errors"
	"fmt"
	"net/http"

	"phishsim-server/internal/apierrors"
	"phishsim-server/internal/authz"
	"phishsim-server/internal/collecteddata/processor"
	"phishsim-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.CollectedDataProcessor
	logger    *observability.Logger
}

func New(processor processor.CollectedDataProcessor, logger *observability.Logger) Handler {
	return Handler{processor: processor, logger: logger}
}

type UpdateStatusRequest struct {
	Status     string  `json:"status" binding:"required,oneof=pending verified flagged"`
	FlagReason *string `json:"flag_reason" binding:"omitempty,max=1000"`
}

// HandleList handles GET /api/collected-data?campaign_id=&status=&company_id=&page=&limit=
func (h *Handler) HandleList(c *gin.Context) {
	ctx := c.Request.Context()
	actor, ok := authz.MustActor(c)
	if !ok {
		return
	}

	filter := processor.ListFilter{
		Page:  queryInt(c, "page", 1),
		Limit: queryInt(c, "limit", 50),
	}
	if filter.CompanyID, ok = optionalUUIDQuery(c, "company_id"); !ok {
		return
	}
	if filter.CampaignID, ok = optionalUUIDQuery(c, "campaign_id"); !ok {
		return
	}
	if status := c.Query("status"); status != "" {
		filter.Status = &status
	}

	page, err := h.processor.List(ctx, actor, filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	totalPages := (page.Total + page.Limit - 1) / page.Limit
	c.JSON(http.StatusOK, gin.H{
		"collected_data": page.Items,
		"pagination": gin.H{
			"page":        page.Page,
			"limit":       page.Limit,
			"total":       page.Total,
			"total_pages": totalPages,
		},
	})
}

func (h *Handler) HandleGet(c *gin.Context) {
	ctx := c.Request.Context()
	actor, ok := authz.MustActor(c)
	if !ok {
		return
	}
	id, ok := getID(c)
	if !ok {
		return
	}

	data, err := h.processor.Get(ctx, actor, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, data)
}

// HandleUpdateStatus handles PATCH /api/collected-data/:id/status
func (h *Handler) HandleUpdateStatus(c *gin.Context) {
	ctx := c.Request.Context()
	actor, ok := authz.MustActor(c)
	if !ok {
		return
	}
	id, ok := getID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	data, err := h.processor.UpdateStatus(ctx, actor, id, req.Status, req.FlagReason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, data)
}

func (h *Handler) HandleDelete(c *gin.Context) {
	ctx := c.Request.Context()
	actor, ok := authz.MustActor(c)
	if !ok {
		return
	}
	id, ok := getID(c)
	if !ok {
		return
	}

	if err := h.processor.Delete(ctx, actor, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func getID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Invalid collected data ID format")
		return uuid.UUID{}, false
	}
	return id, true
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

func queryInt(c *gin.Context, key string, fallback int) int {
	value := fallback
	if raw := c.Query(key); raw != "" {
		if _, err := fmt.Sscanf(raw, "%d", &value); err != nil {
			return fallback
		}
	}
	return value
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrCollectedDataNotFound):
		apierrors.NotFound(c, "Collected data not found")
	case errors.Is(err, processor.ErrInvalidStatus):
		apierrors.BadRequest(c, "INVALID_STATUS", "status must be one of pending, verified, flagged")
	case errors.Is(err, authz.ErrInsufficientRole):
		apierrors.InsufficientPermissions(c)
	default:
		apierrors.InternalError(c, err)
	}
}
