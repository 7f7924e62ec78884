package handler

import (
	"errors"
	"net/http"

	"phishsim-server/internal/apierrors"
	"phishsim-server/internal/authz"
	"phishsim-server/internal/observability"
	"phishsim-server/internal/store"
	"phishsim-server/internal/templates/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.TemplateProcessor
	logger    *observability.Logger
}

func New(processor processor.TemplateProcessor, logger *observability.Logger) Handler {
	return Handler{processor: processor, logger: logger}
}

type CreateTemplateRequest struct {
	CompanyID   *uuid.UUID `json:"company_id,omitempty"`
	Name        string     `json:"name" binding:"required,min=1,max=255"`
	Description *string    `json:"description,omitempty"`
	Category    *string    `json:"category,omitempty"`
	Subject     string     `json:"subject" binding:"required,min=1"`
	HTMLContent string     `json:"html_content" binding:"required"`
	TextContent *string    `json:"text_content,omitempty"`
	Variables   []string   `json:"variables,omitempty"`
	IsGlobal    bool       `json:"is_global"`
}

type UpdateTemplateRequest struct {
	Name        *string   `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Description *string   `json:"description,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Subject     *string   `json:"subject,omitempty" binding:"omitempty,min=1"`
	HTMLContent *string   `json:"html_content,omitempty"`
	TextContent *string   `json:"text_content,omitempty"`
	Variables   *[]string `json:"variables,omitempty"`
	IsGlobal    *bool     `json:"is_global,omitempty"`
}

func (h *Handler) HandleCreateTemplate(c *gin.Context) {
	ctx := c.Request.Context()
	actor, ok := authz.MustActor(c)
	if !ok {
		return
	}

	var req CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	template, err := h.processor.CreateTemplate(ctx, actor, store.CreateTemplateParams{
		CompanyID:   req.CompanyID,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Subject:     req.Subject,
		HTMLContent: req.HTMLContent,
		TextContent: req.TextContent,
		Variables:   req.Variables,
		IsGlobal:    req.IsGlobal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, template)
}

func (h *Handler) HandleListTemplates(c *gin.Context) {
	ctx := c.Request.Context()
	actor, ok := authz.MustActor(c)
	if !ok {
		return
	}

	companyID, ok := optionalUUIDQuery(c, "company_id")
	if !ok {
		return
	}

	templates, err := h.processor.ListTemplates(ctx, actor, companyID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"templates": templates})
}

func (h *Handler) HandleGetTemplate(c *gin.Context) {
	ctx := c.Request.Context()
	actor, ok := authz.MustActor(c)
	if !ok {
		return
	}
	templateID, ok := h.getTemplateID(c)
	if !ok {
		return
	}

	template, err := h.processor.GetTemplate(ctx, actor, templateID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, template)
}

func (h *Handler) HandleUpdateTemplate(c *gin.Context) {
	ctx := c.Request.Context()
	actor, ok := authz.MustActor(c)
	if !ok {
		return
	}
	templateID, ok := h.getTemplateID(c)
	if !ok {
		return
	}

	var req UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	template, err := h.processor.UpdateTemplate(ctx, actor, templateID, store.UpdateTemplateParams{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Subject:     req.Subject,
		HTMLContent: req.HTMLContent,
		TextContent: req.TextContent,
		Variables:   req.Variables,
		IsGlobal:    req.IsGlobal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, template)
}

func (h *Handler) HandleDeleteTemplate(c *gin.Context) {
	ctx := c.Request.Context()
	actor, ok := authz.MustActor(c)
	if !ok {
		return
	}
	templateID, ok := h.getTemplateID(c)
	if !ok {
		return
	}

	if err := h.processor.DeleteTemplate(ctx, actor, templateID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) getTemplateID(c *gin.Context) (uuid.UUID, bool) {
	templateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Invalid template ID format")
		return uuid.UUID{}, false
	}
	return templateID, true
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
	case errors.Is(err, processor.ErrTemplateNotFound):
		apierrors.NotFound(c, "Template not found")
	case errors.Is(err, processor.ErrCompanyRequired):
		apierrors.BadRequest(c, "COMPANY_REQUIRED", "company_id is required for non-global templates")
	case errors.Is(err, authz.ErrReadOnly):
		apierrors.Forbidden(c, apierrors.CodeForbidden, "Global templates can only be changed by a superadmin")
	case errors.Is(err, authz.ErrInsufficientRole):
		apierrors.InsufficientPermissions(c)
	default:
		apierrors.InternalError(c, err)
	}
}
