package handler

import (
	"errors"
	"net/http"

	"phishsim-server/internal/apierrors"
	"phishsim-server/internal/authz"
	"phishsim-server/internal/landingpages/processor"
	"phishsim-server/internal/observability"
	"phishsim-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.LandingPageProcessor
	logger    *observability.Logger
}

func New(processor processor.LandingPageProcessor, logger *observability.Logger) Handler {
	return Handler{processor: processor, logger: logger}
}

type CreateLandingPageRequest struct {
	CompanyID          *uuid.UUID `json:"company_id,omitempty"`
	Name               string     `json:"name" binding:"required,min=1,max=255"`
	Description        *string    `json:"description,omitempty"`
	HTMLContent        string     `json:"html_content" binding:"required"`
	CaptureCredentials bool       `json:"capture_credentials"`
	CapturePasswords   bool       `json:"capture_passwords"`
	RedirectURL        *string    `json:"redirect_url,omitempty"`
	IsGlobal           bool       `json:"is_global"`
}

type UpdateLandingPageRequest struct {
	Name               *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Description        *string `json:"description,omitempty"`
	HTMLContent        *string `json:"html_content,omitempty"`
	CaptureCredentials *bool   `json:"capture_credentials,omitempty"`
	CapturePasswords   *bool   `json:"capture_passwords,omitempty"`
	RedirectURL        *string `json:"redirect_url,omitempty"`
	IsGlobal           *bool   `json:"is_global,omitempty"`
}

func (h *Handler) HandleCreateLandingPage(c *gin.Context) {
	ctx := c.Request.Context()
	actor, ok := authz.MustActor(c)
	if !ok {
		return
	}

	var req CreateLandingPageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	page, err := h.processor.CreateLandingPage(ctx, actor, store.CreateLandingPageParams{
		CompanyID:          req.CompanyID,
		Name:               req.Name,
		Description:        req.Description,
		HTMLContent:        req.HTMLContent,
		CaptureCredentials: req.CaptureCredentials,
		CapturePasswords:   req.CapturePasswords,
		RedirectURL:        req.RedirectURL,
		IsGlobal:           req.IsGlobal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, page)
}

func (h *Handler) HandleListLandingPages(c *gin.Context) {
	ctx := c.Request.Context()
	actor, ok := authz.MustActor(c)
	if !ok {
		return
	}

	var companyID *uuid.UUID
	if raw := c.Query("company_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Invalid company ID format")
			return
		}
		companyID = &id
	}

	pages, err := h.processor.ListLandingPages(ctx, actor, companyID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"landing_pages": pages})
}

func (h *Handler) HandleGetLandingPage(c *gin.Context) {
	ctx := c.Request.Context()
	actor, ok := authz.MustActor(c)
	if !ok {
		return
	}
	pageID, ok := h.getLandingPageID(c)
	if !ok {
		return
	}

	page, err := h.processor.GetLandingPage(ctx, actor, pageID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *Handler) HandleUpdateLandingPage(c *gin.Context) {
	ctx := c.Request.Context()
	actor, ok := authz.MustActor(c)
	if !ok {
		return
	}
	pageID, ok := h.getLandingPageID(c)
	if !ok {
		return
	}

	var req UpdateLandingPageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	page, err := h.processor.UpdateLandingPage(ctx, actor, pageID, store.UpdateLandingPageParams{
		Name:               req.Name,
		Description:        req.Description,
		HTMLContent:        req.HTMLContent,
		CaptureCredentials: req.CaptureCredentials,
		CapturePasswords:   req.CapturePasswords,
		RedirectURL:        req.RedirectURL,
		IsGlobal:           req.IsGlobal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *Handler) HandleDeleteLandingPage(c *gin.Context) {
	ctx := c.Request.Context()
	actor, ok := authz.MustActor(c)
	if !ok {
		return
	}
	pageID, ok := h.getLandingPageID(c)
	if !ok {
		return
	}

	if err := h.processor.DeleteLandingPage(ctx, actor, pageID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) getLandingPageID(c *gin.Context) (uuid.UUID, bool) {
	pageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Invalid landing page ID format")
		return uuid.UUID{}, false
	}
	return pageID, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrLandingPageNotFound):
		apierrors.NotFound(c, "Landing page not found")
	case errors.Is(err, processor.ErrCompanyRequired):
		apierrors.BadRequest(c, "COMPANY_REQUIRED", "company_id is required for non-global landing pages")
	case errors.Is(err, processor.ErrInvalidRedirectURL):
		apierrors.BadRequest(c, "INVALID_REDIRECT_URL", "redirect_url must be an absolute http or https URL")
	case errors.Is(err, authz.ErrReadOnly):
		apierrors.Forbidden(c, apierrors.CodeForbidden, "Global landing pages can only be changed by a superadmin")
	default:
		apierrors.InternalError(c, err)
	}
}
