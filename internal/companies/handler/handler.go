package handler

import (
	"errors"
	"net/http"

	"phishsim-server/internal/apierrors"
	"phishsim-server/internal/authz"
	"phishsim-server/internal/companies/processor"
	"phishsim-server/internal/observability"
	"phishsim-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.CompanyProcessor
	logger    *observability.Logger
}

func New(processor processor.CompanyProcessor, logger *observability.Logger) Handler {
	return Handler{processor: processor, logger: logger}
}

type CreateCompanyRequest struct {
	Name              string  `json:"name" binding:"required,min=1,max=255"`
	Domain            *string `json:"domain,omitempty"`
	ContactEmail      *string `json:"contact_email,omitempty" binding:"omitempty,email"`
	MonthlyEmailLimit *int    `json:"monthly_email_limit,omitempty" binding:"omitempty,gte=0"`
	DailyEmailLimit   *int    `json:"daily_email_limit,omitempty" binding:"omitempty,gte=0"`
}

type UpdateCompanyRequest struct {
	Name              *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Domain            *string `json:"domain,omitempty"`
	ContactEmail      *string `json:"contact_email,omitempty" binding:"omitempty,email"`
	MonthlyEmailLimit *int    `json:"monthly_email_limit,omitempty" binding:"omitempty,gte=0"`
	DailyEmailLimit   *int    `json:"daily_email_limit,omitempty" binding:"omitempty,gte=0"`
	IsActive          *bool   `json:"is_active,omitempty"`
}

func (h *Handler) HandleCreateCompany(c *gin.Context) {
	ctx := c.Request.Context()
	actor, ok := authz.MustActor(c)
	if !ok {
		return
	}

	var req CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	company, err := h.processor.CreateCompany(ctx, actor, store.CreateCompanyParams{
		Name:              req.Name,
		Domain:            req.Domain,
		ContactEmail:      req.ContactEmail,
		MonthlyEmailLimit: req.MonthlyEmailLimit,
		DailyEmailLimit:   req.DailyEmailLimit,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, company)
}

func (h *Handler) HandleListCompanies(c *gin.Context) {
	ctx := c.Request.Context()
	actor, ok := authz.MustActor(c)
	if !ok {
		return
	}

	companies, err := h.processor.ListCompanies(ctx, actor)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"companies": companies})
}

func (h *Handler) HandleGetCompany(c *gin.Context) {
	ctx := c.Request.Context()
	actor, ok := authz.MustActor(c)
	if !ok {
		return
	}
	companyID, ok := h.getCompanyID(c)
	if !ok {
		return
	}

	company, err := h.processor.GetCompany(ctx, actor, companyID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, company)
}

func (h *Handler) HandleUpdateCompany(c *gin.Context) {
	ctx := c.Request.Context()
	actor, ok := authz.MustActor(c)
	if !ok {
		return
	}
	companyID, ok := h.getCompanyID(c)
	if !ok {
		return
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "company_id", Value: companyID.String()})

	var req UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	company, err := h.processor.UpdateCompany(ctx, actor, companyID, store.UpdateCompanyParams{
		Name:              req.Name,
		Domain:            req.Domain,
		ContactEmail:      req.ContactEmail,
		MonthlyEmailLimit: req.MonthlyEmailLimit,
		DailyEmailLimit:   req.DailyEmailLimit,
		IsActive:          req.IsActive,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, company)
}

func (h *Handler) HandleDeleteCompany(c *gin.Context) {
	ctx := c.Request.Context()
	actor, ok := authz.MustActor(c)
	if !ok {
		return
	}
	companyID, ok := h.getCompanyID(c)
	if !ok {
		return
	}

	if err := h.processor.DeleteCompany(ctx, actor, companyID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) getCompanyID(c *gin.Context) (uuid.UUID, bool) {
	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Invalid company ID format")
		return uuid.UUID{}, false
	}
	return companyID, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrCompanyNotFound):
		apierrors.NotFound(c, "Company not found")
	case errors.Is(err, authz.ErrInsufficientRole):
		apierrors.InsufficientPermissions(c)
	default:
		apierrors.InternalError(c, err)
	}
}
