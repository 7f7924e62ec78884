package handler

import (
	"errors"
	"net/http"

	"phishsim-server/internal/apierrors"
	"phishsim-server/internal/authz"
	"phishsim-server/internal/emailservices/processor"
	"phishsim-server/internal/observability"
	"phishsim-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.EmailServiceProcessor
	logger    *observability.Logger
}

func New(processor processor.EmailServiceProcessor, logger *observability.Logger) Handler {
	return Handler{processor: processor, logger: logger}
}

type CreateEmailServiceRequest struct {
	CompanyID         *uuid.UUID `json:"company_id,omitempty"`
	Name              string     `json:"name" binding:"required,min=1,max=255"`
	Provider          string     `json:"provider" binding:"required,oneof=sendgrid mailgun aws-ses resend smtp"`
	APIKey            *string    `json:"api_key,omitempty"`
	APISecret         *string    `json:"api_secret,omitempty"`
	Domain            *string    `json:"domain,omitempty"`
	Region            *string    `json:"region,omitempty"`
	SMTPHost          *string    `json:"smtp_host,omitempty"`
	SMTPPort          *int       `json:"smtp_port,omitempty" binding:"omitempty,gt=0,lte=65535"`
	SMTPUsername      *string    `json:"smtp_username,omitempty"`
	SMTPPassword      *string    `json:"smtp_password,omitempty"`
	FromEmail         string     `json:"from_email" binding:"required,email"`
	FromName          *string    `json:"from_name,omitempty"`
	IsActive          *bool      `json:"is_active,omitempty"`
	IsPlatformDefault bool       `json:"is_platform_default"`
}

type UpdateEmailServiceRequest struct {
	Name              *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Provider          *string `json:"provider,omitempty" binding:"omitempty,oneof=sendgrid mailgun aws-ses resend smtp"`
	APIKey            *string `json:"api_key,omitempty"`
	APISecret         *string `json:"api_secret,omitempty"`
	Domain            *string `json:"domain,omitempty"`
	Region            *string `json:"region,omitempty"`
	SMTPHost          *string `json:"smtp_host,omitempty"`
	SMTPPort          *int    `json:"smtp_port,omitempty" binding:"omitempty,gt=0,lte=65535"`
	SMTPUsername      *string `json:"smtp_username,omitempty"`
	SMTPPassword      *string `json:"smtp_password,omitempty"`
	FromEmail         *string `json:"from_email,omitempty" binding:"omitempty,email"`
	FromName          *string `json:"from_name,omitempty"`
	IsActive          *bool   `json:"is_active,omitempty"`
	IsPlatformDefault *bool   `json:"is_platform_default,omitempty"`
}

type TestEmailRequest struct {
	To string `json:"to" binding:"required,email"`
}

func (h *Handler) HandleCreateEmailService(c *gin.Context) {
	ctx := c.Request.Context()
	actor, ok := authz.MustActor(c)
	if !ok {
		return
	}

	var req CreateEmailServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	svc, err := h.processor.CreateEmailService(ctx, actor, store.CreateEmailServiceParams{
		CompanyID:         req.CompanyID,
		Name:              req.Name,
		Provider:          req.Provider,
		APIKey:            req.APIKey,
		APISecret:         req.APISecret,
		Domain:            req.Domain,
		Region:            req.Region,
		SMTPHost:          req.SMTPHost,
		SMTPPort:          req.SMTPPort,
		SMTPUsername:      req.SMTPUsername,
		SMTPPassword:      req.SMTPPassword,
		FromEmail:         req.FromEmail,
		FromName:          req.FromName,
		IsActive:          isActive,
		IsPlatformDefault: req.IsPlatformDefault,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, svc)
}

func (h *Handler) HandleListEmailServices(c *gin.Context) {
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

	services, err := h.processor.ListEmailServices(ctx, actor, companyID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"email_services": services})
}

func (h *Handler) HandleGetEmailService(c *gin.Context) {
	ctx := c.Request.Context()
	actor, ok := authz.MustActor(c)
	if !ok {
		return
	}
	serviceID, ok := h.getEmailServiceID(c)
	if !ok {
		return
	}

	svc, err := h.processor.GetEmailService(ctx, actor, serviceID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, svc)
}

func (h *Handler) HandleUpdateEmailService(c *gin.Context) {
	ctx := c.Request.Context()
	actor, ok := authz.MustActor(c)
	if !ok {
		return
	}
	serviceID, ok := h.getEmailServiceID(c)
	if !ok {
		return
	}

	var req UpdateEmailServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	svc, err := h.processor.UpdateEmailService(ctx, actor, serviceID, store.UpdateEmailServiceParams{
		Name:              req.Name,
		Provider:          req.Provider,
		APIKey:            req.APIKey,
		APISecret:         req.APISecret,
		Domain:            req.Domain,
		Region:            req.Region,
		SMTPHost:          req.SMTPHost,
		SMTPPort:          req.SMTPPort,
		SMTPUsername:      req.SMTPUsername,
		SMTPPassword:      req.SMTPPassword,
		FromEmail:         req.FromEmail,
		FromName:          req.FromName,
		IsActive:          req.IsActive,
		IsPlatformDefault: req.IsPlatformDefault,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, svc)
}

func (h *Handler) HandleDeleteEmailService(c *gin.Context) {
	ctx := c.Request.Context()
	actor, ok := authz.MustActor(c)
	if !ok {
		return
	}
	serviceID, ok := h.getEmailServiceID(c)
	if !ok {
		return
	}

	if err := h.processor.DeleteEmailService(ctx, actor, serviceID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// HandleTestEmailService sends a test message through the service
func (h *Handler) HandleTestEmailService(c *gin.Context) {
	ctx := c.Request.Context()
	actor, ok := authz.MustActor(c)
	if !ok {
		return
	}
	serviceID, ok := h.getEmailServiceID(c)
	if !ok {
		return
	}

	var req TestEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	messageID, err := h.processor.SendTestEmail(ctx, actor, serviceID, req.To)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Test email sent", "message_id": messageID})
}

func (h *Handler) getEmailServiceID(c *gin.Context) (uuid.UUID, bool) {
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Invalid email service ID format")
		return uuid.UUID{}, false
	}
	return serviceID, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrEmailServiceNotFound):
		apierrors.NotFound(c, "Email service not found")
	case errors.Is(err, processor.ErrCompanyRequired):
		apierrors.BadRequest(c, "COMPANY_REQUIRED", "company_id is required for non-default email services")
	case errors.Is(err, processor.ErrProviderNotSupported):
		apierrors.BadRequest(c, "PROVIDER_NOT_SUPPORTED", "Test sends are only supported for Resend services")
	case errors.Is(err, processor.ErrEmailServiceInactive):
		apierrors.BadRequest(c, "SERVICE_INACTIVE", "Email service is inactive")
	case errors.Is(err, processor.ErrMissingCredentials):
		apierrors.BadRequest(c, "MISSING_CREDENTIALS", "Email service has no API key configured")
	case errors.Is(err, processor.ErrTestSendFailed):
		apierrors.ServiceUnavailable(c, "TEST_SEND_FAILED", "The provider rejected the test email", err)
	case errors.Is(err, authz.ErrReadOnly):
		apierrors.Forbidden(c, apierrors.CodeForbidden, "Platform default email services can only be changed by a superadmin")
	default:
		apierrors.InternalError(c, err)
	}
}
