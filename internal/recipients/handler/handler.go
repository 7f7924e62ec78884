package handler

import (
	"errors"
	"net/http"

	"phishsim-server/internal/apierrors"
	"phishsim-server/internal/authz"
	"phishsim-server/internal/csvexport"
	"phishsim-server/internal/observability"
	"phishsim-server/internal/recipients/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.RecipientProcessor
	logger    *observability.Logger
}

func New(processor processor.RecipientProcessor, logger *observability.Logger) Handler {
	return Handler{processor: processor, logger: logger}
}

type AddRecipientsRequest struct {
	CampaignID uuid.UUID   `json:"campaign_id" binding:"required"`
	ContactIDs []uuid.UUID `json:"contact_ids" binding:"required,min=1,max=10000"`
}

type ImportRecipientRow struct {
	Email     string  `json:"email" binding:"required"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
}

type ImportRecipientsRequest struct {
	CampaignID uuid.UUID            `json:"campaign_id" binding:"required"`
	Recipients []ImportRecipientRow `json:"recipients" binding:"required,min=1,max=10000,dive"`
}

// HandleListRecipients handles GET /api/campaign-recipients/:id where id is the campaign
func (h *Handler) HandleListRecipients(c *gin.Context) {
	ctx := c.Request.Context()
	actor, ok := authz.MustActor(c)
	if !ok {
		return
	}
	campaignID, ok := parseID(c, "campaign")
	if !ok {
		return
	}

	recipients, err := h.processor.ListRecipients(ctx, actor, campaignID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipients": recipients})
}

func (h *Handler) HandleAddRecipients(c *gin.Context) {
	ctx := c.Request.Context()
	actor, ok := authz.MustActor(c)
	if !ok {
		return
	}

	var req AddRecipientsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	added, err := h.processor.AddRecipients(ctx, actor, req.CampaignID, req.ContactIDs)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"added": added, "skipped": len(req.ContactIDs) - added})
}

// HandleImportRecipients accepts either a JSON body or a multipart CSV upload with a
// campaign_id form field
func (h *Handler) HandleImportRecipients(c *gin.Context) {
	ctx := c.Request.Context()
	actor, ok := authz.MustActor(c)
	if !ok {
		return
	}

	var (
		campaignID uuid.UUID
		rows       []processor.ImportRow
	)
	if c.ContentType() == gin.MIMEMultipartPOSTForm {
		id, err := uuid.Parse(c.PostForm("campaign_id"))
		if err != nil {
			apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Invalid campaign_id")
			return
		}
		campaignID = id

		file, _, err := c.Request.FormFile("file")
		if err != nil {
			apierrors.BadRequest(c, apierrors.CodeInvalidInput, "file is required")
			return
		}
		defer file.Close()

		parsed, err := csvexport.ParseContacts(file)
		if err != nil {
			h.handleError(c, err)
			return
		}
		for _, r := range parsed {
			rows = append(rows, processor.ImportRow{Line: r.Line, Email: r.Email, FirstName: r.FirstName, LastName: r.LastName})
		}
	} else {
		var req ImportRecipientsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}
		campaignID = req.CampaignID
		for i, r := range req.Recipients {
			rows = append(rows, processor.ImportRow{Line: i + 1, Email: r.Email, FirstName: r.FirstName, LastName: r.LastName})
		}
	}

	result, err := h.processor.ImportRecipients(ctx, actor, campaignID, rows)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) HandleRemoveRecipient(c *gin.Context) {
	ctx := c.Request.Context()
	actor, ok := authz.MustActor(c)
	if !ok {
		return
	}
	recipientID, ok := parseID(c, "recipient")
	if !ok {
		return
	}

	if err := h.processor.RemoveRecipient(ctx, actor, recipientID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// HandleMarkSent handles POST /api/campaign-recipients/:id/mark-sent
func (h *Handler) HandleMarkSent(c *gin.Context) {
	ctx := c.Request.Context()
	actor, ok := authz.MustActor(c)
	if !ok {
		return
	}
	recipientID, ok := parseID(c, "recipient")
	if !ok {
		return
	}

	recipient, err := h.processor.MarkSent(ctx, actor, recipientID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipient)
}

func parseID(c *gin.Context, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Invalid "+what+" ID format")
		return uuid.UUID{}, false
	}
	return id, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrCampaignNotFound):
		apierrors.NotFound(c, "Campaign not found")
	case errors.Is(err, processor.ErrRecipientNotFound):
		apierrors.NotFound(c, "Recipient not found")
	case errors.Is(err, processor.ErrRecipientNotPending):
		apierrors.Conflict(c, "RECIPIENT_NOT_PENDING", "Only pending recipients can be removed")
	case errors.Is(err, processor.ErrNoRecipients):
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "At least one recipient is required")
	case errors.Is(err, csvexport.ErrMissingEmailColumn):
		apierrors.BadRequest(c, "MISSING_EMAIL_COLUMN", "CSV header must contain an email column")
	case errors.Is(err, authz.ErrInsufficientRole):
		apierrors.InsufficientPermissions(c)
	default:
		apierrors.InternalError(c, err)
	}
}
