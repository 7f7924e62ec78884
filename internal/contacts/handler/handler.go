package handler

import (
	"errors"
	"fmt"

	"phishsim-server/internal/apierrors"
	"phishsim-server/internal/authz"
	"phishsim-server/internal/contacts/processor"
	"phishsim-server/internal/csvexport"
	"phishsim-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.ContactProcessor
	logger    *observability.Logger
}

func New(processor processor.ContactProcessor, logger *observability.Logger) Handler {
	return Handler{processor: processor, logger: logger}
}

func getID(c *gin.Context, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, fmt.Sprintf("Invalid %s ID format", what))
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
	case errors.Is(err, processor.ErrContactNotFound):
		apierrors.NotFound(c, "Contact not found")
	case errors.Is(err, processor.ErrContactGroupNotFound):
		apierrors.NotFound(c, "Contact group not found")
	case errors.Is(err, processor.ErrContactExists):
		apierrors.Conflict(c, "CONTACT_EXISTS", "A contact with this email already exists")
	case errors.Is(err, processor.ErrContactInUse):
		apierrors.Conflict(c, "CONTACT_IN_USE", "Contact has campaign activity and cannot be deleted")
	case errors.Is(err, processor.ErrCompanyRequired):
		apierrors.BadRequest(c, "COMPANY_REQUIRED", "company_id is required")
	case errors.Is(err, processor.ErrNoContacts):
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "At least one contact is required")
	case errors.Is(err, csvexport.ErrMissingEmailColumn):
		apierrors.BadRequest(c, "MISSING_EMAIL_COLUMN", "CSV header must contain an email column")
	case errors.Is(err, authz.ErrInsufficientRole):
		apierrors.InsufficientPermissions(c)
	default:
		apierrors.InternalError(c, err)
	}
}
