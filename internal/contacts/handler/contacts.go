package handler

import (
	"net/http"
	"strings"

	"phishsim-server/internal/apierrors"
	"phishsim-server/internal/authz"
	"phishsim-server/internal/contacts/processor"
	"phishsim-server/internal/csvexport"
	"phishsim-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ContactRequest struct {
	Email        string         `json:"email" binding:"required,email"`
	FirstName    *string        `json:"first_name,omitempty" binding:"omitempty,max=255"`
	LastName     *string        `json:"last_name,omitempty" binding:"omitempty,max=255"`
	GroupID      *uuid.UUID     `json:"group_id,omitempty"`
	CustomFields map[string]any `json:"custom_fields,omitempty"`
}

type CreateContactRequest struct {
	CompanyID *uuid.UUID `json:"company_id,omitempty"`
	ContactRequest
}

type UpdateContactRequest struct {
	Email        *string        `json:"email,omitempty" binding:"omitempty,email"`
	FirstName    *string        `json:"first_name,omitempty" binding:"omitempty,max=255"`
	LastName     *string        `json:"last_name,omitempty" binding:"omitempty,max=255"`
	GroupID      *uuid.UUID     `json:"group_id,omitempty"`
	ClearGroup   bool           `json:"clear_group"`
	CustomFields map[string]any `json:"custom_fields,omitempty"`
	IsSubscribed *bool          `json:"is_subscribed,omitempty"`
}

type BulkCreateContactsRequest struct {
	CompanyID *uuid.UUID       `json:"company_id,omitempty"`
	Contacts  []ContactRequest `json:"contacts" binding:"required,min=1,max=5000,dive"`
}

func (r ContactRequest) input() store.ContactInput {
	input := store.ContactInput{
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		GroupID:   r.GroupID,
	}
	if r.CustomFields != nil {
		input.CustomFields = store.JSONB(r.CustomFields)
	}
	return input
}

func (h *Handler) HandleCreateContact(c *gin.Context) {
	ctx := c.Request.Context()
	actor, ok := authz.MustActor(c)
	if !ok {
		return
	}

	var req CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	contact, err := h.processor.CreateContact(ctx, actor, req.CompanyID, req.input())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contact)
}

func (h *Handler) HandleListContacts(c *gin.Context) {
	ctx := c.Request.Context()
	actor, ok := authz.MustActor(c)
	if !ok {
		return
	}

	companyID, ok := optionalUUIDQuery(c, "company_id")
	if !ok {
		return
	}
	groupID, ok := optionalUUIDQuery(c, "group_id")
	if !ok {
		return
	}

	filter := processor.ListContactsFilter{
		CompanyID: companyID,
		GroupID:   groupID,
		Page:      queryInt(c, "page", 1),
		Limit:     queryInt(c, "limit", 50),
	}
	if subscribed := c.Query("subscribed"); subscribed != "" {
		v := subscribed == "true"
		filter.Subscribed = &v
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		filter.Search = &search
	}

	page, err := h.processor.ListContacts(ctx, actor, filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	totalPages := (page.Total + page.Limit - 1) / page.Limit
	c.JSON(http.StatusOK, gin.H{
		"contacts": page.Contacts,
		"pagination": gin.H{
			"page":        page.Page,
			"limit":       page.Limit,
			"total":       page.Total,
			"total_pages": totalPages,
		},
	})
}

func (h *Handler) HandleGetContact(c *gin.Context) {
	ctx := c.Request.Context()
	actor, ok := authz.MustActor(c)
	if !ok {
		return
	}
	contactID, ok := getID(c, "contact")
	if !ok {
		return
	}

	contact, err := h.processor.GetContact(ctx, actor, contactID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, contact)
}

func (h *Handler) HandleUpdateContact(c *gin.Context) {
	ctx := c.Request.Context()
	actor, ok := authz.MustActor(c)
	if !ok {
		return
	}
	contactID, ok := getID(c, "contact")
	if !ok {
		return
	}

	var req UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	params := store.UpdateContactParams{
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		GroupID:      req.GroupID,
		ClearGroup:   req.ClearGroup,
		IsSubscribed: req.IsSubscribed,
	}
	if req.CustomFields != nil {
		params.CustomFields = store.JSONB(req.CustomFields)
	}

	contact, err := h.processor.UpdateContact(ctx, actor, contactID, params)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, contact)
}

func (h *Handler) HandleDeleteContact(c *gin.Context) {
	ctx := c.Request.Context()
	actor, ok := authz.MustActor(c)
	if !ok {
		return
	}
	contactID, ok := getID(c, "contact")
	if !ok {
		return
	}

	if err := h.processor.DeleteContact(ctx, actor, contactID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// HandleBulkCreateContacts handles POST /api/contacts/bulk
func (h *Handler) HandleBulkCreateContacts(c *gin.Context) {
	ctx := c.Request.Context()
	actor, ok := authz.MustActor(c)
	if !ok {
		return
	}

	var req BulkCreateContactsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	inputs := make([]store.ContactInput, 0, len(req.Contacts))
	for _, contact := range req.Contacts {
		inputs = append(inputs, contact.input())
	}

	result, err := h.processor.BulkCreateContacts(ctx, actor, req.CompanyID, inputs)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// HandleImportContacts handles POST /api/contacts/import with a multipart "file" field
func (h *Handler) HandleImportContacts(c *gin.Context) {
	ctx := c.Request.Context()
	actor, ok := authz.MustActor(c)
	if !ok {
		return
	}

	companyID, ok := optionalUUIDForm(c, "company_id")
	if !ok {
		return
	}
	groupID, ok := optionalUUIDForm(c, "group_id")
	if !ok {
		return
	}

	file, _, err := c.Request.FormFile("file")
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "file is required")
		return
	}
	defer file.Close()

	rows, err := csvexport.ParseContacts(file)
	if err != nil {
		h.handleError(c, err)
		return
	}

	result, err := h.processor.ImportContacts(ctx, actor, companyID, groupID, rows)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleExportContacts handles GET /api/contacts/export
func (h *Handler) HandleExportContacts(c *gin.Context) {
	ctx := c.Request.Context()
	actor, ok := authz.MustActor(c)
	if !ok {
		return
	}

	companyID, ok := optionalUUIDQuery(c, "company_id")
	if !ok {
		return
	}
	groupID, ok := optionalUUIDQuery(c, "group_id")
	if !ok {
		return
	}

	contacts, err := h.processor.ExportContacts(ctx, actor, companyID, groupID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	rows := make([][]string, 0, len(contacts))
	for _, contact := range contacts {
		rows = append(rows, []string{contact.Email, deref(contact.FirstName), deref(contact.LastName)})
	}

	if err := csvexport.Send(c, "contacts.csv", []string{"email", "firstName", "lastName"}, rows); err != nil {
		h.logger.Error(ctx, "failed to write contacts export", err)
	}
}

func optionalUUIDForm(c *gin.Context, key string) (*uuid.UUID, bool) {
	raw := c.PostForm(key)
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

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
