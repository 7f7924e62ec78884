package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"phishsim-server/internal/authz"
	"phishsim-server/internal/csvexport"
	"phishsim-server/internal/observability"
	"phishsim-server/internal/store"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ContactStore defines the database operations required by ContactProcessor
type ContactStore interface {
	CreateContactGroup(ctx context.Context, companyID uuid.UUID, name string, description *string) (store.ContactGroup, error)
	GetContactGroupByID(ctx context.Context, id uuid.UUID) (store.ContactGroup, error)
	ListContactGroups(ctx context.Context, companyID *uuid.UUID) ([]store.ContactGroup, error)
	UpdateContactGroup(ctx context.Context, id uuid.UUID, name, description *string) (store.ContactGroup, error)
	DeleteContactGroup(ctx context.Context, id uuid.UUID) error
	CreateContact(ctx context.Context, companyID uuid.UUID, input store.ContactInput) (store.Contact, error)
	BulkInsertContacts(ctx context.Context, companyID uuid.UUID, inputs []store.ContactInput) (int, error)
	FindOrCreateContact(ctx context.Context, companyID uuid.UUID, input store.ContactInput) (store.Contact, bool, error)
	GetContactByID(ctx context.Context, id uuid.UUID) (store.Contact, error)
	ListContacts(ctx context.Context, params store.ListContactsParams) ([]store.Contact, int, error)
	ListContactsForExport(ctx context.Context, companyID uuid.UUID, groupID *uuid.UUID) ([]store.Contact, error)
	UpdateContact(ctx context.Context, id uuid.UUID, params store.UpdateContactParams) (store.Contact, error)
	DeleteContact(ctx context.Context, id uuid.UUID) error
}

var (
	ErrContactNotFound      = errors.New("contact not found")
	ErrContactGroupNotFound = errors.New("contact group not found")
	ErrContactExists        = errors.New("contact with this email already exists")
	ErrCompanyRequired      = errors.New("company is required")
	ErrNoContacts           = errors.New("no contacts provided")
	ErrContactInUse         = errors.New("contact has campaign engagement")
)

type ContactProcessor struct {
	store    ContactStore
	validate *validator.Validate
	logger   *observability.Logger
}

func New(store ContactStore, logger *observability.Logger) ContactProcessor {
	return ContactProcessor{store: store, validate: validator.New(), logger: logger}
}

// ListContactsFilter narrows a contact listing. CompanyID is honoured for superadmins only.
type ListContactsFilter struct {
	CompanyID  *uuid.UUID
	GroupID    *uuid.UUID
	Subscribed *bool
	Search     *string
	Page       int
	Limit      int
}

// ContactPage is one page of contacts plus the total match count
type ContactPage struct {
	Contacts []store.Contact
	Total    int
	Page     int
	Limit    int
}

// BulkResult reports how many rows were created and how many already existed
type BulkResult struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}

// RowError describes an import row that could not be stored
type RowError struct {
	Line  int    `json:"line"`
	Email string `json:"email,omitempty"`
	Error string `json:"error"`
}

// ImportResult summarises a CSV contact import
type ImportResult struct {
	Created  int        `json:"created"`
	Existing int        `json:"existing"`
	Errors   []RowError `json:"errors"`
}

// CreateGroup adds a contact group to the actor's company, or to companyID for superadmins
func (p *ContactProcessor) CreateGroup(ctx context.Context, actor authz.Actor, companyID *uuid.UUID, name string, description *string) (store.ContactGroup, error) {
	tenant, err := tenantFor(actor, companyID)
	if err != nil {
		return store.ContactGroup{}, err
	}

	group, err := p.store.CreateContactGroup(ctx, tenant, name, description)
	if err != nil {
		return store.ContactGroup{}, fmt.Errorf("failed to create contact group: %w", err)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "contact_group_id", Value: group.ID},
		observability.Field{Key: "company_id", Value: tenant},
	)
	p.logger.Info(ctx, "contact group created")
	return group, nil
}

func (p *ContactProcessor) GetGroup(ctx context.Context, actor authz.Actor, id uuid.UUID) (store.ContactGroup, error) {
	return p.getGroup(ctx, actor, id)
}

func (p *ContactProcessor) ListGroups(ctx context.Context, actor authz.Actor, companyID *uuid.UUID) ([]store.ContactGroup, error) {
	groups, err := p.store.ListContactGroups(ctx, authz.ScopeCompanyID(actor, companyID))
	if err != nil {
		return nil, fmt.Errorf("failed to list contact groups: %w", err)
	}
	return groups, nil
}

func (p *ContactProcessor) UpdateGroup(ctx context.Context, actor authz.Actor, id uuid.UUID, name, description *string) (store.ContactGroup, error) {
	if _, err := p.getGroup(ctx, actor, id); err != nil {
		return store.ContactGroup{}, err
	}

	group, err := p.store.UpdateContactGroup(ctx, id, name, description)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.ContactGroup{}, ErrContactGroupNotFound
		}
		return store.ContactGroup{}, fmt.Errorf("failed to update contact group: %w", err)
	}
	return group, nil
}

// DeleteGroup removes a group. Its contacts stay and lose their group.
func (p *ContactProcessor) DeleteGroup(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	if _, err := p.getGroup(ctx, actor, id); err != nil {
		return err
	}

	if err := p.store.DeleteContactGroup(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrContactGroupNotFound
		}
		return fmt.Errorf("failed to delete contact group: %w", err)
	}
	return nil
}

func (p *ContactProcessor) CreateContact(ctx context.Context, actor authz.Actor, companyID *uuid.UUID, input store.ContactInput) (store.Contact, error) {
	tenant, err := tenantFor(actor, companyID)
	if err != nil {
		return store.Contact{}, err
	}
	if err := p.checkGroup(ctx, tenant, input.GroupID); err != nil {
		return store.Contact{}, err
	}
	input.Email = normalizeEmail(input.Email)

	contact, err := p.store.CreateContact(ctx, tenant, input)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return store.Contact{}, ErrContactExists
		}
		return store.Contact{}, fmt.Errorf("failed to create contact: %w", err)
	}
	return contact, nil
}

func (p *ContactProcessor) GetContact(ctx context.Context, actor authz.Actor, id uuid.UUID) (store.Contact, error) {
	return p.getContact(ctx, actor, id)
}

func (p *ContactProcessor) ListContacts(ctx context.Context, actor authz.Actor, filter ListContactsFilter) (ContactPage, error) {
	page, limit := normalizePage(filter.Page, filter.Limit)

	contacts, total, err := p.store.ListContacts(ctx, store.ListContactsParams{
		CompanyID:  authz.ScopeCompanyID(actor, filter.CompanyID),
		GroupID:    filter.GroupID,
		Subscribed: filter.Subscribed,
		Search:     filter.Search,
		Limit:      limit,
		Offset:     (page - 1) * limit,
	})
	if err != nil {
		return ContactPage{}, fmt.Errorf("failed to list contacts: %w", err)
	}
	return ContactPage{Contacts: contacts, Total: total, Page: page, Limit: limit}, nil
}

func (p *ContactProcessor) UpdateContact(ctx context.Context, actor authz.Actor, id uuid.UUID, params store.UpdateContactParams) (store.Contact, error) {
	existing, err := p.getContact(ctx, actor, id)
	if err != nil {
		return store.Contact{}, err
	}
	if !params.ClearGroup {
		if err := p.checkGroup(ctx, existing.CompanyID, params.GroupID); err != nil {
			return store.Contact{}, err
		}
	}
	if params.Email != nil {
		email := normalizeEmail(*params.Email)
		params.Email = &email
	}

	contact, err := p.store.UpdateContact(ctx, id, params)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return store.Contact{}, ErrContactNotFound
		case errors.Is(err, store.ErrConflict):
			return store.Contact{}, ErrContactExists
		}
		return store.Contact{}, fmt.Errorf("failed to update contact: %w", err)
	}
	return contact, nil
}

// DeleteContact removes a contact that never got past pending in any campaign
func (p *ContactProcessor) DeleteContact(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	if _, err := p.getContact(ctx, actor, id); err != nil {
		return err
	}

	if err := p.store.DeleteContact(ctx, id); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return ErrContactNotFound
		case errors.Is(err, store.ErrConflict):
			return ErrContactInUse
		}
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	return nil
}

// BulkCreateContacts inserts many contacts at once. Emails already present in the company are skipped.
func (p *ContactProcessor) BulkCreateContacts(ctx context.Context, actor authz.Actor, companyID *uuid.UUID, inputs []store.ContactInput) (BulkResult, error) {
	if len(inputs) == 0 {
		return BulkResult{}, ErrNoContacts
	}
	tenant, err := tenantFor(actor, companyID)
	if err != nil {
		return BulkResult{}, err
	}
	for i := range inputs {
		if err := p.checkGroup(ctx, tenant, inputs[i].GroupID); err != nil {
			return BulkResult{}, err
		}
		inputs[i].Email = normalizeEmail(inputs[i].Email)
	}

	created, err := p.store.BulkInsertContacts(ctx, tenant, inputs)
	if err != nil {
		return BulkResult{}, fmt.Errorf("failed to bulk create contacts: %w", err)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "company_id", Value: tenant},
		observability.Field{Key: "created", Value: created},
		observability.Field{Key: "submitted", Value: len(inputs)},
	)
	p.logger.Info(ctx, "contacts bulk created")
	return BulkResult{Created: created, Skipped: len(inputs) - created}, nil
}

// ImportContacts stores parsed CSV rows one by one, reusing contacts that already exist.
// Rows that fail validation or storage are reported and do not stop the import.
func (p *ContactProcessor) ImportContacts(ctx context.Context, actor authz.Actor, companyID, groupID *uuid.UUID, rows []csvexport.ContactRow) (ImportResult, error) {
	if len(rows) == 0 {
		return ImportResult{}, ErrNoContacts
	}
	tenant, err := tenantFor(actor, companyID)
	if err != nil {
		return ImportResult{}, err
	}
	if err := p.checkGroup(ctx, tenant, groupID); err != nil {
		return ImportResult{}, err
	}

	result := ImportResult{Errors: []RowError{}}
	for _, row := range rows {
		email := normalizeEmail(row.Email)
		if err := p.validate.Var(email, "required,email"); err != nil {
			result.Errors = append(result.Errors, RowError{Line: row.Line, Email: row.Email, Error: "invalid email address"})
			continue
		}

		input := store.ContactInput{
			Email:     email,
			FirstName: row.FirstName,
			LastName:  row.LastName,
			GroupID:   groupID,
		}
		if len(row.Custom) > 0 {
			input.CustomFields = store.JSONB{}
			for k, v := range row.Custom {
				input.CustomFields[k] = v
			}
		}

		_, created, err := p.store.FindOrCreateContact(ctx, tenant, input)
		if err != nil {
			p.logger.Error(ctx, "failed to import contact row", err)
			result.Errors = append(result.Errors, RowError{Line: row.Line, Email: row.Email, Error: "failed to store contact"})
			continue
		}
		if created {
			result.Created++
		} else {
			result.Existing++
		}
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "company_id", Value: tenant},
		observability.Field{Key: "created", Value: result.Created},
		observability.Field{Key: "existing", Value: result.Existing},
		observability.Field{Key: "failed", Value: len(result.Errors)},
	)
	p.logger.Info(ctx, "contacts imported")
	return result, nil
}

// ExportContacts returns every contact of the tenant, optionally restricted to one group
func (p *ContactProcessor) ExportContacts(ctx context.Context, actor authz.Actor, companyID, groupID *uuid.UUID) ([]store.Contact, error) {
	tenant, err := tenantFor(actor, companyID)
	if err != nil {
		return nil, err
	}
	if err := p.checkGroup(ctx, tenant, groupID); err != nil {
		return nil, err
	}

	contacts, err := p.store.ListContactsForExport(ctx, tenant, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to export contacts: %w", err)
	}
	return contacts, nil
}

func (p *ContactProcessor) getGroup(ctx context.Context, actor authz.Actor, id uuid.UUID) (store.ContactGroup, error) {
	group, err := p.store.GetContactGroupByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.ContactGroup{}, ErrContactGroupNotFound
		}
		return store.ContactGroup{}, fmt.Errorf("failed to get contact group: %w", err)
	}
	if err := authz.Enforce(actor, authz.Owned(group.CompanyID), authz.Write, ErrContactGroupNotFound); err != nil {
		return store.ContactGroup{}, err
	}
	return group, nil
}

func (p *ContactProcessor) getContact(ctx context.Context, actor authz.Actor, id uuid.UUID) (store.Contact, error) {
	contact, err := p.store.GetContactByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Contact{}, ErrContactNotFound
		}
		return store.Contact{}, fmt.Errorf("failed to get contact: %w", err)
	}
	if err := authz.Enforce(actor, authz.Owned(contact.CompanyID), authz.Write, ErrContactNotFound); err != nil {
		return store.Contact{}, err
	}
	return contact, nil
}

// checkGroup verifies that groupID, when set, names a group of the given company
func (p *ContactProcessor) checkGroup(ctx context.Context, companyID uuid.UUID, groupID *uuid.UUID) error {
	if groupID == nil {
		return nil
	}
	group, err := p.store.GetContactGroupByID(ctx, *groupID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrContactGroupNotFound
		}
		return fmt.Errorf("failed to get contact group: %w", err)
	}
	if group.CompanyID != companyID {
		return ErrContactGroupNotFound
	}
	return nil
}

func tenantFor(actor authz.Actor, requested *uuid.UUID) (uuid.UUID, error) {
	scope := authz.ScopeCompanyID(actor, requested)
	if scope == nil {
		return uuid.Nil, ErrCompanyRequired
	}
	return *scope, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 50
	}
	return page, limit
}
