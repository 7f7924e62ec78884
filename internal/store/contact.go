package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ContactInput is one contact row to insert.
type ContactInput struct {
	Email        string
	FirstName    *string
	LastName     *string
	GroupID      *uuid.UUID
	CustomFields JSONB
}

type UpdateContactParams struct {
	Email        *string
	FirstName    *string
	LastName     *string
	GroupID      *uuid.UUID
	ClearGroup   bool
	CustomFields JSONB
	IsSubscribed *bool
}

type ListContactsParams struct {
	CompanyID  *uuid.UUID
	GroupID    *uuid.UUID
	Subscribed *bool
	Search     *string
	Limit      int
	Offset     int
}

const contactColumns = `id, company_id, group_id, email, first_name, last_name, custom_fields,
    is_subscribed, unsubscribed_at, created_at, updated_at`

const sqlCreateContact = `
INSERT INTO contacts (company_id, email, first_name, last_name, group_id, custom_fields)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + contactColumns

// CreateContact inserts a contact, returning ErrConflict when the email already exists in the company
func (s *Store) CreateContact(ctx context.Context, companyID uuid.UUID, input ContactInput) (Contact, error) {
	var contact Contact
	err := s.db.GetContext(ctx, &contact, sqlCreateContact,
		companyID, input.Email, input.FirstName, input.LastName, input.GroupID, input.CustomFields)
	if err != nil {
		if isUniqueViolation(err) {
			return Contact{}, ErrConflict
		}
		s.logger.Error(ctx, "failed to create contact", err)
		return Contact{}, fmt.Errorf("failed to create contact: %w", err)
	}
	return contact, nil
}

const sqlInsertContactIgnoreDuplicate = `
INSERT INTO contacts (company_id, email, first_name, last_name, group_id, custom_fields)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (company_id, (LOWER(email))) DO NOTHING`

// BulkInsertContacts inserts the rows in one transaction, silently skipping emails
// that already exist in the company. It returns how many rows were created.
func (s *Store) BulkInsertContacts(ctx context.Context, companyID uuid.UUID, inputs []ContactInput) (int, error) {
	created := 0
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		for _, input := range inputs {
			res, err := tx.ExecContext(ctx, sqlInsertContactIgnoreDuplicate,
				companyID, input.Email, input.FirstName, input.LastName, input.GroupID, input.CustomFields)
			if err != nil {
				s.logger.Error(ctx, "failed to bulk insert contact", err)
				return fmt.Errorf("failed to bulk insert contact: %w", err)
			}
			n, err := res.RowsAffected()
			if err != nil {
				return fmt.Errorf("failed to read rows affected: %w", err)
			}
			created += int(n)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}

const sqlInsertContactReturning = sqlInsertContactIgnoreDuplicate + `
RETURNING ` + contactColumns

const sqlGetContactByEmail = `
SELECT ` + contactColumns + `
FROM contacts
WHERE company_id = $1 AND LOWER(email) = LOWER($2)`

// FindOrCreateContact returns the company's contact with the given email, creating it when absent.
// The boolean reports whether a new row was created.
func (s *Store) FindOrCreateContact(ctx context.Context, companyID uuid.UUID, input ContactInput) (Contact, bool, error) {
	var contact Contact
	err := s.db.GetContext(ctx, &contact, sqlInsertContactReturning,
		companyID, input.Email, input.FirstName, input.LastName, input.GroupID, input.CustomFields)
	if err == nil {
		return contact, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		s.logger.Error(ctx, "failed to insert contact", err)
		return Contact{}, false, fmt.Errorf("failed to insert contact: %w", err)
	}

	if err := s.db.GetContext(ctx, &contact, sqlGetContactByEmail, companyID, input.Email); err != nil {
		s.logger.Error(ctx, "failed to get contact by email", err)
		return Contact{}, false, fmt.Errorf("failed to get contact by email: %w", err)
	}
	return contact, false, nil
}

const sqlGetContactByID = `SELECT ` + contactColumns + ` FROM contacts WHERE id = $1`

func (s *Store) GetContactByID(ctx context.Context, id uuid.UUID) (Contact, error) {
	var contact Contact
	err := s.db.GetContext(ctx, &contact, sqlGetContactByID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Contact{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get contact by id", err)
		return Contact{}, fmt.Errorf("failed to get contact by id: %w", err)
	}
	return contact, nil
}

const sqlContactFilter = `
WHERE ($1::uuid IS NULL OR company_id = $1)
  AND ($2::uuid IS NULL OR group_id = $2)
  AND ($3::boolean IS NULL OR is_subscribed = $3)
  AND ($4::text IS NULL
       OR email ILIKE '%' || $4 || '%'
       OR first_name ILIKE '%' || $4 || '%'
       OR last_name ILIKE '%' || $4 || '%')`

const sqlListContacts = `SELECT ` + contactColumns + ` FROM contacts` + sqlContactFilter + `
ORDER BY created_at DESC
LIMIT $5 OFFSET $6`

const sqlCountContacts = `SELECT COUNT(*) FROM contacts` + sqlContactFilter

// ListContacts returns one page of contacts matching the filters and the total match count
func (s *Store) ListContacts(ctx context.Context, params ListContactsParams) ([]Contact, int, error) {
	contacts := []Contact{}
	err := s.db.SelectContext(ctx, &contacts, sqlListContacts,
		params.CompanyID, params.GroupID, params.Subscribed, params.Search, params.Limit, params.Offset)
	if err != nil {
		s.logger.Error(ctx, "failed to list contacts", err)
		return nil, 0, fmt.Errorf("failed to list contacts: %w", err)
	}

	var total int
	err = s.db.GetContext(ctx, &total, sqlCountContacts,
		params.CompanyID, params.GroupID, params.Subscribed, params.Search)
	if err != nil {
		s.logger.Error(ctx, "failed to count contacts", err)
		return nil, 0, fmt.Errorf("failed to count contacts: %w", err)
	}
	return contacts, total, nil
}

const sqlListContactsForExport = `
SELECT ` + contactColumns + `
FROM contacts
WHERE company_id = $1 AND ($2::uuid IS NULL OR group_id = $2)
ORDER BY email`

// ListContactsForExport returns every contact of a company, optionally limited to one group
func (s *Store) ListContactsForExport(ctx context.Context, companyID uuid.UUID, groupID *uuid.UUID) ([]Contact, error) {
	contacts := []Contact{}
	if err := s.db.SelectContext(ctx, &contacts, sqlListContactsForExport, companyID, groupID); err != nil {
		s.logger.Error(ctx, "failed to list contacts for export", err)
		return nil, fmt.Errorf("failed to list contacts for export: %w", err)
	}
	return contacts, nil
}

const sqlUpdateContact = `
UPDATE contacts
SET email = COALESCE($2, email),
    first_name = COALESCE($3, first_name),
    last_name = COALESCE($4, last_name),
    group_id = CASE WHEN $6 THEN NULL ELSE COALESCE($5, group_id) END,
    custom_fields = COALESCE($7, custom_fields),
    unsubscribed_at = CASE
        WHEN $8::boolean IS NULL THEN unsubscribed_at
        WHEN $8 THEN NULL
        WHEN is_subscribed THEN NOW()
        ELSE unsubscribed_at
    END,
    is_subscribed = COALESCE($8, is_subscribed),
    updated_at = NOW()
WHERE id = $1
RETURNING ` + contactColumns

// UpdateContact patches a contact. Unsubscribing stamps unsubscribed_at; resubscribing clears it.
func (s *Store) UpdateContact(ctx context.Context, id uuid.UUID, params UpdateContactParams) (Contact, error) {
	var contact Contact
	err := s.db.GetContext(ctx, &contact, sqlUpdateContact, id,
		params.Email, params.FirstName, params.LastName, params.GroupID, params.ClearGroup,
		params.CustomFields, params.IsSubscribed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Contact{}, ErrNotFound
		}
		if isUniqueViolation(err) {
			return Contact{}, ErrConflict
		}
		s.logger.Error(ctx, "failed to update contact", err)
		return Contact{}, fmt.Errorf("failed to update contact: %w", err)
	}
	return contact, nil
}

const sqlContactHasEngagedRecipients = `
SELECT EXISTS (SELECT 1 FROM campaign_recipients WHERE contact_id = $1 AND status <> 'pending')`

const sqlDeletePendingRecipientsOfContact = `
WITH removed AS (
    DELETE FROM campaign_recipients WHERE contact_id = $1 AND status = 'pending'
    RETURNING campaign_id
)
UPDATE campaigns c
SET total_recipients = GREATEST(c.total_recipients - r.n, 0), updated_at = NOW()
FROM (SELECT campaign_id, COUNT(*)::int AS n FROM removed GROUP BY campaign_id) r
WHERE c.id = r.campaign_id`

const sqlDeleteContact = `DELETE FROM contacts WHERE id = $1`

// DeleteContact removes a contact and its still-pending campaign memberships. ErrConflict means
// the contact is a recipient past pending, whose events and counters must be kept.
func (s *Store) DeleteContact(ctx context.Context, id uuid.UUID) error {
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		var engaged bool
		if err := tx.GetContext(ctx, &engaged, sqlContactHasEngagedRecipients, id); err != nil {
			return fmt.Errorf("failed to check contact recipients: %w", err)
		}
		if engaged {
			return ErrConflict
		}

		if _, err := tx.ExecContext(ctx, sqlDeletePendingRecipientsOfContact, id); err != nil {
			return fmt.Errorf("failed to remove pending recipients: %w", err)
		}

		res, err := tx.ExecContext(ctx, sqlDeleteContact, id)
		if err != nil {
			if isForeignKeyViolation(err) {
				return ErrConflict
			}
			return fmt.Errorf("failed to delete contact: %w", err)
		}
		return expectAffected(res)
	})
	if err != nil && !errors.Is(err, ErrNotFound) && !errors.Is(err, ErrConflict) {
		s.logger.Error(ctx, "failed to delete contact", err)
	}
	return err
}
