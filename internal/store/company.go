package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

type CreateCompanyParams struct {
	Name              string
	Domain            *string
	ContactEmail      *string
	MonthlyEmailLimit *int
	DailyEmailLimit   *int
}

type UpdateCompanyParams struct {
	Name              *string
	Domain            *string
	ContactEmail      *string
	MonthlyEmailLimit *int
	DailyEmailLimit   *int
	IsActive          *bool
}

const companyColumns = `id, name, domain, contact_email, monthly_email_limit, daily_email_limit,
    monthly_emails_used, daily_emails_used, is_active, created_at, updated_at`

const sqlCreateCompany = `
INSERT INTO companies (name, domain, contact_email, monthly_email_limit, daily_email_limit)
VALUES ($1, $2, $3, COALESCE($4, 1000), COALESCE($5, 100))
RETURNING ` + companyColumns

// CreateCompany creates a new tenant
func (s *Store) CreateCompany(ctx context.Context, params CreateCompanyParams) (Company, error) {
	var company Company
	err := s.db.GetContext(ctx, &company, sqlCreateCompany,
		params.Name, params.Domain, params.ContactEmail, params.MonthlyEmailLimit, params.DailyEmailLimit)
	if err != nil {
		s.logger.Error(ctx, "failed to create company", err)
		return Company{}, fmt.Errorf("failed to create company: %w", err)
	}
	return company, nil
}

const sqlGetCompanyByID = `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`

// GetCompanyByID retrieves a company by ID
func (s *Store) GetCompanyByID(ctx context.Context, id uuid.UUID) (Company, error) {
	var company Company
	err := s.db.GetContext(ctx, &company, sqlGetCompanyByID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Company{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get company by id", err)
		return Company{}, fmt.Errorf("failed to get company by id: %w", err)
	}
	return company, nil
}

const sqlListCompanies = `SELECT ` + companyColumns + ` FROM companies ORDER BY created_at DESC`

// ListCompanies returns every tenant, newest first
func (s *Store) ListCompanies(ctx context.Context) ([]Company, error) {
	companies := []Company{}
	if err := s.db.SelectContext(ctx, &companies, sqlListCompanies); err != nil {
		s.logger.Error(ctx, "failed to list companies", err)
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return companies, nil
}

const sqlUpdateCompany = `
UPDATE companies
SET name = COALESCE($2, name),
    domain = COALESCE($3, domain),
    contact_email = COALESCE($4, contact_email),
    monthly_email_limit = COALESCE($5, monthly_email_limit),
    daily_email_limit = COALESCE($6, daily_email_limit),
    is_active = COALESCE($7, is_active),
    updated_at = NOW()
WHERE id = $1
RETURNING ` + companyColumns

// UpdateCompany patches the non-nil fields of a company
func (s *Store) UpdateCompany(ctx context.Context, id uuid.UUID, params UpdateCompanyParams) (Company, error) {
	var company Company
	err := s.db.GetContext(ctx, &company, sqlUpdateCompany, id,
		params.Name, params.Domain, params.ContactEmail,
		params.MonthlyEmailLimit, params.DailyEmailLimit, params.IsActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Company{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update company", err)
		return Company{}, fmt.Errorf("failed to update company: %w", err)
	}
	return company, nil
}

const sqlDeleteCompany = `DELETE FROM companies WHERE id = $1`

// DeleteCompany removes a tenant; dependent rows cascade
func (s *Store) DeleteCompany(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlDeleteCompany, id)
	if err != nil {
		s.logger.Error(ctx, "failed to delete company", err)
		return fmt.Errorf("failed to delete company: %w", err)
	}
	return expectAffected(res)
}

func expectAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
