package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

type CreateLandingPageParams struct {
	CompanyID          *uuid.UUID
	Name               string
	Description        *string
	HTMLContent        string
	CaptureCredentials bool
	CapturePasswords   bool
	RedirectURL        *string
	IsGlobal           bool
	CreatedBy          *uuid.UUID
}

type UpdateLandingPageParams struct {
	Name               *string
	Description        *string
	HTMLContent        *string
	CaptureCredentials *bool
	CapturePasswords   *bool
	RedirectURL        *string
	IsGlobal           *bool
}

const landingPageColumns = `id, company_id, name, description, html_content, capture_credentials,
    capture_passwords, redirect_url, is_global, created_by, created_at, updated_at`

const sqlCreateLandingPage = `
INSERT INTO landing_pages (company_id, name, description, html_content, capture_credentials, capture_passwords, redirect_url, is_global, created_by)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + landingPageColumns

func (s *Store) CreateLandingPage(ctx context.Context, params CreateLandingPageParams) (LandingPage, error) {
	var page LandingPage
	err := s.db.GetContext(ctx, &page, sqlCreateLandingPage,
		params.CompanyID, params.Name, params.Description, params.HTMLContent,
		params.CaptureCredentials, params.CapturePasswords, params.RedirectURL, params.IsGlobal, params.CreatedBy)
	if err != nil {
		s.logger.Error(ctx, "failed to create landing page", err)
		return LandingPage{}, fmt.Errorf("failed to create landing page: %w", err)
	}
	return page, nil
}

const sqlGetLandingPageByID = `SELECT ` + landingPageColumns + ` FROM landing_pages WHERE id = $1`

func (s *Store) GetLandingPageByID(ctx context.Context, id uuid.UUID) (LandingPage, error) {
	var page LandingPage
	err := s.db.GetContext(ctx, &page, sqlGetLandingPageByID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return LandingPage{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get landing page by id", err)
		return LandingPage{}, fmt.Errorf("failed to get landing page by id: %w", err)
	}
	return page, nil
}

const sqlListLandingPages = `
SELECT ` + landingPageColumns + `
FROM landing_pages
WHERE $1::uuid IS NULL OR company_id = $1 OR is_global
ORDER BY is_global DESC, created_at DESC`

// ListLandingPages returns a company's pages plus global ones, or every page when companyID is nil
func (s *Store) ListLandingPages(ctx context.Context, companyID *uuid.UUID) ([]LandingPage, error) {
	pages := []LandingPage{}
	if err := s.db.SelectContext(ctx, &pages, sqlListLandingPages, companyID); err != nil {
		s.logger.Error(ctx, "failed to list landing pages", err)
		return nil, fmt.Errorf("failed to list landing pages: %w", err)
	}
	return pages, nil
}

const sqlUpdateLandingPage = `
UPDATE landing_pages
SET name = COALESCE($2, name),
    description = COALESCE($3, description),
    html_content = COALESCE($4, html_content),
    capture_credentials = COALESCE($5, capture_credentials),
    capture_passwords = COALESCE($6, capture_passwords),
    redirect_url = COALESCE($7, redirect_url),
    is_global = COALESCE($8, is_global),
    updated_at = NOW()
WHERE id = $1
RETURNING ` + landingPageColumns

func (s *Store) UpdateLandingPage(ctx context.Context, id uuid.UUID, params UpdateLandingPageParams) (LandingPage, error) {
	var page LandingPage
	err := s.db.GetContext(ctx, &page, sqlUpdateLandingPage, id,
		params.Name, params.Description, params.HTMLContent, params.CaptureCredentials,
		params.CapturePasswords, params.RedirectURL, params.IsGlobal)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return LandingPage{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update landing page", err)
		return LandingPage{}, fmt.Errorf("failed to update landing page: %w", err)
	}
	return page, nil
}

const sqlDeleteLandingPage = `DELETE FROM landing_pages WHERE id = $1`

func (s *Store) DeleteLandingPage(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlDeleteLandingPage, id)
	if err != nil {
		s.logger.Error(ctx, "failed to delete landing page", err)
		return fmt.Errorf("failed to delete landing page: %w", err)
	}
	return expectAffected(res)
}
