package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

type CreateTemplateParams struct {
	CompanyID   *uuid.UUID
	Name        string
	Description *string
	Category    *string
	Subject     string
	HTMLContent string
	TextContent *string
	Variables   []string
	IsGlobal    bool
	CreatedBy   *uuid.UUID
}

type UpdateTemplateParams struct {
	Name        *string
	Description *string
	Category    *string
	Subject     *string
	HTMLContent *string
	TextContent *string
	Variables   *[]string
	IsGlobal    *bool
}

const templateColumns = `id, company_id, name, description, category, subject, html_content,
    text_content, variables, is_global, usage_count, created_by, created_at, updated_at`

const sqlCreateTemplate = `
INSERT INTO templates (company_id, name, description, category, subject, html_content, text_content, variables, is_global, created_by)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + templateColumns

// CreateTemplate creates an email template
func (s *Store) CreateTemplate(ctx context.Context, params CreateTemplateParams) (Template, error) {
	var template Template
	err := s.db.GetContext(ctx, &template, sqlCreateTemplate,
		params.CompanyID, params.Name, params.Description, params.Category, params.Subject,
		params.HTMLContent, params.TextContent, StringArray(params.Variables), params.IsGlobal, params.CreatedBy)
	if err != nil {
		s.logger.Error(ctx, "failed to create template", err)
		return Template{}, fmt.Errorf("failed to create template: %w", err)
	}
	return template, nil
}

const sqlGetTemplateByID = `SELECT ` + templateColumns + ` FROM templates WHERE id = $1`

// GetTemplateByID retrieves a template by ID
func (s *Store) GetTemplateByID(ctx context.Context, id uuid.UUID) (Template, error) {
	var template Template
	err := s.db.GetContext(ctx, &template, sqlGetTemplateByID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Template{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get template by id", err)
		return Template{}, fmt.Errorf("failed to get template by id: %w", err)
	}
	return template, nil
}

const sqlListTemplates = `
SELECT ` + templateColumns + `
FROM templates
WHERE $1::uuid IS NULL OR company_id = $1 OR is_global
ORDER BY is_global DESC, created_at DESC`

// ListTemplates returns a company's templates plus global ones, or every template when companyID is nil
func (s *Store) ListTemplates(ctx context.Context, companyID *uuid.UUID) ([]Template, error) {
	templates := []Template{}
	if err := s.db.SelectContext(ctx, &templates, sqlListTemplates, companyID); err != nil {
		s.logger.Error(ctx, "failed to list templates", err)
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	return templates, nil
}

const sqlUpdateTemplate = `
UPDATE templates
SET name = COALESCE($2, name),
    description = COALESCE($3, description),
    category = COALESCE($4, category),
    subject = COALESCE($5, subject),
    html_content = COALESCE($6, html_content),
    text_content = COALESCE($7, text_content),
    variables = COALESCE($8::text[], variables),
    is_global = COALESCE($9, is_global),
    updated_at = NOW()
WHERE id = $1
RETURNING ` + templateColumns

// UpdateTemplate patches the non-nil fields of a template
func (s *Store) UpdateTemplate(ctx context.Context, id uuid.UUID, params UpdateTemplateParams) (Template, error) {
	var variables interface{}
	if params.Variables != nil {
		variables = StringArray(*params.Variables)
	}

	var template Template
	err := s.db.GetContext(ctx, &template, sqlUpdateTemplate, id,
		params.Name, params.Description, params.Category, params.Subject,
		params.HTMLContent, params.TextContent, variables, params.IsGlobal)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Template{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update template", err)
		return Template{}, fmt.Errorf("failed to update template: %w", err)
	}
	return template, nil
}

const sqlIncrementTemplateUsage = `UPDATE templates SET usage_count = usage_count + 1 WHERE id = $1`

// IncrementTemplateUsage bumps the usage counter when a campaign adopts the template
func (s *Store) IncrementTemplateUsage(ctx context.Context, id uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, sqlIncrementTemplateUsage, id); err != nil {
		s.logger.Error(ctx, "failed to increment template usage", err)
		return fmt.Errorf("failed to increment template usage: %w", err)
	}
	return nil
}

const sqlDeleteTemplate = `DELETE FROM templates WHERE id = $1`

// DeleteTemplate removes a template
func (s *Store) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlDeleteTemplate, id)
	if err != nil {
		s.logger.Error(ctx, "failed to delete template", err)
		return fmt.Errorf("failed to delete template: %w", err)
	}
	return expectAffected(res)
}
