package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

type CreateEmailServiceParams struct {
	CompanyID         *uuid.UUID
	Name              string
	Provider          string
	APIKey            *string
	APISecret         *string
	Domain            *string
	Region            *string
	SMTPHost          *string
	SMTPPort          *int
	SMTPUsername      *string
	SMTPPassword      *string
	FromEmail         string
	FromName          *string
	IsActive          bool
	IsPlatformDefault bool
}

type UpdateEmailServiceParams struct {
	Name              *string
	Provider          *string
	APIKey            *string
	APISecret         *string
	Domain            *string
	Region            *string
	SMTPHost          *string
	SMTPPort          *int
	SMTPUsername      *string
	SMTPPassword      *string
	FromEmail         *string
	FromName          *string
	IsActive          *bool
	IsPlatformDefault *bool
}

const emailServiceColumns = `id, company_id, name, provider, api_key, api_secret, domain, region,
    smtp_host, smtp_port, smtp_username, smtp_password, from_email, from_name, is_active,
    is_platform_default, last_used_at, created_at, updated_at`

const sqlCreateEmailService = `
INSERT INTO email_services (company_id, name, provider, api_key, api_secret, domain, region,
    smtp_host, smtp_port, smtp_username, smtp_password, from_email, from_name, is_active, is_platform_default)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
RETURNING ` + emailServiceColumns

func (s *Store) CreateEmailService(ctx context.Context, params CreateEmailServiceParams) (EmailService, error) {
	var service EmailService
	err := s.db.GetContext(ctx, &service, sqlCreateEmailService,
		params.CompanyID, params.Name, params.Provider, params.APIKey, params.APISecret,
		params.Domain, params.Region, params.SMTPHost, params.SMTPPort, params.SMTPUsername,
		params.SMTPPassword, params.FromEmail, params.FromName, params.IsActive, params.IsPlatformDefault)
	if err != nil {
		s.logger.Error(ctx, "failed to create email service", err)
		return EmailService{}, fmt.Errorf("failed to create email service: %w", err)
	}
	return service, nil
}

const sqlGetEmailServiceByID = `SELECT ` + emailServiceColumns + ` FROM email_services WHERE id = $1`

func (s *Store) GetEmailServiceByID(ctx context.Context, id uuid.UUID) (EmailService, error) {
	var service EmailService
	err := s.db.GetContext(ctx, &service, sqlGetEmailServiceByID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return EmailService{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get email service by id", err)
		return EmailService{}, fmt.Errorf("failed to get email service by id: %w", err)
	}
	return service, nil
}

const sqlListEmailServices = `
SELECT ` + emailServiceColumns + `
FROM email_services
WHERE $1::uuid IS NULL OR company_id = $1 OR is_platform_default
ORDER BY is_platform_default DESC, created_at DESC`

// ListEmailServices returns a company's services plus the platform defaults, or all when companyID is nil
func (s *Store) ListEmailServices(ctx context.Context, companyID *uuid.UUID) ([]EmailService, error) {
	services := []EmailService{}
	if err := s.db.SelectContext(ctx, &services, sqlListEmailServices, companyID); err != nil {
		s.logger.Error(ctx, "failed to list email services", err)
		return nil, fmt.Errorf("failed to list email services: %w", err)
	}
	return services, nil
}

const sqlUpdateEmailService = `
UPDATE email_services
SET name = COALESCE($2, name),
    provider = COALESCE($3::email_provider, provider),
    api_key = COALESCE($4, api_key),
    api_secret = COALESCE($5, api_secret),
    domain = COALESCE($6, domain),
    region = COALESCE($7, region),
    smtp_host = COALESCE($8, smtp_host),
    smtp_port = COALESCE($9, smtp_port),
    smtp_username = COALESCE($10, smtp_username),
    smtp_password = COALESCE($11, smtp_password),
    from_email = COALESCE($12, from_email),
    from_name = COALESCE($13, from_name),
    is_active = COALESCE($14, is_active),
    is_platform_default = COALESCE($15, is_platform_default),
    updated_at = NOW()
WHERE id = $1
RETURNING ` + emailServiceColumns

func (s *Store) UpdateEmailService(ctx context.Context, id uuid.UUID, params UpdateEmailServiceParams) (EmailService, error) {
	var service EmailService
	err := s.db.GetContext(ctx, &service, sqlUpdateEmailService, id,
		params.Name, params.Provider, params.APIKey, params.APISecret, params.Domain, params.Region,
		params.SMTPHost, params.SMTPPort, params.SMTPUsername, params.SMTPPassword,
		params.FromEmail, params.FromName, params.IsActive, params.IsPlatformDefault)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return EmailService{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update email service", err)
		return EmailService{}, fmt.Errorf("failed to update email service: %w", err)
	}
	return service, nil
}

const sqlTouchEmailServiceLastUsed = `UPDATE email_services SET last_used_at = NOW() WHERE id = $1`

// TouchEmailServiceLastUsed records that a service just sent mail
func (s *Store) TouchEmailServiceLastUsed(ctx context.Context, id uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, sqlTouchEmailServiceLastUsed, id); err != nil {
		s.logger.Error(ctx, "failed to touch email service last used", err)
		return fmt.Errorf("failed to touch email service last used: %w", err)
	}
	return nil
}

const sqlDeleteEmailService = `DELETE FROM email_services WHERE id = $1`

func (s *Store) DeleteEmailService(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlDeleteEmailService, id)
	if err != nil {
		s.logger.Error(ctx, "failed to delete email service", err)
		return fmt.Errorf("failed to delete email service: %w", err)
	}
	return expectAffected(res)
}
