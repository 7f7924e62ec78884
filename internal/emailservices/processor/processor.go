package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"

	"phishsim-server/internal/authz"
	"phishsim-server/internal/clients/mail"
	"phishsim-server/internal/observability"
	"phishsim-server/internal/store"

	"github.com/google/uuid"
)

// EmailServiceStore defines the database operations required by EmailServiceProcessor
type EmailServiceStore interface {
	CreateEmailService(ctx context.Context, params store.CreateEmailServiceParams) (store.EmailService, error)
	GetEmailServiceByID(ctx context.Context, id uuid.UUID) (store.EmailService, error)
	ListEmailServices(ctx context.Context, companyID *uuid.UUID) ([]store.EmailService, error)
	UpdateEmailService(ctx context.Context, id uuid.UUID, params store.UpdateEmailServiceParams) (store.EmailService, error)
	TouchEmailServiceLastUsed(ctx context.Context, id uuid.UUID) error
	DeleteEmailService(ctx context.Context, id uuid.UUID) error
}

// Mailer delivers a single message through a provider account
type Mailer interface {
	SendEmail(ctx context.Context, msg mail.Message) (string, error)
}

// MailerFactory builds a Mailer for one service's API key
type MailerFactory func(apiKey string) (Mailer, error)

var (
	ErrEmailServiceNotFound = errors.New("email service not found")
	ErrCompanyRequired      = errors.New("company is required for non-default email services")
	ErrProviderNotSupported = errors.New("provider does not support test sends")
	ErrMissingCredentials   = errors.New("email service has no api key")
	ErrEmailServiceInactive = errors.New("email service is inactive")
	ErrTestSendFailed       = errors.New("test email could not be sent")
)

type EmailServiceProcessor struct {
	store     EmailServiceStore
	newMailer MailerFactory
	logger    *observability.Logger
}

func New(store EmailServiceStore, newMailer MailerFactory, logger *observability.Logger) EmailServiceProcessor {
	return EmailServiceProcessor{store: store, newMailer: newMailer, logger: logger}
}

// NewResendMailerFactory returns a factory producing Resend clients
func NewResendMailerFactory(logger *observability.Logger) MailerFactory {
	return func(apiKey string) (Mailer, error) {
		client, err := mail.NewResendClient(apiKey, logger)
		if err != nil {
			return nil, err
		}
		return client, nil
	}
}

func resource(svc store.EmailService) authz.Resource {
	return authz.Resource{CompanyID: svc.CompanyID, Shared: svc.IsPlatformDefault}
}

func (p *EmailServiceProcessor) CreateEmailService(ctx context.Context, actor authz.Actor, params store.CreateEmailServiceParams) (store.EmailService, error) {
	if !actor.IsSuperadmin() {
		if params.IsPlatformDefault {
			return store.EmailService{}, authz.ErrReadOnly
		}
		params.CompanyID = actor.CompanyID
	}
	if params.IsPlatformDefault {
		params.CompanyID = nil
	} else if params.CompanyID == nil {
		return store.EmailService{}, ErrCompanyRequired
	}

	svc, err := p.store.CreateEmailService(ctx, params)
	if err != nil {
		return store.EmailService{}, fmt.Errorf("failed to create email service: %w", err)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_service_id", Value: svc.ID},
		observability.Field{Key: "provider", Value: svc.Provider},
	)
	p.logger.Info(ctx, "email service created")
	return svc, nil
}

func (p *EmailServiceProcessor) GetEmailService(ctx context.Context, actor authz.Actor, id uuid.UUID) (store.EmailService, error) {
	return p.get(ctx, actor, id, authz.Read)
}

// ListEmailServices returns the scoped company's services plus the platform defaults
func (p *EmailServiceProcessor) ListEmailServices(ctx context.Context, actor authz.Actor, companyID *uuid.UUID) ([]store.EmailService, error) {
	services, err := p.store.ListEmailServices(ctx, authz.ScopeCompanyID(actor, companyID))
	if err != nil {
		return nil, fmt.Errorf("failed to list email services: %w", err)
	}
	return services, nil
}

func (p *EmailServiceProcessor) UpdateEmailService(ctx context.Context, actor authz.Actor, id uuid.UUID, params store.UpdateEmailServiceParams) (store.EmailService, error) {
	if _, err := p.get(ctx, actor, id, authz.Write); err != nil {
		return store.EmailService{}, err
	}
	if params.IsPlatformDefault != nil && !actor.IsSuperadmin() {
		return store.EmailService{}, authz.ErrReadOnly
	}

	svc, err := p.store.UpdateEmailService(ctx, id, params)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.EmailService{}, ErrEmailServiceNotFound
		}
		return store.EmailService{}, fmt.Errorf("failed to update email service: %w", err)
	}
	return svc, nil
}

func (p *EmailServiceProcessor) DeleteEmailService(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	if _, err := p.get(ctx, actor, id, authz.Write); err != nil {
		return err
	}

	if err := p.store.DeleteEmailService(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrEmailServiceNotFound
		}
		return fmt.Errorf("failed to delete email service: %w", err)
	}
	return nil
}

// SendTestEmail delivers a fixed test message through the service and records its use.
// Only Resend services can be exercised.
func (p *EmailServiceProcessor) SendTestEmail(ctx context.Context, actor authz.Actor, id uuid.UUID, to string) (string, error) {
	svc, err := p.get(ctx, actor, id, authz.Write)
	if err != nil {
		return "", err
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_service_id", Value: svc.ID},
		observability.Field{Key: "provider", Value: svc.Provider},
	)

	if svc.Provider != store.EmailProviderResend {
		return "", ErrProviderNotSupported
	}
	if !svc.IsActive {
		return "", ErrEmailServiceInactive
	}
	if svc.APIKey == nil || *svc.APIKey == "" {
		return "", ErrMissingCredentials
	}

	mailer, err := p.newMailer(*svc.APIKey)
	if err != nil {
		p.logger.Error(ctx, "failed to create mailer", err)
		return "", fmt.Errorf("failed to create mailer: %w", err)
	}

	from := svc.FromEmail
	if svc.FromName != nil && *svc.FromName != "" {
		from = fmt.Sprintf("%s <%s>", *svc.FromName, svc.FromEmail)
	}

	messageID, err := mailer.SendEmail(ctx, mail.Message{
		From:    from,
		To:      to,
		Subject: "Test email from " + svc.Name,
		HTML:    "<p>This is a test email confirming that the <strong>" + svc.Name + "</strong> email service is configured correctly.</p>",
		Text:    "This is a test email confirming that the " + svc.Name + " email service is configured correctly.",
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTestSendFailed, err)
	}

	if err := p.store.TouchEmailServiceLastUsed(ctx, svc.ID); err != nil {
		p.logger.Error(ctx, "failed to record email service use", err)
	}

	p.logger.Info(ctx, "test email sent")
	return messageID, nil
}

func (p *EmailServiceProcessor) get(ctx context.Context, actor authz.Actor, id uuid.UUID, action authz.Action) (store.EmailService, error) {
	svc, err := p.store.GetEmailServiceByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.EmailService{}, ErrEmailServiceNotFound
		}
		return store.EmailService{}, fmt.Errorf("failed to get email service: %w", err)
	}
	if err := authz.Enforce(actor, resource(svc), action, ErrEmailServiceNotFound); err != nil {
		return store.EmailService{}, err
	}
	return svc, nil
}
