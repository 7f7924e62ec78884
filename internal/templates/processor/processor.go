package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"

	"phishsim-server/internal/authz"
	"phishsim-server/internal/observability"
	"phishsim-server/internal/store"

	"github.com/google/uuid"
)

// TemplateStore defines the database operations required by TemplateProcessor
type TemplateStore interface {
	CreateTemplate(ctx context.Context, params store.CreateTemplateParams) (store.Template, error)
	GetTemplateByID(ctx context.Context, id uuid.UUID) (store.Template, error)
	ListTemplates(ctx context.Context, companyID *uuid.UUID) ([]store.Template, error)
	UpdateTemplate(ctx context.Context, id uuid.UUID, params store.UpdateTemplateParams) (store.Template, error)
	DeleteTemplate(ctx context.Context, id uuid.UUID) error
}

var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrCompanyRequired  = errors.New("company is required for non-global templates")
)

type TemplateProcessor struct {
	store  TemplateStore
	logger *observability.Logger
}

func New(store TemplateStore, logger *observability.Logger) TemplateProcessor {
	return TemplateProcessor{store: store, logger: logger}
}

// Resource describes a template's ownership for access checks
func Resource(t store.Template) authz.Resource {
	return authz.Resource{CompanyID: t.CompanyID, Shared: t.IsGlobal}
}

// CreateTemplate stores a new template. Only superadmins publish global templates; tenant
// templates always belong to the actor's company.
func (p *TemplateProcessor) CreateTemplate(ctx context.Context, actor authz.Actor, params store.CreateTemplateParams) (store.Template, error) {
	if !actor.IsSuperadmin() {
		if params.IsGlobal {
			return store.Template{}, authz.ErrReadOnly
		}
		params.CompanyID = actor.CompanyID
	}
	if params.IsGlobal {
		params.CompanyID = nil
	} else if params.CompanyID == nil {
		return store.Template{}, ErrCompanyRequired
	}
	params.CreatedBy = &actor.UserID

	template, err := p.store.CreateTemplate(ctx, params)
	if err != nil {
		return store.Template{}, fmt.Errorf("failed to create template: %w", err)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "template_id", Value: template.ID},
		observability.Field{Key: "is_global", Value: template.IsGlobal},
	)
	p.logger.Info(ctx, "template created")
	return template, nil
}

func (p *TemplateProcessor) GetTemplate(ctx context.Context, actor authz.Actor, id uuid.UUID) (store.Template, error) {
	return p.get(ctx, actor, id, authz.Read)
}

// ListTemplates returns the scoped company's templates plus every global template
func (p *TemplateProcessor) ListTemplates(ctx context.Context, actor authz.Actor, companyID *uuid.UUID) ([]store.Template, error) {
	templates, err := p.store.ListTemplates(ctx, authz.ScopeCompanyID(actor, companyID))
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	return templates, nil
}

func (p *TemplateProcessor) UpdateTemplate(ctx context.Context, actor authz.Actor, id uuid.UUID, params store.UpdateTemplateParams) (store.Template, error) {
	if _, err := p.get(ctx, actor, id, authz.Write); err != nil {
		return store.Template{}, err
	}
	if params.IsGlobal != nil && !actor.IsSuperadmin() {
		return store.Template{}, authz.ErrReadOnly
	}

	template, err := p.store.UpdateTemplate(ctx, id, params)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Template{}, ErrTemplateNotFound
		}
		return store.Template{}, fmt.Errorf("failed to update template: %w", err)
	}
	return template, nil
}

func (p *TemplateProcessor) DeleteTemplate(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	if _, err := p.get(ctx, actor, id, authz.Write); err != nil {
		return err
	}

	if err := p.store.DeleteTemplate(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTemplateNotFound
		}
		return fmt.Errorf("failed to delete template: %w", err)
	}
	return nil
}

func (p *TemplateProcessor) get(ctx context.Context, actor authz.Actor, id uuid.UUID, action authz.Action) (store.Template, error) {
	template, err := p.store.GetTemplateByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Template{}, ErrTemplateNotFound
		}
		return store.Template{}, fmt.Errorf("failed to get template: %w", err)
	}
	if err := authz.Enforce(actor, Resource(template), action, ErrTemplateNotFound); err != nil {
		return store.Template{}, err
	}
	return template, nil
}
