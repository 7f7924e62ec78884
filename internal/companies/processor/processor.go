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

// CompanyStore defines the database operations required by CompanyProcessor
type CompanyStore interface {
	CreateCompany(ctx context.Context, params store.CreateCompanyParams) (store.Company, error)
	GetCompanyByID(ctx context.Context, id uuid.UUID) (store.Company, error)
	ListCompanies(ctx context.Context) ([]store.Company, error)
	UpdateCompany(ctx context.Context, id uuid.UUID, params store.UpdateCompanyParams) (store.Company, error)
	DeleteCompany(ctx context.Context, id uuid.UUID) error
}

var ErrCompanyNotFound = errors.New("company not found")

type CompanyProcessor struct {
	store  CompanyStore
	logger *observability.Logger
}

func New(store CompanyStore, logger *observability.Logger) CompanyProcessor {
	return CompanyProcessor{store: store, logger: logger}
}

// CreateCompany provisions a tenant. Only superadmins create companies.
func (p *CompanyProcessor) CreateCompany(ctx context.Context, actor authz.Actor, params store.CreateCompanyParams) (store.Company, error) {
	if !actor.IsSuperadmin() {
		return store.Company{}, authz.ErrInsufficientRole
	}

	company, err := p.store.CreateCompany(ctx, params)
	if err != nil {
		p.logger.Error(ctx, "failed to create company", err)
		return store.Company{}, fmt.Errorf("failed to create company: %w", err)
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "company_id", Value: company.ID})
	p.logger.Info(ctx, "company created")
	return company, nil
}

func (p *CompanyProcessor) GetCompany(ctx context.Context, actor authz.Actor, id uuid.UUID) (store.Company, error) {
	if err := authz.Enforce(actor, authz.Owned(id), authz.Read, ErrCompanyNotFound); err != nil {
		return store.Company{}, err
	}

	company, err := p.store.GetCompanyByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Company{}, ErrCompanyNotFound
		}
		return store.Company{}, fmt.Errorf("failed to get company: %w", err)
	}
	return company, nil
}

// ListCompanies returns every company for superadmins and only the actor's own otherwise.
func (p *CompanyProcessor) ListCompanies(ctx context.Context, actor authz.Actor) ([]store.Company, error) {
	if !actor.IsSuperadmin() {
		if actor.CompanyID == nil {
			return []store.Company{}, nil
		}
		company, err := p.GetCompany(ctx, actor, *actor.CompanyID)
		if err != nil {
			if errors.Is(err, ErrCompanyNotFound) {
				return []store.Company{}, nil
			}
			return nil, err
		}
		return []store.Company{company}, nil
	}

	companies, err := p.store.ListCompanies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return companies, nil
}

func (p *CompanyProcessor) UpdateCompany(ctx context.Context, actor authz.Actor, id uuid.UUID, params store.UpdateCompanyParams) (store.Company, error) {
	if err := authz.Enforce(actor, authz.Owned(id), authz.Write, ErrCompanyNotFound); err != nil {
		return store.Company{}, err
	}

	company, err := p.store.UpdateCompany(ctx, id, params)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Company{}, ErrCompanyNotFound
		}
		return store.Company{}, fmt.Errorf("failed to update company: %w", err)
	}
	return company, nil
}

// DeleteCompany removes a tenant and, through cascades, everything it owns.
func (p *CompanyProcessor) DeleteCompany(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	if !actor.IsSuperadmin() {
		return authz.ErrInsufficientRole
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "company_id", Value: id})
	if err := p.store.DeleteCompany(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCompanyNotFound
		}
		return fmt.Errorf("failed to delete company: %w", err)
	}

	p.logger.Info(ctx, "company deleted")
	return nil
}
