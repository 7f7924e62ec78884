package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"phishsim-server/internal/authz"
	"phishsim-server/internal/observability"
	"phishsim-server/internal/store"

	"github.com/google/uuid"
)

// LandingPageStore defines the database operations required by LandingPageProcessor
type LandingPageStore interface {
	CreateLandingPage(ctx context.Context, params store.CreateLandingPageParams) (store.LandingPage, error)
	GetLandingPageByID(ctx context.Context, id uuid.UUID) (store.LandingPage, error)
	ListLandingPages(ctx context.Context, companyID *uuid.UUID) ([]store.LandingPage, error)
	UpdateLandingPage(ctx context.Context, id uuid.UUID, params store.UpdateLandingPageParams) (store.LandingPage, error)
	DeleteLandingPage(ctx context.Context, id uuid.UUID) error
}

var (
	ErrLandingPageNotFound = errors.New("landing page not found")
	ErrCompanyRequired     = errors.New("company is required for non-global landing pages")
	ErrInvalidRedirectURL  = errors.New("redirect url must be an absolute http or https url")
)

type LandingPageProcessor struct {
	store  LandingPageStore
	logger *observability.Logger
}

func New(store LandingPageStore, logger *observability.Logger) LandingPageProcessor {
	return LandingPageProcessor{store: store, logger: logger}
}

func resource(page store.LandingPage) authz.Resource {
	return authz.Resource{CompanyID: page.CompanyID, Shared: page.IsGlobal}
}

func (p *LandingPageProcessor) CreateLandingPage(ctx context.Context, actor authz.Actor, params store.CreateLandingPageParams) (store.LandingPage, error) {
	if !actor.IsSuperadmin() {
		if params.IsGlobal {
			return store.LandingPage{}, authz.ErrReadOnly
		}
		params.CompanyID = actor.CompanyID
	}
	if params.IsGlobal {
		params.CompanyID = nil
	} else if params.CompanyID == nil {
		return store.LandingPage{}, ErrCompanyRequired
	}
	if err := validateRedirectURL(params.RedirectURL); err != nil {
		return store.LandingPage{}, err
	}
	params.CreatedBy = &actor.UserID

	page, err := p.store.CreateLandingPage(ctx, params)
	if err != nil {
		return store.LandingPage{}, fmt.Errorf("failed to create landing page: %w", err)
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "landing_page_id", Value: page.ID})
	p.logger.Info(ctx, "landing page created")
	return page, nil
}

func (p *LandingPageProcessor) GetLandingPage(ctx context.Context, actor authz.Actor, id uuid.UUID) (store.LandingPage, error) {
	return p.get(ctx, actor, id, authz.Read)
}

func (p *LandingPageProcessor) ListLandingPages(ctx context.Context, actor authz.Actor, companyID *uuid.UUID) ([]store.LandingPage, error) {
	pages, err := p.store.ListLandingPages(ctx, authz.ScopeCompanyID(actor, companyID))
	if err != nil {
		return nil, fmt.Errorf("failed to list landing pages: %w", err)
	}
	return pages, nil
}

func (p *LandingPageProcessor) UpdateLandingPage(ctx context.Context, actor authz.Actor, id uuid.UUID, params store.UpdateLandingPageParams) (store.LandingPage, error) {
	if _, err := p.get(ctx, actor, id, authz.Write); err != nil {
		return store.LandingPage{}, err
	}
	if params.IsGlobal != nil && !actor.IsSuperadmin() {
		return store.LandingPage{}, authz.ErrReadOnly
	}
	if err := validateRedirectURL(params.RedirectURL); err != nil {
		return store.LandingPage{}, err
	}

	page, err := p.store.UpdateLandingPage(ctx, id, params)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.LandingPage{}, ErrLandingPageNotFound
		}
		return store.LandingPage{}, fmt.Errorf("failed to update landing page: %w", err)
	}
	return page, nil
}

func (p *LandingPageProcessor) DeleteLandingPage(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	if _, err := p.get(ctx, actor, id, authz.Write); err != nil {
		return err
	}

	if err := p.store.DeleteLandingPage(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrLandingPageNotFound
		}
		return fmt.Errorf("failed to delete landing page: %w", err)
	}
	return nil
}

func (p *LandingPageProcessor) get(ctx context.Context, actor authz.Actor, id uuid.UUID, action authz.Action) (store.LandingPage, error) {
	page, err := p.store.GetLandingPageByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.LandingPage{}, ErrLandingPageNotFound
		}
		return store.LandingPage{}, fmt.Errorf("failed to get landing page: %w", err)
	}
	if err := authz.Enforce(actor, resource(page), action, ErrLandingPageNotFound); err != nil {
		return store.LandingPage{}, err
	}
	return page, nil
}

// the tracking endpoints redirect targets here, so only web urls are accepted
func validateRedirectURL(raw *string) error {
	if raw == nil || *raw == "" {
		return nil
	}
	u, err := url.Parse(*raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidRedirectURL
	}
	return nil
}
