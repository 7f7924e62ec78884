package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"phishsim-server/internal/authz"
	"phishsim-server/internal/observability"
	"phishsim-server/internal/store"

	"github.com/google/uuid"
)

// CollectedDataStore defines the database operations required by CollectedDataProcessor
type CollectedDataStore interface {
	ListCollectedData(ctx context.Context, params store.ListCollectedDataParams) ([]store.CollectedDataWithCampaign, int, error)
	GetCollectedDataByID(ctx context.Context, id uuid.UUID) (store.CollectedDataWithCampaign, error)
	UpdateCollectedDataStatus(ctx context.Context, id uuid.UUID, status string, flagReason *string) (store.CollectedData, error)
	DeleteCollectedData(ctx context.Context, id uuid.UUID) error
}

var (
	ErrCollectedDataNotFound = errors.New("collected data not found")
	ErrInvalidStatus         = errors.New("invalid moderation status")
)

type CollectedDataProcessor struct {
	store  CollectedDataStore
	logger *observability.Logger
}

func New(store CollectedDataStore, logger *observability.Logger) CollectedDataProcessor {
	return CollectedDataProcessor{store: store, logger: logger}
}

// ListFilter narrows a submission listing. CompanyID is honoured for superadmins only.
type ListFilter struct {
	CompanyID  *uuid.UUID
	CampaignID *uuid.UUID
	Status     *string
	Page       int
	Limit      int
}

type Page struct {
	Items []store.CollectedDataWithCampaign
	Total int
	Page  int
	Limit int
}

func (p *CollectedDataProcessor) List(ctx context.Context, actor authz.Actor, filter ListFilter) (Page, error) {
	if filter.Status != nil && !isValidStatus(*filter.Status) {
		return Page{}, ErrInvalidStatus
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 50
	}

	items, total, err := p.store.ListCollectedData(ctx, store.ListCollectedDataParams{
		CompanyID:  authz.ScopeCompanyID(actor, filter.CompanyID),
		CampaignID: filter.CampaignID,
		Status:     filter.Status,
		Limit:      filter.Limit,
		Offset:     (filter.Page - 1) * filter.Limit,
	})
	if err != nil {
		return Page{}, fmt.Errorf("failed to list collected data: %w", err)
	}
	return Page{Items: items, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (p *CollectedDataProcessor) Get(ctx context.Context, actor authz.Actor, id uuid.UUID) (store.CollectedDataWithCampaign, error) {
	return p.get(ctx, actor, id)
}

// UpdateStatus moves a submission between pending, verified and flagged. A flag reason is
// kept only when flagging.
func (p *CollectedDataProcessor) UpdateStatus(ctx context.Context, actor authz.Actor, id uuid.UUID, status string, reason *string) (store.CollectedData, error) {
	if !isValidStatus(status) {
		return store.CollectedData{}, ErrInvalidStatus
	}
	if _, err := p.get(ctx, actor, id); err != nil {
		return store.CollectedData{}, err
	}

	if status != store.CollectedDataStatusFlagged {
		reason = nil
	} else if reason != nil {
		trimmed := strings.TrimSpace(*reason)
		if trimmed == "" {
			reason = nil
		} else {
			reason = &trimmed
		}
	}

	data, err := p.store.UpdateCollectedDataStatus(ctx, id, status, reason)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.CollectedData{}, ErrCollectedDataNotFound
		}
		return store.CollectedData{}, fmt.Errorf("failed to update collected data status: %w", err)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "collected_data_id", Value: id},
		observability.Field{Key: "status", Value: status},
		observability.Field{Key: "moderator_id", Value: actor.UserID},
	)
	p.logger.Info(ctx, "collected data moderated")
	return data, nil
}

// Delete removes a submission. Only admins and superadmins may delete.
func (p *CollectedDataProcessor) Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	if !actor.HasRole(store.UserRoleAdmin, store.UserRoleSuperadmin) {
		return authz.ErrInsufficientRole
	}
	if _, err := p.get(ctx, actor, id); err != nil {
		return err
	}

	if err := p.store.DeleteCollectedData(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCollectedDataNotFound
		}
		return fmt.Errorf("failed to delete collected data: %w", err)
	}
	return nil
}

func (p *CollectedDataProcessor) get(ctx context.Context, actor authz.Actor, id uuid.UUID) (store.CollectedDataWithCampaign, error) {
	data, err := p.store.GetCollectedDataByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.CollectedDataWithCampaign{}, ErrCollectedDataNotFound
		}
		return store.CollectedDataWithCampaign{}, fmt.Errorf("failed to get collected data: %w", err)
	}
	if err := authz.Enforce(actor, authz.Owned(data.CompanyID), authz.Read, ErrCollectedDataNotFound); err != nil {
		return store.CollectedDataWithCampaign{}, err
	}
	return data, nil
}

func isValidStatus(status string) bool {
	switch status {
	case store.CollectedDataStatusPending, store.CollectedDataStatusVerified, store.CollectedDataStatusFlagged:
		return true
	}
	return false
}
