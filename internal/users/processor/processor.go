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
	"golang.org/x/crypto/bcrypt"
)

// UserStore defines the database operations required by UserProcessor
type UserStore interface {
	CreateUser(ctx context.Context, params store.CreateUserParams) (store.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (store.User, error)
	ListUsers(ctx context.Context, companyID *uuid.UUID) ([]store.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, params store.UpdateUserParams) (store.User, error)
	UpdateUserPassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrCompanyRequired     = errors.New("company is required for non-superadmin users")
	ErrCannotDeleteSelf    = errors.New("users cannot delete themselves")
	ErrInvalidPassword     = errors.New("current password is incorrect")
	ErrCannotModifyOwnRole = errors.New("users cannot change their own role")
)

type UserProcessor struct {
	store  UserStore
	logger *observability.Logger
}

func New(store UserStore, logger *observability.Logger) UserProcessor {
	return UserProcessor{store: store, logger: logger}
}

type CreateUserParams struct {
	Email     string
	Password  *string
	FirstName *string
	LastName  *string
	Role      string
	CompanyID *uuid.UUID
}

// CreateUser adds a user. Admins may only create admins and managers inside their own
// company; superadmins choose the company and may create other superadmins.
func (p *UserProcessor) CreateUser(ctx context.Context, actor authz.Actor, params CreateUserParams) (store.User, error) {
	companyID := params.CompanyID
	if !actor.IsSuperadmin() {
		if params.Role == store.UserRoleSuperadmin {
			return store.User{}, authz.ErrInsufficientRole
		}
		companyID = actor.CompanyID
	}

	switch {
	case params.Role == store.UserRoleSuperadmin:
		companyID = nil
	case companyID == nil:
		return store.User{}, ErrCompanyRequired
	}

	var passwordHash *string
	if params.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*params.Password), bcrypt.DefaultCost)
		if err != nil {
			p.logger.Error(ctx, "failed to hash password", err)
			return store.User{}, fmt.Errorf("failed to hash password: %w", err)
		}
		h := string(hash)
		passwordHash = &h
	}

	user, err := p.store.CreateUser(ctx, store.CreateUserParams{
		Email:        strings.ToLower(strings.TrimSpace(params.Email)),
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		Role:         params.Role,
		CompanyID:    companyID,
		PasswordHash: passwordHash,
	})
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return store.User{}, ErrEmailAlreadyExists
		}
		return store.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "created_user_id", Value: user.ID},
		observability.Field{Key: "created_user_role", Value: user.Role},
	)
	p.logger.Info(ctx, "user created")
	return user, nil
}

func (p *UserProcessor) GetUser(ctx context.Context, actor authz.Actor, id uuid.UUID) (store.User, error) {
	user, err := p.store.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.User{}, ErrUserNotFound
		}
		return store.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	if err := authz.Enforce(actor, userResource(user), authz.Read, ErrUserNotFound); err != nil {
		return store.User{}, err
	}
	return user, nil
}

// ListUsers lists users of one company, or of all companies for a superadmin passing nil.
func (p *UserProcessor) ListUsers(ctx context.Context, actor authz.Actor, companyID *uuid.UUID) ([]store.User, error) {
	scope := authz.ScopeCompanyID(actor, companyID)
	if scope == nil && !actor.IsSuperadmin() {
		return []store.User{}, nil
	}

	users, err := p.store.ListUsers(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (p *UserProcessor) UpdateUser(ctx context.Context, actor authz.Actor, id uuid.UUID, params store.UpdateUserParams) (store.User, error) {
	target, err := p.getWritable(ctx, actor, id)
	if err != nil {
		return store.User{}, err
	}

	if params.Role != nil {
		if *params.Role == store.UserRoleSuperadmin && !actor.IsSuperadmin() {
			return store.User{}, authz.ErrInsufficientRole
		}
		if id == actor.UserID && *params.Role != actor.Role {
			return store.User{}, ErrCannotModifyOwnRole
		}
		// a demoted superadmin needs a company to land in
		if *params.Role != store.UserRoleSuperadmin && target.CompanyID == nil {
			return store.User{}, ErrCompanyRequired
		}
	}
	if params.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*params.Email))
		params.Email = &email
	}

	user, err := p.store.UpdateUser(ctx, id, params)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return store.User{}, ErrUserNotFound
		case errors.Is(err, store.ErrConflict):
			return store.User{}, ErrEmailAlreadyExists
		}
		return store.User{}, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// ChangePassword sets a new password. Users changing their own password must prove the
// current one; admins resetting someone in their company and superadmins need not.
func (p *UserProcessor) ChangePassword(ctx context.Context, actor authz.Actor, id uuid.UUID, currentPassword *string, newPassword string) error {
	var (
		user store.User
		err  error
	)
	if id == actor.UserID {
		user, err = p.store.GetUserByID(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("failed to get user: %w", err)
		}
		if user.PasswordHash != nil {
			if currentPassword == nil || bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(*currentPassword)) != nil {
				return ErrInvalidPassword
			}
		}
	} else {
		if !actor.HasRole(store.UserRoleAdmin, store.UserRoleSuperadmin) {
			return authz.ErrInsufficientRole
		}
		if _, err := p.getWritable(ctx, actor, id); err != nil {
			return err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		p.logger.Error(ctx, "failed to hash password", err)
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := p.store.UpdateUserPassword(ctx, id, string(hash)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to update password: %w", err)
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "target_user_id", Value: id})
	p.logger.Info(ctx, "password changed")
	return nil
}

func (p *UserProcessor) DeleteUser(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	if id == actor.UserID {
		return ErrCannotDeleteSelf
	}
	if _, err := p.getWritable(ctx, actor, id); err != nil {
		return err
	}

	if err := p.store.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func (p *UserProcessor) getWritable(ctx context.Context, actor authz.Actor, id uuid.UUID) (store.User, error) {
	user, err := p.store.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.User{}, ErrUserNotFound
		}
		return store.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	if err := authz.Enforce(actor, userResource(user), authz.Write, ErrUserNotFound); err != nil {
		return store.User{}, err
	}
	return user, nil
}

// Superadmins are never owned by a company, so only other superadmins can see or change
// them, even when a stale company_id is still set on the row.
func userResource(user store.User) authz.Resource {
	if user.Role == store.UserRoleSuperadmin {
		return authz.Resource{}
	}
	return authz.Resource{CompanyID: user.CompanyID}
}
