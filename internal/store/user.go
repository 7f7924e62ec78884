package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type CreateUserParams struct {
	Email        string
	FirstName    *string
	LastName     *string
	Role         string
	CompanyID    *uuid.UUID
	PasswordHash *string
}

type UpdateUserParams struct {
	Email     *string
	FirstName *string
	LastName  *string
	Role      *string
	IsActive  *bool
}

// RegisterCompanyAdminParams describes a self-service signup: a new tenant plus its first admin.
type RegisterCompanyAdminParams struct {
	CompanyName  string
	Email        string
	FirstName    *string
	LastName     *string
	PasswordHash string
}

const userColumns = `id, email, first_name, last_name, role, company_id, is_active,
    password_hash, last_login_at, created_at, updated_at`

const sqlCreateUser = `
INSERT INTO users (email, first_name, last_name, role, company_id, password_hash)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + userColumns

// CreateUser inserts a user, returning ErrConflict when the email is taken
func (s *Store) CreateUser(ctx context.Context, params CreateUserParams) (User, error) {
	return s.createUser(ctx, s.db, params)
}

func (s *Store) createUser(ctx context.Context, q sqlx.QueryerContext, params CreateUserParams) (User, error) {
	var user User
	err := sqlx.GetContext(ctx, q, &user, sqlCreateUser,
		params.Email, params.FirstName, params.LastName, params.Role, params.CompanyID, params.PasswordHash)
	if err != nil {
		if isUniqueViolation(err) {
			return User{}, ErrConflict
		}
		s.logger.Error(ctx, "failed to create user", err)
		return User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// RegisterCompanyAdmin creates a company and its admin user in one transaction
func (s *Store) RegisterCompanyAdmin(ctx context.Context, params RegisterCompanyAdminParams) (Company, User, error) {
	var (
		company Company
		user    User
	)
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		if err := tx.GetContext(ctx, &company, sqlCreateCompany, params.CompanyName, nil, params.Email, nil, nil); err != nil {
			s.logger.Error(ctx, "failed to create company", err)
			return fmt.Errorf("failed to create company: %w", err)
		}

		var err error
		user, err = s.createUser(ctx, tx, CreateUserParams{
			Email:        params.Email,
			FirstName:    params.FirstName,
			LastName:     params.LastName,
			Role:         UserRoleAdmin,
			CompanyID:    &company.ID,
			PasswordHash: &params.PasswordHash,
		})
		return err
	})
	if err != nil {
		return Company{}, User{}, err
	}
	return company, user, nil
}

const sqlGetUserByID = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

// GetUserByID retrieves a user by ID
func (s *Store) GetUserByID(ctx context.Context, id uuid.UUID) (User, error) {
	var user User
	err := s.db.GetContext(ctx, &user, sqlGetUserByID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get user by id", err)
		return User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

const sqlGetUserByEmail = `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1)`

// GetUserByEmail retrieves a user by case-insensitive email
func (s *Store) GetUserByEmail(ctx context.Context, email string) (User, error) {
	var user User
	err := s.db.GetContext(ctx, &user, sqlGetUserByEmail, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get user by email", err)
		return User{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

const sqlListUsers = `
SELECT ` + userColumns + `
FROM users
WHERE $1::uuid IS NULL OR company_id = $1
ORDER BY created_at DESC`

// ListUsers returns the users of a company, or every user when companyID is nil
func (s *Store) ListUsers(ctx context.Context, companyID *uuid.UUID) ([]User, error) {
	users := []User{}
	if err := s.db.SelectContext(ctx, &users, sqlListUsers, companyID); err != nil {
		s.logger.Error(ctx, "failed to list users", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

const sqlListUsersWithCompany = `
SELECT u.id, u.email, u.first_name, u.last_name, u.role, u.company_id, u.is_active,
    u.password_hash, u.last_login_at, u.created_at, u.updated_at,
    c.name AS company_name
FROM users u
LEFT JOIN companies c ON c.id = u.company_id
ORDER BY u.created_at DESC`

// ListUsersWithCompany returns every user with its company name for platform administration
func (s *Store) ListUsersWithCompany(ctx context.Context) ([]UserWithCompany, error) {
	users := []UserWithCompany{}
	if err := s.db.SelectContext(ctx, &users, sqlListUsersWithCompany); err != nil {
		s.logger.Error(ctx, "failed to list users with company", err)
		return nil, fmt.Errorf("failed to list users with company: %w", err)
	}
	return users, nil
}

const sqlUpdateUser = `
UPDATE users
SET email = COALESCE($2, email),
    first_name = COALESCE($3, first_name),
    last_name = COALESCE($4, last_name),
    role = COALESCE($5::user_role, role),
    is_active = COALESCE($6, is_active),
    company_id = CASE WHEN $5::user_role = 'superadmin' THEN NULL ELSE company_id END,
    updated_at = NOW()
WHERE id = $1
RETURNING ` + userColumns

// UpdateUser patches the non-nil fields of a user. Promoting to superadmin detaches the
// user from their company.
func (s *Store) UpdateUser(ctx context.Context, id uuid.UUID, params UpdateUserParams) (User, error) {
	var user User
	err := s.db.GetContext(ctx, &user, sqlUpdateUser, id,
		params.Email, params.FirstName, params.LastName, params.Role, params.IsActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		if isUniqueViolation(err) {
			return User{}, ErrConflict
		}
		s.logger.Error(ctx, "failed to update user", err)
		return User{}, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

const sqlUpdateUserPassword = `UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1`

// UpdateUserPassword replaces a user's password hash
func (s *Store) UpdateUserPassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	res, err := s.db.ExecContext(ctx, sqlUpdateUserPassword, id, passwordHash)
	if err != nil {
		s.logger.Error(ctx, "failed to update user password", err)
		return fmt.Errorf("failed to update user password: %w", err)
	}
	return expectAffected(res)
}

const sqlTouchUserLastLogin = `UPDATE users SET last_login_at = NOW() WHERE id = $1`

// TouchUserLastLogin records a successful login
func (s *Store) TouchUserLastLogin(ctx context.Context, id uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, sqlTouchUserLastLogin, id); err != nil {
		s.logger.Error(ctx, "failed to touch user last login", err)
		return fmt.Errorf("failed to touch user last login: %w", err)
	}
	return nil
}

const sqlDeleteUser = `DELETE FROM users WHERE id = $1`

// DeleteUser removes a user
func (s *Store) DeleteUser(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlDeleteUser, id)
	if err != nil {
		s.logger.Error(ctx, "failed to delete user", err)
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return expectAffected(res)
}
