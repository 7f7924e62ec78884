package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"phishsim-server/internal/authz"
	sessions "phishsim-server/internal/clients/redis"
	"phishsim-server/internal/observability"
	"phishsim-server/internal/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenIssuer = "phishsim-server"

// AuthStore defines the database operations required by AuthProcessor
type AuthStore interface {
	RegisterCompanyAdmin(ctx context.Context, params store.RegisterCompanyAdminParams) (store.Company, store.User, error)
	GetUserByEmail(ctx context.Context, email string) (store.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (store.User, error)
	TouchUserLastLogin(ctx context.Context, id uuid.UUID) error
}

// SessionStore keeps server-side sessions keyed by an opaque id
type SessionStore interface {
	SaveSession(ctx context.Context, sessionID string, userID uuid.UUID, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (uuid.UUID, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserInactive       = errors.New("user is inactive")
	ErrInvalidSession     = errors.New("invalid session")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthConfig struct {
	SessionSecret string
	SessionTTL    time.Duration
}

type AuthProcessor struct {
	store    AuthStore
	sessions SessionStore
	config   AuthConfig
	logger   *observability.Logger
}

func New(store AuthStore, sessions SessionStore, config AuthConfig, logger *observability.Logger) AuthProcessor {
	return AuthProcessor{
		store:    store,
		sessions: sessions,
		config:   config,
		logger:   logger,
	}
}

type RegisterParams struct {
	CompanyName string
	Email       string
	Password    string
	FirstName   *string
	LastName    *string
}

// Session is an issued login: the signed cookie value and who it belongs to.
type Session struct {
	Token   string
	User    store.User
	Company *store.Company
}

type sessionClaims struct {
	jwt.RegisteredClaims
}

// SessionTTL is how long issued sessions stay valid
func (p *AuthProcessor) SessionTTL() time.Duration {
	return p.config.SessionTTL
}

// Register creates a company together with its first admin and signs that admin in.
func (p *AuthProcessor) Register(ctx context.Context, params RegisterParams) (Session, error) {
	email := normalizeEmail(params.Email)
	ctx = observability.WithFields(ctx, observability.Field{Key: "email", Value: email})

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		p.logger.Error(ctx, "failed to hash password", err)
		return Session{}, fmt.Errorf("failed to hash password: %w", err)
	}

	company, user, err := p.store.RegisterCompanyAdmin(ctx, store.RegisterCompanyAdminParams{
		CompanyName:  params.CompanyName,
		Email:        email,
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		PasswordHash: string(hashedPassword),
	})
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return Session{}, ErrEmailAlreadyExists
		}
		p.logger.Error(ctx, "failed to register company admin", err)
		return Session{}, fmt.Errorf("failed to register: %w", err)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: user.ID},
		observability.Field{Key: "company_id", Value: company.ID},
	)
	p.logger.Info(ctx, "registered company admin")

	token, err := p.startSession(ctx, user.ID)
	if err != nil {
		return Session{}, err
	}
	return Session{Token: token, User: user, Company: &company}, nil
}

// Login verifies credentials and opens a new session.
func (p *AuthProcessor) Login(ctx context.Context, email, password string) (Session, error) {
	email = normalizeEmail(email)
	ctx = observability.WithFields(ctx, observability.Field{Key: "email", Value: email})

	user, err := p.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Session{}, ErrInvalidCredentials
		}
		p.logger.Error(ctx, "failed to get user by email", err)
		return Session{}, fmt.Errorf("failed to get user: %w", err)
	}

	if user.PasswordHash == nil {
		return Session{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)); err != nil {
		return Session{}, ErrInvalidCredentials
	}
	if !user.IsActive {
		return Session{}, ErrUserInactive
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: user.ID})
	if err := p.store.TouchUserLastLogin(ctx, user.ID); err != nil {
		p.logger.Error(ctx, "failed to record last login", err)
	}

	token, err := p.startSession(ctx, user.ID)
	if err != nil {
		return Session{}, err
	}
	return Session{Token: token, User: user}, nil
}

// Logout ends the session behind token. Unknown or malformed tokens are ignored.
func (p *AuthProcessor) Logout(ctx context.Context, token string) error {
	sessionID, err := p.parseToken(token)
	if err != nil {
		return nil
	}
	if err := p.sessions.DeleteSession(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// ResolveSession turns a session cookie into the actor it authenticates. The user must
// still exist and be active.
func (p *AuthProcessor) ResolveSession(ctx context.Context, token string) (authz.Actor, error) {
	sessionID, err := p.parseToken(token)
	if err != nil {
		return authz.Actor{}, ErrInvalidSession
	}

	userID, err := p.sessions.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			return authz.Actor{}, ErrInvalidSession
		}
		return authz.Actor{}, fmt.Errorf("failed to resolve session: %w", err)
	}

	user, err := p.store.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return authz.Actor{}, ErrInvalidSession
		}
		p.logger.Error(ctx, "failed to get session user", err)
		return authz.Actor{}, fmt.Errorf("failed to get session user: %w", err)
	}
	if !user.IsActive {
		return authz.Actor{}, ErrInvalidSession
	}

	return authz.Actor{UserID: user.ID, Role: user.Role, CompanyID: user.CompanyID}, nil
}

// Me returns the actor's own user row
func (p *AuthProcessor) Me(ctx context.Context, actor authz.Actor) (store.User, error) {
	user, err := p.store.GetUserByID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.User{}, ErrUserNotFound
		}
		p.logger.Error(ctx, "failed to get user", err)
		return store.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (p *AuthProcessor) startSession(ctx context.Context, userID uuid.UUID) (string, error) {
	sessionID := uuid.NewString()
	if err := p.sessions.SaveSession(ctx, sessionID, userID, p.config.SessionTTL); err != nil {
		return "", fmt.Errorf("failed to save session: %w", err)
	}

	token, err := p.signToken(sessionID, time.Now())
	if err != nil {
		p.logger.Error(ctx, "failed to sign session token", err)
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return token, nil
}

func (p *AuthProcessor) signToken(sessionID string, now time.Time) (string, error) {
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sessionID,
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.config.SessionTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(p.config.SessionSecret))
}

// parseToken validates the signature and expiry and returns the session id
func (p *AuthProcessor) parseToken(token string) (string, error) {
	if token == "" {
		return "", ErrInvalidSession
	}

	var claims sessionClaims
	t, err := jwt.ParseWithClaims(token, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(p.config.SessionSecret), nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil || !t.Valid || claims.Subject == "" {
		return "", ErrInvalidSession
	}
	return claims.Subject, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
