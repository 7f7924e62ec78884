package handler

import (
	"context"
	"errors"
	"net/http"

	"phishsim-server/internal/apierrors"
	"phishsim-server/internal/auth/processor"
	"phishsim-server/internal/authz"
	"phishsim-server/internal/observability"

	"github.com/gin-gonic/gin"
)

// SessionCookieName carries the signed session token
const SessionCookieName = "phishsim_session"

type Handler struct {
	authProcessor processor.AuthProcessor
	secureCookie  bool
	logger        *observability.Logger
}

type RegisterRequest struct {
	CompanyName string  `json:"company_name" binding:"required,min=1,max=255"`
	Email       string  `json:"email" binding:"required,email"`
	Password    string  `json:"password" binding:"required,min=8"`
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func New(authProcessor processor.AuthProcessor, secureCookie bool, logger *observability.Logger) Handler {
	return Handler{authProcessor: authProcessor, secureCookie: secureCookie, logger: logger}
}

// HandleRegister creates a company and its admin, then signs the admin in
func (h *Handler) HandleRegister(c *gin.Context) {
	ctx := c.Request.Context()

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	session, err := h.authProcessor.Register(ctx, processor.RegisterParams{
		CompanyName: req.CompanyName,
		Email:       req.Email,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.setSessionCookie(c, session.Token)
	c.JSON(http.StatusCreated, gin.H{
		"user":    session.User,
		"company": session.Company,
	})
}

// HandleLogin verifies credentials and sets the session cookie
func (h *Handler) HandleLogin(c *gin.Context) {
	ctx := c.Request.Context()

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	session, err := h.authProcessor.Login(ctx, req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.setSessionCookie(c, session.Token)
	c.JSON(http.StatusOK, gin.H{"user": session.User})
}

// HandleLogout ends the current session. It succeeds even without a session.
func (h *Handler) HandleLogout(c *gin.Context) {
	ctx := c.Request.Context()

	if token, err := c.Cookie(SessionCookieName); err == nil {
		if err := h.authProcessor.Logout(ctx, token); err != nil {
			h.logger.Error(ctx, "failed to delete session", err)
		}
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", h.secureCookie, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// HandleMe returns the authenticated user
func (h *Handler) HandleMe(c *gin.Context) {
	ctx := c.Request.Context()

	actor, ok := authz.MustActor(c)
	if !ok {
		return
	}

	user, err := h.authProcessor.Me(ctx, actor)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *Handler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, int(h.authProcessor.SessionTTL().Seconds()), "/", "", h.secureCookie, true)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrEmailAlreadyExists):
		apierrors.Conflict(c, "EMAIL_EXISTS", "An account with this email already exists")
	case errors.Is(err, processor.ErrInvalidCredentials):
		apierrors.Unauthorized(c, "Invalid email or password")
	case errors.Is(err, processor.ErrUserInactive):
		apierrors.Unauthorized(c, "Account is disabled")
	case errors.Is(err, processor.ErrInvalidSession), errors.Is(err, processor.ErrUserNotFound):
		apierrors.Unauthorized(c, "Authentication required")
	default:
		apierrors.InternalError(c, err)
	}
}

// SessionResolver turns a session token into an actor
type SessionResolver interface {
	ResolveSession(ctx context.Context, token string) (authz.Actor, error)
}

// RequireSession authenticates the request from its session cookie and stores the actor
// for downstream handlers. Missing, expired or revoked sessions get 401.
func RequireSession(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			apierrors.Unauthorized(c, "Authentication required")
			return
		}

		actor, err := resolver.ResolveSession(ctx, token)
		if err != nil {
			if errors.Is(err, processor.ErrInvalidSession) {
				apierrors.Unauthorized(c, "Authentication required")
				return
			}
			apierrors.InternalError(c, err)
			return
		}

		ctx = observability.WithFields(ctx,
			observability.Field{Key: "user_id", Value: actor.UserID.String()},
			observability.Field{Key: "user_role", Value: actor.Role},
		)
		if actor.CompanyID != nil {
			ctx = observability.WithFields(ctx, observability.Field{Key: "company_id", Value: actor.CompanyID.String()})
		}
		c.Request = c.Request.WithContext(ctx)

		authz.SetActor(c, actor)
		c.Next()
	}
}
