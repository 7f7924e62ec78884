package handler

import (
	"errors"
	"net/http"

	"phishsim-server/internal/apierrors"
	"phishsim-server/internal/authz"
	"phishsim-server/internal/observability"
	"phishsim-server/internal/store"
	"phishsim-server/internal/users/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.UserProcessor
	logger    *observability.Logger
}

func New(processor processor.UserProcessor, logger *observability.Logger) Handler {
	return Handler{processor: processor, logger: logger}
}

type CreateUserRequest struct {
	Email     string     `json:"email" binding:"required,email"`
	Password  *string    `json:"password,omitempty" binding:"omitempty,min=8"`
	FirstName *string    `json:"first_name,omitempty"`
	LastName  *string    `json:"last_name,omitempty"`
	Role      string     `json:"role" binding:"required,oneof=superadmin admin manager"`
	CompanyID *uuid.UUID `json:"company_id,omitempty"`
}

type UpdateUserRequest struct {
	Email     *string `json:"email,omitempty" binding:"omitempty,email"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Role      *string `json:"role,omitempty" binding:"omitempty,oneof=superadmin admin manager"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

type ChangePasswordRequest struct {
	CurrentPassword *string `json:"current_password,omitempty"`
	NewPassword     string  `json:"new_password" binding:"required,min=8"`
}

func (h *Handler) HandleCreateUser(c *gin.Context) {
	ctx := c.Request.Context()
	actor, ok := authz.MustActor(c)
	if !ok {
		return
	}

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	user, err := h.processor.CreateUser(ctx, actor, processor.CreateUserParams{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
		CompanyID: req.CompanyID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// HandleListUsers lists users; superadmins may filter with ?company_id=
func (h *Handler) HandleListUsers(c *gin.Context) {
	ctx := c.Request.Context()
	actor, ok := authz.MustActor(c)
	if !ok {
		return
	}

	var companyID *uuid.UUID
	if raw := c.Query("company_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Invalid company ID format")
			return
		}
		companyID = &id
	}

	users, err := h.processor.ListUsers(ctx, actor, companyID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (h *Handler) HandleGetUser(c *gin.Context) {
	ctx := c.Request.Context()
	actor, ok := authz.MustActor(c)
	if !ok {
		return
	}
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	user, err := h.processor.GetUser(ctx, actor, userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *Handler) HandleUpdateUser(c *gin.Context) {
	ctx := c.Request.Context()
	actor, ok := authz.MustActor(c)
	if !ok {
		return
	}
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	user, err := h.processor.UpdateUser(ctx, actor, userID, store.UpdateUserParams{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
		IsActive:  req.IsActive,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *Handler) HandleChangePassword(c *gin.Context) {
	ctx := c.Request.Context()
	actor, ok := authz.MustActor(c)
	if !ok {
		return
	}
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	if err := h.processor.ChangePassword(ctx, actor, userID, req.CurrentPassword, req.NewPassword); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}

func (h *Handler) HandleDeleteUser(c *gin.Context) {
	ctx := c.Request.Context()
	actor, ok := authz.MustActor(c)
	if !ok {
		return
	}
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	if err := h.processor.DeleteUser(ctx, actor, userID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) getUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Invalid user ID format")
		return uuid.UUID{}, false
	}
	return userID, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrUserNotFound):
		apierrors.NotFound(c, "User not found")
	case errors.Is(err, processor.ErrEmailAlreadyExists):
		apierrors.Conflict(c, "EMAIL_EXISTS", "A user with this email already exists")
	case errors.Is(err, processor.ErrCompanyRequired):
		apierrors.BadRequest(c, "COMPANY_REQUIRED", "company_id is required for admin and manager users")
	case errors.Is(err, processor.ErrCannotDeleteSelf):
		apierrors.BadRequest(c, "CANNOT_DELETE_SELF", "You cannot delete your own account")
	case errors.Is(err, processor.ErrCannotModifyOwnRole):
		apierrors.BadRequest(c, "CANNOT_CHANGE_OWN_ROLE", "You cannot change your own role")
	case errors.Is(err, processor.ErrInvalidPassword):
		apierrors.BadRequest(c, "INVALID_PASSWORD", "Current password is incorrect")
	case errors.Is(err, authz.ErrInsufficientRole):
		apierrors.InsufficientPermissions(c)
	default:
		apierrors.InternalError(c, err)
	}
}
