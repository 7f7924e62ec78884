package handler

import (
	"net/http"

	"phishsim-server/internal/apierrors"
	"phishsim-server/internal/authz"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CreateGroupRequest struct {
	CompanyID   *uuid.UUID `json:"company_id,omitempty"`
	Name        string     `json:"name" binding:"required,min=1,max=255"`
	Description *string    `json:"description,omitempty"`
}

type UpdateGroupRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description,omitempty"`
}

func (h *Handler) HandleCreateGroup(c *gin.Context) {
	ctx := c.Request.Context()
	actor, ok := authz.MustActor(c)
	if !ok {
		return
	}

	var req CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	group, err := h.processor.CreateGroup(ctx, actor, req.CompanyID, req.Name, req.Description)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, group)
}

func (h *Handler) HandleListGroups(c *gin.Context) {
	ctx := c.Request.Context()
	actor, ok := authz.MustActor(c)
	if !ok {
		return
	}
	companyID, ok := optionalUUIDQuery(c, "company_id")
	if !ok {
		return
	}

	groups, err := h.processor.ListGroups(ctx, actor, companyID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

func (h *Handler) HandleGetGroup(c *gin.Context) {
	ctx := c.Request.Context()
	actor, ok := authz.MustActor(c)
	if !ok {
		return
	}
	groupID, ok := getID(c, "group")
	if !ok {
		return
	}

	group, err := h.processor.GetGroup(ctx, actor, groupID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, group)
}

func (h *Handler) HandleUpdateGroup(c *gin.Context) {
	ctx := c.Request.Context()
	actor, ok := authz.MustActor(c)
	if !ok {
		return
	}
	groupID, ok := getID(c, "group")
	if !ok {
		return
	}

	var req UpdateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	group, err := h.processor.UpdateGroup(ctx, actor, groupID, req.Name, req.Description)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, group)
}

func (h *Handler) HandleDeleteGroup(c *gin.Context) {
	ctx := c.Request.Context()
	actor, ok := authz.MustActor(c)
	if !ok {
		return
	}
	groupID, ok := getID(c, "group")
	if !ok {
		return
	}

	if err := h.processor.DeleteGroup(ctx, actor, groupID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
