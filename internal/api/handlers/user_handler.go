package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"lock-tracking-api-server/internal/apperrors"
	"lock-tracking-api-server/internal/models"
	"lock-tracking-api-server/internal/policy"
	"lock-tracking-api-server/internal/store"
)

type UserHandler struct {
	Stores *store.Stores
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// GetUsers lists users in the caller's scope: the system administrator sees
// every vendor's users, a tenant superadmin only their own.
func (h *UserHandler) GetUsers(c *gin.Context) {
	id, ok := mustIdentity(c)
	if !ok {
		return
	}

	users, err := h.Stores.Users.List(c.Request.Context(), id.VendorScope())
	if err != nil {
		fail(c, apperrors.New(apperrors.Internal, "Failed to query users"))
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) UpdateRole(c *gin.Context) {
	id, ok := mustIdentity(c)
	if !ok {
		return
	}
	if err := policy.CanManageUsers(id); err != nil {
		fail(c, err)
		return
	}

	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperrors.New(apperrors.Validation, err.Error()))
		return
	}

	role := strings.ToLower(req.Role)
	if !models.IsValidRole(role) {
		fail(c, apperrors.Newf(apperrors.Validation, "invalid role %q", req.Role))
		return
	}

	user, err := h.getUser(c)
	if err != nil {
		fail(c, err)
		return
	}

	user.Role = role
	if err := h.Stores.Users.Update(c.Request.Context(), user); err != nil {
		fail(c, apperrors.New(apperrors.Internal, "Failed to update user"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User role updated successfully"})
}

func (h *UserHandler) Activate(c *gin.Context) {
	h.setActive(c, true)
}

func (h *UserHandler) Deactivate(c *gin.Context) {
	h.setActive(c, false)
}

func (h *UserHandler) setActive(c *gin.Context, active bool) {
	id, ok := mustIdentity(c)
	if !ok {
		return
	}
	if err := policy.CanManageUsers(id); err != nil {
		fail(c, err)
		return
	}

	user, err := h.getUser(c)
	if err != nil {
		fail(c, err)
		return
	}

	user.IsActive = active
	if err := h.Stores.Users.Update(c.Request.Context(), user); err != nil {
		fail(c, apperrors.New(apperrors.Internal, "Failed to update user"))
		return
	}

	msg := "User activated successfully"
	if !active {
		msg = "User deactivated successfully"
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := mustIdentity(c)
	if !ok {
		return
	}
	if err := policy.CanManageUsers(id); err != nil {
		fail(c, err)
		return
	}

	userID := c.Param("id")
	if userID == id.UserID {
		fail(c, apperrors.New(apperrors.Validation, "cannot delete your own account"))
		return
	}

	if err := h.Stores.Users.Delete(c.Request.Context(), userID); err != nil {
		if err == store.ErrNotFound {
			fail(c, apperrors.New(apperrors.NotFound, "User not found"))
		} else {
			fail(c, apperrors.New(apperrors.Internal, "Failed to delete user"))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

func (h *UserHandler) getUser(c *gin.Context) (*models.User, error) {
	user, err := h.Stores.Users.GetByID(c.Request.Context(), c.Param("id"))
	if err == store.ErrNotFound {
		return nil, apperrors.New(apperrors.NotFound, "User not found")
	}
	if err != nil {
		return nil, apperrors.New(apperrors.Internal, "Failed to retrieve user")
	}
	return user, nil
}
