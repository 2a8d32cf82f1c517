package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"lock-tracking-api-server/internal/apperrors"
	"lock-tracking-api-server/internal/models"
	"lock-tracking-api-server/internal/policy"
	"lock-tracking-api-server/internal/store"
)

type RemarkHandler struct {
	Stores *store.Stores
}

type CreateRemarkRequest struct {
	LockID  string `json:"lockId" binding:"required"`
	Message string `json:"message" binding:"required,max=1000"`
}

// GetRemarks lists remarks tenant-wide; tracking users read the whole tenant
// set, unlike locks which are assignee-filtered.
func (h *RemarkHandler) GetRemarks(c *gin.Context) {
	id, ok := mustIdentity(c)
	if !ok {
		return
	}

	remarks, err := h.Stores.Remarks.List(c.Request.Context(), id.VendorScope())
	if err != nil {
		fail(c, apperrors.New(apperrors.Internal, "Failed to query remarks"))
		return
	}

	c.JSON(http.StatusOK, remarks)
}

func (h *RemarkHandler) GetRemarksByLock(c *gin.Context) {
	id, ok := mustIdentity(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	lock, err := h.Stores.Locks.GetByID(ctx, c.Param("id"))
	if err == store.ErrNotFound || (err == nil && !policy.CanReadEntity(id, lock.VendorID)) {
		fail(c, apperrors.New(apperrors.NotFound, "Lock not found"))
		return
	}
	if err != nil {
		fail(c, apperrors.New(apperrors.Internal, "Failed to retrieve lock"))
		return
	}

	remarks, err := h.Stores.Remarks.ListByLock(ctx, lock.ID)
	if err != nil {
		fail(c, apperrors.New(apperrors.Internal, "Failed to query remarks"))
		return
	}

	c.JSON(http.StatusOK, remarks)
}

// CreateRemark appends a remark to a lock's trail. Remarks are immutable once
// written.
func (h *RemarkHandler) CreateRemark(c *gin.Context) {
	id, ok := mustIdentity(c)
	if !ok {
		return
	}
	if err := policy.CanCreateTenantData(id); err != nil {
		fail(c, err)
		return
	}

	var req CreateRemarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperrors.New(apperrors.Validation, err.Error()))
		return
	}

	ctx := c.Request.Context()
	lock, err := h.Stores.Locks.GetByID(ctx, req.LockID)
	if err == store.ErrNotFound || (err == nil && lock.VendorID != id.VendorID) {
		fail(c, apperrors.New(apperrors.NotFound, "Lock not found"))
		return
	}
	if err != nil {
		fail(c, apperrors.New(apperrors.Internal, "Failed to retrieve lock"))
		return
	}

	remark := &models.Remark{
		ID:        newID("remark"),
		LockID:    lock.ID,
		UserID:    id.UserID,
		UserName:  id.Name,
		Message:   req.Message,
		VendorID:  id.VendorID,
		Timestamp: time.Now(),
	}
	if err := h.Stores.Remarks.Create(ctx, remark); err != nil {
		fail(c, apperrors.New(apperrors.Internal, "Failed to create remark"))
		return
	}

	c.JSON(http.StatusCreated, remark)
}
