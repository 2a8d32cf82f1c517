package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"lock-tracking-api-server/internal/apperrors"
	"lock-tracking-api-server/internal/lifecycle"
	"lock-tracking-api-server/internal/metrics"
	"lock-tracking-api-server/internal/models"
	"lock-tracking-api-server/internal/policy"
	"lock-tracking-api-server/internal/s3"
	"lock-tracking-api-server/internal/socket"
	"lock-tracking-api-server/internal/store"
)

type LockHandler struct {
	Stores   *store.Stores
	Hub      *socket.Hub
	Uploader *s3.Uploader
}

type CreateLockRequest struct {
	LockNumber string `json:"lockNumber" binding:"required,max=50"`
}

// GetLocks lists locks visible to the caller: full tenant set for admins,
// cross-tenant for the system administrator, own assignments for tracking
// users. The visibility filter runs on every request.
func (h *LockHandler) GetLocks(c *gin.Context) {
	id, ok := mustIdentity(c)
	if !ok {
		return
	}

	locks, err := h.Stores.Locks.List(c.Request.Context(), id.VendorScope())
	if err != nil {
		fail(c, apperrors.New(apperrors.Internal, "Failed to query locks"))
		return
	}

	c.JSON(http.StatusOK, policy.FilterLocks(id, locks))
}

func (h *LockHandler) CreateLock(c *gin.Context) {
	id, ok := mustIdentity(c)
	if !ok {
		return
	}
	if err := policy.CanCreateTenantData(id); err != nil {
		fail(c, err)
		return
	}

	var req CreateLockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperrors.New(apperrors.Validation, err.Error()))
		return
	}

	ctx := c.Request.Context()
	lockNumber := strings.TrimSpace(req.LockNumber)

	if _, err := h.Stores.Locks.GetByNumber(ctx, id.VendorID, lockNumber); err == nil {
		fail(c, apperrors.Newf(apperrors.Validation, "lock number %s already exists for this vendor", lockNumber))
		return
	}

	lock := &models.Lock{
		ID:          newID("lock"),
		LockNumber:  lockNumber,
		Status:      models.StatusAvailable,
		VendorID:    id.VendorID,
		LastUpdated: time.Now(),
	}
	if err := h.Stores.Locks.Create(ctx, lock); err != nil {
		fail(c, apperrors.New(apperrors.Internal, "Failed to create lock"))
		return
	}

	c.JSON(http.StatusCreated, lock)
}

// GetActions lists the transitions currently offered for a lock together
// with the labels the client renders on its action buttons.
func (h *LockHandler) GetActions(c *gin.Context) {
	id, ok := mustIdentity(c)
	if !ok {
		return
	}

	lock, err := h.Stores.Locks.GetByID(c.Request.Context(), c.Param("id"))
	if err == store.ErrNotFound {
		fail(c, apperrors.New(apperrors.NotFound, "Lock not found"))
		return
	}
	if err != nil {
		fail(c, apperrors.New(apperrors.Internal, "Failed to retrieve lock"))
		return
	}

	// Locks outside the caller's visibility read as absent.
	if !policy.CanReadEntity(id, lock.VendorID) ||
		(id.Role == models.RoleTracking && lock.AssignedTo != id.UserID) {
		fail(c, apperrors.New(apperrors.NotFound, "Lock not found"))
		return
	}

	actions := make([]gin.H, 0, 2)
	for _, next := range lifecycle.NextStatuses(lock.Status) {
		actions = append(actions, gin.H{
			"status": next,
			"label":  lifecycle.ActionLabel(next),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"lockId":  lock.ID,
		"status":  lock.Status,
		"actions": actions,
	})
}

// UpdateStatus applies one lifecycle transition. Only status and lastUpdated
// change; assignment and trip linkage are untouched. Illegal transitions are
// rejected before any write.
func (h *LockHandler) UpdateStatus(c *gin.Context) {
	id, ok := mustIdentity(c)
	if !ok {
		return
	}

	target, err := lifecycle.ParseStatus(c.Query("status"))
	if err != nil {
		fail(c, err)
		return
	}

	ctx := c.Request.Context()
	lock, err := h.Stores.Locks.GetByID(ctx, c.Param("id"))
	if err == store.ErrNotFound {
		fail(c, apperrors.New(apperrors.NotFound, "Lock not found"))
		return
	}
	if err != nil {
		fail(c, apperrors.New(apperrors.Internal, "Failed to retrieve lock"))
		return
	}

	if err := policy.CanTransitionLock(id, lock); err != nil {
		fail(c, err)
		return
	}
	if err := lifecycle.Validate(lock.Status, target); err != nil {
		fail(c, err)
		return
	}

	from := lock.Status
	lock.Status = target
	lock.LastUpdated = time.Now()
	if err := h.Stores.Locks.Update(ctx, lock); err != nil {
		fail(c, apperrors.New(apperrors.Internal, "Failed to update lock"))
		return
	}

	if metrics.LockTransitionsTotal != nil {
		metrics.LockTransitionsTotal.WithLabelValues(string(from), string(target)).Inc()
	}
	if h.Hub != nil {
		h.Hub.BroadcastVendor(lock.VendorID, socket.Event{Type: "lock_updated", Data: lock})
	}

	c.JSON(http.StatusOK, lock)
}

// Assign puts a lock in the hands of a tracking user. The lock must be
// AVAILABLE and unassigned; the target must be an active tracking user of the
// same vendor. Assignment never changes status.
func (h *LockHandler) Assign(c *gin.Context) {
	id, ok := mustIdentity(c)
	if !ok {
		return
	}

	userID := c.Query("userId")
	if userID == "" {
		fail(c, apperrors.New(apperrors.Validation, "userId query parameter is required"))
		return
	}

	ctx := c.Request.Context()
	lock, err := h.Stores.Locks.GetByID(ctx, c.Param("id"))
	if err == store.ErrNotFound {
		fail(c, apperrors.New(apperrors.NotFound, "Lock not found"))
		return
	}
	if err != nil {
		fail(c, apperrors.New(apperrors.Internal, "Failed to retrieve lock"))
		return
	}

	if err := policy.CanMutateTenantEntity(id, lock.VendorID); err != nil {
		fail(c, err)
		return
	}
	if lock.Status != models.StatusAvailable {
		fail(c, apperrors.New(apperrors.Validation, "only available locks can be assigned"))
		return
	}
	if lock.AssignedTo != "" {
		fail(c, apperrors.New(apperrors.Validation, "lock is already assigned"))
		return
	}

	assignee, err := h.Stores.Users.GetByID(ctx, userID)
	if err == store.ErrNotFound {
		fail(c, apperrors.New(apperrors.NotFound, "User not found"))
		return
	}
	if err != nil {
		fail(c, apperrors.New(apperrors.Internal, "Failed to retrieve user"))
		return
	}
	if assignee.VendorID != lock.VendorID || assignee.Role != models.RoleTracking || !assignee.IsActive {
		fail(c, apperrors.New(apperrors.Validation, "assignee must be an active tracking user of the same vendor"))
		return
	}

	lock.AssignedTo = assignee.ID
	if err := h.Stores.Locks.Update(ctx, lock); err != nil {
		fail(c, apperrors.New(apperrors.Internal, "Failed to update lock"))
		return
	}

	if metrics.LockAssignmentsTotal != nil {
		metrics.LockAssignmentsTotal.Inc()
	}
	if h.Hub != nil {
		h.Hub.BroadcastVendor(lock.VendorID, socket.Event{Type: "lock_assigned", Data: lock})
	}

	c.JSON(http.StatusOK, lock)
}

// UploadSealPhoto attaches a proof photo to the lock's current trip. Allowed
// for whoever may transition the lock (tenant admins, or the assignee).
func (h *LockHandler) UploadSealPhoto(c *gin.Context) {
	id, ok := mustIdentity(c)
	if !ok {
		return
	}
	if h.Uploader == nil {
		fail(c, apperrors.New(apperrors.Internal, "Photo storage is not configured"))
		return
	}

	ctx := c.Request.Context()
	lock, err := h.Stores.Locks.GetByID(ctx, c.Param("id"))
	if err == store.ErrNotFound {
		fail(c, apperrors.New(apperrors.NotFound, "Lock not found"))
		return
	}
	if err != nil {
		fail(c, apperrors.New(apperrors.Internal, "Failed to retrieve lock"))
		return
	}

	if err := policy.CanTransitionLock(id, lock); err != nil {
		fail(c, err)
		return
	}
	if lock.CurrentTripID == "" {
		fail(c, apperrors.New(apperrors.Validation, "lock has no active trip"))
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		fail(c, apperrors.New(apperrors.Validation, "photo file is required"))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		fail(c, apperrors.New(apperrors.Internal, "Failed to read uploaded file"))
		return
	}
	defer file.Close()

	objectKey := fmt.Sprintf("seal-photos/%s/%s/%d.jpg", lock.VendorID, lock.ID, time.Now().UnixNano())
	url, err := h.Uploader.UploadFile(ctx, file, objectKey)
	if err != nil {
		fail(c, apperrors.New(apperrors.Internal, "Failed to upload photo"))
		return
	}

	trip, err := h.Stores.Trips.GetByID(ctx, lock.CurrentTripID)
	if err != nil {
		fail(c, apperrors.New(apperrors.Internal, "Failed to retrieve current trip"))
		return
	}
	trip.SealPhotoURL = url
	if err := h.Stores.Trips.Update(ctx, trip); err != nil {
		fail(c, apperrors.New(apperrors.Internal, "Failed to record photo on trip"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"sealPhotoUrl": url, "tripId": trip.ID})
}
