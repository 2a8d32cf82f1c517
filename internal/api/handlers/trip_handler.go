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

type TripHandler struct {
	Stores *store.Stores
}

type CreateTripRequest struct {
	LockID     string `json:"lockId" binding:"required"`
	ScheduleID string `json:"scheduleId" binding:"required"`
}

type CompleteTripRequest struct {
	DistanceKm    *float64 `json:"distanceKm"`
	DetentionMins *int     `json:"detentionMins"`
}

func (h *TripHandler) GetTrips(c *gin.Context) {
	id, ok := mustIdentity(c)
	if !ok {
		return
	}

	trips, err := h.Stores.Trips.List(c.Request.Context(), id.VendorScope())
	if err != nil {
		fail(c, apperrors.New(apperrors.Internal, "Failed to query trips"))
		return
	}

	c.JSON(http.StatusOK, trips)
}

// CreateTrip opens an operation for a lock that has started transit. One
// active trip per lock; the lock's currentTripId points at it.
func (h *TripHandler) CreateTrip(c *gin.Context) {
	id, ok := mustIdentity(c)
	if !ok {
		return
	}
	if err := policy.CanCreateTenantData(id); err != nil {
		fail(c, err)
		return
	}

	var req CreateTripRequest
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
	if lock.Status != models.StatusInTransit {
		fail(c, apperrors.New(apperrors.Validation, "trips can only start for locks in transit"))
		return
	}
	if lock.CurrentTripID != "" {
		fail(c, apperrors.New(apperrors.Validation, "lock already has an active trip"))
		return
	}

	schedule, err := h.Stores.Schedules.GetByID(ctx, req.ScheduleID)
	if err == store.ErrNotFound || (err == nil && schedule.VendorID != id.VendorID) {
		fail(c, apperrors.New(apperrors.NotFound, "Schedule not found"))
		return
	}
	if err != nil {
		fail(c, apperrors.New(apperrors.Internal, "Failed to retrieve schedule"))
		return
	}

	trip := &models.Trip{
		ID:         newID("trip"),
		LockID:     lock.ID,
		ScheduleID: schedule.ID,
		VendorID:   id.VendorID,
		StartTime:  time.Now(),
		Status:     models.TripStatusActive,
	}
	if err := h.Stores.Trips.Create(ctx, trip); err != nil {
		fail(c, apperrors.New(apperrors.Internal, "Failed to create trip"))
		return
	}

	lock.CurrentTripID = trip.ID
	if err := h.Stores.Locks.Update(ctx, lock); err != nil {
		fail(c, apperrors.New(apperrors.Internal, "Failed to link trip to lock"))
		return
	}

	c.JSON(http.StatusCreated, trip)
}

// CompleteTrip closes an active trip, records its metrics and releases the
// lock's currentTripId.
func (h *TripHandler) CompleteTrip(c *gin.Context) {
	id, ok := mustIdentity(c)
	if !ok {
		return
	}

	var req CompleteTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperrors.New(apperrors.Validation, err.Error()))
		return
	}

	ctx := c.Request.Context()
	trip, err := h.Stores.Trips.GetByID(ctx, c.Param("id"))
	if err == store.ErrNotFound {
		fail(c, apperrors.New(apperrors.NotFound, "Trip not found"))
		return
	}
	if err != nil {
		fail(c, apperrors.New(apperrors.Internal, "Failed to retrieve trip"))
		return
	}

	if err := policy.CanMutateTenantEntity(id, trip.VendorID); err != nil {
		fail(c, err)
		return
	}
	if trip.Status != models.TripStatusActive {
		fail(c, apperrors.New(apperrors.Validation, "trip is already completed"))
		return
	}

	now := time.Now()
	trip.EndTime = &now
	trip.DistanceKm = req.DistanceKm
	trip.DetentionMins = req.DetentionMins
	trip.Status = models.TripStatusCompleted
	if err := h.Stores.Trips.Update(ctx, trip); err != nil {
		fail(c, apperrors.New(apperrors.Internal, "Failed to update trip"))
		return
	}

	if lock, err := h.Stores.Locks.GetByID(ctx, trip.LockID); err == nil && lock.CurrentTripID == trip.ID {
		lock.CurrentTripID = ""
		if err := h.Stores.Locks.Update(ctx, lock); err != nil {
			fail(c, apperrors.New(apperrors.Internal, "Failed to unlink trip from lock"))
			return
		}
	}

	c.JSON(http.StatusOK, trip)
}
