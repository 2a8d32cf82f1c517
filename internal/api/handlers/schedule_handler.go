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

type ScheduleHandler struct {
	Stores *store.Stores
}

type CreateScheduleRequest struct {
	Date string `json:"date" binding:"required"` // ISO calendar date
	Note string `json:"note" binding:"max=500"`
}

func (h *ScheduleHandler) GetSchedules(c *gin.Context) {
	id, ok := mustIdentity(c)
	if !ok {
		return
	}

	schedules, err := h.Stores.Schedules.List(c.Request.Context(), id.VendorScope())
	if err != nil {
		fail(c, apperrors.New(apperrors.Internal, "Failed to query schedules"))
		return
	}

	c.JSON(http.StatusOK, schedules)
}

func (h *ScheduleHandler) CreateSchedule(c *gin.Context) {
	id, ok := mustIdentity(c)
	if !ok {
		return
	}
	if err := policy.CanCreateTenantData(id); err != nil {
		fail(c, err)
		return
	}

	var req CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperrors.New(apperrors.Validation, err.Error()))
		return
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		fail(c, apperrors.Newf(apperrors.Validation, "invalid date %q, expected YYYY-MM-DD", req.Date))
		return
	}

	schedule := &models.Schedule{
		ID:        newID("sched"),
		Date:      req.Date,
		Note:      req.Note,
		CreatedBy: id.UserID,
		VendorID:  id.VendorID,
		CreatedAt: time.Now(),
	}
	if err := h.Stores.Schedules.Create(c.Request.Context(), schedule); err != nil {
		fail(c, apperrors.New(apperrors.Internal, "Failed to create schedule"))
		return
	}

	c.JSON(http.StatusCreated, schedule)
}

func (h *ScheduleHandler) DeleteSchedule(c *gin.Context) {
	id, ok := mustIdentity(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	schedule, err := h.Stores.Schedules.GetByID(ctx, c.Param("id"))
	if err == store.ErrNotFound {
		fail(c, apperrors.New(apperrors.NotFound, "Schedule not found"))
		return
	}
	if err != nil {
		fail(c, apperrors.New(apperrors.Internal, "Failed to retrieve schedule"))
		return
	}

	if err := policy.CanMutateTenantEntity(id, schedule.VendorID); err != nil {
		fail(c, err)
		return
	}

	if err := h.Stores.Schedules.Delete(ctx, schedule.ID); err != nil {
		fail(c, apperrors.New(apperrors.Internal, "Failed to delete schedule"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Schedule deleted successfully"})
}
