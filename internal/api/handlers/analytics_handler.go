package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"lock-tracking-api-server/internal/analytics"
	"lock-tracking-api-server/internal/apperrors"
	"lock-tracking-api-server/internal/eta"
	"lock-tracking-api-server/internal/store"
)

type AnalyticsHandler struct {
	Stores *store.Stores
}

// GetAnalytics recomputes per-lock totals from scratch on every request;
// there is no incremental maintenance or caching.
func (h *AnalyticsHandler) GetAnalytics(c *gin.Context) {
	id, ok := mustIdentity(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	scope := id.VendorScope()

	locks, err := h.Stores.Locks.List(ctx, scope)
	if err != nil {
		fail(c, apperrors.New(apperrors.Internal, "Failed to query locks"))
		return
	}
	trips, err := h.Stores.Trips.List(ctx, scope)
	if err != nil {
		fail(c, apperrors.New(apperrors.Internal, "Failed to query trips"))
		return
	}

	c.JSON(http.StatusOK, analytics.Aggregate(locks, trips))
}

// GetETA estimates trip time and arrival for a planned distance.
func (h *AnalyticsHandler) GetETA(c *gin.Context) {
	distanceKm, err := strconv.ParseFloat(c.Query("distanceKm"), 64)
	if err != nil || distanceKm < 0 {
		fail(c, apperrors.New(apperrors.Validation, "distanceKm query parameter must be a non-negative number"))
		return
	}

	speedKmh := eta.DefaultSpeedKmh
	if raw := c.Query("speedKmh"); raw != "" {
		speedKmh, err = strconv.ParseFloat(raw, 64)
		if err != nil || speedKmh <= 0 {
			fail(c, apperrors.New(apperrors.Validation, "speedKmh query parameter must be a positive number"))
			return
		}
	}

	now := time.Now()
	estimate := eta.Calculate(distanceKm, speedKmh, now)

	c.JSON(http.StatusOK, gin.H{
		"estimatedTimeMinutes": estimate.EstimatedTimeMinutes,
		"estimatedArrival":     estimate.EstimatedArrival,
		"formatted":            eta.FormatRemaining(estimate.EstimatedArrival, now),
	})
}
