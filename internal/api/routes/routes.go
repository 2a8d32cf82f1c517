package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"lock-tracking-api-server/config"
	"lock-tracking-api-server/internal/api/handlers"
	"lock-tracking-api-server/internal/api/middleware"
	"lock-tracking-api-server/internal/logger"
	"lock-tracking-api-server/internal/models"
	"lock-tracking-api-server/internal/s3"
	"lock-tracking-api-server/internal/socket"
	"lock-tracking-api-server/internal/store"
)

// SetupRouter wires middleware, handlers and role gates. Route-level role
// checks are coarse; the policy package refines them per entity inside the
// handlers.
func SetupRouter(
	cfg config.Config,
	stores *store.Stores,
	s3Uploader *s3.Uploader,
	wsHub *socket.Hub,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger.Get()))
	router.Use(middleware.Metrics())
	router.Use(cors.Default())

	authHandler := &handlers.AuthHandler{Stores: stores, Cfg: cfg}
	userHandler := &handlers.UserHandler{Stores: stores}
	vendorHandler := &handlers.VendorHandler{Stores: stores}
	lockHandler := &handlers.LockHandler{Stores: stores, Hub: wsHub, Uploader: s3Uploader}
	scheduleHandler := &handlers.ScheduleHandler{Stores: stores}
	remarkHandler := &handlers.RemarkHandler{Stores: stores}
	tripHandler := &handlers.TripHandler{Stores: stores}
	analyticsHandler := &handlers.AnalyticsHandler{Stores: stores}
	webSocketHandler := &handlers.WebSocketHandler{Hub: wsHub}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		// Websocket authenticates via query token inside the handler.
		api.GET("/ws", webSocketHandler.ServeWs)

		// === UNAUTHENTICATED ROUTES ===

		auth := api.Group("/auth")
		{
			auth.POST("/signin", authHandler.Signin)
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/validate-token", authHandler.ValidateToken)
		}

		// Public so the signup screen can offer a vendor picker.
		api.GET("/vendors", vendorHandler.GetVendors)

		// === PROTECTED ROUTES ===

		protected := api.Group("/")
		protected.Use(middleware.Authenticate())
		{
			protected.POST("/auth/signout", authHandler.Signout)

			// User administration, superadmin only (the handlers further
			// restrict mutations to the system administrator).
			users := protected.Group("/users")
			users.Use(middleware.Authorize(models.RoleSuperadmin))
			{
				users.GET("", userHandler.GetUsers)
				users.PUT("/:id/role", userHandler.UpdateRole)
				users.PUT("/:id/activate", userHandler.Activate)
				users.PUT("/:id/deactivate", userHandler.Deactivate)
				users.DELETE("/:id", userHandler.DeleteUser)
			}

			// Vendor management, system administrator only.
			vendors := protected.Group("/vendors")
			vendors.Use(middleware.Authorize(models.RoleSuperadmin))
			{
				vendors.POST("", vendorHandler.CreateVendor)
				vendors.PUT("/:id", vendorHandler.UpdateVendor)
				vendors.DELETE("/:id", vendorHandler.DeleteVendor)
			}

			locks := protected.Group("/locks")
			{
				locks.GET("", lockHandler.GetLocks)
				locks.GET("/:id/actions", lockHandler.GetActions)
				locks.PUT("/:id/status", lockHandler.UpdateStatus)
				locks.POST("/:id/seal-photo", lockHandler.UploadSealPhoto)

				adminLocks := locks.Group("")
				adminLocks.Use(middleware.Authorize(models.RoleAdmin, models.RoleSuperadmin))
				{
					adminLocks.POST("", lockHandler.CreateLock)
					adminLocks.PUT("/:id/assign", lockHandler.Assign)
				}
			}

			schedules := protected.Group("/schedules")
			{
				schedules.GET("", scheduleHandler.GetSchedules)

				adminSchedules := schedules.Group("")
				adminSchedules.Use(middleware.Authorize(models.RoleAdmin, models.RoleSuperadmin))
				{
					adminSchedules.POST("", scheduleHandler.CreateSchedule)
					adminSchedules.DELETE("/:id", scheduleHandler.DeleteSchedule)
				}
			}

			remarks := protected.Group("/remarks")
			{
				remarks.GET("", remarkHandler.GetRemarks)
				remarks.GET("/lock/:id", remarkHandler.GetRemarksByLock)

				adminRemarks := remarks.Group("")
				adminRemarks.Use(middleware.Authorize(models.RoleAdmin, models.RoleSuperadmin))
				{
					adminRemarks.POST("", remarkHandler.CreateRemark)
				}
			}

			trips := protected.Group("/trips")
			{
				trips.GET("", tripHandler.GetTrips)

				adminTrips := trips.Group("")
				adminTrips.Use(middleware.Authorize(models.RoleAdmin, models.RoleSuperadmin))
				{
					adminTrips.POST("", tripHandler.CreateTrip)
					adminTrips.PUT("/:id/complete", tripHandler.CompleteTrip)
				}
			}

			analytics := protected.Group("/analytics")
			{
				analytics.GET("/eta", analyticsHandler.GetETA)

				adminAnalytics := analytics.Group("")
				adminAnalytics.Use(middleware.Authorize(models.RoleAdmin, models.RoleSuperadmin))
				{
					adminAnalytics.GET("", analyticsHandler.GetAnalytics)
				}
			}
		}
	}

	return router
}
