package routes

import (
	"github.com/gin-gonic/gin"

	"venuebook/handlers"
	"venuebook/middleware"
)

// RegisterAvailabilityRoutes registers all endpoints for the availability engine.
func RegisterAvailabilityRoutes(r *gin.Engine, avail *handlers.AvailabilityHandler, stream *handlers.SlotStreamHandler, dayoff *handlers.DayOffHandler, admin *handlers.PackageAdminHandler, ingest *handlers.SlotIngestHandler) {
	api := r.Group("/api/availability/:locationID/:packageID")
	{
		api.GET("/dates", avail.GetBookableDates)
		api.GET("/slots", avail.GetSlots)
		api.GET("/calendar", avail.GetCalendarView)
		api.GET("/stream", stream.StreamSlots)
	}

	dayoffs := r.Group("/api/dayoffs/:locationID", middleware.StaffAuthMiddleware())
	{
		dayoffs.POST("", dayoff.CreateDayOff)
		dayoffs.GET("", dayoff.ListDayOffs)
		dayoffs.DELETE("/:dayOffID", dayoff.DeleteDayOff)
	}

	packages := r.Group("/api/packages/:locationID", middleware.StaffAuthMiddleware())
	{
		packages.POST("", admin.CreatePackage)
		packages.GET("", admin.ListPackages)
	}

	staff := r.Group("/api", middleware.StaffAuthMiddleware())
	{
		staff.PUT("/locations/:locationID", admin.UpsertLocation)
		// The room-occupancy producer posts slot snapshots here.
		staff.PUT("/slots/:locationID/:packageID", ingest.IngestSnapshot)
	}
}
