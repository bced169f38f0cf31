package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"venuebook/handlers"
)

// RegisterRoutes wires CORS, the health endpoint and all API groups.
func RegisterRoutes(r *gin.Engine, avail *handlers.AvailabilityHandler, stream *handlers.SlotStreamHandler, dayoff *handlers.DayOffHandler, admin *handlers.PackageAdminHandler, ingest *handlers.SlotIngestHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", handlers.HealthHandler)

	RegisterAvailabilityRoutes(r, avail, stream, dayoff, admin, ingest)
}
