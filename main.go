// File: venuebook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"

	"venuebook/config"
	"venuebook/cron"
	"venuebook/database"
	dayoffRepo "venuebook/database/repository/dayoff"
	pkgRepo "venuebook/database/repository/pkgs"
	slotRepo "venuebook/database/repository/slots"
	"venuebook/handlers"
	"venuebook/middleware"
	"venuebook/routes"
	"venuebook/services/availability"
	"venuebook/services/slotfeed"
	"venuebook/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	packages := pkgRepo.NewMongoPackageRepo()
	dayoffs := dayoffRepo.NewMongoDayOffRepo()
	slots := slotRepo.NewMongoSlotRepo()

	// services.
	availabilityService := &availability.DefaultService{
		PackageRepo: packages,
		DayOffRepo:  dayoffs,
		SlotRepo:    slots,
		Cache:       utils.GetCacheClient(),
	}
	feed := slotfeed.NewRedisFeed(utils.GetFeedClient())

	queueClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer queueClient.Close()

	// handlers.
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)
	streamHandler := handlers.NewSlotStreamHandler(feed, availabilityService)
	dayoffHandler := handlers.NewDayOffHandler(dayoffs, availabilityService, queueClient)
	adminHandler := handlers.NewPackageAdminHandler(packages, availabilityService, queueClient)
	ingestHandler := handlers.NewSlotIngestHandler(slots, feed)

	routes.RegisterRoutes(router, availabilityHandler, streamHandler, dayoffHandler, adminHandler, ingestHandler)

	// Background refresh worker and health monitor.
	cron.InitRefreshWorker(availabilityService, packages)
	utils.StartHealthMonitor(60*time.Second, utils.GetCacheClient(), utils.GetFeedClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
