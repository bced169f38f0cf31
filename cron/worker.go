package cron

import (
	"context"
	"encoding/json"
	"log"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"venuebook/config"
	pkgRepo "venuebook/database/repository/pkgs"
	"venuebook/services/availability"
	"venuebook/services/tasks"
	"venuebook/utils"
)

// InitRefreshWorker runs the async worker in background. It rebuilds cached
// calendars after day-off mutations so the next reads are warm.
func InitRefreshWorker(svc availability.Service, packages pkgRepo.PackageRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeCalendarRefresh, handleCalendarRefresh(svc, packages))

	go func() {
		if err := srv.Run(mux); err != nil {
			log.Fatalf("calendar refresh worker failed: %v", err)
		}
	}()
}

func handleCalendarRefresh(svc availability.Service, packages pkgRepo.PackageRepository) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		logger := utils.GetLogger()

		var payload tasks.CalendarRefreshPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return err
		}

		pkgs, err := packages.ListByLocation(ctx, payload.LocationID)
		if err != nil {
			return err
		}
		for _, pkg := range pkgs {
			if _, err := svc.GetBookableDates(ctx, payload.LocationID, pkg.ID); err != nil {
				logger.Warn("calendar warm failed",
					zap.String("locationID", payload.LocationID),
					zap.String("packageID", pkg.ID), zap.Error(err))
			}
		}
		return nil
	}
}
