package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	pkgRepo "venuebook/database/repository/pkgs"
	"venuebook/models"
	"venuebook/services/availability"
	"venuebook/services/tasks"
	"venuebook/utils"
)

// PackageAdminHandler manages packages and location defaults. Mutations
// invalidate cached calendars and enqueue a background rebuild.
type PackageAdminHandler struct {
	Repo        pkgRepo.PackageRepository
	Service     availability.Service
	QueueClient *asynq.Client
}

func NewPackageAdminHandler(repo pkgRepo.PackageRepository, svc availability.Service, queue *asynq.Client) *PackageAdminHandler {
	return &PackageAdminHandler{Repo: repo, Service: svc, QueueClient: queue}
}

// CreatePackage registers a new bookable package for a location.
func (h *PackageAdminHandler) CreatePackage(c *gin.Context) {
	locationID := c.Param("locationID")

	var pkg models.Package
	if err := c.ShouldBindJSON(&pkg); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid package payload", err.Error())
		return
	}
	pkg.LocationID = locationID

	id, err := h.Repo.Create(c.Request.Context(), pkg)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create package", err.Error())
		return
	}

	invalidateAndRefresh(c, h.Service, h.QueueClient, locationID)
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// ListPackages returns the packages registered for a location.
func (h *PackageAdminHandler) ListPackages(c *gin.Context) {
	locationID := c.Param("locationID")

	pkgs, err := h.Repo.ListByLocation(c.Request.Context(), locationID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list packages", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"packages": pkgs})
}

// UpsertLocation writes a location's profile and default booking window.
func (h *PackageAdminHandler) UpsertLocation(c *gin.Context) {
	locationID := c.Param("locationID")

	var loc models.Location
	if err := c.ShouldBindJSON(&loc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid location payload", err.Error())
		return
	}
	loc.ID = locationID

	if err := h.Repo.UpsertLocation(c.Request.Context(), loc); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save location", err.Error())
		return
	}

	invalidateAndRefresh(c, h.Service, h.QueueClient, locationID)
	c.JSON(http.StatusOK, gin.H{"id": locationID})
}

// invalidateAndRefresh drops cached calendars for a location and queues a
// background rebuild so the next reads are warm.
func invalidateAndRefresh(c *gin.Context, svc availability.Service, queue *asynq.Client, locationID string) {
	logger := utils.GetLogger()

	if err := svc.InvalidateCalendar(c.Request.Context(), locationID); err != nil {
		logger.Warn("failed to invalidate calendar cache",
			zap.String("locationID", locationID), zap.Error(err))
	}

	if queue != nil {
		task, opts, err := tasks.NewCalendarRefreshTask(locationID, time.Now())
		if err == nil {
			_, err = queue.Enqueue(task, opts...)
		}
		if err != nil {
			logger.Warn("failed to enqueue calendar refresh",
				zap.String("locationID", locationID), zap.Error(err))
		}
	}
}
