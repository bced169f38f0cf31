package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"

	dayoffRepo "venuebook/database/repository/dayoff"
	"venuebook/models"
	"venuebook/services/availability"
	"venuebook/utils"
)

// DayOffHandler manages the raw day-off records behind the exception
// expander. Mutations invalidate cached calendars and enqueue a refresh.
type DayOffHandler struct {
	Repo        dayoffRepo.DayOffRepository
	Service     availability.Service
	QueueClient *asynq.Client
}

func NewDayOffHandler(repo dayoffRepo.DayOffRepository, svc availability.Service, queue *asynq.Client) *DayOffHandler {
	return &DayOffHandler{Repo: repo, Service: svc, QueueClient: queue}
}

// CreateDayOff records a new closure for a location.
func (h *DayOffHandler) CreateDayOff(c *gin.Context) {
	locationID := c.Param("locationID")

	var rec models.DayOffRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid day-off payload", err.Error())
		return
	}
	rec.LocationID = locationID

	id, err := h.Repo.Create(c.Request.Context(), rec)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create day-off", err.Error())
		return
	}

	invalidateAndRefresh(c, h.Service, h.QueueClient, locationID)
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// ListDayOffs returns the raw records for a location.
func (h *DayOffHandler) ListDayOffs(c *gin.Context) {
	locationID := c.Param("locationID")

	recs, err := h.Repo.ListByLocation(c.Request.Context(), locationID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list day-offs", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"dayOffs": recs})
}

// DeleteDayOff removes a closure record.
func (h *DayOffHandler) DeleteDayOff(c *gin.Context) {
	locationID := c.Param("locationID")
	dayOffID := c.Param("dayOffID")

	if err := h.Repo.DeleteByID(c.Request.Context(), locationID, dayOffID); err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to delete day-off", err.Error())
		return
	}

	invalidateAndRefresh(c, h.Service, h.QueueClient, locationID)
	c.JSON(http.StatusOK, gin.H{"deleted": dayOffID})
}
