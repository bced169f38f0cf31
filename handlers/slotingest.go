package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	slotRepo "venuebook/database/repository/slots"
	"venuebook/models"
	"venuebook/services/availability"
	"venuebook/services/slotfeed"
	"venuebook/utils"
)

// SlotPublisher is the push side of the live slot feed.
type SlotPublisher interface {
	Publish(ctx context.Context, key slotfeed.Key, slots []models.TimeSlot) error
}

// SlotIngestHandler accepts slot snapshots from the room-occupancy producer.
// Each snapshot replaces the stored pull-path copy and is broadcast to any
// live stream subscribers on the same key.
type SlotIngestHandler struct {
	Repo slotRepo.SlotRepository
	Feed SlotPublisher
}

func NewSlotIngestHandler(repo slotRepo.SlotRepository, feed SlotPublisher) *SlotIngestHandler {
	return &SlotIngestHandler{Repo: repo, Feed: feed}
}

type slotSnapshotPayload struct {
	Date  string            `json:"date" binding:"required"`
	Slots []models.TimeSlot `json:"availableSlots"`
}

// IngestSnapshot stores and broadcasts the latest slots for one (package, date).
func (h *SlotIngestHandler) IngestSnapshot(c *gin.Context) {
	packageID := c.Param("packageID")

	var payload slotSnapshotPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid slot snapshot", err.Error())
		return
	}
	if _, err := availability.ParseDate(payload.Date, time.UTC); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid snapshot date", err.Error())
		return
	}

	ctx := c.Request.Context()
	if err := h.Repo.ReplaceForDate(ctx, packageID, payload.Date, payload.Slots); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to store slot snapshot", err.Error())
		return
	}

	key := slotfeed.Key{PackageID: packageID, Date: payload.Date}
	if err := h.Feed.Publish(ctx, key, payload.Slots); err != nil {
		// The snapshot is persisted; live subscribers catch up on reconnect.
		utils.GetLogger().Warn("failed to publish slot snapshot",
			zap.String("packageID", packageID), zap.String("date", payload.Date), zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{
		"packageID": packageID,
		"date":      payload.Date,
		"count":     len(payload.Slots),
	})
}
