package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"venuebook/models"
	"venuebook/services/availability"
	"venuebook/services/slotfeed"
	"venuebook/utils"
)

// SlotStreamHandler serves the live slot stream for one (package, date) pair
// as server-sent events. Each connection owns one merger; changing the date
// means a new request, so the old subscription dies with the old connection.
type SlotStreamHandler struct {
	Feed    slotfeed.SlotFeed
	Service *availability.DefaultService
}

func NewSlotStreamHandler(feed slotfeed.SlotFeed, svc *availability.DefaultService) *SlotStreamHandler {
	return &SlotStreamHandler{Feed: feed, Service: svc}
}

func (h *SlotStreamHandler) StreamSlots(c *gin.Context) {
	locationID := c.Param("locationID")
	packageID := c.Param("packageID")
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing date", "query parameter 'date' is required (YYYY-MM-DD)")
		return
	}

	filterByDate, err := h.Service.SlotFilter(c.Request.Context(), locationID, packageID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to prepare slot filter", err.Error())
		return
	}

	updates := make(chan models.SlotListResult, 1)
	merger := slotfeed.NewMerger(h.Feed, func(key slotfeed.Key, slots []models.TimeSlot) []models.TimeSlot {
		return filterByDate(key.Date, slots)
	}, utils.GetLogger())
	defer merger.Close()

	merger.OnUpdate(func(key slotfeed.Key, slots []models.TimeSlot, ok bool) {
		result := models.SlotListResult{PackageID: key.PackageID, Date: key.Date, Slots: slots}
		if !ok {
			result.AvailabilityError = "Slots are unknown for this date"
		}
		// Last write wins: replace any value still queued.
		select {
		case updates <- result:
		default:
			select {
			case <-updates:
			default:
			}
			select {
			case updates <- result:
			default:
			}
		}
	})

	if err := merger.Connect(slotfeed.Key{PackageID: packageID, Date: date}); err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "slot feed unavailable", err.Error())
		return
	}

	clientGone := c.Request.Context().Done()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-clientGone:
			return false
		case result := <-updates:
			c.SSEvent("slots", result)
			return true
		}
	})
}
