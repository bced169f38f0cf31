package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"venuebook/services/availability"
	"venuebook/utils"
)

// AvailabilityHandler serves the read-only availability API.
type AvailabilityHandler struct {
	Service availability.Service
}

func NewAvailabilityHandler(svc availability.Service) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

// GetBookableDates returns the resolved bookable dates for a package.
func (h *AvailabilityHandler) GetBookableDates(c *gin.Context) {
	locationID := c.Param("locationID")
	packageID := c.Param("packageID")

	result, err := h.Service.GetBookableDates(c.Request.Context(), locationID, packageID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to resolve bookable dates", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetSlots returns the filtered slots for a chosen date.
func (h *AvailabilityHandler) GetSlots(c *gin.Context) {
	locationID := c.Param("locationID")
	packageID := c.Param("packageID")
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing date", "query parameter 'date' is required (YYYY-MM-DD)")
		return
	}

	result, err := h.Service.GetSlotsForDate(c.Request.Context(), locationID, packageID, date)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to resolve slots", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetCalendarView returns one classified month of the calendar grid.
func (h *AvailabilityHandler) GetCalendarView(c *gin.Context) {
	req := availability.CalendarViewRequest{
		LocationID: c.Param("locationID"),
		PackageID:  c.Param("packageID"),
		Month:      c.Query("month"),
		Selected:   c.Query("selected"),
		KeepDate:   c.Query("keepDate"),
	}
	if req.Month == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing month", "query parameter 'month' is required (YYYY-MM)")
		return
	}

	days, err := h.Service.GetCalendarView(c.Request.Context(), req)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to build calendar view", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": days})
}
