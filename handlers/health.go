package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"venuebook/utils"
)

// HealthHandler returns the latest dependency health snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
