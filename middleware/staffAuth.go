package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"venuebook/utils"
)

// StaffAuthMiddleware guards the admin endpoints (day-off and package
// management). It only verifies the bearer token; session storage is an
// external concern.
func StaffAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		staffID, locationID, err := utils.ExtractStaffFromToken(tokenString)
		if err != nil || staffID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		c.Set("staffID", staffID)
		c.Set("staffLocationID", locationID)
		c.Next()
	}
}
