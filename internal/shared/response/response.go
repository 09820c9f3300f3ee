package response

import (
	"github.com/gin-gonic/gin"
)

// Success writes the envelope used by every endpoint:
// {"message": "...", "<entity>": {...}}. The payload map carries the
// entity (or list) keyed by its name, so callers stay compatible with
// the mobile scanner and the admin dashboard.
func Success(c *gin.Context, status int, message string, payload gin.H) {
	body := gin.H{"message": message}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

// Error writes {"message": "..."} with an optional "errors" detail list.
func Error(c *gin.Context, status int, message string, details any) {
	body := gin.H{"message": message}
	if details != nil {
		body["errors"] = details
	}
	c.JSON(status, body)
}
