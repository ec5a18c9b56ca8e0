package httpHandler

import (
	"fitness-server/apperrors"

	"github.com/gin-gonic/gin"
)

// respondError is the single error-to-response translator: every error kind
// has one canonical status, and every error body carries a message field.
func respondError(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)
	body := gin.H{"success": false, "message": err.Error()}
	if status == 500 {
		// never leak internals
		body["message"] = "internal server error"
	}
	c.AbortWithStatusJSON(status, body)
}
