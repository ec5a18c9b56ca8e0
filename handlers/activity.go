package handlers

import (
	"net/http"

	httpHandler "fitness-server/handlers/http"
	"fitness-server/services"

	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	feed *services.ActivityFeed
}

func NewActivityHandler(feed *services.ActivityFeed) *ActivityHandler {
	return &ActivityHandler{feed: feed}
}

// Recent handles GET /api/v1/activity/recent
func (h *ActivityHandler) Recent(c *gin.Context) {
	caller := httpHandler.CurrentUser(c)
	if caller == nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "not authenticated"})
		return
	}

	events := h.feed.Recent(caller.ID)
	c.JSON(http.StatusOK, gin.H{
		"data":  events,
		"count": len(events),
	})
}

// Stats handles GET /api/v1/activity/stats
func (h *ActivityHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"stats":  h.feed.Stats(),
	})
}
