package httpHandler

import (
	"net/http"

	"fitness-server/apperrors"
	"fitness-server/entities"
	"fitness-server/services"
	"fitness-server/usecases"

	"github.com/gin-gonic/gin"
)

type FeedbackHandler struct {
	useCase *usecases.TrackerUseCase
	feed    *services.ActivityFeed
}

func NewFeedbackHandler(useCase *usecases.TrackerUseCase, feed *services.ActivityFeed) *FeedbackHandler {
	return &FeedbackHandler{useCase: useCase, feed: feed}
}

// CreateFeedback handles POST /api/v1/feedback
func (h *FeedbackHandler) CreateFeedback(c *gin.Context) {
	caller, ok := mustCurrentUser(c)
	if !ok {
		return
	}

	var feedback entities.Feedback
	if err := c.ShouldBindJSON(&feedback); err != nil {
		respondError(c, apperrors.E(apperrors.KindValidation, "invalid request body"))
		return
	}

	if err := h.useCase.CreateFeedback(caller.ID, &feedback); err != nil {
		respondError(c, err)
		return
	}

	h.feed.Record(caller.ID, "feedback", feedback.ID, "Submitted feedback")

	c.JSON(http.StatusCreated, gin.H{
		"message": "Feedback submitted successfully",
		"data":    feedback,
	})
}

// ListFeedback handles GET /api/v1/feedback
func (h *FeedbackHandler) ListFeedback(c *gin.Context) {
	caller, ok := mustCurrentUser(c)
	if !ok {
		return
	}

	feedbacks, err := h.useCase.ListFeedback(caller.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  feedbacks,
		"count": len(feedbacks),
	})
}

// GetFeedback handles GET /api/v1/feedback/:id
func (h *FeedbackHandler) GetFeedback(c *gin.Context) {
	caller, ok := mustCurrentUser(c)
	if !ok {
		return
	}

	feedback, err := h.useCase.GetFeedback(caller.ID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": feedback})
}

// UpdateFeedback handles PUT /api/v1/feedback/:id
func (h *FeedbackHandler) UpdateFeedback(c *gin.Context) {
	caller, ok := mustCurrentUser(c)
	if !ok {
		return
	}

	var in usecases.UpdateFeedbackInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, apperrors.E(apperrors.KindValidation, "invalid request body"))
		return
	}

	updated, err := h.useCase.UpdateFeedback(caller.ID, c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Feedback updated successfully",
		"data":    updated,
	})
}

// DeleteFeedback handles DELETE /api/v1/feedback/:id
func (h *FeedbackHandler) DeleteFeedback(c *gin.Context) {
	caller, ok := mustCurrentUser(c)
	if !ok {
		return
	}

	if err := h.useCase.DeleteFeedback(caller.ID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Feedback deleted successfully",
	})
}
