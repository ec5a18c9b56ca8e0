package httpHandler

import (
	"fmt"
	"net/http"

	"fitness-server/apperrors"
	"fitness-server/entities"
	"fitness-server/services"
	"fitness-server/usecases"

	"github.com/gin-gonic/gin"
)

type WeightHandler struct {
	useCase *usecases.TrackerUseCase
	feed    *services.ActivityFeed
}

func NewWeightHandler(useCase *usecases.TrackerUseCase, feed *services.ActivityFeed) *WeightHandler {
	return &WeightHandler{useCase: useCase, feed: feed}
}

// CreateWeight handles POST /api/v1/weights
func (h *WeightHandler) CreateWeight(c *gin.Context) {
	caller, ok := mustCurrentUser(c)
	if !ok {
		return
	}

	var weight entities.Weight
	if err := c.ShouldBindJSON(&weight); err != nil {
		respondError(c, apperrors.E(apperrors.KindValidation, "invalid request body"))
		return
	}

	if err := h.useCase.CreateWeight(caller.ID, &weight); err != nil {
		respondError(c, err)
		return
	}

	h.feed.Record(caller.ID, "weight", weight.ID,
		fmt.Sprintf("Logged weight: %.1f", weight.Weight))

	c.JSON(http.StatusCreated, gin.H{
		"message": "Weight entry created successfully",
		"data":    weight,
	})
}

// ListWeights handles GET /api/v1/weights
func (h *WeightHandler) ListWeights(c *gin.Context) {
	caller, ok := mustCurrentUser(c)
	if !ok {
		return
	}

	weights, err := h.useCase.ListWeights(caller.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  weights,
		"count": len(weights),
	})
}

// GetWeight handles GET /api/v1/weights/:id
func (h *WeightHandler) GetWeight(c *gin.Context) {
	caller, ok := mustCurrentUser(c)
	if !ok {
		return
	}

	weight, err := h.useCase.GetWeight(caller.ID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": weight})
}

// UpdateWeight handles PUT /api/v1/weights/:id
func (h *WeightHandler) UpdateWeight(c *gin.Context) {
	caller, ok := mustCurrentUser(c)
	if !ok {
		return
	}

	var in usecases.UpdateWeightInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, apperrors.E(apperrors.KindValidation, "invalid request body"))
		return
	}

	updated, err := h.useCase.UpdateWeight(caller.ID, c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Weight entry updated successfully",
		"data":    updated,
	})
}

// DeleteWeight handles DELETE /api/v1/weights/:id
func (h *WeightHandler) DeleteWeight(c *gin.Context) {
	caller, ok := mustCurrentUser(c)
	if !ok {
		return
	}

	if err := h.useCase.DeleteWeight(caller.ID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Weight entry deleted successfully",
	})
}
