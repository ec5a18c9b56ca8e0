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

type MealHandler struct {
	useCase *usecases.TrackerUseCase
	feed    *services.ActivityFeed
}

func NewMealHandler(useCase *usecases.TrackerUseCase, feed *services.ActivityFeed) *MealHandler {
	return &MealHandler{useCase: useCase, feed: feed}
}

// CreateMeal handles POST /api/v1/meals
func (h *MealHandler) CreateMeal(c *gin.Context) {
	caller, ok := mustCurrentUser(c)
	if !ok {
		return
	}

	var meal entities.Meal
	if err := c.ShouldBindJSON(&meal); err != nil {
		respondError(c, apperrors.E(apperrors.KindValidation, "invalid request body"))
		return
	}

	if err := h.useCase.CreateMeal(caller.ID, &meal); err != nil {
		respondError(c, err)
		return
	}

	h.feed.Record(caller.ID, "meal", meal.ID,
		fmt.Sprintf("Logged meal: %s (%.0f kcal)", meal.Name, meal.Calories))

	c.JSON(http.StatusCreated, gin.H{
		"message": "Meal created successfully",
		"data":    meal,
	})
}

// ListMeals handles GET /api/v1/meals
func (h *MealHandler) ListMeals(c *gin.Context) {
	caller, ok := mustCurrentUser(c)
	if !ok {
		return
	}

	meals, err := h.useCase.ListMeals(caller.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  meals,
		"count": len(meals),
	})
}

// GetMeal handles GET /api/v1/meals/:id
func (h *MealHandler) GetMeal(c *gin.Context) {
	caller, ok := mustCurrentUser(c)
	if !ok {
		return
	}

	meal, err := h.useCase.GetMeal(caller.ID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": meal})
}

// UpdateMeal handles PUT /api/v1/meals/:id
func (h *MealHandler) UpdateMeal(c *gin.Context) {
	caller, ok := mustCurrentUser(c)
	if !ok {
		return
	}

	var in usecases.UpdateMealInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, apperrors.E(apperrors.KindValidation, "invalid request body"))
		return
	}

	updated, err := h.useCase.UpdateMeal(caller.ID, c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Meal updated successfully",
		"data":    updated,
	})
}

// DeleteMeal handles DELETE /api/v1/meals/:id
func (h *MealHandler) DeleteMeal(c *gin.Context) {
	caller, ok := mustCurrentUser(c)
	if !ok {
		return
	}

	if err := h.useCase.DeleteMeal(caller.ID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Meal deleted successfully",
	})
}
