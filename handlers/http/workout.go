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

type WorkoutHandler struct {
	useCase *usecases.TrackerUseCase
	feed    *services.ActivityFeed
}

func NewWorkoutHandler(useCase *usecases.TrackerUseCase, feed *services.ActivityFeed) *WorkoutHandler {
	return &WorkoutHandler{useCase: useCase, feed: feed}
}

// CreateWorkout handles POST /api/v1/workouts
func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	caller, ok := mustCurrentUser(c)
	if !ok {
		return
	}

	var workout entities.Workout
	if err := c.ShouldBindJSON(&workout); err != nil {
		respondError(c, apperrors.E(apperrors.KindValidation, "invalid request body"))
		return
	}

	if err := h.useCase.CreateWorkout(caller.ID, &workout); err != nil {
		respondError(c, err)
		return
	}

	h.feed.Record(caller.ID, "workout", workout.ID,
		fmt.Sprintf("Logged workout: %s (%d min)", workout.Title, workout.DurationMin))

	c.JSON(http.StatusCreated, gin.H{
		"message": "Workout created successfully",
		"data":    workout,
	})
}

// ListWorkouts handles GET /api/v1/workouts
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	caller, ok := mustCurrentUser(c)
	if !ok {
		return
	}

	workouts, err := h.useCase.ListWorkouts(caller.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  workouts,
		"count": len(workouts),
	})
}

// GetWorkout handles GET /api/v1/workouts/:id
func (h *WorkoutHandler) GetWorkout(c *gin.Context) {
	caller, ok := mustCurrentUser(c)
	if !ok {
		return
	}

	workout, err := h.useCase.GetWorkout(caller.ID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": workout})
}

// UpdateWorkout handles PUT /api/v1/workouts/:id
func (h *WorkoutHandler) UpdateWorkout(c *gin.Context) {
	caller, ok := mustCurrentUser(c)
	if !ok {
		return
	}

	var in usecases.UpdateWorkoutInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, apperrors.E(apperrors.KindValidation, "invalid request body"))
		return
	}

	updated, err := h.useCase.UpdateWorkout(caller.ID, c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Workout updated successfully",
		"data":    updated,
	})
}

// DeleteWorkout handles DELETE /api/v1/workouts/:id
func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	caller, ok := mustCurrentUser(c)
	if !ok {
		return
	}

	if err := h.useCase.DeleteWorkout(caller.ID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Workout deleted successfully",
	})
}
