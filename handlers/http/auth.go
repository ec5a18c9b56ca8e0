package httpHandler

import (
	"encoding/json"
	"net/http"

	"fitness-server/apperrors"
	"fitness-server/services"
	"fitness-server/usecases"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	useCase *usecases.UserUseCase
	feed    *services.ActivityFeed
}

func NewAuthHandler(useCase *usecases.UserUseCase, feed *services.ActivityFeed) *AuthHandler {
	return &AuthHandler{useCase: useCase, feed: feed}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req usecases.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.E(apperrors.KindValidation, "invalid request body"))
		return
	}

	user, err := h.useCase.Register(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered successfully",
		"data":    user,
	})
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.E(apperrors.KindValidation, "invalid request body"))
		return
	}

	token, err := h.useCase.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"token":   token,
	})
}

// Profile handles GET /api/v1/auth/profile. The middleware already resolved
// the identity; return it verbatim.
func (h *AuthHandler) Profile(c *gin.Context) {
	user, ok := mustCurrentUser(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    user,
	})
}

// UpdateUser handles PUT /api/v1/auth/updateUser/:id
func (h *AuthHandler) UpdateUser(c *gin.Context) {
	caller, ok := mustCurrentUser(c)
	if !ok {
		return
	}

	// Only name and email are updatable; unknown keys are rejected rather
	// than silently dropped.
	var req updateUserRequest
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		respondError(c, apperrors.E(apperrors.KindValidation, "invalid request body"))
		return
	}

	user, err := h.useCase.UpdateUser(caller.ID, c.Param("id"), usecases.UpdateUserInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User updated successfully",
		"data":    user,
	})
}

// DeleteUser handles DELETE /api/v1/auth/deleteUser/:id
func (h *AuthHandler) DeleteUser(c *gin.Context) {
	caller, ok := mustCurrentUser(c)
	if !ok {
		return
	}

	if err := h.useCase.DeleteUser(caller.ID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	// The account is gone; drop its feed state and close its socket
	h.feed.Disconnect(caller.ID)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User deleted successfully",
	})
}
