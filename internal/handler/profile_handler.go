package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"todolist/internal/repository"
)

type ProfileHandler struct {
	userRepo repository.UserRepositoryInterface
}

func NewProfileHandler(userRepo repository.UserRepositoryInterface) *ProfileHandler {
	return &ProfileHandler{userRepo: userRepo}
}

type UpdateProfileRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdatePasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required"`
}

// Get returns the authenticated user's email and display name
func (h *ProfileHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.userRepo.GetByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, UserResponse{
		ID:    user.ID.String(),
		Email: user.Email,
		Name:  user.Name,
	})
}

// Update acknowledges a profile edit without persisting anything. The
// profile form is presentational only.
func (h *ProfileHandler) Update(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully!"})
}

// UpdatePassword acknowledges a password change without persisting anything.
func (h *ProfileHandler) UpdatePassword(c *gin.Context) {
	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully!"})
}
