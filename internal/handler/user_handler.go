package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"todolist/internal/auth"
	"todolist/internal/model"
	"todolist/internal/repository"
)

type UserHandler struct {
	repo           repository.UserRepositoryInterface
	jwtSecret      string
	jwtExpiryHours int
}

// NewUserHandler builds the auth handler. The secret and expiry must come
// from the same config the route guard is wired with, so issued tokens are
// always verifiable.
func NewUserHandler(repo repository.UserRepositoryInterface, jwtSecret string, jwtExpiryHours int) *UserHandler {
	return &UserHandler{
		repo:           repo,
		jwtSecret:      jwtSecret,
		jwtExpiryHours: jwtExpiryHours,
	}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// User-facing authentication failure messages. Unrecognized failures all
// collapse to the generic one.
const (
	msgEmailInUse   = "Email is already in use."
	msgWeakPassword = "Password should be at least 6 characters."
	msgInvalidEmail = "Invalid email format."
	msgFieldsNeeded = "All fields are required."
	msgAuthFailed   = "Authentication failed. Please try again."
)

// registerErrorMessage translates a binding failure into one of the fixed
// user-facing messages.
func registerErrorMessage(err error) string {
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return msgAuthFailed
	}

	for _, fe := range vErrs {
		switch {
		case fe.Tag() == "required":
			return msgFieldsNeeded
		case fe.Field() == "Email" && fe.Tag() == "email":
			return msgInvalidEmail
		case fe.Field() == "Password" && fe.Tag() == "min":
			return msgWeakPassword
		}
	}
	return msgAuthFailed
}

// Register creates a new account and signs the user in immediately.
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": registerErrorMessage(err)})
		return
	}

	req.Email = strings.ToLower(req.Email)

	existing, err := h.repo.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgAuthFailed})
		return
	}
	if existing != nil {
		c.JSON(http.StatusConflict, gin.H{"error": msgEmailInUse})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgAuthFailed})
		return
	}

	user := &model.User{
		ID:             uuid.New(),
		Email:          req.Email,
		Name:           req.Name,
		HashedPassword: string(hash),
	}

	if err := h.repo.Create(c.Request.Context(), user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgAuthFailed})
		return
	}

	token, err := auth.GenerateToken(h.jwtSecret, h.jwtExpiryHours, user.ID.String())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgAuthFailed})
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{
		Token: token,
		User: UserResponse{
			ID:    user.ID.String(),
			Email: user.Email,
			Name:  user.Name,
		},
	})
}

// Login verifies credentials. Any failure yields the same generic message so
// the response does not reveal which part was wrong.
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgFieldsNeeded})
		return
	}

	req.Email = strings.ToLower(req.Email)

	user, err := h.repo.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgAuthFailed})
		return
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": msgAuthFailed})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": msgAuthFailed})
		return
	}

	token, err := auth.GenerateToken(h.jwtSecret, h.jwtExpiryHours, user.ID.String())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgAuthFailed})
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		Token: token,
		User: UserResponse{
			ID:    user.ID.String(),
			Email: user.Email,
			Name:  user.Name,
		},
	})
}

// Logout acknowledges the sign-out. Sessions are stateless tokens, so the
// server keeps nothing to clear; the client discards its token.
func (h *UserHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
