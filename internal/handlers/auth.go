package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"stepup-tasks/internal/models"
	"stepup-tasks/internal/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

type AuthHandler struct {
	db          *mongo.Database
	userService services.UserService
	tokens      services.TokenService
}

func NewAuthHandler(db *mongo.Database, userService services.UserService, tokens services.TokenService) *AuthHandler {
	return &AuthHandler{db: db, userService: userService, tokens: tokens}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Email and password are required.",
		})
		return
	}

	user, err := h.userService.RegisterUser(c.Request.Context(), h.db, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrUserExists) {
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"message": "User already exists.",
			})
			return
		}
		slog.Error("registration failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error registering user: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Registration successful. Please log in.",
		"user_id": user.ID.Hex(),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Email and password are required.",
		})
		return
	}

	user, err := h.userService.LoginUser(c.Request.Context(), h.db, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			// One message for unknown email and wrong password alike.
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid credentials.",
			})
			return
		}
		slog.Error("login failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error logging in: " + err.Error(),
		})
		return
	}

	token, err := h.tokens.Issue(user.ID.Hex())
	if err != nil {
		slog.Error("token issue failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error generating token: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful.",
		"token":   token,
	})
}
