package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/logger"
	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/middleware"
	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/models"
	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/repository"
	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/services"
	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/storage"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AuthController struct {
	Users  repository.UserRepository
	Tokens *services.TokenService
	Images storage.ImageStore
}

func NewAuthController(users repository.UserRepository, tokens *services.TokenService, images storage.ImageStore) *AuthController {
	return &AuthController{Users: users, Tokens: tokens, Images: images}
}

// Register creates a user account. An optional profile image may be
// attached as multipart form data.
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Name, email and password are required"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("password hash failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Registration failed"})
		return
	}

	user := &models.User{
		Name:     req.Name,
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: string(hash),
		Role:     models.RoleUser,
	}

	if file, err := c.FormFile("image"); err == nil {
		url, err := ac.Images.UploadImage(c.Request.Context(), file, "users")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		user.Image = url
	}

	if err := ac.Users.Create(c.Request.Context(), user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "User with this email already exists"})
			return
		}
		logger.Log.Error("user create failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Registration failed"})
		return
	}

	token, err := ac.Tokens.GenerateAccessToken(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		logger.Log.Error("token generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Registration failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "token": token, "user": user.Public()})
}

// Login verifies credentials and issues an access token.
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Email and password are required"})
		return
	}

	user, err := ac.Users.FindByEmail(c.Request.Context(), strings.ToLower(strings.TrimSpace(req.Email)))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid email or password"})
		return
	}
	if err != nil {
		logger.Log.Error("login lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Login failed"})
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid email or password"})
		return
	}

	token, err := ac.Tokens.GenerateAccessToken(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		logger.Log.Error("token generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token, "user": user.Public()})
}

// Logout acknowledges a logout. Tokens are stateless so the client
// simply discards its copy.
func (ac *AuthController) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out"})
}

// Me returns the profile of the logged-in user.
func (ac *AuthController) Me(c *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "No token provided"})
		return
	}

	id, err := primitive.ObjectIDFromHex(principal.ID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid or expired token"})
		return
	}

	user, err := ac.Users.FindByID(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "User not found"})
		return
	}
	if err != nil {
		logger.Log.Error("profile lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user.Public()})
}

// UpdateProfile applies partial profile updates. Changing the password
// requires the current password; an attached image replaces the profile
// picture.
func (ac *AuthController) UpdateProfile(c *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "No token provided"})
		return
	}
	id, err := primitive.ObjectIDFromHex(principal.ID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid or expired token"})
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid payload"})
		return
	}

	set := bson.M{}
	if req.Name != "" {
		set["name"] = req.Name
	}
	if req.Email != "" {
		set["email"] = strings.ToLower(strings.TrimSpace(req.Email))
	}

	if req.Password != "" {
		user, err := ac.Users.FindByID(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "User not found"})
			return
		}
		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)) != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Current password is incorrect"})
			return
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Log.Error("password hash failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Profile update failed"})
			return
		}
		set["password"] = string(hash)
	}

	if file, err := c.FormFile("image"); err == nil {
		url, err := ac.Images.UploadImage(c.Request.Context(), file, "users")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		set["image"] = url
	}

	if len(set) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Nothing to update"})
		return
	}

	user, err := ac.Users.Update(c.Request.Context(), id, set)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "User not found"})
		return
	}
	if errors.Is(err, repository.ErrDuplicateKey) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "User with this email already exists"})
		return
	}
	if err != nil {
		logger.Log.Error("profile update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Profile update failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user.Public()})
}
