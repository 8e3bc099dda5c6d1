package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/logger"
	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/models"
	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type WishlistController struct {
	Users    repository.UserRepository
	Products repository.ProductRepository
}

func NewWishlistController(users repository.UserRepository, products repository.ProductRepository) *WishlistController {
	return &WishlistController{Users: users, Products: products}
}

// Get returns the logged-in user's wishlist with product details.
func (wc *WishlistController) Get(c *gin.Context) {
	userID, ok := principalID(c)
	if !ok {
		return
	}

	user, err := wc.Users.FindByID(c.Request.Context(), userID)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "User not found"})
		return
	}
	if err != nil {
		logger.Log.Error("wishlist lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load wishlist"})
		return
	}

	products, err := wc.Products.FindByIDs(c.Request.Context(), user.Wishlist)
	if err != nil {
		logger.Log.Error("wishlist population failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load wishlist"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "wishlist": products})
}

// Add puts a product on the wishlist. Adding the same product twice is
// rejected.
func (wc *WishlistController) Add(c *gin.Context) {
	userID, ok := principalID(c)
	if !ok {
		return
	}

	var req models.AddWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Product id is required"})
		return
	}
	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid product id"})
		return
	}

	if _, err := wc.Products.Get(c.Request.Context(), productID); errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found"})
		return
	} else if err != nil {
		logger.Log.Error("product lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update wishlist"})
		return
	}

	wishlist, err := wc.Users.AddToWishlist(c.Request.Context(), userID, productID)
	if errors.Is(err, repository.ErrAlreadyInWishlist) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Product already in wishlist"})
		return
	}
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "User not found"})
		return
	}
	if err != nil {
		logger.Log.Error("wishlist add failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update wishlist"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "wishlist": wishlist})
}

// Remove takes a product off the wishlist.
func (wc *WishlistController) Remove(c *gin.Context) {
	userID, ok := principalID(c)
	if !ok {
		return
	}
	productID, err := primitive.ObjectIDFromHex(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid product id"})
		return
	}

	wishlist, err := wc.Users.RemoveFromWishlist(c.Request.Context(), userID, productID)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "User not found"})
		return
	}
	if err != nil {
		logger.Log.Error("wishlist remove failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update wishlist"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "wishlist": wishlist})
}
