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

type CartController struct {
	Users    repository.UserRepository
	Products repository.ProductRepository
}

func NewCartController(users repository.UserRepository, products repository.ProductRepository) *CartController {
	return &CartController{Users: users, Products: products}
}

// CartItemRow pairs a cart line with its product projection. The product
// is nil when the catalog entry has been deleted since the add.
type CartItemRow struct {
	ID             primitive.ObjectID     `json:"_id"`
	Product        *models.RelatedProduct `json:"product"`
	Quantity       int                    `json:"quantity"`
	PriceAtAddTime float64                `json:"priceAtAddTime"`
}

// populateCart joins cart lines with their product projections.
func (cc *CartController) populateCart(c *gin.Context, cart []models.CartItem) ([]CartItemRow, error) {
	ids := make([]primitive.ObjectID, 0, len(cart))
	for _, item := range cart {
		ids = append(ids, item.ProductID)
	}
	products, err := cc.Products.FindByIDs(c.Request.Context(), ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[primitive.ObjectID]*models.RelatedProduct, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	rows := make([]CartItemRow, 0, len(cart))
	for _, item := range cart {
		rows = append(rows, CartItemRow{
			ID:             item.ID,
			Product:        byID[item.ProductID],
			Quantity:       item.Quantity,
			PriceAtAddTime: item.PriceAtAddTime,
		})
	}
	return rows, nil
}

func (cc *CartController) respondCart(c *gin.Context, status int, cart []models.CartItem) {
	rows, err := cc.populateCart(c, cart)
	if err != nil {
		logger.Log.Error("cart population failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load cart"})
		return
	}

	var subtotal float64
	var count int
	for _, item := range cart {
		subtotal += float64(item.Quantity) * item.PriceAtAddTime
		count += item.Quantity
	}
	c.JSON(status, gin.H{"success": true, "cart": rows, "subtotal": subtotal, "count": count})
}

// GetCart returns the logged-in user's cart with product details.
func (cc *CartController) GetCart(c *gin.Context) {
	userID, ok := principalID(c)
	if !ok {
		return
	}

	user, err := cc.Users.FindByID(c.Request.Context(), userID)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "User not found"})
		return
	}
	if err != nil {
		logger.Log.Error("cart lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load cart"})
		return
	}

	cc.respondCart(c, http.StatusOK, user.Cart)
}

// AddItem adds a product to the cart, snapshotting its current price.
// Adding a product already in the cart bumps the quantity instead.
func (cc *CartController) AddItem(c *gin.Context) {
	userID, ok := principalID(c)
	if !ok {
		return
	}

	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Product id is required"})
		return
	}
	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid product id"})
		return
	}
	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	product, err := cc.Products.Get(c.Request.Context(), productID)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found"})
		return
	}
	if err != nil {
		logger.Log.Error("product lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to add to cart"})
		return
	}

	cart, err := cc.Users.AddCartItem(c.Request.Context(), userID, models.CartItem{
		ProductID:      productID,
		Quantity:       quantity,
		PriceAtAddTime: product.Price,
	})
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "User not found"})
		return
	}
	if err != nil {
		logger.Log.Error("cart add failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to add to cart"})
		return
	}

	cc.respondCart(c, http.StatusOK, cart)
}

// UpdateItem changes the quantity of a cart line.
func (cc *CartController) UpdateItem(c *gin.Context) {
	userID, ok := principalID(c)
	if !ok {
		return
	}
	itemID, err := primitive.ObjectIDFromHex(c.Param("itemId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid cart item id"})
		return
	}

	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Quantity must be at least 1"})
		return
	}

	cart, err := cc.Users.UpdateCartItem(c.Request.Context(), userID, itemID, req.Quantity)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Cart item not found"})
		return
	}
	if err != nil {
		logger.Log.Error("cart update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update cart"})
		return
	}

	cc.respondCart(c, http.StatusOK, cart)
}

// RemoveItem removes a cart line. Removing an id that is not in the
// cart succeeds and returns the cart unchanged.
func (cc *CartController) RemoveItem(c *gin.Context) {
	userID, ok := principalID(c)
	if !ok {
		return
	}
	itemID, err := primitive.ObjectIDFromHex(c.Param("itemId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid cart item id"})
		return
	}

	cart, err := cc.Users.RemoveCartItem(c.Request.Context(), userID, itemID)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "User not found"})
		return
	}
	if err != nil {
		logger.Log.Error("cart remove failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update cart"})
		return
	}

	cc.respondCart(c, http.StatusOK, cart)
}
