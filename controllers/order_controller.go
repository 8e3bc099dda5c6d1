package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/logger"
	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/middleware"
	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/models"
	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/repository"
	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderController struct {
	Orders   repository.OrderRepository
	Users    repository.UserRepository
	Products repository.ProductRepository
}

func NewOrderController(orders repository.OrderRepository, users repository.UserRepository, products repository.ProductRepository) *OrderController {
	return &OrderController{Orders: orders, Users: users, Products: products}
}

// Create places an order. Every line re-reads the current catalog price
// and the total is always recomputed server-side. The user's cart is
// emptied after the order is stored.
func (oc *OrderController) Create(c *gin.Context) {
	userID, ok := principalID(c)
	if !ok {
		return
	}

	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Order items are required"})
		return
	}

	order := &models.Order{
		User:   userID,
		Status: models.OrderPlaced,
		Items:  make([]models.OrderItem, 0, len(req.Items)),
	}
	for _, item := range req.Items {
		product, err := oc.Products.Get(c.Request.Context(), item.ProductID)
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "One or more products no longer exist"})
			return
		}
		if err != nil {
			logger.Log.Error("product lookup failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to place order"})
			return
		}
		line := models.OrderItem{
			ProductID:      product.ID,
			Quantity:       item.Quantity,
			PriceAtAddTime: product.Price,
		}
		order.Items = append(order.Items, line)
		order.Total += float64(line.Quantity) * line.PriceAtAddTime
	}

	if err := oc.Orders.Create(c.Request.Context(), order); err != nil {
		logger.Log.Error("order create failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to place order"})
		return
	}

	if _, err := oc.Users.Update(c.Request.Context(), userID, bson.M{"cart": []models.CartItem{}}); err != nil {
		logger.Log.Warn("cart clear after order failed", zap.String("order", order.ID.Hex()), zap.Error(err))
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "order": order})
}

// MyOrders returns the logged-in user's orders, newest first.
func (oc *OrderController) MyOrders(c *gin.Context) {
	userID, ok := principalID(c)
	if !ok {
		return
	}

	rows, err := oc.Orders.UserOrders(c.Request.Context(), userID, c.Query("search"), c.Query("status"))
	if err != nil {
		logger.Log.Error("order listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "orders": rows})
}

// Get returns one order. Users may only read their own orders; admins
// may read any.
func (oc *OrderController) Get(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid order id"})
		return
	}
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "No token provided"})
		return
	}

	order, err := oc.Orders.Get(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Order not found"})
		return
	}
	if err != nil {
		logger.Log.Error("order lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch order"})
		return
	}

	if principal.Role != models.RoleAdmin && order.User.Hex() != principal.ID {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "Admin access required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}

// AdminList returns one page of the order report. Admin only.
func (oc *OrderController) AdminList(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	pagination := utils.CalculatePagination(page, limit, 0)

	rows, total, err := oc.Orders.AdminList(c.Request.Context(), pagination.Page, pagination.Limit, c.Query("search"), c.Query("status"))
	if err != nil {
		logger.Log.Error("order report failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"orders":     rows,
		"pagination": utils.CalculatePagination(pagination.Page, pagination.Limit, total),
	})
}

// PlacedCount returns the number of orders still in the placed state.
// Admin only.
func (oc *OrderController) PlacedCount(c *gin.Context) {
	count, err := oc.Orders.CountByStatus(c.Request.Context(), models.OrderPlaced)
	if err != nil {
		logger.Log.Error("placed count failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to count orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": count})
}

// UpdateStatus moves an order to a new status. Admin only.
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid order id"})
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Status is required"})
		return
	}
	if !models.ValidOrderStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid order status"})
		return
	}

	order, err := oc.Orders.UpdateStatus(c.Request.Context(), id, req.Status)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Order not found"})
		return
	}
	if err != nil {
		logger.Log.Error("order status update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}
