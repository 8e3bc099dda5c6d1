package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/logger"
	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/models"
	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/repository"
)

// AdminController serves the dashboard overview. Admin only.
type AdminController struct {
	Users    repository.UserRepository
	Products repository.ProductRepository
	Brands   repository.BrandRepository
	Orders   repository.OrderRepository
	Contacts repository.ContactRepository
}

func NewAdminController(users repository.UserRepository, products repository.ProductRepository, brands repository.BrandRepository, orders repository.OrderRepository, contacts repository.ContactRepository) *AdminController {
	return &AdminController{Users: users, Products: products, Brands: brands, Orders: orders, Contacts: contacts}
}

// Overview returns entity counts plus the most recent users and products.
func (adc *AdminController) Overview(c *gin.Context) {
	ctx := c.Request.Context()

	users, err := adc.Users.CountByRole(ctx, models.RoleUser)
	if err != nil {
		logger.Log.Error("overview user count failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load overview"})
		return
	}
	admins, err := adc.Users.CountByRole(ctx, models.RoleAdmin)
	if err != nil {
		logger.Log.Error("overview admin count failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load overview"})
		return
	}
	products, err := adc.Products.Count(ctx)
	if err != nil {
		logger.Log.Error("overview product count failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load overview"})
		return
	}
	brands, err := adc.Brands.Count(ctx)
	if err != nil {
		logger.Log.Error("overview brand count failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load overview"})
		return
	}
	orders, err := adc.Orders.CountByStatus(ctx, "")
	if err != nil {
		logger.Log.Error("overview order count failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load overview"})
		return
	}
	unread, err := adc.Contacts.UnreadCount(ctx)
	if err != nil {
		logger.Log.Error("overview unread count failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load overview"})
		return
	}

	recentUsers, err := adc.Users.RecentByRole(ctx, models.RoleUser, 5)
	if err != nil {
		logger.Log.Error("overview recent users failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load overview"})
		return
	}
	recentProducts, err := adc.Products.Recent(ctx, 5)
	if err != nil {
		logger.Log.Error("overview recent products failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load overview"})
		return
	}

	publicUsers := make([]models.PublicUser, 0, len(recentUsers))
	for i := range recentUsers {
		publicUsers = append(publicUsers, recentUsers[i].Public())
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"counts": gin.H{
			"users":          users,
			"admins":         admins,
			"products":       products,
			"brands":         brands,
			"orders":         orders,
			"unreadMessages": unread,
		},
		"recentUsers":    publicUsers,
		"recentProducts": recentProducts,
	})
}
