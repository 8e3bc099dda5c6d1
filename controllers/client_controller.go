package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/logger"
	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/models"
	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/repository"
	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClientController manages the in-store client purchase ledger.
// All routes are admin only.
type ClientController struct {
	Clients repository.ClientRepository
}

func NewClientController(clients repository.ClientRepository) *ClientController {
	return &ClientController{Clients: clients}
}

// Create records a client, optionally with an initial ledger.
func (clc *ClientController) Create(c *gin.Context) {
	var req models.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Name and phone are required"})
		return
	}

	client := &models.Client{
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		Address:   req.Address,
		Purchases: req.Purchases,
	}
	if client.Purchases == nil {
		client.Purchases = []models.Purchase{}
	}

	if err := clc.Clients.Create(c.Request.Context(), client); err != nil {
		logger.Log.Error("client create failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create client"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "client": client})
}

// List returns one searchable, sortable page of clients.
func (clc *ClientController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	pagination := utils.CalculatePagination(page, limit, 0)

	clients, total, err := clc.Clients.List(
		c.Request.Context(),
		pagination.Page, pagination.Limit,
		c.Query("search"), c.Query("sortBy"), c.Query("sortOrder"),
	)
	if err != nil {
		logger.Log.Error("client listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch clients"})
		return
	}

	p := utils.CalculatePagination(pagination.Page, pagination.Limit, total)
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"clients":     clients,
		"pagination":  p,
		"hasNextPage": p.HasNextPage(),
		"hasPrevPage": p.HasPrevPage(),
	})
}

// Get returns one client record.
func (clc *ClientController) Get(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid client id"})
		return
	}

	client, err := clc.Clients.Get(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Client not found"})
		return
	}
	if err != nil {
		logger.Log.Error("client lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch client"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "client": client})
}

// Update applies partial client updates. A purchases field replaces the
// whole ledger and recomputes the total.
func (clc *ClientController) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid client id"})
		return
	}

	var req models.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid payload"})
		return
	}

	client, err := clc.Clients.Update(c.Request.Context(), id, req)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Client not found"})
		return
	}
	if errors.Is(err, repository.ErrConflict) {
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": "Client was modified concurrently, please retry"})
		return
	}
	if err != nil {
		logger.Log.Error("client update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update client"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "client": client})
}

// Delete removes a client record.
func (clc *ClientController) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid client id"})
		return
	}

	err = clc.Clients.Delete(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Client not found"})
		return
	}
	if err != nil {
		logger.Log.Error("client delete failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete client"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Client deleted"})
}

// AddPurchase appends one ledger line. The subtotal and ledger total are
// always recomputed server-side.
func (clc *ClientController) AddPurchase(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid client id"})
		return
	}

	var req models.AddPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Name, quantity and price are required"})
		return
	}

	client, err := clc.Clients.AddPurchase(c.Request.Context(), id, models.Purchase{
		Name:     req.Name,
		Quantity: req.Quantity,
		Price:    req.Price,
	})
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Client not found"})
		return
	}
	if errors.Is(err, repository.ErrConflict) {
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": "Client was modified concurrently, please retry"})
		return
	}
	if err != nil {
		logger.Log.Error("purchase add failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to add purchase"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "client": client})
}

// RemovePurchase deletes one ledger line by index.
func (clc *ClientController) RemovePurchase(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid client id"})
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid purchase index"})
		return
	}

	client, err := clc.Clients.RemovePurchase(c.Request.Context(), id, index)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Client not found"})
		return
	}
	if errors.Is(err, repository.ErrIndexOutOfRange) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Purchase index out of range"})
		return
	}
	if errors.Is(err, repository.ErrConflict) {
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": "Client was modified concurrently, please retry"})
		return
	}
	if err != nil {
		logger.Log.Error("purchase remove failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to remove purchase"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "client": client})
}
