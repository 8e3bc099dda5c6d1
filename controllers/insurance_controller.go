package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/logger"
	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/models"
	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/repository"
	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/storage"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type InsuranceController struct {
	Logos  repository.InsuranceRepository
	Images storage.ImageStore
}

func NewInsuranceController(logos repository.InsuranceRepository, images storage.ImageStore) *InsuranceController {
	return &InsuranceController{Logos: logos, Images: images}
}

// All returns every insurance logo, newest first.
func (ic *InsuranceController) All(c *gin.Context) {
	logos, err := ic.Logos.All(c.Request.Context())
	if err != nil {
		logger.Log.Error("insurance listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch insurance logos"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "logos": logos})
}

// Get returns one insurance logo. Admin only.
func (ic *InsuranceController) Get(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid logo id"})
		return
	}

	logo, err := ic.Logos.Get(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Insurance logo not found"})
		return
	}
	if err != nil {
		logger.Log.Error("insurance lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch insurance logo"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "logo": logo})
}

// Create adds an insurance logo. Admin only.
func (ic *InsuranceController) Create(c *gin.Context) {
	logo := &models.InsuranceLogo{Name: c.PostForm("name")}
	if logo.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Name is required"})
		return
	}

	if file, err := c.FormFile("logo"); err == nil {
		url, err := ic.Images.UploadImage(c.Request.Context(), file, "insurance")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		logo.Logo = url
	}

	if err := ic.Logos.Create(c.Request.Context(), logo); err != nil {
		logger.Log.Error("insurance create failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create insurance logo"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "logo": logo})
}

// Update renames a logo or replaces its image. Admin only.
func (ic *InsuranceController) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid logo id"})
		return
	}

	set := bson.M{}
	if name := c.PostForm("name"); name != "" {
		set["name"] = name
	}
	if file, err := c.FormFile("logo"); err == nil {
		url, err := ic.Images.UploadImage(c.Request.Context(), file, "insurance")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		set["logo"] = url
	}
	if len(set) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Nothing to update"})
		return
	}

	logo, err := ic.Logos.Update(c.Request.Context(), id, set)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Insurance logo not found"})
		return
	}
	if err != nil {
		logger.Log.Error("insurance update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update insurance logo"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "logo": logo})
}

// Delete removes an insurance logo. Admin only.
func (ic *InsuranceController) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid logo id"})
		return
	}

	err = ic.Logos.Delete(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Insurance logo not found"})
		return
	}
	if err != nil {
		logger.Log.Error("insurance delete failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete insurance logo"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Insurance logo deleted"})
}
