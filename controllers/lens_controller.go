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
	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/storage"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type LensController struct {
	Lenses repository.LensRepository
	Images storage.ImageStore
}

func NewLensController(lenses repository.LensRepository, images storage.ImageStore) *LensController {
	return &LensController{Lenses: lenses, Images: images}
}

// All returns every lens type, sorted by name.
func (lc *LensController) All(c *gin.Context) {
	lenses, err := lc.Lenses.All(c.Request.Context())
	if err != nil {
		logger.Log.Error("lens listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch lens types"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "lenses": lenses})
}

// Get returns a single lens type by id.
func (lc *LensController) Get(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid lens id"})
		return
	}

	lens, err := lc.Lenses.Get(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Lens type not found"})
		return
	}
	if err != nil {
		logger.Log.Error("lens lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch lens type"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "lens": lens})
}

// Create adds a lens type. Admin only.
func (lc *LensController) Create(c *gin.Context) {
	lens := &models.Lens{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Benefits:    c.PostForm("benefits"),
		Features:    splitList(c.PostForm("features")),
	}
	if lens.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Lens name is required"})
		return
	}
	if v := c.PostForm("price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil || price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Price must be a non-negative number"})
			return
		}
		lens.Price = price
	}

	if file, err := c.FormFile("image"); err == nil {
		url, err := lc.Images.UploadImage(c.Request.Context(), file, "lenses")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		lens.Image = url
	}

	if err := lc.Lenses.Create(c.Request.Context(), lens); err != nil {
		logger.Log.Error("lens create failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create lens type"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "lens": lens})
}

// Update applies partial lens updates. Admin only.
func (lc *LensController) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid lens id"})
		return
	}

	set := bson.M{}
	if v := c.PostForm("name"); v != "" {
		set["name"] = v
	}
	if v := c.PostForm("description"); v != "" {
		set["description"] = v
	}
	if v := c.PostForm("benefits"); v != "" {
		set["benefits"] = v
	}
	if v := c.PostForm("features"); v != "" {
		set["features"] = splitList(v)
	}
	if v := c.PostForm("price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil || price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Price must be a non-negative number"})
			return
		}
		set["price"] = price
	}
	if file, err := c.FormFile("image"); err == nil {
		url, err := lc.Images.UploadImage(c.Request.Context(), file, "lenses")
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

	lens, err := lc.Lenses.Update(c.Request.Context(), id, set)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Lens type not found"})
		return
	}
	if err != nil {
		logger.Log.Error("lens update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update lens type"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "lens": lens})
}

// Delete removes a lens type. Admin only.
func (lc *LensController) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid lens id"})
		return
	}

	err = lc.Lenses.Delete(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Lens type not found"})
		return
	}
	if err != nil {
		logger.Log.Error("lens delete failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete lens type"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Lens type deleted"})
}
