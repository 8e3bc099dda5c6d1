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

type BrandController struct {
	Brands   repository.BrandRepository
	Products repository.ProductRepository
	Images   storage.ImageStore
}

func NewBrandController(brands repository.BrandRepository, products repository.ProductRepository, images storage.ImageStore) *BrandController {
	return &BrandController{Brands: brands, Products: products, Images: images}
}

// All returns every brand, sorted by name.
func (bc *BrandController) All(c *gin.Context) {
	brands, err := bc.Brands.All(c.Request.Context())
	if err != nil {
		logger.Log.Error("brand listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch brands"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "brands": brands})
}

// Get resolves a brand by id or by slug.
func (bc *BrandController) Get(c *gin.Context) {
	raw := c.Param("id")

	var brand *models.Brand
	var err error
	if id, idErr := primitive.ObjectIDFromHex(raw); idErr == nil {
		brand, err = bc.Brands.Get(c.Request.Context(), id)
	} else {
		brand, err = bc.Brands.GetBySlug(c.Request.Context(), raw)
	}
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Brand not found"})
		return
	}
	if err != nil {
		logger.Log.Error("brand lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch brand"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "brand": brand})
}

// BrandProducts returns every product of a brand, addressed by id or
// by slug.
func (bc *BrandController) BrandProducts(c *gin.Context) {
	raw := c.Param("id")

	var brand *models.Brand
	var err error
	if id, idErr := primitive.ObjectIDFromHex(raw); idErr == nil {
		brand, err = bc.Brands.Get(c.Request.Context(), id)
	} else {
		brand, err = bc.Brands.GetBySlug(c.Request.Context(), raw)
	}
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Brand not found"})
		return
	}
	if err != nil {
		logger.Log.Error("brand lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch brand"})
		return
	}

	products, err := bc.Products.ListByBrand(c.Request.Context(), brand.ID)
	if err != nil {
		logger.Log.Error("brand products failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
}

// Create adds a brand with its slug derived from the name. Admin only.
func (bc *BrandController) Create(c *gin.Context) {
	name := c.PostForm("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Brand name is required"})
		return
	}

	brand := &models.Brand{
		Name: name,
		Slug: models.Slugify(name),
		Link: c.PostForm("link"),
	}

	if file, err := c.FormFile("logo"); err == nil {
		url, err := bc.Images.UploadImage(c.Request.Context(), file, "brands")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		brand.Logo = url
	}

	if err := bc.Brands.Create(c.Request.Context(), brand); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Brand with this name already exists"})
			return
		}
		logger.Log.Error("brand create failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create brand"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "brand": brand})
}

// Update renames a brand or replaces its logo or link. Renaming
// re-derives the slug. Admin only.
func (bc *BrandController) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid brand id"})
		return
	}

	set := bson.M{}
	if name := c.PostForm("name"); name != "" {
		set["name"] = name
		set["slug"] = models.Slugify(name)
	}
	if link := c.PostForm("link"); link != "" {
		set["link"] = link
	}
	if file, err := c.FormFile("logo"); err == nil {
		url, err := bc.Images.UploadImage(c.Request.Context(), file, "brands")
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

	brand, err := bc.Brands.Update(c.Request.Context(), id, set)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Brand not found"})
		return
	}
	if errors.Is(err, repository.ErrDuplicateKey) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Brand with this name already exists"})
		return
	}
	if err != nil {
		logger.Log.Error("brand update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update brand"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "brand": brand})
}

// Delete removes a brand. Admin only.
func (bc *BrandController) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid brand id"})
		return
	}

	err = bc.Brands.Delete(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Brand not found"})
		return
	}
	if err != nil {
		logger.Log.Error("brand delete failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete brand"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Brand deleted"})
}
