package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/logger"
	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/models"
	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/repository"
	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/storage"
	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductController struct {
	Products repository.ProductRepository
	Brands   repository.BrandRepository
	Lenses   repository.LensRepository
	Images   storage.ImageStore
}

func NewProductController(products repository.ProductRepository, brands repository.BrandRepository, lenses repository.LensRepository, images storage.ImageStore) *ProductController {
	return &ProductController{Products: products, Brands: brands, Lenses: lenses, Images: images}
}

// lensTypeParams flattens repeated and comma-separated lensType query
// values into one list.
func lensTypeParams(c *gin.Context) []string {
	var out []string
	for _, raw := range c.QueryArray("lensType") {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// resolveListingRefs turns the raw brand and lensType parameters into
// canonical ids. References that do not resolve stay absent, which drops
// the corresponding filter clause rather than failing the request.
func (pc *ProductController) resolveListingRefs(c *gin.Context, params repository.ListingParams) repository.ResolvedRefs {
	refs := repository.ResolvedRefs{}

	if params.Brand != "" {
		brand, err := pc.Brands.Resolve(c.Request.Context(), repository.ParseReference(params.Brand))
		if err == nil {
			refs.Brand = &brand.ID
		} else if !errors.Is(err, repository.ErrNotFound) {
			logger.Log.Warn("brand resolution failed", zap.String("brand", params.Brand), zap.Error(err))
		}
	}

	if len(params.LensType) > 0 {
		var ids []primitive.ObjectID
		var names []string
		for _, raw := range params.LensType {
			ref := repository.ParseReference(raw)
			if ref.ByID {
				ids = append(ids, ref.ID)
			} else {
				names = append(names, ref.Name)
			}
		}
		if len(names) > 0 {
			lenses, err := pc.Lenses.FindByNames(c.Request.Context(), names, true)
			if err != nil {
				logger.Log.Warn("lens resolution failed", zap.Error(err))
			}
			for _, lens := range lenses {
				ids = append(ids, lens.ID)
			}
		}
		refs.LensIDs = ids
	}

	return refs
}

// List returns one filtered, sorted page of the catalog.
func (pc *ProductController) List(c *gin.Context) {
	params := repository.ListingParams{
		Page:     c.Query("page"),
		Limit:    c.Query("limit"),
		Brand:    c.Query("brand"),
		MinPrice: c.Query("minPrice"),
		MaxPrice: c.Query("maxPrice"),
		Search:   c.Query("search"),
		Sort:     c.Query("sort"),
		Gender:   c.Query("gender"),
		LensType: lensTypeParams(c),
		Shape:    c.Query("shape"),
	}

	query := repository.BuildListingQuery(params, pc.resolveListingRefs(c, params))
	products, total, err := pc.Products.List(c.Request.Context(), query)
	if err != nil {
		logger.Log.Error("product listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"products":   products,
		"pagination": utils.CalculatePagination(query.Page, query.Limit, total),
	})
}

// Get returns a single product by id.
func (pc *ProductController) Get(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid product id"})
		return
	}

	product, err := pc.Products.Get(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found"})
		return
	}
	if err != nil {
		logger.Log.Error("product lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
}

// Related returns the trimmed related-product projections of a product.
func (pc *ProductController) Related(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid product id"})
		return
	}

	related, err := pc.Products.Related(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found"})
		return
	}
	if err != nil {
		logger.Log.Error("related lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch related products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "products": related})
}

// productFromForm reads catalog fields out of a multipart form.
func (pc *ProductController) productFromForm(c *gin.Context, product *models.Product) error {
	if v := c.PostForm("name"); v != "" {
		product.Name = v
	}
	if v := c.PostForm("description"); v != "" {
		product.Description = v
	}
	if v := c.PostForm("price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errors.New("Price must be a number")
		}
		product.Price = price
	}
	if v := c.PostForm("originalPrice"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errors.New("Original price must be a number")
		}
		product.OriginalPrice = price
	}
	if v := c.PostForm("rating"); v != "" {
		rating, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errors.New("Rating must be a number")
		}
		product.Rating = rating
	}
	if v := c.PostForm("gender"); v != "" {
		product.Gender = v
	}
	if v := c.PostForm("shape"); v != "" {
		product.Shape = v
	}
	if v := c.PostForm("features"); v != "" {
		product.Features = splitList(v)
	}
	if v := c.PostForm("specifications"); v != "" {
		specs := map[string]string{}
		if err := json.Unmarshal([]byte(v), &specs); err != nil {
			return errors.New("Specifications must be a JSON object of strings")
		}
		product.Specifications = specs
	}
	if v := c.PostForm("relatedProducts"); v != "" {
		var ids []primitive.ObjectID
		for _, raw := range splitList(v) {
			id, err := primitive.ObjectIDFromHex(raw)
			if err != nil {
				return errors.New("Related products must be valid ids")
			}
			ids = append(ids, id)
		}
		product.RelatedProducts = ids
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// resolveBrandField resolves the brand form value, by id or by exact name.
func (pc *ProductController) resolveBrandField(c *gin.Context, raw string) (*models.Brand, error) {
	ref := repository.ParseReference(raw)
	if ref.ByID {
		return pc.Brands.Get(c.Request.Context(), ref.ID)
	}
	return pc.Brands.FindByName(c.Request.Context(), ref.Name)
}

// resolveLensField resolves the lensType form values into lens ids.
// Values may be ids or exact names; unknown names fail the request.
func (pc *ProductController) resolveLensField(c *gin.Context, raw []string) ([]primitive.ObjectID, error) {
	var ids []primitive.ObjectID
	var names []string
	for _, entry := range raw {
		ref := repository.ParseReference(entry)
		if ref.ByID {
			ids = append(ids, ref.ID)
		} else {
			names = append(names, ref.Name)
		}
	}
	if len(names) > 0 {
		lenses, err := pc.Lenses.FindByNames(c.Request.Context(), names, false)
		if err != nil {
			return nil, err
		}
		if len(lenses) != len(names) {
			return nil, repository.ErrNotFound
		}
		for _, lens := range lenses {
			ids = append(ids, lens.ID)
		}
	}
	return ids, nil
}

// Create adds a catalog entry. Admin only.
func (pc *ProductController) Create(c *gin.Context) {
	var product models.Product
	if err := pc.productFromForm(c, &product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if raw := c.PostForm("brand"); raw != "" {
		brand, err := pc.resolveBrandField(c, raw)
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Brand not found"})
			return
		}
		if err != nil {
			logger.Log.Error("brand lookup failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create product"})
			return
		}
		product.Brand = brand.ID
	}

	if raw := splitList(c.PostForm("lensType")); len(raw) > 0 {
		ids, err := pc.resolveLensField(c, raw)
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "One or more lens types not found"})
			return
		}
		if err != nil {
			logger.Log.Error("lens lookup failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create product"})
			return
		}
		product.LensType = ids
	}

	if details := product.Validate(); len(details) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Validation failed", "details": details})
		return
	}

	product.Images = []string{}
	if form, err := c.MultipartForm(); err == nil {
		for _, file := range form.File["images"] {
			url, err := pc.Images.UploadImage(c.Request.Context(), file, "products")
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
				return
			}
			product.Images = append(product.Images, url)
		}
	}

	if err := pc.Products.Create(c.Request.Context(), &product); err != nil {
		logger.Log.Error("product create failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "product": product})
}

// Update applies partial catalog updates. Admin only.
func (pc *ProductController) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid product id"})
		return
	}

	var patch models.Product
	if err := pc.productFromForm(c, &patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	set := bson.M{}
	if patch.Name != "" {
		set["name"] = patch.Name
	}
	if patch.Description != "" {
		set["description"] = patch.Description
	}
	if c.PostForm("price") != "" {
		if patch.Price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Price must not be negative"})
			return
		}
		set["price"] = patch.Price
	}
	if c.PostForm("originalPrice") != "" {
		set["originalPrice"] = patch.OriginalPrice
	}
	if c.PostForm("rating") != "" {
		if patch.Rating < 0 || patch.Rating > 5 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Rating must be between 0 and 5"})
			return
		}
		set["rating"] = patch.Rating
	}
	if patch.Gender != "" {
		if !models.ValidGender(patch.Gender) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Gender must be one of men, women, unisex"})
			return
		}
		set["gender"] = patch.Gender
	}
	if patch.Shape != "" {
		set["shape"] = patch.Shape
	}
	if patch.Features != nil {
		set["features"] = patch.Features
	}
	if patch.Specifications != nil {
		set["specifications"] = patch.Specifications
	}
	if patch.RelatedProducts != nil {
		set["relatedProducts"] = patch.RelatedProducts
	}

	if raw := c.PostForm("brand"); raw != "" {
		brand, err := pc.resolveBrandField(c, raw)
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Brand not found"})
			return
		}
		if err != nil {
			logger.Log.Error("brand lookup failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update product"})
			return
		}
		set["brand"] = brand.ID
	}

	if raw := splitList(c.PostForm("lensType")); len(raw) > 0 {
		ids, err := pc.resolveLensField(c, raw)
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "One or more lens types not found"})
			return
		}
		if err != nil {
			logger.Log.Error("lens lookup failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update product"})
			return
		}
		set["lensType"] = ids
	}

	if form, err := c.MultipartForm(); err == nil && len(form.File["images"]) > 0 {
		images := []string{}
		for _, file := range form.File["images"] {
			url, err := pc.Images.UploadImage(c.Request.Context(), file, "products")
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
				return
			}
			images = append(images, url)
		}
		set["images"] = images
	}

	if len(set) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Nothing to update"})
		return
	}

	product, err := pc.Products.Update(c.Request.Context(), id, set)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found"})
		return
	}
	if err != nil {
		logger.Log.Error("product update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
}

// Delete removes a catalog entry. Admin only.
func (pc *ProductController) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid product id"})
		return
	}

	err = pc.Products.Delete(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found"})
		return
	}
	if err != nil {
		logger.Log.Error("product delete failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product deleted"})
}
