package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/models"
	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/repository"
	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/storage"
)

func productRouter(products *MockProductRepo, brands *MockBrandRepo, lenses *MockLensRepo) *gin.Engine {
	r := gin.New()
	ctrl := NewProductController(products, brands, lenses, storage.DisabledStore{})
	r.GET("/products", ctrl.List)
	r.GET("/products/:id", ctrl.Get)
	r.GET("/products/:id/related", ctrl.Related)
	return r
}

func TestProductList(t *testing.T) {
	t.Run("resolved brand filters the set", func(t *testing.T) {
		products := new(MockProductRepo)
		brands := new(MockBrandRepo)
		brandID := primitive.NewObjectID()

		brands.On("Resolve", mock.Anything, mock.Anything).Return(&models.Brand{ID: brandID, Name: "Ray-Ban"}, nil)
		products.On("List", mock.Anything, mock.MatchedBy(func(q repository.ListingQuery) bool {
			return q.Filter["brand"] == brandID
		})).Return([]models.Product{{Name: "Aviator"}}, int64(1), nil)

		r := productRouter(products, brands, new(MockLensRepo))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products?brand=Ray-Ban", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		products.AssertExpectations(t)
	})

	t.Run("unresolved brand drops the clause instead of failing", func(t *testing.T) {
		products := new(MockProductRepo)
		brands := new(MockBrandRepo)

		brands.On("Resolve", mock.Anything, mock.Anything).Return(nil, repository.ErrNotFound)
		products.On("List", mock.Anything, mock.MatchedBy(func(q repository.ListingQuery) bool {
			_, hasBrand := q.Filter["brand"]
			return !hasBrand
		})).Return([]models.Product{{Name: "Aviator"}, {Name: "Wayfarer"}}, int64(2), nil)

		r := productRouter(products, brands, new(MockLensRepo))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products?brand=NoSuchBrand", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Len(t, body["products"], 2)
		products.AssertExpectations(t)
	})

	t.Run("pagination metadata reflects totals", func(t *testing.T) {
		products := new(MockProductRepo)
		products.On("List", mock.Anything, mock.MatchedBy(func(q repository.ListingQuery) bool {
			return q.Page == 2 && q.Limit == 5 && q.Skip == 5
		})).Return([]models.Product{}, int64(12), nil)

		r := productRouter(products, new(MockBrandRepo), new(MockLensRepo))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products?page=2&limit=5", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		pagination := body["pagination"].(map[string]any)
		assert.Equal(t, 3.0, pagination["totalPages"])
	})
}

func TestProductGet(t *testing.T) {
	t.Run("malformed id rejected", func(t *testing.T) {
		r := productRouter(new(MockProductRepo), new(MockBrandRepo), new(MockLensRepo))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products/banana", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing product is not found", func(t *testing.T) {
		products := new(MockProductRepo)
		id := primitive.NewObjectID()
		products.On("Get", mock.Anything, id).Return(nil, repository.ErrNotFound)

		r := productRouter(products, new(MockBrandRepo), new(MockLensRepo))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products/"+id.Hex(), nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestProductRelated(t *testing.T) {
	products := new(MockProductRepo)
	id := primitive.NewObjectID()
	related := primitive.NewObjectID()
	products.On("Related", mock.Anything, id).Return([]models.RelatedProduct{{ID: related, Name: "Club Round"}}, nil)

	r := productRouter(products, new(MockBrandRepo), new(MockLensRepo))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products/"+id.Hex()+"/related", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Len(t, body["products"], 1)
}
