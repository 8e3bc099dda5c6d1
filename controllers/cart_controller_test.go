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
)

func cartRouter(users *MockUserRepo, products *MockProductRepo, userID primitive.ObjectID) *gin.Engine {
	r := gin.New()
	ctrl := NewCartController(users, products)
	grp := r.Group("/cart", asUser(userID.Hex(), models.RoleUser))
	grp.GET("", ctrl.GetCart)
	grp.POST("", ctrl.AddItem)
	grp.PUT("/:itemId", ctrl.UpdateItem)
	grp.DELETE("/:itemId", ctrl.RemoveItem)
	return r
}

func TestAddCartItem(t *testing.T) {
	userID := primitive.NewObjectID()
	productID := primitive.NewObjectID()

	t.Run("snapshots current price", func(t *testing.T) {
		users := new(MockUserRepo)
		products := new(MockProductRepo)

		products.On("Get", mock.Anything, productID).Return(&models.Product{ID: productID, Price: 89.99}, nil)
		cart := []models.CartItem{{ID: primitive.NewObjectID(), ProductID: productID, Quantity: 1, PriceAtAddTime: 89.99}}
		users.On("AddCartItem", mock.Anything, userID, mock.MatchedBy(func(item models.CartItem) bool {
			return item.ProductID == productID && item.Quantity == 1 && item.PriceAtAddTime == 89.99
		})).Return(cart, nil)
		products.On("FindByIDs", mock.Anything, mock.Anything).Return([]models.RelatedProduct{{ID: productID, Name: "Aviator", Price: 89.99}}, nil)

		r := cartRouter(users, products, userID)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(t, http.MethodPost, "/cart", gin.H{"productId": productID.Hex()}))

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, 89.99, body["subtotal"])
		assert.Equal(t, 1.0, body["count"])
		users.AssertExpectations(t)
	})

	t.Run("unknown product rejected", func(t *testing.T) {
		users := new(MockUserRepo)
		products := new(MockProductRepo)
		products.On("Get", mock.Anything, productID).Return(nil, repository.ErrNotFound)

		r := cartRouter(users, products, userID)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(t, http.MethodPost, "/cart", gin.H{"productId": productID.Hex()}))

		assert.Equal(t, http.StatusNotFound, w.Code)
		users.AssertNotCalled(t, "AddCartItem")
	})
}

func TestRemoveCartItem(t *testing.T) {
	userID := primitive.NewObjectID()

	t.Run("removing an id not in the cart succeeds unchanged", func(t *testing.T) {
		users := new(MockUserRepo)
		products := new(MockProductRepo)
		missing := primitive.NewObjectID()
		keptProduct := primitive.NewObjectID()
		kept := []models.CartItem{{ID: primitive.NewObjectID(), ProductID: keptProduct, Quantity: 2, PriceAtAddTime: 10}}

		users.On("RemoveCartItem", mock.Anything, userID, missing).Return(kept, nil)
		products.On("FindByIDs", mock.Anything, mock.Anything).Return([]models.RelatedProduct{}, nil)

		r := cartRouter(users, products, userID)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/cart/"+missing.Hex(), nil))

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Len(t, body["cart"], 1)
		assert.Equal(t, 20.0, body["subtotal"])
	})

	t.Run("malformed item id rejected", func(t *testing.T) {
		r := cartRouter(new(MockUserRepo), new(MockProductRepo), userID)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/cart/not-an-id", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUpdateCartItem(t *testing.T) {
	userID := primitive.NewObjectID()
	itemID := primitive.NewObjectID()

	t.Run("quantity below one rejected", func(t *testing.T) {
		users := new(MockUserRepo)
		r := cartRouter(users, new(MockProductRepo), userID)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(t, http.MethodPut, "/cart/"+itemID.Hex(), gin.H{"quantity": 0}))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		users.AssertNotCalled(t, "UpdateCartItem")
	})

	t.Run("unknown line is not found", func(t *testing.T) {
		users := new(MockUserRepo)
		users.On("UpdateCartItem", mock.Anything, userID, itemID, 3).Return(nil, repository.ErrNotFound)

		r := cartRouter(users, new(MockProductRepo), userID)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(t, http.MethodPut, "/cart/"+itemID.Hex(), gin.H{"quantity": 3}))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
