package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/middleware"
)

// principalID extracts the logged-in user's id. Writes the error
// response itself when the principal is missing or malformed.
func principalID(c *gin.Context) (primitive.ObjectID, bool) {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "No token provided"})
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(principal.ID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid or expired token"})
		return primitive.NilObjectID, false
	}
	return id, true
}
