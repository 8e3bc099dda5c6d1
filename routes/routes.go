package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/controllers"
	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/middleware"
	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/services"
)

// Controllers bundles every handler group the router mounts.
type Controllers struct {
	Auth         *controllers.AuthController
	Products     *controllers.ProductController
	Brands       *controllers.BrandController
	Lenses       *controllers.LensController
	Insurance    *controllers.InsuranceController
	Cart         *controllers.CartController
	Wishlist     *controllers.WishlistController
	Orders       *controllers.OrderController
	Appointments *controllers.AppointmentController
	Clients      *controllers.ClientController
	Contacts     *controllers.ContactController
	Admin        *controllers.AdminController
}

// Register mounts the full HTTP surface on the engine.
func Register(r *gin.Engine, ctrl Controllers, tokens *services.TokenService) {
	auth := middleware.Authenticate(tokens)
	admin := middleware.RequireAdmin()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Credential endpoints get a per-IP limiter.
	loginLimiter := middleware.NewRateLimiter(rate.Every(time.Minute/10), 10, 10*time.Minute)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", loginLimiter.Middleware(), ctrl.Auth.Register)
		authGroup.POST("/login", loginLimiter.Middleware(), ctrl.Auth.Login)
		authGroup.POST("/logout", auth, ctrl.Auth.Logout)
		authGroup.GET("/me", auth, ctrl.Auth.Me)
		authGroup.PUT("/profile", auth, ctrl.Auth.UpdateProfile)
	}

	products := r.Group("/products")
	{
		products.GET("", ctrl.Products.List)
		products.GET("/:id", ctrl.Products.Get)
		products.GET("/:id/related", ctrl.Products.Related)
		products.POST("", auth, admin, ctrl.Products.Create)
		products.PUT("/:id", auth, admin, ctrl.Products.Update)
		products.DELETE("/:id", auth, admin, ctrl.Products.Delete)
	}

	brands := r.Group("/brands")
	{
		brands.GET("", ctrl.Brands.All)
		brands.GET("/:id", ctrl.Brands.Get)
		brands.GET("/:id/products", ctrl.Brands.BrandProducts)
		brands.POST("", auth, admin, ctrl.Brands.Create)
		brands.PUT("/:id", auth, admin, ctrl.Brands.Update)
		brands.DELETE("/:id", auth, admin, ctrl.Brands.Delete)
	}

	lenses := r.Group("/lenses")
	{
		lenses.GET("", ctrl.Lenses.All)
		lenses.GET("/:id", ctrl.Lenses.Get)
		lenses.POST("", auth, admin, ctrl.Lenses.Create)
		lenses.PUT("/:id", auth, admin, ctrl.Lenses.Update)
		lenses.DELETE("/:id", auth, admin, ctrl.Lenses.Delete)
	}

	insurance := r.Group("/insurance-logos")
	{
		insurance.GET("", ctrl.Insurance.All)
		insurance.GET("/:id", auth, admin, ctrl.Insurance.Get)
		insurance.POST("", auth, admin, ctrl.Insurance.Create)
		insurance.PUT("/:id", auth, admin, ctrl.Insurance.Update)
		insurance.DELETE("/:id", auth, admin, ctrl.Insurance.Delete)
	}

	cart := r.Group("/cart", auth)
	{
		cart.GET("", ctrl.Cart.GetCart)
		cart.POST("", ctrl.Cart.AddItem)
		cart.PUT("/:itemId", ctrl.Cart.UpdateItem)
		cart.DELETE("/:itemId", ctrl.Cart.RemoveItem)
	}

	wishlist := r.Group("/wishlist", auth)
	{
		wishlist.GET("", ctrl.Wishlist.Get)
		wishlist.POST("", ctrl.Wishlist.Add)
		wishlist.DELETE("/:productId", ctrl.Wishlist.Remove)
	}

	orders := r.Group("/orders", auth)
	{
		orders.POST("", ctrl.Orders.Create)
		orders.GET("/my-orders", ctrl.Orders.MyOrders)
		orders.GET("", admin, ctrl.Orders.AdminList)
		orders.GET("/stats/placed-count", admin, ctrl.Orders.PlacedCount)
		orders.GET("/:id", ctrl.Orders.Get)
		orders.PATCH("/:id/status", admin, ctrl.Orders.UpdateStatus)
	}

	appointments := r.Group("/appointments", auth)
	{
		appointments.POST("", ctrl.Appointments.Create)
		appointments.GET("/my-appointments", ctrl.Appointments.MyAppointments)
		appointments.GET("", admin, ctrl.Appointments.AdminList)
		appointments.GET("/:id", admin, ctrl.Appointments.Get)
		appointments.PATCH("/:id/status", admin, ctrl.Appointments.UpdateStatus)
		appointments.DELETE("/:id", admin, ctrl.Appointments.Delete)
	}

	clients := r.Group("/clients", auth, admin)
	{
		clients.POST("", ctrl.Clients.Create)
		clients.GET("", ctrl.Clients.List)
		clients.GET("/:id", ctrl.Clients.Get)
		clients.PUT("/:id", ctrl.Clients.Update)
		clients.DELETE("/:id", ctrl.Clients.Delete)
		clients.POST("/:id/purchases", ctrl.Clients.AddPurchase)
		clients.DELETE("/:id/purchases/:index", ctrl.Clients.RemovePurchase)
	}

	contacts := r.Group("/contacts")
	{
		contacts.POST("", ctrl.Contacts.Create)
		contacts.GET("", auth, admin, ctrl.Contacts.List)
		contacts.GET("/unread/count", auth, admin, ctrl.Contacts.UnreadCount)
		contacts.GET("/:contactId", auth, admin, ctrl.Contacts.Get)
		contacts.POST("/:contactId/reply", auth, admin, ctrl.Contacts.Reply)
		contacts.PATCH("/:contactId/read", auth, admin, ctrl.Contacts.MarkRead)
		contacts.DELETE("/:contactId", auth, admin, ctrl.Contacts.Delete)
	}

	r.GET("/admin/overview", auth, admin, ctrl.Admin.Overview)
}
