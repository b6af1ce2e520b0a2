package routes

import (
	"github.com/gin-gonic/gin"

	"foodie-backend/handlers"
	"foodie-backend/middleware"
)

// SetupRoutes registers the public and bearer-protected endpoint surface.
func SetupRoutes(r *gin.Engine, h *handlers.Handler) {
	// Public
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.GET("/restaurants", h.ListRestaurants)
	r.POST("/add-product", h.AddProduct)
	r.GET("/products-data", h.GetProductsData)
	r.GET("/search", h.Search)

	// Bearer-protected
	auth := r.Group("/")
	auth.Use(middleware.AuthRequired(h.JWTSecret))
	{
		auth.GET("/user", h.GetUser)
		auth.GET("/cart", h.GetCart)
		auth.PUT("/cart", h.UpdateCart)
		auth.GET("/orders", h.ListOrders)
		auth.POST("/orders", h.PlaceOrder)
	}
}
