package routes

import (
	"github.com/KAUSTUBH-KULKARNI-K/markethub/internal/handlers"
	"github.com/KAUSTUBH-KULKARNI-K/markethub/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterProductRoutes(r gin.IRouter) {
	products := r.Group("/products")
	{
		// Public browsing (viewer identity logged when a token is sent)
		products.GET("", middleware.OptionalAuthMiddleware(), handlers.ListProducts)
		products.GET("/:id", middleware.OptionalAuthMiddleware(), handlers.GetProduct)

		// Seller-facing roster for a listing
		products.GET("/:id/buyers", middleware.AuthMiddleware(), handlers.GetProductBuyers)

		// Listing management (owner checks inside handlers)
		products.POST("", middleware.AuthMiddleware(), handlers.CreateProduct)
		products.PUT("/:id", middleware.AuthMiddleware(), handlers.UpdateProduct)
		products.DELETE("/:id", middleware.AuthMiddleware(), handlers.DeleteProduct)
	}
}
