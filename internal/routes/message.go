package routes

import (
	"github.com/KAUSTUBH-KULKARNI-K/markethub/internal/handlers"
	"github.com/KAUSTUBH-KULKARNI-K/markethub/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterMessageRoutes(r gin.IRouter) {
	messages := r.Group("/messages")
	messages.Use(middleware.AuthMiddleware())
	{
		messages.POST("", middleware.MessageRateLimit(), handlers.SendMessage)
		messages.GET("/:productId", handlers.GetThread) // ?other_user_id=...
	}

	r.GET("/conversations", middleware.AuthMiddleware(), handlers.GetConversations)
}
