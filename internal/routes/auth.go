package routes

import (
	"github.com/KAUSTUBH-KULKARNI-K/markethub/internal/handlers"
	"github.com/KAUSTUBH-KULKARNI-K/markethub/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterAuthRoutes(r gin.IRouter) {
	r.POST("/register", handlers.Register)
	r.POST("/login", handlers.Login)
	r.POST("/logout", middleware.AuthMiddleware(), handlers.Logout)
	r.GET("/me", middleware.AuthMiddleware(), handlers.Me)
}
