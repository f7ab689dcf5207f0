package routes

import (
	"github.com/KAUSTUBH-KULKARNI-K/markethub/internal/handlers"
	"github.com/KAUSTUBH-KULKARNI-K/markethub/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterUserRoutes(r gin.IRouter) {
	r.GET("/users", middleware.OptionalAuthMiddleware(), handlers.ListUsers)
}
