package handlers

import (
	"net/http"

	"github.com/KAUSTUBH-KULKARNI-K/markethub/internal/database"
	"github.com/KAUSTUBH-KULKARNI-K/markethub/internal/models"
	"github.com/KAUSTUBH-KULKARNI-K/markethub/pkg/errors"
	"github.com/gin-gonic/gin"
)

// ListUsers handles GET /users — public directory used by the client to
// resolve display names. Passwords never serialize (json:"-").
func ListUsers(c *gin.Context) {
	var users []models.User
	err := database.DB.
		Select("id", "name", "email", "created_at").
		Order("created_at desc").
		Find(&users).Error
	if err != nil {
		fail(c, errors.Internal("Failed to fetch users"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}
