package handlers

import (
	"net/http"
	"time"

	"github.com/KAUSTUBH-KULKARNI-K/markethub/internal/database"
	"github.com/KAUSTUBH-KULKARNI-K/markethub/internal/models"
	"github.com/KAUSTUBH-KULKARNI-K/markethub/pkg/errors"
	"github.com/KAUSTUBH-KULKARNI-K/markethub/pkg/logger"
	"github.com/KAUSTUBH-KULKARNI-K/markethub/pkg/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, errors.Validation(err.Error()))
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to hash password")
		fail(c, errors.Internal("Failed to hash password"))
		return
	}

	user := models.User{
		ID:       utils.GenerateID(),
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hashedPassword),
	}

	if result := database.DB.Create(&user); result.Error != nil {
		var existing models.User
		if err := database.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
			fail(c, errors.Conflict("An account with this email already exists. Please sign in instead."))
			return
		}

		logger.Warn().Err(result.Error).Str("email", input.Email).Msg("Registration failed")
		fail(c, errors.Conflict("User with this email already exists"))
		return
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to generate token")
		fail(c, errors.Internal("Failed to generate token"))
		return
	}

	logger.Info().Str("user_id", user.ID).Msg("User registered successfully")

	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user":  user,
	})
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, errors.Validation(err.Error()))
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		fail(c, errors.Unauthenticated("Invalid email or password"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		fail(c, errors.Unauthenticated("Invalid email or password"))
		return
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to generate token")
		fail(c, errors.Internal("Failed to generate token"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}

// Logout revokes the current token by blacklisting its JTI until expiry
func Logout(c *gin.Context) {
	claimsVal, exists := c.Get("claims")
	if !exists {
		fail(c, errors.Unauthenticated("Unauthorized"))
		return
	}

	claims := claimsVal.(*utils.Claims)
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl > 0 {
		if err := database.BlacklistToken(claims.GetJTI(), ttl); err != nil {
			logger.Warn().Err(err).Msg("Failed to blacklist token on logout")
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Me returns the authenticated user's profile
func Me(c *gin.Context) {
	userID := c.MustGet("userId").(string)

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		fail(c, errors.ErrUserNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
