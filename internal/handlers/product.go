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
)

// -- Inputs --

type CreateProductInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"image_url"`
	SellerName  string  `json:"seller_name" binding:"required"`
	Contact     string  `json:"contact" binding:"required"`
	Email       string  `json:"email"`
	Location    string  `json:"location"`
}

type UpdateProductInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Category    string   `json:"category"`
	ImageURL    string   `json:"image_url"`
	Contact     string   `json:"contact"`
	Email       string   `json:"email"`
	Location    string   `json:"location"`
}

// -- Handlers --

const productListCacheKey = "products:all"

// ListProducts handles GET /products (with query params for filtering).
// The unfiltered listing is the hot path for the landing page, so that
// one shape is served from cache; filtered queries always hit the DB.
func ListProducts(c *gin.Context) {
	var products []models.Product

	unfiltered := c.Query("user_id") == "" && c.Query("category") == "" && c.Query("search") == ""
	if unfiltered {
		if err := database.CacheGet(productListCacheKey, &products); err == nil {
			c.JSON(http.StatusOK, gin.H{"products": products})
			return
		}
	}

	query := database.DB.Model(&models.Product{})

	if userID := c.Query("user_id"); userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	if category := c.Query("category"); category != "" && category != "all" {
		query = query.Where("category = ?", category)
	}

	if search := c.Query("search"); search != "" {
		// LOWER + LIKE rather than ILIKE so the filter behaves the same
		// on the sqlite test database as on Postgres.
		like := "%" + search + "%"
		query = query.Where("LOWER(name) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", like, like)
	}

	if result := query.Order("created_at desc").Find(&products); result.Error != nil {
		fail(c, errors.Internal("Failed to fetch products"))
		return
	}

	if unfiltered {
		database.CacheSet(productListCacheKey, products, 30*time.Second)
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GetProduct handles GET /products/:id
func GetProduct(c *gin.Context) {
	var product models.Product
	if err := database.DB.First(&product, "id = ?", c.Param("id")).Error; err != nil {
		fail(c, errors.ErrProductNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}

// CreateProduct handles POST /products
func CreateProduct(c *gin.Context) {
	userID := c.MustGet("userId").(string)

	var input CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, errors.Validation(err.Error()))
		return
	}

	product := models.Product{
		ID:          utils.GenerateID(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		ImageURL:    input.ImageURL,
		UserID:      userID,
		SellerName:  input.SellerName,
		Contact:     input.Contact,
		Email:       input.Email,
		Location:    input.Location,
	}

	if err := database.DB.Create(&product).Error; err != nil {
		logger.Error().Err(err).Msg("Failed to create product")
		fail(c, errors.Internal("Failed to create product"))
		return
	}

	database.CacheInvalidate(productListCacheKey)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product added successfully",
		"product": product,
	})
}

// UpdateProduct handles PUT /products/:id (owner only)
func UpdateProduct(c *gin.Context) {
	userID := c.MustGet("userId").(string)

	var product models.Product
	if err := database.DB.First(&product, "id = ?", c.Param("id")).Error; err != nil {
		fail(c, errors.ErrProductNotFound)
		return
	}

	if product.UserID != userID {
		fail(c, errors.Forbidden("Only the seller can update this listing"))
		return
	}

	var input UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, errors.Validation(err.Error()))
		return
	}

	updates := map[string]interface{}{}
	if input.Name != "" {
		updates["name"] = input.Name
	}
	if input.Description != "" {
		updates["description"] = input.Description
	}
	if input.Price != nil {
		updates["price"] = *input.Price
	}
	if input.Category != "" {
		updates["category"] = input.Category
	}
	if input.ImageURL != "" {
		updates["image_url"] = input.ImageURL
	}
	if input.Contact != "" {
		updates["contact"] = input.Contact
	}
	if input.Email != "" {
		updates["email"] = input.Email
	}
	if input.Location != "" {
		updates["location"] = input.Location
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&product).Updates(updates).Error; err != nil {
			logger.Error().Err(err).Str("product_id", product.ID).Msg("Failed to update product")
			fail(c, errors.Internal("Failed to update product"))
			return
		}
		database.CacheInvalidate(productListCacheKey)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product updated successfully",
		"product": product,
	})
}

// DeleteProduct handles DELETE /products/:id (owner only)
func DeleteProduct(c *gin.Context) {
	userID := c.MustGet("userId").(string)

	var product models.Product
	if err := database.DB.First(&product, "id = ?", c.Param("id")).Error; err != nil {
		fail(c, errors.ErrProductNotFound)
		return
	}

	if product.UserID != userID {
		fail(c, errors.Forbidden("Only the seller can delete this listing"))
		return
	}

	if err := database.DB.Delete(&product).Error; err != nil {
		logger.Error().Err(err).Str("product_id", product.ID).Msg("Failed to delete product")
		fail(c, errors.Internal("Failed to delete product"))
		return
	}

	database.CacheInvalidate(productListCacheKey)

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
