package handlers

import (
	"github.com/KAUSTUBH-KULKARNI-K/markethub/internal/config"
	"github.com/KAUSTUBH-KULKARNI-K/markethub/internal/database"
	"github.com/KAUSTUBH-KULKARNI-K/markethub/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SetupTestDB initializes an in-memory SQLite DB for testing
func SetupTestDB() {
	db, _ := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	database.DB = db
	database.DB.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Message{},
	)

	if config.AppConfig == nil {
		config.AppConfig = &config.Config{JWTSecret: "test-secret"}
	}
}
