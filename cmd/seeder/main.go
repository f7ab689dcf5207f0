package main

import (
	"log"
	"time"

	"github.com/KAUSTUBH-KULKARNI-K/markethub/internal/config"
	"github.com/KAUSTUBH-KULKARNI-K/markethub/internal/database"
	"github.com/KAUSTUBH-KULKARNI-K/markethub/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Seeds a demo seller, two buyers, a few listings and a message history
// so the conversation views have something to show locally.
func main() {
	config.LoadConfig()
	database.Connect()

	log.Println("🔄 Running migrations (just in case)...")
	database.DB.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Message{},
	)

	log.Println("🗑️  Clearing products and messages (users are kept)...")
	if err := database.DB.Exec("TRUNCATE TABLE products, messages RESTART IDENTITY CASCADE").Error; err != nil {
		log.Fatalf("❌ Failed to truncate: %v", err)
	}

	seller := ensureUser("sam@markethub.local", "Sam Seller")
	buyerA := ensureUser("asha@markethub.local", "Asha")
	buyerB := ensureUser("bala@markethub.local", "Bala")

	bike := models.Product{
		ID:          uuid.New().String(),
		Name:        "City Bike",
		Description: "Lightly used commuter bike, recently serviced",
		Price:       120,
		Category:    "sports",
		UserID:      seller.ID,
		SellerName:  seller.Name,
		Contact:     "555-0101",
		Location:    "North Campus",
	}
	desk := models.Product{
		ID:          uuid.New().String(),
		Name:        "Standing Desk",
		Description: "Adjustable height, minor scratches",
		Price:       80,
		Category:    "furniture",
		UserID:      seller.ID,
		SellerName:  seller.Name,
		Contact:     "555-0101",
		Location:    "North Campus",
	}
	if err := database.DB.Create(&bike).Error; err != nil {
		log.Fatalf("❌ Failed to seed products: %v", err)
	}
	if err := database.DB.Create(&desk).Error; err != nil {
		log.Fatalf("❌ Failed to seed products: %v", err)
	}

	now := time.Now()
	msgs := []models.Message{
		message(bike.ID, buyerA, seller, "Is this still available?", now.Add(-3*time.Hour)),
		message(bike.ID, seller, buyerA, "Yes, it is!", now.Add(-2*time.Hour)),
		message(bike.ID, buyerB, seller, "Would you take 100 for it?", now.Add(-1*time.Hour)),
		message(desk.ID, buyerA, seller, "Does the desk motor work?", now.Add(-30*time.Minute)),
	}
	for _, m := range msgs {
		if err := database.DB.Create(&m).Error; err != nil {
			log.Fatalf("❌ Failed to seed messages: %v", err)
		}
	}

	log.Println("✅ Seeded 3 users, 2 products, 4 messages")
}

func ensureUser(email, name string) models.User {
	var user models.User
	if err := database.DB.Where("email = ?", email).First(&user).Error; err == nil {
		return user
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user = models.User{
		ID:       uuid.New().String(),
		Name:     name,
		Email:    email,
		Password: string(hash),
	}
	if err := database.DB.Create(&user).Error; err != nil {
		log.Fatalf("❌ Failed to seed user %s: %v", email, err)
	}
	return user
}

func message(productID string, from, to models.User, body string, at time.Time) models.Message {
	return models.Message{
		ID:           uuid.New().String(),
		ProductID:    productID,
		SenderID:     from.ID,
		SenderName:   from.Name,
		ReceiverID:   to.ID,
		ReceiverName: to.Name,
		Message:      body,
		CreatedAt:    at,
	}
}
