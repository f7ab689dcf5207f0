package models

import "time"

// Product is a marketplace listing. UserID is the seller; SellerName is
// denormalized so listings render without a join.
type Product struct {
	ID          string  `json:"id" gorm:"primaryKey;type:text"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category" gorm:"index"`
	ImageURL    string  `json:"image_url"`

	UserID     string `json:"user_id" gorm:"index"`
	SellerName string `json:"seller_name"`
	Contact    string `json:"contact"`
	Email      string `json:"email"`
	Location   string `json:"location"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
