package models

import "time"

// Message is one directed message about a product. Rows are append-only:
// nothing in the API updates or deletes them, and conversations are
// derived from them on every read rather than stored.
//
// SenderName/ReceiverName are captured at send time and may go stale if
// a user later renames themselves. Accepted tradeoff.
type Message struct {
	ID           string    `json:"id" gorm:"primaryKey;type:text"`
	ProductID    string    `json:"product_id" gorm:"index"`
	SenderID     string    `json:"sender_id" gorm:"index"`
	ReceiverID   string    `json:"receiver_id" gorm:"index"`
	SenderName   string    `json:"sender_name"`
	ReceiverName string    `json:"receiver_name"`
	Message      string    `json:"message"`
	CreatedAt    time.Time `json:"created_at"`
}
