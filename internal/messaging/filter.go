package messaging

import (
	"github.com/KAUSTUBH-KULKARNI-K/markethub/internal/models"
	"gorm.io/gorm"
)

// ThreadFilter selects every message exchanged between exactly two users
// about one product, in either direction. The pair is canonicalized on
// construction so NewThreadFilter(p, a, b) == NewThreadFilter(p, b, a)
// and the same filter serves both the buyer and the seller side.
type ThreadFilter struct {
	ProductID string
	UserA     string
	UserB     string
}

func NewThreadFilter(productID, idA, idB string) ThreadFilter {
	if idB < idA {
		idA, idB = idB, idA
	}
	return ThreadFilter{ProductID: productID, UserA: idA, UserB: idB}
}

// Matches is the pure predicate form: true iff the message belongs to the
// product and its {sender, receiver} set equals the filter's pair.
func (f ThreadFilter) Matches(m models.Message) bool {
	if m.ProductID != f.ProductID {
		return false
	}
	return (m.SenderID == f.UserA && m.ReceiverID == f.UserB) ||
		(m.SenderID == f.UserB && m.ReceiverID == f.UserA)
}

// Scope expresses the same predicate as a store-side filter.
func (f ThreadFilter) Scope(db *gorm.DB) *gorm.DB {
	return db.Where("product_id = ?", f.ProductID).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			f.UserA, f.UserB, f.UserB, f.UserA)
}
