package messaging

import "github.com/KAUSTUBH-KULKARNI-K/markethub/internal/models"

type Role string

const (
	RoleSeller Role = "seller"
	RoleBuyer  Role = "buyer"
)

// Resolution is the outcome of resolving a viewer against a product.
// For a buyer the counterparty is always the seller. For a seller the
// counterparty is whatever id the request supplied — a seller talks to
// many buyers, so without one there is no single thread to show.
type Resolution struct {
	Role             Role
	CounterpartyID   string
	CounterpartyName string
}

// ResolveRole determines which side of a product conversation the viewer
// is on. The caller must have already loaded the product; a missing
// product is a NotFound at the handler boundary, never resolved here.
func ResolveRole(product *models.Product, viewerID, otherUserID string) Resolution {
	if product.UserID == viewerID {
		return Resolution{
			Role:           RoleSeller,
			CounterpartyID: otherUserID,
		}
	}

	return Resolution{
		Role:             RoleBuyer,
		CounterpartyID:   product.UserID,
		CounterpartyName: product.SellerName,
	}
}

// NeedsRoster reports whether the viewer must be redirected to the buyer
// roster instead of a thread: a seller who did not name a counterparty.
// Merging every buyer's messages into one feed would leak conversations
// across buyers, so that is never done.
func (r Resolution) NeedsRoster() bool {
	return r.Role == RoleSeller && r.CounterpartyID == ""
}
