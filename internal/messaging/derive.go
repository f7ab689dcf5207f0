// Package messaging derives conversation views from the flat message
// table. Conversations are never stored: a thread, a buyer roster, or a
// user's conversation list exists only as the output of the pure
// functions in this file, recomputed from messages on every read.
package messaging

import (
	"sort"
	"time"

	"github.com/KAUSTUBH-KULKARNI-K/markethub/internal/models"
)

// RosterEntry is one distinct counterparty a seller has exchanged
// messages with about a product.
type RosterEntry struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	LastMessageTime time.Time `json:"last_message_time"`
}

// ConversationEntry is one distinct (product, counterparty) pair in a
// user's cross-product conversation list.
type ConversationEntry struct {
	ProductID       string    `json:"product_id"`
	OtherUserID     string    `json:"other_user_id"`
	OtherUserName   string    `json:"other_user_name"`
	LastMessageTime time.Time `json:"last_message_time"`
}

// counterparty returns the id and display name of the other side of a
// message, relative to the viewer.
func counterparty(m models.Message, viewerID string) (string, string) {
	if m.SenderID == viewerID {
		return m.ReceiverID, m.ReceiverName
	}
	return m.SenderID, m.SenderName
}

// Thread orders messages ascending by creation time for chat-style
// rendering, oldest first. The input set is preserved; only the order
// changes. The sort is stable so equal timestamps keep store order.
func Thread(msgs []models.Message) []models.Message {
	out := make([]models.Message, len(msgs))
	copy(out, msgs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// Roster deduplicates a product's messages into one entry per distinct
// counterparty of the seller. Input must be newest-first, so the first
// occurrence of a counterparty carries their most recent message time.
// Self-referential rows (counterparty == seller) should not exist but
// are skipped rather than trusted. The result is explicitly re-sorted by
// LastMessageTime descending with first-seen order as the tie-break,
// instead of relying on incidental scan order.
func Roster(msgs []models.Message, sellerID string) []RosterEntry {
	seen := make(map[string]struct{}, len(msgs))
	entries := []RosterEntry{}

	for _, m := range msgs {
		id, name := counterparty(m, sellerID)
		if id == sellerID {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		entries = append(entries, RosterEntry{
			ID:              id,
			Name:            name,
			LastMessageTime: m.CreatedAt,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].LastMessageTime.After(entries[j].LastMessageTime)
	})
	return entries
}

// ConversationList groups a viewer's messages across all products into
// one entry per (product, counterparty) pair. Input must be newest-first;
// the first message per pair is the representative. The same counterparty
// on two different products yields two entries. Sorted like Roster.
func ConversationList(msgs []models.Message, viewerID string) []ConversationEntry {
	type key struct {
		productID   string
		otherUserID string
	}

	seen := make(map[key]struct{}, len(msgs))
	entries := []ConversationEntry{}

	for _, m := range msgs {
		id, name := counterparty(m, viewerID)
		if id == viewerID {
			continue
		}
		k := key{productID: m.ProductID, otherUserID: id}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		entries = append(entries, ConversationEntry{
			ProductID:       m.ProductID,
			OtherUserID:     id,
			OtherUserName:   name,
			LastMessageTime: m.CreatedAt,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].LastMessageTime.After(entries[j].LastMessageTime)
	})
	return entries
}
