package handlers

import (
	"net/http"
	"time"

	"github.com/KAUSTUBH-KULKARNI-K/markethub/internal/database"
	"github.com/KAUSTUBH-KULKARNI-K/markethub/internal/messaging"
	"github.com/KAUSTUBH-KULKARNI-K/markethub/internal/models"
	"github.com/KAUSTUBH-KULKARNI-K/markethub/pkg/errors"
	"github.com/KAUSTUBH-KULKARNI-K/markethub/pkg/logger"
	"github.com/KAUSTUBH-KULKARNI-K/markethub/pkg/utils"
	"github.com/gin-gonic/gin"
)

type SendMessageInput struct {
	ProductID    string `json:"product_id" binding:"required"`
	SenderID     string `json:"sender_id" binding:"required"`
	ReceiverID   string `json:"receiver_id" binding:"required"`
	SenderName   string `json:"sender_name" binding:"required"`
	ReceiverName string `json:"receiver_name" binding:"required"`
	Message      string `json:"message" binding:"required"`
}

// SendMessage handles POST /messages. Messages are append-only: there is
// no update or delete counterpart anywhere in the API.
func SendMessage(c *gin.Context) {
	viewerID := c.MustGet("userId").(string)

	var input SendMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, errors.Validation(err.Error()))
		return
	}

	if input.SenderID != viewerID {
		fail(c, errors.Forbidden("Cannot send messages as another user"))
		return
	}

	if input.SenderID == input.ReceiverID {
		fail(c, errors.Validation("sender_id and receiver_id must differ"))
		return
	}

	body, err := SanitizeMessageBody(input.Message)
	if err != nil {
		fail(c, errors.Validation(err.Error()))
		return
	}

	msg := models.Message{
		ID:           utils.GenerateID(),
		ProductID:    input.ProductID,
		SenderID:     input.SenderID,
		ReceiverID:   input.ReceiverID,
		SenderName:   input.SenderName,
		ReceiverName: input.ReceiverName,
		Message:      body,
		CreatedAt:    time.Now(),
	}

	if err := database.DB.Create(&msg).Error; err != nil {
		logger.Error().Err(err).Msg("Failed to store message")
		fail(c, errors.Internal("Failed to send message"))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Message sent successfully",
		"data":    msg,
	})
}

// GetThread handles GET /messages/:productId?other_user_id=
//
// A buyer always gets their thread with the seller. A seller gets the
// thread with the buyer named by other_user_id; without one there is no
// single thread to show, so the response is a redirect signal pointing
// the client at the buyer roster. That is deliberate: merging every
// buyer's messages into one feed would expose conversations across
// buyers.
func GetThread(c *gin.Context) {
	viewerID := c.MustGet("userId").(string)
	productID := c.Param("productId")
	otherUserID := c.Query("other_user_id")

	var product models.Product
	if err := database.DB.First(&product, "id = ?", productID).Error; err != nil {
		fail(c, errors.ErrProductNotFound)
		return
	}

	res := messaging.ResolveRole(&product, viewerID, otherUserID)
	if res.NeedsRoster() {
		c.JSON(http.StatusOK, gin.H{
			"redirect_to": "buyers",
			"product_id":  productID,
		})
		return
	}

	filter := messaging.NewThreadFilter(productID, viewerID, res.CounterpartyID)

	var msgs []models.Message
	if err := database.DB.Scopes(filter.Scope).Order("created_at asc").Find(&msgs).Error; err != nil {
		logger.Error().Err(err).Str("product_id", productID).Msg("Failed to fetch thread")
		fail(c, errors.Internal("Failed to fetch messages"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messaging.Thread(msgs)})
}

// GetProductBuyers handles GET /products/:id/buyers — the seller-facing
// roster of distinct counterparties for one listing.
func GetProductBuyers(c *gin.Context) {
	viewerID := c.MustGet("userId").(string)
	productID := c.Param("id")

	var product models.Product
	if err := database.DB.First(&product, "id = ?", productID).Error; err != nil {
		fail(c, errors.ErrProductNotFound)
		return
	}

	var msgs []models.Message
	err := database.DB.
		Where("product_id = ?", productID).
		Where("sender_id = ? OR receiver_id = ?", viewerID, viewerID).
		Order("created_at desc").
		Find(&msgs).Error
	if err != nil {
		logger.Error().Err(err).Str("product_id", productID).Msg("Failed to fetch roster messages")
		fail(c, errors.Internal("Failed to fetch buyers"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"buyers": messaging.Roster(msgs, viewerID)})
}

// GetConversations handles GET /conversations — every distinct
// (product, counterparty) pair the viewer has exchanged messages in,
// most recent first.
func GetConversations(c *gin.Context) {
	viewerID := c.MustGet("userId").(string)

	var msgs []models.Message
	err := database.DB.
		Where("sender_id = ? OR receiver_id = ?", viewerID, viewerID).
		Order("created_at desc").
		Find(&msgs).Error
	if err != nil {
		logger.Error().Err(err).Msg("Failed to fetch conversation messages")
		fail(c, errors.Internal("Failed to fetch conversations"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"conversations": messaging.ConversationList(msgs, viewerID)})
}
